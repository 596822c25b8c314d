package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"arclean_orcamentos/internal/adapter/persistence/repository"
	"arclean_orcamentos/internal/infrastructure/metrics"
	"arclean_orcamentos/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	l := logrus.New()
	l.SetOutput(io.Discard)
	log := logrus.NewEntry(l)

	reg := prometheus.NewRegistry()
	app := usecase.NewAppState(repository.NewMemoryRecordStore(), log, usecase.WithMetrics(metrics.NewPrometheus(reg)))
	if err := app.Init(t.Context()); err != nil {
		t.Fatalf("init: %v", err)
	}

	router := NewRouter(Dependencies{
		AppState: app,
		Log:      log,
		Metrics:  promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})

	cases := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/v1/ping", http.StatusOK},
		{http.MethodGet, "/v1/catalog", http.StatusOK},
		{http.MethodGet, "/v1/catalog/svc-0001", http.StatusOK},
		{http.MethodGet, "/v1/quotes", http.StatusOK},
		{http.MethodGet, "/v1/quotes/new", http.StatusOK},
		{http.MethodGet, "/v1/quotes/unknown", http.StatusNotFound},
		{http.MethodGet, "/v1/company", http.StatusOK},
		{http.MethodGet, "/v1/settings", http.StatusOK},
		{http.MethodGet, "/v1/dashboard", http.StatusOK},
		{http.MethodGet, "/v1/backup", http.StatusOK},
		{http.MethodGet, "/swagger/index.html", http.StatusOK},
		{http.MethodGet, "/v1/estimates", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}

	t.Run("metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `arclean_collection_size{collection="catalog"} 59`) {
			t.Fatalf("unexpected metrics output %d:\n%s", w.Code, w.Body.String())
		}
	})

	t.Run("metrics disabled", func(t *testing.T) {
		r := NewRouter(Dependencies{AppState: app, Log: log})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
