package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	cases := []struct {
		name  string
		env   string
		level string
		want  logrus.Level
	}{
		{"dev without level", "dev", "", logrus.DebugLevel},
		{"prod without level", "prod", "", logrus.InfoLevel},
		{"explicit level wins in dev", "dev", "warn", logrus.WarnLevel},
		{"explicit level in prod", "prod", "debug", logrus.DebugLevel},
		{"unparsable level", "dev", "loud", logrus.InfoLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := New(tc.env, tc.level).GetLevel(); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}

	t.Run("component field", func(t *testing.T) {
		e := Component(New("prod", ""), "store")
		if e.Data["component"] != "store" {
			t.Fatalf("unexpected fields %v", e.Data)
		}
	})
}
