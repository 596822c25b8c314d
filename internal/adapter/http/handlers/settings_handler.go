package handlers

import (
	"net/http"

	request "arclean_orcamentos/internal/adapter/http/dto/request"
	response "arclean_orcamentos/internal/adapter/http/dto/response"
	"arclean_orcamentos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SettingsHandler serves the company profile, the settings singleton, the
// dashboard and the liveness check.
type SettingsHandler struct {
	usecase usecase.IAppStateUseCase
}

func NewSettingsHandler(uc usecase.IAppStateUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

// Ping reports the facade state
// @Summary      Ping
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.PingResponse
// @Router       /ping [get]
func (h *SettingsHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, response.PingResponse{
		Message:  "pong",
		State:    string(h.usecase.State()),
		Degraded: h.usecase.Degraded(),
	})
}

// GetCompany returns the company profile
// @Summary      Get company
// @Tags         settings
// @Produce      json
// @Success      200  {object}  entities.Company
// @Router       /company [get]
func (h *SettingsHandler) GetCompany(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.GetCompany())
}

// UpdateCompany overwrites the company profile
// @Summary      Update company
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CompanyRequest  true  "Company"
// @Success      200      {object}  entities.Company
// @Failure      400      {object}  pkg.HTTPError
// @Router       /company [put]
func (h *SettingsHandler) UpdateCompany(c *gin.Context) {
	var payload request.CompanyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	company, err := h.usecase.SetCompany(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// GetSettings returns the settings singleton
// @Summary      Get settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  entities.Settings
// @Router       /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.GetSettings())
}

// UpdateSettings overwrites the settings singleton, including the OS counter
// @Summary      Update settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SettingsRequest  true  "Settings"
// @Success      200      {object}  entities.Settings
// @Failure      400      {object}  pkg.HTTPError
// @Router       /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var payload request.SettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	settings, err := h.usecase.SetSettings(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Dashboard summarizes the stored quotes
// @Summary      Dashboard
// @Tags         quotes
// @Produce      json
// @Success      200  {object}  response.DashboardResponse
// @Router       /dashboard [get]
func (h *SettingsHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromDashboard(h.usecase.Dashboard()))
}
