package handlers

import (
	"net/http"

	"arclean_orcamentos/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BackupHandler struct {
	usecase usecase.IAppStateUseCase
}

func NewBackupHandler(uc usecase.IAppStateUseCase) *BackupHandler {
	return &BackupHandler{usecase: uc}
}

// ExportBackup downloads the full backup document
// @Summary      Export backup
// @Tags         backup
// @Produce      json
// @Success      200  {object}  entities.AppData
// @Failure      503  {object}  pkg.HTTPError
// @Router       /backup [get]
func (h *BackupHandler) ExportBackup(c *gin.Context) {
	data, err := h.usecase.ExportBackup(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	raw, err := usecase.EncodeBackup(data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+h.usecase.BackupFileName())
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

// ImportBackup replaces every collection with the uploaded document
// @Summary      Import backup
// @Description  All four sections (company, settings, services, quotes) are required. On any error nothing changes.
// @Tags         backup
// @Accept       json
// @Param        payload  body  entities.AppData  true  "Backup document"
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /backup [post]
func (h *BackupHandler) ImportBackup(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}
	data, err := usecase.DecodeBackup(raw)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.usecase.ImportBackup(c.Request.Context(), data); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
