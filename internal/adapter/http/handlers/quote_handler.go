package handlers

import (
	"net/http"
	"strings"

	request "arclean_orcamentos/internal/adapter/http/dto/request"
	response "arclean_orcamentos/internal/adapter/http/dto/response"
	"arclean_orcamentos/internal/domain/entities"
	"arclean_orcamentos/internal/domain/quoting"
	"arclean_orcamentos/internal/infrastructure/spreadsheet"
	"arclean_orcamentos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// Brand prefixes exported file names and share messages.
const Brand = "ArClean"

// QuoteHandler serves quotes and their exports.
type QuoteHandler struct {
	usecase usecase.IAppStateUseCase
}

func NewQuoteHandler(uc usecase.IAppStateUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// ListQuotes lists quotes, newest first
// @Summary      List quotes
// @Tags         quotes
// @Produce      json
// @Param        status  query     string  false  "draft or finalized"
// @Param        q       query     string  false  "OS number or client name"
// @Success      200     {array}   response.QuoteResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	term := strings.ToLower(strings.TrimSpace(c.Query("q")))
	status := entities.QuoteStatus(strings.TrimSpace(c.Query("status")))

	if status == "" {
		c.JSON(http.StatusOK, response.FromQuotes(h.usecase.SearchQuotes(term)))
		return
	}
	if status != entities.QuoteStatusDraft && status != entities.QuoteStatusFinalized {
		respondAppError(c, errInvalidStatus)
		return
	}

	quotes, err := h.usecase.QuotesByStatus(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	if term != "" {
		filtered := quotes[:0]
		for _, q := range quotes {
			if strings.Contains(strings.ToLower(q.OSNumber), term) || strings.Contains(strings.ToLower(q.Client.Name), term) {
				filtered = append(filtered, q)
			}
		}
		quotes = filtered
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// NewQuoteDraft previews an unsaved draft
// @Summary      New quote draft
// @Description  Returns a draft numbered from the current counter. Nothing is stored and the counter does not move.
// @Tags         quotes
// @Produce      json
// @Success      200  {object}  response.QuoteResponse
// @Router       /quotes/new [get]
func (h *QuoteHandler) NewQuoteDraft(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromQuote(h.usecase.NewQuoteDraft()))
}

// GetQuote returns one quote
// @Summary      Get quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote id"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetQuote(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// CreateQuote stores a new quote and advances the OS counter
// @Summary      Create quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        payload  body      request.QuoteRequest  true  "Quote"
// @Success      201      {object}  response.QuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	q, err := h.usecase.AddQuote(c.Request.Context(), payload.ToEntity("", h.lookupCatalog))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// UpdateQuote replaces a stored quote
// @Summary      Update quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "Quote id"
// @Param        payload  body      request.QuoteRequest  true  "Quote"
// @Success      200      {object}  response.QuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /quotes/{id} [put]
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	q, err := h.usecase.UpdateQuote(c.Request.Context(), payload.ToEntity(c.Param("id"), h.lookupCatalog))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// EditQuote applies editor steps to a stored quote
// @Summary      Edit quote items and adjustments
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Quote id"
// @Param        payload  body      request.QuoteEditsRequest  true  "Editor steps"
// @Success      200      {object}  response.QuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /quotes/{id} [patch]
func (h *QuoteHandler) EditQuote(c *gin.Context) {
	var payload request.QuoteEditsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	edit, err := payload.ToEdit(h.lookupCatalog)
	if err != nil {
		respondError(c, err)
		return
	}
	q, err := h.usecase.EditQuote(c.Request.Context(), c.Param("id"), edit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// FinalizeQuote moves a draft to finalized
// @Summary      Finalize quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote id"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /quotes/{id}/finalize [post]
func (h *QuoteHandler) FinalizeQuote(c *gin.Context) {
	q, err := h.usecase.FinalizeQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// DeleteQuote removes a quote
// @Summary      Delete quote
// @Tags         quotes
// @Param        id   path  string  true  "Quote id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.usecase.GetQuote(id); err != nil {
		respondError(c, err)
		return
	}
	if err := h.usecase.DeleteQuote(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportQuoteXLSX downloads the quote as a spreadsheet
// @Summary      Export quote spreadsheet
// @Tags         quotes
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path  string  true  "Quote id"
// @Success      200  {file}  file
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id}/xlsx [get]
func (h *QuoteHandler) ExportQuoteXLSX(c *gin.Context) {
	q, err := h.usecase.GetQuote(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	raw, err := spreadsheet.QuoteWorkbook(h.usecase.GetCompany(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+quoting.QuoteFileName(Brand, q, "xlsx"))
	c.Data(http.StatusOK, spreadsheet.ContentType, raw)
}

// ShareQuote builds the share message and WhatsApp link
// @Summary      Share quote
// @Tags         quotes
// @Produce      json
// @Param        id     path      string  true   "Quote id"
// @Param        phone  query     string  false  "Recipient phone"
// @Success      200    {object}  response.ShareResponse
// @Failure      404    {object}  pkg.HTTPError
// @Router       /quotes/{id}/share [get]
func (h *QuoteHandler) ShareQuote(c *gin.Context) {
	q, err := h.usecase.GetQuote(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	msg := quoting.ShareMessage(Brand, q)
	c.JSON(http.StatusOK, response.ShareResponse{
		Message: msg,
		Link:    quoting.WhatsAppLink(c.Query("phone"), msg),
	})
}

func (h *QuoteHandler) lookupCatalog(id string) (entities.CatalogEntry, bool) {
	e, err := h.usecase.GetCatalogEntry(id)
	return e, err == nil
}
