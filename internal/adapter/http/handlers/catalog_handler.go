package handlers

import (
	"net/http"
	"strings"

	request "arclean_orcamentos/internal/adapter/http/dto/request"
	"arclean_orcamentos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the service catalog.
type CatalogHandler struct {
	usecase usecase.IAppStateUseCase
}

func NewCatalogHandler(uc usecase.IAppStateUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListCatalog lists catalog entries
// @Summary      List catalog entries
// @Description  Lists the catalog sorted by id. category narrows through the category index, q filters by name, category or subcategory.
// @Tags         catalog
// @Produce      json
// @Param        category  query     string  false  "Exact category"
// @Param        q         query     string  false  "Search term"
// @Success      200       {array}   entities.CatalogEntry
// @Failure      503       {object}  pkg.HTTPError
// @Router       /catalog [get]
func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	term := strings.ToLower(strings.TrimSpace(c.Query("q")))
	category := strings.TrimSpace(c.Query("category"))

	if category == "" {
		c.JSON(http.StatusOK, h.usecase.SearchCatalog(term))
		return
	}

	entries, err := h.usecase.CatalogByCategory(c.Request.Context(), category)
	if err != nil {
		respondError(c, err)
		return
	}
	if term != "" {
		filtered := entries[:0]
		for _, e := range entries {
			if strings.Contains(strings.ToLower(e.Name), term) || strings.Contains(strings.ToLower(e.Subcategory), term) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}
	c.JSON(http.StatusOK, entries)
}

// GetCatalogEntry returns one entry
// @Summary      Get catalog entry
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Entry id"
// @Success      200  {object}  entities.CatalogEntry
// @Failure      404  {object}  pkg.HTTPError
// @Router       /catalog/{id} [get]
func (h *CatalogHandler) GetCatalogEntry(c *gin.Context) {
	e, err := h.usecase.GetCatalogEntry(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// CreateCatalogEntry adds an entry
// @Summary      Create catalog entry
// @Description  Adds a catalog entry. The id is generated when omitted.
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CatalogEntryRequest  true  "Catalog entry"
// @Success      201      {object}  entities.CatalogEntry
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /catalog [post]
func (h *CatalogHandler) CreateCatalogEntry(c *gin.Context) {
	var payload request.CatalogEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	e, err := h.usecase.AddCatalogEntry(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// UpdateCatalogEntry replaces an entry
// @Summary      Update catalog entry
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Entry id"
// @Param        payload  body      request.CatalogEntryRequest  true  "Catalog entry"
// @Success      200      {object}  entities.CatalogEntry
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /catalog/{id} [put]
func (h *CatalogHandler) UpdateCatalogEntry(c *gin.Context) {
	var payload request.CatalogEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	e, err := h.usecase.UpdateCatalogEntry(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// DeleteCatalogEntry removes an entry. Quotes keep their item snapshots.
// @Summary      Delete catalog entry
// @Tags         catalog
// @Param        id   path  string  true  "Entry id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /catalog/{id} [delete]
func (h *CatalogHandler) DeleteCatalogEntry(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.usecase.GetCatalogEntry(id); err != nil {
		respondError(c, err)
		return
	}
	if err := h.usecase.DeleteCatalogEntry(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
