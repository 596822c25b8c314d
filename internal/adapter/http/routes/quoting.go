package routes

import (
	"arclean_orcamentos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog   = "/catalog"
	PathQuotes    = "/quotes"
	PathCompany   = "/company"
	PathSettings  = "/settings"
	PathDashboard = "/dashboard"
	PathBackup    = "/backup"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("", h.ListCatalog)
		catalog.POST("", h.CreateCatalogEntry)
		catalog.GET("/:id", h.GetCatalogEntry)
		catalog.PUT("/:id", h.UpdateCatalogEntry)
		catalog.DELETE("/:id", h.DeleteCatalogEntry)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", h.ListQuotes)
		quotes.POST("", h.CreateQuote)
		quotes.GET("/new", h.NewQuoteDraft)
		quotes.GET("/:id", h.GetQuote)
		quotes.PUT("/:id", h.UpdateQuote)
		quotes.PATCH("/:id", h.EditQuote)
		quotes.DELETE("/:id", h.DeleteQuote)
		quotes.POST("/:id/finalize", h.FinalizeQuote)
		quotes.GET("/:id/xlsx", h.ExportQuoteXLSX)
		quotes.GET("/:id/share", h.ShareQuote)
	}
}

func addSettingsRoutes(rg *gin.RouterGroup, h *handlers.SettingsHandler) {
	rg.GET(PathCompany, h.GetCompany)
	rg.PUT(PathCompany, h.UpdateCompany)
	rg.GET(PathSettings, h.GetSettings)
	rg.PUT(PathSettings, h.UpdateSettings)
	rg.GET(PathDashboard, h.Dashboard)
}

func addBackupRoutes(rg *gin.RouterGroup, h *handlers.BackupHandler) {
	rg.GET(PathBackup, h.ExportBackup)
	rg.POST(PathBackup, h.ImportBackup)
}
