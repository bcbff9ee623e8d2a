package handlers

import (
	"net/http"

	"toyshop/internal/http/middleware"
	"toyshop/internal/repositories"
	"toyshop/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/reports/catalog (admin) — full toy catalog as an inline PDF.
func GetCatalogReport(c *gin.Context) {
	svc := services.CatalogService{
		Toys:      repositories.ToyRepository{},
		RequestID: middleware.GetRequestID(c),
	}

	pdfBytes, filename, err := svc.GenerateCatalog(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
