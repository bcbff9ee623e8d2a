package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"toyshop/internal/domain"
	"toyshop/internal/domain/models"
	"toyshop/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// CatalogToyStore lists the full toy collection for the report.
type CatalogToyStore interface {
	All(ctx context.Context) ([]models.Toy, error)
}

// CatalogService renders the admin toy catalog PDF.
type CatalogService struct {
	Toys      CatalogToyStore
	RequestID string
}

func (s CatalogService) GenerateCatalog(ctx context.Context) ([]byte, string, error) {
	toys, err := s.Toys.All(ctx)
	if err != nil {
		utils.LogEvent(s.RequestID, "catalog", "generate", "cannot load toys: "+err.Error())
		return nil, "", domain.OperationError{Op: "generate catalog", Err: err}
	}
	utils.LogEvent(s.RequestID, "catalog", "generate", fmt.Sprintf("toys=%d", len(toys)))
	return buildCatalogPDF(toys)
}

func buildCatalogPDF(toys []models.Toy) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Toy Catalog", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TOY CATALOG")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(80, 7, "Name", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(60, 7, "Labels", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "In stock", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, toy := range toys {
		stock := "yes"
		if !toy.InStock {
			stock = "no"
		}
		pdf.CellFormat(80, 7, toy.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%.2f", toy.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(60, 7, strings.Join(toy.Labels, ", "), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, stock, "1", 1, "C", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, fmt.Sprintf("Total: %d toys.", len(toys)), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.OperationError{Op: "render catalog pdf", Err: err}
	}

	filename := fmt.Sprintf("toy-catalog-%s.pdf", time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}
