package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"toyshop/internal/domain/models"
)

type fakeCatalogStore struct {
	toys []models.Toy
}

func (f fakeCatalogStore) All(_ context.Context) ([]models.Toy, error) {
	return f.toys, nil
}

func TestCatalogServiceGenerate(t *testing.T) {
	svc := CatalogService{Toys: fakeCatalogStore{toys: []models.Toy{
		{Name: "Kite", Price: 10, Labels: []string{"Outdoor"}, InStock: true},
		{Name: "Chess Set", Price: 25, Labels: []string{"Box game", "Art"}, InStock: false},
	}}}

	pdf, filename, err := svc.GenerateCatalog(context.Background())
	if err != nil {
		t.Fatalf("GenerateCatalog returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateCatalog returned empty data")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
	if !strings.HasPrefix(filename, "toy-catalog-") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestCatalogServiceGenerateEmpty(t *testing.T) {
	svc := CatalogService{Toys: fakeCatalogStore{}}

	pdf, _, err := svc.GenerateCatalog(context.Background())
	if err != nil {
		t.Fatalf("empty catalog should still render: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("empty catalog produced no output")
	}
}
