package handlers

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
)

func newFilterCtx(t *testing.T, query string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/toy?"+query, nil)
	return c, w
}

func TestParseToyFilterDefaults(t *testing.T) {
	c, _ := newFilterCtx(t, "")

	f, ok := parseToyFilter(c)
	if !ok {
		t.Fatalf("empty query must parse")
	}
	if f.Txt != "" || f.InStock != nil || len(f.Labels) != 0 || f.PageIdx != 0 {
		t.Fatalf("unexpected defaults: %+v", f)
	}
	if f.Sort.Field != "" || f.Sort.Dir != 1 {
		t.Fatalf("unexpected default sort: %+v", f.Sort)
	}
}

func TestParseToyFilterLabels(t *testing.T) {
	c, _ := newFilterCtx(t, "labels=Art&labels=Doll,Outdoor")

	f, ok := parseToyFilter(c)
	if !ok {
		t.Fatalf("labels query must parse")
	}
	want := []string{"Art", "Doll", "Outdoor"}
	if !reflect.DeepEqual(f.Labels, want) {
		t.Fatalf("expected labels %v, got %v", want, f.Labels)
	}
}

func TestParseToyFilterPermissivePageIdx(t *testing.T) {
	c, _ := newFilterCtx(t, "pageIdx=junk")

	f, ok := parseToyFilter(c)
	if !ok {
		t.Fatalf("bad pageIdx must not reject the request")
	}
	if f.PageIdx != 0 {
		t.Fatalf("non-numeric pageIdx should fall back to 0, got %d", f.PageIdx)
	}
}

func TestParseToyFilterBadInStockRejected(t *testing.T) {
	c, w := newFilterCtx(t, "inStock=maybe")

	_, ok := parseToyFilter(c)
	if ok {
		t.Fatalf("unparseable inStock must fail loudly")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestParseToyFilterStockAndSort(t *testing.T) {
	c, _ := newFilterCtx(t, "inStock=true&sortBy=price&sortDir=-1&txt=%20kite%20")

	f, ok := parseToyFilter(c)
	if !ok {
		t.Fatalf("query must parse")
	}
	if f.InStock == nil || *f.InStock != true {
		t.Fatalf("inStock not parsed: %+v", f.InStock)
	}
	if f.Sort.Field != "price" || f.Sort.Dir != -1 {
		t.Fatalf("unexpected sort: %+v", f.Sort)
	}
	if f.Txt != "kite" {
		t.Fatalf("txt should be trimmed, got %q", f.Txt)
	}
}
