package public_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/granit-next/internal/service"
)

func TestGetCategories(t *testing.T) {
	engine, _ := setupCartHTTPTest(t)

	recorder := doJSON(t, engine, http.MethodGet, "/api/v1/public/categories", nil, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}

	var categories []service.CategoryView
	if err := json.Unmarshal(decodeEnvelope(t, recorder).Data, &categories); err != nil {
		t.Fatalf("decode categories failed: %v", err)
	}
	if len(categories) != 1 {
		t.Fatalf("categories = %d, want 1", len(categories))
	}
	if categories[0].Slug != "vertikalnye" {
		t.Fatalf("slug = %q", categories[0].Slug)
	}
	if categories[0].ProductCount != 1 {
		t.Fatalf("product count = %d, want 1", categories[0].ProductCount)
	}
}

func TestGetProductsPaginated(t *testing.T) {
	engine, _ := setupCartHTTPTest(t)

	recorder := doJSON(t, engine, http.MethodGet, "/api/v1/public/products?page=1&page_size=10", nil, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}

	var payload struct {
		StatusCode int             `json:"status_code"`
		Data       json.RawMessage `json:"data"`
		Pagination struct {
			Page  int   `json:"page"`
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode page response failed: %v", err)
	}
	if payload.Pagination.Total != 1 {
		t.Fatalf("total = %d, want 1", payload.Pagination.Total)
	}

	var products []json.RawMessage
	if err := json.Unmarshal(payload.Data, &products); err != nil {
		t.Fatalf("decode products failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("products = %d, want 1", len(products))
	}
}

func TestGetProductByIDIncludesDefaults(t *testing.T) {
	engine, productID := setupCartHTTPTest(t)

	recorder := doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/v1/public/products/%d", productID), nil, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}

	var detail struct {
		ArticleNumber    string            `json:"article_number"`
		DefaultSelection service.Selection `json:"default_selection"`
		DefaultQuote     struct {
			FinalPrice string `json:"final_price"`
		} `json:"default_quote"`
	}
	if err := json.Unmarshal(decodeEnvelope(t, recorder).Data, &detail); err != nil {
		t.Fatalf("decode detail failed: %v", err)
	}
	if detail.ArticleNumber != fmt.Sprintf("00%d", productID) {
		t.Fatalf("article number = %q", detail.ArticleNumber)
	}
	if detail.DefaultSelection.SizeKey != "90x45x5" {
		t.Fatalf("default size = %q", detail.DefaultSelection.SizeKey)
	}
	if detail.DefaultSelection.PolishKey != "mirror" {
		t.Fatalf("default polish = %q", detail.DefaultSelection.PolishKey)
	}
	if detail.DefaultQuote.FinalPrice != "19000.00" {
		t.Fatalf("default final price = %s, want 19000.00", detail.DefaultQuote.FinalPrice)
	}
}

func TestGetProductBySlug(t *testing.T) {
	engine, productID := setupCartHTTPTest(t)

	recorder := doJSON(t, engine, http.MethodGet, "/api/v1/public/product/klassika", nil, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}

	var detail struct {
		ArticleNumber string `json:"article_number"`
	}
	if err := json.Unmarshal(decodeEnvelope(t, recorder).Data, &detail); err != nil {
		t.Fatalf("decode detail failed: %v", err)
	}
	if detail.ArticleNumber != fmt.Sprintf("00%d", productID) {
		t.Fatalf("article number = %q", detail.ArticleNumber)
	}

	recorder = doJSON(t, engine, http.MethodGet, "/api/v1/public/product/absent", nil, nil)
	if envelope := decodeEnvelope(t, recorder); envelope.StatusCode != 404 {
		t.Fatalf("status_code = %d, want 404", envelope.StatusCode)
	}
}

func TestGetProductsUnknownCategory(t *testing.T) {
	engine, _ := setupCartHTTPTest(t)

	recorder := doJSON(t, engine, http.MethodGet, "/api/v1/public/products?category_id=9999", nil, nil)
	if envelope := decodeEnvelope(t, recorder); envelope.StatusCode != 404 {
		t.Fatalf("status_code = %d, want 404", envelope.StatusCode)
	}
}

func TestGetProductByIDNotFound(t *testing.T) {
	engine, _ := setupCartHTTPTest(t)

	recorder := doJSON(t, engine, http.MethodGet, "/api/v1/public/products/9999", nil, nil)
	envelope := decodeEnvelope(t, recorder)
	if envelope.StatusCode != 404 {
		t.Fatalf("status_code = %d, want 404", envelope.StatusCode)
	}

	recorder = doJSON(t, engine, http.MethodGet, "/api/v1/public/products/abc", nil, nil)
	envelope = decodeEnvelope(t, recorder)
	if envelope.StatusCode != 400 {
		t.Fatalf("status_code = %d, want 400", envelope.StatusCode)
	}
}

func TestQuotePriceEndpoint(t *testing.T) {
	engine, productID := setupCartHTTPTest(t)

	body := map[string]interface{}{
		"size":       "110x50x5",
		"polish":     "combined",
		"material":   "black_granite",
		"engravings": []string{},
	}
	recorder := doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/v1/public/products/%d/price", productID), body, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", recorder.Code, recorder.Body.String())
	}

	var result struct {
		Quote struct {
			FinalPrice      string `json:"final_price"`
			PolishSurcharge bool   `json:"polish_surcharge"`
		} `json:"quote"`
		Identity string `json:"identity"`
	}
	if err := json.Unmarshal(decodeEnvelope(t, recorder).Data, &result); err != nil {
		t.Fatalf("decode quote failed: %v", err)
	}
	// (19000 + 2500) * 1.15 = 24725
	if result.Quote.FinalPrice != "24725.00" {
		t.Fatalf("final price = %s, want 24725.00", result.Quote.FinalPrice)
	}
	if !result.Quote.PolishSurcharge {
		t.Fatal("surcharge flag not set")
	}
	want := fmt.Sprintf("%d-110x50x5---combined-black_granite-", productID)
	if result.Identity != want {
		t.Fatalf("identity = %q, want %q", result.Identity, want)
	}
}
