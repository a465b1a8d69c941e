package models

import "testing"

func TestMainImagePrefersMainFlag(t *testing.T) {
	product := Product{Images: ProductImages{
		{ID: 1, URL: "/images/0001.png"},
		{ID: 2, URL: "/images/0002.png", IsMain: true},
	}}
	if got := product.MainImage(); got != "/images/0002.png" {
		t.Fatalf("main image = %q, want /images/0002.png", got)
	}
}

func TestMainImageFallsBackToFirst(t *testing.T) {
	product := Product{Images: ProductImages{
		{ID: 1, URL: "/images/0001.png"},
		{ID: 2, URL: "/images/0002.png"},
	}}
	if got := product.MainImage(); got != "/images/0001.png" {
		t.Fatalf("main image = %q, want first image", got)
	}

	empty := Product{}
	if got := empty.MainImage(); got != "" {
		t.Fatalf("main image of empty set = %q, want empty", got)
	}
}

func TestEffectiveBasePriceFallsBackToPrice(t *testing.T) {
	product := Product{Price: NewMoneyFromInt(19000)}
	if !product.EffectiveBasePrice().Equal(NewMoneyFromInt(19000)) {
		t.Fatalf("effective base = %s, want list price", product.EffectiveBasePrice().String())
	}

	product.BasePrice = NewMoneyFromInt(17000)
	if !product.EffectiveBasePrice().Equal(NewMoneyFromInt(17000)) {
		t.Fatalf("effective base = %s, want 17000", product.EffectiveBasePrice().String())
	}
}
