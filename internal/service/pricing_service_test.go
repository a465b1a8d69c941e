package service

import (
	"testing"

	"github.com/granit-next/internal/models"
)

func modifierOption(key, label string, delta int64) models.ModifierOption {
	return models.ModifierOption{Key: key, Label: label, PriceDelta: models.NewMoneyFromInt(delta)}
}

func monumentProduct() *models.Product {
	return &models.Product{
		ID:        1,
		Slug:      "klassika",
		Title:     "Памятник 'Классика'",
		Price:     models.NewMoneyFromInt(19000),
		BasePrice: models.NewMoneyFromInt(19000),
		Images:    models.ProductImages{{ID: 1, URL: "/images/0000.png", IsMain: true}},
		Modifiers: models.PriceModifiers{
			Sizes: models.ModifierTable{
				modifierOption("90x45x5", "90x45x5 см (Стандарт)", 0),
				modifierOption("110x50x5", "110x50x5 см (+2500 ₽)", 2500),
				modifierOption("130x60x5", "130x60x5 см (+5000 ₽)", 5000),
			},
			BaseSizes: models.ModifierTable{
				modifierOption("50x15x15", "50x15x15 см (Стандарт)", 0),
				modifierOption("70x20x15", "70x20x15 см (+1800 ₽)", 1800),
			},
			FlowerSizes: models.ModifierTable{
				modifierOption("90x45", "90x45 см (Стандарт)", 0),
				modifierOption("110x50", "110x50 см (+1200 ₽)", 1200),
			},
			PolishTypes: models.ModifierTable{
				modifierOption("mirror", "Зеркальная", 0),
				modifierOption("combined", "Комбинированная", 0),
			},
			Materials: models.ModifierTable{
				modifierOption("black_granite", "Гранит черный", 0),
				modifierOption("gray_granite", "Гранит серый", 2500),
				modifierOption("marble", "Мрамор", 6000),
			},
			Engravings: models.ModifierTable{
				modifierOption("text", "Текст", 1700),
				modifierOption("portrait", "Портрет", 3200),
				modifierOption("ornament", "Орнамент", 1550),
			},
		},
		IsActive: true,
	}
}

func TestQuoteAdditiveDeltas(t *testing.T) {
	pricing := NewPricingService()
	product := monumentProduct()

	quote := pricing.Quote(product, Selection{
		SizeKey:     "110x50x5",
		BaseSizeKey: "50x15x15",
		PolishKey:   "mirror",
		MaterialKey: "gray_granite",
	})

	if !quote.OptionsTotal.Equal(models.NewMoneyFromInt(5000)) {
		t.Fatalf("options total = %s, want 5000", quote.OptionsTotal.String())
	}
	if !quote.FinalPrice.Equal(models.NewMoneyFromInt(24000)) {
		t.Fatalf("final price = %s, want 24000", quote.FinalPrice.String())
	}
	if quote.PolishSurcharge {
		t.Fatal("mirror polish must not trigger surcharge")
	}
}

func TestQuoteEngravingsAccumulate(t *testing.T) {
	pricing := NewPricingService()
	product := monumentProduct()

	quote := pricing.Quote(product, Selection{
		EngravingKeys: []string{"text", "portrait", "ornament"},
	})

	want := models.NewMoneyFromInt(19000 + 1700 + 3200 + 1550)
	if !quote.FinalPrice.Equal(want) {
		t.Fatalf("final price = %s, want %s", quote.FinalPrice.String(), want.String())
	}
}

func TestQuoteCombinedPolishSurcharge(t *testing.T) {
	pricing := NewPricingService()
	product := monumentProduct()

	quote := pricing.Quote(product, Selection{
		SizeKey:     "110x50x5",
		PolishKey:   "combined",
		MaterialKey: "gray_granite",
	})

	// (19000 + 2500 + 2500) * 1.15 = 27600
	if !quote.Subtotal.Equal(models.NewMoneyFromInt(24000)) {
		t.Fatalf("subtotal = %s, want 24000", quote.Subtotal.String())
	}
	if !quote.PolishSurcharge {
		t.Fatal("combined polish must trigger surcharge")
	}
	if !quote.FinalPrice.Equal(models.NewMoneyFromInt(27600)) {
		t.Fatalf("final price = %s, want 27600", quote.FinalPrice.String())
	}
}

func TestQuoteCombinedSurchargeRoundsHalfUp(t *testing.T) {
	pricing := NewPricingService()
	product := monumentProduct()
	product.Price = models.NewMoneyFromInt(19990)
	product.BasePrice = models.NewMoneyFromInt(19990)

	quote := pricing.Quote(product, Selection{PolishKey: "combined"})

	// 19990 * 1.15 = 22988.5, 四舍五入到整数
	if !quote.FinalPrice.Equal(models.NewMoneyFromInt(22989)) {
		t.Fatalf("final price = %s, want 22989", quote.FinalPrice.String())
	}
}

func TestQuoteCombinedSurchargeWithoutPolishTable(t *testing.T) {
	pricing := NewPricingService()
	product := monumentProduct()
	product.Modifiers.PolishTypes = nil

	quote := pricing.Quote(product, Selection{PolishKey: "combined"})

	if !quote.PolishSurcharge {
		t.Fatal("surcharge must apply even when polish table is missing")
	}
	if !quote.FinalPrice.Equal(models.NewMoneyFromInt(21850)) {
		t.Fatalf("final price = %s, want 21850", quote.FinalPrice.String())
	}
}

func TestQuoteStaleKeysSkipped(t *testing.T) {
	pricing := NewPricingService()
	product := monumentProduct()

	quote := pricing.Quote(product, Selection{
		SizeKey:       "200x90x10",
		MaterialKey:   "basalt",
		EngravingKeys: []string{"hologram", "text"},
	})

	want := models.NewMoneyFromInt(19000 + 1700)
	if !quote.FinalPrice.Equal(want) {
		t.Fatalf("final price = %s, want %s", quote.FinalPrice.String(), want.String())
	}
}

func TestQuotePolishDeltaNeverAdditive(t *testing.T) {
	pricing := NewPricingService()
	product := monumentProduct()
	product.Modifiers.PolishTypes = models.ModifierTable{
		modifierOption("mirror", "Зеркальная", 500),
		modifierOption("combined", "Комбинированная", 1000),
	}

	mirror := pricing.Quote(product, Selection{PolishKey: "mirror"})
	if !mirror.FinalPrice.Equal(models.NewMoneyFromInt(19000)) {
		t.Fatalf("mirror final = %s, want 19000 (polish delta must be ignored)", mirror.FinalPrice.String())
	}

	// 组合抛光只走 ×1.15 系数：19000 * 1.15 = 21850
	combined := pricing.Quote(product, Selection{PolishKey: "combined"})
	if !combined.FinalPrice.Equal(models.NewMoneyFromInt(21850)) {
		t.Fatalf("combined final = %s, want 21850", combined.FinalPrice.String())
	}
}

func TestQuoteClampsNegativeTotal(t *testing.T) {
	pricing := NewPricingService()
	product := monumentProduct()
	product.Price = models.NewMoneyFromInt(1000)
	product.BasePrice = models.NewMoneyFromInt(1000)
	product.Modifiers.Materials = models.ModifierTable{
		modifierOption("scrap", "Лом", -5000),
	}

	quote := pricing.Quote(product, Selection{MaterialKey: "scrap"})

	if !quote.FinalPrice.Equal(models.NewMoneyFromInt(0)) {
		t.Fatalf("final price = %s, want 0", quote.FinalPrice.String())
	}
}

func TestQuoteBasePriceFallsBackToListPrice(t *testing.T) {
	pricing := NewPricingService()
	product := monumentProduct()
	product.BasePrice = models.NewMoneyFromInt(0)

	quote := pricing.Quote(product, Selection{})

	if !quote.BasePrice.Equal(models.NewMoneyFromInt(19000)) {
		t.Fatalf("base price = %s, want list price 19000", quote.BasePrice.String())
	}
}

func TestQuoteDiscountOnlyWhenAboveFinal(t *testing.T) {
	pricing := NewPricingService()
	product := monumentProduct()
	discount := models.NewMoneyFromInt(22000)
	product.DiscountPrice = &discount

	withOptions := pricing.Quote(product, Selection{SizeKey: "130x60x5"})
	if withOptions.DiscountPrice != nil {
		t.Fatalf("discount %s must be hidden below final price %s", discount.String(), withOptions.FinalPrice.String())
	}

	base := pricing.Quote(product, Selection{})
	if base.DiscountPrice == nil {
		t.Fatal("discount above final price must be exposed")
	}
	if !base.DiscountPrice.Equal(discount) {
		t.Fatalf("discount = %s, want %s", base.DiscountPrice.String(), discount.String())
	}
}

func TestDefaultSelectionUsesFirstOptions(t *testing.T) {
	pricing := NewPricingService()
	product := monumentProduct()

	selection := pricing.DefaultSelection(product)

	if selection.SizeKey != "90x45x5" {
		t.Fatalf("default size = %q, want 90x45x5", selection.SizeKey)
	}
	if selection.BaseSizeKey != "50x15x15" {
		t.Fatalf("default base size = %q, want 50x15x15", selection.BaseSizeKey)
	}
	if selection.PolishKey != "mirror" {
		t.Fatalf("default polish = %q, want mirror", selection.PolishKey)
	}
	if selection.MaterialKey != "black_granite" {
		t.Fatalf("default material = %q, want black_granite", selection.MaterialKey)
	}
	if len(selection.EngravingKeys) != 0 {
		t.Fatalf("default engravings = %v, want empty", selection.EngravingKeys)
	}
}

func TestDefaultSelectionFallbacks(t *testing.T) {
	pricing := NewPricingService()
	product := monumentProduct()
	product.Modifiers.PolishTypes = nil
	product.Modifiers.Materials = nil

	selection := pricing.DefaultSelection(product)

	if selection.PolishKey != "mirror" {
		t.Fatalf("fallback polish = %q, want mirror", selection.PolishKey)
	}
	if selection.MaterialKey != "black_granite" {
		t.Fatalf("fallback material = %q, want black_granite", selection.MaterialKey)
	}
}
