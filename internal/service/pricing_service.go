package service

import (
	"github.com/shopspring/decimal"

	"github.com/granit-next/internal/constants"
	"github.com/granit-next/internal/models"
)

// Selection 配置器选择。键为空表示该组未选，过期键静默忽略
type Selection struct {
	SizeKey       string   `json:"size"`
	BaseSizeKey   string   `json:"base_size"`
	FlowerSizeKey string   `json:"flower_size"`
	PolishKey     string   `json:"polish"`
	MaterialKey   string   `json:"material"`
	EngravingKeys []string `json:"engravings"`
}

// PriceQuote 配置计价结果
type PriceQuote struct {
	BasePrice       models.Money  `json:"base_price"`
	OptionsTotal    models.Money  `json:"options_total"`
	Subtotal        models.Money  `json:"subtotal"`
	PolishSurcharge bool          `json:"polish_surcharge"`
	FinalPrice      models.Money  `json:"final_price"`
	DiscountPrice   *models.Money `json:"discount_price,omitempty"`
}

// PricingService 配置计价服务
type PricingService struct {
	surchargeFactor decimal.Decimal
}

// NewPricingService 创建计价服务
func NewPricingService() *PricingService {
	factor, err := decimal.NewFromString(constants.CombinedPolishSurchargeFactor)
	if err != nil {
		factor = decimal.NewFromInt(1)
	}
	return &PricingService{surchargeFactor: factor}
}

// Quote 计算一次配置的价格。
// 基准价加所有命中的选项加价，组合抛光则对小计整体上浮并取整。
func (s *PricingService) Quote(product *models.Product, selection Selection) PriceQuote {
	quote := PriceQuote{
		BasePrice: product.EffectiveBasePrice(),
	}

	options := models.NewMoneyFromInt(0)
	options = addDelta(options, product.Modifiers.Sizes, selection.SizeKey)
	options = addDelta(options, product.Modifiers.BaseSizes, selection.BaseSizeKey)
	options = addDelta(options, product.Modifiers.FlowerSizes, selection.FlowerSizeKey)
	// 抛光只通过组合抛光的 ×1.15 系数参与计价，不走增量表
	options = addDelta(options, product.Modifiers.Materials, selection.MaterialKey)
	for _, key := range selection.EngravingKeys {
		options = addDelta(options, product.Modifiers.Engravings, key)
	}

	quote.OptionsTotal = options
	quote.Subtotal = quote.BasePrice.Add(options)
	quote.FinalPrice = quote.Subtotal

	if selection.PolishKey == constants.PolishTypeCombined {
		quote.PolishSurcharge = true
		quote.FinalPrice = quote.Subtotal.MulRound(s.surchargeFactor)
	}

	// 负增量叠加出负价时按 0 计
	if quote.FinalPrice.IsNegative() {
		quote.FinalPrice = models.NewMoneyFromInt(0)
	}

	if product.DiscountPrice != nil && product.DiscountPrice.GreaterThan(quote.FinalPrice) {
		discount := *product.DiscountPrice
		quote.DiscountPrice = &discount
	}

	return quote
}

// DefaultSelection 构建商品的默认配置：各表首个选项。
// 抛光与材质在表缺失时使用兜底键，保证配置摘要可展示。
func (s *PricingService) DefaultSelection(product *models.Product) Selection {
	selection := Selection{
		SizeKey:       product.Modifiers.Sizes.FirstKey(),
		BaseSizeKey:   product.Modifiers.BaseSizes.FirstKey(),
		FlowerSizeKey: product.Modifiers.FlowerSizes.FirstKey(),
		PolishKey:     product.Modifiers.PolishTypes.FirstKey(),
		MaterialKey:   product.Modifiers.Materials.FirstKey(),
		EngravingKeys: []string{},
	}
	if selection.PolishKey == "" {
		selection.PolishKey = constants.FallbackPolishKey
	}
	if selection.MaterialKey == "" {
		selection.MaterialKey = constants.FallbackMaterialKey
	}
	return selection
}

func addDelta(total models.Money, table models.ModifierTable, key string) models.Money {
	if key == "" {
		return total
	}
	option, ok := table.Get(key)
	if !ok {
		// 过期键静默跳过，不参与计价
		return total
	}
	return total.Add(option.PriceDelta)
}
