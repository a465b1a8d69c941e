package service

import (
	"fmt"
	"strings"

	"github.com/granit-next/internal/constants"
	"github.com/granit-next/internal/models"
)

// BuildIdentity 构建配置行标识。
// 格式固定为 商品ID-尺寸-底座-花坛-抛光-材质-雕刻串，
// 雕刻按用户选择顺序用 - 连接，空列表保留结尾的分隔符。
func BuildIdentity(productID uint, selection Selection) string {
	return fmt.Sprintf("%d-%s-%s-%s-%s-%s-%s",
		productID,
		selection.SizeKey,
		selection.BaseSizeKey,
		selection.FlowerSizeKey,
		selection.PolishKey,
		selection.MaterialKey,
		strings.Join(selection.EngravingKeys, "-"),
	)
}

// QuickAddIdentity 快速加购行标识
func QuickAddIdentity(productID uint) string {
	return fmt.Sprintf("%d-%s", productID, constants.QuickAddIdentitySuffix)
}

// BuildCharacteristics 构建配置摘要展示值
func BuildCharacteristics(product *models.Product, selection Selection) models.Characteristics {
	engravings := make([]string, 0, len(selection.EngravingKeys))
	for _, key := range selection.EngravingKeys {
		engravings = append(engravings, labelOrKey(product.Modifiers.Engravings, key))
	}
	return models.Characteristics{
		Size:       sizeLabel(product.Modifiers.Sizes, selection.SizeKey),
		BaseSize:   sizeLabel(product.Modifiers.BaseSizes, selection.BaseSizeKey),
		FlowerSize: sizeLabel(product.Modifiers.FlowerSizes, selection.FlowerSizeKey),
		Polish:     polishLabel(product.Modifiers.PolishTypes, selection.PolishKey),
		Material:   materialLabel(product.Modifiers.Materials, selection.MaterialKey),
		Engravings: engravings,
	}
}

// BuildLineItem 从配置与报价构建购物车行
func BuildLineItem(product *models.Product, selection Selection, quote PriceQuote, quantity int) models.LineItem {
	characteristics := BuildCharacteristics(product, selection)
	return models.LineItem{
		Identity:        BuildIdentity(product.ID, selection),
		ProductID:       product.ID,
		Title:           product.Title,
		ArticleNumber:   product.ArticleNumber(),
		Description:     describeCharacteristics(characteristics),
		Image:           product.MainImage(),
		UnitPrice:       quote.FinalPrice,
		Quantity:        quantity,
		Characteristics: characteristics,
	}
}

// BuildQuickAddLineItem 构建标准配置的快速加购行，单价取商品标价
func BuildQuickAddLineItem(product *models.Product) models.LineItem {
	return models.LineItem{
		Identity:      QuickAddIdentity(product.ID),
		ProductID:     product.ID,
		Title:         product.Title,
		ArticleNumber: product.ArticleNumber(),
		Description:   constants.QuickAddDescription,
		Image:         product.MainImage(),
		UnitPrice:     product.Price,
		Quantity:      1,
		Characteristics: models.Characteristics{
			Size:       constants.QuickAddSizeLabel,
			BaseSize:   constants.QuickAddBaseSizeLabel,
			FlowerSize: constants.QuickAddFlowerSizeLabel,
			Polish:     constants.QuickAddPolishLabel,
			Material:   constants.QuickAddMaterialLabel,
			Engravings: []string{},
		},
	}
}

func describeCharacteristics(c models.Characteristics) string {
	parts := make([]string, 0, 6)
	if c.Size != "" {
		parts = append(parts, fmt.Sprintf("%s: %s", constants.CharacteristicSizeLabel, c.Size))
	}
	if c.BaseSize != "" {
		parts = append(parts, fmt.Sprintf("%s: %s", constants.CharacteristicBaseSizeLabel, c.BaseSize))
	}
	if c.FlowerSize != "" {
		parts = append(parts, fmt.Sprintf("%s: %s", constants.CharacteristicFlowerSizeLabel, c.FlowerSize))
	}
	if c.Polish != "" {
		parts = append(parts, fmt.Sprintf("%s: %s", constants.CharacteristicPolishLabel, c.Polish))
	}
	if c.Material != "" {
		parts = append(parts, fmt.Sprintf("%s: %s", constants.CharacteristicMaterialLabel, c.Material))
	}
	if len(c.Engravings) > 0 {
		parts = append(parts, fmt.Sprintf("%s: %s", constants.CharacteristicEngravingLabel, strings.Join(c.Engravings, ", ")))
	}
	return strings.Join(parts, ", ")
}

// sizeLabel 与 labelOrKey 的区别是未选中时返回占位展示值。
func sizeLabel(table models.ModifierTable, key string) string {
	if key == "" {
		return constants.CharacteristicDefaultValue
	}
	return labelOrKey(table, key)
}

func labelOrKey(table models.ModifierTable, key string) string {
	if key == "" {
		return ""
	}
	if option, ok := table.Get(key); ok && option.Label != "" {
		return option.Label
	}
	return key
}

func polishLabel(table models.ModifierTable, key string) string {
	if option, ok := table.Get(key); ok && option.Label != "" {
		return option.Label
	}
	switch key {
	case constants.PolishTypeMirror:
		return constants.PolishLabelMirror
	case constants.PolishTypeCombined:
		return constants.PolishLabelCombined
	}
	return key
}

func materialLabel(table models.ModifierTable, key string) string {
	if option, ok := table.Get(key); ok && option.Label != "" {
		return option.Label
	}
	if key == constants.FallbackMaterialKey {
		return constants.MaterialLabelBlackGranite
	}
	return key
}
