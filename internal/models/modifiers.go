package models

import (
	"database/sql/driver"
	"encoding/json"
)

// ModifierOption 配置器选项：键、展示名、加价金额
type ModifierOption struct {
	Key        string `json:"key"`
	Label      string `json:"label"`
	PriceDelta Money  `json:"price_delta"`
}

// ModifierTable 有序选项表。顺序即录入顺序，首个选项作为默认值
type ModifierTable []ModifierOption

// Get 按键查找选项
func (t ModifierTable) Get(key string) (ModifierOption, bool) {
	for _, option := range t {
		if option.Key == key {
			return option, true
		}
	}
	return ModifierOption{}, false
}

// FirstKey 返回首个选项的键，空表返回空串
func (t ModifierTable) FirstKey() string {
	if len(t) == 0 {
		return ""
	}
	return t[0].Key
}

// Keys 返回全部选项键（按表顺序）
func (t ModifierTable) Keys() []string {
	keys := make([]string, 0, len(t))
	for _, option := range t {
		keys = append(keys, option.Key)
	}
	return keys
}

// PriceModifiers 商品配置器的全部选项表。缺失的表表示该配置组不可用
type PriceModifiers struct {
	Sizes       ModifierTable `json:"sizes,omitempty"`
	BaseSizes   ModifierTable `json:"base_sizes,omitempty"`
	FlowerSizes ModifierTable `json:"flower_sizes,omitempty"`
	PolishTypes ModifierTable `json:"polish_types,omitempty"`
	Materials   ModifierTable `json:"materials,omitempty"`
	Engravings  ModifierTable `json:"engravings,omitempty"`
}

// Value 实现 driver.Valuer 接口
func (p PriceModifiers) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan 实现 sql.Scanner 接口
func (p *PriceModifiers) Scan(value interface{}) error {
	if value == nil {
		*p = PriceModifiers{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, p)
}
