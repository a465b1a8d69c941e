package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Characteristics 购物车行的配置摘要（展示值）
type Characteristics struct {
	Size       string   `json:"size"`
	BaseSize   string   `json:"base_size"`
	FlowerSize string   `json:"flower_size"`
	Polish     string   `json:"polish"`
	Material   string   `json:"material"`
	Engravings []string `json:"engravings"`
}

// LineItem 购物车行。Identity 由商品与配置决定，首个快照在合并时保留
type LineItem struct {
	Identity        string          `json:"identity"`
	ProductID       uint            `json:"product_id"`
	Title           string          `json:"title"`
	ArticleNumber   string          `json:"article_number"`
	Description     string          `json:"description"`
	Image           string          `json:"image"`
	UnitPrice       Money           `json:"unit_price"`
	Quantity        int             `json:"quantity"`
	Characteristics Characteristics `json:"characteristics"`
}

// Subtotal 行小计
func (item LineItem) Subtotal() Money {
	return item.UnitPrice.MulRound(decimal.NewFromInt(int64(item.Quantity)))
}

// CartSnapshot 购物车快照表（键值对存储，键为 cart:<session-id>）
type CartSnapshot struct {
	Key       string    `gorm:"primarykey" json:"key"`    // 快照键
	Value     string    `gorm:"type:text" json:"value"`   // 快照内容（JSON 数组）
	UpdatedAt time.Time `json:"updated_at"`               // 最近写入时间
}

// TableName 指定表名
func (CartSnapshot) TableName() string {
	return "cart_snapshots"
}
