package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/granit-next/internal/constants"
)

// ProductImage 商品图片
type ProductImage struct {
	ID     int    `json:"id"`
	URL    string `json:"url"`
	IsMain bool   `json:"is_main"`
}

// ProductImages 商品图片数组，以 JSON 存储
type ProductImages []ProductImage

// Value 实现 driver.Valuer 接口
func (p ProductImages) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

// Scan 实现 sql.Scanner 接口
func (p *ProductImages) Scan(value interface{}) error {
	if value == nil {
		*p = ProductImages{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, p)
}

// Product 商品表
type Product struct {
	ID            uint           `gorm:"primarykey" json:"id"`                              // 主键
	CategoryID    uint           `gorm:"not null;index" json:"category_id"`                 // 分类ID
	Slug          string         `gorm:"uniqueIndex;not null" json:"slug"`                  // 唯一标识
	Title         string         `gorm:"type:varchar(300);not null" json:"title"`           // 商品标题
	Description   string         `gorm:"type:text" json:"description"`                      // 商品描述
	Price         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 标价
	BasePrice     Money          `gorm:"type:decimal(20,2);default:0" json:"base_price"`    // 配置器基准价（为零时回退到标价）
	DiscountPrice *Money         `gorm:"type:decimal(20,2)" json:"discount_price"`          // 划线价（仅当高于成交价时展示）
	Images        ProductImages  `gorm:"type:json" json:"images"`                           // 图片数组
	Modifiers     PriceModifiers `gorm:"type:json" json:"modifiers"`                        // 配置器选项表
	IsActive      bool           `gorm:"default:true;index" json:"is_active"`               // 是否上架
	SortOrder     int            `gorm:"default:0;index" json:"sort_order"`                 // 排序权重
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                           // 创建时间
	UpdatedAt     time.Time      `json:"updated_at"`                                        // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                    // 软删除时间

	// 关联
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// EffectiveBasePrice 配置器计价基准价
func (p *Product) EffectiveBasePrice() Money {
	if p.BasePrice.IsZero() {
		return p.Price
	}
	return p.BasePrice
}

// ArticleNumber 货号（前缀 + 商品 ID）
func (p *Product) ArticleNumber() string {
	return fmt.Sprintf("%s%d", constants.ArticleNumberPrefix, p.ID)
}

// MainImage 主图地址。优先取标记为主图的条目，否则取首图，空图集返回空串
func (p *Product) MainImage() string {
	for _, image := range p.Images {
		if image.IsMain {
			return image.URL
		}
	}
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}
