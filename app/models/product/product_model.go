// Package product 存放商品 Model 相关逻辑
package product

import (
	"marketplace/app/models"
)

// Product 商品模型
type Product struct {
	ID          uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	SellerID    uint64  `gorm:"index" json:"seller_id"` // 商品归属的卖家
	Name        string  `gorm:"type:varchar(255)" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"type:decimal(10,2)" json:"price"` // 泰铢，两位小数
	ImageURL    string  `gorm:"type:text" json:"image_url"`
	Stock       int     `gorm:"default:0" json:"stock"`

	models.CommonTimestampsField
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
