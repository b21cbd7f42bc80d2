// Package order 存放订单 Model 相关逻辑
package order

import (
	"time"

	"marketplace/app/models"
)

// Order 订单模型
//
// OCRData 存放凭证解析结果的 JSON 文本（ocr.Record 序列化），
// 部分提取甚至全部提取失败都是合法状态，核销以人工判断为准
type Order struct {
	ID             uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID      uint64     `gorm:"index" json:"product_id"`
	CustomerName   string     `gorm:"type:varchar(255)" json:"customer_name,omitempty"`
	CustomerEmail  string     `gorm:"type:varchar(255)" json:"customer_email,omitempty"`
	CustomerPhone  string     `gorm:"type:varchar(20)" json:"customer_phone,omitempty"`
	Quantity       int        `gorm:"default:1" json:"quantity"`
	TotalAmount    float64    `gorm:"type:decimal(10,2)" json:"total_amount"`
	PaymentSlipURL string     `gorm:"type:text" json:"payment_slip_url,omitempty"`
	Status         string     `gorm:"type:varchar(20);index" json:"status"`
	OCRData        string     `gorm:"column:ocr_data;type:text" json:"-"`
	VerifiedAt     *time.Time `json:"verified_at,omitempty"`
	VerifiedBy     *uint64    `json:"verified_by,omitempty"`

	models.CommonTimestampsField
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
