// Package user 存放卖家用户 Model 相关逻辑
package user

import (
	"marketplace/app/models"
)

// User 卖家用户模型
type User struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string `gorm:"type:varchar(100)" json:"first_name"`
	LastName  string `gorm:"type:varchar(100)" json:"last_name"`
	Email     string `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Password  string `gorm:"type:varchar(255)" json:"-"` // 密码哈希，永不外泄
	Phone     string `gorm:"type:varchar(20)" json:"phone"` // PromptPay 收款手机号

	models.CommonTimestampsField
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
