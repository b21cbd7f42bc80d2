package migrations

import (
	"marketplace/app/models/order"
	"marketplace/app/models/product"
	"marketplace/app/models/user"
)

// RegisterTables 返回需要迁移的表的模型列表
func RegisterTables() []interface{} {
	return []interface{}{
		&user.User{},
		&product.Product{},
		&order.Order{},
	}
}
