package requests

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// ProductCreateRequest 创建商品请求
type ProductCreateRequest struct {
	SellerID    uint64  `json:"seller_id" valid:"required"`
	Name        string  `json:"name" valid:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" valid:"required"`
	ImageURL    string  `json:"image_url"`
	Stock       int     `json:"stock"`
}

// ValidateProductCreate 验证创建商品请求
func ValidateProductCreate(c *gin.Context) (*ProductCreateRequest, error) {
	rules := govalidator.MapData{
		"seller_id": []string{"required", "numeric"},
		"name":      []string{"required", "min:1", "max:255"},
		"price":     []string{"required"},
		"stock":     []string{"numeric"},
	}

	messages := govalidator.MapData{
		"seller_id": []string{
			"required:卖家 ID 不能为空",
			"numeric:卖家 ID 必须是数字",
		},
		"name": []string{
			"required:商品名称不能为空",
			"max:商品名称长度不能超过 255 个字符",
		},
		"price": []string{
			"required:商品价格不能为空",
		},
		"stock": []string{
			"numeric:库存必须是数字",
		},
	}

	req, err := ValidateRequest[ProductCreateRequest](c, rules, messages)
	if err != nil {
		return nil, err
	}

	if req.Price <= 0 {
		return nil, fmt.Errorf("商品价格必须大于 0")
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("库存不能为负数")
	}

	return &req, nil
}
