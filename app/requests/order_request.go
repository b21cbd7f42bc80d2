package requests

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// OrderCreateRequest 创建订单请求
type OrderCreateRequest struct {
	ProductID     uint64 `json:"product_id" valid:"required"`
	CustomerName  string `json:"customer_name" valid:"required"`
	CustomerEmail string `json:"customer_email" valid:"required"`
	CustomerPhone string `json:"customer_phone"`
	Quantity      int    `json:"quantity" valid:"required"`
}

// OrderVerifyRequest 人工核销请求
type OrderVerifyRequest struct {
	Status     string `json:"status" valid:"required"`
	VerifiedBy uint64 `json:"verified_by" valid:"required"`
}

// SlipUploadRequest 凭证上传请求
type SlipUploadRequest struct {
	SlipURL string `json:"slip_url" valid:"required"`
}

// ValidateOrderCreate 验证创建订单请求
func ValidateOrderCreate(c *gin.Context) (*OrderCreateRequest, error) {
	rules := govalidator.MapData{
		"product_id":     []string{"required", "numeric"},
		"customer_name":  []string{"required", "min:1", "max:255"},
		"customer_email": []string{"required", "email"},
		"customer_phone": []string{"digits_between:9,16"},
		"quantity":       []string{"required", "numeric"},
	}

	messages := govalidator.MapData{
		"product_id": []string{
			"required:商品 ID 不能为空",
			"numeric:商品 ID 必须是数字",
		},
		"customer_name": []string{
			"required:买家姓名不能为空",
			"max:买家姓名长度不能超过 255 个字符",
		},
		"customer_email": []string{
			"required:买家邮箱不能为空",
			"email:买家邮箱格式无效",
		},
		"customer_phone": []string{
			"digits_between:买家手机号格式无效",
		},
		"quantity": []string{
			"required:购买数量不能为空",
			"numeric:购买数量必须是数字",
		},
	}

	req, err := ValidateRequest[OrderCreateRequest](c, rules, messages)
	if err != nil {
		return nil, err
	}

	if req.Quantity < 1 {
		return nil, fmt.Errorf("购买数量至少为 1")
	}

	return &req, nil
}

// ValidateOrderVerify 验证人工核销请求
func ValidateOrderVerify(c *gin.Context) (*OrderVerifyRequest, error) {
	rules := govalidator.MapData{
		"status":      []string{"required", "in:verified,rejected"},
		"verified_by": []string{"required", "numeric"},
	}

	messages := govalidator.MapData{
		"status": []string{
			"required:核销状态不能为空",
			"in:核销状态必须是 verified 或 rejected",
		},
		"verified_by": []string{
			"required:核销人 ID 不能为空",
			"numeric:核销人 ID 必须是数字",
		},
	}

	req, err := ValidateRequest[OrderVerifyRequest](c, rules, messages)
	if err != nil {
		return nil, err
	}

	return &req, nil
}

// ValidateSlipUpload 验证凭证上传请求
func ValidateSlipUpload(c *gin.Context) (*SlipUploadRequest, error) {
	rules := govalidator.MapData{
		"slip_url": []string{"required", "min:8"},
	}

	messages := govalidator.MapData{
		"slip_url": []string{
			"required:凭证地址不能为空",
			"min:凭证地址格式无效",
		},
	}

	req, err := ValidateRequest[SlipUploadRequest](c, rules, messages)
	if err != nil {
		return nil, err
	}

	if !strings.HasPrefix(req.SlipURL, "http://") && !strings.HasPrefix(req.SlipURL, "https://") {
		return nil, fmt.Errorf("凭证地址必须是 http(s) 链接")
	}

	return &req, nil
}
