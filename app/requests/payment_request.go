package requests

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// QRRequest 收款二维码请求
type QRRequest struct {
	ProductID uint64 `json:"product_id" valid:"required"`
	Quantity  int    `json:"quantity" valid:"required"`
}

// OCRRequest 凭证识别请求
type OCRRequest struct {
	ImageURL string `json:"image_url" valid:"required"`
}

// ValidateQR 验证收款二维码请求
func ValidateQR(c *gin.Context) (*QRRequest, error) {
	rules := govalidator.MapData{
		"product_id": []string{"required", "numeric"},
		"quantity":   []string{"required", "numeric"},
	}

	messages := govalidator.MapData{
		"product_id": []string{
			"required:商品 ID 不能为空",
			"numeric:商品 ID 必须是数字",
		},
		"quantity": []string{
			"required:购买数量不能为空",
			"numeric:购买数量必须是数字",
		},
	}

	req, err := ValidateRequest[QRRequest](c, rules, messages)
	if err != nil {
		return nil, err
	}

	if req.Quantity < 1 {
		return nil, fmt.Errorf("购买数量至少为 1")
	}

	return &req, nil
}

// ValidateOCR 验证凭证识别请求
func ValidateOCR(c *gin.Context) (*OCRRequest, error) {
	rules := govalidator.MapData{
		"image_url": []string{"required", "min:8"},
	}

	messages := govalidator.MapData{
		"image_url": []string{
			"required:凭证图片地址不能为空",
			"min:凭证图片地址格式无效",
		},
	}

	req, err := ValidateRequest[OCRRequest](c, rules, messages)
	if err != nil {
		return nil, err
	}

	// 只接受 http(s) 地址，避免把本地路径透传给识别引擎
	if !strings.HasPrefix(req.ImageURL, "http://") && !strings.HasPrefix(req.ImageURL, "https://") {
		return nil, fmt.Errorf("凭证图片地址必须是 http(s) 链接")
	}

	return &req, nil
}
