package requests

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// UserCreateRequest 卖家注册请求
type UserCreateRequest struct {
	FirstName string `json:"first_name" valid:"required"`
	LastName  string `json:"last_name" valid:"required"`
	Email     string `json:"email" valid:"required"`
	Password  string `json:"password" valid:"required"`
	Phone     string `json:"phone" valid:"required"`
}

// 泰国手机号：0 开头的 10 位数字，收款码以此号码生成
var thaiMobile = regexp.MustCompile(`^0\d{9}$`)

// ValidateUserCreate 验证卖家注册请求
func ValidateUserCreate(c *gin.Context) (*UserCreateRequest, error) {
	rules := govalidator.MapData{
		"first_name": []string{"required", "min:1", "max:50"},
		"last_name":  []string{"required", "min:1", "max:50"},
		"email":      []string{"required", "email"},
		"password":   []string{"required", "min:8", "max:100"},
		"phone":      []string{"required"},
	}

	messages := govalidator.MapData{
		"first_name": []string{
			"required:名字不能为空",
			"max:名字长度不能超过 50 个字符",
		},
		"last_name": []string{
			"required:姓氏不能为空",
			"max:姓氏长度不能超过 50 个字符",
		},
		"email": []string{
			"required:邮箱不能为空",
			"email:邮箱格式无效",
		},
		"password": []string{
			"required:密码不能为空",
			"min:密码长度不能小于 8 个字符",
			"max:密码长度不能超过 100 个字符",
		},
		"phone": []string{
			"required:PromptPay 手机号不能为空",
		},
	}

	req, err := ValidateRequest[UserCreateRequest](c, rules, messages)
	if err != nil {
		return nil, err
	}

	if !thaiMobile.MatchString(req.Phone) {
		return nil, fmt.Errorf("手机号必须是 0 开头的 10 位数字")
	}

	return &req, nil
}
