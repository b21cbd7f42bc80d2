// Package users 卖家账户管理
package users

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"marketplace/app/models/user"
	"marketplace/app/repositories"
	"marketplace/app/requests"
	"marketplace/pkg/response"
)

type UsersController struct {
	userRepo *repositories.UserRepository
}

func NewUsersController() *UsersController {
	return &UsersController{
		userRepo: repositories.NewUserRepository(),
	}
}

// Store 注册卖家账户
//
// 注册即绑定 PromptPay 手机号，商品收款码以此号码生成
func (uc *UsersController) Store(c *gin.Context) {
	request, err := requests.ValidateUserCreate(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	// 邮箱唯一性检查
	if existing, _ := uc.userRepo.GetByEmail(c.Request.Context(), request.Email); existing != nil {
		response.Abort400(c, "该邮箱已被注册")
		return
	}

	u := &user.User{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Phone:     request.Phone,
	}
	if err := u.SetPassword(request.Password); err != nil {
		response.ServerError(c, err, "创建账户失败")
		return
	}

	if err := uc.userRepo.Create(c.Request.Context(), u); err != nil {
		response.ServerError(c, err, "创建账户失败")
		return
	}

	response.Created(c, u, "账户创建成功")
}

// Show 获取单个卖家信息
func (uc *UsersController) Show(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Abort400(c, "无效的用户 ID")
		return
	}

	u, err := uc.userRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Abort404(c, "用户不存在")
		return
	}

	response.Data(c, u)
}
