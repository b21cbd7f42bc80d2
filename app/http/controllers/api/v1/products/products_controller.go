// Package products 商品管理
package products

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"marketplace/app/models/product"
	"marketplace/app/repositories"
	"marketplace/app/requests"
	"marketplace/pkg/response"
)

type ProductsController struct {
	productRepo *repositories.ProductRepository
}

func NewProductsController() *ProductsController {
	return &ProductsController{
		productRepo: repositories.NewProductRepository(),
	}
}

// Store 创建商品
func (pc *ProductsController) Store(c *gin.Context) {
	request, err := requests.ValidateProductCreate(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	p := &product.Product{
		SellerID:    request.SellerID,
		Name:        request.Name,
		Description: request.Description,
		Price:       request.Price,
		ImageURL:    request.ImageURL,
		Stock:       request.Stock,
	}

	if err := pc.productRepo.Create(c.Request.Context(), p); err != nil {
		response.ServerError(c, err, "创建商品失败")
		return
	}

	response.Created(c, p, "商品创建成功")
}

// Index 分页获取商品列表
func (pc *ProductsController) Index(c *gin.Context) {
	page := c.DefaultQuery("page", "1")
	pageSize := c.DefaultQuery("page_size", "10")

	pageNum, _ := strconv.Atoi(page)
	size, _ := strconv.Atoi(pageSize)

	if pageNum < 1 {
		pageNum = 1
	}
	if size < 1 || size > 100 {
		size = 10
	}

	list, total, err := pc.productRepo.List(c.Request.Context(), pageNum, size)
	if err != nil {
		response.Abort500(c, "获取商品列表失败")
		return
	}

	response.Data(c, gin.H{
		"data": list,
		"meta": gin.H{
			"total":     total,
			"page":      pageNum,
			"page_size": size,
		},
	})
}

// Show 获取单个商品
func (pc *ProductsController) Show(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Abort400(c, "无效的商品 ID")
		return
	}

	p, err := pc.productRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Abort404(c, "商品不存在")
		return
	}

	response.Data(c, p)
}
