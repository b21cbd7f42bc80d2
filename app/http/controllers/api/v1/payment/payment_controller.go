// Package payment 收款二维码与转账凭证识别
package payment

import (
	"time"

	"github.com/gin-gonic/gin"

	"marketplace/app/models/order"
	"marketplace/app/repositories"
	"marketplace/app/requests"
	"marketplace/pkg/config"
	"marketplace/pkg/ocr"
	"marketplace/pkg/promptpay"
	"marketplace/pkg/response"
)

type PaymentController struct {
	extractor   *ocr.Extractor
	productRepo *repositories.ProductRepository
	orderRepo   *repositories.OrderRepository
	userRepo    *repositories.UserRepository
}

func NewPaymentController() *PaymentController {
	return &PaymentController{
		extractor:   NewExtractor(),
		productRepo: repositories.NewProductRepository(),
		orderRepo:   repositories.NewOrderRepository(),
		userRepo:    repositories.NewUserRepository(),
	}
}

// NewExtractor 按配置构建凭证识别器
func NewExtractor() *ocr.Extractor {
	engine := ocr.NewHTTPEngine(
		config.GetString("ocr.base_url"),
		config.GetString("ocr.api_key"),
		time.Duration(config.GetInt("ocr.timeout", 60))*time.Second,
	)
	return ocr.NewExtractor(engine, time.Duration(config.GetInt("ocr.timeout", 60))*time.Second)
}

// GenerateQR 生成 PromptPay 收款二维码
//
// 金额取商品单价乘以数量，收款账户为卖家绑定的 PromptPay 手机号，
// 同时创建一笔待核销订单，买家转账后凭订单号上传凭证
func (pc *PaymentController) GenerateQR(c *gin.Context) {
	// 1. 请求验证
	request, err := requests.ValidateQR(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	// 2. 查询商品与卖家
	p, err := pc.productRepo.GetByID(c.Request.Context(), request.ProductID)
	if err != nil {
		response.Abort404(c, "商品不存在")
		return
	}

	if !p.HasStock(request.Quantity) {
		response.Abort400(c, "商品库存不足")
		return
	}

	seller, err := pc.userRepo.GetByID(c.Request.Context(), p.SellerID)
	if err != nil {
		response.Abort404(c, "卖家不存在")
		return
	}
	if seller.Phone == "" {
		response.Abort400(c, "卖家未绑定 PromptPay 账户")
		return
	}

	// 3. 生成收款码
	total := p.Total(request.Quantity)
	payload, err := promptpay.GeneratePayload(seller.Phone, total)
	if err != nil {
		response.BadRequest(c, err, "生成收款码失败")
		return
	}

	qrImage, err := promptpay.RenderQR(payload)
	if err != nil {
		response.ServerError(c, err, "渲染二维码失败")
		return
	}

	// 4. 创建待核销订单
	o := &order.Order{
		ProductID:   p.ID,
		Quantity:    request.Quantity,
		TotalAmount: total,
		Status:      order.StatusPending,
	}
	if err := pc.orderRepo.Create(c.Request.Context(), o); err != nil {
		response.ServerError(c, err, "创建订单失败")
		return
	}

	response.Data(c, gin.H{
		"order_id": o.ID,
		"amount":   total,
		"payload":  payload,
		"qr_code":  qrImage,
	})
}

// ProcessSlip 同步识别转账凭证并解析关键字段
func (pc *PaymentController) ProcessSlip(c *gin.Context) {
	request, err := requests.ValidateOCR(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	rawText, err := pc.extractor.ExtractText(c.Request.Context(), request.ImageURL)
	if err != nil {
		if ocr.IsTimeout(err) {
			response.ServerError(c, err, "凭证识别超时，请稍后重试")
			return
		}
		response.ServerError(c, err, "凭证识别失败")
		return
	}

	if rawText == "" {
		response.Abort400(c, "无法从图片中识别出文字")
		return
	}

	record := ocr.ParseSlip(rawText)
	response.Data(c, record)
}
