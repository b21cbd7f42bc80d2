package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"marketplace/app/http/controllers/api/v1/orders"
	"marketplace/app/http/controllers/api/v1/payment"
	"marketplace/app/http/controllers/api/v1/products"
	"marketplace/app/http/controllers/api/v1/users"
	"marketplace/app/http/middlewares"
	"marketplace/pkg/queue"
	"marketplace/pkg/response"
)

// 路由限流配置
const (
	// 🌍 全局限流：每小时每IP 30000 请求
	GlobalRateLimit = "30000-H"
	// 💰 收款码生成限流：每小时每IP 200 请求
	GenerateQRLimit = "200-H"
	// 🧾 凭证识别限流：每小时每IP 60 请求（OCR 为高成本操作）
	SlipOCRLimit = "60-H"
	// 🔍 查询类接口限流：每分钟每IP 300 请求
	QueryLimit = "300-M"
)

// RegisterAPIRoutes 注册所有 API 路由
func RegisterAPIRoutes(r *gin.Engine) {
	v1 := r.Group("/v1")

	v1.Use(
		middlewares.Recovery(),
		middlewares.SecurityHeaders(),
		middlewares.LimitIP(GlobalRateLimit),
		middlewares.Cors(),
	)

	// ❤️ 健康检查
	// GET /v1/health
	v1.GET("/health", func(c *gin.Context) {
		// Redis 不可用时队列与限流都会失效，直接报不健康
		if err := queue.NewQueueService().Ping(c.Request.Context()); err != nil {
			response.Abort500(c, "queue service unavailable")
			return
		}

		response.Data(c, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	// 💰 支付相关路由
	paymentRoutes := v1.Group("/payment")
	{
		pc := payment.NewPaymentController()

		// 📝 生成 PromptPay 收款二维码
		// POST /v1/payment/qr
		paymentRoutes.POST("/qr",
			middlewares.LimitPerRoute(GenerateQRLimit),
			pc.GenerateQR,
		)

		// 🧾 同步识别转账凭证
		// POST /v1/payment/ocr
		paymentRoutes.POST("/ocr",
			middlewares.LimitPerRoute(SlipOCRLimit),
			pc.ProcessSlip,
		)
	}

	// 📦 订单相关路由
	orderRoutes := v1.Group("/orders")
	{
		oc := orders.NewOrdersController()

		// 创建订单
		// POST /v1/orders
		orderRoutes.POST("", oc.Store)

		// 订单列表
		// GET /v1/orders
		orderRoutes.GET("",
			middlewares.LimitIP(QueryLimit),
			oc.Index,
		)

		// 订单详情（附带凭证识别结果）
		// GET /v1/orders/:id
		orderRoutes.GET("/:id",
			middlewares.LimitIP(QueryLimit),
			oc.Show,
		)

		// 人工核销
		// POST /v1/orders/:id/verify
		orderRoutes.POST("/:id/verify", oc.Verify)

		// 上传转账凭证，识别任务异步入队
		// POST /v1/orders/:id/slip
		orderRoutes.POST("/:id/slip",
			middlewares.LimitPerRoute(SlipOCRLimit),
			oc.UploadSlip,
		)

		// 查询凭证识别进度
		// GET /v1/orders/slip-tasks/:task_id
		orderRoutes.GET("/slip-tasks/:task_id",
			middlewares.LimitIP(QueryLimit),
			oc.SlipStatus,
		)
	}

	// 👤 卖家账户路由
	userRoutes := v1.Group("/users")
	{
		uc := users.NewUsersController()

		// 注册卖家账户
		// POST /v1/users
		userRoutes.POST("", uc.Store)

		// 卖家信息
		// GET /v1/users/:id
		userRoutes.GET("/:id",
			middlewares.LimitIP(QueryLimit),
			uc.Show,
		)
	}

	// 🛍️ 商品相关路由
	productRoutes := v1.Group("/products")
	{
		pdc := products.NewProductsController()

		// 创建商品
		// POST /v1/products
		productRoutes.POST("", pdc.Store)

		// 商品列表
		// GET /v1/products
		productRoutes.GET("",
			middlewares.LimitIP(QueryLimit),
			pdc.Index,
		)

		// 商品详情
		// GET /v1/products/:id
		productRoutes.GET("/:id",
			middlewares.LimitIP(QueryLimit),
			pdc.Show,
		)
	}
}
