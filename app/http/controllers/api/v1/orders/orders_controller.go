// Package orders 订单与人工核销
package orders

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"marketplace/app/models/order"
	"marketplace/app/repositories"
	"marketplace/app/requests"
	"marketplace/pkg/queue"
	"marketplace/pkg/response"
)

type OrdersController struct {
	queueService *queue.QueueService
	orderRepo    *repositories.OrderRepository
	productRepo  *repositories.ProductRepository
}

func NewOrdersController() *OrdersController {
	return &OrdersController{
		queueService: queue.NewQueueService(),
		orderRepo:    repositories.NewOrderRepository(),
		productRepo:  repositories.NewProductRepository(),
	}
}

// Store 创建订单
func (oc *OrdersController) Store(c *gin.Context) {
	request, err := requests.ValidateOrderCreate(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	p, err := oc.productRepo.GetByID(c.Request.Context(), request.ProductID)
	if err != nil {
		response.Abort404(c, "商品不存在")
		return
	}

	if !p.HasStock(request.Quantity) {
		response.Abort400(c, "商品库存不足")
		return
	}

	// 先扣库存再下单，扣减失败说明并发下已售罄
	if err := oc.productRepo.DecrementStock(c.Request.Context(), p.ID, request.Quantity); err != nil {
		response.Abort400(c, "商品库存不足")
		return
	}

	o := &order.Order{
		ProductID:     p.ID,
		CustomerName:  request.CustomerName,
		CustomerEmail: request.CustomerEmail,
		CustomerPhone: request.CustomerPhone,
		Quantity:      request.Quantity,
		TotalAmount:   p.Total(request.Quantity),
		Status:        order.StatusPending,
	}

	if err := oc.orderRepo.Create(c.Request.Context(), o); err != nil {
		response.ServerError(c, err, "创建订单失败")
		return
	}

	response.Created(c, o, "订单创建成功")
}

// Index 分页获取订单列表
func (oc *OrdersController) Index(c *gin.Context) {
	page := c.DefaultQuery("page", "1")
	pageSize := c.DefaultQuery("page_size", "10")

	pageNum, _ := strconv.Atoi(page)
	size, _ := strconv.Atoi(pageSize)

	// 参数验证
	if pageNum < 1 {
		pageNum = 1
	}
	if size < 1 || size > 100 {
		size = 10
	}

	status := c.Query("status")
	if status != "" && !order.ValidStatusFilter(status) {
		response.Abort400(c, "无效的订单状态")
		return
	}

	list, total, err := oc.orderRepo.List(c.Request.Context(), status, pageNum, size)
	if err != nil {
		response.Abort500(c, "获取订单列表失败")
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

// Show 获取单个订单，附带凭证识别结果
func (oc *OrdersController) Show(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Abort400(c, "无效的订单 ID")
		return
	}

	o, err := oc.orderRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Abort404(c, "订单不存在")
		return
	}

	data := gin.H{"order": o}
	if record, err := o.OCRRecord(); err == nil && record != nil {
		data["ocr_record"] = record
	}

	response.Data(c, data)
}

// Verify 人工核销订单
//
// 只有待核销订单可以被核销，核销结果为 verified 或 rejected，
// 核销人与核销时间一并入库
func (oc *OrdersController) Verify(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Abort400(c, "无效的订单 ID")
		return
	}

	request, err := requests.ValidateOrderVerify(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	o, err := oc.orderRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Abort404(c, "订单不存在")
		return
	}

	if !o.IsPending() {
		response.Abort400(c, "订单已核销，不能重复操作")
		return
	}

	if err := oc.orderRepo.Verify(c.Request.Context(), id, request.Status, request.VerifiedBy); err != nil {
		response.ServerError(c, err, "核销订单失败")
		return
	}

	response.Data(c, gin.H{
		"order_id": id,
		"status":   request.Status,
	})
}

// UploadSlip 上传转账凭证，识别任务异步入队
func (oc *OrdersController) UploadSlip(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Abort400(c, "无效的订单 ID")
		return
	}

	request, err := requests.ValidateSlipUpload(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	o, err := oc.orderRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Abort404(c, "订单不存在")
		return
	}

	if !o.IsPending() {
		response.Abort400(c, "订单已核销，无需上传凭证")
		return
	}

	if err := oc.orderRepo.UpdateSlipURL(c.Request.Context(), id, request.SlipURL); err != nil {
		response.ServerError(c, err, "保存凭证地址失败")
		return
	}

	task := &queue.SlipTask{
		ID:        uuid.New().String(),
		OrderID:   id,
		ImageURL:  request.SlipURL,
		Status:    queue.TaskPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := oc.queueService.PushTask(c.Request.Context(), task); err != nil {
		response.Abort500(c, "任务入队失败")
		return
	}

	response.Data(c, gin.H{
		"order_id": id,
		"task_id":  task.ID,
		"message":  "凭证已提交，识别任务处理中",
	})
}

// SlipStatus 查询凭证识别任务进度
func (oc *OrdersController) SlipStatus(c *gin.Context) {
	taskID := c.Param("task_id")
	if taskID == "" {
		response.Abort400(c, "缺少任务 ID")
		return
	}

	progress, err := oc.queueService.GetTaskProgress(c.Request.Context(), taskID)
	if err != nil {
		response.Abort500(c, "获取任务进度失败")
		return
	}

	if progress == nil {
		response.Abort404(c, "任务不存在")
		return
	}

	// 任务未完成时只返回状态
	if progress.Status != queue.TaskCompleted && progress.Status != queue.TaskFailed {
		response.Data(c, gin.H{
			"task_id": taskID,
			"status":  progress.Status,
			"message": "任务处理中",
		})
		return
	}

	response.Data(c, gin.H{
		"task_id": taskID,
		"status":  progress.Status,
		"result":  progress.Result,
		"error":   progress.Error,
	})
}
