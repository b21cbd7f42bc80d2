package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"marketplace/app/repositories"
	"marketplace/pkg/logger"
	"marketplace/pkg/ocr"
)

// contextKey 自定义上下文键类型
type contextKey string

// 预定义上下文键
const (
	taskIDKey contextKey = "task_id"
)

// Worker 队列工作器
//
// 每个工作器循环从队列取出凭证任务，调用 OCR 识别并解析字段，
// 解析结果同时写回订单记录和任务结果键
type Worker struct {
	queueService *QueueService
	extractor    *ocr.Extractor
	orderRepo    *repositories.OrderRepository
	stopChan     chan struct{}
	workerCount  int
	metrics      *QueueMetrics
	wg           sync.WaitGroup
	config       WorkerConfig
}

// WorkerConfig 工作器配置
type WorkerConfig struct {
	WorkerCount     int           // 并发工作器数量
	TaskTimeout     time.Duration // 单任务超时时间
	ShutdownTimeout time.Duration // 关闭超时时间
}

// NewWorker 创建新的工作器组
func NewWorker(qs *QueueService, extractor *ocr.Extractor, orderRepo *repositories.OrderRepository, config WorkerConfig) *Worker {
	if config.WorkerCount <= 0 {
		config.WorkerCount = 5 // 默认工作器数量
	}
	if config.TaskTimeout <= 0 {
		config.TaskTimeout = 90 * time.Second
	}
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = 30 * time.Second
	}

	return &Worker{
		queueService: qs,
		extractor:    extractor,
		orderRepo:    orderRepo,
		stopChan:     make(chan struct{}),
		workerCount:  config.WorkerCount,
		metrics:      NewQueueMetrics(),
		config:       config,
	}
}

// Start 启动工作器组
func (w *Worker) Start() {
	for i := 0; i < w.workerCount; i++ {
		w.wg.Add(1)
		go w.startWorker(i)
	}
}

// startWorker 启动单个工作器
func (w *Worker) startWorker(id int) {
	defer w.wg.Done()

	logger.InfoString("Worker", "Start", fmt.Sprintf("Worker %d started", id))

	for {
		select {
		case <-w.stopChan:
			logger.InfoString("Worker", "Stop", fmt.Sprintf("Worker %d stopping", id))
			return

		default:
			if err := w.processNextTask(); err != nil {
				logger.ErrorString("Worker", "Error", fmt.Sprintf("Worker %d error: %v", id, err))
				time.Sleep(time.Second) // 错误恢复延迟
			}
		}
	}
}

// processNextTask 取出并处理下一个任务
func (w *Worker) processNextTask() error {
	ctx, cancel := context.WithTimeout(context.Background(), w.config.TaskTimeout)
	defer cancel()

	start := time.Now()
	task, err := w.queueService.DequeueTask(ctx, 5*time.Second)
	w.metrics.RecordPopLatency(time.Since(start))
	if err != nil {
		return fmt.Errorf("pop task error: %w", err)
	}
	if task == nil {
		// 队列为空，下一轮继续阻塞等待
		return nil
	}

	return w.handleTask(ctx, task)
}

// handleTask 处理单个任务
func (w *Worker) handleTask(ctx context.Context, task *SlipTask) error {
	start := time.Now()
	defer func() {
		w.metrics.RecordProcessLatency(time.Since(start))
	}()

	// 更新状态为处理中
	if err := w.queueService.UpdateTaskStatus(ctx, task.ID, TaskRunning, "", ""); err != nil {
		return fmt.Errorf("update task status error: %w", err)
	}

	result, err := w.processTask(ctx, task)
	if err != nil {
		w.metrics.RecordError(OpProcess)
		if updateErr := w.queueService.UpdateTaskStatus(ctx, task.ID, TaskFailed, "", err.Error()); updateErr != nil {
			logger.ErrorString("Worker", "UpdateStatus", updateErr.Error())
		}
		return fmt.Errorf("process task error: %w", err)
	}

	if err := w.queueService.UpdateTaskStatus(ctx, task.ID, TaskCompleted, result, ""); err != nil {
		return fmt.Errorf("update task result error: %w", err)
	}

	w.metrics.RecordSuccess(OpProcess)
	return nil
}

// processTask 识别凭证并回写订单
func (w *Worker) processTask(ctx context.Context, task *SlipTask) (string, error) {
	// 添加追踪信息 - 使用自定义类型的键
	ctx = context.WithValue(ctx, taskIDKey, task.ID)

	record, err := w.extractor.VerifySlip(ctx, task.ImageURL)
	if err != nil {
		return "", fmt.Errorf("slip extraction error: %w", err)
	}

	// 识别结果回写订单，失败不影响任务状态
	if err := w.orderRepo.AttachOCRRecord(ctx, task.OrderID, record); err != nil {
		logger.ErrorString("Worker", "SaveRecord", err.Error())
	}

	resultJSON, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal record error: %w", err)
	}

	return string(resultJSON), nil
}

// Stop 优雅关闭工作器组
func (w *Worker) Stop() {
	close(w.stopChan)

	// 等待所有工作器完成
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.InfoString("Worker", "Stop", "All workers stopped gracefully")
	case <-time.After(w.config.ShutdownTimeout):
		logger.WarnString("Worker", "Stop", "Worker shutdown timed out")
	}
}
