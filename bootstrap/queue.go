package bootstrap

import (
	"time"

	"marketplace/app/repositories"
	"marketplace/pkg/config"
	"marketplace/pkg/logger"
	"marketplace/pkg/queue"
	"marketplace/pkg/redis"
)

// SetupQueue 启动凭证识别队列工作器
// 返回工作器句柄，关闭服务时由调用方 Stop 排空在途任务
func SetupQueue() *queue.Worker {
	if redis.Manager == nil {
		logger.ErrorString("Queue", "Setup", "Redis manager not initialized")
		return nil
	}

	extractor := SetupOCR()
	if extractor == nil {
		logger.ErrorString("Queue", "Setup", "OCR service initialization failed")
		return nil
	}

	queueService := queue.NewQueueService()

	worker := queue.NewWorker(queueService, extractor, repositories.NewOrderRepository(), queue.WorkerConfig{
		WorkerCount:     config.GetInt("queue.worker_count", 5),
		TaskTimeout:     time.Duration(config.GetInt("queue.task_timeout", 90)) * time.Second,
		ShutdownTimeout: 30 * time.Second,
	})

	go worker.Start()

	logger.InfoString("Queue", "Setup", "队列服务启动成功")
	return worker
}
