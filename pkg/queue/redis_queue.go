// Package queue 凭证识别任务队列
//
// OCR 识别是核销链路里唯一的耗时步骤，上传凭证后任务入队，
// 由后台工作器完成 识别 -> 解析 -> 回写订单，
// 调用方通过任务状态接口轮询进度
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"marketplace/pkg/config"
	"marketplace/pkg/redis"
)

// TaskStatus 任务状态
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskRunning   TaskStatus = "running"
	TaskCompleted TaskStatus = "completed"
	TaskFailed    TaskStatus = "failed"
)

// SlipTask 凭证识别任务
//
// Result 为 ocr.Record 的 JSON 序列化；识别失败时 Error 记录原因，
// 同一张凭证可以重新提交生成新任务
type SlipTask struct {
	ID        string     `json:"id"`
	OrderID   uint64     `json:"order_id"`
	ImageURL  string     `json:"image_url"`
	Status    TaskStatus `json:"status"`
	Result    string     `json:"result,omitempty"`
	Error     string     `json:"error,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// QueueService Redis 队列服务
type QueueService struct {
	client      *redis.RedisClient
	prefix      string
	timeout     time.Duration
	rateLimiter *rate.Limiter
	metrics     *QueueMetrics
}

// NewQueueService 创建新的队列服务实例
func NewQueueService() *QueueService {
	rateLimit := config.GetInt("queue.rate_limit", 1000)
	burst := config.GetInt("queue.rate_burst", rateLimit)

	return &QueueService{
		client:      redis.GetRedis(redis.QueueDB),
		prefix:      config.GetString("redis.queue_prefix", "marketplace:queue"),
		timeout:     time.Duration(config.GetInt("redis.queue_timeout", 3600)) * time.Second,
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), burst),
		metrics:     NewQueueMetrics(),
	}
}

// PushTask 将任务推送到队列
func (q *QueueService) PushTask(ctx context.Context, task *SlipTask) error {
	// 应用限流
	if err := q.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit exceeded: %w", err)
	}

	start := time.Now()
	defer func() {
		q.metrics.RecordPushLatency(time.Since(start))
	}()

	taskJSON, err := json.Marshal(task)
	if err != nil {
		q.metrics.RecordError(OpPush)
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	// 任务体与状态键一起写入，保证入队即可查询状态
	key := fmt.Sprintf("%s:tasks", q.prefix)
	statusKey := fmt.Sprintf("%s:status:%s", q.prefix, task.ID)

	pipe := q.client.Client.Pipeline()
	pipe.LPush(ctx, key, taskJSON)
	pipe.Set(ctx, statusKey, string(TaskPending), q.timeout)

	if _, err = pipe.Exec(ctx); err != nil {
		q.metrics.RecordError(OpPush)
		return fmt.Errorf("failed to push task: %w", err)
	}

	q.metrics.RecordSuccess(OpPush)
	return nil
}

// DequeueTask 从队列中获取任务
// 阻塞等待 blockFor；超时无任务时返回 (nil, nil)
func (q *QueueService) DequeueTask(ctx context.Context, blockFor time.Duration) (*SlipTask, error) {
	key := fmt.Sprintf("%s:tasks", q.prefix)

	result, err := q.client.Client.BRPop(ctx, blockFor, key).Result()
	if err != nil {
		if err == goredis.Nil || err == context.DeadlineExceeded {
			return nil, nil
		}
		q.metrics.RecordError(OpPop)
		return nil, fmt.Errorf("failed to pop task from queue: %w", err)
	}

	if len(result) != 2 {
		return nil, fmt.Errorf("invalid result from queue")
	}

	var task SlipTask
	if err := json.Unmarshal([]byte(result[1]), &task); err != nil {
		q.metrics.RecordError(OpPop)
		return nil, fmt.Errorf("failed to unmarshal task: %w", err)
	}

	q.metrics.RecordSuccess(OpPop)
	return &task, nil
}

// UpdateTaskStatus 更新任务状态，result / errMsg 可为空
func (q *QueueService) UpdateTaskStatus(ctx context.Context, taskID string, status TaskStatus, result, errMsg string) error {
	statusKey := fmt.Sprintf("%s:status:%s", q.prefix, taskID)
	if err := q.client.Client.Set(ctx, statusKey, string(status), q.timeout).Err(); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	if result != "" {
		resultKey := fmt.Sprintf("%s:result:%s", q.prefix, taskID)
		if err := q.client.Client.Set(ctx, resultKey, result, q.timeout).Err(); err != nil {
			return fmt.Errorf("failed to save task result: %w", err)
		}
	}

	if errMsg != "" {
		errorKey := fmt.Sprintf("%s:error:%s", q.prefix, taskID)
		if err := q.client.Client.Set(ctx, errorKey, errMsg, q.timeout).Err(); err != nil {
			return fmt.Errorf("failed to save task error: %w", err)
		}
	}

	return nil
}

// TaskProgress 任务进度信息
type TaskProgress struct {
	TaskID string     `json:"task_id"`
	Status TaskStatus `json:"status"`
	Result string     `json:"result,omitempty"`
	Error  string     `json:"error,omitempty"`
}

// GetTaskStatus 获取任务状态；任务不存在时返回空字符串
func (q *QueueService) GetTaskStatus(ctx context.Context, taskID string) (TaskStatus, error) {
	statusKey := fmt.Sprintf("%s:status:%s", q.prefix, taskID)
	status, err := q.client.Client.Get(ctx, statusKey).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("failed to get task status: %w", err)
	}

	return TaskStatus(status), nil
}

// GetTaskProgress 获取任务进度信息；任务不存在时返回 nil
func (q *QueueService) GetTaskProgress(ctx context.Context, taskID string) (*TaskProgress, error) {
	status, err := q.GetTaskStatus(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return nil, nil
	}

	progress := &TaskProgress{
		TaskID: taskID,
		Status: status,
	}

	// 已完成的任务附带解析结果
	if status == TaskCompleted {
		resultKey := fmt.Sprintf("%s:result:%s", q.prefix, taskID)
		result, err := q.client.Client.Get(ctx, resultKey).Result()
		if err != nil && err != goredis.Nil {
			return nil, fmt.Errorf("failed to get task result: %w", err)
		}
		progress.Result = result
	}

	// 失败的任务附带失败原因
	if status == TaskFailed {
		errorKey := fmt.Sprintf("%s:error:%s", q.prefix, taskID)
		errMsg, err := q.client.Client.Get(ctx, errorKey).Result()
		if err != nil && err != goredis.Nil {
			return nil, fmt.Errorf("failed to get task error: %w", err)
		}
		progress.Error = errMsg
	}

	return progress, nil
}

// Ping 检查队列服务健康状态
func (q *QueueService) Ping(ctx context.Context) error {
	return q.client.Ping()
}
