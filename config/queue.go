package config

import "marketplace/pkg/config"

func init() {
	config.Add("queue", func() map[string]interface{} {
		return map[string]interface{}{
			"rate_limit":   config.Env("QUEUE_RATE_LIMIT", 1000),
			"rate_burst":   config.Env("QUEUE_RATE_BURST", 1000),
			"worker_count": config.Env("QUEUE_WORKER_COUNT", 5),

			// 单个识别任务的整体超时（秒），要大于 OCR 引擎自身的超时
			"task_timeout": config.Env("QUEUE_TASK_TIMEOUT", 90),
		}
	})
}
