package config

import (
	"marketplace/pkg/config"
)

func init() {
	config.Add("ocr", func() map[string]interface{} {
		return map[string]interface{}{
			// 识别引擎 HTTP 服务地址
			"base_url": config.Env("OCR_BASE_URL", ""),
			"api_key":  config.Env("OCR_API_KEY", ""),

			// 单次识别超时（秒）
			"timeout": config.Env("OCR_TIMEOUT", 60),
		}
	})
}
