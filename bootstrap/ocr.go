package bootstrap

import (
	"time"

	"marketplace/pkg/config"
	"marketplace/pkg/logger"
	"marketplace/pkg/ocr"
)

// SetupOCR 初始化凭证识别服务
func SetupOCR() *ocr.Extractor {
	logger.InfoString("OCR", "Setup", "正在初始化凭证识别服务...")

	baseURL := config.GetString("ocr.base_url")
	if baseURL == "" {
		logger.ErrorString("OCR", "Config", "缺少必要的配置: OCR_BASE_URL 未设置")
		return nil
	}

	timeout := time.Duration(config.GetInt("ocr.timeout", 60)) * time.Second

	engine := ocr.NewHTTPEngine(
		baseURL,
		config.GetString("ocr.api_key"),
		timeout,
	)

	logger.InfoString("OCR", "Setup", "凭证识别服务初始化成功")
	return ocr.NewExtractor(engine, timeout)
}
