package ocr

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPEngine 基于 HTTP 的 OCR 引擎适配器
//
// 对接 tesseract-server 风格的识别服务：传入图片 URL 与语言组合，
// 返回识别文本。识别服务自身的准确率不在本服务保证范围内。
type HTTPEngine struct {
	baseURL string
	apiKey  string
	client  *resty.Client
}

// recognizeRequest 识别服务请求结构
type recognizeRequest struct {
	ImageURL  string `json:"image_url"`
	Languages string `json:"languages"`
}

// recognizeResponse 识别服务响应结构
type recognizeResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// NewHTTPEngine 创建 HTTP OCR 引擎
//
// 客户端不设重试：识别失败由调用方决定是否整体重试
func NewHTTPEngine(baseURL, apiKey string, timeout time.Duration) *HTTPEngine {
	client := resty.New().
		SetTimeout(timeout)

	return &HTTPEngine{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

// Acquire 获取识别会话
func (e *HTTPEngine) Acquire(ctx context.Context) (Session, error) {
	if e.baseURL == "" {
		return nil, fmt.Errorf("ocr engine url not configured")
	}
	return &httpSession{engine: e}, nil
}

// httpSession HTTP 引擎的单次识别会话
type httpSession struct {
	engine *HTTPEngine
	closed bool
}

// Recognize 调用识别服务
func (s *httpSession) Recognize(ctx context.Context, imageRef string, languages []string) (string, error) {
	if s.closed {
		return "", fmt.Errorf("session already closed")
	}

	req := recognizeRequest{
		ImageURL:  imageRef,
		Languages: strings.Join(languages, "+"),
	}

	r := s.engine.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req)
	if s.engine.apiKey != "" {
		r.SetHeader("Authorization", "Bearer "+s.engine.apiKey)
	}

	resp, err := r.Post(s.engine.baseURL + "/api/recognize")
	if err != nil {
		return "", fmt.Errorf("call ocr service failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("ocr service returned non-200 status: %d, body: %s",
			resp.StatusCode(), resp.String())
	}

	var result recognizeResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("unmarshal ocr response failed: %w", err)
	}
	if result.Error != "" {
		return "", fmt.Errorf("ocr service error: %s", result.Error)
	}

	return result.Text, nil
}

// Close 释放会话
func (s *httpSession) Close() error {
	s.closed = true
	return nil
}
