package ocr

import (
	"context"
	"errors"
	"time"
)

// DefaultTimeout 单次识别的默认超时时间
// OCR 是核销链路里唯一的耗时步骤，超时必须兜底
const DefaultTimeout = 60 * time.Second

// Extractor 凭证文字提取器
//
// 外部 OCR 引擎的薄封装：每次调用独立获取并释放会话，
// 释放在任何失败路径（含超时/取消）上都保证执行
type Extractor struct {
	engine  Engine
	timeout time.Duration
}

// NewExtractor 创建提取器
func NewExtractor(engine Engine, timeout time.Duration) *Extractor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Extractor{
		engine:  engine,
		timeout: timeout,
	}
}

// ExtractText 识别图片中的文字
//
// imageRef 为任意可取用的图片定位符（URL 或路径）。
// 识别结果可能为空字符串，这是合法输出而非错误；
// 引擎失败或超时返回 *ExtractionError
func (e *Extractor) ExtractText(ctx context.Context, imageRef string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	session, err := e.engine.Acquire(ctx)
	if err != nil {
		return "", &ExtractionError{Op: "acquire", Timeout: isDeadline(ctx, err), Err: err}
	}
	// 会话与获取成对释放，识别抛错时同样执行
	defer session.Close()

	text, err := session.Recognize(ctx, imageRef, Languages)
	if err != nil {
		return "", &ExtractionError{Op: "recognize", Timeout: isDeadline(ctx, err), Err: err}
	}

	return text, nil
}

// VerifySlip 完整的凭证识别流程：先识别后解析
//
// 同一次核销内解析永远在识别完成之后执行；识别失败时错误上抛，
// 解析阶段不会失败
func (e *Extractor) VerifySlip(ctx context.Context, imageRef string) (Record, error) {
	text, err := e.ExtractText(ctx, imageRef)
	if err != nil {
		return Record{}, err
	}
	return ParseSlip(text), nil
}

// isDeadline 判断错误是否由上下文超时/取消导致
func isDeadline(ctx context.Context, err error) bool {
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(ctx.Err(), context.DeadlineExceeded)
}
