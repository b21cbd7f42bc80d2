package ocr

import (
	"context"
	"errors"
	"fmt"
)

// 识别语言组合，凭证上泰文与英文混排，两种语言同时开启
var Languages = []string{"eng", "tha"}

// Engine OCR 引擎抽象
//
// 引擎会话按调用获取（Acquire -> Recognize -> Close），
// 不跨请求持有，避免并发请求之间互相污染引擎内部状态。
// 测试时可注入返回固定文本/错误的替身引擎。
type Engine interface {
	// Acquire 获取一个引擎会话，失败返回错误
	Acquire(ctx context.Context) (Session, error)
}

// Session 单次识别会话
type Session interface {
	// Recognize 识别图片中的文字，结果可能为空字符串（合法输出）
	Recognize(ctx context.Context, imageRef string, languages []string) (string, error)
	// Close 释放会话资源，必须与 Acquire 成对调用
	Close() error
}

// ExtractionError 识别失败错误
//
// 包含引擎初始化失败、识别失败与超时三类；调用方可整体重试
// 识别流程，本包内部不做重试
type ExtractionError struct {
	Op      string // acquire 或 recognize
	Timeout bool   // 是否由超时引起
	Err     error
}

// Error 实现 error 接口
func (e *ExtractionError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("ocr %s timeout: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("ocr %s failed: %v", e.Op, e.Err)
}

// Unwrap 支持 errors.Is / errors.As
func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// IsExtractionError 判断是否为识别失败错误
func IsExtractionError(err error) bool {
	var target *ExtractionError
	return errors.As(err, &target)
}

// IsTimeout 判断识别失败是否由超时引起
func IsTimeout(err error) bool {
	var target *ExtractionError
	return errors.As(err, &target) && target.Timeout
}
