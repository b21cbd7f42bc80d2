package ocr

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEngine 替身引擎，统计会话的获取与释放次数
type fakeEngine struct {
	acquires      int
	closes        int
	acquireErr    error
	recognizeText string
	recognizeErr  error
	recognizeLag  time.Duration
	lastLanguages []string
}

func (f *fakeEngine) Acquire(ctx context.Context) (Session, error) {
	f.acquires++
	if f.acquireErr != nil {
		return nil, f.acquireErr
	}
	return &fakeSession{engine: f}, nil
}

type fakeSession struct {
	engine *fakeEngine
}

func (s *fakeSession) Recognize(ctx context.Context, imageRef string, languages []string) (string, error) {
	s.engine.lastLanguages = languages
	if s.engine.recognizeLag > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.engine.recognizeLag):
		}
	}
	return s.engine.recognizeText, s.engine.recognizeErr
}

func (s *fakeSession) Close() error {
	s.engine.closes++
	return nil
}

func TestExtractTextSuccess(t *testing.T) {
	engine := &fakeEngine{recognizeText: "ยอดเงิน 100.00 บาท"}
	extractor := NewExtractor(engine, time.Second)

	text, err := extractor.ExtractText(context.Background(), "https://example.com/slip.jpg")

	require.NoError(t, err)
	assert.Equal(t, "ยอดเงิน 100.00 บาท", text)
	// 固定开启英泰双语识别
	assert.Equal(t, []string{"eng", "tha"}, engine.lastLanguages)
	// 会话获取与释放成对
	assert.Equal(t, engine.acquires, engine.closes)
}

// 识别结果为空是合法输出，不是错误
func TestExtractTextEmptyResult(t *testing.T) {
	engine := &fakeEngine{recognizeText: ""}
	extractor := NewExtractor(engine, time.Second)

	text, err := extractor.ExtractText(context.Background(), "slip.jpg")

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtractTextRecognizeFailure(t *testing.T) {
	engine := &fakeEngine{recognizeErr: errors.New("engine crashed")}
	extractor := NewExtractor(engine, time.Second)

	_, err := extractor.ExtractText(context.Background(), "slip.jpg")

	require.Error(t, err)
	assert.True(t, IsExtractionError(err))
	assert.False(t, IsTimeout(err))

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "recognize", extractionErr.Op)

	// 识别失败时会话同样被释放
	assert.Equal(t, 1, engine.acquires)
	assert.Equal(t, 1, engine.closes)
}

func TestExtractTextAcquireFailure(t *testing.T) {
	engine := &fakeEngine{acquireErr: errors.New("no engine available")}
	extractor := NewExtractor(engine, time.Second)

	_, err := extractor.ExtractText(context.Background(), "slip.jpg")

	require.Error(t, err)
	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "acquire", extractionErr.Op)
	assert.Equal(t, 0, engine.closes)
}

// 超时中断识别后会话仍被释放，错误带超时标记
func TestExtractTextTimeoutReleasesSession(t *testing.T) {
	engine := &fakeEngine{
		recognizeText: "never returned",
		recognizeLag:  500 * time.Millisecond,
	}
	extractor := NewExtractor(engine, 20*time.Millisecond)

	_, err := extractor.ExtractText(context.Background(), "slip.jpg")

	require.Error(t, err)
	assert.True(t, IsExtractionError(err))
	assert.True(t, IsTimeout(err))
	assert.Equal(t, 1, engine.acquires)
	assert.Equal(t, 1, engine.closes)
}

func TestVerifySlip(t *testing.T) {
	engine := &fakeEngine{recognizeText: "ยอดเงิน: 1,234.56 บาท วันที่ 15/03/2025 Ref: ABC123"}
	extractor := NewExtractor(engine, time.Second)

	record, err := extractor.VerifySlip(context.Background(), "slip.jpg")

	require.NoError(t, err)
	assert.Equal(t, "1,234.56", record.Amount)
	assert.Equal(t, "15/03/2025", record.Date)
	assert.Equal(t, "ABC123", record.Reference)
}

func TestVerifySlipExtractionFailure(t *testing.T) {
	engine := &fakeEngine{recognizeErr: errors.New("engine crashed")}
	extractor := NewExtractor(engine, time.Second)

	_, err := extractor.VerifySlip(context.Background(), "slip.jpg")
	assert.True(t, IsExtractionError(err))
}
