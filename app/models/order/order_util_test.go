package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/pkg/ocr"
)

func TestStatusHelpers(t *testing.T) {
	o := &Order{Status: StatusPending}
	assert.True(t, o.IsPending())

	o.Status = StatusVerified
	assert.False(t, o.IsPending())

	assert.True(t, ValidStatusTransition(StatusVerified))
	assert.True(t, ValidStatusTransition(StatusRejected))
	assert.False(t, ValidStatusTransition(StatusPending))
	assert.False(t, ValidStatusTransition("paid"))

	assert.True(t, ValidStatusFilter(StatusPending))
	assert.True(t, ValidStatusFilter(StatusRejected))
	assert.False(t, ValidStatusFilter(""))
}

func TestOCRRecordRoundTrip(t *testing.T) {
	o := &Order{}

	record, err := o.OCRRecord()
	require.NoError(t, err)
	assert.Nil(t, record, "尚未上传凭证的订单不应有识别结果")

	in := ocr.Record{
		RawText:   "โอนเงินสำเร็จ\nจำนวน: 1,234.56 บาท",
		Amount:    "1,234.56",
		Date:      "15/03/2025",
		Reference: "ABC123",
	}
	require.NoError(t, o.SetOCRRecord(in))
	assert.NotEmpty(t, o.OCRData)

	out, err := o.OCRRecord()
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in, *out)
}

func TestOCRRecordPartialFields(t *testing.T) {
	o := &Order{}

	// 只识别出原始文本也是合法状态
	require.NoError(t, o.SetOCRRecord(ocr.Record{RawText: "Thank you for your purchase"}))

	out, err := o.OCRRecord()
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Thank you for your purchase", out.RawText)
	assert.Empty(t, out.Amount)
	assert.Empty(t, out.Date)
	assert.Empty(t, out.Reference)
}

func TestOCRRecordInvalidJSON(t *testing.T) {
	o := &Order{OCRData: "{not json"}

	record, err := o.OCRRecord()
	assert.Error(t, err)
	assert.Nil(t, record)
}
