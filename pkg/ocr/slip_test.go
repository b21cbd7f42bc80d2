package ocr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSlipFullSlip(t *testing.T) {
	text := "ยอดเงิน: 1,234.56 บาท วันที่ 15/03/2025 Ref: ABC123"

	record := ParseSlip(text)

	assert.Equal(t, text, record.RawText)
	assert.Equal(t, "1,234.56", record.Amount)
	assert.Equal(t, "15/03/2025", record.Date)
	assert.Equal(t, "ABC123", record.Reference)
}

func TestParseSlipNoStructuredContent(t *testing.T) {
	text := "Thank you for your purchase"

	record := ParseSlip(text)

	assert.Equal(t, text, record.RawText)
	assert.Empty(t, record.Amount)
	assert.Empty(t, record.Date)
	assert.Empty(t, record.Reference)
}

// 解析永不失败，任何输入都返回带 RawText 的记录
func TestParseSlipTotality(t *testing.T) {
	inputs := []string{
		"",
		"   \n\t  ",
		"สวัสดีครับ ขอบคุณครับ",
		"😀🎉💸",
		"Кириллица без цифр",
		strings.Repeat("x", 100000),
	}

	for _, input := range inputs {
		record := ParseSlip(input)
		assert.Equal(t, input, record.RawText)
		assert.Empty(t, record.Amount)
		assert.Empty(t, record.Date)
		assert.Empty(t, record.Reference)
	}
}

// 货币标记前缀规则优先于裸小数规则，即使裸小数在文本中更靠前
func TestParseSlipAmountPrecedence(t *testing.T) {
	record := ParseSlip("fee 1,250.00 total THB 500.00")
	assert.Equal(t, "500.00", record.Amount)

	// 泰铢符号同样视作货币标记
	record = ParseSlip("fee 1,250.00 total ฿99.00")
	assert.Equal(t, "99.00", record.Amount)
}

func TestParseSlipAmountRuleOrder(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"货币标记前缀", "THB 1,234,567.89", "1,234,567.89"},
		{"金额标签英文", "Amount: 250.00", "250.00"},
		{"金额标签泰文", "จำนวน 3,000.50", "3,000.50"},
		{"裸千分位小数", "paid 1,234.56 via app", "1,234.56"},
		{"货币标记后无小数", "บาท 1,500", "1,500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSlip(tt.text).Amount)
		})
	}
}

func TestParseSlipDateStyles(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"斜杠分隔", "15/03/2025", "15/03/2025"},
		{"连字符分隔", "15-03-2025", "15-03-2025"},
		{"点号分隔", "15.03.2025", "15.03.2025"},
		{"年在前", "2025/03/15", "2025/03/15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 分隔符原样保留，不做归一化
			assert.Equal(t, tt.want, ParseSlip(tt.text).Date)
		})
	}
}

func TestParseSlipReferenceRuleOrder(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"引用标签", "Ref: ABC123", "ABC123"},
		{"完整引用标签", "Reference 2024-001-XYZ", "2024-001-XYZ"},
		{"泰文引用标签", "เลขที่อ้างอิง: TH999", "TH999"},
		{"交易标签", "Transaction 1234567890", "1234567890"},
		{"通用编号标签", "number A1B2C3", "A1B2C3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSlip(tt.text).Reference)
		})
	}
}

// 同一字段取文本中的第一处匹配
func TestParseSlipFirstMatchInText(t *testing.T) {
	record := ParseSlip("Ref: FIRST111 Ref: SECOND222")
	assert.Equal(t, "FIRST111", record.Reference)
}

// 单个字段提取失败不影响其它字段
func TestParseSlipFieldIndependence(t *testing.T) {
	record := ParseSlip("Amount: 250.00")
	assert.Equal(t, "250.00", record.Amount)
	assert.Empty(t, record.Date)
	assert.Empty(t, record.Reference)

	record = ParseSlip("Date 15/03/2025 only")
	assert.Empty(t, record.Amount)
	assert.Equal(t, "15/03/2025", record.Date)
	assert.Empty(t, record.Reference)
}
