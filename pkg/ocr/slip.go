package ocr

import (
	"regexp"
)

// matchRule 单条提取规则，纯函数：文本 -> 可选匹配
type matchRule struct {
	name string
	re   *regexp.Regexp
}

// 各字段的候选规则列表。银行/支付应用的凭证排版没有统一标准，
// 因此按声明顺序逐条尝试，命中第一条规则的第一处匹配即停止。
// 顺序即优先级，调整顺序会改变提取结果，改动必须同步更新测试。
var (
	// 金额：货币标记前缀 > 金额标签 > 裸的千分位两位小数
	amountRules = []matchRule{
		{"currency_prefix", regexp.MustCompile(`(?i)(?:THB|฿|บาท)\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)},
		{"amount_label", regexp.MustCompile(`(?i)(?:amount|จำนวน|ยอดเงิน)[\s:]*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)},
		{"bare_decimal", regexp.MustCompile(`(\d{1,3}(?:,\d{3})*\.\d{2})`)},
	}

	// 日期：日-月-年 > 年-月-日 > 日期标签，分隔符支持 / - .
	dateRules = []matchRule{
		{"day_first", regexp.MustCompile(`(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`)},
		{"year_first", regexp.MustCompile(`(\d{4}[/\-.]\d{1,2}[/\-.]\d{1,2})`)},
		{"date_label", regexp.MustCompile(`(?i)(?:date|วันที่)[\s:]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`)},
	}

	// 参考号：引用标签 > 交易标签 > 通用编号标签
	referenceRules = []matchRule{
		{"reference_label", regexp.MustCompile(`(?i)(?:ref(?:erence)?|เลขที่อ้างอิง)[\s:]*([A-Z0-9-]+)`)},
		{"transaction_label", regexp.MustCompile(`(?i)(?:transaction|trans)[\s:]*([A-Z0-9-]+)`)},
		{"number_label", regexp.MustCompile(`(?i)(?:no|number)[\s:]*([A-Z0-9-]+)`)},
	}
)

// ParseSlip 将 OCR 原始文本解析为结构化凭证数据
//
// 纯函数，无 I/O，永不失败：最差情况下返回只含 RawText 的记录。
// 三个字段独立提取，单个字段失败不影响其它字段；提取是尽力而为的
// 辅助信息，不能作为核销的强校验门槛。
func ParseSlip(rawText string) Record {
	record := Record{RawText: rawText}

	if v, ok := firstMatch(amountRules, rawText); ok {
		record.Amount = v
	}
	if v, ok := firstMatch(dateRules, rawText); ok {
		record.Date = v
	}
	if v, ok := firstMatch(referenceRules, rawText); ok {
		record.Reference = v
	}

	return record
}

// firstMatch 按声明顺序尝试规则，返回第一条命中的匹配
func firstMatch(rules []matchRule, text string) (string, bool) {
	for _, rule := range rules {
		if v, ok := applyRule(rule, text); ok {
			return v, true
		}
	}
	return "", false
}

// applyRule 执行单条规则
//
// 逐条兜住规则内部的异常：某条规则出问题时跳过它本身，
// 不影响同字段的后续规则，更不影响其它字段
func applyRule(rule matchRule, text string) (value string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			value, ok = "", false
		}
	}()

	m := rule.re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	// 优先取捕获组，保留原始字面（含千分位分隔符）
	if len(m) > 1 && m[1] != "" {
		return m[1], true
	}
	return m[0], true
}
