// Package ocr 负责支付凭证的文字识别与结构化解析
//
// 识别（Extractor）与解析（ParseSlip）完全解耦：前者调用外部 OCR
// 引擎并可能失败，后者是纯函数，永远返回结果。两者之间只通过
// 纯文本传递数据。
package ocr

// Record 凭证解析结果
//
// RawText 恒有值，即使结构化提取全部失败也保留原始识别文本，
// 供人工核销时查看。三个提取字段相互独立，空字符串表示
// 「未识别出」而非「确认为零/空」，调用方不得将缺失当作确认值。
//
// Amount 保留匹配到的原始字面（千分位分隔符不做归一化），
// 小数点/千分位的本地化规则由下游自行决定。
type Record struct {
	RawText   string `json:"raw_text"`
	Amount    string `json:"amount,omitempty"`
	Date      string `json:"date,omitempty"`
	Reference string `json:"reference,omitempty"`
}
