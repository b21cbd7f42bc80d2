// Package promptpay 生成泰国 PromptPay 收款二维码
//
// 载荷格式为 EMV QRCPS 的 TLV 子集（Tag + 两位长度 + Value 顺序拼接），
// 尾部附带 CRC-16/CCITT-FALSE 校验字段。字段顺序由支付标准固定，
// 调整顺序会改变载荷含义，绝不允许重排。
package promptpay

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// EMV TLV 字段 Tag
const (
	idPayloadFormat       = "00" // 载荷格式指示符
	idPOIMethod           = "01" // 发起方式（静态/动态）
	idMerchantInformation = "29" // 收款人信息（央行 Credit Transfer）
	idCountryCode         = "58" // 国家代码
	idTransactionCurrency = "53" // 交易币种
	idTransactionAmount   = "54" // 交易金额
	idCRC                 = "63" // CRC 校验
)

// 收款人信息子字段 Tag
const (
	merchantAID      = "00" // 应用标识符
	merchantPhone    = "01" // 手机号
	merchantNationID = "02" // 身份证号/税号
	merchantEWallet  = "03" // 电子钱包 ID
)

// 固定字段值
const (
	payloadFormatEMV = "01"               // EMV QRCPS 商户展示模式
	poiMethodDynamic = "12"               // 动态二维码（金额已确定）
	aidCreditTrans   = "A000000677010111" // PromptPay Credit Transfer AID
	countryCodeTH    = "TH"
	currencyTHB      = "764" // ISO 4217 泰铢
)

// 预定义错误
var (
	// ErrInvalidRecipient 收款人标识格式错误
	ErrInvalidRecipient = errors.New("promptpay: invalid recipient identifier")
	// ErrInvalidAmount 金额非法（非正数、非有限值或超过两位小数）
	ErrInvalidAmount = errors.New("promptpay: invalid amount")
)

// nonDigit 用于剔除收款人标识中的分隔符（空格、连字符等）
var nonDigit = regexp.MustCompile(`\D`)

// GeneratePayload 生成 PromptPay 支付载荷字符串
//
// recipient 为收款人标识，支持三类定长数字串：
// - 10 位手机号（如 0812345678）
// - 13 位身份证号/税号
// - 15 位电子钱包 ID
// amount 为泰铢金额，必须为正数且最多两位小数。
// 相同输入生成的载荷字节级一致，载荷本身不落库。
func GeneratePayload(recipient string, amount float64) (string, error) {
	sub, target, err := formatTarget(recipient)
	if err != nil {
		return "", err
	}

	formattedAmount, err := formatAmount(amount)
	if err != nil {
		return "", err
	}

	// 收款人信息为嵌套 TLV：AID + 收款人标识
	merchant := tlv(merchantAID, aidCreditTrans) + tlv(sub, target)

	// 字段顺序由标准固定
	var b strings.Builder
	b.WriteString(tlv(idPayloadFormat, payloadFormatEMV))
	b.WriteString(tlv(idPOIMethod, poiMethodDynamic))
	b.WriteString(tlv(idMerchantInformation, merchant))
	b.WriteString(tlv(idCountryCode, countryCodeTH))
	b.WriteString(tlv(idTransactionCurrency, currencyTHB))
	b.WriteString(tlv(idTransactionAmount, formattedAmount))

	// CRC 的计算范围包含 CRC 字段自身的 Tag 和长度头
	b.WriteString(idCRC + "04")
	payload := b.String()
	return payload + Checksum(payload), nil
}

// formatTarget 校验收款人标识并转换为子字段 Tag 与载荷值
//
// 手机号需转换为国际格式：去掉前导 0，加 66 国家码，
// 再左补零到 13 位（0812345678 -> 0066812345678）
func formatTarget(recipient string) (sub, target string, err error) {
	// 剔除分隔符后按长度判定标识类型，08-1234-5678 与 0812345678 等价
	digits := nonDigit.ReplaceAllString(recipient, "")
	if digits == "" {
		return "", "", ErrInvalidRecipient
	}

	switch len(digits) {
	case 10:
		number := digits
		if strings.HasPrefix(number, "0") {
			number = "66" + number[1:]
		}
		return merchantPhone, fmt.Sprintf("%013s", number), nil
	case 13:
		return merchantNationID, digits, nil
	case 15:
		return merchantEWallet, digits, nil
	default:
		return "", "", ErrInvalidRecipient
	}
}

// formatAmount 校验金额并格式化为两位小数
func formatAmount(amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", ErrInvalidAmount
	}
	if amount <= 0 {
		return "", ErrInvalidAmount
	}
	// 金额最多两位小数，超出即视为非法而非静默取整。
	// 容差按数量级缩放：大额金额乘以 100 后浮点表示误差会超过
	// 固定的绝对容差，单价乘数量得到的金额也带有累积误差
	cents := amount * 100
	if math.Abs(cents-math.Round(cents)) > 1e-9*math.Max(1, math.Abs(cents)) {
		return "", ErrInvalidAmount
	}
	return strconv.FormatFloat(amount, 'f', 2, 64), nil
}

// tlv 拼接单个 Tag-Length-Value 字段，长度为两位十进制
func tlv(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, len(value), value)
}

// Checksum 计算载荷的 CRC-16/CCITT-FALSE 校验值，
// 返回 4 位大写十六进制字符串
func Checksum(payload string) string {
	return fmt.Sprintf("%04X", crc16([]byte(payload)))
}

// Verify 重新计算载荷校验值并与尾部 4 位比对，
// 供核销端校验二维码完整性使用
func Verify(payload string) bool {
	if len(payload) < 4 {
		return false
	}
	body, crc := payload[:len(payload)-4], payload[len(payload)-4:]
	return strings.EqualFold(Checksum(body), crc)
}
