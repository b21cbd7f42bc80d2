package promptpay

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCRC16KnownVector(t *testing.T) {
	// CRC-16/CCITT-FALSE 的标准校验向量
	assert.Equal(t, uint16(0x29B1), crc16([]byte("123456789")))
}

func TestGeneratePayload(t *testing.T) {
	tests := []struct {
		name      string
		recipient string
		amount    float64
		want      string
	}{
		{
			name:      "手机号收款",
			recipient: "0812345678",
			amount:    100.00,
			want:      "00020101021229370016A000000677010111011300668123456785802TH53037645406100.006304BB8A",
		},
		{
			name:      "身份证号收款",
			recipient: "1234567890123",
			amount:    1234.56,
			want:      "00020101021229370016A000000677010111021312345678901235802TH530376454071234.5663043F37",
		},
		{
			name:      "小额订单",
			recipient: "0899999999",
			amount:    0.50,
			want:      "00020101021229370016A000000677010111011300668999999995802TH530376454040.5063041E5A",
		},
		{
			// 乘以 100 后浮点表示误差超过固定绝对容差的量级，
			// 两位小数的大额金额必须仍然合法
			name:      "大额订单",
			recipient: "0812345678",
			amount:    1234567.89,
			want:      "00020101021229370016A000000677010111011300668123456785802TH530376454101234567.8963047FE6",
		},
		{
			name:      "单价乘数量的派生金额",
			recipient: "0812345678",
			amount:    19.99 * 3, // 59.970000000000006
			want:      "00020101021229370016A000000677010111011300668123456785802TH5303764540559.976304EF77",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GeneratePayload(tt.recipient, tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGeneratePayloadDeterministic(t *testing.T) {
	first, err := GeneratePayload("0812345678", 100.00)
	require.NoError(t, err)

	second, err := GeneratePayload("0812345678", 100.00)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGeneratePayloadChecksumRoundTrip(t *testing.T) {
	recipients := []string{"0812345678", "0899999999", "1234567890123", "081234567890123"}
	amounts := []float64{0.01, 1, 99.99, 1234.56, 1000000, 1234567.89, 10000000.01, 99999999.99}

	for _, r := range recipients {
		for _, a := range amounts {
			payload, err := GeneratePayload(r, a)
			require.NoError(t, err)

			// 去掉尾部 4 位后重算 CRC 应与尾部一致
			assert.True(t, Verify(payload), "payload %q", payload)
			assert.Equal(t, Checksum(payload[:len(payload)-4]), payload[len(payload)-4:])
		}
	}
}

func TestGeneratePayloadRecipientClasses(t *testing.T) {
	// 手机号重写为 0066 开头的 13 位国际格式
	payload, err := GeneratePayload("0812345678", 50)
	require.NoError(t, err)
	assert.Contains(t, payload, "01130066812345678")

	// 带分隔符的手机号等价于纯数字
	withDash, err := GeneratePayload("08-1234-5678", 50)
	require.NoError(t, err)
	assert.Equal(t, payload, withDash)

	// 13 位税号原样写入 02 子字段
	payload, err = GeneratePayload("1234567890123", 50)
	require.NoError(t, err)
	assert.Contains(t, payload, "02131234567890123")

	// 15 位电子钱包 ID 写入 03 子字段
	payload, err = GeneratePayload("004999012345678", 50)
	require.NoError(t, err)
	assert.Contains(t, payload, "0315004999012345678")
}

func TestGeneratePayloadInvalidRecipient(t *testing.T) {
	for _, recipient := range []string{"", "12345", "081234567", "12345678901234567890", "abcdef"} {
		_, err := GeneratePayload(recipient, 100)
		assert.ErrorIs(t, err, ErrInvalidRecipient, "recipient %q", recipient)
	}
}

func TestGeneratePayloadInvalidAmount(t *testing.T) {
	for _, amount := range []float64{0, -5, -0.01, 100.555, math.NaN(), math.Inf(1)} {
		_, err := GeneratePayload("0812345678", amount)
		assert.ErrorIs(t, err, ErrInvalidAmount, "amount %v", amount)
	}
}

func TestVerify(t *testing.T) {
	payload, err := GeneratePayload("0812345678", 100)
	require.NoError(t, err)

	assert.True(t, Verify(payload))
	// 大小写不敏感比对
	assert.True(t, Verify(payload[:len(payload)-4]+strings.ToLower(payload[len(payload)-4:])))
	// 篡改任意一位后校验失败
	assert.False(t, Verify(payload[:len(payload)-1]+"0"))
	assert.False(t, Verify("630"))
}

func TestRenderQR(t *testing.T) {
	payload, err := GeneratePayload("0812345678", 100)
	require.NoError(t, err)

	dataURL, err := RenderQR(payload)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"))

	// 相同载荷渲染结果一致
	again, err := RenderQR(payload)
	require.NoError(t, err)
	assert.Equal(t, dataURL, again)
}
