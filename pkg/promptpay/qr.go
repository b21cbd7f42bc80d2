package promptpay

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// 二维码渲染参数，容错等级 M 与前端扫码兼容性最好
const (
	qrSize = 256
)

// RenderQR 将载荷字符串渲染为 PNG 二维码，
// 返回可直接嵌入 <img> 的 data URL
//
// 相同载荷渲染结果一致；渲染失败对当前请求是致命错误，
// 不会返回部分结果
func RenderQR(payload string) (string, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, qrSize)
	if err != nil {
		return "", fmt.Errorf("render promptpay qr failed: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
