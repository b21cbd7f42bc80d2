package order

import (
	"encoding/json"

	"marketplace/pkg/ocr"
)

// Status 订单状态
const (
	StatusPending  = "pending"  // 待核销
	StatusVerified = "verified" // 核销通过
	StatusRejected = "rejected" // 核销驳回
)

// IsPending 判断订单是否待核销
func (o *Order) IsPending() bool {
	return o.Status == StatusPending
}

// ValidStatusTransition 判断核销目标状态是否合法
func ValidStatusTransition(status string) bool {
	return status == StatusVerified || status == StatusRejected
}

// ValidStatusFilter 判断列表过滤状态是否合法
func ValidStatusFilter(status string) bool {
	return status == StatusPending || ValidStatusTransition(status)
}

// SetOCRRecord 序列化凭证解析结果并挂到订单上
func (o *Order) SetOCRRecord(record ocr.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	o.OCRData = string(data)
	return nil
}

// OCRRecord 反序列化订单上的凭证解析结果
// 订单尚未上传凭证时返回 nil
func (o *Order) OCRRecord() (*ocr.Record, error) {
	if o.OCRData == "" {
		return nil, nil
	}
	var record ocr.Record
	if err := json.Unmarshal([]byte(o.OCRData), &record); err != nil {
		return nil, err
	}
	return &record, nil
}
