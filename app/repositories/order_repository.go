package repositories

import (
	"context"

	"gorm.io/gorm"

	"marketplace/app/models/order"
	"marketplace/pkg/app"
	"marketplace/pkg/database"
	"marketplace/pkg/ocr"
)

// OrderRepository 订单仓库
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建仓库实例
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		db: database.DB,
	}
}

// Create 创建订单
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

// GetByID 获取单个订单
func (r *OrderRepository) GetByID(ctx context.Context, id uint64) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// List 分页获取订单列表，可按状态过滤
func (r *OrderRepository) List(ctx context.Context, status string, page, pageSize int) ([]order.Order, int64, error) {
	var orders []order.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&order.Order{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	// 获取总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分页查询
	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error

	return orders, total, err
}

// AttachOCRRecord 将凭证识别结果写回订单
func (r *OrderRepository) AttachOCRRecord(ctx context.Context, id uint64, record ocr.Record) error {
	var o order.Order
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return err
	}

	if err := o.SetOCRRecord(record); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&o).Update("ocr_data", o.OCRData).Error
}

// UpdateSlipURL 记录买家上传的凭证地址
func (r *OrderRepository) UpdateSlipURL(ctx context.Context, id uint64, slipURL string) error {
	return r.db.WithContext(ctx).Model(&order.Order{}).
		Where("id = ?", id).
		Update("payment_slip_url", slipURL).Error
}

// Verify 人工核销订单，记录核销人与时间
func (r *OrderRepository) Verify(ctx context.Context, id uint64, status string, verifiedBy uint64) error {
	now := app.TimenowInTimezone()
	return r.db.WithContext(ctx).Model(&order.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"verified_at": &now,
			"verified_by": verifiedBy,
		}).Error
}
