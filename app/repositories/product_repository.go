package repositories

import (
	"context"

	"gorm.io/gorm"

	"marketplace/app/models/product"
	"marketplace/pkg/database"
)

// ProductRepository 商品仓库
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建仓库实例
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		db: database.DB,
	}
}

// Create 创建商品
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// GetByID 获取单个商品
func (r *ProductRepository) GetByID(ctx context.Context, id uint64) (*product.Product, error) {
	var p product.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// List 分页获取商品列表
func (r *ProductRepository) List(ctx context.Context, page, pageSize int) ([]product.Product, int64, error) {
	var products []product.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&product.Product{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&products).Error

	return products, total, err
}

// DecrementStock 扣减库存，库存不足时不更新任何行
func (r *ProductRepository) DecrementStock(ctx context.Context, id uint64, quantity int) error {
	result := r.db.WithContext(ctx).Model(&product.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
