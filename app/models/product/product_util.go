package product

// HasStock 判断库存是否足够本次购买
func (p *Product) HasStock(quantity int) bool {
	return quantity > 0 && p.Stock >= quantity
}

// Total 计算购买数量对应的总金额
func (p *Product) Total(quantity int) float64 {
	return p.Price * float64(quantity)
}
