package orders

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// DB returns the underlying database connection for direct queries.
func (r *Repo) DB() *gorm.DB { return r.db }

type ListParams struct {
	Q        string // order id or customer email, LIKE match
	Status   string // optional filter
	Page     int
	PageSize int
}

type ListResult struct {
	Items []Order
	Total int64
}

func (r *Repo) List(ctx context.Context, in ListParams) (ListResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	size := in.PageSize
	if size < 1 || size > 100 {
		size = 30
	}

	q := strings.TrimSpace(in.Q)
	status := strings.TrimSpace(in.Status)

	base := r.db.WithContext(ctx).Model(&Order{})
	if status != "" {
		base = base.Where("status = ?", status)
	}
	if q != "" {
		like := "%" + q + "%"
		base = base.Where("(id LIKE ? OR email LIKE ?)", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return ListResult{}, err
	}

	var items []Order
	if err := base.
		Preload("Items").
		Order("created_at DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&items).Error; err != nil {
		return ListResult{}, err
	}

	return ListResult{Items: items, Total: total}, nil
}

// ListOrders is the paginated listing contract consumed by the insights store.
func (r *Repo) ListOrders(ctx context.Context, page, pageSize int) ([]Order, int64, error) {
	res, err := r.List(ctx, ListParams{Page: page, PageSize: pageSize})
	if err != nil {
		return nil, 0, err
	}
	return res.Items, res.Total, nil
}

func (r *Repo) GetWithItems(ctx context.Context, id string) (Order, error) {
	var o Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&o, "id = ?", id).Error; err != nil {
		return Order{}, err
	}
	return o, nil
}

// Timeline returns the order's history, newest first.
func (r *Repo) Timeline(ctx context.Context, orderID string) ([]TimelineEntry, error) {
	var out []TimelineEntry
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&out, "order_id = ?", orderID).Error
	return out, err
}
