package products

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

type ListFilter struct {
	CategoryID    string
	SubcategoryID string
	ActiveOnly    bool
}

func (r *Repo) List(ctx context.Context, f ListFilter) ([]Product, error) {
	q := r.db.WithContext(ctx).Model(&Product{})
	if f.CategoryID != "" {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.SubcategoryID != "" {
		q = q.Where("subcategory_id = ?", f.SubcategoryID)
	}
	if f.ActiveOnly {
		q = q.Where("active = ?", true)
	}

	var items []Product
	err := q.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("updated_at DESC").
		Find(&items).Error
	return items, err
}

func (r *Repo) Get(ctx context.Context, id string) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&p, "id = ?", id).Error
	return p, err
}

type CreateProductInput struct {
	Name          string
	Slug          string
	Description   string
	PriceCents    int
	Stock         int
	CategoryID    string
	SubcategoryID string
	Bestseller    bool
}

func (r *Repo) Create(ctx context.Context, in CreateProductInput) (Product, error) {
	p := Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Currency:    "INR",
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
		Active:      true,
		Bestseller:  in.Bestseller,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if s := in.SubcategoryID; s != "" {
		p.SubcategoryID = &s
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return Product{}, err
	}
	return p, nil
}

type UpdateProductInput struct {
	Name          string
	Slug          string
	Description   string
	PriceCents    int
	CategoryID    string
	SubcategoryID string
	Active        bool
	Bestseller    bool
}

// Update deliberately leaves stock alone; stock changes go through the
// inventory service so every change lands in the ledger.
func (r *Repo) Update(ctx context.Context, id string, in UpdateProductInput) error {
	var sub *string
	if s := in.SubcategoryID; s != "" {
		sub = &s
	}
	return r.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":           in.Name,
			"slug":           in.Slug,
			"description":    in.Description,
			"price_cents":    in.PriceCents,
			"category_id":    in.CategoryID,
			"subcategory_id": sub,
			"active":         in.Active,
			"bestseller":     in.Bestseller,
			"updated_at":     time.Now(),
		}).Error
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Product{}, "id = ?", id).Error
}

func (r *Repo) ListCategories(ctx context.Context) ([]Category, error) {
	var items []Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *Repo) CreateCategory(ctx context.Context, name, slug string) (Category, error) {
	c := Category{
		ID:        uuid.NewString(),
		Name:      name,
		Slug:      slug,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return Category{}, err
	}
	return c, nil
}

func (r *Repo) DeleteCategory(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Category{}, "id = ?", id).Error
}

func (r *Repo) ListSubcategories(ctx context.Context, categoryID string) ([]Subcategory, error) {
	q := r.db.WithContext(ctx).Model(&Subcategory{})
	if categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}
	var items []Subcategory
	err := q.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *Repo) CreateSubcategory(ctx context.Context, categoryID, name, slug string) (Subcategory, error) {
	s := Subcategory{
		ID:         uuid.NewString(),
		CategoryID: categoryID,
		Name:       name,
		Slug:       slug,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return Subcategory{}, err
	}
	return s, nil
}

func (r *Repo) DeleteSubcategory(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Subcategory{}, "id = ?", id).Error
}

func (r *Repo) AddImage(ctx context.Context, productID, storageKey, url string, position int) (ProductImage, error) {
	im := ProductImage{
		ID:         uuid.NewString(),
		ProductID:  productID,
		StorageKey: storageKey,
		URL:        url,
		Position:   position,
		CreatedAt:  time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&im).Error; err != nil {
		return ProductImage{}, err
	}
	return im, nil
}

func (r *Repo) GetImage(ctx context.Context, productID, imageID string) (ProductImage, error) {
	var im ProductImage
	err := r.db.WithContext(ctx).First(&im, "id = ? AND product_id = ?", imageID, productID).Error
	return im, err
}

func (r *Repo) DeleteImage(ctx context.Context, productID, imageID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND product_id = ?", imageID, productID).
		Delete(&ProductImage{}).Error
}

func IsDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return false
}
