package admin

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http/middleware"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http/render"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http/validation"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/inventory"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/products"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/shared/apperr"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/shared/slug"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/storage"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/pkg/view"
)

const maxImageBytes = 5 << 20

type ProductsHandler struct {
	Repo    *products.Repo
	Inv     *inventory.Service
	Uploads storage.Storage
}

func NewProductsHandler(repo *products.Repo, inv *inventory.Service, uploads storage.Storage) *ProductsHandler {
	return &ProductsHandler{Repo: repo, Inv: inv, Uploads: uploads}
}

func (h *ProductsHandler) List(c *gin.Context) {
	list, err := h.Repo.List(c.Request.Context(), products.ListFilter{
		CategoryID:    c.Query("category_id"),
		SubcategoryID: c.Query("subcategory_id"),
		ActiveOnly:    c.Query("active") == "true",
	})
	if err != nil {
		c.Error(apperr.Wrap(err))
		return
	}

	items := make([]view.Product, 0, len(list))
	for _, p := range list {
		items = append(items, productView(p))
	}
	render.OK(c, "products", items)
}

func (h *ProductsHandler) Get(c *gin.Context) {
	p, err := h.Repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(productError(err))
		return
	}
	render.OK(c, "product", productView(p))
}

type createProductRequest struct {
	Name          string `json:"name" binding:"required,max=255"`
	Slug          string `json:"slug" binding:"max=255"`
	Description   string `json:"description"`
	PriceCents    int    `json:"priceCents" binding:"required,gte=0"`
	Stock         int    `json:"stock" binding:"gte=0"`
	CategoryID    string `json:"categoryId" binding:"required"`
	SubcategoryID string `json:"subcategoryId"`
	Bestseller    bool   `json:"bestseller"`
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.InvalidErr("Check the form.", validation.FromBindError(err, &req)))
		return
	}

	if req.Slug == "" {
		req.Slug = slug.FromName(req.Name)
	}

	p, err := h.Repo.Create(c.Request.Context(), products.CreateProductInput{
		Name:          req.Name,
		Slug:          req.Slug,
		Description:   req.Description,
		PriceCents:    req.PriceCents,
		Stock:         req.Stock,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Bestseller:    req.Bestseller,
	})
	if err != nil {
		if products.IsDuplicateKey(err) {
			c.Error(apperr.ConflictErr("A product with that slug already exists."))
			return
		}
		c.Error(apperr.Wrap(err))
		return
	}
	render.Created(c, "product", productView(p))
}

type updateProductRequest struct {
	Name          string `json:"name" binding:"required,max=255"`
	Slug          string `json:"slug" binding:"max=255"`
	Description   string `json:"description"`
	PriceCents    int    `json:"priceCents" binding:"required,gte=0"`
	CategoryID    string `json:"categoryId" binding:"required"`
	SubcategoryID string `json:"subcategoryId"`
	Active        bool   `json:"active"`
	Bestseller    bool   `json:"bestseller"`
}

func (h *ProductsHandler) Update(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.InvalidErr("Check the form.", validation.FromBindError(err, &req)))
		return
	}

	err := h.Repo.Update(c.Request.Context(), c.Param("id"), products.UpdateProductInput{
		Name:          req.Name,
		Slug:          req.Slug,
		Description:   req.Description,
		PriceCents:    req.PriceCents,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Active:        req.Active,
		Bestseller:    req.Bestseller,
	})
	if err != nil {
		if products.IsDuplicateKey(err) {
			c.Error(apperr.ConflictErr("A product with that slug already exists."))
			return
		}
		c.Error(productError(err))
		return
	}
	render.Message(c, "Product updated.")
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(productError(err))
		return
	}
	render.Message(c, "Product removed.")
}

type updateStockRequest struct {
	Stock int    `json:"stock" binding:"gte=0"`
	Note  string `json:"note" binding:"max=500"`
}

// UpdateStock sets the absolute stock level through the inventory service so
// the change and its ledger entry land together.
func (h *ProductsHandler) UpdateStock(c *gin.Context) {
	var req updateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.InvalidErr("Check the form.", validation.FromBindError(err, &req)))
		return
	}

	u, _ := middleware.CurrentUser(c)
	entry, err := h.Inv.UpdateStock(c.Request.Context(), c.Param("id"), req.Stock, u.ID, req.Note)
	if err != nil {
		if errors.Is(err, inventory.ErrNegativeStock) {
			c.Error(apperr.InvalidErr("Stock must be a non-negative integer.", nil))
			return
		}
		c.Error(productError(err))
		return
	}
	render.OK(c, "entry", historyView(entry))
}

func (h *ProductsHandler) StockHistory(c *gin.Context) {
	entries, err := h.Inv.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(apperr.Wrap(err))
		return
	}

	out := make([]view.StockHistoryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, historyView(e))
	}
	render.OK(c, "history", out)
}

func (h *ProductsHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		c.Error(apperr.InvalidErr("Attach an image file.", nil))
		return
	}
	if fh.Size > maxImageBytes {
		c.Error(apperr.InvalidErr("Image must be 5 MB or smaller.", nil))
		return
	}

	productID := c.Param("id")
	if _, err := h.Repo.Get(c.Request.Context(), productID); err != nil {
		c.Error(productError(err))
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.Error(apperr.Wrap(err))
		return
	}
	defer f.Close()

	put, err := h.Uploads.Put(c.Request.Context(), f, storage.PutInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	})
	if err != nil {
		c.Error(apperr.Wrap(err))
		return
	}

	position := parseInt(c.PostForm("position"), 0)
	img, err := h.Repo.AddImage(c.Request.Context(), productID, put.Key, put.URL, position)
	if err != nil {
		c.Error(apperr.Wrap(err))
		return
	}

	render.Created(c, "image", view.ProductImage{ID: img.ID, URL: img.URL, Position: img.Position})
}

func (h *ProductsHandler) DeleteImage(c *gin.Context) {
	productID := c.Param("id")
	imageID := c.Param("imageId")

	img, err := h.Repo.GetImage(c.Request.Context(), productID, imageID)
	if err != nil {
		c.Error(productError(err))
		return
	}
	if err := h.Repo.DeleteImage(c.Request.Context(), productID, imageID); err != nil {
		c.Error(apperr.Wrap(err))
		return
	}
	// storage cleanup is best effort; the row is already gone
	_ = h.Uploads.Delete(c.Request.Context(), img.StorageKey)

	render.Message(c, "Image removed.")
}

// Categories

type createCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Slug string `json:"slug" binding:"max=100"`
}

func (h *ProductsHandler) ListCategories(c *gin.Context) {
	cats, err := h.Repo.ListCategories(c.Request.Context())
	if err != nil {
		c.Error(apperr.Wrap(err))
		return
	}

	out := make([]gin.H, 0, len(cats))
	for _, cat := range cats {
		out = append(out, gin.H{"id": cat.ID, "name": cat.Name, "slug": cat.Slug})
	}
	render.OK(c, "categories", out)
}

func (h *ProductsHandler) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.InvalidErr("Check the form.", validation.FromBindError(err, &req)))
		return
	}

	if req.Slug == "" {
		req.Slug = slug.FromName(req.Name)
	}
	cat, err := h.Repo.CreateCategory(c.Request.Context(), req.Name, req.Slug)
	if err != nil {
		if products.IsDuplicateKey(err) {
			c.Error(apperr.ConflictErr("A category with that slug already exists."))
			return
		}
		c.Error(apperr.Wrap(err))
		return
	}
	render.Created(c, "category", gin.H{"id": cat.ID, "name": cat.Name, "slug": cat.Slug})
}

func (h *ProductsHandler) DeleteCategory(c *gin.Context) {
	if err := h.Repo.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(productError(err))
		return
	}
	render.Message(c, "Category removed.")
}

func (h *ProductsHandler) ListSubcategories(c *gin.Context) {
	subs, err := h.Repo.ListSubcategories(c.Request.Context(), c.Query("category_id"))
	if err != nil {
		c.Error(apperr.Wrap(err))
		return
	}

	out := make([]gin.H, 0, len(subs))
	for _, s := range subs {
		out = append(out, gin.H{"id": s.ID, "categoryId": s.CategoryID, "name": s.Name, "slug": s.Slug})
	}
	render.OK(c, "subcategories", out)
}

type createSubcategoryRequest struct {
	CategoryID string `json:"categoryId" binding:"required"`
	Name       string `json:"name" binding:"required,max=100"`
	Slug       string `json:"slug" binding:"max=100"`
}

func (h *ProductsHandler) CreateSubcategory(c *gin.Context) {
	var req createSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.InvalidErr("Check the form.", validation.FromBindError(err, &req)))
		return
	}

	if req.Slug == "" {
		req.Slug = slug.FromName(req.Name)
	}
	sub, err := h.Repo.CreateSubcategory(c.Request.Context(), req.CategoryID, req.Name, req.Slug)
	if err != nil {
		if products.IsDuplicateKey(err) {
			c.Error(apperr.ConflictErr("A subcategory with that slug already exists."))
			return
		}
		c.Error(apperr.Wrap(err))
		return
	}
	render.Created(c, "subcategory", gin.H{"id": sub.ID, "categoryId": sub.CategoryID, "name": sub.Name, "slug": sub.Slug})
}

func (h *ProductsHandler) DeleteSubcategory(c *gin.Context) {
	if err := h.Repo.DeleteSubcategory(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(productError(err))
		return
	}
	render.Message(c, "Subcategory removed.")
}

func productError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFoundErr("Product not found.")
	}
	return apperr.Wrap(err)
}

func productView(p products.Product) view.Product {
	images := make([]view.ProductImage, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, view.ProductImage{ID: img.ID, URL: img.URL, Position: img.Position})
	}
	return view.Product{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Price:         view.MoneyFromCents(p.PriceCents, p.Currency),
		PriceCents:    p.PriceCents,
		Stock:         p.Stock,
		CategoryID:    p.CategoryID,
		SubcategoryID: ptrStr(p.SubcategoryID),
		Active:        p.Active,
		Bestseller:    p.Bestseller,
		Images:        images,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func historyView(e inventory.StockHistoryEntry) view.StockHistoryEntry {
	return view.StockHistoryEntry{
		ID:            e.ID,
		Action:        e.Action,
		PreviousStock: e.PreviousStock,
		NewStock:      e.NewStock,
		Delta:         e.Delta,
		Actor:         e.Actor,
		Note:          ptrStr(e.Note),
		OrderID:       ptrStr(e.OrderID),
		At:            e.CreatedAt.Format(time.RFC3339),
	}
}
