package admin

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http/middleware"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http/render"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http/validation"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/insights"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/inventory"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/orders"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/reports"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/shared/apperr"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/pkg/view"
)

type OrdersHandler struct {
	Store *insights.Store
	Repo  *orders.Repo
	Svc   *orders.AdminService
}

func NewOrdersHandler(store *insights.Store, repo *orders.Repo, svc *orders.AdminService) *OrdersHandler {
	return &OrdersHandler{Store: store, Repo: repo, Svc: svc}
}

// filterFromQuery maps the console's query string onto a filter state. Bad
// date or sort values are rejected here so the filter itself stays total.
func filterFromQuery(c *gin.Context) (insights.FilterState, error) {
	f := insights.FilterState{
		Status:        strings.TrimSpace(c.Query("status")),
		PaymentMethod: strings.TrimSpace(c.Query("payment_method")),
		City:          strings.TrimSpace(c.Query("city")),
		ProductName:   strings.TrimSpace(c.Query("product")),
		Search:        strings.TrimSpace(c.Query("q")),
		CustomerType:  strings.TrimSpace(c.Query("customer_type")),
		AgeBucket:     strings.TrimSpace(c.Query("age")),
	}

	if f.Status != "" && !orders.ValidStatus(f.Status) {
		return f, apperr.InvalidErr("Unknown status filter.", nil)
	}

	if v := c.Query("date_from"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return f, apperr.InvalidErr("date_from must be YYYY-MM-DD.", nil)
		}
		f.DateFrom = t
	}
	if v := c.Query("date_to"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return f, apperr.InvalidErr("date_to must be YYYY-MM-DD.", nil)
		}
		f.DateTo = t
	}

	sortKey := insights.SortKey(c.Query("sort"))
	if !insights.ValidSortKey(sortKey) {
		return f, apperr.InvalidErr("Unknown sort key.", nil)
	}
	f.Sort = sortKey

	return f, nil
}

// filtered refreshes the order set and runs the requested filter over it.
func (h *OrdersHandler) filtered(c *gin.Context) ([]orders.Order, bool) {
	f, err := filterFromQuery(c)
	if err != nil {
		c.Error(err)
		return nil, false
	}

	if err := h.Store.Refresh(c.Request.Context()); err != nil {
		c.Error(err)
		return nil, false
	}

	now := time.Now()
	list := f.Apply(now, h.Store.Snapshot())
	insights.Sort(list, f.Sort)
	return list, true
}

func (h *OrdersHandler) List(c *gin.Context) {
	list, ok := h.filtered(c)
	if !ok {
		return
	}

	now := time.Now()
	sum := insights.Summarize(now, list)

	items := make([]view.AdminOrderListItem, 0, len(list))
	for _, o := range list {
		items = append(items, view.AdminOrderListItem{
			ID:            o.ID,
			CustomerName:  o.CustomerName(),
			Status:        o.Status,
			PaymentMethod: o.PaymentMethod,
			Paid:          o.Paid,
			City:          o.City,
			ItemCount:     len(o.Items),
			Amount:        view.MoneyFromCents(o.AmountCents, o.Currency),
			AmountCents:   o.AmountCents,
			CreatedAt:     o.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"orders":  items,
		"summary": summaryView(sum),
	})
}

func (h *OrdersHandler) Export(c *gin.Context) {
	list, ok := h.filtered(c)
	if !ok {
		return
	}

	wb, err := reports.BuildOrdersWorkbook(list)
	if err != nil {
		c.Error(apperr.Wrap(err))
		return
	}

	name := reports.Filename("orders", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := wb.Write(c.Writer); err != nil {
		c.Error(apperr.Wrap(err))
	}
}

func (h *OrdersHandler) Detail(c *gin.Context) {
	id := c.Param("id")

	o, err := h.Repo.GetWithItems(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Error(apperr.NotFoundErr("Order not found."))
		} else {
			c.Error(apperr.Wrap(err))
		}
		return
	}

	timeline, err := h.Repo.Timeline(c.Request.Context(), id)
	if err != nil {
		c.Error(apperr.Wrap(err))
		return
	}

	vm := view.AdminOrderDetail{
		ID:            o.ID,
		CustomerName:  o.CustomerName(),
		Email:         ptrStr(o.Email),
		Phone:         o.Phone,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		Paid:          o.Paid,
		Amount:        view.MoneyFromCents(o.AmountCents, o.Currency),
		AmountCents:   o.AmountCents,
		Street:        o.Street,
		City:          o.City,
		State:         o.State,
		Zip:           o.Zip,
		Country:       o.Country,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
		Items:         make([]view.AdminOrderItem, 0, len(o.Items)),
		Timeline:      make([]view.AdminOrderTimelineEntry, 0, len(timeline)),
	}

	for _, it := range o.Items {
		vm.Items = append(vm.Items, view.AdminOrderItem{
			ProductID: it.ProductID,
			SKU:       it.SKU,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Size:      ptrStr(it.Size),
			Unit:      view.MoneyFromCents(it.UnitPriceCents, o.Currency),
			Line:      view.MoneyFromCents(it.UnitPriceCents*it.Quantity, o.Currency),
			ImageURL:  it.ImageURL,
		})
	}
	for _, e := range timeline {
		vm.Timeline = append(vm.Timeline, view.AdminOrderTimelineEntry{
			Kind:  e.Kind,
			From:  ptrStr(e.FromStatus),
			To:    ptrStr(e.ToStatus),
			Actor: e.Actor,
			Note:  ptrStr(e.Note),
			At:    e.CreatedAt.Format(time.RFC3339),
		})
	}

	render.OK(c, "order", vm)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note" binding:"max=500"`
}

func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.InvalidErr("Check the form.", validation.FromBindError(err, &req)))
		return
	}

	u, _ := middleware.CurrentUser(c)
	err := h.Svc.UpdateStatus(c.Request.Context(), orders.UpdateStatusInput{
		OrderID: c.Param("id"),
		Status:  req.Status,
		Actor:   u.ID,
		Note:    req.Note,
	})
	if err != nil {
		c.Error(orderError(err))
		return
	}
	render.Message(c, "Status updated.")
}

type bulkStatusRequest struct {
	OrderIDs []string `json:"orderIds" binding:"required,min=1"`
	Status   string   `json:"status" binding:"required"`
}

func (h *OrdersHandler) BulkUpdateStatus(c *gin.Context) {
	var req bulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.InvalidErr("Check the form.", validation.FromBindError(err, &req)))
		return
	}

	u, _ := middleware.CurrentUser(c)
	res, err := h.Svc.BulkUpdateStatus(c.Request.Context(), req.OrderIDs, req.Status, u.ID)
	if err != nil {
		c.Error(orderError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"modifiedCount": res.ModifiedCount,
		"skippedIds":    res.SkippedIDs,
	})
}

type addNoteRequest struct {
	Note string `json:"note" binding:"required,max=500"`
}

func (h *OrdersHandler) AddNote(c *gin.Context) {
	var req addNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.InvalidErr("Check the form.", validation.FromBindError(err, &req)))
		return
	}

	u, _ := middleware.CurrentUser(c)
	entry, err := h.Svc.AddNote(c.Request.Context(), c.Param("id"), u.ID, req.Note)
	if err != nil {
		c.Error(orderError(err))
		return
	}

	render.Created(c, "entry", view.AdminOrderTimelineEntry{
		Kind:  entry.Kind,
		Actor: entry.Actor,
		Note:  ptrStr(entry.Note),
		At:    entry.CreatedAt.Format(time.RFC3339),
	})
}

func (h *OrdersHandler) MarkCodPaid(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	if err := h.Svc.MarkCodPaid(c.Request.Context(), c.Param("id"), u.ID); err != nil {
		c.Error(orderError(err))
		return
	}
	render.Message(c, "Payment recorded.")
}

// orderError maps order and inventory failures to console-safe errors.
func orderError(err error) error {
	var insuf *inventory.InsufficientStockError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFoundErr("Order not found.")
	case errors.Is(err, orders.ErrInvalidTransition):
		return apperr.ConflictErr("That status change is not allowed.")
	case errors.Is(err, orders.ErrNotActionable):
		return apperr.ConflictErr("The order is already in a final state.")
	case errors.Is(err, orders.ErrNotCOD):
		return apperr.ConflictErr("The order is not cash on delivery.")
	case errors.Is(err, orders.ErrAlreadyPaid):
		return apperr.ConflictErr("The order is already paid.")
	case errors.As(err, &insuf):
		return apperr.ConflictErr(insuf.Error())
	default:
		return apperr.Wrap(err)
	}
}

func summaryView(s insights.Summary) view.DashboardSummary {
	return view.DashboardSummary{
		OrderCount:     s.OrderCount,
		TotalRevenue:   view.MoneyFromCents(int(s.TotalRevenueCents), "INR"),
		RevenueCents:   s.TotalRevenueCents,
		AvgOrderCents:  s.AvgOrderCents,
		PendingCount:   s.PendingCount,
		DeliveredCount: s.DeliveredCount,
		DelayedCount:   len(s.Delayed),
	}
}

func ptrStr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
