package admin

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http/render"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/insights"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/pkg/view"
)

const topProductsN = 5

type DashboardHandler struct {
	Store *insights.Store
	Log   *slog.Logger
}

func NewDashboardHandler(store *insights.Store, log *slog.Logger) *DashboardHandler {
	return &DashboardHandler{Store: store, Log: log}
}

func (h *DashboardHandler) Show(c *gin.Context) {
	if err := h.Store.Refresh(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}

	now := time.Now()
	base := h.Store.Snapshot()
	sum := insights.Summarize(now, base)
	top := insights.TopProducts(c.Request.Context(), h.Log, base, topProductsN)

	vm := view.Dashboard{
		Summary:     summaryView(sum),
		TopProducts: make([]view.TopProduct, 0, len(top)),
		RefreshedAt: h.Store.RefreshedAt().Format(time.RFC3339),
	}
	for _, p := range top {
		vm.TopProducts = append(vm.TopProducts, view.TopProduct{
			ProductID:     p.ProductID,
			Name:          p.Name,
			Occurrences:   p.Occurrences,
			TotalQuantity: p.TotalQuantity,
			Revenue:       view.MoneyFromCents(int(p.RevenueCents), "INR"),
		})
	}

	render.OK(c, "dashboard", vm)
}
