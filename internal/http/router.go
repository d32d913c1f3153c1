// Package http wires the gin engine: middleware chain, admin console API,
// and the small public surface (auth, chat, newsletter signup).
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http/handlers"
	adminh "github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http/handlers/admin"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http/middleware"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/chat"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/insights"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/inventory"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/newsletter"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/orders"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/products"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/users"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/storage"
)

type Deps struct {
	Log        *slog.Logger
	SessionCfg middleware.SessionCfg

	Store      *insights.Store
	OrderRepo  *orders.Repo
	OrderSvc   *orders.AdminService
	Inventory  *inventory.Service
	Products   *products.Repo
	Users      *users.Service
	Newsletter *newsletter.Service
	Chat       *chat.Service
	Uploads    storage.Storage
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Log))
	r.Use(middleware.Recovery(d.Log))
	r.Use(middleware.ErrorHandler(d.Log))
	r.Use(middleware.SessionMiddleware(d.SessionCfg))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := handlers.NewAuthHandler(d.Users, d.SessionCfg)
	chatH := handlers.NewChatHandler(d.Chat)
	newsH := handlers.NewNewsletterHandler(d.Newsletter)

	api := r.Group("/api")
	{
		api.POST("/auth/login", auth.Login)
		api.POST("/auth/logout", auth.Logout)
		api.GET("/auth/me", auth.Me)

		api.POST("/chat", chatH.Ask)
		api.GET("/chat/:session", chatH.Transcript)

		api.POST("/newsletter/subscribe", newsH.Subscribe)
		api.POST("/newsletter/unsubscribe", newsH.Unsubscribe)
	}

	ordersH := adminh.NewOrdersHandler(d.Store, d.OrderRepo, d.OrderSvc)
	dashH := adminh.NewDashboardHandler(d.Store, d.Log)
	productsH := adminh.NewProductsHandler(d.Products, d.Inventory, d.Uploads)
	usersH := adminh.NewUsersHandler(d.Users)
	adminNewsH := adminh.NewNewsletterHandler(d.Newsletter)

	admin := api.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("/dashboard", dashH.Show)

		admin.GET("/orders", ordersH.List)
		admin.GET("/orders/export", ordersH.Export)
		admin.GET("/orders/:id", ordersH.Detail)
		admin.PATCH("/orders/:id/status", ordersH.UpdateStatus)
		admin.POST("/orders/bulk-status", ordersH.BulkUpdateStatus)
		admin.POST("/orders/:id/notes", ordersH.AddNote)
		admin.POST("/orders/:id/cod-paid", ordersH.MarkCodPaid)

		admin.GET("/products", productsH.List)
		admin.POST("/products", productsH.Create)
		admin.GET("/products/:id", productsH.Get)
		admin.PUT("/products/:id", productsH.Update)
		admin.DELETE("/products/:id", productsH.Delete)
		admin.POST("/products/:id/stock", productsH.UpdateStock)
		admin.GET("/products/:id/stock-history", productsH.StockHistory)
		admin.POST("/products/:id/images", productsH.UploadImage)
		admin.DELETE("/products/:id/images/:imageId", productsH.DeleteImage)

		admin.GET("/categories", productsH.ListCategories)
		admin.POST("/categories", productsH.CreateCategory)
		admin.DELETE("/categories/:id", productsH.DeleteCategory)
		admin.GET("/subcategories", productsH.ListSubcategories)
		admin.POST("/subcategories", productsH.CreateSubcategory)
		admin.DELETE("/subcategories/:id", productsH.DeleteSubcategory)

		admin.GET("/users", usersH.List)
		admin.POST("/users", usersH.Create)
		admin.PATCH("/users/:id/role", usersH.SetRole)
		admin.PATCH("/users/:id/blocked", usersH.SetBlocked)
		admin.PATCH("/users/:id/password", usersH.SetPassword)

		admin.GET("/newsletters", adminNewsH.List)
		admin.POST("/newsletters", adminNewsH.Compose)
		admin.POST("/newsletters/:id/send", adminNewsH.Send)
	}

	return r
}
