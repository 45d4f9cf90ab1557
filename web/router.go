// Package web is the HTTP surface: one REST group per entity, a uniform
// error envelope, per-request logging and prometheus metrics.
package web

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kcmvp/commerce/app"
	"github.com/kcmvp/commerce/fault"
	"github.com/kcmvp/commerce/metrics"
	"github.com/kcmvp/commerce/model"
	"github.com/kcmvp/commerce/service"
	"github.com/kcmvp/commerce/store"
)

// Services bundles every entity service the router dispatches to.
type Services struct {
	Categories  *service.Category
	Suppliers   *service.Supplier
	Products    *service.Product
	Orders      *service.Order
	Deliveries  *service.Delivery
	Inventories *service.Inventory
	Payments    *service.Payment
	RequestLogs *service.RequestLog
}

// MemoryServices wires every service onto in-memory stores. Used by tests and
// by serve when no datasource is configured.
func MemoryServices() Services {
	orders := store.NewMemory[model.Order]()
	products := store.NewMemory[model.Product]()
	return Services{
		Categories:  service.NewCategory(store.NewMemory[model.Category]()),
		Suppliers:   service.NewSupplier(store.NewMemory[model.Supplier]()),
		Products:    service.NewProduct(products),
		Orders:      service.NewOrder(orders),
		Deliveries:  service.NewDelivery(store.NewMemory[model.Delivery](), orders),
		Inventories: service.NewInventory(store.NewMemory[model.Inventory](), products),
		Payments:    service.NewPayment(store.NewMemory[model.Payment](), orders),
		RequestLogs: service.NewRequestLog(store.NewMemory[model.RequestLog]()),
	}
}

// SQLServices wires every service onto relational stores backed by db.
func SQLServices(db store.DB) Services {
	orders := store.NewOrderSQL(db)
	products := store.NewSQL(db, store.ProductMapper)
	return Services{
		Categories:  service.NewCategory(store.NewSQL(db, store.CategoryMapper)),
		Suppliers:   service.NewSupplier(store.NewSQL(db, store.SupplierMapper)),
		Products:    service.NewProduct(products),
		Orders:      service.NewOrder(orders),
		Deliveries:  service.NewDelivery(store.NewSQL(db, store.DeliveryMapper), orders),
		Inventories: service.NewInventory(store.NewSQL(db, store.InventoryMapper), products),
		Payments:    service.NewPayment(store.NewSQL(db, store.PaymentMapper), orders),
		RequestLogs: service.NewRequestLog(store.NewSQL(db, store.RequestLogMapper)),
	}
}

// NewRouter builds the gin engine with the full middleware chain. The
// translation middleware sits innermost so the request logger observes the
// translated status code.
func NewRouter(svcs Services) *gin.Engine {
	engine := gin.New()
	engine.Use(TraceID(), metrics.Middleware(), RequestLogger(svcs.RequestLogs), Errors(), corsMiddleware())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := engine.Group("/api")
	categoryHandler{svc: svcs.Categories}.register(api)
	supplierHandler{svc: svcs.Suppliers}.register(api)
	productHandler{svc: svcs.Products}.register(api)
	orderHandler{svc: svcs.Orders}.register(api)
	deliveryHandler{svc: svcs.Deliveries}.register(api)
	inventoryHandler{svc: svcs.Inventories}.register(api)
	paymentHandler{svc: svcs.Payments}.register(api)
	requestLogHandler{svc: svcs.RequestLogs}.register(api)
	return engine
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Trace-Id"}
	if origins := app.CORSOrigins(); len(origins) > 0 {
		cfg.AllowOrigins = origins
	} else {
		cfg.AllowAllOrigins = true
	}
	return cors.New(cfg)
}

// pathID parses the :id (or other named) route parameter. A non-integer value
// is an InvalidArgument like any other malformed input.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		abortErr(c, fault.InvalidArgf("%s must be an integer", name))
		return 0, false
	}
	return id, true
}

// bindBody decodes the JSON request body into out.
func bindBody(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		abortErr(c, fault.InvalidArgf("invalid request body: %s", err.Error()))
		return false
	}
	return true
}

// orEmpty keeps list responses as [] instead of null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
