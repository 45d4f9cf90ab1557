package web

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kcmvp/commerce/fault"
	"github.com/kcmvp/commerce/service"
	"github.com/tidwall/gjson"
)

type deliveryHandler struct {
	svc *service.Delivery
}

func (h deliveryHandler) register(api *gin.RouterGroup) {
	g := api.Group("/deliveries")
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.GET("/order/:orderId", h.byOrder)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h deliveryHandler) list(c *gin.Context) {
	all, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(all))
}

func (h deliveryHandler) get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	opt, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		abortErr(c, err)
		return
	}
	if opt.IsAbsent() {
		abortErr(c, errNotFound("Delivery", id))
		return
	}
	c.JSON(http.StatusOK, opt.MustGet())
}

func (h deliveryHandler) byOrder(c *gin.Context) {
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}
	deliveries, err := h.svc.ByOrder(c.Request.Context(), orderID)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(deliveries))
}

func (h deliveryHandler) create(c *gin.Context) {
	var body deliveryCreateBody
	if !bindBody(c, &body) {
		return
	}
	created, err := h.svc.Create(c.Request.Context(), body.entity())
	if err != nil {
		abortErr(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/deliveries/%d", created.ID))
	c.JSON(http.StatusCreated, created)
}

func (h deliveryHandler) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body deliveryUpdateBody
	if !bindBody(c, &body) {
		return
	}
	opt, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		abortErr(c, err)
		return
	}
	if opt.IsAbsent() {
		abortErr(c, errNotFound("Delivery", id))
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), id, body.apply(opt.MustGet()))
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h deliveryHandler) remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	removed, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		abortErr(c, err)
		return
	}
	if !removed {
		abortErr(c, errNotFound("Delivery", id))
		return
	}
	c.Status(http.StatusNoContent)
}

type inventoryHandler struct {
	svc *service.Inventory
}

func (h inventoryHandler) register(api *gin.RouterGroup) {
	g := api.Group("/inventory")
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.GET("/product/:productId", h.byProduct)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.PATCH("/:id/quantity", h.updateQuantity)
	g.DELETE("/:id", h.remove)
}

func (h inventoryHandler) list(c *gin.Context) {
	all, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(all))
}

func (h inventoryHandler) get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	opt, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		abortErr(c, err)
		return
	}
	if opt.IsAbsent() {
		abortErr(c, errNotFound("Inventory", id))
		return
	}
	c.JSON(http.StatusOK, opt.MustGet())
}

func (h inventoryHandler) byProduct(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}
	opt, err := h.svc.ByProduct(c.Request.Context(), productID)
	if err != nil {
		abortErr(c, err)
		return
	}
	if opt.IsAbsent() {
		abortErr(c, fault.InvalidOpf("Inventory for product ID %d not found", productID))
		return
	}
	c.JSON(http.StatusOK, opt.MustGet())
}

func (h inventoryHandler) create(c *gin.Context) {
	var body inventoryCreateBody
	if !bindBody(c, &body) {
		return
	}
	created, err := h.svc.Create(c.Request.Context(), body.entity())
	if err != nil {
		abortErr(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/inventory/%d", created.ID))
	c.JSON(http.StatusCreated, created)
}

func (h inventoryHandler) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body inventoryUpdateBody
	if !bindBody(c, &body) {
		return
	}
	opt, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		abortErr(c, err)
		return
	}
	if opt.IsAbsent() {
		abortErr(c, errNotFound("Inventory", id))
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), id, body.apply(opt.MustGet()))
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// updateQuantity accepts either a bare signed integer body or
// {"quantityChange": n}.
func (h inventoryHandler) updateQuantity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		abortErr(c, fault.InvalidArgf("invalid request body: %s", err.Error()))
		return
	}
	body := strings.TrimSpace(string(raw))
	var delta int
	if parsed := gjson.Parse(body); parsed.Type == gjson.Number {
		delta = int(parsed.Int())
	} else if change := gjson.Get(body, "quantityChange"); change.Type == gjson.Number {
		delta = int(change.Int())
	} else {
		abortErr(c, fault.InvalidArgf("request body must be an integer quantity change"))
		return
	}
	updated, err := h.svc.UpdateQuantity(c.Request.Context(), id, delta)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h inventoryHandler) remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	removed, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		abortErr(c, err)
		return
	}
	if !removed {
		abortErr(c, errNotFound("Inventory", id))
		return
	}
	c.Status(http.StatusNoContent)
}

type paymentHandler struct {
	svc *service.Payment
}

func (h paymentHandler) register(api *gin.RouterGroup) {
	g := api.Group("/payments")
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.GET("/order/:orderId", h.byOrder)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h paymentHandler) list(c *gin.Context) {
	all, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(all))
}

func (h paymentHandler) get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	opt, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		abortErr(c, err)
		return
	}
	if opt.IsAbsent() {
		abortErr(c, errNotFound("Payment", id))
		return
	}
	c.JSON(http.StatusOK, opt.MustGet())
}

func (h paymentHandler) byOrder(c *gin.Context) {
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}
	payments, err := h.svc.ByOrder(c.Request.Context(), orderID)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(payments))
}

func (h paymentHandler) create(c *gin.Context) {
	var body paymentCreateBody
	if !bindBody(c, &body) {
		return
	}
	created, err := h.svc.Create(c.Request.Context(), body.entity())
	if err != nil {
		abortErr(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/payments/%d", created.ID))
	c.JSON(http.StatusCreated, created)
}

func (h paymentHandler) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body paymentUpdateBody
	if !bindBody(c, &body) {
		return
	}
	opt, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		abortErr(c, err)
		return
	}
	if opt.IsAbsent() {
		abortErr(c, errNotFound("Payment", id))
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), id, body.apply(opt.MustGet()))
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h paymentHandler) remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	removed, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		abortErr(c, err)
		return
	}
	if !removed {
		abortErr(c, errNotFound("Payment", id))
		return
	}
	c.Status(http.StatusNoContent)
}

type requestLogHandler struct {
	svc *service.RequestLog
}

func (h requestLogHandler) register(api *gin.RouterGroup) {
	api.GET("/requestlogs", h.list)
}

func (h requestLogHandler) list(c *gin.Context) {
	all, err := h.svc.All(c.Request.Context())
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(all))
}
