package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kcmvp/commerce/service"
)

type orderHandler struct {
	svc *service.Order
}

func (h orderHandler) register(api *gin.RouterGroup) {
	g := api.Group("/orders")
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h orderHandler) list(c *gin.Context) {
	all, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(all))
}

func (h orderHandler) get(c *gin.Context) {
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
		abortErr(c, errNotFound("Order", id))
		return
	}
	c.JSON(http.StatusOK, opt.MustGet())
}

func (h orderHandler) create(c *gin.Context) {
	var body orderCreateBody
	if !bindBody(c, &body) {
		return
	}
	created, err := h.svc.Create(c.Request.Context(), body.entity())
	if err != nil {
		abortErr(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/orders/%d", created.ID))
	c.JSON(http.StatusCreated, created)
}

// update merges the client-writable fields onto the stored order; amounts,
// items and the order number stay as persisted.
func (h orderHandler) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body orderUpdateBody
	if !bindBody(c, &body) {
		return
	}
	opt, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		abortErr(c, err)
		return
	}
	if opt.IsAbsent() {
		abortErr(c, errNotFound("Order", id))
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), id, body.apply(opt.MustGet()))
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h orderHandler) remove(c *gin.Context) {
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
		abortErr(c, errNotFound("Order", id))
		return
	}
	c.Status(http.StatusNoContent)
}
