package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kcmvp/commerce/service"
)

type categoryHandler struct {
	svc *service.Category
}

func (h categoryHandler) register(api *gin.RouterGroup) {
	g := api.Group("/categories")
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h categoryHandler) list(c *gin.Context) {
	all, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(all))
}

func (h categoryHandler) get(c *gin.Context) {
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
		abortErr(c, errNotFound("Category", id))
		return
	}
	c.JSON(http.StatusOK, opt.MustGet())
}

func (h categoryHandler) create(c *gin.Context) {
	var body categoryBody
	if !bindBody(c, &body) {
		return
	}
	created, err := h.svc.Create(c.Request.Context(), body.entity())
	if err != nil {
		abortErr(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/categories/%d", created.ID))
	c.JSON(http.StatusCreated, created)
}

func (h categoryHandler) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body categoryBody
	if !bindBody(c, &body) {
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), id, body.entity())
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h categoryHandler) remove(c *gin.Context) {
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
		abortErr(c, errNotFound("Category", id))
		return
	}
	c.Status(http.StatusNoContent)
}

type supplierHandler struct {
	svc *service.Supplier
}

func (h supplierHandler) register(api *gin.RouterGroup) {
	g := api.Group("/suppliers")
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h supplierHandler) list(c *gin.Context) {
	all, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(all))
}

func (h supplierHandler) get(c *gin.Context) {
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
		abortErr(c, errNotFound("Supplier", id))
		return
	}
	c.JSON(http.StatusOK, opt.MustGet())
}

func (h supplierHandler) create(c *gin.Context) {
	var body supplierBody
	if !bindBody(c, &body) {
		return
	}
	created, err := h.svc.Create(c.Request.Context(), body.entity())
	if err != nil {
		abortErr(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/suppliers/%d", created.ID))
	c.JSON(http.StatusCreated, created)
}

func (h supplierHandler) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body supplierBody
	if !bindBody(c, &body) {
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), id, body.entity())
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h supplierHandler) remove(c *gin.Context) {
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
		abortErr(c, errNotFound("Supplier", id))
		return
	}
	c.Status(http.StatusNoContent)
}

type productHandler struct {
	svc *service.Product
}

func (h productHandler) register(api *gin.RouterGroup) {
	g := api.Group("/products")
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h productHandler) list(c *gin.Context) {
	all, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(all))
}

func (h productHandler) get(c *gin.Context) {
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
		abortErr(c, errNotFound("Product", id))
		return
	}
	c.JSON(http.StatusOK, opt.MustGet())
}

func (h productHandler) create(c *gin.Context) {
	var body productBody
	if !bindBody(c, &body) {
		return
	}
	created, err := h.svc.Create(c.Request.Context(), body.entity())
	if err != nil {
		abortErr(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/products/%d", created.ID))
	c.JSON(http.StatusCreated, created)
}

func (h productHandler) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body productBody
	if !bindBody(c, &body) {
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), id, body.entity())
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h productHandler) remove(c *gin.Context) {
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
		abortErr(c, errNotFound("Product", id))
		return
	}
	c.Status(http.StatusNoContent)
}
