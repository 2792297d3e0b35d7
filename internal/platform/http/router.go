package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mashtab-ss/okna-backend/internal/business/export"
	"github.com/mashtab-ss/okna-backend/internal/business/quote"
	"github.com/mashtab-ss/okna-backend/internal/repository"
	"github.com/mashtab-ss/okna-backend/pkg/model"
)

// ProductStore is the catalog persistence surface the router depends on.
type ProductStore interface {
	List(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, id string, fields map[string]any) (model.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// RequestStore is the customer-request persistence surface the router depends on.
type RequestStore interface {
	List(ctx context.Context) ([]model.CustomerRequest, error)
	Create(ctx context.Context, req model.CustomerRequest) (model.CustomerRequest, error)
	Update(ctx context.Context, id string, fields map[string]any) (model.CustomerRequest, error)
	UpdateStatus(ctx context.Context, id, status string) (model.CustomerRequest, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Notifier receives the post-persistence event for a created request.
type Notifier interface {
	RequestCreated(req model.CustomerRequest)
}

// Router wires HTTP handlers.
type Router struct {
	products ProductStore
	requests RequestStore
	notifier Notifier
	origins  string
}

func NewRouter(products ProductStore, requests RequestStore, notifier Notifier, allowedOrigins string) *gin.Engine {
	r := &Router{
		products: products,
		requests: requests,
		notifier: notifier,
		origins:  allowedOrigins,
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), r.corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/products", r.listProducts)
		api.GET("/products/categories", r.listCategories)
		api.POST("/products", r.createProduct)
		api.PATCH("/products/:id", r.updateProduct)
		api.DELETE("/products/:id", r.deleteProduct)

		api.GET("/requests", r.listRequests)
		api.GET("/requests/export", r.exportRequests)
		api.POST("/requests", r.createRequest)
		api.PATCH("/requests/:id", r.updateRequest)
		api.PUT("/requests/:id/status", r.updateRequestStatus)
		api.DELETE("/requests/:id", r.deleteRequest)

		api.POST("/quote/preview", r.previewQuote)
	}

	return router
}

func (r *Router) corsMiddleware() gin.HandlerFunc {
	origins := strings.Split(r.origins, ",")
	trimmed := make([]string, 0, len(origins))
	for _, o := range origins {
		if t := strings.TrimSpace(o); t != "" {
			trimmed = append(trimmed, t)
		}
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed := "*"
		for _, o := range trimmed {
			if o == "*" || o == origin {
				allowed = origin
				break
			}
		}
		c.Header("Access-Control-Allow-Origin", allowed)
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}
		c.Next()
	}
}

// listProducts serves the catalog. A store failure is logged and masked with
// the built-in demo catalog so the public page still renders.
func (r *Router) listProducts(c *gin.Context) {
	products, err := r.products.List(c.Request.Context())
	if err != nil {
		log.Printf("list products: %v", err)
		c.JSON(http.StatusOK, gin.H{"items": model.DemoProducts(), "fallback": true})
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"items": products})
}

// listCategories returns the distinct product categories in first-seen order.
// The calculator uses these as its material options.
func (r *Router) listCategories(c *gin.Context) {
	products, err := r.products.List(c.Request.Context())
	if err != nil {
		log.Printf("list categories: %v", err)
		products = model.DemoProducts()
	}
	seen := make(map[string]bool)
	categories := []string{}
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	c.JSON(http.StatusOK, gin.H{"items": categories})
}

func (r *Router) createProduct(c *gin.Context) {
	var p model.Product
	if err := c.BindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if p.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	created, err := r.products.Create(c.Request.Context(), p)
	if err != nil {
		log.Printf("create product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (r *Router) updateProduct(c *gin.Context) {
	fields, ok := bindPartial(c)
	if !ok {
		return
	}
	updated, err := r.products.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		log.Printf("update product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (r *Router) deleteProduct(c *gin.Context) {
	deleted, err := r.products.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("delete product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// listRequests serves the admin request list, optionally filtered by a
// substring query over contact fields, newest first.
func (r *Router) listRequests(c *gin.Context) {
	requests, err := r.requests.List(c.Request.Context())
	if err != nil {
		log.Printf("list requests: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	requests = filterRequests(requests, c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"items": requests})
}

type createRequestPayload struct {
	Name           string                `json:"name" binding:"required"`
	Email          string                `json:"email" binding:"required,email"`
	Phone          string                `json:"phone" binding:"required"`
	Message        string                `json:"message"`
	CalculatorData *model.CalculatorData `json:"calculatorData"`
}

func (r *Router) createRequest(c *gin.Context) {
	var payload createRequestPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}
	created, err := r.requests.Create(c.Request.Context(), model.CustomerRequest{
		Name:           payload.Name,
		Email:          payload.Email,
		Phone:          payload.Phone,
		Message:        payload.Message,
		CalculatorData: payload.CalculatorData,
	})
	if err != nil {
		log.Printf("create request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	r.notifier.RequestCreated(created)
	c.JSON(http.StatusCreated, created)
}

func (r *Router) updateRequest(c *gin.Context) {
	fields, ok := bindPartial(c)
	if !ok {
		return
	}
	if s, present := fields["status"]; present {
		str, isString := s.(string)
		if !isString || !model.ValidStatus(str) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid status %v", s)})
			return
		}
	}
	updated, err := r.requests.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
			return
		}
		log.Printf("update request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

type statusPayload struct {
	Status string `json:"status" binding:"required"`
}

func (r *Router) updateRequestStatus(c *gin.Context) {
	var payload statusPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if !model.ValidStatus(payload.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid status %q", payload.Status)})
		return
	}
	updated, err := r.requests.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
			return
		}
		log.Printf("update request status: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (r *Router) deleteRequest(c *gin.Context) {
	deleted, err := r.requests.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("delete request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// exportRequests streams the current filtered view as an xlsx attachment.
func (r *Router) exportRequests(c *gin.Context) {
	requests, err := r.requests.List(c.Request.Context())
	if err != nil {
		log.Printf("export requests: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	requests = filterRequests(requests, c.Query("q"))

	workbook, err := export.Workbook(requests)
	if err != nil {
		log.Printf("build export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer workbook.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(export.Filename(time.Now()))))
	if _, err := workbook.WriteTo(c.Writer); err != nil {
		log.Printf("write export: %v", err)
	}
}

// previewQuote derives the calculator summary for a configuration without
// persisting anything. Zero-valued fields fall back to the defaults, with the
// linked product's category as the default material.
func (r *Router) previewQuote(c *gin.Context) {
	var in quote.Config
	if err := c.BindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	cfg := quote.New(in.SelectedProduct)
	if in.Width > 0 {
		cfg.Width = in.Width
	}
	if in.Height > 0 {
		cfg.Height = in.Height
	}
	if in.WindowType != "" {
		cfg.WindowType = in.WindowType
	}
	if in.Material != "" {
		cfg.Material = in.Material
	}
	if in.GlazingType != "" {
		cfg.GlazingType = in.GlazingType
	}
	for _, f := range in.AdditionalFeatures {
		if !cfg.HasFeature(f) {
			cfg = cfg.ToggleFeature(f)
		}
	}
	cfg = cfg.WithQuantity(in.Quantity)

	snap := cfg.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"config": snap,
		"labels": gin.H{
			"windowType": quote.LabelFor(quote.DictWindowType, snap.WindowType),
			"material":   quote.LabelFor(quote.DictMaterial, snap.Material),
			"glazing":    quote.LabelFor(quote.DictGlazing, snap.GlazingType),
			"features":   quote.FeatureLabels(snap.AdditionalFeatures),
		},
	})
}

// bindPartial reads a partial-update body into a field map, rejecting empty
// bodies up front.
func bindPartial(c *gin.Context) (map[string]any, bool) {
	var fields map[string]any
	if err := c.BindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return nil, false
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		return nil, false
	}
	return fields, true
}

// filterRequests narrows the list to entries whose contact fields contain q
// and sorts newest first. Stored dates are RFC3339, so string order is
// chronological.
func filterRequests(requests []model.CustomerRequest, q string) []model.CustomerRequest {
	out := make([]model.CustomerRequest, 0, len(requests))
	needle := strings.ToLower(strings.TrimSpace(q))
	for _, req := range requests {
		if needle == "" || matchesQuery(req, needle) {
			out = append(out, req)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

func matchesQuery(req model.CustomerRequest, needle string) bool {
	for _, field := range []string{req.Name, req.Email, req.Phone, req.Message} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
