package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"ynvbites/internal/domain"
	"ynvbites/internal/infrastructure/storage"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Controller renders the storefront and the admin dashboard.
type Controller struct {
	store  *storage.Store
	logger *zap.Logger
	tmpl   *template.Template
}

func NewController(store *storage.Store, logger *zap.Logger) (*Controller, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Controller{
		store:  store,
		logger: logger,
		tmpl:   tmpl,
	}, nil
}

type indexData struct {
	Settings domain.Settings
	Products []domain.Product
}

func (c *Controller) Index(w http.ResponseWriter, r *http.Request) {
	doc, err := c.load(w, r)
	if doc == nil || err != nil {
		return
	}
	c.render(w, r, "index.html", indexData{
		Settings: doc.Settings,
		Products: doc.Products,
	})
}

type adminData struct {
	Settings  domain.Settings
	Customers []domain.Customer
	Orders    []domain.Order
	Contacts  []domain.Contact
}

func (c *Controller) Admin(w http.ResponseWriter, r *http.Request) {
	doc, err := c.load(w, r)
	if doc == nil || err != nil {
		return
	}
	c.render(w, r, "admin.html", adminData{
		Settings:  doc.Settings,
		Customers: doc.Customers,
		Orders:    doc.Orders,
		Contacts:  doc.Contacts,
	})
}

func (c *Controller) load(w http.ResponseWriter, r *http.Request) (*domain.Document, error) {
	doc, err := c.store.Load()
	if err != nil {
		c.requestLogger(r).Error("loading document failed", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return nil, err
	}
	return doc, nil
}

func (c *Controller) render(w http.ResponseWriter, r *http.Request, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.tmpl.ExecuteTemplate(w, name, data); err != nil {
		c.requestLogger(r).Error("rendering template failed",
			zap.String("template", name), zap.Error(err))
	}
}

func (c *Controller) requestLogger(r *http.Request) *zap.Logger {
	return c.logger.With(zap.String("requestId", middleware.GetReqID(r.Context())))
}
