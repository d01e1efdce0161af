// Package web serves the storefront pages: product listing, detail,
// create/edit forms and the shopping cart.
package web

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/abgdnv/storefront/internal/cart"
	"github.com/abgdnv/storefront/internal/catalog"
	"github.com/abgdnv/storefront/internal/view"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// CatalogService is the slice of the remote catalog client the handlers
// consume. The handlers never hold catalog data between requests; every page
// renders from a fresh fetch.
type CatalogService interface {
	List(ctx context.Context) ([]catalog.Product, error)
	Get(ctx context.Context, id int) (*catalog.Product, error)
	Create(ctx context.Context, draft catalog.Draft) (*catalog.Product, error)
	Update(ctx context.Context, id int, draft catalog.Draft) (*catalog.Product, error)
	Delete(ctx context.Context, id int) error
}

type Handler struct {
	catalog   CatalogService
	carts     *cart.Store
	templates map[string]*template.Template
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewHandler creates the storefront handler with the provided catalog client
// and cart store.
func NewHandler(catalogSvc CatalogService, carts *cart.Store, logger *slog.Logger) (*Handler, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Handler{
		catalog:   catalogSvc,
		carts:     carts,
		templates: templates,
		validate:  validator.New(),
		logger:    logger.With("component", "web"),
	}, nil
}

// RegisterRoutes registers the storefront routes. Sessions must wrap every
// page so the cart badge resolves against a single session per request.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Use(Sessions)

	r.Get("/", h.Home)
	r.Get("/products", h.Products)

	r.Route("/product", func(r chi.Router) {
		r.Get("/new", h.NewProduct)
		r.Post("/new", h.CreateProduct)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.ProductDetails)
			r.Get("/edit", h.EditProduct)
			r.Post("/edit", h.UpdateProduct)
			r.Post("/delete", h.DeleteProduct)
		})
	})

	r.Get("/cart", h.Cart)
	r.Post("/cart/add", h.AddToCart)

	r.Get("/healthz", h.HealthCheck)
}

// pageData is the part of every page the layout needs: the navigation state
// and the cart badge.
type pageData struct {
	Title     string
	Active    string
	CartCount int
}

type featuredCategory struct {
	Name        string
	Icon        string
	Description string
}

type homeData struct {
	pageData
	Featured []featuredCategory
}

type productsData struct {
	pageData
	Products     []catalog.Product
	SnapshotSize int
	Category     string
	Sort         string
	Options      []string
	Counts       map[string]int
	Modes        []struct{ Value, Label string }
}

type productData struct {
	pageData
	Product *catalog.Product
}

type formData struct {
	pageData
	IsEdit       bool
	ID           int
	Form         ProductForm
	Categories   []string
	ErrorMessage string
	Success      bool
	Saved        *catalog.Product
}

type cartData struct {
	pageData
	Items []cart.Entry
	Total decimal.Decimal
}

type errorData struct {
	pageData
	Heading  string
	Message  string
	RetryURL string
}

// Home renders the landing page.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, h.loggerWithReqID(r), http.StatusOK, "home", homeData{
		pageData: h.page(r, "Welcome to FakeStore", "home"),
		Featured: []featuredCategory{
			{Name: "Electronics", Icon: "📱", Description: "Latest gadgets and tech"},
			{Name: "Fashion", Icon: "👕", Description: "Trendy clothing and style"},
			{Name: "Jewelry", Icon: "💎", Description: "Elegant accessories"},
		},
	})
}

// Products renders the listing derived from a fresh catalog snapshot and the
// category/sort selectors from the query string.
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	page := h.page(r, "Our Products", "products")

	products, err := h.catalog.List(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error fetching product list", "error", err)
		h.renderError(w, r, http.StatusBadGateway, "Error Loading Products", err.Error(), r.URL.RequestURI())
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		category = view.CategoryAll
	}
	mode := view.ParseSortMode(r.URL.Query().Get("sort"))

	h.render(w, mLogger, http.StatusOK, "products", productsData{
		pageData:     page,
		Products:     view.FilterSort(products, category, mode),
		SnapshotSize: len(products),
		Category:     category,
		Sort:         string(mode),
		Options:      view.CategoryOptions(products),
		Counts:       view.CategoryCounts(products),
		Modes:        view.SortModes(),
	})
}

// ProductDetails renders one product with the add-to-cart and management
// affordances.
func (h *Handler) ProductDetails(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	page := h.page(r, "Product", "products")

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	product, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		mLogger.WarnContext(r.Context(), "Product not found", "id", id, "error", err)
		h.renderError(w, r, http.StatusNotFound, "Product Not Found", err.Error(), r.URL.RequestURI())
		return
	}
	page.Title = product.Title
	h.render(w, mLogger, http.StatusOK, "product", productData{pageData: page, Product: product})
}

// NewProduct renders an empty create form.
func (h *Handler) NewProduct(w http.ResponseWriter, r *http.Request) {
	h.render(w, h.loggerWithReqID(r), http.StatusOK, "form", formData{
		pageData:   h.page(r, "Add New Product", "new"),
		Categories: catalog.FormCategories(),
	})
}

// CreateProduct validates the form locally and submits it to the catalog.
// All violated rules are shown together; no request is issued while the form
// is invalid.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	page := h.page(r, "Add New Product", "new")
	form := parseProductForm(r)

	data := formData{pageData: page, Form: form, Categories: catalog.FormCategories()}
	if errs := form.Validate(h.validate); len(errs) > 0 {
		mLogger.WarnContext(r.Context(), "Product form validation failed", "errors", errs)
		data.ErrorMessage = strings.Join(errs, ", ")
		h.render(w, mLogger, http.StatusBadRequest, "form", data)
		return
	}

	created, err := h.catalog.Create(r.Context(), form.Draft())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error creating product", "error", err)
		data.ErrorMessage = err.Error()
		h.render(w, mLogger, http.StatusBadGateway, "form", data)
		return
	}
	mLogger.InfoContext(r.Context(), "Product created", "id", created.ID, "title", created.Title)

	// Reset the form for the next product; the success panel shows what was
	// just created.
	data.Form = ProductForm{}
	data.Success = true
	data.Saved = created
	h.render(w, mLogger, http.StatusOK, "form", data)
}

// EditProduct renders the edit form pre-filled from the catalog.
func (h *Handler) EditProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	page := h.page(r, "Edit Product", "products")

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	product, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		mLogger.WarnContext(r.Context(), "Product not found for edit", "id", id, "error", err)
		h.renderError(w, r, http.StatusNotFound, "Product Not Found", err.Error(), r.URL.RequestURI())
		return
	}
	h.render(w, mLogger, http.StatusOK, "form", formData{
		pageData:   page,
		IsEdit:     true,
		ID:         id,
		Form:       formFromProduct(product),
		Categories: catalog.FormCategories(),
	})
}

// UpdateProduct validates the form and replaces the product. The form values
// are preserved on failure so the user can retry without re-entering them.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	page := h.page(r, "Edit Product", "products")

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	form := parseProductForm(r)
	data := formData{pageData: page, IsEdit: true, ID: id, Form: form, Categories: catalog.FormCategories()}
	if errs := form.Validate(h.validate); len(errs) > 0 {
		mLogger.WarnContext(r.Context(), "Product form validation failed", "id", id, "errors", errs)
		data.ErrorMessage = strings.Join(errs, ", ")
		h.render(w, mLogger, http.StatusBadRequest, "form", data)
		return
	}

	updated, err := h.catalog.Update(r.Context(), id, form.Draft())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error updating product", "id", id, "error", err)
		data.ErrorMessage = err.Error()
		h.render(w, mLogger, http.StatusBadGateway, "form", data)
		return
	}
	mLogger.InfoContext(r.Context(), "Product updated", "id", updated.ID, "title", updated.Title)

	data.Success = true
	data.Saved = updated
	h.render(w, mLogger, http.StatusOK, "form", data)
}

// DeleteProduct removes the product and returns to the listing.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	if err := h.catalog.Delete(r.Context(), id); err != nil {
		mLogger.ErrorContext(r.Context(), "Error deleting product", "id", id, "error", err)
		h.renderError(w, r, http.StatusBadGateway, "Error Deleting Product", err.Error(), "/product/"+strconv.Itoa(id))
		return
	}
	mLogger.InfoContext(r.Context(), "Product deleted", "id", id)
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

// AddToCart merges the posted product and quantity into the session cart.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sid := sessionFrom(r.Context())

	id, err := strconv.Atoi(r.FormValue("product_id"))
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "Invalid Product", "invalid product id", "/products")
		return
	}
	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil || quantity < 1 {
		quantity = 1
	}

	product, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		mLogger.WarnContext(r.Context(), "Product not found for cart", "id", id, "error", err)
		h.renderError(w, r, http.StatusNotFound, "Product Not Found", err.Error(), "/products")
		return
	}
	h.carts.Session(sid).Add(*product, quantity)
	mLogger.DebugContext(r.Context(), "Added product to cart", "id", id, "quantity", quantity)

	http.Redirect(w, r, redirectTarget(r), http.StatusSeeOther)
}

// redirectTarget resolves where to send the shopper after an add. Only
// same-origin referers are honored; anything else falls back to the cart page.
func redirectTarget(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || (ref.Host != "" && ref.Host != r.Host) {
		return "/cart"
	}
	if !strings.HasPrefix(ref.Path, "/") {
		return "/cart"
	}
	return ref.RequestURI()
}

// Cart renders the session cart with line and grand totals.
func (h *Handler) Cart(w http.ResponseWriter, r *http.Request) {
	c := h.carts.Session(sessionFrom(r.Context()))
	h.render(w, h.loggerWithReqID(r), http.StatusOK, "cart", cartData{
		pageData: pageData{Title: "Your Cart", Active: "cart", CartCount: c.Count()},
		Items:    c.Items(),
		Total:    c.Total(),
	})
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// page assembles the layout data shared by every page, resolving the session
// cart for the badge.
func (h *Handler) page(r *http.Request, title, active string) pageData {
	sid := sessionFrom(r.Context())
	return pageData{
		Title:     title,
		Active:    active,
		CartCount: h.carts.Session(sid).Count(),
	}
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, heading, message, retryURL string) {
	h.render(w, h.loggerWithReqID(r), status, "error", errorData{
		pageData: h.page(r, heading, ""),
		Heading:  heading,
		Message:  message,
		RetryURL: retryURL,
	})
}

// parseID extracts and validates the product ID from the request path.
func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		h.renderError(w, r, http.StatusBadRequest, "Invalid Product", "invalid product id: "+raw, "/products")
		return 0, false
	}
	return id, true
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
