package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/abgdnv/storefront/internal/catalog"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ProductForm carries the create/edit form fields as submitted. Price stays a
// string until validation so a malformed value can be re-rendered as typed.
type ProductForm struct {
	Title       string `validate:"required"`
	Price       string `validate:"required"`
	Description string `validate:"required"`
	Category    string `validate:"required"`
	Image       string
}

// formMessages maps a failed field to its user-facing rule, in the wording the
// storefront has always shown.
var formMessages = map[string]string{
	"Title":       "Product title is required",
	"Price":       "Valid price is required",
	"Description": "Product description is required",
	"Category":    "Category is required",
}

// parseProductForm binds the posted form values, trimming surrounding
// whitespace so all-blank input counts as missing.
func parseProductForm(r *http.Request) ProductForm {
	return ProductForm{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Price:       strings.TrimSpace(r.FormValue("price")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Category:    strings.TrimSpace(r.FormValue("category")),
		Image:       strings.TrimSpace(r.FormValue("image")),
	}
}

// Validate collects every violated rule, in field declaration order, so the
// form can show them together. An empty result means the form can be submitted
// upstream.
func (f ProductForm) Validate(validate *validator.Validate) []string {
	missing := make(map[string]bool)
	if err := validate.Struct(f); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fieldErr := range validationErrors {
				missing[fieldErr.Field()] = true
			}
		}
	}

	var errs []string
	if missing["Title"] {
		errs = append(errs, formMessages["Title"])
	}
	if missing["Price"] || !validPrice(f.Price) {
		errs = append(errs, formMessages["Price"])
	}
	if missing["Description"] {
		errs = append(errs, formMessages["Description"])
	}
	if missing["Category"] || !validCategory(f.Category) {
		errs = append(errs, formMessages["Category"])
	}
	return errs
}

// Draft converts a validated form into the upstream payload.
func (f ProductForm) Draft() catalog.Draft {
	price, _ := decimal.NewFromString(f.Price)
	return catalog.Draft{
		Title:       f.Title,
		Price:       price,
		Description: f.Description,
		Category:    f.Category,
		Image:       f.Image,
	}
}

func formFromProduct(p *catalog.Product) ProductForm {
	return ProductForm{
		Title:       p.Title,
		Price:       p.Price.String(),
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
	}
}

func validPrice(price string) bool {
	parsed, err := decimal.NewFromString(price)
	return err == nil && parsed.IsPositive()
}

func validCategory(category string) bool {
	for _, c := range catalog.FormCategories() {
		if c == category {
			return true
		}
	}
	return false
}
