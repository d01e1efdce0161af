// Package catalog holds the product model and the client for the remote
// catalog API the storefront is built on.
package catalog

import "github.com/shopspring/decimal"

func init() {
	// The upstream API encodes prices as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a catalog entry as served by the remote API. Products fetched
// from the catalog may carry any category text; the fixed FormCategories set
// applies only to create/edit forms.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      Rating          `json:"rating"`
}

// Rating is supplied by the catalog and never edited by this service.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Draft is the payload for creating or updating a product. It has no ID;
// the catalog assigns one on create.
type Draft struct {
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
}

// PlaceholderImage is used when a draft is submitted without an image URL.
const PlaceholderImage = "https://fakestoreapi.com/img/placeholder.jpg"

// FormCategories is the set of categories offered on the create/edit forms.
func FormCategories() []string {
	return []string{
		"electronics",
		"jewelery",
		"men's clothing",
		"women's clothing",
	}
}
