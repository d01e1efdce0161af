package catalog

import "errors"

var (
	ErrFetchFailed  = errors.New("failed to fetch products")
	ErrNotFound     = errors.New("product not found")
	ErrCreateFailed = errors.New("failed to create product")
	ErrUpdateFailed = errors.New("failed to update product")
	ErrDeleteFailed = errors.New("failed to delete product")
)
