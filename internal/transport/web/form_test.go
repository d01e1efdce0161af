package web

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ProductForm_Validate(t *testing.T) {
	validate := validator.New()
	testCases := []struct {
		name     string
		form     ProductForm
		expected []string
	}{
		{
			name: "valid form has no errors",
			form: ProductForm{
				Title:       "Widget",
				Price:       "19.99",
				Description: "A fine widget",
				Category:    "electronics",
			},
			expected: nil,
		},
		{
			name: "blank title and zero price collected together",
			form: ProductForm{
				Title:       "",
				Price:       "0",
				Description: "A fine widget",
				Category:    "electronics",
			},
			expected: []string{"Product title is required", "Valid price is required"},
		},
		{
			name: "everything missing reports every rule",
			form: ProductForm{},
			expected: []string{
				"Product title is required",
				"Valid price is required",
				"Product description is required",
				"Category is required",
			},
		},
		{
			name: "malformed price and blank description report in field order",
			form: ProductForm{
				Title:       "Widget",
				Price:       "abc",
				Description: "",
				Category:    "electronics",
			},
			expected: []string{"Valid price is required", "Product description is required"},
		},
		{
			name: "negative price is invalid",
			form: ProductForm{
				Title:       "Widget",
				Price:       "-3",
				Description: "d",
				Category:    "jewelery",
			},
			expected: []string{"Valid price is required"},
		},
		{
			name: "non-numeric price is invalid",
			form: ProductForm{
				Title:       "Widget",
				Price:       "abc",
				Description: "d",
				Category:    "jewelery",
			},
			expected: []string{"Valid price is required"},
		},
		{
			name: "category outside the enumerated set is invalid",
			form: ProductForm{
				Title:       "Widget",
				Price:       "5",
				Description: "d",
				Category:    "furniture",
			},
			expected: []string{"Category is required"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.form.Validate(validate))
		})
	}
}

func Test_ProductForm_Draft(t *testing.T) {
	form := ProductForm{
		Title:       "Widget",
		Price:       "19.99",
		Description: "A fine widget",
		Category:    "electronics",
		Image:       "",
	}
	draft := form.Draft()
	require.Equal(t, "Widget", draft.Title)
	assert.Equal(t, "19.99", draft.Price.String())
	assert.Equal(t, "electronics", draft.Category)
	// image defaulting happens in the catalog client, not here
	assert.Empty(t, draft.Image)
}
