package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Category classifies the order and drives which fields are required, which
// payment options are available, and which tax treatments a line may carry.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	// CategoryB2C is a retail sale to an end customer.
	CategoryB2C

	// CategoryB2B is a sale to another business.
	CategoryB2B

	// CategoryB2G is a sale to a government buyer; requires a GeM order
	// number and allows tax-inclusive line pricing.
	CategoryB2G

	// CategoryDemo is a demonstration placement; no payment is collected.
	CategoryDemo

	// CategoryReplacement replaces previously sold goods.
	CategoryReplacement
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown:     "Unknown",
		CategoryB2C:         "B2C",
		CategoryB2B:         "B2B",
		CategoryB2G:         "B2G",
		CategoryDemo:        "Demo",
		CategoryReplacement: "Replacement",
	}
}

func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Category]string{
		CategoryB2C:         "B2C",
		CategoryB2B:         "B2B",
		CategoryB2G:         "B2G",
		CategoryDemo:        "Demo",
		CategoryReplacement: "Replacement",
	}
}

// CategoryFromString parses the persisted or transported category name.
func CategoryFromString(s string) (Category, error) {
	for c, str := range getValidCategoryStrings() {
		if str == s {
			return c, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("category",
		fmt.Errorf("%q is not a valid category", s))
}

// Validate checks if the Category value is valid.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the human-readable name of the category.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// AllowedTaxRates returns the tax treatments a line may carry for this
// category. Every category exposes the two numeric GST rates; B2G
// additionally allows the tax-inclusive option.
func (c Category) AllowedTaxRates() []TaxRate {
	rates := []TaxRate{StandardTaxRateLow(), StandardTaxRateHigh()}
	if c == CategoryB2G {
		rates = append(rates, InclusiveTaxRate())
	}
	return rates
}
