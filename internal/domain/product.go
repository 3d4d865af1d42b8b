package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is one selectable colorway of a product.
type Color struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Size is one selectable size of a product.
type Size struct {
	Value     string `json:"value"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// Product is a catalog record. Price carries the display form ("$200.20");
// PriceCents is the normalized minor-unit amount used for all arithmetic.
type Product struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      string  `json:"price"`
	PriceCents int64   `json:"priceCents"`
	ImgURL     string  `json:"imgURL"`
	Category   string  `json:"category,omitempty"`
	Rating     float64 `json:"rating,omitempty"`
	Colors     []Color `json:"colors,omitempty"`
	Sizes      []Size  `json:"sizes,omitempty"`
}

// ParsePriceCents converts a display price such as "$1,200.20" into cents.
// A leading currency symbol and thousands separators are tolerated.
func ParsePriceCents(price string) (int64, error) {
	s := strings.TrimSpace(price)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("parse price %q: empty amount", price)
	}

	whole, frac, _ := strings.Cut(s, ".")
	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", price, err)
	}

	var cents int64
	if frac != "" {
		if len(frac) > 2 {
			frac = frac[:2]
		}
		for len(frac) < 2 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse price %q: %w", price, err)
		}
	}

	return dollars*100 + cents, nil
}

// FormatPriceCents renders cents in the catalog's display form.
func FormatPriceCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
