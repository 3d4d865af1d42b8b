package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"storefront/internal/domain"
)

// CSVImporter reads catalog exports and produces product records suitable
// for the embedded fixture. Expected header: id, name, price, imgURL,
// category, rating, colors, sizes. Colors are encoded as
// "id:Name:#hex|..." and sizes as "value:name:available|...".
type CSVImporter struct {
	reader *csv.Reader
}

func NewCSVImporter(r io.Reader) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{reader: csvr}
}

// Run parses all rows and returns the products, validated as a catalog.
func (i *CSVImporter) Run() ([]domain.Product, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var products []domain.Product
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		product, err := parseRow(record, index)
		if err != nil {
			return nil, err
		}
		if product == nil {
			continue
		}
		products = append(products, *product)
	}

	if _, err := New(products); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	return products, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) (*domain.Product, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	id := field("id")
	if id == "" {
		return nil, nil // blank row
	}

	price := field("price")
	cents, err := domain.ParsePriceCents(price)
	if err != nil {
		return nil, fmt.Errorf("row %q: %w", id, err)
	}

	var rating float64
	if raw := field("rating"); raw != "" {
		rating, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("row %q: parse rating %q: %w", id, raw, err)
		}
	}

	colors, err := parseColors(field("colors"))
	if err != nil {
		return nil, fmt.Errorf("row %q: %w", id, err)
	}
	sizes, err := parseSizes(field("sizes"))
	if err != nil {
		return nil, fmt.Errorf("row %q: %w", id, err)
	}

	return &domain.Product{
		ID:         id,
		Name:       field("name"),
		Price:      price,
		PriceCents: cents,
		ImgURL:     field("imgurl"),
		Category:   field("category"),
		Rating:     rating,
		Colors:     colors,
		Sizes:      sizes,
	}, nil
}

func parseColors(raw string) ([]domain.Color, error) {
	if raw == "" {
		return nil, nil
	}
	var colors []domain.Color
	for _, part := range strings.Split(raw, "|") {
		fields := strings.Split(part, ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("malformed color %q", part)
		}
		colors = append(colors, domain.Color{ID: fields[0], Name: fields[1], Hex: fields[2]})
	}
	return colors, nil
}

func parseSizes(raw string) ([]domain.Size, error) {
	if raw == "" {
		return nil, nil
	}
	var sizes []domain.Size
	for _, part := range strings.Split(raw, "|") {
		fields := strings.Split(part, ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("malformed size %q", part)
		}
		available, err := strconv.ParseBool(fields[2])
		if err != nil {
			return nil, fmt.Errorf("malformed size %q: %w", part, err)
		}
		sizes = append(sizes, domain.Size{Value: fields[0], Name: fields[1], Available: available})
	}
	return sizes, nil
}
