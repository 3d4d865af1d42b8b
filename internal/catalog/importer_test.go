package catalog

import (
	"strings"
	"testing"
)

const sampleCSV = `id,name,price,imgURL,category,rating,colors,sizes
nike-air-jordan-01,Nike Air Jordan-01,$200.20,/img/shoe4.svg,lifestyle,4.5,red:Red:#DC2626|black:Black:#1F2937,7:7:true|10:10:false
nike-pegasus-41,Nike Pegasus 41,$139.99,/img/shoe8.svg,running,,volt:Volt:#BEF264,9:9:true
,,,,,,,
`

func TestCSVImporter_Run(t *testing.T) {
	products, err := NewCSVImporter(strings.NewReader(sampleCSV)).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}

	p := products[0]
	if p.ID != "nike-air-jordan-01" || p.PriceCents != 20020 || p.Rating != 4.5 {
		t.Fatalf("unexpected product %+v", p)
	}
	if len(p.Colors) != 2 || p.Colors[1].Hex != "#1F2937" {
		t.Fatalf("unexpected colors %+v", p.Colors)
	}
	if len(p.Sizes) != 2 || p.Sizes[1].Available {
		t.Fatalf("unexpected sizes %+v", p.Sizes)
	}

	if products[1].Rating != 0 {
		t.Fatalf("missing rating should stay 0, got %v", products[1].Rating)
	}
}

func TestCSVImporter_RejectsBadRow(t *testing.T) {
	bad := "id,name,price\np1,Thing,not-a-price\n"
	if _, err := NewCSVImporter(strings.NewReader(bad)).Run(); err == nil {
		t.Fatalf("expected error for bad price")
	}

	dup := "id,name,price\np1,A,$1.00\np1,B,$2.00\n"
	if _, err := NewCSVImporter(strings.NewReader(dup)).Run(); err == nil {
		t.Fatalf("expected error for duplicate id")
	}

	badColor := "id,name,price,colors\np1,A,$1.00,red-Red\n"
	if _, err := NewCSVImporter(strings.NewReader(badColor)).Run(); err == nil {
		t.Fatalf("expected error for malformed color")
	}
}
