package domain

import "testing"

func TestParsePriceCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"$200.20", 20020},
		{"$1,200.20", 120020},
		{"200.2", 20020},
		{"$99", 9900},
		{" $0.05 ", 5},
	}
	for _, tc := range cases {
		got, err := ParsePriceCents(tc.in)
		if err != nil {
			t.Fatalf("ParsePriceCents(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParsePriceCents(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParsePriceCents_Invalid(t *testing.T) {
	for _, in := range []string{"", "$", "abc", "$12a.00"} {
		if _, err := ParsePriceCents(in); err == nil {
			t.Fatalf("ParsePriceCents(%q): expected error", in)
		}
	}
}

func TestFormatPriceCents(t *testing.T) {
	if got := FormatPriceCents(20020); got != "$200.20" {
		t.Fatalf("FormatPriceCents(20020) = %q", got)
	}
	if got := FormatPriceCents(5); got != "$0.05" {
		t.Fatalf("FormatPriceCents(5) = %q", got)
	}
	if got := FormatPriceCents(-150); got != "-$1.50" {
		t.Fatalf("FormatPriceCents(-150) = %q", got)
	}
}

func TestCartLineKeyAndTotal(t *testing.T) {
	line := CartLine{ProductID: "p1", SelectedColor: "red", SelectedSize: "9", PriceCents: 20020, Quantity: 3}
	key := line.Key()
	if key.ProductID != "p1" || key.SelectedColor != "red" || key.SelectedSize != "9" {
		t.Fatalf("unexpected key %+v", key)
	}
	if line.TotalCents() != 60060 {
		t.Fatalf("TotalCents = %d, want 60060", line.TotalCents())
	}
}
