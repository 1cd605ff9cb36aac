package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestNormalizeConvertsLargeGramsToKilograms(t *testing.T) {
	cases := []struct {
		qty      string
		unit     string
		wantVal  string
		wantUnit string
	}{
		{"1000", "GM", "1.00", "KG"},
		{"1200", "gm", "1.20", "KG"},
		{"2500", "G", "2.50", "KG"},
		{"-1500", "G", "-1.50", "KG"},
		{"999.99", "GM", "999.99", "GM"},
		{"500", "GM", "500.00", "GM"},
	}
	for _, tc := range cases {
		got := Normalize(dec(tc.qty), tc.unit)
		if got.Value != tc.wantVal || got.Unit != tc.wantUnit {
			t.Fatalf("Normalize(%s %s): want %s %s, got %s %s",
				tc.qty, tc.unit, tc.wantVal, tc.wantUnit, got.Value, got.Unit)
		}
	}
}

func TestNormalizeConvertsLargeMillilitersToLiters(t *testing.T) {
	got := Normalize(dec("1300"), "ml")
	if got.Value != "1.30" || got.Unit != "L" {
		t.Fatalf("want 1.30 L, got %s %s", got.Value, got.Unit)
	}
	got = Normalize(dec("400"), "ML")
	if got.Value != "400.00" || got.Unit != "ML" {
		t.Fatalf("want 400.00 ML, got %s %s", got.Value, got.Unit)
	}
}

func TestNormalizeNilQuantity(t *testing.T) {
	got := Normalize(nil, " gm ")
	if got.Value != "0.00" || got.Unit != "GM" {
		t.Fatalf("want 0.00 GM, got %s %s", got.Value, got.Unit)
	}
}

func TestNormalizeDefaultsEmptyUnit(t *testing.T) {
	got := Normalize(dec("3"), "  ")
	if got.Value != "3.00" || got.Unit != "UNIT" {
		t.Fatalf("want 3.00 UNIT, got %s %s", got.Value, got.Unit)
	}
	got = Normalize(nil, "")
	if got.Value != "0.00" || got.Unit != "UNIT" {
		t.Fatalf("want 0.00 UNIT, got %s %s", got.Value, got.Unit)
	}
}

func TestNormalizePassesThroughOtherUnits(t *testing.T) {
	got := Normalize(dec("5000"), "pcs")
	if got.Value != "5000.00" || got.Unit != "PCS" {
		t.Fatalf("want 5000.00 PCS, got %s %s", got.Value, got.Unit)
	}
}
