package inventory

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultUnit is used when a stored unit is empty or missing.
const DefaultUnit = "UNIT"

var thousand = decimal.NewFromInt(1000)

// DisplayQuantity is a quantity ready for rendering: a 2-decimal value string
// and its (possibly converted) unit.
type DisplayQuantity struct {
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

// Normalize converts a raw stored quantity into a display-friendly one.
// Grams become kilograms and milliliters become liters once the magnitude
// reaches 1000; everything else passes through with its unit trimmed and
// upper-cased. A nil quantity renders as "0.00". Never fails.
func Normalize(quantity *decimal.Decimal, unit string) DisplayQuantity {
	u := strings.ToUpper(strings.TrimSpace(unit))
	if u == "" {
		u = DefaultUnit
	}
	if quantity == nil {
		return DisplayQuantity{Value: "0.00", Unit: u}
	}
	q := *quantity
	switch u {
	case "GM", "G":
		if q.Abs().GreaterThanOrEqual(thousand) {
			return DisplayQuantity{Value: q.Div(thousand).StringFixed(2), Unit: "KG"}
		}
	case "ML":
		if q.Abs().GreaterThanOrEqual(thousand) {
			return DisplayQuantity{Value: q.Div(thousand).StringFixed(2), Unit: "L"}
		}
	}
	return DisplayQuantity{Value: q.StringFixed(2), Unit: u}
}
