package views

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Percent renders a [0,1] probability as a one-decimal percentage, e.g. 0.7 -> "70.0%".
// p*100 is rounded half away from zero on its exact binary value, so 0.6655 (66.549999...)
// gives "66.5%" and 0.0125 (exactly 1.25) gives "1.3%".
func Percent(p float64) string {
	exact := strconv.FormatFloat(p*100, 'f', 64, 64)
	return decimal.RequireFromString(exact).StringFixed(1) + "%"
}

// ModelTitle capitalizes a model name for headings ("xgboost" -> "Xgboost").
func ModelTitle(model string) string {
	return titleCaser.String(model)
}
