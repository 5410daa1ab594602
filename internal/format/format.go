// Package format renders amounts for display the way Vietnamese shop owners
// read them: "." between thousands, no fraction digits for đồng.
package format

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const (
	groupedInteger = "#.###,"
	currencySymbol = "₫"
	// noBreakSpace keeps the amount and the symbol on one line, as vi-VN locales do.
	noBreakSpace = "\u00a0"
)

// Number renders n rounded to an integer with "." thousands separators.
func Number(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "0"
	}
	return humanize.FormatFloat(groupedInteger, n)
}

// Currency renders an amount in đồng, e.g. "1.234.567 ₫", with a no-break
// space before the symbol.
func Currency(amount float64) string {
	return Number(amount) + noBreakSpace + currencySymbol
}

// Percent renders a percentage value (65 for 65%) with one decimal.
func Percent(p float64) string {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		p = 0
	}
	return decimal.NewFromFloat(p).StringFixed(1) + "%"
}

// Ratio renders a fraction (0.65 for 65%) as a percentage with one decimal.
func Ratio(r float64) string {
	return Percent(r * 100)
}
