package report

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// wholeDollars formats USD without cents, the way the assessment screens do.
var wholeDollars = func() *money.Formatter {
	cur := money.GetCurrency(money.USD)
	return money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
}()

// Currency rounds v to the nearest dollar and formats it as USD.
// This is the only place where monetary values are rounded.
func Currency(v float64) string {
	return wholeDollars.Format(decimal.NewFromFloat(v).Round(0).IntPart())
}

// Cents formats v as USD with two decimals.
func Cents(v float64) string {
	cur := money.GetCurrency(money.USD)
	d := decimal.NewFromFloat(v).Round(int32(cur.Fraction))
	return cur.Formatter().Format(d.Shift(int32(cur.Fraction)).IntPart())
}

// Percent formats a percentage value with two decimals.
func Percent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}
