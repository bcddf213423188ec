package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var money = accounting.Accounting{Symbol: "$", Precision: 2}

// Money renders a price for display, e.g. $1,299.50.
func Money(d decimal.Decimal) string {
	return money.FormatMoneyDecimal(d)
}
