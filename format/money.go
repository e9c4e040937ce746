package format

import (
	"github.com/shopspring/decimal"
)

// Amount renders a penalty amount. The server sends amounts as strings
// ("5000", "5000.5"); anything that doesn't parse is shown as-is.
func Amount(raw string) string {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return raw
	}

	return d.StringFixed(0) + " RWF"
}

// SumAmounts totals a list of raw amounts, skipping unparseable ones.
func SumAmounts(raws []string) string {
	total := decimal.Zero
	for _, raw := range raws {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			continue
		}
		total = total.Add(d)
	}

	return total.StringFixed(0) + " RWF"
}
