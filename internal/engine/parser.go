package engine

import (
	"github.com/shopspring/decimal"

	"github.com/pagosx-dev/pagosx/internal/model"
	"github.com/pagosx-dev/pagosx/internal/schema"
)

// parseRow converts one raw worksheet row into a typed Line.
//
// Row 0 is the title row: every cell passes through as text with no numeric
// coercion. For later rows, amount columns parse to a decimal with a
// two-decimal text rendering (parse failure degrades to zero / "0.00"), the
// exchange-rate column follows its own defaulting rules, and everything else
// is verbatim text. Payment rows additionally blank the text rendering of
// zero balances.
func parseRow(cells []string, rowIndex int, class model.DocClass, baseCurrency string) *model.Line {
	l := model.NewLine()

	for pos := 0; pos < schema.NumInputColumns; pos++ {
		raw := cellAt(cells, pos)

		if rowIndex == 0 {
			l.Text[pos] = raw
			continue
		}

		switch {
		case schema.IsAmount(pos):
			v, err := decimal.NewFromString(raw)
			if err != nil {
				l.Text[pos] = "0.00"
				continue
			}
			l.Num[pos] = v
			l.Text[pos] = v.StringFixed(2)

		case pos == schema.ColExchangeRate:
			v, err := decimal.NewFromString(raw)
			if err == nil {
				l.Num[pos] = v
				l.Text[pos] = v.StringFixed(6)
			} else if raw == "" || raw == baseCurrency {
				l.Num[pos] = decimal.NewFromInt(1)
			}
			// A resolved rate of exactly zero never renders as "0".
			if l.Num[pos].IsZero() {
				l.Text[pos] = ""
			}

		default:
			l.Text[pos] = raw
		}
	}

	// Zero balances on a payment row display as blank; the stored numeric
	// value is unaffected.
	if class == model.ClassPayment {
		for _, pos := range []int{schema.ColPrevBalance, schema.ColPayAmount, schema.ColCurBalance} {
			if l.Num[pos].IsZero() {
				l.Text[pos] = ""
			}
		}
	}

	return l
}

// cellAt returns the cell at pos, or "" past the end of a short row (xlsx
// readers trim trailing empty cells).
func cellAt(cells []string, pos int) string {
	if pos < len(cells) {
		return cells[pos]
	}
	return ""
}
