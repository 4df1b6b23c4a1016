package engine

import (
	"github.com/pagosx-dev/pagosx/internal/model"
	"github.com/pagosx-dev/pagosx/internal/schema"
)

// outputDecimals bounds the rendered precision of computed amounts.
const outputDecimals = 6

// assemble renders a Line as its output fields. Source columns (0-27) emit
// their parsed text verbatim; enriched columns emit stored text when alpha,
// otherwise the stored number — except that an exact zero renders as an empty
// field.
func assemble(l *model.Line) []string {
	fields := make([]string, schema.NumColumns)
	for pos := range fields {
		switch {
		case pos < schema.NumInputColumns:
			fields[pos] = l.Text[pos]
		case schema.IsAlpha(pos):
			fields[pos] = l.Text[pos]
		default:
			if !l.Num[pos].IsZero() {
				fields[pos] = l.Num[pos].Round(outputDecimals).String()
			}
		}
	}
	return fields
}
