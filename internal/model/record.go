package model

import (
	"github.com/shopspring/decimal"

	"github.com/pagosx-dev/pagosx/internal/schema"
)

// DocClass classifies a ledger row by its document type.
type DocClass string

const (
	ClassTitle        DocClass = "TITLE"
	ClassPayment      DocClass = "PAYMT"
	ClassInvoice      DocClass = "INVOI"
	ClassUnclassified DocClass = ""
)

// Line is one ledger row in the enriched layout. Text and Num run parallel
// over the schema positions: source columns (0-27) are filled by the parser,
// enriched columns (28-78) by the tax engine. A numeric column's rendering
// lives in Num; an alpha column's in Text.
type Line struct {
	Text []string
	Num  []decimal.Decimal
}

// NewLine returns an empty Line sized to the output schema.
func NewLine() *Line {
	return &Line{
		Text: make([]string, schema.NumColumns),
		Num:  make([]decimal.Decimal, schema.NumColumns),
	}
}
