// Package engine implements the payment-invoice tax aggregation core: record
// classification, per-invoice tax computation in two currencies, rate-bucket
// accumulation scoped to the current payment group, and assembly of the
// enriched output rows.
//
// Processing is strictly sequential within a file: a payment group only
// closes when the next payment record (or the end of the stream) is seen.
package engine

import (
	"github.com/pagosx-dev/pagosx/internal/model"
	"github.com/pagosx-dev/pagosx/internal/reftab"
	"github.com/pagosx-dev/pagosx/internal/schema"
)

// Constants are the fixed fiscal values stamped into enriched columns.
type Constants struct {
	Impuesto       string
	TipoFactor     string
	ObjetoImpuesto string
	BaseCurrency   string
}

// Counts summarizes one engine run for caller logging.
type Counts struct {
	Rows     int // raw rows read
	Titles   int
	Payments int
	Invoices int
	Skipped  int // unclassified rows and invoices with no open group
	Lines    int // output records written
}

// Sink receives assembled output records.
type Sink interface {
	WriteRecord(fields []string) error
}

// Engine processes one file's rows in order and emits enriched records.
type Engine struct {
	consts Constants
	tables *reftab.Service
	out    Sink

	group  *paymentGroup // nil while no group is open
	counts Counts
}

// New creates an Engine writing to out.
func New(consts Constants, tables *reftab.Service, out Sink) *Engine {
	return &Engine{consts: consts, tables: tables, out: out}
}

// Process classifies and handles one raw row. rowIndex is the zero-based
// position within the file; row 0 is conventionally the title row.
func (e *Engine) Process(cells []string, rowIndex int) error {
	e.counts.Rows++

	company := cellAt(cells, schema.ColCompany)
	docType := cellAt(cells, schema.ColDocType)
	class, _ := e.tables.ResolveDocType(company, docType)

	switch class {
	case model.ClassTitle:
		e.counts.Titles++
		return e.writeRecord(schema.Captions[:])

	case model.ClassPayment:
		line := parseRow(cells, rowIndex, class, e.consts.BaseCurrency)
		if err := e.closeGroup(); err != nil {
			return err
		}
		e.group = newPaymentGroup(line, e.consts.BaseCurrency)
		e.counts.Payments++

	case model.ClassInvoice:
		if e.group == nil {
			// An invoice before any payment has no group to settle; tolerate
			// and count it like an unclassified row.
			e.counts.Skipped++
			return nil
		}
		line := parseRow(cells, rowIndex, class, e.consts.BaseCurrency)
		e.addInvoice(line)
		e.counts.Invoices++

	default:
		e.counts.Skipped++
	}
	return nil
}

// Close flushes the last open payment group. It must be called once at end of
// stream.
func (e *Engine) Close() error {
	return e.closeGroup()
}

// Counts returns the run counters.
func (e *Engine) Counts() Counts {
	return e.counts
}

// addInvoice runs tax computation for an invoice line against the open group,
// accumulates its buckets, captures first-seen metadata, and buffers the line.
func (e *Engine) addInvoice(line *model.Line) {
	tc, _ := e.tables.ResolveTaxCode(line.Text[schema.ColCompany], line.Text[schema.ColTaxCode])

	factor := conversionFactor(
		e.group.payment.Text[schema.ColCurrency],
		line.Text[schema.ColCurrency],
		e.consts.BaseCurrency,
		line.Num[schema.ColExchangeRate],
		e.group.factor,
	)

	r := computeTax(line, tc, factor, e.consts)
	e.group.accumulate(line, r)
	e.group.captureFirstSeen(line, r)
	e.group.invoices = append(e.group.invoices, line)
}

// closeGroup merges the open group's sums into its payment line, emits the
// payment followed by its buffered invoices in order, and discards the group.
func (e *Engine) closeGroup() error {
	if e.group == nil {
		return nil
	}

	e.group.merge()
	if err := e.writeRecord(assemble(e.group.payment)); err != nil {
		return err
	}
	for _, inv := range e.group.invoices {
		if err := e.writeRecord(assemble(inv)); err != nil {
			return err
		}
	}

	e.group = nil
	return nil
}

func (e *Engine) writeRecord(fields []string) error {
	if err := e.out.WriteRecord(fields); err != nil {
		return err
	}
	e.counts.Lines++
	return nil
}
