package engine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagosx-dev/pagosx/internal/output"
	"github.com/pagosx-dev/pagosx/internal/reftab"
	"github.com/pagosx-dev/pagosx/internal/schema"
)

// memSink collects assembled records for inspection.
type memSink struct {
	records [][]string
}

func (m *memSink) WriteRecord(fields []string) error {
	rec := make([]string, len(fields))
	copy(rec, fields)
	m.records = append(m.records, rec)
	return nil
}

func newTestEngine() (*Engine, *memSink) {
	sink := &memSink{}
	return New(testConsts, reftab.Default(), sink), sink
}

func paymentRow(amount string) []string {
	return row(map[int]string{
		schema.ColCompany:   "1000",
		schema.ColDocType:   "DZ",
		schema.ColCurrency:  "MXN",
		schema.ColPayAmount: amount,
	})
}

func invoiceRow(amount, taxCode string) []string {
	return row(map[int]string{
		schema.ColCompany:   "1000",
		schema.ColDocType:   "RV",
		schema.ColCurrency:  "MXN",
		schema.ColPayAmount: amount,
		schema.ColTaxCode:   taxCode,
	})
}

func feed(t *testing.T, e *Engine, rows ...[]string) {
	t.Helper()
	for i, cells := range rows {
		require.NoError(t, e.Process(cells, i+1))
	}
	require.NoError(t, e.Close())
}

func TestEngine_SinglePaymentTwoInvoices(t *testing.T) {
	e, sink := newTestEngine()
	feed(t, e,
		paymentRow("1000"),
		invoiceRow("600", "A2"),
		invoiceRow("400", "A2"),
	)

	require.Len(t, sink.records, 3, "payment line followed by its invoices")

	pay := sink.records[0]
	// 1000 / 1.16 split across the two invoices still sums to the whole.
	assert.Equal(t, "862.068966", pay[schema.ColTotalBase16])
	assert.Equal(t, "137.931034", pay[schema.ColTotalTax16])
	assert.Equal(t, "1000", pay[schema.ColTotalPayments])
	assert.Equal(t, "", pay[schema.ColTotalWithheld])
	assert.Equal(t, "", pay[schema.ColTotalBase8])
	assert.Equal(t, "", pay[schema.ColTotalBase0])

	// The 16% block mirrors the totals and carries the first invoice's
	// tax-code metadata.
	start := schema.ColPay16TransferBase
	assert.Equal(t, "862.068966", pay[start+schema.OffBase])
	assert.Equal(t, "002", pay[start+schema.OffImpuesto])
	assert.Equal(t, "Tasa", pay[start+schema.OffFactorType])
	assert.Equal(t, "0.16", pay[start+schema.OffRate])
	assert.Equal(t, "137.931034", pay[start+schema.OffAmount])

	inv := sink.records[1]
	assert.Equal(t, "517.241379", inv[schema.ColInvTransferBase])
	assert.Equal(t, "82.758621", inv[schema.ColInvTransferAmount])
	assert.Equal(t, "002", inv[schema.ColInvTransferTax])
	assert.Equal(t, "02", inv[schema.ColInvTaxObject])

	c := e.Counts()
	assert.Equal(t, 1, c.Payments)
	assert.Equal(t, 2, c.Invoices)
	assert.Equal(t, 3, c.Lines)
}

func TestEngine_ForeignInvoiceConverted(t *testing.T) {
	e, sink := newTestEngine()
	usd := row(map[int]string{
		schema.ColCompany:      "1000",
		schema.ColDocType:      "RV",
		schema.ColCurrency:     "USD",
		schema.ColExchangeRate: "20",
		schema.ColPayAmount:    "100",
		schema.ColTaxCode:      "A2",
	})
	feed(t, e, paymentRow("5"), usd)

	pay := sink.records[0]
	// 100 USD at rate 20 converts by factor 1/20.
	assert.Equal(t, "4.310345", pay[schema.ColTotalBase16])
	assert.Equal(t, "0.689655", pay[schema.ColTotalTax16])
	assert.Equal(t, "5", pay[schema.ColTotalPayments])

	// The invoice line itself stays in invoice currency.
	inv := sink.records[1]
	assert.Equal(t, "86.206897", inv[schema.ColInvTransferBase])
}

func TestEngine_FirstSeenPerBucket(t *testing.T) {
	// AE withholds at 8%, A5 at 16%: each withholding tier takes its metadata
	// from the first invoice that hits it, independently of the transfer side.
	e, sink := newTestEngine()
	feed(t, e,
		paymentRow("2000"),
		invoiceRow("1000", "AE"),
		invoiceRow("1000", "A5"),
	)

	pay := sink.records[0]
	t16 := schema.ColPay16TransferBase
	assert.Equal(t, "002", pay[t16+schema.OffImpuesto])
	assert.Equal(t, "0.16", pay[t16+schema.OffRate])

	w16 := schema.ColPay16TransferBase + schema.OffWithhold
	assert.Equal(t, "002", pay[w16+schema.OffImpuesto])
	assert.Equal(t, "0.16", pay[w16+schema.OffRate])

	w08 := schema.ColPay8TransferBase + schema.OffWithhold
	assert.Equal(t, "002", pay[w08+schema.OffImpuesto])
	assert.Equal(t, "0.08", pay[w08+schema.OffRate])

	// Total withheld = 1000/1.08*0.08 + 1000*0.16.
	wantAE := dec("1000").Div(dec("1.08")).Mul(dec("0.08"))
	want := wantAE.Add(dec("160")).Round(outputDecimals).String()
	assert.Equal(t, want, pay[schema.ColTotalWithheld])
}

func TestEngine_UnlistedTaxCodeFallsToZeroTier(t *testing.T) {
	e, sink := newTestEngine()
	feed(t, e, paymentRow("250"), invoiceRow("250", "ZZ"))

	pay := sink.records[0]
	assert.Equal(t, "250", pay[schema.ColTotalBase0])
	assert.Equal(t, "", pay[schema.ColTotalTax0])
	assert.Equal(t, "", pay[schema.ColTotalBase16])
	assert.Equal(t, "250", pay[schema.ColTotalPayments])

	inv := sink.records[1]
	assert.Equal(t, "250", inv[schema.ColInvTransferBase])
	assert.Equal(t, "", inv[schema.ColInvTransferAmount])
}

func TestEngine_TitleRowEmitsCaptions(t *testing.T) {
	e, sink := newTestEngine()
	title := row(map[int]string{schema.ColDocType: "Document Type"})
	require.NoError(t, e.Process(title, 0))
	require.NoError(t, e.Close())

	require.Len(t, sink.records, 1)
	assert.Equal(t, schema.Captions[:], sink.records[0])
	assert.Equal(t, 1, e.Counts().Titles)
}

func TestEngine_TitleMidStreamLeavesGroupOpen(t *testing.T) {
	// A title record between invoices emits a header line right there; the
	// open group keeps accumulating across it.
	e, sink := newTestEngine()
	title := row(map[int]string{schema.ColDocType: "Document Type"})
	feed(t, e,
		paymentRow("1000"),
		invoiceRow("600", "A2"),
		title,
		invoiceRow("400", "A2"),
	)

	require.Len(t, sink.records, 4)
	assert.Equal(t, schema.Captions[:], sink.records[0], "header emitted before the group closes")

	pay := sink.records[1]
	assert.Equal(t, "862.068966", pay[schema.ColTotalBase16], "both invoices accumulated")
	assert.Equal(t, "1000", pay[schema.ColTotalPayments])

	c := e.Counts()
	assert.Equal(t, 1, c.Titles)
	assert.Equal(t, 2, c.Invoices)
	assert.Equal(t, 0, c.Skipped)
}

func TestEngine_InvoiceBeforePaymentSkipped(t *testing.T) {
	e, sink := newTestEngine()
	feed(t, e, invoiceRow("100", "A2"))

	assert.Empty(t, sink.records)
	c := e.Counts()
	assert.Equal(t, 1, c.Skipped)
	assert.Equal(t, 0, c.Invoices)
}

func TestEngine_SecondPaymentClosesFirstGroup(t *testing.T) {
	e, sink := newTestEngine()
	require.NoError(t, e.Process(paymentRow("100"), 1))
	require.NoError(t, e.Process(invoiceRow("100", "A2"), 2))
	assert.Empty(t, sink.records, "group stays open until the next payment")

	require.NoError(t, e.Process(paymentRow("200"), 3))
	require.Len(t, sink.records, 2, "first payment and its invoice flushed")

	require.NoError(t, e.Close())
	require.Len(t, sink.records, 3)

	// Each group's accumulators start from zero.
	assert.Equal(t, "86.206897", sink.records[0][schema.ColTotalBase16])
	assert.Equal(t, "", sink.records[2][schema.ColTotalBase16])
	assert.Equal(t, "", sink.records[2][schema.ColTotalPayments])
}

func TestEngine_UnclassifiedRowSkipped(t *testing.T) {
	e, sink := newTestEngine()
	feed(t, e, row(map[int]string{schema.ColDocType: "XX"}))

	assert.Empty(t, sink.records)
	assert.Equal(t, 1, e.Counts().Skipped)
}

func TestEngine_DeterministicOutput(t *testing.T) {
	rows := [][]string{
		row(map[int]string{schema.ColDocType: "Document Type"}),
		paymentRow("1000"),
		invoiceRow("600", "AE"),
		invoiceRow("400", "A5"),
		paymentRow("250"),
		invoiceRow("250", "ZZ"),
	}

	run := func() string {
		var buf bytes.Buffer
		w := output.NewWriter(&buf)
		e := New(testConsts, reftab.Default(), w)
		for i, cells := range rows {
			require.NoError(t, e.Process(cells, i))
		}
		require.NoError(t, e.Close())
		require.NoError(t, w.Flush())
		return buf.String()
	}

	first := run()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, run(), "same input produces byte-identical output")
}

func TestEngine_CloseWithNoOpenGroup(t *testing.T) {
	e, sink := newTestEngine()
	require.NoError(t, e.Close())
	assert.Empty(t, sink.records)
}
