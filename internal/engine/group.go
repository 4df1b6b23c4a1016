package engine

import (
	"github.com/shopspring/decimal"

	"github.com/pagosx-dev/pagosx/internal/model"
	"github.com/pagosx-dev/pagosx/internal/schema"
)

// taxKind distinguishes the transferred and withheld sides of a tier.
type taxKind int

const (
	kindTransfer taxKind = iota
	kindWithhold
	numKinds
)

// groupSums are the rate-bucket accumulators for one payment group, each in
// both currencies.
type groupSums struct {
	transferBase   [numTiers]amountPair
	transferAmount [numTiers]amountPair
	withholdBase   [numTiers]amountPair
	withholdAmount [numTiers]amountPair
	totalPayments  amountPair
}

// paymentGroup is the unit of aggregation: one payment record plus the
// invoices it settles. A fresh value is constructed per payment record and
// discarded on close, so no accumulator state can leak between groups.
type paymentGroup struct {
	payment *model.Line
	// factor converts payment-currency amounts to the base currency: 1 when
	// the payment is already in the base currency, else the payment's own
	// exchange rate.
	factor decimal.Decimal
	sums   groupSums
	// invoices buffers fully computed invoice lines in arrival order; they are
	// emitted after the payment line when the group closes.
	invoices []*model.Line
	// firstSeen tracks, per kind and tier, whether the representative
	// tax-code metadata for that bucket still needs to be captured onto the
	// payment line.
	firstSeen [numKinds][numTiers]bool
}

// newPaymentGroup opens a group for a parsed payment line.
func newPaymentGroup(payment *model.Line, baseCurrency string) *paymentGroup {
	factor := one
	if payment.Text[schema.ColCurrency] != baseCurrency {
		factor = payment.Num[schema.ColExchangeRate]
	}

	g := &paymentGroup{payment: payment, factor: factor}
	for k := taxKind(0); k < numKinds; k++ {
		for t := tier(0); t < numTiers; t++ {
			g.firstSeen[k][t] = true
		}
	}
	return g
}

// accumulate folds one computed invoice into the group's buckets.
//
// The total-of-payments accumulator always grows by the raw invoice amount.
// Transferred amounts route to the 16/8/0 bucket matching the transfer rate;
// withheld amounts route by the withholding rate, but only the 16% and 8%
// withholding buckets accumulate. Rates outside the recognized tiers are
// not bucketed at all.
func (g *paymentGroup) accumulate(line *model.Line, r taxResult) {
	amount := line.Num[schema.ColPayAmount]
	g.sums.totalPayments.add(amount, amount.Mul(r.factor))

	if t := tierOf(r.transferRate); t != tierNone {
		g.sums.transferBase[t].add(r.transferBase.inv, r.transferBase.pay)
		g.sums.transferAmount[t].add(r.transferAmount.inv, r.transferAmount.pay)
	}

	if !r.withholdRate.IsZero() {
		if t := tierOf(r.withholdRate); t == tier16 || t == tier08 {
			g.sums.withholdBase[t].add(r.withholdBase.inv, r.withholdBase.pay)
			g.sums.withholdAmount[t].add(r.withholdAmount.inv, r.withholdAmount.pay)
		}
	}
}

// captureFirstSeen copies the representative tax-code metadata (impuesto,
// tipo factor, rate) from the first invoice hitting each bucket onto the
// payment line's per-tier columns, then clears the bucket's flag so later
// invoices cannot overwrite it.
func (g *paymentGroup) captureFirstSeen(line *model.Line, r taxResult) {
	if t := tierOf(r.transferRate); t != tierNone && g.firstSeen[kindTransfer][t] {
		start := tierStart(t) + schema.OffTransfer
		g.payment.Text[start+schema.OffImpuesto] = line.Text[schema.ColInvTransferTax]
		g.payment.Text[start+schema.OffFactorType] = line.Text[schema.ColInvTransferFactorType]
		g.payment.Num[start+schema.OffRate] = line.Num[schema.ColInvTransferRate]
		g.firstSeen[kindTransfer][t] = false
	}

	if t := tierOf(r.withholdRate); t != tierNone && g.firstSeen[kindWithhold][t] {
		start := tierStart(t) + schema.OffWithhold
		g.payment.Text[start+schema.OffImpuesto] = line.Text[schema.ColInvWithholdTax]
		g.payment.Text[start+schema.OffFactorType] = line.Text[schema.ColInvWithholdFactorType]
		g.payment.Num[start+schema.OffRate] = line.Num[schema.ColInvWithholdRate]
		g.firstSeen[kindWithhold][t] = false
	}
}

// merge writes the accumulated payment-currency sums into the payment line's
// totals and per-tier columns.
func (g *paymentGroup) merge() {
	p := g.payment
	s := &g.sums

	p.Num[schema.ColTotalWithheld] = s.withholdAmount[tier16].pay.
		Add(s.withholdAmount[tier08].pay).
		Add(s.withholdAmount[tier00].pay)
	p.Num[schema.ColTotalBase16] = s.transferBase[tier16].pay
	p.Num[schema.ColTotalTax16] = s.transferAmount[tier16].pay
	p.Num[schema.ColTotalBase8] = s.transferBase[tier08].pay
	p.Num[schema.ColTotalTax8] = s.transferAmount[tier08].pay
	p.Num[schema.ColTotalBase0] = s.transferBase[tier00].pay
	p.Num[schema.ColTotalTax0] = s.transferAmount[tier00].pay
	p.Num[schema.ColTotalPayments] = s.totalPayments.pay

	for t := tier(0); t < numTiers; t++ {
		start := tierStart(t)
		p.Num[start+schema.OffTransfer+schema.OffBase] = s.transferBase[t].pay
		p.Num[start+schema.OffTransfer+schema.OffAmount] = s.transferAmount[t].pay
		p.Num[start+schema.OffWithhold+schema.OffBase] = s.withholdBase[t].pay
		p.Num[start+schema.OffWithhold+schema.OffAmount] = s.withholdAmount[t].pay
	}
}
