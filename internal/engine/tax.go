package engine

import (
	"github.com/shopspring/decimal"

	"github.com/pagosx-dev/pagosx/internal/model"
	"github.com/pagosx-dev/pagosx/internal/schema"
)

var one = decimal.NewFromInt(1)

// Rate tiers recognized for bucket accumulation.
var (
	rate16 = decimal.NewFromFloat(0.16)
	rate08 = decimal.NewFromFloat(0.08)
)

// tier identifies a rate bucket.
type tier int

const (
	tier16 tier = iota
	tier08
	tier00
	numTiers

	// tierNone marks a rate outside the recognized tiers. Such invoices are
	// computed and emitted but never accumulated into a bucket.
	tierNone tier = -1
)

// tierOf maps a rate to its bucket.
func tierOf(rate decimal.Decimal) tier {
	switch {
	case rate.Equal(rate16):
		return tier16
	case rate.Equal(rate08):
		return tier08
	case rate.IsZero():
		return tier00
	default:
		return tierNone
	}
}

// tierStart returns the first column of a tier's ten-column payment block.
func tierStart(t tier) int {
	switch t {
	case tier16:
		return schema.ColPay16TransferBase
	case tier08:
		return schema.ColPay8TransferBase
	default:
		return schema.ColPay0TransferBase
	}
}

// amountPair carries one amount in invoice currency and payment currency.
type amountPair struct {
	inv decimal.Decimal
	pay decimal.Decimal
}

func (a *amountPair) add(inv, pay decimal.Decimal) {
	a.inv = a.inv.Add(inv)
	a.pay = a.pay.Add(pay)
}

// taxResult is the outcome of computing one invoice line: the factor used,
// the base and amounts in both currencies, and the applied rates.
type taxResult struct {
	factor decimal.Decimal

	transferRate   decimal.Decimal
	transferBase   amountPair
	transferAmount amountPair

	withholdRate   decimal.Decimal
	withholdBase   amountPair
	withholdAmount amountPair
}

// conversionFactor resolves the invoice-currency to payment-currency
// multiplier. When the payment is in the base currency, a base-currency
// invoice needs no conversion and a foreign invoice converts by the inverse of
// its own exchange rate; otherwise the payment's stored factor applies. A zero
// invoice rate degrades to 1 rather than dividing by zero.
func conversionFactor(payCurrency, invCurrency, baseCurrency string, invRate, paymentFactor decimal.Decimal) decimal.Decimal {
	if payCurrency != baseCurrency {
		return paymentFactor
	}
	if invCurrency == baseCurrency {
		return one
	}
	if invRate.IsZero() {
		return one
	}
	return one.Div(invRate)
}

// computeTax fills the enriched invoice columns of line and returns the
// computed amounts for bucket accumulation.
//
// The transferred base is amount / (1 + transferRate - withholdingRate); the
// withheld tax reuses that same base. All payment-currency values convert by
// the single factor. A zero withholding rate clears every withholding column.
func computeTax(line *model.Line, tc model.TaxCode, factor decimal.Decimal, consts Constants) taxResult {
	amount := line.Num[schema.ColPayAmount]

	div := one.Add(tc.TransferRate).Sub(tc.WithholdingRate)
	base := amount
	if !div.IsZero() {
		base = amount.Div(div)
	}
	transferAmt := base.Mul(tc.TransferRate)

	r := taxResult{
		factor:         factor,
		transferRate:   tc.TransferRate,
		transferBase:   amountPair{inv: base, pay: base.Mul(factor)},
		transferAmount: amountPair{inv: transferAmt, pay: transferAmt.Mul(factor)},
		withholdRate:   tc.WithholdingRate,
	}

	line.Text[schema.ColInvTaxObject] = consts.ObjetoImpuesto
	line.Num[schema.ColInvTransferBase] = r.transferBase.inv
	line.Text[schema.ColInvTransferTax] = consts.Impuesto
	line.Text[schema.ColInvTransferFactorType] = consts.TipoFactor
	line.Num[schema.ColInvTransferRate] = tc.TransferRate
	line.Num[schema.ColInvTransferAmount] = r.transferAmount.inv

	if !tc.WithholdingRate.IsZero() {
		withholdAmt := base.Mul(tc.WithholdingRate)
		r.withholdBase = amountPair{inv: base, pay: base.Mul(factor)}
		r.withholdAmount = amountPair{inv: withholdAmt, pay: withholdAmt.Mul(factor)}

		line.Num[schema.ColInvWithholdBase] = base
		line.Text[schema.ColInvWithholdTax] = consts.Impuesto
		line.Text[schema.ColInvWithholdFactorType] = consts.TipoFactor
		line.Num[schema.ColInvWithholdRate] = tc.WithholdingRate
		line.Num[schema.ColInvWithholdAmount] = withholdAmt
	}

	return r
}
