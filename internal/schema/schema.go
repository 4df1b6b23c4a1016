// Package schema is the single source of truth for the 79-column enriched
// ledger layout: column positions, captions, and rendering classification.
//
// Positions 0-27 are the source columns shared by payment and invoice rows.
// Positions 28-78 are the enriched tax-breakdown columns computed per payment
// group and per invoice line.
package schema

// NumColumns is the width of an enriched output row.
const NumColumns = 79

// NumInputColumns is the width of a source row.
const NumInputColumns = 28

// Source columns (0-27).
const (
	ColCompany      = 0  // company code
	ColCustomer     = 1  // customer
	ColDocNumber    = 2  // document number
	ColDocType      = 3  // document type code
	ColPayDate      = 4  // payment date-time
	ColClearingDoc  = 5  // clearing document
	ColDocAmount    = 6  // amount in document currency
	ColCurrency     = 7  // document currency
	ColExchangeRate = 8  // effective exchange rate
	ColAssignment   = 9  // assignment
	ColPayMethod    = 10 // forma de pago
	ColInstallment  = 11 // no. de parcialidad
	ColPrevBalance  = 12 // importe saldo anterior
	ColPayAmount    = 13 // importe pago
	ColCurBalance   = 14 // importe saldo insoluto
	ColRelationType = 15 // tipo relacion
	ColCancelledDoc = 16 // cancelled payment document number
	ColOperationNum = 17 // num operacion
	ColBankRFCOrig  = 18 // RFC banco ordenante
	ColBankNameOrig = 19 // nombre banco ordenante
	ColAccountOrig  = 20 // cuenta ordenante
	ColBankRFCBenef = 21 // RFC banco beneficiario
	ColAccountBenef = 22 // cuenta beneficiario
	ColChainType    = 23 // tipo cadena pago
	ColPayCert      = 24 // certificado pago
	ColPayChain     = 25 // cadena pago
	ColPaySeal      = 26 // sello pago
	ColTaxCode      = 27 // tax code
)

// Payment totals, amounts in payment currency (28-35).
const (
	ColTotalWithheld = 28 // retenciones IVA
	ColTotalBase16   = 29 // traslados base IVA16
	ColTotalTax16    = 30 // traslados impuesto IVA16
	ColTotalBase8    = 31 // traslados base IVA8
	ColTotalTax8     = 32 // traslados impuesto IVA8
	ColTotalBase0    = 33 // traslados base IVA0
	ColTotalTax0     = 34 // traslados impuesto IVA0
	ColTotalPayments = 35 // monto total pagos
)

// Invoice (DR) columns, amounts in invoice currency (36-46).
const (
	ColInvTransferBase       = 36
	ColInvTransferTax        = 37 // impuesto code (alpha)
	ColInvTransferFactorType = 38 // tipo factor (alpha)
	ColInvTransferRate       = 39
	ColInvTransferAmount     = 40
	ColInvWithholdBase       = 41
	ColInvWithholdTax        = 42 // impuesto code (alpha)
	ColInvWithholdFactorType = 43 // tipo factor (alpha)
	ColInvWithholdRate       = 44
	ColInvWithholdAmount     = 45
	ColInvTaxObject          = 46 // objeto impuesto (alpha)
)

// Per-tier payment columns, amounts in payment currency (47-76). Each tier
// occupies ten columns: five transfer then five withholding, each block laid
// out base / impuesto / tipo factor / rate / amount.
const (
	ColPay16TransferBase = 47
	ColPay8TransferBase  = 57
	ColPay0TransferBase  = 67

	// Offsets within a tier block.
	OffTransfer   = 0
	OffWithhold   = 5
	OffBase       = 0
	OffImpuesto   = 1
	OffFactorType = 2
	OffRate       = 3
	OffAmount     = 4
)

// Difference columns (77-78).
const (
	ColDiffTotalPayments = 77
	ColDiffPayAmount     = 78
)

// Captions is the title row, one caption per output column.
var Captions = [NumColumns]string{
	"Company Code",
	"Customer",
	"Document Number",
	"Document Type",
	"Payment Date - Time",
	"Clearing Document",
	"Amount in Doc. Curr",
	"Document Currency",
	"Eff.exchange rate",
	"Assignment",
	"Forma de Pago",
	"No. de Parcialidad",
	"Importe Saldo Anterior",
	"Importe Pago",
	"Importe Saldo Insoluto",
	"Tipo Relacion (04)",
	"Pago Cancelado (Doc Number)",
	"Num Operacion",
	"RFC Banco Ordenente",
	"Nombre Banco Ordenante",
	"Cuenta Ordenante",
	"RFC Banco Beneficiario",
	"Cuenta Beneficiario",
	"Tipo Cadena Pago (01)",
	"Certificado Pago",
	"Cadena Pago",
	"Sello Pago",
	"Tax Code",
	"Retenciones IVA",
	"Traslados Base IVA16",
	"Traslados Impuesto IVA16",
	"Traslados Base IVA8",
	"Traslados Impuesto IVA8",
	"Traslados Base IVA0",
	"Traslados Impuesto IVA0",
	"Monto Total Pagos",
	"DR Traslado Base",
	"DR Traslado Impuesto",
	"DR Traslado TipoFactor",
	"DR Traslado TasaOCuota",
	"DR Traslado Importe",
	"DR Retencion Base",
	"DR Retencion Impuesto",
	"DR Retencion TipoFactor",
	"DR Retencion TasaOCuota",
	"DR Retencion Importe",
	"DR Objeto Impuesto",
	"P Traslado Base IVA16",
	"P Traslado Impuesto IVA16",
	"P Traslado TipoFactor IVA16",
	"P Traslado TasaOCuota IVA16",
	"P Traslado Importe IVA16",
	"P Retencion Base IVA16",
	"P Retencion Impuesto IVA16",
	"P Retencion TipoFactor IVA16",
	"P Retencion TasaOCuota IVA16",
	"P Retencion Importe IVA16",
	"P Traslado Base IVA8",
	"P Traslado Impuesto IVA8",
	"P Traslado TipoFactor IVA8",
	"P Traslado TasaOCuota IVA8",
	"P Traslado Importe IVA8",
	"P Retencion Base IVA8",
	"P Retencion Impuesto IVA8",
	"P Retencion TipoFactor IVA8",
	"P Retencion TasaOCuota IVA8",
	"P Retencion Importe IVA8",
	"P Traslado Base IVA0",
	"P Traslado Impuesto IVA0",
	"P Traslado TipoFactor IVA0",
	"P Traslado TasaOCuota IVA0",
	"P Traslado Importe IVA0",
	"P Retencion Base IVA0",
	"P Retencion Impuesto IVA0",
	"P Retencion TipoFactor IVA0",
	"P Retencion TasaOCuota IVA0",
	"P Retencion Importe IVA0",
	"Diff Monto Total Pagos",
	"Diff Importe Pago",
}

// amountCols are the source columns holding currency amounts (2-decimal
// rendering; parse failures default to zero).
var amountCols = map[int]bool{
	ColDocAmount:   true,
	ColPrevBalance: true,
	ColPayAmount:   true,
	ColCurBalance:  true,
}

// alphaCols are the enriched columns (28-78) that carry text rather than a
// number. Every other enriched column renders numerically with zero
// suppression.
var alphaCols = map[int]bool{
	ColInvTransferTax:        true,
	ColInvTransferFactorType: true,
	ColInvWithholdTax:        true,
	ColInvWithholdFactorType: true,
	ColInvTaxObject:          true,

	ColPay16TransferBase + OffTransfer + OffImpuesto:   true,
	ColPay16TransferBase + OffTransfer + OffFactorType: true,
	ColPay16TransferBase + OffWithhold + OffImpuesto:   true,
	ColPay16TransferBase + OffWithhold + OffFactorType: true,
	ColPay8TransferBase + OffTransfer + OffImpuesto:    true,
	ColPay8TransferBase + OffTransfer + OffFactorType:  true,
	ColPay8TransferBase + OffWithhold + OffImpuesto:    true,
	ColPay8TransferBase + OffWithhold + OffFactorType:  true,
	ColPay0TransferBase + OffTransfer + OffImpuesto:    true,
	ColPay0TransferBase + OffTransfer + OffFactorType:  true,
	ColPay0TransferBase + OffWithhold + OffImpuesto:    true,
	ColPay0TransferBase + OffWithhold + OffFactorType:  true,
}

// IsAmount reports whether a source column holds a currency amount.
func IsAmount(pos int) bool {
	return amountCols[pos]
}

// IsAlpha reports whether an enriched column renders as text.
func IsAlpha(pos int) bool {
	return alphaCols[pos]
}
