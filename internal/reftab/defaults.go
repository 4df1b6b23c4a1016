package reftab

import (
	"github.com/shopspring/decimal"

	"github.com/pagosx-dev/pagosx/internal/model"
)

// Default returns the built-in reference tables: a single wildcard company
// carrying the standard document-type classifications and tax codes.
func Default() *Service {
	return NewService([]model.Company{
		{
			Code:     model.WildcardCompany,
			Desc:     "ALL",
			DocTypes: defaultDocTypes(),
			TaxCodes: defaultTaxCodes(),
		},
	})
}

func defaultDocTypes() []model.DocType {
	return []model.DocType{
		{Code: "Document Type", Class: model.ClassTitle},
		{Code: "DZ", Class: model.ClassPayment},
		{Code: "PK", Class: model.ClassPayment},
		{Code: "RV", Class: model.ClassInvoice},
	}
}

func defaultTaxCodes() []model.TaxCode {
	entries := []struct {
		code  string
		trate float64
		wrate float64
	}{
		{"A0", 0.00, 0.00},
		{"A2", 0.16, 0.00},
		{"A5", 0.16, 0.16},
		{"AA", 0.08, 0.00},
		{"AB", 0.08, 0.08},
		{"AE", 0.16, 0.08},
		{"AF", 0.08, 0.03},
		{"B0", 0.00, 0.00},
		{"B2", 0.16, 0.00},
		{"B5", 0.16, 0.16},
		{"BA", 0.08, 0.00},
		{"BB", 0.08, 0.08},
		{"BE", 0.16, 0.08},
		{"BF", 0.08, 0.03},
		{"CG", 0.00, 0.00},
		{"CI", 0.16, 0.00},
		{"CF", 0.16, 0.00},
		{"V0", 0.00, 0.00},
		{"VA", 0.08, 0.00},
	}

	codes := make([]model.TaxCode, 0, len(entries))
	for _, e := range entries {
		codes = append(codes, model.TaxCode{
			Code:            e.code,
			TransferRate:    decimal.NewFromFloat(e.trate),
			WithholdingRate: decimal.NewFromFloat(e.wrate),
		})
	}
	return codes
}
