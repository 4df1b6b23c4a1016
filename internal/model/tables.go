package model

import "github.com/shopspring/decimal"

// WildcardCompany matches any company code in the reference tables.
const WildcardCompany = "*"

// TaxCode is one tax-code entry: the transferred and withheld tax rates that
// apply to invoices booked under the code.
type TaxCode struct {
	Code            string
	TransferRate    decimal.Decimal
	WithholdingRate decimal.Decimal
}

// DocType maps a raw document-type code to a classification.
type DocType struct {
	Code  string
	Class DocClass
}

// Company is one reference-table scope: the document-type and tax-code
// mini-tables for a company code. The wildcard code "*" supplies defaults for
// companies without their own entries.
type Company struct {
	Code     string
	Desc     string
	DocTypes []DocType
	TaxCodes []TaxCode
}
