// Package reftab provides the company-scoped reference tables: document-type
// classification and tax-code rates, with a wildcard company fallback.
package reftab

import (
	"github.com/pagosx-dev/pagosx/internal/model"
)

// Resolution tags a lookup result so callers can tell a real match from the
// designed silent default.
type Resolution int

const (
	// Resolved means a table entry matched the requested code.
	Resolved Resolution = iota
	// Defaulted means no entry matched and the zero-value default applies.
	Defaulted
)

// Service provides lookup over the loaded reference tables.
type Service struct {
	companies []model.Company
}

// NewService creates a Service from a slice of company tables.
func NewService(companies []model.Company) *Service {
	return &Service{companies: companies}
}

// Companies returns all company tables.
func (s *Service) Companies() []model.Company {
	return s.companies
}

// ResolveDocType classifies a (company, document type code) pair. A wildcard
// company entry serves as the candidate; an exact company entry overrides it
// and stops the scan. A miss yields ClassUnclassified, Defaulted.
func (s *Service) ResolveDocType(company, code string) (model.DocClass, Resolution) {
	class := model.ClassUnclassified
	res := Defaulted
	for _, cc := range s.companies {
		if cc.Code == model.WildcardCompany {
			for _, dt := range cc.DocTypes {
				if dt.Code == code {
					class = dt.Class
					res = Resolved
					break
				}
			}
		}
		if cc.Code == company {
			if dt, ok := findDocType(cc.DocTypes, code); ok {
				return dt.Class, Resolved
			}
		}
	}
	return class, res
}

// ResolveTaxCode looks up the rate pair for a (company, tax code) pair with
// the same wildcard-then-override scan as ResolveDocType. A miss yields a
// zero-rate entry, Defaulted — tax computation degrades silently rather than
// failing the run.
func (s *Service) ResolveTaxCode(company, code string) (model.TaxCode, Resolution) {
	var entry model.TaxCode
	res := Defaulted
	for _, cc := range s.companies {
		if cc.Code == model.WildcardCompany {
			for _, tc := range cc.TaxCodes {
				if tc.Code == code {
					entry = tc
					res = Resolved
					break
				}
			}
		}
		if cc.Code == company {
			if tc, ok := findTaxCode(cc.TaxCodes, code); ok {
				return tc, Resolved
			}
		}
	}
	return entry, res
}

func findDocType(entries []model.DocType, code string) (model.DocType, bool) {
	for _, dt := range entries {
		if dt.Code == code {
			return dt, true
		}
	}
	return model.DocType{}, false
}

func findTaxCode(entries []model.TaxCode, code string) (model.TaxCode, bool) {
	for _, tc := range entries {
		if tc.Code == code {
			return tc, true
		}
	}
	return model.TaxCode{}, false
}
