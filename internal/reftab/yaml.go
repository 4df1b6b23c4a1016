package reftab

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/pagosx-dev/pagosx/internal/model"
)

// File-format mirror of the model types. Rates are plain floats in YAML and
// converted to decimals on load.
type tablesDoc struct {
	Companies []companyDoc `yaml:"companies"`
}

type companyDoc struct {
	Code     string       `yaml:"code"`
	Desc     string       `yaml:"desc,omitempty"`
	DocTypes []docTypeDoc `yaml:"doc_types"`
	TaxCodes []taxCodeDoc `yaml:"tax_codes"`
}

type docTypeDoc struct {
	Code  string `yaml:"code"`
	Class string `yaml:"class"`
}

type taxCodeDoc struct {
	Code            string  `yaml:"code"`
	TransferRate    float64 `yaml:"transfer_rate"`
	WithholdingRate float64 `yaml:"withholding_rate"`
}

// Load reads a reference-tables YAML file and returns a Service.
func Load(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference tables: %w", err)
	}
	var doc tablesDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing reference tables: %w", err)
	}

	companies := make([]model.Company, 0, len(doc.Companies))
	for _, cd := range doc.Companies {
		cc := model.Company{Code: cd.Code, Desc: cd.Desc}
		for _, dt := range cd.DocTypes {
			cc.DocTypes = append(cc.DocTypes, model.DocType{
				Code:  dt.Code,
				Class: model.DocClass(dt.Class),
			})
		}
		for _, tc := range cd.TaxCodes {
			cc.TaxCodes = append(cc.TaxCodes, model.TaxCode{
				Code:            tc.Code,
				TransferRate:    decimal.NewFromFloat(tc.TransferRate),
				WithholdingRate: decimal.NewFromFloat(tc.WithholdingRate),
			})
		}
		companies = append(companies, cc)
	}
	return NewService(companies), nil
}

// Save writes the service's tables to a YAML file.
func Save(path string, s *Service) error {
	doc := tablesDoc{}
	for _, cc := range s.Companies() {
		cd := companyDoc{Code: cc.Code, Desc: cc.Desc}
		for _, dt := range cc.DocTypes {
			cd.DocTypes = append(cd.DocTypes, docTypeDoc{
				Code:  dt.Code,
				Class: string(dt.Class),
			})
		}
		for _, tc := range cc.TaxCodes {
			cd.TaxCodes = append(cd.TaxCodes, taxCodeDoc{
				Code:            tc.Code,
				TransferRate:    tc.TransferRate.InexactFloat64(),
				WithholdingRate: tc.WithholdingRate.InexactFloat64(),
			})
		}
		doc.Companies = append(doc.Companies, cd)
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("marshaling reference tables: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing reference tables: %w", err)
	}
	return nil
}
