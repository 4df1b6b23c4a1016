package reftab

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagosx-dev/pagosx/internal/model"
)

func testService() *Service {
	return NewService([]model.Company{
		{
			Code: model.WildcardCompany,
			Desc: "ALL",
			DocTypes: []model.DocType{
				{Code: "DZ", Class: model.ClassPayment},
				{Code: "RV", Class: model.ClassInvoice},
			},
			TaxCodes: []model.TaxCode{
				{Code: "A2", TransferRate: decimal.NewFromFloat(0.16)},
				{Code: "AB", TransferRate: decimal.NewFromFloat(0.08), WithholdingRate: decimal.NewFromFloat(0.08)},
			},
		},
		{
			Code: "1000",
			DocTypes: []model.DocType{
				{Code: "RV", Class: model.ClassPayment}, // deliberately overrides the wildcard
			},
			TaxCodes: []model.TaxCode{
				{Code: "A2", TransferRate: decimal.NewFromFloat(0.08)},
			},
		},
	})
}

func TestResolveDocType_Wildcard(t *testing.T) {
	s := testService()

	class, res := s.ResolveDocType("9999", "DZ")
	assert.Equal(t, model.ClassPayment, class)
	assert.Equal(t, Resolved, res)
}

func TestResolveDocType_CompanyOverridesWildcard(t *testing.T) {
	s := testService()

	// Company 1000 reclassifies RV; everyone else keeps the wildcard entry.
	class, res := s.ResolveDocType("1000", "RV")
	assert.Equal(t, model.ClassPayment, class)
	assert.Equal(t, Resolved, res)

	class, res = s.ResolveDocType("2000", "RV")
	assert.Equal(t, model.ClassInvoice, class)
	assert.Equal(t, Resolved, res)
}

func TestResolveDocType_MissDefaultsToUnclassified(t *testing.T) {
	s := testService()

	class, res := s.ResolveDocType("1000", "XX")
	assert.Equal(t, model.ClassUnclassified, class)
	assert.Equal(t, Defaulted, res)
}

func TestResolveTaxCode_Wildcard(t *testing.T) {
	s := testService()

	tc, res := s.ResolveTaxCode("9999", "AB")
	assert.Equal(t, Resolved, res)
	assert.True(t, tc.TransferRate.Equal(decimal.NewFromFloat(0.08)))
	assert.True(t, tc.WithholdingRate.Equal(decimal.NewFromFloat(0.08)))
}

func TestResolveTaxCode_CompanyOverridesWildcard(t *testing.T) {
	s := testService()

	tc, res := s.ResolveTaxCode("1000", "A2")
	assert.Equal(t, Resolved, res)
	assert.True(t, tc.TransferRate.Equal(decimal.NewFromFloat(0.08)), "company entry wins over wildcard")
}

func TestResolveTaxCode_MissDefaultsToZeroRates(t *testing.T) {
	s := testService()

	tc, res := s.ResolveTaxCode("1000", "ZZ")
	assert.Equal(t, Defaulted, res)
	assert.True(t, tc.TransferRate.IsZero())
	assert.True(t, tc.WithholdingRate.IsZero())
}

func TestDefault_BuiltInTables(t *testing.T) {
	s := Default()

	class, res := s.ResolveDocType("any", "DZ")
	assert.Equal(t, model.ClassPayment, class)
	assert.Equal(t, Resolved, res)

	class, _ = s.ResolveDocType("any", "PK")
	assert.Equal(t, model.ClassPayment, class)

	class, _ = s.ResolveDocType("any", "RV")
	assert.Equal(t, model.ClassInvoice, class)

	class, _ = s.ResolveDocType("any", "Document Type")
	assert.Equal(t, model.ClassTitle, class)

	tc, res := s.ResolveTaxCode("any", "AE")
	assert.Equal(t, Resolved, res)
	assert.True(t, tc.TransferRate.Equal(decimal.NewFromFloat(0.16)))
	assert.True(t, tc.WithholdingRate.Equal(decimal.NewFromFloat(0.08)))
}

func TestLoadSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tables.yaml")

	require.NoError(t, Save(path, Default()))

	s, err := Load(path)
	require.NoError(t, err)

	tc, res := s.ResolveTaxCode("any", "A5")
	assert.Equal(t, Resolved, res)
	assert.True(t, tc.TransferRate.Equal(decimal.NewFromFloat(0.16)))
	assert.True(t, tc.WithholdingRate.Equal(decimal.NewFromFloat(0.16)))

	class, _ := s.ResolveDocType("any", "RV")
	assert.Equal(t, model.ClassInvoice, class)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading reference tables")
}
