package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type beerPayload struct {
	BeerName       string           `json:"beerName" validate:"required,max=100"`
	BeerStyle      string           `json:"beerStyle" validate:"required,beerstyle"`
	Upc            string           `json:"upc" validate:"required,number,min=12,max=13"`
	Price          *decimal.Decimal `json:"price" validate:"required,gte=0"`
	QuantityOnHand *int             `json:"quantityOnHand" validate:"omitempty,gte=0"`
}

func validPayload() beerPayload {
	price := decimal.NewFromInt(10)
	qty := 1000
	return beerPayload{
		BeerName:       "Test beer",
		BeerStyle:      "PALE_ALE",
		Upc:            "0631234200036",
		Price:          &price,
		QuantityOnHand: &qty,
	}
}

func TestCustomValidator_Validate(t *testing.T) {
	v := NewValidator()

	zero := decimal.Zero
	negative := decimal.NewFromFloat(-0.01)
	negativeQty := -1

	tests := []struct {
		name      string
		mutate    func(p *beerPayload)
		wantField string
	}{
		{name: "valid payload", mutate: func(p *beerPayload) {}},
		{name: "zero price is allowed", mutate: func(p *beerPayload) { p.Price = &zero }},
		{name: "quantity may be omitted", mutate: func(p *beerPayload) { p.QuantityOnHand = nil }},
		{name: "missing name", mutate: func(p *beerPayload) { p.BeerName = "" }, wantField: "beerName"},
		{name: "unknown style", mutate: func(p *beerPayload) { p.BeerStyle = "CIDER" }, wantField: "beerStyle"},
		{name: "non numeric upc", mutate: func(p *beerPayload) { p.Upc = "06312342000AB" }, wantField: "upc"},
		{name: "short upc", mutate: func(p *beerPayload) { p.Upc = "12345" }, wantField: "upc"},
		{name: "upc with plus sign", mutate: func(p *beerPayload) { p.Upc = "+12345678901" }, wantField: "upc"},
		{name: "upc with minus sign", mutate: func(p *beerPayload) { p.Upc = "-123456789012" }, wantField: "upc"},
		{name: "upc with decimal point", mutate: func(p *beerPayload) { p.Upc = "1234567890.1" }, wantField: "upc"},
		{name: "missing price", mutate: func(p *beerPayload) { p.Price = nil }, wantField: "price"},
		{name: "negative price", mutate: func(p *beerPayload) { p.Price = &negative }, wantField: "price"},
		{name: "negative quantity", mutate: func(p *beerPayload) { p.QuantityOnHand = &negativeQty }, wantField: "quantityOnHand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			tt.mutate(&p)

			err := v.Validate(&p)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, v.FormatValidationErrors(err), tt.wantField)
		})
	}
}

func TestCustomValidator_FormatValidationErrors(t *testing.T) {
	v := NewValidator()
	p := validPayload()
	p.BeerName = ""
	p.BeerStyle = "CIDER"

	errs := v.FormatValidationErrors(v.Validate(&p))

	assert.Equal(t, "beerName is required", errs["beerName"])
	assert.Equal(t, "beerStyle must be a known beer style", errs["beerStyle"])

	p = validPayload()
	p.Upc = "-123456789012"
	assert.Equal(t, "upc must contain only digits", v.FormatValidationErrors(v.Validate(&p))["upc"])
	assert.Empty(t, v.FormatValidationErrors(nil))
}
