package extract_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipartes/quote-service/pkg/extract"
	domain "github.com/ipartes/quote-service/pkg/types"
)

func sampleRequest() domain.ProductRequest {
	return domain.ProductRequest{
		Quantity:     "3",
		Manufacturer: "EMERSON",
		ProductModel: "1151",
		ProductType:  domain.TypeFlowSensor,
		Specifications: []string{
			`Process connection: flange 6"`,
			"Output: Digital",
		},
	}
}

func TestRenderEmailPrompt(t *testing.T) {
	t.Parallel()

	input := `EMERSON 1151 ; conexão ao processo: flange 6" ; 3 unidades`
	system, user, err := extract.RenderEmailPrompt(input, sampleRequest())
	require.NoError(t, err)

	assert.Contains(t, system, "Hello Sales Team,")
	assert.Contains(t, system, "Shipping Address:")
	assert.Contains(t, system, "SERVER X SYSTEMS")

	assert.True(t, strings.HasPrefix(user, "TRANSLATE TO ENGLISH AND CREATE AN EMAIL WITH QUICK SPECS OF"))
	assert.Contains(t, user, input)
	assert.Contains(t, user, `"3 UNIT(S) OF EMERSON 1151 `+string(domain.TypeFlowSensor)+`"`)
}

func TestRenderSupplierSearchPrompt(t *testing.T) {
	t.Parallel()

	system, user, err := extract.RenderSupplierSearchPrompt(sampleRequest())
	require.NoError(t, err)

	assert.Contains(t, system, "Company Name (Country)")
	assert.Contains(t, system, "Email:")

	assert.Contains(t, user, "find at least 10 distributors/resellers in USA and Europe")
	assert.Contains(t, user, "3 Unit OF EMERSON 1151 "+string(domain.TypeFlowSensor))
	assert.Contains(t, user, `Process connection: flange 6"`)
	assert.Contains(t, user, "Output: Digital")
}

func TestFallbackEmailBody(t *testing.T) {
	t.Parallel()

	body := extract.FallbackEmailBody(sampleRequest())

	assert.True(t, strings.HasPrefix(body, "Hello Sales Team,"))
	assert.Contains(t, body, "3 Unit(s) OF EMERSON 1151 "+string(domain.TypeFlowSensor))
	assert.Contains(t, body, "Quick Specifications:")
	assert.Contains(t, body, `Process connection: flange 6"`)
	assert.Contains(t, body, "Shipping Address:")
	assert.Contains(t, body, "Doral, FL 33172, USA")
	assert.Contains(t, body, "pricing, lead time, and shipping")
}
