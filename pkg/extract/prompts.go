package extract

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	domain "github.com/ipartes/quote-service/pkg/types"
)

// shippingAddress is the literal address block embedded in every outbound
// quotation email.
const shippingAddress = `SERVER X SYSTEMS
10451 NW 28th St, Suite F101
Doral, FL 33172, USA`

// emailSystemPrompt pins the exact shape of the quotation email the model
// must produce.
const emailSystemPrompt = `You are an assistant that creates professional quotation emails in English.
Follow this format exactly:

Hello Sales Team,

I hope this message finds you well.

I am reaching out to request a quote for the following items:

[QUANTITY] Unit(s) OF [MANUFACTURER] [MODEL/PARTNUMBER] [PRODUCT TYPE]

Quick Specifications:
[SPEC 1]: [VALUE]
[SPEC 2]: [VALUE]
[SPEC n]: [VALUE]

Please include pricing, lead time, and shipping

Shipping Address:
` + shippingAddress + `

Thank you in advance for your assistance. Please let me know if you need any additional information.`

// supplierSearchSystemPrompt constrains the distributor-search response to
// parseable Company / Email pairs.
const supplierSearchSystemPrompt = `You are a helpful assistant that provides lists of business email addresses.
Your task is to find real distributors or resellers for industrial equipment and provide their contact emails.
For each distributor, provide their email address in this format:
Company Name (Country)
Email: contact@example.com

Include at least 10 distributors from USA (priority) and Europe.
Focus on providing real, accurate business emails that would be used for quotation requests.
Do not include personal emails or general domains like gmail.com or hotmail.com.
Do not include phone numbers or addresses.
Do not include any explanatory text, just the list of distributors and their emails.`

const emailUserTmpl = `TRANSLATE TO ENGLISH AND CREATE AN EMAIL WITH QUICK SPECS OF
{{.Input}}

List the product as: "{{.Quantity}} UNIT(S) OF {{.Manufacturer}} {{.ProductModel}} {{.ProductType}}"`

const supplierSearchTmpl = `find at least 10 distributors/resellers in USA and Europe of

{{.Quantity}} Unit OF {{.Manufacturer}} {{.ProductModel}} {{.ProductType}}

Quick Specifications:
{{.Specs}}`

var (
	emailUserTemplate      = template.Must(template.New("email").Parse(emailUserTmpl))
	supplierSearchTemplate = template.Must(template.New("suppliers").Parse(supplierSearchTmpl))
)

// promptData holds the template variables for prompt rendering.
type promptData struct {
	Input        string
	Quantity     string
	Manufacturer string
	ProductModel string
	ProductType  domain.ProductType
	Specs        string
}

// RenderEmailPrompt builds the system and user prompts for the
// quotation-email completion call.
func RenderEmailPrompt(input string, req domain.ProductRequest) (system, user string, err error) {
	var buf bytes.Buffer
	data := promptData{
		Input:        input,
		Quantity:     req.Quantity,
		Manufacturer: req.Manufacturer,
		ProductModel: req.ProductModel,
		ProductType:  req.ProductType,
	}
	if err := emailUserTemplate.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("rendering email prompt: %w", err)
	}
	return emailSystemPrompt, buf.String(), nil
}

// RenderSupplierSearchPrompt builds the system and user prompts for the
// distributor-search completion call.
func RenderSupplierSearchPrompt(req domain.ProductRequest) (system, user string, err error) {
	var buf bytes.Buffer
	data := promptData{
		Quantity:     req.Quantity,
		Manufacturer: req.Manufacturer,
		ProductModel: req.ProductModel,
		ProductType:  req.ProductType,
		Specs:        strings.Join(req.Specifications, "\n"),
	}
	if err := supplierSearchTemplate.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("rendering supplier search prompt: %w", err)
	}
	return supplierSearchSystemPrompt, buf.String(), nil
}

// FallbackEmailBody composes the quotation email locally when the gateway
// is unavailable. Same fixed format the system prompt demands, filled from
// the extracted fields, so the caller still gets a usable draft.
func FallbackEmailBody(req domain.ProductRequest) string {
	var b strings.Builder

	b.WriteString("Hello Sales Team,\n\n")
	b.WriteString("I hope this message finds you well.\n\n")
	b.WriteString("I am reaching out to request a quote for the following items:\n\n")

	fmt.Fprintf(&b, "%s Unit(s) OF %s %s %s\n\n",
		req.Quantity, req.Manufacturer, req.ProductModel, req.ProductType)

	b.WriteString("Quick Specifications:\n")
	for _, spec := range req.Specifications {
		b.WriteString(spec)
		b.WriteByte('\n')
	}

	b.WriteString("\nPlease include pricing, lead time, and shipping\n\n")
	b.WriteString("Shipping Address:\n")
	b.WriteString(shippingAddress)
	b.WriteString("\n\nThank you in advance for your assistance. ")
	b.WriteString("Please let me know if you need any additional information.")

	return b.String()
}
