// Package extract turns free-text procurement requests into structured
// product requests and distributor email lists. The heuristics are
// rule-ordered and deterministic; every field has a default, so extraction
// never fails. Rule precedence is load-bearing; the fallback tables assume
// it, so resist the urge to reorder.
package extract

import (
	"regexp"
	"strings"

	domain "github.com/ipartes/quote-service/pkg/types"
)

// ManufacturerShining is the literal forced whenever the input mentions the
// EinScan product line, which the heuristics would otherwise misattribute.
const ManufacturerShining = "SHINING 3D"

var (
	quantityRegex   = regexp.MustCompile(`(?i)(\d+)\s*(?:unidades?|units?)`)
	fabricanteRegex = regexp.MustCompile(`(?i)fabricante:\s*([A-Za-z0-9\s]+?)(?:;|$)`)
	beforeModRegex  = regexp.MustCompile(`(?i)([A-Za-z]+)\s+(?:MOD\.|Tp:|modelo)`)
	modelRunRegex   = regexp.MustCompile(`\b[A-Z0-9][A-Z0-9-]*[A-Z0-9]\b`)
	tpModelRegex    = regexp.MustCompile(`[Tt][Pp]:\s*([A-Z0-9]+)`)
	tokenSplitRegex = regexp.MustCompile(`[;,\s]+`)
	digitsOnlyRegex = regexp.MustCompile(`^\d+$`)
	upperDigitRegex = regexp.MustCompile(`[A-Z0-9]`)
)

// productTypeRules map keyword sets to product type labels. First match in
// slice order wins; containment is tested on the lower-cased input.
var productTypeRules = []struct {
	keywords []string
	label    domain.ProductType
}{
	{[]string{"scanner", "leitor"}, domain.TypeScanner},
	{[]string{"sensor", "transmissor"}, domain.TypeSensor},
	{[]string{"vazão", "flow"}, domain.TypeFlowSensor},
	{[]string{"atuador"}, domain.TypeActuator},
	{[]string{"válvula", "valve"}, domain.TypeValve},
	{[]string{"placa"}, domain.TypeControlBoard},
}

// ParseProductRequest extracts a ProductRequest from raw free text.
// Pure function of the input and the static tables.
func ParseProductRequest(input string) domain.ProductRequest {
	upper := strings.ToUpper(input)

	manufacturer := extractManufacturer(input, upper)
	model := extractModel(input, upper, manufacturer)

	return domain.ProductRequest{
		Quantity:       extractQuantity(input),
		Manufacturer:   manufacturer,
		ProductModel:   model,
		ProductType:    extractProductType(input),
		Specifications: extractSpecifications(input),
	}
}

func extractQuantity(input string) string {
	if m := quantityRegex.FindStringSubmatch(input); m != nil {
		return m[1]
	}
	return "1"
}

func extractProductType(input string) domain.ProductType {
	lower := strings.ToLower(input)
	for _, rule := range productTypeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.label
			}
		}
	}
	return domain.TypeIndustrial
}

// extractManufacturer applies the manufacturer rules in precedence order:
// explicit "fabricante:" capture, known-name substring (longest wins), the
// word before a model marker, then the first capitalized token. The Shining
// 3D override trumps all of them.
func extractManufacturer(input, upper string) string {
	if strings.Contains(upper, "EINSCAN") || strings.Contains(upper, "SHINING") {
		return ManufacturerShining
	}

	if m := fabricanteRegex.FindStringSubmatch(input); m != nil {
		if name := strings.TrimSpace(m[1]); name != "" {
			return name
		}
	}

	if name := matchKnownManufacturer(upper); name != "" {
		return name
	}

	if m := beforeModRegex.FindStringSubmatch(input); m != nil {
		return strings.TrimSpace(m[1])
	}

	for _, tok := range tokenSplitRegex.Split(input, -1) {
		if len(tok) > 3 && tok[0] >= 'A' && tok[0] <= 'Z' && !digitsOnlyRegex.MatchString(tok) {
			return tok
		}
	}

	return ""
}

func matchKnownManufacturer(upper string) string {
	var best string
	for _, mfg := range knownManufacturers {
		if strings.Contains(upper, mfg) && len(mfg) > len(best) {
			best = mfg
		}
	}
	return best
}

// extractModel picks the product model string. Candidates are uppercase
// alphanumeric runs of at least four characters (hyphens allowed).
func extractModel(input, upper, manufacturer string) string {
	var candidates []string
	for _, run := range modelRunRegex.FindAllString(input, -1) {
		if len(run) >= 4 {
			candidates = append(candidates, run)
		}
	}

	if manufacturer == ManufacturerShining {
		if model := einscanModel(upper, candidates); model != "" {
			return model
		}
	}

	// Longest candidate wins; ties keep the first occurrence.
	var best string
	for _, c := range candidates {
		if len(c) > len(best) {
			best = c
		}
	}
	if best != "" {
		return best
	}

	if m := tpModelRegex.FindStringSubmatch(input); m != nil {
		return m[1]
	}

	// Last resort: synthesize from the first three tokens that look like
	// part-number material.
	var keywords []string
	for _, tok := range tokenSplitRegex.Split(input, -1) {
		if len(tok) > 3 && upperDigitRegex.MatchString(tok) {
			keywords = append(keywords, tok)
			if len(keywords) == 3 {
				break
			}
		}
	}
	return strings.Join(keywords, " ")
}

// einscanModel refines the model for the Shining 3D scanner family.
func einscanModel(upper string, candidates []string) string {
	if strings.Contains(upper, "EINSCAN PRO") {
		switch {
		case strings.Contains(upper, "HX"):
			return "EINSCAN PRO HX"
		case strings.Contains(upper, "HD"):
			return "EINSCAN PRO HD"
		default:
			return "EINSCAN PRO"
		}
	}
	if strings.Contains(upper, "EINSCAN") {
		for _, c := range candidates {
			if strings.Contains(c, "EINSCAN") {
				return c
			}
		}
		return "EINSCAN"
	}
	return ""
}

// specRules describe the six labeled specification fields. Marker
// containment is case-sensitive on the raw input, exactly as the upstream
// quotation sheets are written.
var specRules = []struct {
	marker       string
	label        string
	valuePattern *regexp.Regexp
	defaultValue string
}{
	{"conexão ao processo", "Process connection: ", regexp.MustCompile(`(?i)conexão ao processo:([^;]+)`), `Flange 4" 300 FR`},
	{"vazão máx", "Max. flow: ", regexp.MustCompile(`(?i)vazão máx\.?([^;]+)`), "272,160 kg/h"},
	{"saída", "Output: ", regexp.MustCompile(`(?i)saída:([^;]+)`), "Digital"},
	{"IP", "IP rating: ", regexp.MustCompile(`(?i)IP\s*(\d+)`), "67"},
	{"Grupo", "Group: ", regexp.MustCompile(`(?i)Grupo\s*([^;]+)`), "IIA"},
	{"Classe de temperatura", "Temperature class: ", regexp.MustCompile(`(?i)Classe de temperatura\s*([^;]+)`), "T2"},
}

// defaultSpecifications replace the whole list when no marker is present.
var defaultSpecifications = []string{
	`Process connection: Flange 4" 300 FR`,
	"Max. flow: 272,160 kg/h",
	"Output: Digital",
	"IP rating: IP 67",
	"Group: IIA",
	"Temperature class: T2",
}

func extractSpecifications(input string) []string {
	var specs []string
	for _, rule := range specRules {
		if !strings.Contains(input, rule.marker) {
			continue
		}
		value := rule.defaultValue
		if m := rule.valuePattern.FindStringSubmatch(input); m != nil {
			if v := strings.TrimSpace(m[1]); v != "" {
				value = v
			}
		}
		specs = append(specs, rule.label+value)
	}

	if len(specs) == 0 {
		return append([]string(nil), defaultSpecifications...)
	}
	return specs
}

// ResolveCategory maps the raw input to the coarse fallback-table category.
// Its keyword set intentionally differs from the product type rules.
func ResolveCategory(input string) domain.Category {
	upper := strings.ToUpper(input)

	switch {
	case containsAny(upper, "SCANNER", "SCAN", "LEITOR", "CÓDIGO DE BARRAS", "EINSCAN"):
		return domain.CategoryScanner
	case containsAny(upper, "SENSOR", "TRANSMISSOR", "MEDIDOR"):
		return domain.CategorySensor
	case containsAny(upper, "FLOW", "VAZÃO", "FLUXO"):
		return domain.CategoryFlow
	case containsAny(upper, "VÁLVULA", "VALVE", "ATUADOR", "ACTUATOR"):
		return domain.CategoryValve
	default:
		return domain.CategoryGeneral
	}
}

// manufacturerKey resolves the manufacturer-specific fallback table key.
// Returns "" when the manufacturer isn't one of the known exact-match keys.
func manufacturerKey(manufacturer, upperInput string) string {
	if manufacturer == "" {
		return ""
	}
	upperMfg := strings.ToUpper(manufacturer)

	switch {
	case strings.Contains(upperMfg, "EMERSON"):
		return "EMERSON"
	case strings.Contains(upperMfg, "ROTORK"):
		return "ROTORK"
	case strings.Contains(upperMfg, "SHINING"):
		return "SHINING"
	case strings.Contains(upperMfg, "EINSCAN") || strings.Contains(upperInput, "EINSCAN"):
		return "EINSCAN"
	default:
		return ""
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
