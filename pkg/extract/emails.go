package extract

import (
	"regexp"
	"slices"
	"strings"
)

// emailRegex is the RFC-loose address pattern applied to gateway responses.
var emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// placeholderEmail is the address the LLM sometimes echoes back from its own
// formatting instructions. When a response consists of exactly two addresses
// including this one, the response is treated as unusable. A known heuristic
// quirk carried over deliberately; do not generalize.
const placeholderEmail = "sales@company.com"

// ParseEmails scans raw response text for email addresses, returning them
// deduplicated in first-seen order.
func ParseEmails(content string) []string {
	var out []string
	for _, addr := range emailRegex.FindAllString(content, -1) {
		if !slices.Contains(out, addr) {
			out = append(out, addr)
		}
	}
	return out
}

// UsableEmails reports whether an extracted list is worth returning, i.e.
// the table fallback should NOT be used.
func UsableEmails(emails []string) bool {
	if len(emails) == 0 {
		return false
	}
	if len(emails) == 2 && slices.Contains(emails, placeholderEmail) {
		return false
	}
	return true
}

// maxFallbackEmails caps the fallback list so a quotation isn't blasted to
// every distributor in the tables.
const maxFallbackEmails = 10

// minPreferredEmails is the threshold under which general-category contacts
// are appended to the fallback list.
const minPreferredEmails = 5

// FallbackEmails resolves distributor contacts from the static tables.
// Deterministic, side-effect-free, and never calls the gateway: candidates
// are manufacturer-specific contacts first, then the category list, then
// general distributors if the list is still short. Deduplicated in
// first-occurrence order and capped at maxFallbackEmails.
func FallbackEmails(input, manufacturer string) []string {
	upper := strings.ToUpper(input)
	category := ResolveCategory(input)

	var candidates []string
	if key := manufacturerKey(manufacturer, upper); key != "" {
		for _, d := range manufacturerDistributors[key] {
			candidates = append(candidates, d.Email)
		}
	}
	for _, d := range categoryDistributors[category] {
		candidates = append(candidates, d.Email)
	}
	if len(candidates) < minPreferredEmails {
		for _, d := range categoryDistributors["general"] {
			candidates = append(candidates, d.Email)
		}
	}

	var out []string
	for _, addr := range candidates {
		if !slices.Contains(out, addr) {
			out = append(out, addr)
		}
		if len(out) == maxFallbackEmails {
			break
		}
	}
	return out
}
