// Package domain defines the core business types for the quotation service.
package domain

import (
	"slices"
	"strings"
	"time"
)

// ProductType is the coarse classification shown in outbound quotation text.
type ProductType string

// Product type constants, in extraction precedence order.
const (
	TypeScanner      ProductType = "Scanner"
	TypeSensor       ProductType = "Sensor"
	TypeFlowSensor   ProductType = "Flow Sensor"
	TypeActuator     ProductType = "Actuator"
	TypeValve        ProductType = "Valve"
	TypeControlBoard ProductType = "Control Board"
	TypeIndustrial   ProductType = "Industrial Equipment"
)

// Category is the fallback-table key used to select distributor contacts.
// It is computed independently of ProductType because the two keyword sets
// differ in the source heuristics.
type Category string

// Category constants.
const (
	CategoryScanner Category = "scanner"
	CategorySensor  Category = "sensor"
	CategoryFlow    Category = "flow"
	CategoryValve   Category = "valve"
	CategoryGeneral Category = "general"
)

// ProductRequest holds the fields extracted from a free-text procurement
// request. It is built fresh per request and never persisted.
type ProductRequest struct {
	Quantity       string      `json:"quantity"`
	Manufacturer   string      `json:"manufacturer"`
	ProductModel   string      `json:"product_model"`
	ProductType    ProductType `json:"product_type"`
	Specifications []string    `json:"specifications"`
}

// Supplier is a registered manufacturer -> contact emails record.
// Emails keep insertion order; duplicates are suppressed at the
// application level. A supplier with no emails is deleted, never stored.
type Supplier struct {
	ID           string    `json:"id"            bson:"id"            db:"id"`
	Manufacturer string    `json:"manufacturer"  bson:"manufacturer"  db:"manufacturer"`
	Emails       []string  `json:"emails"        bson:"emails"        db:"emails"`
	CreatedAt    time.Time `json:"created_at"    bson:"created_at"    db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"    bson:"updated_at"    db:"updated_at"`
}

// HasEmail reports whether the supplier already lists the given email.
func (s *Supplier) HasEmail(email string) bool {
	return slices.Contains(s.Emails, email)
}

// MatchesManufacturer reports whether the supplier's manufacturer matches
// the given name: case-insensitive equality, or either string containing
// the other. This deliberately loose match mirrors how quotation requests
// reference brands ("EMERSON" vs "Emerson Automation").
func (s *Supplier) MatchesManufacturer(name string) bool {
	if name == "" {
		return false
	}
	a := strings.ToUpper(strings.TrimSpace(name))
	b := strings.ToUpper(strings.TrimSpace(s.Manufacturer))
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

// Distributor is one static fallback-table entry.
type Distributor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
