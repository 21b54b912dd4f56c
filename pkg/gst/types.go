package gst

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formgen-gst/pkg/bootconfig"
	"github.com/goliatone/go-formgen-gst/pkg/view"
)

// PartyType identifies which kind of business entity a GSTIN belongs to.
type PartyType string

const (
	PartyCustomer PartyType = "Customer"
	PartySupplier PartyType = "Supplier"
	PartyCompany  PartyType = "Company"
)

// ParsePartyType accepts the canonical names case-insensitively. A blank
// input selects PartyCompany.
func ParsePartyType(raw string) (PartyType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return PartyCompany, nil
	case "customer":
		return PartyCustomer, nil
	case "supplier":
		return PartySupplier, nil
	case "company":
		return PartyCompany, nil
	}
	return "", fmt.Errorf("gst: unknown party type %q", raw)
}

// GSTINListQuery names the server query that lists GSTINs for a party.
const GSTINListQuery = "get_gstin_list"

// QueryParams are the arguments passed to GSTINListQuery.
type QueryParams struct {
	Party     string    `json:"party"`
	PartyType PartyType `json:"party_type"`
}

// QuerySpec is the descriptor handed to the host autocomplete dispatcher.
type QuerySpec struct {
	Query  string      `json:"query"`
	Params QueryParams `json:"params"`
}

// Settings is the GST settings snapshot used by the API checks.
type Settings = bootconfig.Settings

const (
	FieldCountry = "country"
	FieldState   = "state"
	CountryIndia = "India"
)

// ErrFieldNotFound is wrapped by every error reporting a field that the form
// does not define.
var ErrFieldNotFound = errors.New("gst: field not found")

// Form is the subset of a host form the helpers need.
type Form interface {
	Field(name string) (FieldHandle, bool)
}

// FieldHandle exposes a single rendered field.
type FieldHandle interface {
	Value() string
	SetOptions(values []string)
	AppendDecoration(el view.Element)
}

func fieldNotFound(name string) error {
	return fmt.Errorf("%w: %q", ErrFieldNotFound, name)
}
