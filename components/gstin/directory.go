package gstin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formgen-gst/pkg/gst"
)

// Directory resolves the GSTINs registered for a party.
type Directory interface {
	GSTINs(ctx context.Context, party string, partyType gst.PartyType) ([]string, error)
}

// DirectoryFunc adapts a function to the Directory interface.
type DirectoryFunc func(ctx context.Context, party string, partyType gst.PartyType) ([]string, error)

func (fn DirectoryFunc) GSTINs(ctx context.Context, party string, partyType gst.PartyType) ([]string, error) {
	return fn(ctx, party, partyType)
}

type partyKey struct {
	party     string
	partyType gst.PartyType
}

// MemoryDirectory is an in-memory Directory. It is safe for concurrent use.
type MemoryDirectory struct {
	mu      sync.RWMutex
	entries map[partyKey][]string
}

// NewMemoryDirectory returns an empty directory.
func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{entries: make(map[partyKey][]string)}
}

// Add registers gstins for a party. Values are normalised and validated;
// duplicates are ignored. Nothing is stored when any value is invalid.
func (d *MemoryDirectory) Add(party string, partyType gst.PartyType, gstins ...string) error {
	party = strings.TrimSpace(party)
	if party == "" {
		return fmt.Errorf("gstin: missing party")
	}
	if partyType == "" {
		partyType = gst.PartyCompany
	}

	normalised := make([]string, 0, len(gstins))
	var errs []error
	for _, raw := range gstins {
		value := Normalize(raw)
		if err := Validate(value); err != nil {
			errs = append(errs, fmt.Errorf("party %q: %w", party, err))
			continue
		}
		normalised = append(normalised, value)
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.entries == nil {
		d.entries = make(map[partyKey][]string)
	}
	key := partyKey{party: party, partyType: partyType}
	existing := d.entries[key]
	for _, value := range normalised {
		if containsString(existing, value) {
			continue
		}
		existing = append(existing, value)
	}
	d.entries[key] = existing
	return nil
}

func (d *MemoryDirectory) GSTINs(ctx context.Context, party string, partyType gst.PartyType) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if partyType == "" {
		partyType = gst.PartyCompany
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	values := d.entries[partyKey{party: strings.TrimSpace(party), partyType: partyType}]
	return append([]string{}, values...), nil
}

type directoryDocument struct {
	Parties []directoryEntry `yaml:"parties" validate:"dive"`
}

type directoryEntry struct {
	Party     string   `yaml:"party" validate:"required"`
	PartyType string   `yaml:"party_type"`
	GSTINs    []string `yaml:"gstins" validate:"required,min=1,dive,required"`
}

var (
	entryValidatorOnce sync.Once
	entryValidator     *validator.Validate
)

func documentValidator() *validator.Validate {
	entryValidatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		entryValidator = v
	})
	return entryValidator
}

func validateDocument(doc directoryDocument) error {
	err := documentValidator().Struct(doc)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("%s: failed %q", fe.Namespace(), fe.Tag()))
	}
	return errors.Join(errs...)
}

// LoadDirectory builds a MemoryDirectory from a YAML document of the form:
//
//	parties:
//	  - party: Acme Traders
//	    party_type: Customer
//	    gstins: [27AAPFU0939F1ZV]
func LoadDirectory(r io.Reader) (*MemoryDirectory, error) {
	if r == nil {
		return nil, fmt.Errorf("gstin: missing reader")
	}

	var doc directoryDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("gstin: decode directory: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, fmt.Errorf("gstin: invalid directory: %w", err)
	}

	dir := NewMemoryDirectory()
	for i, entry := range doc.Parties {
		partyType, err := gst.ParsePartyType(entry.PartyType)
		if err != nil {
			return nil, fmt.Errorf("gstin: parties[%d]: %w", i, err)
		}
		if err := dir.Add(entry.Party, partyType, entry.GSTINs...); err != nil {
			return nil, fmt.Errorf("gstin: parties[%d]: %w", i, err)
		}
	}
	return dir, nil
}

func containsString(haystack []string, needle string) bool {
	for _, item := range haystack {
		if item == needle {
			return true
		}
	}
	return false
}
