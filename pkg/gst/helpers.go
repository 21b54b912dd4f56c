package gst

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goliatone/go-formgen-gst/pkg/bootconfig"
	"github.com/goliatone/go-formgen-gst/pkg/notify"
	"github.com/goliatone/go-formgen-gst/pkg/render"
	"github.com/goliatone/go-formgen-gst/pkg/view"
)

const missingPartyMessage = "Please select {0} to get GSTIN options"

// Helpers bundles the GST form helpers around an immutable boot
// configuration. A Helpers value is safe for concurrent use.
type Helpers struct {
	cfg   bootconfig.Config
	sales map[string]struct{}
	opts  Options
}

// New constructs helpers for cfg. The configuration is copied; later changes
// to the caller's slices are not observed.
func New(cfg bootconfig.Config, fns ...OptionFn) *Helpers {
	cfg = cfg.Clone()
	sales := make(map[string]struct{}, len(cfg.SalesDocTypes))
	for _, doctype := range cfg.SalesDocTypes {
		sales[doctype] = struct{}{}
	}
	return &Helpers{
		cfg:   cfg,
		sales: sales,
		opts:  NewOptions(fns...),
	}
}

// Config returns a copy of the boot configuration.
func (h *Helpers) Config() bootconfig.Config {
	return h.cfg.Clone()
}

// GSTINQuery builds the autocomplete query listing GSTINs for party. When
// party is blank the user is alerted once and ok is false, meaning no query
// should run. A blank partyType selects PartyCompany.
func (h *Helpers) GSTINQuery(party string, partyType PartyType) (spec QuerySpec, ok bool) {
	if partyType == "" {
		partyType = PartyCompany
	}
	if party == "" {
		h.opts.Notifier.Notify(notify.Alert{
			Message:   h.translate(missingPartyMessage, h.translate(string(partyType))),
			Indicator: notify.IndicatorYellow,
		})
		return QuerySpec{}, false
	}

	return QuerySpec{
		Query: GSTINListQuery,
		Params: QueryParams{
			Party:     party,
			PartyType: partyType,
		},
	}, true
}

// PartyType classifies doctype: sales documents face customers, everything
// else faces suppliers.
func (h *Helpers) PartyType(doctype string) PartyType {
	if _, ok := h.sales[doctype]; ok {
		return PartyCustomer
	}
	return PartySupplier
}

// SetStateOptions fills the state field from the country field. Only India
// has a state list; any other country clears the options.
func (h *Helpers) SetStateOptions(form Form) error {
	if form == nil {
		return fmt.Errorf("gst: set state options: missing form")
	}
	state, ok := form.Field(FieldState)
	if !ok {
		return fmt.Errorf("gst: set state options: %w", fieldNotFound(FieldState))
	}
	country, ok := form.Field(FieldCountry)
	if !ok {
		return fmt.Errorf("gst: set state options: %w", fieldNotFound(FieldCountry))
	}

	if country.Value() != CountryIndia {
		state.SetOptions([]string{})
		return nil
	}

	options := append([]string{}, h.cfg.IndiaStateOptions...)
	state.SetOptions(options)
	return nil
}

// CanEnableAPI reports whether API access can be switched on: either an API
// secret is configured or the deployment enables it.
func (h *Helpers) CanEnableAPI(settings Settings) bool {
	return settings.APISecret != "" || h.cfg.APIEnabledFromConf
}

// IsAPIEnabled reports whether API access is both switched on and allowed. A
// nil settings uses the boot-time GST settings.
func (h *Helpers) IsAPIEnabled(settings *Settings) bool {
	s := h.cfg.GSTSettings
	if settings != nil {
		s = *settings
	}
	return s.EnableAPI && h.CanEnableAPI(s)
}

// SetupTooltips appends an info icon carrying the translated text to each
// named field. Fields are processed in name order; names the form does not
// define are reported together after the others have been decorated.
func (h *Helpers) SetupTooltips(form Form, tooltips map[string]string) error {
	if len(tooltips) == 0 {
		return nil
	}
	if form == nil {
		return fmt.Errorf("gst: setup tooltips: missing form")
	}

	names := make([]string, 0, len(tooltips))
	for name := range tooltips {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		field, ok := form.Field(name)
		if !ok {
			errs = append(errs, fmt.Errorf("gst: setup tooltips: %w", fieldNotFound(name)))
			continue
		}
		field.AppendDecoration(view.InfoTooltip(h.translate(tooltips[name])))
	}
	return errors.Join(errs...)
}

func (h *Helpers) translate(key string, args ...any) string {
	return render.Translate(h.opts.Translator, h.opts.OnMissing, h.opts.Locale, key, args...)
}
