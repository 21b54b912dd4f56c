package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-formgen-gst/pkg/gst"
	"github.com/goliatone/go-formgen-gst/pkg/model"
)

// FillAddress prompts for the country, repopulates the state options through
// the helpers, then asks for the state: a select when options exist, free
// text otherwise. Tooltip decorations of both fields are shown as help text.
func FillAddress(ctx context.Context, driver PromptDriver, h *gst.Helpers, form *model.FormModel) error {
	if driver == nil || h == nil || form == nil {
		return fmt.Errorf("tui: fill address: missing driver, helpers or form")
	}
	country, ok := form.Lookup(gst.FieldCountry)
	if !ok {
		return fmt.Errorf("tui: fill address: %w: %q", gst.ErrFieldNotFound, gst.FieldCountry)
	}

	defaultCountry := country.Value
	if defaultCountry == "" {
		defaultCountry = gst.CountryIndia
	}
	value, err := driver.Input(ctx, InputConfig{
		Message: labelOf(country),
		Default: defaultCountry,
		Help:    helpOf(country),
	})
	if err != nil {
		return err
	}
	country.Value = strings.TrimSpace(value)

	if err := h.SetStateOptions(form); err != nil {
		return err
	}
	state, _ := form.Lookup(gst.FieldState)

	options := state.OptionValues()
	if len(options) == 0 {
		value, err := driver.Input(ctx, InputConfig{
			Message: labelOf(state),
			Default: state.Value,
			Help:    helpOf(state),
		})
		if err != nil {
			return err
		}
		state.Value = strings.TrimSpace(value)
		return nil
	}

	idx, err := driver.Select(ctx, SelectConfig{
		Message:      labelOf(state),
		Options:      options,
		DefaultIndex: indexOf(options, state.Value),
		Help:         helpOf(state),
		PageSize:     10,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(options) {
		return ErrNoChoice
	}
	state.Value = options[idx]
	return nil
}

func labelOf(f *model.Field) string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// helpOf joins the titles of the field's tooltip decorations.
func helpOf(f *model.Field) string {
	var parts []string
	for _, el := range f.Decorations {
		if title := strings.TrimSpace(el.Attr("title")); title != "" {
			parts = append(parts, title)
		}
	}
	return strings.Join(parts, " ")
}
