package formgenwiring

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formgen-gst/components/gstin"
	"github.com/goliatone/go-formgen-gst/pkg/gst"
	"github.com/goliatone/go-formgen-gst/pkg/model"
)

// Binding links a GSTIN autocomplete field to the field holding its party.
// A blank PartyType is derived from the form's doctype (Customer for sales
// documents, Supplier otherwise), or Company when the doctype is unset.
type Binding struct {
	Field      string
	PartyField string
	PartyType  gst.PartyType
}

// GSTINDecorator returns a decorator that points each bound GSTIN field at
// the gstin component endpoint mounted under basePath. Fields whose party is
// still empty lose their relationship (the helpers alert the user instead).
func GSTINDecorator(h *gst.Helpers, basePath string, bindings []Binding, fns ...gstin.OptionFn) model.Decorator {
	cloned := append([]Binding(nil), bindings...)
	return model.DecoratorFunc(func(form *model.FormModel) error {
		if h == nil || form == nil {
			return nil
		}

		var errs []error
		for _, b := range cloned {
			target, ok := form.Lookup(b.Field)
			if !ok {
				errs = append(errs, fmt.Errorf("formgenwiring: gstin field: %w: %q", gst.ErrFieldNotFound, b.Field))
				continue
			}
			partyField, ok := form.Lookup(b.PartyField)
			if !ok {
				errs = append(errs, fmt.Errorf("formgenwiring: party field: %w: %q", gst.ErrFieldNotFound, b.PartyField))
				continue
			}

			spec, ok := h.GSTINQuery(partyField.Value, resolvePartyType(h, form, b))
			if !ok {
				target.Relationship = nil
				continue
			}
			endpoint := gstin.Endpoint(basePath, spec, fns...)
			target.Relationship = &endpoint
		}
		return errors.Join(errs...)
	})
}

// StateOptionsDecorator populates the state field from the country field.
func StateOptionsDecorator(h *gst.Helpers) model.Decorator {
	return model.DecoratorFunc(func(form *model.FormModel) error {
		if h == nil || form == nil {
			return nil
		}
		return h.SetStateOptions(form)
	})
}

// TooltipsDecorator attaches info tooltips to the named fields.
func TooltipsDecorator(h *gst.Helpers, tooltips map[string]string) model.Decorator {
	cloned := make(map[string]string, len(tooltips))
	for k, v := range tooltips {
		cloned[k] = v
	}
	return model.DecoratorFunc(func(form *model.FormModel) error {
		if h == nil || form == nil {
			return nil
		}
		return h.SetupTooltips(form, cloned)
	})
}

func resolvePartyType(h *gst.Helpers, form *model.FormModel, b Binding) gst.PartyType {
	if b.PartyType != "" {
		return b.PartyType
	}
	if form.Doctype == "" {
		return gst.PartyCompany
	}
	return h.PartyType(form.Doctype)
}
