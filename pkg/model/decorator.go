package model

import "errors"

// Decorator enriches a form model after its fields have been assembled, e.g.
// populating dependent options or attaching field decorations.
type Decorator interface {
	Decorate(*FormModel) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*FormModel) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(form *FormModel) error {
	return fn(form)
}

// Apply runs every decorator in order. All decorators run even when an
// earlier one fails; the failures are joined.
func Apply(form *FormModel, decorators ...Decorator) error {
	var errs []error
	for _, d := range decorators {
		if d == nil {
			continue
		}
		if err := d.Decorate(form); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
