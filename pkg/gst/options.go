package gst

import (
	"github.com/goliatone/go-formgen-gst/pkg/notify"
	"github.com/goliatone/go-formgen-gst/pkg/render"
)

// Options configures the collaborators the helpers call into.
type Options struct {
	Translator render.Translator
	OnMissing  render.MissingTranslationHandler
	Locale     string
	Notifier   notify.Notifier
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		Notifier: notify.Discard,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.Discard
	}
	return opts
}

func WithTranslator(t render.Translator) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Translator = t
	}
}

func WithOnMissing(fn render.MissingTranslationHandler) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.OnMissing = fn
	}
}

func WithLocale(locale string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Locale = locale
	}
}

func WithNotifier(n notify.Notifier) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Notifier = n
	}
}
