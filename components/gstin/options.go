package gstin

import "net/http"

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath      string
	PartyParam     string
	PartyTypeParam string
	Guard          GuardFunc

	Directory Directory
	Metrics   *Metrics
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:      "/api/gstin",
		PartyParam:     "party",
		PartyTypeParam: "party_type",
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
	if opts.RoutePath == "" {
		opts.RoutePath = "/api/gstin"
	}
	if opts.PartyParam == "" {
		opts.PartyParam = "party"
	}
	if opts.PartyTypeParam == "" {
		opts.PartyTypeParam = "party_type"
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithPartyParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.PartyParam = name
	}
}

func WithPartyTypeParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.PartyTypeParam = name
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithDirectory(dir Directory) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Directory = dir
	}
}

func WithMetrics(m *Metrics) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Metrics = m
	}
}
