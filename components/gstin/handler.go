package gstin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/goliatone/go-formgen-gst/pkg/gst"
	"github.com/goliatone/go-formgen-gst/pkg/model"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type optionsResponse struct {
	Data []model.Option `json:"data"`
}

// Handler builds a net/http handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return HandlerWithOptions(NewOptions(fns...))
}

// HandlerWithOptions builds the GSTIN options handler from a pre-constructed
// Options value. The handler answers GET and HEAD with
// {"data":[{"value":"<gstin>","label":"<gstin>"}]}.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		w := &statusWriter{ResponseWriter: rw}
		defer func() { opts.Metrics.observeRequest(w.code) }()

		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}

		query := r.URL.Query()
		party := strings.TrimSpace(query.Get(opts.PartyParam))
		if party == "" {
			http.Error(w, "missing "+opts.PartyParam, http.StatusBadRequest)
			return
		}
		partyType, err := gst.ParsePartyType(query.Get(opts.PartyTypeParam))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if opts.Directory == nil {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		values, err := opts.Directory.GSTINs(r.Context(), party, partyType)
		if err != nil {
			writeError(w, err)
			return
		}

		results := make([]model.Option, 0, len(values))
		for _, value := range values {
			results = append(results, model.Option{Value: value, Label: value})
		}

		opts.Metrics.observeOptions(len(results))
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}

		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(true)
		_ = enc.Encode(optionsResponse{Data: results})
	})
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}

// StatusClientClosedRequest reports a lookup abandoned because the client
// went away. It keeps disconnects out of the 5xx counts.
const StatusClientClosedRequest = 499

func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr) && httpErr != nil:
		code = httpErr.StatusCode()
	case errors.Is(err, context.Canceled):
		http.Error(w, "client closed request", StatusClientClosedRequest)
		return
	case errors.Is(err, context.DeadlineExceeded):
		code = http.StatusGatewayTimeout
	}
	http.Error(w, http.StatusText(code), code)
}
