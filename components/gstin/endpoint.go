package gstin

import (
	"github.com/goliatone/go-formgen-gst/pkg/gst"
	"github.com/goliatone/go-formgen-gst/pkg/model"
)

// Endpoint turns a GSTIN query descriptor into relationship endpoint metadata
// pointing at <basePath><RoutePath> (default: <basePath>/api/gstin). The
// party and party type are sent as static params; responses are read from
// "data" with value/label mapping.
func Endpoint(basePath string, spec gst.QuerySpec, fns ...OptionFn) model.EndpointConfig {
	opts := NewOptions(fns...)
	partyType := spec.Params.PartyType
	if partyType == "" {
		partyType = gst.PartyCompany
	}

	return model.EndpointConfig{
		URL:         mountPath(basePath, opts.RoutePath),
		Method:      "GET",
		ResultsPath: "data",
		Params: map[string]string{
			opts.PartyParam:     spec.Params.Party,
			opts.PartyTypeParam: string(partyType),
		},
		Mapping: model.EndpointMapping{
			Value: "value",
			Label: "label",
		},
	}
}
