package model

// EndpointConfig describes where a relationship-backed field (autocomplete or
// async select) fetches its options from. Zero values are omitted when
// serialised.
type EndpointConfig struct {
	URL           string            `json:"url"`
	Method        string            `json:"method,omitempty"`
	ResultsPath   string            `json:"resultsPath,omitempty"`
	Params        map[string]string `json:"params,omitempty"`
	DynamicParams map[string]string `json:"dynamicParams,omitempty"`
	Mapping       EndpointMapping   `json:"mapping,omitempty"`
}

// EndpointMapping remaps response payload structures (value/label paths).
type EndpointMapping struct {
	Value string `json:"value,omitempty"`
	Label string `json:"label,omitempty"`
}
