// Package gstin serves the get_gstin_list query behind GSTIN autocomplete
// fields. Handler returns JSON options for a party from a Directory, and
// RegisterRoutes also exposes an OpenAPI description of the route.
//
// The handler responds to GET and HEAD requests with party and party_type
// query parameters. Endpoint converts a gst.QuerySpec into the relationship
// metadata renderers use to call it. Remote directories can be wrapped in a
// BreakerDirectory; NewMetrics records request outcomes.
package gstin
