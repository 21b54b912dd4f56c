package gstin

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formgen-gst/pkg/gst"
)

// OperationID identifies the GSTIN options operation in the OpenAPI document.
const OperationID = "getGSTINList"

// OpenAPI describes the GSTIN options route mounted under basePath. The
// document is loaded and validated with kin-openapi before it is returned.
func OpenAPI(ctx context.Context, basePath string, opts Options) (*openapi3.T, error) {
	opts = NewOptions(func(o *Options) { *o = opts })
	path := mountPath(basePath, opts.RoutePath)

	plainError := map[string]any{
		"content": map[string]any{
			"text/plain": map[string]any{"schema": map[string]any{"type": "string"}},
		},
	}
	withDescription := func(desc string) map[string]any {
		out := map[string]any{"description": desc}
		for k, v := range plainError {
			out[k] = v
		}
		return out
	}

	raw := map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   "GSTIN options",
			"version": "1.0.0",
		},
		"paths": map[string]any{
			path: map[string]any{
				"get": map[string]any{
					"operationId": OperationID,
					"summary":     "List GSTINs registered for a party",
					"x-query":     gst.GSTINListQuery,
					"parameters": []any{
						map[string]any{
							"name":     opts.PartyParam,
							"in":       "query",
							"required": true,
							"schema":   map[string]any{"type": "string", "minLength": 1},
						},
						map[string]any{
							"name":        opts.PartyTypeParam,
							"in":          "query",
							"description": "Party type, matched case-insensitively. Defaults to Company.",
							"required":    false,
							"schema": map[string]any{
								"type":    "string",
								"enum":    []string{string(gst.PartyCustomer), string(gst.PartySupplier), string(gst.PartyCompany)},
								"default": string(gst.PartyCompany),
							},
						},
					},
					"responses": map[string]any{
						"200": map[string]any{
							"description": "GSTIN options",
							"content": map[string]any{
								"application/json": map[string]any{
									"schema": map[string]any{"$ref": "#/components/schemas/OptionsResponse"},
								},
							},
						},
						"400": withDescription("Missing party or unknown party type"),
						"403": withDescription("Rejected by guard"),
						"503": withDescription("No directory configured"),
					},
				},
			},
		},
		"components": map[string]any{
			"schemas": map[string]any{
				"Option": map[string]any{
					"type":     "object",
					"required": []string{"value", "label"},
					"properties": map[string]any{
						"value": map[string]any{"type": "string", "pattern": gstinPattern.String()},
						"label": map[string]any{"type": "string"},
					},
				},
				"OptionsResponse": map[string]any{
					"type":     "object",
					"required": []string{"data"},
					"properties": map[string]any{
						"data": map[string]any{
							"type":  "array",
							"items": map[string]any{"$ref": "#/components/schemas/Option"},
						},
					},
				},
			},
		},
	}

	payload, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("gstin: encode openapi: %w", err)
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(payload)
	if err != nil {
		return nil, fmt.Errorf("gstin: load openapi: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("gstin: validate openapi: %w", err)
	}
	return doc, nil
}
