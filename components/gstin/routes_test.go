package gstin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formgen-gst/pkg/gst"
)

func TestMountPath_JoinsBasePath(t *testing.T) {
	if got := MountPath("/admin"); got != "/admin/api/gstin" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("admin"); got != "/admin/api/gstin" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("/admin/", WithRoutePath("api/gst")); got != "/admin/api/gst" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("/desk", WithRoutePath("/api/gstin/")); got != "/desk/api/gstin" {
		t.Fatalf("expected trailing slash trimmed from route, got %q", got)
	}
	if got := MountPath("", WithRoutePath("/")); got != "/" {
		t.Fatalf("expected bare root route, got %q", got)
	}
	if got := MountPath(""); got != "/api/gstin" {
		t.Fatalf("unexpected mount path: %q", got)
	}
}

func TestRegisterRoutes_RegistersHandlerAndOpenAPI(t *testing.T) {
	mux := http.NewServeMux()
	c := New(WithDirectory(testDirectory(t)))
	pattern, err := c.RegisterRoutes(mux, "/desk")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pattern != "/desk/api/gstin" {
		t.Fatalf("unexpected registered pattern: %q", pattern)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, pattern+"?party=Acme+Traders&party_type=Customer", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, pattern+"/openapi.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 for openapi document, got %d", rec.Code)
	}
	var doc map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode openapi document: %v", err)
	}
	paths, _ := doc["paths"].(map[string]any)
	if _, ok := paths["/desk/api/gstin"]; !ok {
		t.Fatalf("expected route in openapi paths, got %#v", paths)
	}
}

func TestRegisterRoutes_MissingMux(t *testing.T) {
	if _, err := RegisterRoutes(nil, "/"); err == nil {
		t.Fatalf("expected error for nil mux")
	}
}

func TestOpenAPI_DescribesRoute(t *testing.T) {
	doc, err := OpenAPI(context.Background(), "/desk", NewOptions(WithPartyParam("p")))
	if err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}
	if doc.Paths == nil || doc.Paths.Len() != 1 {
		t.Fatalf("expected a single path")
	}
	item := doc.Paths.Value("/desk/api/gstin")
	if item == nil || item.Get == nil {
		t.Fatalf("expected GET operation on /desk/api/gstin")
	}
	if item.Get.OperationID != OperationID {
		t.Fatalf("unexpected operation id %q", item.Get.OperationID)
	}
	param := item.Get.Parameters.GetByInAndName("query", "p")
	if param == nil || !param.Required {
		t.Fatalf("expected required party param, got %#v", param)
	}
	typeParam := item.Get.Parameters.GetByInAndName("query", "party_type")
	if typeParam == nil || !strings.Contains(typeParam.Description, "case-insensitively") {
		t.Fatalf("expected party_type description to mention case-insensitive matching, got %#v", typeParam)
	}
}

func TestRegisterRoutes_TrailingSlashRoute(t *testing.T) {
	mux := http.NewServeMux()
	pattern, err := RegisterRoutes(mux, "", WithRoutePath("/api/gstin/"), WithDirectory(NewMemoryDirectory()))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pattern != "/api/gstin" {
		t.Fatalf("unexpected pattern %q", pattern)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/gstin/openapi.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected openapi document at /api/gstin/openapi.json, got %d", rec.Code)
	}
}

func TestEndpoint_FromQuerySpec(t *testing.T) {
	spec := gst.QuerySpec{
		Query:  gst.GSTINListQuery,
		Params: gst.QueryParams{Party: "Acme", PartyType: gst.PartySupplier},
	}
	ep := Endpoint("/desk", spec)

	if ep.URL != "/desk/api/gstin" || ep.Method != "GET" || ep.ResultsPath != "data" {
		t.Fatalf("unexpected endpoint: %#v", ep)
	}
	want := map[string]string{"party": "Acme", "party_type": "Supplier"}
	if diff := cmp.Diff(want, ep.Params); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
	if ep.Mapping.Value != "value" || ep.Mapping.Label != "label" {
		t.Fatalf("unexpected mapping: %#v", ep.Mapping)
	}

	ep = Endpoint("", gst.QuerySpec{Params: gst.QueryParams{Party: "X"}}, WithPartyTypeParam("kind"))
	if ep.Params["kind"] != "Company" {
		t.Fatalf("expected Company default, got %#v", ep.Params)
	}
}
