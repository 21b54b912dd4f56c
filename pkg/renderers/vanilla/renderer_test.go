package vanilla

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formgen-gst/pkg/gst"
	"github.com/goliatone/go-formgen-gst/pkg/model"
	"github.com/goliatone/go-formgen-gst/pkg/testsupport"
)

func addressForm(t *testing.T) model.FormModel {
	t.Helper()
	h := gst.New(testsupport.Config([]string{"Goa", "Kerala"}))
	form := testsupport.MustLoadFormModel(t, filepath.Join("testdata", "address_form.json"))
	if err := h.SetStateOptions(form); err != nil {
		t.Fatalf("set state options: %v", err)
	}
	if err := h.SetupTooltips(form, map[string]string{"state": "Place of supply"}); err != nil {
		t.Fatalf("setup tooltips: %v", err)
	}
	return *form
}

func TestRenderer_RendersDecoratedForm(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if r.Name() != "vanilla" || !strings.HasPrefix(r.ContentType(), "text/html") {
		t.Fatalf("unexpected renderer metadata %q %q", r.Name(), r.ContentType())
	}

	out, err := r.Render(context.Background(), addressForm(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		`data-fieldname="state"`,
		`<div class="clearfix"><label class="control-label reqd" for="address-state">State</label><a class="btn-tooltip no-decoration text-muted"`,
		`title="Place of supply"`,
		`<i class="fa fa-info-circle"></i>`,
		`<option value="Goa">Goa</option>`,
		`<option value="Kerala" selected>Kerala</option>`,
		`<input class="form-control" type="text" id="address-country" name="country" value="India">`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected output to contain %q\n%s", want, html)
		}
	}
}

func TestRenderer_EscapesValues(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	form := model.FormModel{Fields: []model.Field{{Name: "gstin", Label: "<b>GSTIN</b>"}}}

	out, err := r.Render(context.Background(), form)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "<b>") {
		t.Fatalf("expected label to be escaped:\n%s", out)
	}
}

func TestRenderer_EndpointAttribute(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	form := model.FormModel{Fields: []model.Field{{
		Name:         "company_gstin",
		Relationship: &model.EndpointConfig{URL: "/api/gstin", Method: "GET"},
	}}}

	out, err := r.Render(context.Background(), form)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<select") || !strings.Contains(html, "data-endpoint=") || !strings.Contains(html, "/api/gstin") {
		t.Fatalf("expected select with endpoint metadata:\n%s", html)
	}
}

func TestRenderer_CustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		TemplateName: {Data: []byte(`{% for field in form.Fields %}[{{ field.Name }}]{% endfor %}`)},
	}
	r, err := New(WithTemplatesFS(files))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := r.Render(context.Background(), addressForm(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "[country][state]" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRenderer_Errors(t *testing.T) {
	if _, err := New(WithTemplatesFS(fstest.MapFS{})); err == nil {
		t.Fatalf("expected error for missing template")
	}

	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Render(ctx, model.FormModel{}); err == nil {
		t.Fatalf("expected error for cancelled context")
	}

	var nilRenderer *Renderer
	if _, err := nilRenderer.Render(context.Background(), model.FormModel{}); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}
