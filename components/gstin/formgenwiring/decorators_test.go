package formgenwiring

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formgen-gst/components/gstin"
	"github.com/goliatone/go-formgen-gst/pkg/gst"
	"github.com/goliatone/go-formgen-gst/pkg/model"
	"github.com/goliatone/go-formgen-gst/pkg/notify"
	"github.com/goliatone/go-formgen-gst/pkg/testsupport"
)

func invoiceForm(doctype, customer string) *model.FormModel {
	return &model.FormModel{
		OperationID: "invoice",
		Doctype:     doctype,
		Fields: []model.Field{
			{Name: "customer", Type: model.FieldTypeLink, Value: customer},
			{Name: "billing_address_gstin", Type: model.FieldTypeLink},
			{Name: "country", Type: model.FieldTypeLink, Value: "India"},
			{Name: "state", Type: model.FieldTypeSelect},
		},
	}
}

func helpers(rec *notify.Recorder) *gst.Helpers {
	return gst.New(testsupport.Config([]string{"Goa", "Kerala"}, "Sales Invoice"), gst.WithNotifier(rec))
}

func TestGSTINDecorator_DerivesPartyTypeFromDoctype(t *testing.T) {
	var rec notify.Recorder
	form := invoiceForm("Sales Invoice", "Acme")
	dec := GSTINDecorator(helpers(&rec), "/desk", []Binding{{Field: "billing_address_gstin", PartyField: "customer"}})

	if err := dec.Decorate(form); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	field, _ := form.Lookup("billing_address_gstin")
	want := gstin.Endpoint("/desk", gst.QuerySpec{
		Query:  gst.GSTINListQuery,
		Params: gst.QueryParams{Party: "Acme", PartyType: gst.PartyCustomer},
	})
	if field.Relationship == nil {
		t.Fatalf("expected relationship to be set")
	}
	if diff := cmp.Diff(want, *field.Relationship); diff != "" {
		t.Fatalf("relationship mismatch (-want +got):\n%s", diff)
	}
}

func TestGSTINDecorator_PurchaseDoctypeUsesSupplier(t *testing.T) {
	var rec notify.Recorder
	form := invoiceForm("Purchase Invoice", "Vendor Co")
	dec := GSTINDecorator(helpers(&rec), "", []Binding{{Field: "billing_address_gstin", PartyField: "customer"}})

	if err := dec.Decorate(form); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	field, _ := form.Lookup("billing_address_gstin")
	if got := field.Relationship.Params["party_type"]; got != "Supplier" {
		t.Fatalf("expected Supplier party type, got %q", got)
	}
}

func TestGSTINDecorator_EmptyPartyClearsRelationshipAndAlerts(t *testing.T) {
	var rec notify.Recorder
	form := invoiceForm("", "")
	field, _ := form.Lookup("billing_address_gstin")
	field.Relationship = &model.EndpointConfig{URL: "/stale"}

	dec := GSTINDecorator(helpers(&rec), "", []Binding{{Field: "billing_address_gstin", PartyField: "customer"}})
	if err := dec.Decorate(form); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	field, _ = form.Lookup("billing_address_gstin")
	if field.Relationship != nil {
		t.Fatalf("expected relationship to be cleared, got %#v", field.Relationship)
	}
	alerts := rec.Alerts()
	if len(alerts) != 1 || alerts[0].Message != "Please select Company to get GSTIN options" {
		t.Fatalf("unexpected alerts: %#v", alerts)
	}
}

func TestGSTINDecorator_MissingFields(t *testing.T) {
	var rec notify.Recorder
	form := invoiceForm("Sales Invoice", "Acme")
	dec := GSTINDecorator(helpers(&rec), "", []Binding{
		{Field: "shipping_gstin", PartyField: "customer"},
		{Field: "billing_address_gstin", PartyField: "company"},
	})

	err := dec.Decorate(form)
	if !errors.Is(err, gst.ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound, got %v", err)
	}
}

func TestApply_StateAndTooltipDecorators(t *testing.T) {
	var rec notify.Recorder
	h := helpers(&rec)
	form := invoiceForm("Sales Invoice", "Acme")

	err := model.Apply(form,
		StateOptionsDecorator(h),
		TooltipsDecorator(h, map[string]string{"billing_address_gstin": "GSTIN of the billing address"}),
		GSTINDecorator(h, "/desk", []Binding{{Field: "billing_address_gstin", PartyField: "customer"}}),
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	state, _ := form.Lookup("state")
	if diff := cmp.Diff([]string{"Goa", "Kerala"}, state.OptionValues()); diff != "" {
		t.Fatalf("state options mismatch (-want +got):\n%s", diff)
	}
	gstinField, _ := form.Lookup("billing_address_gstin")
	if len(gstinField.Decorations) != 1 || gstinField.Relationship == nil {
		t.Fatalf("expected tooltip and relationship, got %#v", gstinField)
	}
}
