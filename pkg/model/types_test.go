package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formgen-gst/pkg/view"
)

func TestFormModel_FieldHandle(t *testing.T) {
	form := &FormModel{Fields: []Field{{Name: "country", Value: "India"}, {Name: "state"}}}

	handle, ok := form.Field("state")
	if !ok {
		t.Fatalf("expected state field")
	}
	handle.SetOptions([]string{"Goa"})
	handle.AppendDecoration(view.InfoTooltip("State of supply"))

	state, _ := form.Lookup("state")
	if diff := cmp.Diff([]Option{{Value: "Goa", Label: "Goa"}}, state.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if len(state.Decorations) != 1 || state.Decorations[0].Attr("title") != "State of supply" {
		t.Fatalf("unexpected decorations: %#v", state.Decorations)
	}

	country, _ := form.Field("country")
	if country.Value() != "India" {
		t.Fatalf("unexpected country value %q", country.Value())
	}

	if _, ok := form.Field("missing"); ok {
		t.Fatalf("expected missing field lookup to fail")
	}
	var nilForm *FormModel
	if _, ok := nilForm.Field("state"); ok {
		t.Fatalf("expected nil form lookup to fail")
	}
}

func TestOptionsFromStrings_EmptyIsNonNil(t *testing.T) {
	got := OptionsFromStrings(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestAppendDecoration_Clones(t *testing.T) {
	el := view.InfoTooltip("a")
	var f Field
	f.AppendDecoration(el)
	el.Attrs["title"] = "b"

	if f.Decorations[0].Attr("title") != "a" {
		t.Fatalf("decoration shares state with caller")
	}
}

func TestApply_RunsAllAndJoinsErrors(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")
	calls := 0

	err := Apply(&FormModel{},
		DecoratorFunc(func(*FormModel) error { calls++; return first }),
		nil,
		DecoratorFunc(func(*FormModel) error { calls++; return nil }),
		DecoratorFunc(func(*FormModel) error { calls++; return second }),
	)
	if calls != 3 {
		t.Fatalf("expected every decorator to run, got %d calls", calls)
	}
	if !errors.Is(err, first) || !errors.Is(err, second) {
		t.Fatalf("expected joined errors, got %v", err)
	}
}
