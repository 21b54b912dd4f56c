package testsupport

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-formgen-gst/pkg/bootconfig"
	"github.com/goliatone/go-formgen-gst/pkg/model"
)

// MustLoadFormModel loads a JSON fixture into a FormModel structure.
func MustLoadFormModel(t *testing.T, path string) *model.FormModel {
	t.Helper()

	form, err := LoadFormModel(path)
	if err != nil {
		t.Fatalf("load form model: %v", err)
	}
	return form
}

// LoadFormModel reads a JSON fixture into a FormModel, returning an error for
// callers managing setup outside of *testing.T.
func LoadFormModel(path string) (*model.FormModel, error) {
	if path == "" {
		return nil, errors.New("testsupport: form model path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read form model: %w", err)
	}
	var out model.FormModel
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("testsupport: unmarshal form model: %w", err)
	}
	return &out, nil
}

// Config returns a boot configuration with a short state list and the given
// doctypes treated as sales documents.
func Config(states []string, salesDocTypes ...string) bootconfig.Config {
	return bootconfig.Config{
		SalesDocTypes:     append([]string(nil), salesDocTypes...),
		IndiaStateOptions: append([]string(nil), states...),
	}
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}
