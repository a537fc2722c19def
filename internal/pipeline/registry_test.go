package pipeline

import (
	"errors"
	"testing"

	apperrors "github.com/lpverneck/swe-design/internal/errors"
)

// TestRegistry_Get tests lookup of registered and unknown models.
func TestRegistry_Get(t *testing.T) {
	registry := NewDefaultRegistry()

	t.Run("registered model", func(t *testing.T) {
		m, err := registry.Get("v1")
		if err != nil {
			t.Fatalf("Get(v1) failed: %v", err)
		}
		if m.Name() != "v1" {
			t.Errorf("Get(v1).Name() = %q, want v1", m.Name())
		}
	})

	t.Run("unknown model returns ValidationError", func(t *testing.T) {
		_, err := registry.Get("v9")
		if err == nil {
			t.Fatal("Get(v9) should fail")
		}
		var vErr apperrors.ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("error should be ValidationError, got %T: %v", err, err)
		}
	})
}

// TestRegistry_List verifies sorted, stable listing.
func TestRegistry_List(t *testing.T) {
	registry := NewRegistry(ModelV2{}, ModelV1{})

	got := registry.List()
	want := []string{"v1", "v2"}
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Stable across calls.
	again := registry.List()
	for i := range got {
		if got[i] != again[i] {
			t.Error("List() should be stable across calls")
		}
	}
}

// TestRegistry_GetAll verifies GetAll follows List order.
func TestRegistry_GetAll(t *testing.T) {
	registry := NewDefaultRegistry()
	models := registry.GetAll()

	if len(models) != 2 {
		t.Fatalf("GetAll() returned %d models, want 2", len(models))
	}
	if models[0].Name() != "v1" || models[1].Name() != "v2" {
		t.Errorf("GetAll() order = [%s, %s], want [v1, v2]", models[0].Name(), models[1].Name())
	}
}

// TestModelsToRun tests selection resolution.
func TestModelsToRun(t *testing.T) {
	registry := NewDefaultRegistry()

	tests := []struct {
		name      string
		selection string
		wantNames []string
		wantErr   bool
	}{
		{"all keyword", "all", []string{"v1", "v2"}, false},
		{"empty selection", "", []string{"v1", "v2"}, false},
		{"single model", "v2", []string{"v2"}, false},
		{"unknown model", "v9", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			models, err := ModelsToRun(tt.selection, registry)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ModelsToRun should fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("ModelsToRun failed: %v", err)
			}
			if len(models) != len(tt.wantNames) {
				t.Fatalf("got %d models, want %d", len(models), len(tt.wantNames))
			}
			for i, want := range tt.wantNames {
				if models[i].Name() != want {
					t.Errorf("models[%d].Name() = %q, want %q", i, models[i].Name(), want)
				}
			}
		})
	}
}
