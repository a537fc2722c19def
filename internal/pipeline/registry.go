package pipeline

import (
	"sort"

	apperrors "github.com/lpverneck/swe-design/internal/errors"
)

// Registry is a name-keyed collection of model variants. The demo's variant
// set is small and fixed, so the registry is populated at construction time
// rather than through open-ended runtime registration.
type Registry struct {
	models map[string]Model
}

// NewRegistry creates a Registry holding the given models.
func NewRegistry(models ...Model) *Registry {
	r := &Registry{models: make(map[string]Model, len(models))}
	for _, m := range models {
		r.models[m.Name()] = m
	}
	return r
}

// NewDefaultRegistry creates a Registry with the demo's standard variants.
func NewDefaultRegistry() *Registry {
	return NewRegistry(ModelV1{}, ModelV2{})
}

// Get retrieves a model by name.
//
// Returns:
//   - Model: The registered model.
//   - error: A ValidationError if the name is not registered.
func (r *Registry) Get(name string) (Model, error) {
	m, ok := r.models[name]
	if !ok {
		return nil, apperrors.ValidationError{Field: "model", Message: "not registered: " + name}
	}
	return m, nil
}

// List returns the registered model names in sorted order for consistent,
// reproducible behavior.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns every registered model in List order.
func (r *Registry) GetAll() []Model {
	names := r.List()
	models := make([]Model, 0, len(names))
	for _, name := range names {
		models = append(models, r.models[name])
	}
	return models
}

// ModelsToRun determines which models should be executed based on the
// selection name. "all" returns every registered model in List order;
// anything else returns the single named model or an error.
func ModelsToRun(selection string, registry *Registry) ([]Model, error) {
	if selection == "" || selection == "all" {
		return registry.GetAll(), nil
	}
	m, err := registry.Get(selection)
	if err != nil {
		return nil, err
	}
	return []Model{m}, nil
}
