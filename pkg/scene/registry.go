package scene

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Builder constructs a scene
type Builder func(opts Options) (*Scene, error)

// Registry maps scene names to builders
type Registry struct {
	builders map[string]Builder
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]Builder)}
}

// DefaultRegistry returns a registry holding every built-in scene
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.mustRegister("default", NewDefaultScene)
	r.mustRegister("mirrors", NewMirrorScene)
	r.mustRegister("instances", NewInstanceScene)
	r.mustRegister("mesh", NewMeshScene)
	r.mustRegister("sdf", NewSDFScene)
	return r
}

// Register adds a builder under name
func (r *Registry) Register(name string, builder Builder) error {
	if name == "" || builder == nil {
		return errors.New("scene needs a name and a builder")
	}
	if _, exists := r.builders[name]; exists {
		return errors.Errorf("scene %q already registered", name)
	}
	r.builders[name] = builder
	return nil
}

func (r *Registry) mustRegister(name string, builder Builder) {
	if err := r.Register(name, builder); err != nil {
		panic(err)
	}
}

// Names returns the registered scene names in sorted order
func (r *Registry) Names() []string {
	names := lo.Keys(r.builders)
	slices.Sort(names)
	return names
}

// Build constructs the named scene. A non-negative opts.MaxBounce replaces the scene's own limit.
func (r *Registry) Build(name string, opts Options) (*Scene, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, errors.Errorf("unknown scene %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}

	opts = opts.withDefaults()
	s, err := builder(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "build scene %q", name)
	}
	if opts.MaxBounce >= 0 {
		s.IntegratorConfig.MaxBounce = opts.MaxBounce
	}
	return s, nil
}

// Names lists the built-in scenes
func Names() []string {
	return DefaultRegistry().Names()
}

// Build constructs a built-in scene
func Build(name string, opts Options) (*Scene, error) {
	return DefaultRegistry().Build(name, opts)
}
