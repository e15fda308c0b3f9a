package device

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
)

// Registry holds the closed set of device families known to the program.
// Names are matched case-insensitively.
type Registry struct {
	families map[string]Family
}

func NewRegistry(families ...Family) (*Registry, error) {
	r := &Registry{families: make(map[string]Family, len(families))}

	for _, f := range families {
		if err := r.Register(f); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Registry) Register(f Family) error {
	if f == nil {
		return fmt.Errorf("attempted to register nil device family")
	}

	key := strings.ToLower(f.Name())

	if _, ok := r.families[key]; ok {
		return fmt.Errorf("device family %q already registered", f.Name())
	}

	r.families[key] = f
	return nil
}

func (r *Registry) Lookup(name string) (Family, error) {
	f, ok := r.families[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFamily, "%q (known: %s)", name, strings.Join(r.Names(), ", "))
	}

	return f, nil
}

// NewFactory selects the family by name and builds a factory for cfg.
func (r *Registry) NewFactory(name string, cfg Config) (Factory, error) {
	f, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}

	return f.NewFactory(cfg)
}

// Families returns the registered families sorted by name.
func (r *Registry) Families() []Family {
	out := make([]Family, 0, len(r.families))

	for _, key := range r.keys() {
		out = append(out, r.families[key])
	}

	return out
}

func (r *Registry) Names() []string {
	families := r.Families()
	names := make([]string, len(families))

	for i, f := range families {
		names[i] = f.Name()
	}

	return names
}

func (r *Registry) keys() []string {
	keys := maps.Keys(r.families)
	sort.Strings(keys)

	return keys
}
