package providers

import (
	"fmt"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// Registry resolves a provider kind to its implementation.
type Registry struct {
	providers map[delivery.Provider]ports.DeliveryProvider
}

// NewRegistry requires exactly one implementation per kind in delivery.Providers().
func NewRegistry(providers ...ports.DeliveryProvider) (*Registry, error) {
	r := &Registry{providers: make(map[delivery.Provider]ports.DeliveryProvider, len(providers))}

	for _, p := range providers {
		kind := p.Kind()
		if err := kind.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.providers[kind]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"provider is invalid",
				fmt.Errorf("%s is registered twice", kind),
			)
		}
		r.providers[kind] = p
	}

	for _, kind := range delivery.Providers() {
		if _, ok := r.providers[kind]; !ok {
			return nil, errs.NewValueIsRequiredErrorWithCause(
				"provider",
				fmt.Errorf("no implementation registered for %s", kind),
			)
		}
	}

	return r, nil
}

// Resolve returns the implementation for kind. A kind outside the closed provider
// set means a programming defect, so Resolve panics instead of returning an error.
func (r *Registry) Resolve(kind delivery.Provider) ports.DeliveryProvider {
	p, ok := r.providers[kind]
	if !ok {
		panic(fmt.Sprintf("providers: unreachable dispatch state, no provider for %d", kind))
	}
	return p
}
