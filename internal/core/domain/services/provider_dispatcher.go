package services

import (
	"math/rand/v2"

	"dispatch/internal/core/domain/model/delivery"
)

// ProviderDispatcher is a domain service choosing the delivery provider for an order.
//
// Providers are interchangeable, so the choice is uniform over delivery.Providers().
// Selection is pure: it reads nothing but the random source and changes nothing.
//
// Example usage:
//
//	dispatcher := services.NewProviderDispatcher()
//	kind := dispatcher.SelectProvider()
//	provider := registry.Resolve(kind)
type ProviderDispatcher struct {
	intN func(n int) int
}

// NewProviderDispatcher creates a dispatcher backed by math/rand/v2, which is safe for
// concurrent use.
func NewProviderDispatcher() ProviderDispatcher {
	return ProviderDispatcher{intN: rand.IntN}
}

// NewProviderDispatcherWithSource creates a dispatcher drawing from intN, which must
// return a value in [0, n). Used for deterministic tests.
func NewProviderDispatcherWithSource(intN func(n int) int) ProviderDispatcher {
	return ProviderDispatcher{intN: intN}
}

// SelectProvider returns a provider drawn uniformly at random.
func (d ProviderDispatcher) SelectProvider() delivery.Provider {
	intN := d.intN
	if intN == nil {
		intN = rand.IntN
	}
	all := delivery.Providers()
	return all[intN(len(all))]
}
