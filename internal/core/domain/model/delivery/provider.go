package delivery

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Provider identifies a delivery provider. The set is closed: a Provider outside
// Providers() can only come from a programming defect.
type Provider int

const (
	// UnknownProvider is the invalid zero value.
	UnknownProvider Provider = iota
	Uber
	Uklon
)

var providerNames = map[Provider]string{
	Uber:  "uber",
	Uklon: "uklon",
}

// Providers returns every valid provider in a stable order.
func Providers() []Provider {
	return []Provider{Uber, Uklon}
}

// ProviderFromString parses the lower-case provider name.
func ProviderFromString(s string) (Provider, error) {
	for p, name := range providerNames {
		if name == s {
			return p, nil
		}
	}
	return UnknownProvider, errs.NewValueIsInvalidErrorWithCause(
		"provider is invalid",
		fmt.Errorf("%q is not a known provider", s),
	)
}

// Validate rejects UnknownProvider and any value outside the closed set.
func (p Provider) Validate() error {
	if _, ok := providerNames[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("provider is invalid", fmt.Errorf("%d is not a valid provider", p))
	}
	return nil
}

// String returns "uber", "uklon" or "unknown".
func (p Provider) String() string {
	if name, ok := providerNames[p]; ok {
		return name
	}
	return "unknown"
}

// DisplayName is the capitalised name used in human facing log lines.
func (p Provider) DisplayName() string {
	switch p {
	case Uber:
		return "Uber"
	case Uklon:
		return "Uklon"
	default:
		return "Unknown"
	}
}
