package delivery

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
	ErrOrderNameIsRequired      = errs.NewValueIsRequiredError("orderName")
	ErrTrackingIDAlreadySet     = errs.NewValueIsInvalidError("tracking id is already assigned")
)

// Shipment is one dispatch attempt of a named order. The tracking id is empty until
// a provider ships it.
type Shipment struct {
	orderName  string
	trackingID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewShipment creates an unshipped attempt for orderName.
func NewShipment(orderName string) (*Shipment, error) {
	if strings.TrimSpace(orderName) == "" {
		return nil, ErrOrderNameIsRequired
	}
	return &Shipment{
		orderName: orderName,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the shipment was built through NewShipment.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// OrderName returns the name of the order being shipped.
func (s *Shipment) OrderName() string {
	return s.orderName
}

// TrackingID returns the assigned tracking id, or nil before shipping.
func (s *Shipment) TrackingID() *kernel.UUID {
	return s.trackingID
}

// AssignTrackingID sets the tracking id. A shipment is tracked under exactly one id.
func (s *Shipment) AssignTrackingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if s.trackingID != nil {
		return ErrTrackingIDAlreadySet
	}
	s.trackingID = &id
	return nil
}
