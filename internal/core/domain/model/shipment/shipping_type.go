package shipment

import (
	"errors"
	"fmt"
)

// ErrInvalidShippingType is returned when a carrier name is not a member of
// the enumerated shipping types.
var ErrInvalidShippingType = errors.New("shipping type is not available")

// Type is the enumerated carrier a shipment travels with. The set of valid
// carriers is fixed and exposed through AvailableTypes, which is also the
// single source of truth shipment creation validates against.
type Type string

const (
	TypeNovaPost     Type = "Nova Post"
	TypeUkrposhta    Type = "Ukrposhta"
	TypeMeestExpress Type = "Meest Express"
	TypeSelfPickup   Type = "Self Pickup"
)

// AvailableTypes returns the enumerated carriers in a stable order.
func AvailableTypes() []Type {
	return []Type{TypeNovaPost, TypeUkrposhta, TypeMeestExpress, TypeSelfPickup}
}

// TypeFromString validates a carrier name against the enumerated set.
// Returns ErrInvalidShippingType for any name outside of AvailableTypes.
func TypeFromString(s string) (Type, error) {
	for _, t := range AvailableTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidShippingType, s)
}

// String returns the carrier name.
func (t Type) String() string {
	return string(t)
}

// Validate checks that the type is a member of the enumerated set.
func (t Type) Validate() error {
	_, err := TypeFromString(string(t))
	return err
}
