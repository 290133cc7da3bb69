package offer

import (
	"fmt"

	"matching/internal/pkg/errs"
)

// Transport enumerates the delivery methods a courier can propose.
type Transport int

const (
	// TransportUnknown represents an invalid or undefined transport method.
	TransportUnknown Transport = iota

	// Motorcycle transport.
	Motorcycle

	// Car transport.
	Car

	// Bicycle transport.
	Bicycle

	// Walking transport.
	Walking

	// Other covers any method outside the enumerated ones.
	Other
)

func getTransportStrings() map[Transport]string {
	return map[Transport]string{
		TransportUnknown: "unknown",
		Motorcycle:       "motorcycle",
		Car:              "car",
		Bicycle:          "bicycle",
		Walking:          "walking",
		Other:            "other",
	}
}

// TransportFromString parses a transport method from its wire representation.
func TransportFromString(s string) (Transport, error) {
	for transport, str := range getTransportStrings() {
		if str == s && transport != TransportUnknown {
			return transport, nil
		}
	}
	return TransportUnknown, errs.NewValueIsInvalidErrorWithCause("transport",
		fmt.Errorf("%q is not a valid transport method", s))
}

// Validate checks if the Transport value is one of the enumerated methods.
func (t Transport) Validate() error {
	if t == TransportUnknown {
		return errs.NewValueIsInvalidErrorWithCause("transport",
			fmt.Errorf("%d is not a valid transport method", t))
	}
	if _, ok := getTransportStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transport",
			fmt.Errorf("%d is not a valid transport method", t))
	}
	return nil
}

// String returns the wire representation of the transport method.
func (t Transport) String() string {
	if str, ok := getTransportStrings()[t]; ok {
		return str
	}
	return "unknown"
}
