package ads1119

import (
	"errors"
	"fmt"
)

// ErrConversionTimeout is returned when DRDY was not observed within the
// configured number of status polls.
var ErrConversionTimeout = errors.New("ads1119: conversion timeout")

// TransportError wraps a failed bus transaction. The underlying error is
// whatever the bus reported.
type TransportError struct {
	Op  Command
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ads1119: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err came from the bus.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
