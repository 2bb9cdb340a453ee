// Package clock provides the system implementation of the domain clock.
package clock

import (
	"time"

	"mercado/internal/domain/service"
)

type systemClock struct{}

// New returns a clock backed by the system time.
func New() service.Clock {
	return systemClock{}
}

// Now returns the current instant.
func (systemClock) Now() time.Time {
	return time.Now()
}
