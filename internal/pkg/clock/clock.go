// Package clock abstracts the time source so draft timestamps and expiry
// can be pinned in tests
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=clockmock github.com/KirkDiggler/charforge/internal/pkg/clock Clock

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// Real implements Clock using the system time, in UTC
type Real struct{}

// Now returns the current UTC time
func (Real) Now() time.Time {
	return time.Now().UTC()
}

// New returns the system clock
func New() Clock {
	return Real{}
}
