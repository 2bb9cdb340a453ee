package service

import "time"

// Clock abstracts the current time so the schedule read path stays
// deterministic under test.
type Clock interface {
	// Now returns the current instant.
	Now() time.Time
}
