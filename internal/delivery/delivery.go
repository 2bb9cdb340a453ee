// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, ...) started by
// the application container. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
