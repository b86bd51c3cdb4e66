// Package delivery defines the contract every transport entry point fulfils.
package delivery

import "context"

// Delivery is a long-running transport server started by the application
// runner. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
