// Package delivery defines the contract shared by all inbound transports.
package delivery

import "context"

// Delivery is implemented by every inbound surface (HTTP today).
// Serve blocks until the surface stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
