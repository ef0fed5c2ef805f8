// Package delivery defines the contract every transport front-end satisfies.
package delivery

import "context"

// Delivery is a long-running transport (HTTP today) started by the app wiring.
type Delivery interface {
	Serve(ctx context.Context) error
}
