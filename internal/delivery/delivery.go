// Package delivery holds the servers exposing the use cases.
package delivery

import "context"

// Delivery is a server started by the application once every dependency is built.
type Delivery interface {
	Serve(ctx context.Context) error
}
