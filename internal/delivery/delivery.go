// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a transport-layer server (HTTP today) started by the process
// wiring and stopped through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
