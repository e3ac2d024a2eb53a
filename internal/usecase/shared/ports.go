package shared

import (
	"context"

	"calldesk-booking/internal/domain/call"
	"calldesk-booking/internal/domain/resource"
)

// ResourceDirectory resolves resources by id. Implementations are read-only
// and safe for concurrent use.
type ResourceDirectory interface {
	FindByID(ctx context.Context, id string) (*resource.Resource, error)
	FindAll(ctx context.Context) ([]*resource.Resource, error)
}

// Telephony hands live calls over to a human agent.
type Telephony interface {
	// Enabled is false when no provider credentials are configured.
	Enabled() bool
	Transfer(ctx context.Context, t call.Transfer) error
}
