//go:generate go run go.uber.org/mock/mockgen -source=collaborators.go -destination=../mocks/mock_collaborators.go -package=mocks
package contract

import (
	"context"
	"presence-lab/domain"
	"presence-lab/domain/event"
)

// IdentityVerifier validates an opaque access token.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (domain.Identity, error)
}

// AvatarSource returns the validated, opaque avatar descriptor of a user.
type AvatarSource interface {
	AvatarFor(ctx context.Context, userID domain.UserID) (string, error)
}

// Transport delivers payloads to live connections. Delivery to a connection
// that is already gone is a no-op for the transport.
type Transport interface {
	SendToConnection(ctx context.Context, connID domain.ConnectionID, e event.PresenceEvent) error
	SendToConnections(ctx context.Context, connIDs []domain.ConnectionID, e event.PresenceEvent) error
}
