package identity

import (
	"github.com/google/uuid"
)

// Identity is the resolved actor behind a request: a stable id plus
// the display name the auth service knows it by. It is referenced by
// id everywhere else and never stored by this core.
type Identity struct {
	ID          uuid.UUID
	DisplayName string
}

// TokenVerifier is the external auth collaborator. It validates a
// bearer credential and maps it to an Identity, or rejects it.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}
