package directory

import (
	"github.com/google/uuid"
)

// Output DTOs
type ChannelDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

type DirectConversationDTO struct {
	ID           uuid.UUID    `json:"id"`
	Participants [2]uuid.UUID `json:"participants"`
}

// Involves reports whether id is one of the two participants.
func (c *DirectConversationDTO) Involves(id uuid.UUID) bool {
	return c.Participants[0] == id || c.Participants[1] == id
}
