package friends

import (
	"context"

	"fittrack/backend/internal/models"
)

// Store persists friendship edges. Every relationship is two mirrored
// rows, one per participant; the pair operations must apply to both
// rows within a single transaction.
type Store interface {
	// ListEdges returns all edges owned by the given user. An owner with
	// no adjacency records yields an empty slice, not an error.
	ListEdges(ctx context.Context, owner string) ([]models.FriendshipEdge, error)

	// EdgeByID returns the edge with the given id from the owner's
	// adjacency list, or ErrNotFound.
	EdgeByID(ctx context.Context, owner string, id uint) (models.FriendshipEdge, error)

	// EdgeBetween returns the owner's edge toward friend, or ErrNotFound.
	EdgeBetween(ctx context.Context, owner, friend string) (models.FriendshipEdge, error)

	// CreatePair inserts a pending edge on both participants' lists,
	// recording the initiator.
	CreatePair(ctx context.Context, sender, receiver string) error

	// SetPairStatus updates the status of the owner's edge toward friend
	// and of the mirrored edge on the friend's list. Returns ErrNotFound
	// when the owner's side is missing; a missing mirror is tolerated.
	SetPairStatus(ctx context.Context, owner, friend string, status models.FriendshipStatus) error

	// DeletePair removes the edge from both adjacency lists
	// unconditionally. Deleting an absent pair is not an error.
	DeletePair(ctx context.Context, a, b string) error
}
