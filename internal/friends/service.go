// Package friends maintains the symmetric friendship graph: pairwise
// relationships with a pending/accepted/rejected lifecycle, stored as
// one adjacency row per participant.
package friends

import (
	"context"
	"errors"

	"fittrack/backend/internal/models"
)

// StatusNone is reported when no edge exists between two users.
const StatusNone = "none"

// Service implements the friendship state transitions over a Store.
type Service struct {
	store Store
}

// NewService creates a friendship service backed by the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// SendRequest creates a pending edge on both sides. A rejected edge
// between the pair is purged first so a fresh request can follow a
// rejection; any other existing edge rejects the request.
func (s *Service) SendRequest(ctx context.Context, sender, receiver string) error {
	if sender == receiver {
		return ErrSelfRequest
	}

	existing, err := s.store.EdgeBetween(ctx, sender, receiver)
	switch {
	case err == nil && existing.Status != models.StatusRejected:
		return ErrAlreadyExists
	case err == nil:
		if err := s.store.DeletePair(ctx, sender, receiver); err != nil {
			return err
		}
	case !errors.Is(err, ErrNotFound):
		return err
	}

	return s.store.CreatePair(ctx, sender, receiver)
}

// IncomingRequests lists pending edges initiated by the peer.
func (s *Service) IncomingRequests(ctx context.Context, owner string) ([]models.FriendshipEdge, error) {
	return s.pendingRequests(ctx, owner, false)
}

// OutgoingRequests lists pending edges initiated by the owner.
func (s *Service) OutgoingRequests(ctx context.Context, owner string) ([]models.FriendshipEdge, error) {
	return s.pendingRequests(ctx, owner, true)
}

func (s *Service) pendingRequests(ctx context.Context, owner string, initiated bool) ([]models.FriendshipEdge, error) {
	edges, err := s.store.ListEdges(ctx, owner)
	if err != nil {
		return nil, err
	}

	requests := []models.FriendshipEdge{}
	for _, edge := range edges {
		if edge.Status != models.StatusPending {
			continue
		}
		if (edge.InitiatorEmail == owner) == initiated {
			requests = append(requests, edge)
		}
	}
	return requests, nil
}

// Accept marks the edge with the given id in the owner's adjacency
// list, and its mirror on the peer's list, as accepted.
func (s *Service) Accept(ctx context.Context, owner string, requestID uint) error {
	return s.resolve(ctx, owner, requestID, models.StatusAccepted)
}

// Reject marks the edge with the given id in the owner's adjacency
// list, and its mirror on the peer's list, as rejected.
func (s *Service) Reject(ctx context.Context, owner string, requestID uint) error {
	return s.resolve(ctx, owner, requestID, models.StatusRejected)
}

func (s *Service) resolve(ctx context.Context, owner string, requestID uint, status models.FriendshipStatus) error {
	edge, err := s.store.EdgeByID(ctx, owner, requestID)
	if err != nil {
		return err
	}
	return s.store.SetPairStatus(ctx, owner, edge.FriendEmail, status)
}

// Remove deletes the edge from both adjacency lists regardless of status.
func (s *Service) Remove(ctx context.Context, owner, friend string) error {
	return s.store.DeletePair(ctx, owner, friend)
}

// Cancel withdraws an outgoing request by deleting the edge from both
// sides. It does not verify the edge is still pending.
func (s *Service) Cancel(ctx context.Context, owner, friend string) error {
	return s.store.DeletePair(ctx, owner, friend)
}

// Friends lists the owner's accepted edges.
func (s *Service) Friends(ctx context.Context, owner string) ([]models.FriendshipEdge, error) {
	edges, err := s.store.ListEdges(ctx, owner)
	if err != nil {
		return nil, err
	}

	accepted := []models.FriendshipEdge{}
	for _, edge := range edges {
		if edge.Status == models.StatusAccepted {
			accepted = append(accepted, edge)
		}
	}
	return accepted, nil
}

// StatusBetween reports the owner's relationship status toward the
// given user, or StatusNone when no edge exists.
func (s *Service) StatusBetween(ctx context.Context, owner, friend string) (string, error) {
	edge, err := s.store.EdgeBetween(ctx, owner, friend)
	if errors.Is(err, ErrNotFound) {
		return StatusNone, nil
	}
	if err != nil {
		return "", err
	}
	return string(edge.Status), nil
}
