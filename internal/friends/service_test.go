package friends

import (
	"context"
	"errors"
	"testing"

	"fittrack/backend/internal/models"
)

// memoryStore keeps mirrored adjacency lists in a map, matching the
// pair semantics the gorm-backed store provides.
type memoryStore struct {
	edges  map[string][]models.FriendshipEdge
	nextID uint
}

func newMemoryStore() *memoryStore {
	return &memoryStore{edges: make(map[string][]models.FriendshipEdge), nextID: 1}
}

func (m *memoryStore) ListEdges(_ context.Context, owner string) ([]models.FriendshipEdge, error) {
	out := make([]models.FriendshipEdge, len(m.edges[owner]))
	copy(out, m.edges[owner])
	return out, nil
}

func (m *memoryStore) EdgeByID(_ context.Context, owner string, id uint) (models.FriendshipEdge, error) {
	for _, edge := range m.edges[owner] {
		if edge.ID == id {
			return edge, nil
		}
	}
	return models.FriendshipEdge{}, ErrNotFound
}

func (m *memoryStore) EdgeBetween(_ context.Context, owner, friend string) (models.FriendshipEdge, error) {
	for _, edge := range m.edges[owner] {
		if edge.FriendEmail == friend {
			return edge, nil
		}
	}
	return models.FriendshipEdge{}, ErrNotFound
}

func (m *memoryStore) CreatePair(_ context.Context, sender, receiver string) error {
	for _, pair := range [][2]string{{sender, receiver}, {receiver, sender}} {
		edge := models.FriendshipEdge{
			OwnerEmail:     pair[0],
			FriendEmail:    pair[1],
			Status:         models.StatusPending,
			InitiatorEmail: sender,
		}
		edge.ID = m.nextID
		m.nextID++
		m.edges[pair[0]] = append(m.edges[pair[0]], edge)
	}
	return nil
}

func (m *memoryStore) SetPairStatus(_ context.Context, owner, friend string, status models.FriendshipStatus) error {
	found := false
	for i, edge := range m.edges[owner] {
		if edge.FriendEmail == friend {
			m.edges[owner][i].Status = status
			found = true
		}
	}
	if !found {
		return ErrNotFound
	}
	for i, edge := range m.edges[friend] {
		if edge.FriendEmail == owner {
			m.edges[friend][i].Status = status
		}
	}
	return nil
}

func (m *memoryStore) DeletePair(_ context.Context, a, b string) error {
	for _, pair := range [][2]string{{a, b}, {b, a}} {
		kept := m.edges[pair[0]][:0]
		for _, edge := range m.edges[pair[0]] {
			if edge.FriendEmail != pair[1] {
				kept = append(kept, edge)
			}
		}
		m.edges[pair[0]] = kept
	}
	return nil
}

func TestSendRequestCreatesMirroredPendingEdges(t *testing.T) {
	store := newMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	if err := svc.SendRequest(ctx, "alice@test.com", "bob@test.com"); err != nil {
		t.Fatalf("SendRequest failed: %v", err)
	}

	for _, owner := range []string{"alice@test.com", "bob@test.com"} {
		edges := store.edges[owner]
		if len(edges) != 1 {
			t.Fatalf("expected 1 edge for %s got %d", owner, len(edges))
		}
		if edges[0].Status != models.StatusPending {
			t.Errorf("expected pending status for %s got %s", owner, edges[0].Status)
		}
		if edges[0].InitiatorEmail != "alice@test.com" {
			t.Errorf("expected initiator alice for %s got %s", owner, edges[0].InitiatorEmail)
		}
	}
}

func TestSendRequestToSelf(t *testing.T) {
	svc := NewService(newMemoryStore())

	err := svc.SendRequest(context.Background(), "alice@test.com", "alice@test.com")
	if !errors.Is(err, ErrSelfRequest) {
		t.Fatalf("expected ErrSelfRequest got %v", err)
	}
}

func TestSendRequestDuplicate(t *testing.T) {
	store := newMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	if err := svc.SendRequest(ctx, "alice@test.com", "bob@test.com"); err != nil {
		t.Fatalf("SendRequest failed: %v", err)
	}

	// A duplicate in either direction is rejected while the edge is pending.
	if err := svc.SendRequest(ctx, "alice@test.com", "bob@test.com"); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists got %v", err)
	}
	if err := svc.SendRequest(ctx, "bob@test.com", "alice@test.com"); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists for reverse direction got %v", err)
	}

	if len(store.edges["alice@test.com"]) != 1 || len(store.edges["bob@test.com"]) != 1 {
		t.Fatalf("duplicate request must not add edges")
	}
}

func TestAcceptMirrorsStatus(t *testing.T) {
	store := newMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	if err := svc.SendRequest(ctx, "alice@test.com", "bob@test.com"); err != nil {
		t.Fatalf("SendRequest failed: %v", err)
	}

	// Bob accepts using the id of his own edge.
	bobEdge := store.edges["bob@test.com"][0]
	if err := svc.Accept(ctx, "bob@test.com", bobEdge.ID); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}

	for _, owner := range []string{"alice@test.com", "bob@test.com"} {
		if got := store.edges[owner][0].Status; got != models.StatusAccepted {
			t.Errorf("expected accepted status for %s got %s", owner, got)
		}
	}

	friends, err := svc.Friends(ctx, "alice@test.com")
	if err != nil {
		t.Fatalf("Friends failed: %v", err)
	}
	if len(friends) != 1 || friends[0].FriendEmail != "bob@test.com" {
		t.Fatalf("expected bob in alice's friends got %+v", friends)
	}
}

func TestAcceptUnknownRequest(t *testing.T) {
	svc := NewService(newMemoryStore())

	err := svc.Accept(context.Background(), "alice@test.com", 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestRejectThenResendReplacesEdge(t *testing.T) {
	store := newMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	if err := svc.SendRequest(ctx, "alice@test.com", "bob@test.com"); err != nil {
		t.Fatalf("SendRequest failed: %v", err)
	}
	bobEdge := store.edges["bob@test.com"][0]
	if err := svc.Reject(ctx, "bob@test.com", bobEdge.ID); err != nil {
		t.Fatalf("Reject failed: %v", err)
	}

	// The rejected edge is purged and a fresh pending pair created,
	// this time initiated by bob.
	if err := svc.SendRequest(ctx, "bob@test.com", "alice@test.com"); err != nil {
		t.Fatalf("resend after rejection failed: %v", err)
	}

	for _, owner := range []string{"alice@test.com", "bob@test.com"} {
		edges := store.edges[owner]
		if len(edges) != 1 {
			t.Fatalf("expected 1 edge for %s got %d", owner, len(edges))
		}
		if edges[0].Status != models.StatusPending {
			t.Errorf("expected pending status for %s got %s", owner, edges[0].Status)
		}
		if edges[0].InitiatorEmail != "bob@test.com" {
			t.Errorf("expected new initiator bob for %s got %s", owner, edges[0].InitiatorEmail)
		}
	}
}

func TestRemoveDeletesBothSides(t *testing.T) {
	store := newMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	if err := svc.SendRequest(ctx, "alice@test.com", "bob@test.com"); err != nil {
		t.Fatalf("SendRequest failed: %v", err)
	}
	bobEdge := store.edges["bob@test.com"][0]
	if err := svc.Accept(ctx, "bob@test.com", bobEdge.ID); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}

	if err := svc.Remove(ctx, "alice@test.com", "bob@test.com"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if len(store.edges["alice@test.com"]) != 0 || len(store.edges["bob@test.com"]) != 0 {
		t.Fatalf("expected both adjacency lists empty after remove")
	}
}

func TestPendingRequestDirections(t *testing.T) {
	store := newMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	if err := svc.SendRequest(ctx, "alice@test.com", "bob@test.com"); err != nil {
		t.Fatalf("SendRequest failed: %v", err)
	}
	if err := svc.SendRequest(ctx, "carol@test.com", "alice@test.com"); err != nil {
		t.Fatalf("SendRequest failed: %v", err)
	}

	incoming, err := svc.IncomingRequests(ctx, "alice@test.com")
	if err != nil {
		t.Fatalf("IncomingRequests failed: %v", err)
	}
	if len(incoming) != 1 || incoming[0].FriendEmail != "carol@test.com" {
		t.Fatalf("expected carol's request incoming got %+v", incoming)
	}

	outgoing, err := svc.OutgoingRequests(ctx, "alice@test.com")
	if err != nil {
		t.Fatalf("OutgoingRequests failed: %v", err)
	}
	if len(outgoing) != 1 || outgoing[0].FriendEmail != "bob@test.com" {
		t.Fatalf("expected request to bob outgoing got %+v", outgoing)
	}
}

func TestCancelWithdrawsOutgoingRequest(t *testing.T) {
	store := newMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	if err := svc.SendRequest(ctx, "alice@test.com", "bob@test.com"); err != nil {
		t.Fatalf("SendRequest failed: %v", err)
	}
	if err := svc.Cancel(ctx, "alice@test.com", "bob@test.com"); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}

	incoming, err := svc.IncomingRequests(ctx, "bob@test.com")
	if err != nil {
		t.Fatalf("IncomingRequests failed: %v", err)
	}
	if len(incoming) != 0 {
		t.Fatalf("expected no incoming requests after cancel got %+v", incoming)
	}
}

func TestStatusBetween(t *testing.T) {
	store := newMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	status, err := svc.StatusBetween(ctx, "alice@test.com", "bob@test.com")
	if err != nil {
		t.Fatalf("StatusBetween failed: %v", err)
	}
	if status != StatusNone {
		t.Fatalf("expected %q got %q", StatusNone, status)
	}

	if err := svc.SendRequest(ctx, "alice@test.com", "bob@test.com"); err != nil {
		t.Fatalf("SendRequest failed: %v", err)
	}

	status, err = svc.StatusBetween(ctx, "alice@test.com", "bob@test.com")
	if err != nil {
		t.Fatalf("StatusBetween failed: %v", err)
	}
	if status != string(models.StatusPending) {
		t.Fatalf("expected pending got %q", status)
	}
}
