package service

import (
	"sync"
	"sync/atomic"
	"time"

	"postl-admin-backend/internal/database/models"

	"github.com/google/uuid"
)

// Event names a board transition
type Event string

const (
	EventFetchCompleted  Event = "fetch-completed"
	EventFetchFailed     Event = "fetch-failed"
	EventCreateSubmitted Event = "create-submitted"
	EventUpdateSubmitted Event = "update-submitted"
	EventToggleRequested Event = "toggle-requested"
	EventDeleteRequested Event = "delete-requested"
)

// Transition is one named change to the board
type Transition struct {
	Event    Event
	Tenants  []models.Tenant
	TenantID uuid.UUID
	At       time.Time
	Err      error
}

// Snapshot is an immutable view of the tenant list
type Snapshot struct {
	Version   uint64
	FetchedAt time.Time
	LastEvent Event
	LastError string
	// Stale is set after a failed fetch or a mutation not yet followed by a fetch
	Stale bool

	tenants []models.Tenant
}

// Tenants returns a copy of the snapshot's tenants
func (s *Snapshot) Tenants() []models.Tenant {
	return cloneTenants(s.tenants)
}

// Len returns the number of tenants in the snapshot
func (s *Snapshot) Len() int {
	return len(s.tenants)
}

// Find looks a tenant up by id
func (s *Snapshot) Find(id uuid.UUID) (models.Tenant, bool) {
	for _, t := range s.tenants {
		if t.ID == id {
			return t, true
		}
	}
	return models.Tenant{}, false
}

func (s *Snapshot) apply(tr Transition) *Snapshot {
	next := &Snapshot{
		Version:   s.Version + 1,
		FetchedAt: s.FetchedAt,
		LastEvent: tr.Event,
		Stale:     s.Stale,
		tenants:   s.tenants,
	}

	switch tr.Event {
	case EventFetchCompleted:
		next.tenants = cloneTenants(tr.Tenants)
		next.FetchedAt = tr.At
		next.Stale = false
	case EventFetchFailed:
		next.Stale = true
	default:
		next.Stale = true
	}
	if tr.Err != nil {
		next.LastError = tr.Err.Error()
	}
	return next
}

func cloneTenants(in []models.Tenant) []models.Tenant {
	if in == nil {
		return []models.Tenant{}
	}
	out := make([]models.Tenant, len(in))
	copy(out, in)
	return out
}

// Board owns the in-memory tenant list. Readers get the current snapshot
// without locking; transitions are serialised and each produces a new snapshot.
type Board struct {
	mu      sync.Mutex
	current atomic.Pointer[Snapshot]
}

// NewBoard creates an empty board
func NewBoard() *Board {
	b := &Board{}
	b.current.Store(&Snapshot{tenants: []models.Tenant{}})
	return b
}

// Current returns the latest snapshot
func (b *Board) Current() *Snapshot {
	return b.current.Load()
}

// Apply runs tr against the current snapshot and publishes the result
func (b *Board) Apply(tr Transition) *Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	next := b.current.Load().apply(tr)
	b.current.Store(next)
	return next
}
