package party

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tartampluch/go-partytype/internal/config"
)

// Store persists contacts. Implementations return ErrNotFound (possibly
// wrapped) for unknown ids.
type Store interface {
	Create(ctx context.Context, c *Contact) error
	Get(ctx context.Context, id int64) (*Contact, error)
	List(ctx context.Context) ([]Contact, error)
	Update(ctx context.Context, c *Contact) error
}

// Service owns the create and write entry points. Every incoming patch is
// normalized for its contact type before it reaches the store.
type Service struct {
	store Store
	clock Clock
}

// NewService wires a Service. A nil clock falls back to RealClock.
func NewService(store Store, clock Clock) *Service {
	if clock == nil {
		clock = RealClock{}
	}
	return &Service{store: store, clock: clock}
}

// Create stores a new contact built from the defaults of opts and p.
func (s *Service) Create(ctx context.Context, opts DefaultOptions, p Patch) (Contact, error) {
	p = s.guard(ctx, p)
	if dn, ok := p.DisplayName.Get(); ok && dn != "" {
		p.Name = Some(dn)
	}

	c := normalize(Defaults(opts).Apply(p))
	if err := Validate(c); err != nil {
		return Contact{}, fmt.Errorf("%s: %w", config.ErrContactCreate, err)
	}

	now := s.clock.Now()
	c.CreatedAt, c.UpdatedAt = now, now
	if err := s.store.Create(ctx, &c); err != nil {
		return Contact{}, fmt.Errorf("%s: %w", config.ErrContactCreate, err)
	}

	slog.InfoContext(ctx, config.MsgContactCreated,
		config.LogKeyComponent, config.CompParty,
		config.LogKeyID, c.ID,
		config.LogKeyType, c.Type,
		config.LogKeyName, c.Name,
	)
	return c, nil
}

// Write applies p to every contact in ids. All records are validated before
// any of them is stored.
func (s *Service) Write(ctx context.Context, ids []int64, p Patch) error {
	p = s.guard(ctx, p)

	updated := make([]Contact, 0, len(ids))
	for _, id := range ids {
		cur, err := s.store.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("%s %d: %w", config.ErrContactUpdate, id, err)
		}
		c := normalize(cur.Apply(p))
		if err := Validate(c); err != nil {
			return fmt.Errorf("%s %d: %w", config.ErrContactUpdate, id, err)
		}
		updated = append(updated, c)
	}

	now := s.clock.Now()
	for i := range updated {
		updated[i].UpdatedAt = now
		if err := s.store.Update(ctx, &updated[i]); err != nil {
			return fmt.Errorf("%s %d: %w", config.ErrContactUpdate, updated[i].ID, err)
		}
	}

	slog.InfoContext(ctx, config.MsgContactWritten,
		config.LogKeyComponent, config.CompParty,
		config.LogKeyIDs, ids,
	)
	return nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Contact, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Contact, error) {
	return s.store.List(ctx)
}

func (s *Service) guard(ctx context.Context, p Patch) Patch {
	g := Guard(p)
	if g != p {
		slog.DebugContext(ctx, config.MsgTypeCleanup, config.LogKeyComponent, config.CompParty)
	}
	return g
}
