package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tartampluch/go-partytype/internal/config"
	"github.com/tartampluch/go-partytype/internal/party"
)

// ContactRepository implements party.Store with SQLite.
type ContactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new SQLite contact repository.
func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

const selectContact = `SELECT id, type, name, first_name, last_name, name_order, gender, active, created_at, updated_at FROM contacts`

// Create persists a new contact and sets its ID.
func (r *ContactRepository) Create(ctx context.Context, c *party.Contact) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO contacts (type, name, first_name, last_name, name_order, gender, active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(c.Type), c.Name,
		nullString(c.FirstName), nullString(c.LastName),
		nullString(string(c.NameOrder)), nullString(string(c.Gender)),
		c.Active, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrContactCreate, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrContactCreate, err)
	}
	c.ID = id
	return nil
}

// Get retrieves a contact by its ID.
func (r *ContactRepository) Get(ctx context.Context, id int64) (*party.Contact, error) {
	row := r.db.QueryRowContext(ctx, selectContact+" WHERE id = ?", id)
	c, err := scanContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("contact %d: %w", id, party.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrContactGet, err)
	}
	return c, nil
}

// List returns every contact ordered by name.
func (r *ContactRepository) List(ctx context.Context) ([]party.Contact, error) {
	rows, err := r.db.QueryContext(ctx, selectContact+" ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrContactList, err)
	}
	defer rows.Close()

	var contacts []party.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrContactList, err)
		}
		contacts = append(contacts, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrContactList, err)
	}
	return contacts, nil
}

// Update overwrites every column of an existing contact.
func (r *ContactRepository) Update(ctx context.Context, c *party.Contact) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE contacts SET type = ?, name = ?, first_name = ?, last_name = ?, name_order = ?, gender = ?, active = ?, updated_at = ?
		 WHERE id = ?`,
		string(c.Type), c.Name,
		nullString(c.FirstName), nullString(c.LastName),
		nullString(string(c.NameOrder)), nullString(string(c.Gender)),
		c.Active, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrContactUpdate, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrContactUpdate, err)
	}
	if n == 0 {
		return fmt.Errorf("contact %d: %w", c.ID, party.ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanContact(s scanner) (*party.Contact, error) {
	var (
		c             party.Contact
		typ           string
		first, last   sql.NullString
		order, gender sql.NullString
	)
	err := s.Scan(&c.ID, &typ, &c.Name, &first, &last, &order, &gender, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	c.Type = party.Type(typ)
	c.FirstName = first.String
	c.LastName = last.String
	c.NameOrder = party.NameOrder(order.String)
	c.Gender = party.Gender(gender.String)
	return &c, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
