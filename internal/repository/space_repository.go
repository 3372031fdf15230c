package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Space is a bookable resource listed by an owner. PricePerHour is kept as
// the DECIMAL column's string form; formatting for API responses happens in
// the handler layer. OwnerID is a soft reference to users.id.
type Space struct {
	ID           uint64
	Name         string
	Description  string
	Location     string
	PricePerHour string
	OwnerID      uint64
	CreatedAt    time.Time
}

// SpaceRepo encapsulates all database queries related to spaces.
type SpaceRepo struct{ DB *sql.DB }

func NewSpaceRepo(db *sql.DB) *SpaceRepo { return &SpaceRepo{DB: db} }

// Create inserts a new space. On success the ID and CreatedAt fields are
// populated; created_at is read back so callers see the server-assigned value.
func (r *SpaceRepo) Create(ctx context.Context, s *Space) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO spaces (name, description, location, price_per_hour, owner_id) VALUES (?,?,?,?,?)",
		s.Name, s.Description, s.Location, s.PricePerHour, s.OwnerID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return r.DB.QueryRowContext(ctx,
		"SELECT created_at FROM spaces WHERE id=?", s.ID).Scan(&s.CreatedAt)
}

// GetByID fetches a space by id, returning ErrSpaceNotFound when absent.
func (r *SpaceRepo) GetByID(ctx context.Context, id uint64) (*Space, error) {
	var s Space
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,description,location,price_per_hour,owner_id,created_at FROM spaces WHERE id=? LIMIT 1",
		id).Scan(&s.ID, &s.Name, &s.Description, &s.Location, &s.PricePerHour, &s.OwnerID, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns all spaces ordered by id.
func (r *SpaceRepo) List(ctx context.Context) ([]*Space, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,description,location,price_per_hour,owner_id,created_at FROM spaces ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Space
	for rows.Next() {
		s := new(Space)
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Location, &s.PricePerHour, &s.OwnerID, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
