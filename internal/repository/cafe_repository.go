package repository

import (
	"context"
	"database/sql"
	"errors"

	"webapps/internal/model"
)

// ErrCafeNotFound is returned when a cafe id has no row in the store.
var ErrCafeNotFound = errors.New("cafe not found")

// CafeRepo encapsulates all database queries of the cafe directory.
type CafeRepo struct {
	db *sql.DB
}

// NewCafeRepo constructs a CafeRepo with the provided DB handle.
func NewCafeRepo(db *sql.DB) *CafeRepo {
	return &CafeRepo{db: db}
}

const cafeColumns = `id, name, map_url, img_url, location, seats,
	has_toilet, has_wifi, has_sockets, can_take_calls, coffee_price`

// scanCafe reads one row into a Cafe.  Keeping the column order in a
// single place is the explicit field<->column mapping of this app.
func scanCafe(row interface{ Scan(...any) error }) (*model.Cafe, error) {
	c := new(model.Cafe)
	err := row.Scan(&c.ID, &c.Name, &c.MapURL, &c.ImgURL, &c.Location, &c.Seats,
		&c.HasToilet, &c.HasWifi, &c.HasSockets, &c.CanTakeCalls, &c.CoffeePrice)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListAll returns every cafe ordered by id.
func (r *CafeRepo) ListAll(ctx context.Context) ([]*model.Cafe, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+cafeColumns+` FROM cafes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Cafe
	for rows.Next() {
		c, err := scanCafe(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Random returns one uniformly chosen cafe, or ErrCafeNotFound when the
// table is empty.
func (r *CafeRepo) Random(ctx context.Context) (*model.Cafe, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+cafeColumns+` FROM cafes ORDER BY RANDOM() LIMIT 1`)
	c, err := scanCafe(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCafeNotFound
	}
	return c, err
}

// GetByID fetches a cafe by its surrogate key.
func (r *CafeRepo) GetByID(ctx context.Context, id int64) (*model.Cafe, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+cafeColumns+` FROM cafes WHERE id = ?`, id)
	c, err := scanCafe(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCafeNotFound
	}
	return c, err
}

// FindByLocation returns all cafes whose location exactly equals loc.
// An empty result is not an error; the handler decides how to report it.
func (r *CafeRepo) FindByLocation(ctx context.Context, loc string) ([]*model.Cafe, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+cafeColumns+` FROM cafes WHERE location = ? ORDER BY id`, loc)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Cafe
	for rows.Next() {
		c, err := scanCafe(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Insert persists a new cafe and populates its ID.  A duplicate name
// yields ErrDuplicate.
func (r *CafeRepo) Insert(ctx context.Context, c *model.Cafe) error {
	const q = `INSERT INTO cafes
		(name, map_url, img_url, location, seats,
		 has_toilet, has_wifi, has_sockets, can_take_calls, coffee_price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, c.Name, c.MapURL, c.ImgURL, c.Location, c.Seats,
		c.HasToilet, c.HasWifi, c.HasSockets, c.CanTakeCalls, c.CoffeePrice)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// UpdatePrice sets coffee_price on an existing row.  It returns
// ErrCafeNotFound when no row is affected.
func (r *CafeRepo) UpdatePrice(ctx context.Context, id int64, price string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE cafes SET coffee_price = ? WHERE id = ?`, price, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCafeNotFound
	}
	return nil
}

// Delete removes a cafe by id.
func (r *CafeRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cafes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCafeNotFound
	}
	return nil
}
