package repository

import (
	"context"
	"database/sql"
	"errors"

	"webapps/internal/model"
)

// ErrMovieNotFound is returned when a movie id has no row in the store.
var ErrMovieNotFound = errors.New("movie not found")

// MovieRepo encapsulates all database queries of the movie tracker.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo constructs a MovieRepo with the provided DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

const movieColumns = `id, title, year, description, rating, ranking, review, img_url`

func scanMovie(row interface{ Scan(...any) error }) (*model.Movie, error) {
	m := new(model.Movie)
	err := row.Scan(&m.ID, &m.Title, &m.Year, &m.Description,
		&m.Rating, &m.Ranking, &m.Review, &m.ImgURL)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// RankByRating reorders the whole collection and persists the result in
// one transaction: rows sorted by rating descending with unrated movies
// last, ranks assigned 1..N.  The returned slice carries the fresh
// rankings in that exact order.  Ranking is derived state; it is only
// ever written here.
func (r *MovieRepo) RankByRating(ctx context.Context) ([]*model.Movie, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// (rating IS NULL) sorts unrated rows after every rated one
	// regardless of how the engine orders NULL under DESC.
	rows, err := tx.QueryContext(ctx,
		`SELECT `+movieColumns+` FROM movies ORDER BY (rating IS NULL), rating DESC`)
	if err != nil {
		return nil, err
	}

	var out []*model.Movie
	for rows.Next() {
		var m *model.Movie
		if m, err = scanMovie(rows); err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, m)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i, m := range out {
		rank := int64(i + 1)
		if _, err = tx.ExecContext(ctx, `UPDATE movies SET ranking = ? WHERE id = ?`, rank, m.ID); err != nil {
			return nil, err
		}
		m.Ranking = &rank
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a movie by its surrogate key.
func (r *MovieRepo) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+movieColumns+` FROM movies WHERE id = ?`, id)
	m, err := scanMovie(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMovieNotFound
	}
	return m, err
}

// Insert persists a newly imported movie and populates its ID.  Rating,
// ranking and review stay NULL until the user rates it.  A duplicate
// title yields ErrDuplicate.
func (r *MovieRepo) Insert(ctx context.Context, m *model.Movie) error {
	const q = `INSERT INTO movies (title, year, description, rating, ranking, review, img_url)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.Title, m.Year, m.Description,
		m.Rating, m.Ranking, m.Review, m.ImgURL)
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
	m.ID = id
	return nil
}

// SetRatingAndReview stores the user's rating and review for one movie.
// It returns ErrMovieNotFound when no row is affected.
func (r *MovieRepo) SetRatingAndReview(ctx context.Context, id int64, rating float64, review string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE movies SET rating = ?, review = ? WHERE id = ?`, rating, review, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMovieNotFound
	}
	return nil
}

// Delete removes a movie by id.
func (r *MovieRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMovieNotFound
	}
	return nil
}
