package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to define custom error values

	"webapps/internal/model" // model holds the plain record types
)

// ErrBookNotFound is returned when a book id has no row in the store.
var ErrBookNotFound = errors.New("book not found")

// BookRepo encapsulates all database queries of the book catalogue.  It
// depends on a sql.DB connection configured at startup.
type BookRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewBookRepo constructs a BookRepo with the provided DB handle.  This
// allows dependency injection of the database in tests and at startup.
func NewBookRepo(db *sql.DB) *BookRepo {
	return &BookRepo{db: db}
}

// ListByTitle returns every book ordered by title ascending, the order
// the catalogue page always shows.
func (r *BookRepo) ListByTitle(ctx context.Context) ([]*model.Book, error) {
	const q = `SELECT id, title, author, rating FROM books ORDER BY title`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Book
	for rows.Next() {
		b := new(model.Book)
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Rating); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a book by its surrogate key.  It returns
// ErrBookNotFound if no row exists.
func (r *BookRepo) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	const q = `SELECT id, title, author, rating FROM books WHERE id = ?`
	var b model.Book
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.Title, &b.Author, &b.Rating); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Insert persists a new book.  On success the book's ID field is
// populated with the store-assigned key.  A duplicate title or author
// yields ErrDuplicate.
func (r *BookRepo) Insert(ctx context.Context, b *model.Book) error {
	const q = `INSERT INTO books (title, author, rating) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, b.Title, b.Author, b.Rating)
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
	b.ID = id
	return nil
}

// Update overwrites title, author and rating of an existing row.  It
// returns ErrBookNotFound when no row is affected and ErrDuplicate when
// the new title or author collides with another row.
func (r *BookRepo) Update(ctx context.Context, b *model.Book) error {
	const q = `UPDATE books SET title = ?, author = ?, rating = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, b.Title, b.Author, b.Rating, b.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBookNotFound
	}
	return nil
}

// Delete removes a book by id.  Because the key column autoincrements,
// the deleted id is never handed out again.
func (r *BookRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM books WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBookNotFound
	}
	return nil
}
