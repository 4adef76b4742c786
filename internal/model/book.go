// Package model defines the plain record types persisted by the repositories.
// Each struct mirrors one table row; the column mapping is explicit in the
// repository SQL rather than derived from tags or reflection.
package model

// Book is one entry of the personal book-rating catalogue.  Title and
// Author each carry a unique constraint in the store.
type Book struct {
	ID     int64   // books.id, store-assigned surrogate key
	Title  string  // books.title, unique
	Author string  // books.author, unique
	Rating float64 // books.rating, 0..5 decimal
}
