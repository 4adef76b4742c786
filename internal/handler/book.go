package handler // handler contains the HTTP handlers of the four catalogue apps

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"webapps/internal/model"
	"webapps/internal/repository"
)

// BookHandler serves the book catalogue pages.  Every route is a single
// repository round-trip followed by a render or redirect; no state lives
// outside the store.
type BookHandler struct {
	Repo *repository.BookRepo
}

// NewBookHandler constructs a BookHandler and panics if the repository is nil.
func NewBookHandler(repo *repository.BookRepo) *BookHandler {
	if repo == nil {
		panic("nil repository passed to NewBookHandler")
	}
	return &BookHandler{Repo: repo}
}

// Home handles GET / and lists every book ordered by title ascending.
func (h *BookHandler) Home(c echo.Context) error {
	books, err := h.Repo.ListByTitle(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load the library")
	}
	return c.Render(http.StatusOK, "index.html", map[string]any{"Books": books})
}

// AddForm handles GET /add and renders an empty add form.
func (h *BookHandler) AddForm(c echo.Context) error {
	return c.Render(http.StatusOK, "add.html", map[string]any{
		"Error": "", "Title": "", "Author": "", "Rating": "",
	})
}

// Add handles POST /add.  A malformed rating or a duplicate title/author
// re-renders the form with the submitted values and a message instead of
// persisting anything.
func (h *BookHandler) Add(c echo.Context) error {
	title := strings.TrimSpace(c.FormValue("book_name"))
	author := strings.TrimSpace(c.FormValue("author"))
	ratingRaw := strings.TrimSpace(c.FormValue("rating"))

	again := func(status int, msg string) error {
		return c.Render(status, "add.html", map[string]any{
			"Error": msg, "Title": title, "Author": author, "Rating": ratingRaw,
		})
	}

	if title == "" || author == "" {
		return again(http.StatusBadRequest, "title and author are required")
	}
	rating, err := strconv.ParseFloat(ratingRaw, 64)
	if err != nil {
		return again(http.StatusBadRequest, "rating must be a decimal number like 4.5")
	}

	book := &model.Book{Title: title, Author: author, Rating: rating}
	if err := h.Repo.Insert(c.Request().Context(), book); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return again(http.StatusConflict, "a book with that title or author is already in the library")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not save the book")
	}
	publishChange(c, "books", "book", "created", book.ID, book.Title)
	return c.Redirect(http.StatusSeeOther, "/")
}

// EditForm handles GET /edit/:id and renders the book's current values.
func (h *BookHandler) EditForm(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	book, err := h.Repo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "book not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load the book")
	}
	return c.Render(http.StatusOK, "edit.html", map[string]any{"Book": book})
}

// Edit handles POST /edit/:id and overwrites title, author and rating.
func (h *BookHandler) Edit(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	title := strings.TrimSpace(c.FormValue("book_name"))
	author := strings.TrimSpace(c.FormValue("author"))
	ratingRaw := strings.TrimSpace(c.FormValue("rating"))

	again := func(status int, msg string) error {
		return c.Render(status, "edit.html", map[string]any{
			"Error": msg,
			"Book":  &model.Book{ID: id, Title: title, Author: author},
		})
	}

	if title == "" || author == "" {
		return again(http.StatusBadRequest, "title and author are required")
	}
	rating, err := strconv.ParseFloat(ratingRaw, 64)
	if err != nil {
		return again(http.StatusBadRequest, "rating must be a decimal number like 4.5")
	}

	book := &model.Book{ID: id, Title: title, Author: author, Rating: rating}
	if err := h.Repo.Update(c.Request().Context(), book); err != nil {
		switch {
		case errors.Is(err, repository.ErrBookNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "book not found")
		case errors.Is(err, repository.ErrDuplicate):
			return again(http.StatusConflict, "another book already uses that title or author")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not update the book")
	}
	publishChange(c, "books", "book", "updated", book.ID, book.Title)
	return c.Redirect(http.StatusSeeOther, "/")
}

// Delete handles POST /delete/:id and removes the row.  The freed id is
// never reassigned by the store.
func (h *BookHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.Repo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "book not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete the book")
	}
	publishChange(c, "books", "book", "deleted", id, "")
	return c.Redirect(http.StatusSeeOther, "/")
}
