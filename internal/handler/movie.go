package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"webapps/internal/model"
	"webapps/internal/repository"
	"webapps/internal/tmdb"
)

// MovieHandler serves the movie-rating tracker.  Besides the repository it
// depends on the external metadata service used by the add flow.
type MovieHandler struct {
	Repo *repository.MovieRepo
	Meta *tmdb.Client
}

// NewMovieHandler constructs a MovieHandler and panics if a dependency is nil.
func NewMovieHandler(repo *repository.MovieRepo, meta *tmdb.Client) *MovieHandler {
	if repo == nil || meta == nil {
		panic("nil dependency passed to NewMovieHandler")
	}
	return &MovieHandler{Repo: repo, Meta: meta}
}

// Home handles GET /.  It recomputes and persists the ranking of every
// movie before rendering, so the page always shows ranks 1..N matching
// the current ratings, best first, unrated last.
func (h *MovieHandler) Home(c echo.Context) error {
	movies, err := h.Repo.RankByRating(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load the movie list")
	}
	return c.Render(http.StatusOK, "index.html", map[string]any{"Movies": movies})
}

// AddForm handles GET /add and renders the title search form.
func (h *MovieHandler) AddForm(c echo.Context) error {
	return c.Render(http.StatusOK, "add.html", map[string]any{"Error": "", "Title": ""})
}

// Add handles POST /add.  It searches the metadata service for the
// submitted title and renders the matches for the user to pick from.
// An upstream failure surfaces as a server error; nothing is persisted
// at this stage.
func (h *MovieHandler) Add(c echo.Context) error {
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return c.Render(http.StatusBadRequest, "add.html", map[string]any{
			"Error": "please enter a movie title", "Title": title,
		})
	}
	options, err := h.Meta.Search(c.Request().Context(), title)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "movie metadata service unavailable")
	}
	return c.Render(http.StatusOK, "select.html", map[string]any{"Options": options})
}

// Find handles GET /find/:external_id.  It fetches the full metadata for
// the chosen search result, inserts a new movie with no rating yet and
// redirects to that movie's edit page.  A failed or malformed metadata
// response inserts nothing.
func (h *MovieHandler) Find(c echo.Context) error {
	externalID, err := strconv.ParseInt(c.Param("external_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	details, err := h.Meta.Details(c.Request().Context(), externalID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "movie metadata service unavailable")
	}
	// the year is the leading "YYYY" of the release date
	if len(details.ReleaseDate) < 4 {
		return echo.NewHTTPError(http.StatusBadGateway, "metadata response missing release date")
	}
	year, err := strconv.Atoi(details.ReleaseDate[:4])
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "metadata response has malformed release date")
	}

	movie := &model.Movie{
		Title:       details.Title,
		Year:        year,
		Description: details.Overview,
		ImgURL:      tmdb.PosterBaseURL + details.PosterPath,
	}
	if err := h.Repo.Insert(c.Request().Context(), movie); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return echo.NewHTTPError(http.StatusConflict, "that movie is already in the list")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not save the movie")
	}
	publishChange(c, "movies", "movie", "created", movie.ID, movie.Title)
	return c.Redirect(http.StatusFound, fmt.Sprintf("/edit/%d", movie.ID))
}

// EditForm handles GET /edit/:id and renders the rating form with the
// movie's current values.
func (h *MovieHandler) EditForm(c echo.Context) error {
	movie, err := h.getMovie(c)
	if err != nil {
		return err
	}
	var rating, review string
	if movie.Rating != nil {
		rating = strconv.FormatFloat(*movie.Rating, 'f', 1, 64)
	}
	if movie.Review != nil {
		review = *movie.Review
	}
	return c.Render(http.StatusOK, "edit.html", map[string]any{
		"Movie": movie, "Rating": rating, "Review": review,
	})
}

// Edit handles POST /edit/:id and stores the user's rating and review.  A
// malformed rating re-renders the form instead of persisting.
func (h *MovieHandler) Edit(c echo.Context) error {
	movie, err := h.getMovie(c)
	if err != nil {
		return err
	}
	ratingRaw := strings.TrimSpace(c.FormValue("rating"))
	review := strings.TrimSpace(c.FormValue("review"))

	rating, err := strconv.ParseFloat(ratingRaw, 64)
	if err != nil {
		return c.Render(http.StatusBadRequest, "edit.html", map[string]any{
			"Error": "rating must be a decimal number like 7.4",
			"Movie": movie, "Rating": ratingRaw, "Review": review,
		})
	}
	if err := h.Repo.SetRatingAndReview(c.Request().Context(), movie.ID, rating, review); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "movie not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not update the movie")
	}
	publishChange(c, "movies", "movie", "updated", movie.ID, movie.Title)
	return c.Redirect(http.StatusSeeOther, "/")
}

// Delete handles GET|POST /delete/:id and removes the row.
func (h *MovieHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.Repo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "movie not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete the movie")
	}
	publishChange(c, "movies", "movie", "deleted", id, "")
	return c.Redirect(http.StatusFound, "/")
}

// getMovie resolves the :id path parameter into a stored movie, mapping
// parse and lookup failures onto the right HTTP errors.
func (h *MovieHandler) getMovie(c echo.Context) (*model.Movie, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	movie, err := h.Repo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "movie not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "could not load the movie")
	}
	return movie, nil
}
