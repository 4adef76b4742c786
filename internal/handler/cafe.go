package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"webapps/internal/model"
	"webapps/internal/repository"
)

// CafeHandler serves the cafe directory JSON API.
//
// The API reports every domain-level failure in-band: an empty search, an
// unknown id and a bad api key all come back as HTTP 200 with an error
// envelope in the body.  Existing clients key off those envelopes, so the
// status codes stay 200 on purpose.  The body keys, including the
// misspelled "Succes", are the wire contract and must not be corrected.
type CafeHandler struct {
	Repo   *repository.CafeRepo
	APIKey string // key a caller must present to report a cafe as closed
}

// NewCafeHandler constructs a CafeHandler and panics if the repository is nil.
func NewCafeHandler(repo *repository.CafeRepo, apiKey string) *CafeHandler {
	if repo == nil {
		panic("nil repository passed to NewCafeHandler")
	}
	return &CafeHandler{Repo: repo, APIKey: apiKey}
}

// notFoundByID is the in-band error body for an id with no row.
var notFoundByID = echo.Map{"error": echo.Map{"Not found": "Sorry a cafe with that id was not found in the database"}}

// Home handles GET / and renders the API landing page.
func (h *CafeHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", nil)
}

// Random handles GET /random and returns one uniformly chosen cafe.
func (h *CafeHandler) Random(c echo.Context) error {
	cafe, err := h.Repo.Random(c.Request().Context())
	if err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			// empty table, same envelope as an unknown id
			return c.JSON(http.StatusOK, echo.Map{"error": echo.Map{"Not found": "Sorry there are no cafes in the database"}})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"cafe": cafe})
}

// All handles GET /all and returns every cafe.
func (h *CafeHandler) All(c echo.Context) error {
	cafes, err := h.Repo.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"cafes": cafes})
}

// Search handles GET /search?loc=X and returns the cafes whose location
// exactly equals X.  No match is not a transport error: the response is a
// 200 with an error envelope.
func (h *CafeHandler) Search(c echo.Context) error {
	loc := c.QueryParam("loc")
	cafes, err := h.Repo.FindByLocation(c.Request().Context(), loc)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if len(cafes) == 0 {
		return c.JSON(http.StatusOK, echo.Map{"error": echo.Map{"Not found": "Sorry we dont have a cafe at that location"}})
	}
	return c.JSON(http.StatusOK, echo.Map{"cafes": cafes})
}

// Add handles POST /add and inserts a cafe from form fields.
func (h *CafeHandler) Add(c echo.Context) error {
	var price *string
	if p := c.FormValue("coffee_price"); p != "" {
		price = &p
	}
	cafe := &model.Cafe{
		Name:         c.FormValue("name"),
		MapURL:       c.FormValue("map_url"),
		ImgURL:       c.FormValue("img_url"),
		Location:     c.FormValue("location"),
		Seats:        c.FormValue("seats"),
		HasToilet:    formBool(c, "toilet"),
		HasWifi:      formBool(c, "wifi"),
		HasSockets:   formBool(c, "sockets"),
		CanTakeCalls: formBool(c, "calls"),
		CoffeePrice:  price,
	}
	if err := h.Repo.Insert(c.Request().Context(), cafe); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusOK, echo.Map{"error": echo.Map{"Conflict": "Sorry a cafe with that name is already in the database"}})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	publishChange(c, "cafes", "cafe", "created", cafe.ID, cafe.Name)
	return c.JSON(http.StatusOK, echo.Map{"response": echo.Map{"Succes": "Succesfully added the new cafe"}})
}

// UpdatePrice handles PATCH /update-price/:id and sets coffee_price from
// the new_price query parameter.
func (h *CafeHandler) UpdatePrice(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusOK, notFoundByID)
	}
	newPrice := c.QueryParam("new_price")
	if err := h.Repo.UpdatePrice(c.Request().Context(), id, newPrice); err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			return c.JSON(http.StatusOK, notFoundByID)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	publishChange(c, "cafes", "cafe", "updated", id, "")
	return c.JSON(http.StatusOK, echo.Map{"Succes": "Succesfully updated the price."})
}

// ReportClosed handles DELETE /report-closed/:id.  The caller must supply
// the configured key in the api-key query parameter; a mismatch is
// reported in-band, not as a 403.
func (h *CafeHandler) ReportClosed(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusOK, notFoundByID)
	}
	cafe, err := h.Repo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			return c.JSON(http.StatusOK, notFoundByID)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if c.QueryParam("api-key") != h.APIKey {
		return c.JSON(http.StatusOK, echo.Map{"Error": "Sorry,that's not allowed. Make sure you have the correct api_key"})
	}
	if err := h.Repo.Delete(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	publishChange(c, "cafes", "cafe", "deleted", id, cafe.Name)
	return c.JSON(http.StatusOK, echo.Map{"Succes": "Succesfully deleted the cafe"})
}

// formBool reads a boolean form field with the API's historical loose
// truthiness: the value is true whenever the field is present and
// non-empty, so "false" and "0" also count as true.  Clients depend on
// this, so it must not be tightened without a contract change.
func formBool(c echo.Context, name string) bool {
	return c.FormValue(name) != ""
}
