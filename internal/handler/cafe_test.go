package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webapps/internal/database"
	"webapps/internal/handler"
	"webapps/internal/model"
	"webapps/internal/repository"
	"webapps/internal/router"
)

const testAPIKey = "TopSecretAPIKey"

func newCafeApp(t *testing.T) (*echo.Echo, *repository.CafeRepo) {
	t.Helper()
	repo := repository.NewCafeRepo(newTestDB(t, database.CafesSchema))
	e := newEcho("cafes")
	router.RegisterCafeRoutes(e, handler.NewCafeHandler(repo, testAPIKey))
	return e, repo
}

func seedCafe(t *testing.T, repo *repository.CafeRepo, name, location string) *model.Cafe {
	t.Helper()
	cafe := &model.Cafe{
		Name:     name,
		MapURL:   "https://maps.example.com/" + name,
		ImgURL:   "https://img.example.com/" + name + ".jpg",
		Location: location,
		Seats:    "20-30",
		HasWifi:  true,
	}
	require.NoError(t, repo.Insert(context.Background(), cafe))
	return cafe
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCafeSearchExactMatchOnly(t *testing.T) {
	e, repo := newCafeApp(t)
	seedCafe(t, repo, "Science Gallery", "London Bridge")
	seedCafe(t, repo, "Old Spike", "Peckham")

	rec := get(e, "/search?loc=Peckham")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	cafes, ok := body["cafes"].([]any)
	require.True(t, ok)
	require.Len(t, cafes, 1)
	assert.Equal(t, "Old Spike", cafes[0].(map[string]any)["name"])
}

func TestCafeSearchNoMatchIsInBandError(t *testing.T) {
	e, repo := newCafeApp(t)
	seedCafe(t, repo, "Science Gallery", "London Bridge")

	rec := get(e, "/search?loc=Nowhere")
	// deliberately HTTP 200: absence of results is reported in-band
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	errEnvelope, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errEnvelope, "Not found")
}

func TestCafeAllAndRandom(t *testing.T) {
	e, repo := newCafeApp(t)
	seedCafe(t, repo, "Science Gallery", "London Bridge")
	seedCafe(t, repo, "Old Spike", "Peckham")

	rec := get(e, "/all")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	cafes, ok := body["cafes"].([]any)
	require.True(t, ok)
	assert.Len(t, cafes, 2)

	rec = get(e, "/random")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	cafe, ok := body["cafe"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, []any{"Science Gallery", "Old Spike"}, cafe["name"])
}

func TestCafeAddLooseBooleanCoercion(t *testing.T) {
	e, repo := newCafeApp(t)

	form := url.Values{}
	form.Set("name", "Mare Street Market")
	form.Set("map_url", "https://maps.example.com/msm")
	form.Set("img_url", "https://img.example.com/msm.jpg")
	form.Set("location", "Hackney")
	form.Set("seats", "50+")
	// any non-empty value is true, even the string "false"
	form.Set("wifi", "false")
	form.Set("sockets", "yes")
	// toilet and calls omitted -> false

	rec := postForm(e, http.MethodPost, "/add", form)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	response, ok := body["response"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Succesfully added the new cafe", response["Succes"])

	cafes, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, cafes, 1)
	assert.True(t, cafes[0].HasWifi)
	assert.True(t, cafes[0].HasSockets)
	assert.False(t, cafes[0].HasToilet)
	assert.False(t, cafes[0].CanTakeCalls)
	assert.Nil(t, cafes[0].CoffeePrice)
}

func TestCafeUpdatePrice(t *testing.T) {
	e, repo := newCafeApp(t)
	cafe := seedCafe(t, repo, "Old Spike", "Peckham")

	rec := postForm(e, http.MethodPatch, "/update-price/"+itoa(cafe.ID)+"?new_price=3.10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Succesfully updated the price.", body["Succes"])

	got, err := repo.GetByID(context.Background(), cafe.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CoffeePrice)
	assert.Equal(t, "3.10", *got.CoffeePrice)
}

func TestCafeUpdatePriceUnknownIDLeavesTableUnchanged(t *testing.T) {
	e, repo := newCafeApp(t)
	cafe := seedCafe(t, repo, "Old Spike", "Peckham")

	rec := postForm(e, http.MethodPatch, "/update-price/9999?new_price=9.99", nil)
	// in-band not-found, transport still 200
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	errEnvelope, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errEnvelope, "Not found")

	got, err := repo.GetByID(context.Background(), cafe.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CoffeePrice)
}

func TestCafeReportClosed(t *testing.T) {
	e, repo := newCafeApp(t)
	cafe := seedCafe(t, repo, "Old Spike", "Peckham")

	// wrong key: in-band error, row survives
	rec := postForm(e, http.MethodDelete, "/report-closed/"+itoa(cafe.ID)+"?api-key=wrong", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body, "Error")
	_, err := repo.GetByID(context.Background(), cafe.ID)
	require.NoError(t, err)

	// unknown id: in-band not-found even with the right key
	rec = postForm(e, http.MethodDelete, "/report-closed/9999?api-key="+testAPIKey, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Contains(t, body, "error")

	// right key: row removed
	rec = postForm(e, http.MethodDelete, "/report-closed/"+itoa(cafe.ID)+"?api-key="+testAPIKey, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, "Succesfully deleted the cafe", body["Succes"])
	_, err = repo.GetByID(context.Background(), cafe.ID)
	assert.ErrorIs(t, err, repository.ErrCafeNotFound)
}
