package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webapps/internal/database"
	"webapps/internal/model"
)

func insertMovie(t *testing.T, repo *MovieRepo, title string, rating *float64) *model.Movie {
	t.Helper()
	m := &model.Movie{
		Title:       title,
		Year:        2002,
		Description: "description of " + title,
		Rating:      rating,
		ImgURL:      "https://image.tmdb.org/t/p/w500/" + title + ".jpg",
	}
	require.NoError(t, repo.Insert(context.Background(), m))
	return m
}

func ratingOf(v float64) *float64 { return &v }

func TestMovieRepoRoundTrip(t *testing.T) {
	repo := NewMovieRepo(newTestDB(t, database.MoviesSchema))
	ctx := context.Background()

	m := insertMovie(t, repo, "Phone Booth", nil)
	require.NotZero(t, m.ID)

	got, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.Title, got.Title)
	assert.Equal(t, m.Year, got.Year)
	assert.Equal(t, m.Description, got.Description)
	assert.Equal(t, m.ImgURL, got.ImgURL)
	// a freshly imported movie has no rating, ranking or review
	assert.Nil(t, got.Rating)
	assert.Nil(t, got.Ranking)
	assert.Nil(t, got.Review)

	err = repo.Insert(ctx, &model.Movie{Title: "Phone Booth", Year: 2002, Description: "again", ImgURL: "x"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMovieRepoRankByRating(t *testing.T) {
	repo := NewMovieRepo(newTestDB(t, database.MoviesSchema))
	ctx := context.Background()

	insertMovie(t, repo, "Phone Booth", ratingOf(7.3))
	insertMovie(t, repo, "Spirited Away", ratingOf(9.0))
	unrated := insertMovie(t, repo, "Unwatched", nil)
	insertMovie(t, repo, "Heat", ratingOf(8.1))

	movies, err := repo.RankByRating(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 4)

	// best rating first, unrated rows last
	assert.Equal(t, "Spirited Away", movies[0].Title)
	assert.Equal(t, "Heat", movies[1].Title)
	assert.Equal(t, "Phone Booth", movies[2].Title)
	assert.Equal(t, "Unwatched", movies[3].Title)

	// adjacent pairs are non-increasing by rating, absent ratings trail
	for i := 0; i < len(movies)-1; i++ {
		a, b := movies[i], movies[i+1]
		if b.Rating != nil {
			require.NotNil(t, a.Rating)
			assert.GreaterOrEqual(t, *a.Rating, *b.Rating)
		}
	}

	// rankings are the consecutive sequence 1..N in listing order
	for i, m := range movies {
		require.NotNil(t, m.Ranking)
		assert.Equal(t, int64(i+1), *m.Ranking)
	}

	// rankings were persisted, not just decorated on the result
	got, err := repo.GetByID(ctx, unrated.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Ranking)
	assert.Equal(t, int64(4), *got.Ranking)
}

func TestMovieRepoReRankAfterRating(t *testing.T) {
	repo := NewMovieRepo(newTestDB(t, database.MoviesSchema))
	ctx := context.Background()

	booth := insertMovie(t, repo, "Phone Booth", ratingOf(7.3))
	insertMovie(t, repo, "Heat", ratingOf(8.1))

	_, err := repo.RankByRating(ctx)
	require.NoError(t, err)

	// rate Phone Booth above Heat and list again
	require.NoError(t, repo.SetRatingAndReview(ctx, booth.ID, 9.5, "the caller steals it"))
	movies, err := repo.RankByRating(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "Phone Booth", movies[0].Title)
	assert.Equal(t, int64(1), *movies[0].Ranking)
	assert.Equal(t, int64(2), *movies[1].Ranking)

	got, err := repo.GetByID(ctx, booth.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Review)
	assert.Equal(t, "the caller steals it", *got.Review)
}

func TestMovieRepoSetRatingNotFound(t *testing.T) {
	repo := NewMovieRepo(newTestDB(t, database.MoviesSchema))
	assert.ErrorIs(t, repo.SetRatingAndReview(context.Background(), 42, 5, "x"), ErrMovieNotFound)
}

func TestMovieRepoDelete(t *testing.T) {
	repo := NewMovieRepo(newTestDB(t, database.MoviesSchema))
	ctx := context.Background()

	m := insertMovie(t, repo, "Phone Booth", nil)
	require.NoError(t, repo.Delete(ctx, m.ID))
	_, err := repo.GetByID(ctx, m.ID)
	assert.ErrorIs(t, err, ErrMovieNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, m.ID), ErrMovieNotFound)
}
