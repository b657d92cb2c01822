package repository

import (
	"sync"
	"testing"

	"kinovzor/database"
	"kinovzor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenMemory(t.Name())
	require.NoError(t, err, "open test database")
	return db
}

func mustMovie(t *testing.T, db *gorm.DB, title, genre string, year int) models.Movie {
	t.Helper()
	movie, err := CreateMovie(db, MovieInput{
		Title:       title,
		Description: "A film about " + title,
		Genre:       genre,
		Year:        year,
	})
	require.NoError(t, err)
	return movie
}

func mustUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user, err := CreateUser(db, email, "secret123", "viewer")
	require.NoError(t, err)
	return user
}

func ptr[T any](v T) *T { return &v }

func TestCreateUserAndLookup(t *testing.T) {
	db := setupTestDB(t)

	user, err := CreateUser(db, "ann@example.com", "plaintext", "ann")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "ann", user.Username)
	assert.Equal(t, "plaintext", user.Password)

	byEmail, found, err := FindUserByEmail(db, "ann@example.com")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, user.ID, byEmail.ID)

	_, found, err = FindUserByID(db, user.ID+100)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = CreateUser(db, "ann@example.com", "other", "ann2")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreateMovieRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	in := MovieInput{
		Title:       "Pacific",
		Description: "Quiet ocean drama",
		Genre:       "Drama",
		Year:        2001,
		PosterURL:   ptr("https://img.example/pacific.jpg"),
	}
	created, err := CreateMovie(db, in)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	fetched, found, err := FindMovieByID(db, created.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, in.Title, fetched.Title)
	assert.Equal(t, in.Description, fetched.Description)
	assert.Equal(t, in.Genre, fetched.Genre)
	assert.Equal(t, in.Year, fetched.Year)
	require.NotNil(t, fetched.PosterURL)
	assert.Equal(t, *in.PosterURL, *fetched.PosterURL)

	exists, err := MovieExists(db, created.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	_, found, err = FindMovieByID(db, created.ID+1)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestListMoviesFilterAndSort(t *testing.T) {
	db := setupTestDB(t)
	user1 := mustUser(t, db, "u1@example.com")
	user2 := mustUser(t, db, "u2@example.com")

	alpha := mustMovie(t, db, "Alpha", "Drama", 2010)
	charlie := mustMovie(t, db, "Charlie", "Comedy", 1999)
	bravo := mustMovie(t, db, "Bravo", "Drama", 2020)

	ids := func(movies []models.Movie) []uint {
		out := make([]uint, 0, len(movies))
		for _, m := range movies {
			out = append(out, m.ID)
		}
		return out
	}

	movies, err := ListMovies(db, MovieFilter{})
	require.NoError(t, err)
	assert.Equal(t, []uint{bravo.ID, charlie.ID, alpha.ID}, ids(movies))

	movies, err = ListMovies(db, MovieFilter{Genre: "Drama", Sort: SortTitle})
	require.NoError(t, err)
	assert.Equal(t, []uint{alpha.ID, bravo.ID}, ids(movies))

	movies, err = ListMovies(db, MovieFilter{Genre: "all", Sort: SortYear})
	require.NoError(t, err)
	assert.Equal(t, []uint{bravo.ID, alpha.ID, charlie.ID}, ids(movies))

	_, err = UpsertRating(db, alpha.ID, user1.ID, 3)
	require.NoError(t, err)
	_, err = UpsertRating(db, charlie.ID, user1.ID, 5)
	require.NoError(t, err)
	_, err = UpsertRating(db, charlie.ID, user2.ID, 4)
	require.NoError(t, err)

	movies, err = ListMovies(db, MovieFilter{Sort: SortRating})
	require.NoError(t, err)
	assert.Equal(t, []uint{charlie.ID, alpha.ID, bravo.ID}, ids(movies))

	movies, err = ListMovies(db, MovieFilter{Genre: "Horror"})
	require.NoError(t, err)
	assert.Empty(t, movies)
	assert.NotNil(t, movies)
}

func TestReviewLifecycle(t *testing.T) {
	db := setupTestDB(t)
	movie := mustMovie(t, db, "Heart of Steel", "Action", 2005)
	user := mustUser(t, db, "critic@example.com")

	first, err := CreateReview(db, ReviewInput{MovieID: movie.ID, UserID: &user.ID, Text: "Great", Rating: ptr(5)})
	require.NoError(t, err)
	assert.False(t, first.Approved)
	require.NotNil(t, first.UserID)
	assert.Equal(t, user.ID, *first.UserID)

	second, err := CreateReview(db, ReviewInput{MovieID: movie.ID, Text: "Anonymous take"})
	require.NoError(t, err)
	assert.Nil(t, second.UserID)
	assert.Nil(t, second.Rating)

	approved, err := ListMovieReviews(db, movie.ID, true)
	require.NoError(t, err)
	assert.Empty(t, approved)

	require.NoError(t, ApproveReview(db, first.ID))
	require.NoError(t, ApproveReview(db, first.ID))

	reloaded, found, err := FindReviewByID(db, first.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, reloaded.Approved)

	approved, err = ListMovieReviews(db, movie.ID, true)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, first.ID, approved[0].ID)

	all, err := ListMovieReviews(db, movie.ID, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "newest review first")
	assert.Equal(t, first.ID, all[1].ID)

	require.NoError(t, DeleteReview(db, second.ID))
	require.NoError(t, DeleteReview(db, second.ID), "deleting a missing review is a no-op")

	_, found, err = FindReviewByID(db, second.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpsertRatingKeepsSingleRow(t *testing.T) {
	db := setupTestDB(t)
	movie := mustMovie(t, db, "Frozen Wind", "Thriller", 2012)
	user := mustUser(t, db, "rater@example.com")

	r1, err := UpsertRating(db, movie.ID, user.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, r1.Value)

	r2, err := UpsertRating(db, movie.ID, user.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, r1.ID, r2.ID)
	assert.Equal(t, 4.0, r2.Value)

	ratings, err := ListMovieRatings(db, movie.ID)
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, 4.0, ratings[0].Value)
}

func TestRatingStats(t *testing.T) {
	db := setupTestDB(t)
	movie := mustMovie(t, db, "Last Chance", "Drama", 2003)
	empty := mustMovie(t, db, "Unseen", "Drama", 2004)

	for i, v := range []float64{3, 4, 5} {
		user := mustUser(t, db, string(rune('a'+i))+"@example.com")
		_, err := UpsertRating(db, movie.ID, user.ID, v)
		require.NoError(t, err)
	}

	stats, err := RatingStats(db, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Count)
	require.NotNil(t, stats.Average)
	assert.Equal(t, 4.0, *stats.Average)

	stats, err = RatingStats(db, empty.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Count)
	assert.Nil(t, stats.Average)
}

func TestRatingStatsRoundsToOneDecimal(t *testing.T) {
	db := setupTestDB(t)
	movie := mustMovie(t, db, "Shards", "Drama", 2008)

	for i, v := range []float64{1, 2, 2} {
		user := mustUser(t, db, string(rune('a'+i))+"@example.com")
		_, err := UpsertRating(db, movie.ID, user.ID, v)
		require.NoError(t, err)
	}

	stats, err := RatingStats(db, movie.ID)
	require.NoError(t, err)
	require.NotNil(t, stats.Average)
	assert.Equal(t, 1.7, *stats.Average)
}

func TestRatingStatsHalfwayAverageRoundsToEven(t *testing.T) {
	db := setupTestDB(t)
	movie := mustMovie(t, db, "Quarter Past", "Drama", 2011)

	for i, v := range []float64{1, 1, 1, 2} {
		user := mustUser(t, db, string(rune('a'+i))+"@example.com")
		_, err := UpsertRating(db, movie.ID, user.ID, v)
		require.NoError(t, err)
	}

	stats, err := RatingStats(db, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.Count)
	require.NotNil(t, stats.Average)
	assert.Equal(t, 1.2, *stats.Average)
}

func TestFavorites(t *testing.T) {
	db := setupTestDB(t)
	user := mustUser(t, db, "fan@example.com")
	first := mustMovie(t, db, "City of Lights", "Drama", 1995)
	second := mustMovie(t, db, "Alien Skies", "Sci-Fi", 1997)

	require.NoError(t, AddFavorite(db, first.ID, user.ID))
	assert.ErrorIs(t, AddFavorite(db, first.ID, user.ID), ErrAlreadyFavorite)
	require.NoError(t, AddFavorite(db, second.ID, user.ID))

	isFav, err := IsFavorite(db, first.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, isFav)

	movies, err := ListUserFavorites(db, user.ID)
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, second.ID, movies[0].ID)
	assert.Equal(t, first.ID, movies[1].ID)

	removed, err := RemoveFavorite(db, first.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = RemoveFavorite(db, first.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	require.NoError(t, AddFavorite(db, first.ID, user.ID), "re-adding after removal succeeds")

	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).Where("movie_id = ? AND user_id = ?", first.ID, user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRoundOne(t *testing.T) {
	assert.Equal(t, 4.0, roundOne(4.0))
	assert.Equal(t, 4.2, roundOne(4.25))
	assert.Equal(t, 3.8, roundOne(3.75))
	assert.Equal(t, 3.3, roundOne(3.3333))
}

func TestConcurrentWritesKeepOneRowPerPair(t *testing.T) {
	db := setupTestDB(t)
	movie := mustMovie(t, db, "Crowded Room", "Thriller", 2016)
	user := mustUser(t, db, "crowd@example.com")

	const workers = 8
	favErrs := make(chan error, workers)
	rateErrs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(value float64) {
			defer wg.Done()
			favErrs <- AddFavorite(db, movie.ID, user.ID)
			_, err := UpsertRating(db, movie.ID, user.ID, value)
			rateErrs <- err
		}(float64(i%5 + 1))
	}
	wg.Wait()
	close(favErrs)
	close(rateErrs)

	added := 0
	for err := range favErrs {
		if err == nil {
			added++
			continue
		}
		assert.ErrorIs(t, err, ErrAlreadyFavorite)
	}
	assert.Equal(t, 1, added)

	for err := range rateErrs {
		assert.NoError(t, err)
	}

	var favorites, ratings int64
	require.NoError(t, db.Model(&models.Favorite{}).Where("movie_id = ? AND user_id = ?", movie.ID, user.ID).Count(&favorites).Error)
	require.NoError(t, db.Model(&models.Rating{}).Where("movie_id = ? AND user_id = ?", movie.ID, user.ID).Count(&ratings).Error)
	assert.Equal(t, int64(1), favorites)
	assert.Equal(t, int64(1), ratings)
}
