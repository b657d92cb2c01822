package repository

import (
	"fmt"

	"kinovzor/models"

	"gorm.io/gorm"
)

// Sort modes accepted by ListMovies.
const (
	SortPopular = "popular"
	SortTitle   = "title"
	SortYear    = "year"
	SortRating  = "rating"
)

// SortModes lists every accepted sort value, default first.
var SortModes = []string{SortPopular, SortTitle, SortYear, SortRating}

type MovieInput struct {
	Title       string
	Description string
	Genre       string
	Year        int
	PosterURL   *string
}

type MovieFilter struct {
	Genre string // empty or "all" disables the filter
	Sort  string // one of SortModes, empty means popular
}

// CreateMovie inserts a movie and returns it re-read by its generated id.
func CreateMovie(db *gorm.DB, in MovieInput) (models.Movie, error) {
	movie := models.Movie{
		Title:       in.Title,
		Description: in.Description,
		Genre:       in.Genre,
		Year:        in.Year,
		PosterURL:   in.PosterURL,
	}
	if err := db.Create(&movie).Error; err != nil {
		return models.Movie{}, fmt.Errorf("create movie: %w", err)
	}

	created, found, err := FindMovieByID(db, movie.ID)
	if err != nil {
		return models.Movie{}, err
	}
	if !found {
		return models.Movie{}, fmt.Errorf("create movie: row %d vanished after insert", movie.ID)
	}
	return created, nil
}

func FindMovieByID(db *gorm.DB, id uint) (models.Movie, bool, error) {
	return first[models.Movie](db.Where("id = ?", id))
}

func MovieExists(db *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := db.Model(&models.Movie{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListMovies returns the catalogue, optionally narrowed to one genre.
//
// The rating sort orders by average rating, best first, with unrated movies
// at the end; ties fall back to the newest movie.
func ListMovies(db *gorm.DB, filter MovieFilter) ([]models.Movie, error) {
	query := db.Model(&models.Movie{})

	if filter.Genre != "" && filter.Genre != "all" {
		query = query.Where("movies.genre = ?", filter.Genre)
	}

	switch filter.Sort {
	case SortTitle:
		query = query.Order("movies.title ASC").Order("movies.id ASC")
	case SortYear:
		query = query.Order("movies.year DESC").Order("movies.id DESC")
	case SortRating:
		stats := db.Model(&models.Rating{}).
			Select("movie_id, AVG(value) AS avg_value").
			Group("movie_id")
		query = query.
			Select("movies.*").
			Joins("LEFT JOIN (?) AS movie_stats ON movie_stats.movie_id = movies.id", stats).
			Order("CASE WHEN movie_stats.avg_value IS NULL THEN 1 ELSE 0 END").
			Order("movie_stats.avg_value DESC").
			Order("movies.id DESC")
	default:
		query = query.Order("movies.id DESC")
	}

	movies := []models.Movie{}
	if err := query.Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

// FindMovieByTitleAndYear is used by the importer to skip movies it already loaded.
func FindMovieByTitleAndYear(db *gorm.DB, title string, year int) (models.Movie, bool, error) {
	return first[models.Movie](db.Where("title = ? AND year = ?", title, year))
}
