package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"kinovzor/config"
	"kinovzor/database"
	"kinovzor/repository"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"gorm.io/gorm"
)

var (
	app = kingpin.New("import-movies", "Load movies into the kinovzor catalogue.")

	csvFile   = app.Flag("csv", "CSV file with title,description,genre,year,poster_url columns.").Default("movies.csv").String()
	demo      = app.Flag("demo", "Seed a generated demo catalogue with reviews instead of reading a CSV.").Bool()
	demoCount = app.Flag("demo-count", "Number of demo movies to generate.").Default("50").Int()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()
	db := database.Database.Db

	if *demo {
		movies, reviews, err := seedDemo(db, *demoCount)
		if err != nil {
			log.Fatalf("Demo seed failed: %v", err)
		}
		log.Printf("=== Demo Seed Complete ===")
		log.Printf("Movies: %d", movies)
		log.Printf("Reviews: %d", reviews)
		return
	}

	file, err := os.Open(*csvFile)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	movies, skipped, err := readMovieCSV(file)
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}
	log.Printf("Total rows to import: %d", len(movies)+skipped)

	inserted, existing, err := importMovies(db, movies)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Inserted: %d", inserted)
	log.Printf("Already present: %d", existing)
	log.Printf("Skipped: %d", skipped)
	log.Printf("Total processed: %d", inserted+existing+skipped)
}

// readMovieCSV parses the catalogue file. Rows without a title or a numeric
// year are counted as skipped.
func readMovieCSV(r io.Reader) ([]repository.MovieInput, int, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, 0, err
	}
	if len(records) < 2 {
		return nil, 0, fmt.Errorf("CSV file is empty or has only headers")
	}

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range records[0] {
		headerIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var movies []repository.MovieInput
	skipped := 0
	for _, row := range records[1:] {
		movie := repository.MovieInput{
			Title:       getField(row, headerIndex, "title"),
			Description: getField(row, headerIndex, "description"),
			Genre:       getField(row, headerIndex, "genre"),
			Year:        parseInt(getField(row, headerIndex, "year")),
		}
		if poster := getField(row, headerIndex, "poster_url"); poster != "" {
			movie.PosterURL = &poster
		}

		if movie.Title == "" || movie.Year == 0 {
			skipped++
			continue
		}
		movies = append(movies, movie)
	}
	return movies, skipped, nil
}

// importMovies inserts movies whose (title, year) is not in the catalogue yet.
func importMovies(db *gorm.DB, movies []repository.MovieInput) (inserted, existing int, err error) {
	for i, movie := range movies {
		if i > 0 && i%1000 == 0 {
			log.Printf("Processing row %d...", i)
		}

		_, found, err := repository.FindMovieByTitleAndYear(db, movie.Title, movie.Year)
		if err != nil {
			return inserted, existing, err
		}
		if found {
			existing++
			continue
		}

		if _, err := repository.CreateMovie(db, movie); err != nil {
			log.Printf("Error inserting movie %q (%d): %v", movie.Title, movie.Year, err)
			continue
		}
		inserted++
	}
	return inserted, existing, nil
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// parseInt converts string to int
func parseInt(s string) int {
	if s == "" {
		return 0
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return val
}
