package main

import (
	"fmt"
	"kinovzor/repository"
	"log"

	"gorm.io/gorm"
)

var (
	demoPosters = []string{
		"https://images.pexels.com/photos/799137/pexels-photo-799137.jpeg",
		"https://images.pexels.com/photos/799114/pexels-photo-799114.jpeg",
		"https://images.pexels.com/photos/799152/pexels-photo-799152.jpeg",
		"https://images.pexels.com/photos/5701233/pexels-photo-5701233.jpeg",
		"https://images.pexels.com/photos/799127/pexels-photo-799127.jpeg",
		"https://images.pexels.com/photos/799158/pexels-photo-799158.jpeg",
		"https://images.pexels.com/photos/799150/pexels-photo-799150.jpeg",
		"https://images.pexels.com/photos/799116/pexels-photo-799116.jpeg",
	}

	demoGenres = []string{
		"Drama", "Action", "Sci-Fi", "Comedy", "Thriller",
		"Romance", "Fantasy", "Horror", "Animation", "Adventure",
	}

	demoTitles = []string{
		"City of Lights", "Pacific", "Last Chance", "Star Road", "Night Shift",
		"Fall of Heroes", "Icy Wind", "Alien Skies", "Heart of Steel", "Memory Shards",
	}

	demoReviews = [][]string{
		{
			"Keeps you on edge right up to the end.",
			"Wonderful acting and an interesting plot.",
			"A little slow, but the finale is worth the wait.",
			"Very atmospheric, recommended.",
			"Some weak moments, decent overall.",
		},
		{
			"Fast and spectacular, never boring.",
			"Music and visuals are top notch.",
			"Predictable story, still a pleasure to watch.",
			"A good pick for an evening.",
			"Would not rewatch, but worth seeing once.",
		},
		{
			"Makes you think about a lot of things.",
			"A strong drama with memorable characters.",
			"Sometimes feels too dark.",
			"Very honest and realistic.",
			"Leaves an aftertaste you think about for days.",
		},
	}
)

const (
	demoDescription = "A film from the kinovzor collection. A story about choices, character and unexpected turns of fate."
	demoFirstYear   = 1995
)

// demoMovie returns the i-th generated catalogue entry.
func demoMovie(i int) repository.MovieInput {
	poster := demoPosters[i%len(demoPosters)]
	return repository.MovieInput{
		Title:       fmt.Sprintf("%s %d", demoTitles[i%len(demoTitles)], i+1),
		Description: demoDescription,
		Genre:       demoGenres[i%len(demoGenres)],
		Year:        demoFirstYear + i%25,
		PosterURL:   &poster,
	}
}

// demoMovieReviews returns the 4 to 7 anonymous reviews attached to the i-th movie.
// Ratings cycle through 3..5 stars.
func demoMovieReviews(i int, movieID uint) []repository.ReviewInput {
	template := demoReviews[i%len(demoReviews)]
	count := 4 + i%4

	reviews := make([]repository.ReviewInput, 0, count)
	for j := 0; j < count; j++ {
		rating := 3 + (i+j)%3
		reviews = append(reviews, repository.ReviewInput{
			MovieID: movieID,
			Text:    template[j%len(template)],
			Rating:  &rating,
		})
	}
	return reviews
}

// seedDemo loads n generated movies with their reviews in one transaction.
func seedDemo(db *gorm.DB, n int) (movies, reviews int, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		for i := 0; i < n; i++ {
			movie, err := repository.CreateMovie(tx, demoMovie(i))
			if err != nil {
				return err
			}
			movies++

			for _, review := range demoMovieReviews(i, movie.ID) {
				if _, err := repository.CreateReview(tx, review); err != nil {
					return err
				}
				reviews++
			}

			if (i+1)%10 == 0 {
				log.Printf("%d/%d movies loaded", i+1, n)
			}
		}
		return nil
	})
	return movies, reviews, err
}
