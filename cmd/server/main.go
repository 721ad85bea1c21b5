package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/utkarshun/my-top-ten-movies-list/internal/config"
	"github.com/utkarshun/my-top-ten-movies-list/internal/database"
	"github.com/utkarshun/my-top-ten-movies-list/internal/movies"
	"github.com/utkarshun/my-top-ten-movies-list/internal/tmdb"
	"github.com/utkarshun/my-top-ten-movies-list/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if m := os.Getenv("GIN_MODE"); m != "" {
		gin.SetMode(m)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.Migrate(db, &movies.Movie{}); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	store := movies.NewStore(db)
	if err := seed(store); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	client := tmdb.NewClient(tmdb.NewConfig(cfg.TMDB.APIKey))
	r := web.NewRouter(web.NewHandler(store, client))

	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// seed pre-populates the list with two known movies; it is a no-op
// when they are already present.
func seed(store *movies.Store) error {
	ctx := context.Background()

	phoneBoothRating := 7.3
	phoneBoothReview := "My favourite character was the caller"
	if err := store.SeedIfAbsent(ctx, &movies.Movie{
		Title:       "Phone Booth",
		Year:        2002,
		Description: "Publicist Stuart Shepard finds himself trapped in a phone booth, pinned down by an extortionist's sniper rifle. Unable to leave or receive outside help, Stuart's negotiation with the caller leads to a jaw-dropping climax.",
		Rating:      &phoneBoothRating,
		Review:      &phoneBoothReview,
		ImgURL:      "https://image.tmdb.org/t/p/w500/tjrX2oWRCM3Tvarz38zlZM7Uc10.jpg",
	}); err != nil {
		return err
	}

	avatarRating := 7.3
	avatarReview := "I liked the water."
	return store.SeedIfAbsent(ctx, &movies.Movie{
		Title:       "Avatar The Way of Water",
		Year:        2022,
		Description: "Set more than a decade after the events of the first film, learn the story of the Sully family (Jake, Neytiri, and their kids), the trouble that follows them, the lengths they go to keep each other safe, the battles they fight to stay alive, and the tragedies they endure.",
		Rating:      &avatarRating,
		Review:      &avatarReview,
		ImgURL:      "https://image.tmdb.org/t/p/w500/t6HIqrRAclMCA60NsSmeqe9RmNV.jpg",
	})
}
