package tmdb

import (
	"fmt"
	"strconv"
)

type MovieSearchResponse struct {
	Page         int           `json:"page"`
	Results      []MovieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

type MovieResult struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

type MovieDetails struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
	ReleaseDate string `json:"release_date"`
}

func (d *MovieDetails) validate() error {
	switch {
	case d.Title == "":
		return fmt.Errorf("%w: missing title", ErrMalformed)
	case d.Overview == "":
		return fmt.Errorf("%w: missing overview", ErrMalformed)
	case d.PosterPath == "":
		return fmt.Errorf("%w: missing poster_path", ErrMalformed)
	case len(d.ReleaseDate) < 4:
		return fmt.Errorf("%w: missing release_date", ErrMalformed)
	}
	return nil
}

// ReleaseYear is the first four characters of the release-date string.
// Deliberately not a calendar parse, to keep the stored year identical
// to what the API reports.
func (d *MovieDetails) ReleaseYear() (int, error) {
	year, err := strconv.Atoi(d.ReleaseDate[:4])
	if err != nil {
		return 0, fmt.Errorf("%w: release_date %q", ErrMalformed, d.ReleaseDate)
	}
	return year, nil
}
