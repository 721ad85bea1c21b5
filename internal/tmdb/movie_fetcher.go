package tmdb

import (
	"context"
	"fmt"

	"github.com/utkarshun/my-top-ten-movies-list/internal/movies"
)

// MovieFetcher turns a remote detail record into a local movie ready
// to be stored. Rating and review stay unset until the user edits
// them.
type MovieFetcher struct {
	client *Client
}

func NewMovieFetcher(client *Client) *MovieFetcher {
	return &MovieFetcher{client: client}
}

func (f *MovieFetcher) FetchByRemoteID(ctx context.Context, remoteID int) (*movies.Movie, error) {
	details, err := f.client.GetMovieDetails(ctx, remoteID)
	if err != nil {
		return nil, fmt.Errorf("get movie details: %w", err)
	}

	year, err := details.ReleaseYear()
	if err != nil {
		return nil, err
	}

	return &movies.Movie{
		Title:       details.Title,
		Year:        year,
		Description: details.Overview,
		ImgURL:      BuildPosterURL(details.PosterPath),
	}, nil
}
