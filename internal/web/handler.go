package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/utkarshun/my-top-ten-movies-list/internal/movies"
	"github.com/utkarshun/my-top-ten-movies-list/internal/tmdb"
)

type Handler struct {
	store   *movies.Store
	tmdb    *tmdb.Client
	fetcher *tmdb.MovieFetcher
}

func NewHandler(store *movies.Store, client *tmdb.Client) *Handler {
	return &Handler{
		store:   store,
		tmdb:    client,
		fetcher: tmdb.NewMovieFetcher(client),
	}
}

// HomeHandler lists all movies ordered by rating and assigns display
// ranks on the way out.
func (h *Handler) HomeHandler(c *gin.Context) {
	list, err := h.store.ListByRatingDesc(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	movies.AssignRankings(list)

	c.HTML(http.StatusOK, "index.html", gin.H{"movies": list})
}

func (h *Handler) AddMovieFormHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "add_movie.html", gin.H{})
}

func (h *Handler) AddMoviePostHandler(c *gin.Context) {
	var form AddMovieForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "add_movie.html", gin.H{
			"error": "Movie title is required",
			"title": c.PostForm("title"),
		})
		return
	}

	c.Redirect(http.StatusFound, "/select_movie/"+url.PathEscape(form.Title))
}

// SelectMovieHandler searches the metadata provider and shows the
// candidates to pick from.
func (h *Handler) SelectMovieHandler(c *gin.Context) {
	title := c.Param("title")

	results, err := h.tmdb.SearchMovies(c.Request.Context(), title)
	if err != nil {
		renderRemoteError(c, err)
		return
	}

	c.HTML(http.StatusOK, "select_movie.html", gin.H{
		"query":  title,
		"movies": results.Results,
	})
}

// MovieDetailsHandler fetches the detail record for the chosen remote
// id, stores it with rating and review unset, and sends the user to
// the edit form.
func (h *Handler) MovieDetailsHandler(c *gin.Context) {
	remoteID, err := strconv.Atoi(c.Param("movie_id"))
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"error": "invalid movie id"})
		return
	}

	movie, err := h.fetcher.FetchByRemoteID(c.Request.Context(), remoteID)
	if err != nil {
		renderRemoteError(c, err)
		return
	}

	if err := h.store.Create(c.Request.Context(), movie); err != nil {
		if errors.Is(err, movies.ErrConflict) {
			c.HTML(http.StatusConflict, "error.html", gin.H{"error": "movie already on the list"})
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, "/edit_movie/"+strconv.FormatUint(uint64(movie.ID), 10))
}

func (h *Handler) EditMovieFormHandler(c *gin.Context) {
	movie, ok := h.lookupMovie(c)
	if !ok {
		return
	}

	// prefill with the stored values
	rating := ""
	if movie.Rating != nil {
		rating = strconv.FormatFloat(*movie.Rating, 'f', -1, 64)
	}
	review := ""
	if movie.Review != nil {
		review = *movie.Review
	}

	c.HTML(http.StatusOK, "edit.html", gin.H{
		"movie":  movie,
		"rating": rating,
		"review": review,
	})
}

func (h *Handler) EditMoviePostHandler(c *gin.Context) {
	movie, ok := h.lookupMovie(c)
	if !ok {
		return
	}

	var form RateMovieForm
	if err := c.ShouldBind(&form); err != nil {
		// keep the submitted values on the form so the user can
		// correct them
		c.HTML(http.StatusOK, "edit.html", gin.H{
			"movie":  movie,
			"rating": c.PostForm("rating"),
			"review": c.PostForm("review"),
			"error":  "Rating must be a number between 0 and 10 and a review is required",
		})
		return
	}

	err := h.store.UpdateRatingReview(c.Request.Context(), movie.ID, *form.Rating, form.Review)
	switch {
	case errors.Is(err, movies.ErrInvalidRating):
		c.HTML(http.StatusOK, "edit.html", gin.H{
			"movie":  movie,
			"rating": c.PostForm("rating"),
			"review": c.PostForm("review"),
			"error":  "Rating must be between 0 and 10",
		})
		return
	case errors.Is(err, movies.ErrNotFound):
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "movie not found"})
		return
	case err != nil:
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) DeleteMovieHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"error": "invalid id"})
		return
	}

	if err := h.store.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, movies.ErrNotFound) {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "movie not found"})
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// lookupMovie resolves the :movie_id path param to a stored movie,
// rendering the error page itself when that fails.
func (h *Handler) lookupMovie(c *gin.Context) (*movies.Movie, bool) {
	id, err := strconv.ParseUint(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"error": "invalid id"})
		return nil, false
	}

	movie, err := h.store.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, movies.ErrNotFound) {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "movie not found"})
			return nil, false
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return nil, false
	}

	return movie, true
}

func renderRemoteError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, tmdb.ErrRemote) {
		status = http.StatusBadGateway
	}
	c.HTML(status, "error.html", gin.H{"error": err.Error()})
}
