package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/utkarshun/my-top-ten-movies-list/internal/movies"
	"github.com/utkarshun/my-top-ten-movies-list/internal/tmdb"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func newTestApp(t *testing.T, remote http.Handler) (*gin.Engine, *movies.Store) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&movies.Movie{}))
	store := movies.NewStore(db)

	if remote == nil {
		remote = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	srv := httptest.NewServer(remote)
	t.Cleanup(srv.Close)

	cfg := tmdb.NewConfig("test-key")
	cfg.BaseURL = srv.URL

	return NewRouter(NewHandler(store, tmdb.NewClient(cfg))), store
}

func addMovie(t *testing.T, store *movies.Store, title string, rating *float64) *movies.Movie {
	t.Helper()
	m := &movies.Movie{Title: title, Year: 2000, Description: "d", ImgURL: "https://img/x.jpg", Rating: rating}
	require.NoError(t, store.Create(context.Background(), m))
	return m
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHomeListsMoviesWithRanks(t *testing.T) {
	r, store := newTestApp(t, nil)

	low := 3.0
	high := 9.0
	addMovie(t, store, "Low", &low)
	addMovie(t, store, "High", &high)

	w := get(r, "/")
	assert.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "1. High")
	assert.Contains(t, body, "2. Low")
}

func TestAddMovieRedirectsToSelect(t *testing.T) {
	r, _ := newTestApp(t, nil)

	w := postForm(r, "/add_movie", url.Values{"title": {"Phone Booth"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/select_movie/Phone%20Booth", w.Header().Get("Location"))
}

func TestAddMovieMissingTitleRerendersForm(t *testing.T) {
	r, _ := newTestApp(t, nil)

	w := postForm(r, "/add_movie", url.Values{})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Movie title is required")
}

func TestSelectMovieShowsCandidates(t *testing.T) {
	r, _ := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/search/movie", req.URL.Path)
		w.Write([]byte(`{"page":1,"results":[{"id":1817,"title":"Phone Booth","release_date":"2002-04-04"}]}`))
	}))

	w := get(r, "/select_movie/Phone%20Booth")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/movie_details/1817")
	assert.Contains(t, w.Body.String(), "Phone Booth")
}

func TestSelectMovieRemoteFailure(t *testing.T) {
	r, _ := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	w := get(r, "/select_movie/anything")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestMovieDetailsPersistsAndRedirectsToEdit(t *testing.T) {
	r, store := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/movie/42", req.URL.Path)
		w.Write([]byte(`{"id":42,"title":"X","release_date":"1999-05-01","poster_path":"/p.jpg","overview":"..."}`))
	}))

	w := get(r, "/movie_details/42")
	require.Equal(t, http.StatusFound, w.Code)

	location := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/edit_movie/"), "unexpected location %q", location)

	id, err := strconv.ParseUint(strings.TrimPrefix(location, "/edit_movie/"), 10, 64)
	require.NoError(t, err)

	m, err := store.GetByID(context.Background(), uint(id))
	require.NoError(t, err)
	assert.Equal(t, "X", m.Title)
	assert.Equal(t, 1999, m.Year)
	assert.True(t, strings.HasSuffix(m.ImgURL, "/p.jpg"))
	assert.Nil(t, m.Rating)
	assert.Nil(t, m.Review)
}

func TestMovieDetailsDuplicateTitleConflicts(t *testing.T) {
	r, store := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"id":42,"title":"X","release_date":"1999-05-01","poster_path":"/p.jpg","overview":"..."}`))
	}))

	addMovie(t, store, "X", nil)

	w := get(r, "/movie_details/42")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestEditMovieFormPrefillsStoredValues(t *testing.T) {
	r, store := newTestApp(t, nil)

	rating := 7.3
	m := addMovie(t, store, "Heat", &rating)
	require.NoError(t, store.UpdateRatingReview(context.Background(), m.ID, 7.3, "great heist"))

	w := get(r, "/edit_movie/"+strconv.FormatUint(uint64(m.ID), 10))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="7.3"`)
	assert.Contains(t, w.Body.String(), "great heist")
}

func TestEditMovieSubmitUpdatesAndRedirects(t *testing.T) {
	r, store := newTestApp(t, nil)
	m := addMovie(t, store, "Heat", nil)

	w := postForm(r, "/edit_movie/"+strconv.FormatUint(uint64(m.ID), 10),
		url.Values{"rating": {"8.5"}, "review": {"tense"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	got, err := store.GetByID(context.Background(), m.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Rating)
	assert.Equal(t, 8.5, *got.Rating)
	require.NotNil(t, got.Review)
	assert.Equal(t, "tense", *got.Review)
}

func TestEditMovieOutOfRangeKeepsSubmittedValue(t *testing.T) {
	r, store := newTestApp(t, nil)

	rating := 7.3
	m := addMovie(t, store, "Heat", &rating)

	w := postForm(r, "/edit_movie/"+strconv.FormatUint(uint64(m.ID), 10),
		url.Values{"rating": {"11"}, "review": {"ok"}})

	// form re-renders with the submitted value retained for correction
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="11"`)

	got, err := store.GetByID(context.Background(), m.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Rating)
	assert.Equal(t, 7.3, *got.Rating, "stored rating must be unchanged")
}

func TestEditMovieMissingReviewRerenders(t *testing.T) {
	r, store := newTestApp(t, nil)
	m := addMovie(t, store, "Heat", nil)

	w := postForm(r, "/edit_movie/"+strconv.FormatUint(uint64(m.ID), 10),
		url.Values{"rating": {"8"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="8"`)

	got, err := store.GetByID(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Rating)
}

func TestEditMovieUnknownIDNotFound(t *testing.T) {
	r, _ := newTestApp(t, nil)

	w := get(r, "/edit_movie/999")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteMovie(t *testing.T) {
	r, store := newTestApp(t, nil)
	m := addMovie(t, store, "Heat", nil)

	w := postForm(r, "/delete_movie/"+strconv.FormatUint(uint64(m.ID), 10), url.Values{})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	_, err := store.GetByID(context.Background(), m.ID)
	assert.ErrorIs(t, err, movies.ErrNotFound)
}

func TestDeleteMovieUnknownIDNotFound(t *testing.T) {
	r, _ := newTestApp(t, nil)

	w := postForm(r, "/delete_movie/999", url.Values{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
