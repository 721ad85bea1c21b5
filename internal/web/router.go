package web

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// NewRouter builds the gin engine with the embedded templates and all
// routes registered.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	r.GET("/", h.HomeHandler)
	r.GET("/add_movie", h.AddMovieFormHandler)
	r.POST("/add_movie", h.AddMoviePostHandler)
	r.GET("/select_movie/:title", h.SelectMovieHandler)
	r.POST("/select_movie/:title", h.SelectMovieHandler)
	r.GET("/movie_details/:movie_id", h.MovieDetailsHandler)
	r.GET("/edit_movie/:movie_id", h.EditMovieFormHandler)
	r.POST("/edit_movie/:movie_id", h.EditMoviePostHandler)
	r.POST("/delete_movie/:movie_id", h.DeleteMovieHandler)

	return r
}
