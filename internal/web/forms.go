package web

// AddMovieForm is the first step of adding a movie: just a title to
// search the metadata provider with.
type AddMovieForm struct {
	Title string `form:"title" binding:"required"`
}

// RateMovieForm carries the rating and review for a movie already on
// the list.
// Rating is a pointer so that a submitted 0 still satisfies
// "required" while a missing field does not.
type RateMovieForm struct {
	Rating *float64 `form:"rating" binding:"required,gte=0,lte=10"`
	Review string   `form:"review" binding:"required"`
}
