package movies

// Movie is a single movie on the list together with the user's
// rating and review. Ranking is derived from the rating order on
// every list read and is never stored.
type Movie struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"uniqueIndex;not null"`
	Year        int    `gorm:"not null"`
	Description string `gorm:"not null"`
	Rating      *float64
	Ranking     int `gorm:"-"`
	Review      *string
	ImgURL      string `gorm:"not null"`
}
