package movies

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("movie not found")
	ErrConflict      = errors.New("movie with this title already exists")
	ErrInvalidRating = errors.New("rating must be between 0 and 10")
)

// Store owns the movies table. It is constructed once at startup and
// passed to every handler that needs it.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// SeedIfAbsent inserts m unless a movie with the same title already
// exists. Safe to call on every startup.
func (s *Store) SeedIfAbsent(ctx context.Context, m *Movie) error {
	err := s.db.WithContext(ctx).Where("title = ?", m.Title).First(&Movie{}).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup by title: %w", err)
	}

	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		// a concurrent seed got there first, which is fine
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("seed create: %w", err)
	}
	return nil
}

// ListByRatingDesc returns all movies ordered by rating, highest
// first. Unrated movies sort last; ties and unrated movies are broken
// by insertion order so the result is deterministic across drivers.
func (s *Store) ListByRatingDesc(ctx context.Context) ([]Movie, error) {
	var list []Movie
	err := s.db.WithContext(ctx).
		Order("rating IS NULL, rating DESC, id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return list, nil
}

func (s *Store) GetByID(ctx context.Context, id uint) (*Movie, error) {
	var m Movie
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get movie %d: %w", id, err)
	}
	return &m, nil
}

// Create inserts a new movie. The unique index on title closes the
// duplicate-title race at the database level.
func (s *Store) Create(ctx context.Context, m *Movie) error {
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return fmt.Errorf("create movie: %w", err)
	}
	return nil
}

// UpdateRatingReview sets the rating and review of an existing movie.
// Nothing is written when the rating is out of range or the id is
// unknown.
func (s *Store) UpdateRatingReview(ctx context.Context, id uint, rating float64, review string) error {
	if rating < 0 || rating > 10 {
		return ErrInvalidRating
	}

	res := s.db.WithContext(ctx).Model(&Movie{}).Where("id = ?", id).
		Updates(map[string]interface{}{"rating": rating, "review": review})
	if res.Error != nil {
		return fmt.Errorf("update movie %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&Movie{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete movie %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
