package repositories

import (
	"sort"
	"sync"
	"time"

	"parrotshop/internal/models"
)

// MockReviewRepository is an in-memory implementation of ReviewRepository.
type MockReviewRepository struct {
	reviews map[uint]models.Review
	nextID  uint
	mu      sync.RWMutex
}

// NewMockReviewRepository creates a new instance of MockReviewRepository.
func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{
		reviews: make(map[uint]models.Review),
		nextID:  1,
	}
}

// List returns all reviews, newest first.
func (r *MockReviewRepository) List() ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Review, 0, len(r.reviews))
	for _, review := range r.reviews {
		list = append(list, review)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

// Create appends a new review.
func (r *MockReviewRepository) Create(review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if review.ID == 0 {
		review.ID = r.nextID
		r.nextID++
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	r.reviews[review.ID] = *review
	return nil
}
