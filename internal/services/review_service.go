package services

import (
	"parrotshop/internal/models"
	"parrotshop/internal/repositories"
)

// ReviewService handles the append-only testimonial list.
type ReviewService struct {
	repo repositories.ReviewRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(repo repositories.ReviewRepository) *ReviewService {
	return &ReviewService{
		repo: repo,
	}
}

// ListReviews retrieves all reviews, newest first.
func (s *ReviewService) ListReviews() ([]models.Review, error) {
	return s.repo.List()
}

// CreateReview appends a new review.
func (s *ReviewService) CreateReview(review *models.Review) error {
	return s.repo.Create(review)
}
