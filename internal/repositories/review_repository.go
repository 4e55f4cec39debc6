package repositories

import (
	"context"
	"net/url"

	"smartcity/internal/models/request_models"
	"smartcity/internal/models/response_models"
)

type ReviewRepositoryInterface interface {
	ListReviews(ctx context.Context) ([]response_models.Review, error)
	ListReviewsByUser(ctx context.Context, userID string) ([]response_models.Review, error)
	CreateReview(ctx context.Context, req request_models.AddReviewRequest) (response_models.MessageResponse, error)
}

type ReviewRepository struct {
	*BackendRepository
}

func NewReviewRepository(backend *BackendRepository) ReviewRepositoryInterface {
	return &ReviewRepository{BackendRepository: backend}
}

func (r *ReviewRepository) ListReviews(ctx context.Context) ([]response_models.Review, error) {
	var reviews []response_models.Review
	if err := r.get(ctx, "/avis/", "/avis/", &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) ListReviewsByUser(ctx context.Context, userID string) ([]response_models.Review, error) {
	var reviews []response_models.Review
	if err := r.get(ctx, "/avis/{user}", "/avis/"+url.PathEscape(userID), &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) CreateReview(ctx context.Context, req request_models.AddReviewRequest) (response_models.MessageResponse, error) {
	return r.post(ctx, "/add_avis/", req)
}
