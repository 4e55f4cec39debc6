package services

import (
	"context"
	"strings"

	"smartcity/internal/models/request_models"
	"smartcity/internal/models/response_models"
	"smartcity/internal/repositories"
)

const reviewCreated = "✅ Avis ajouté avec succès !"

type ReviewServiceInterface interface {
	ListReviews(ctx context.Context, session string) ListResult[response_models.Review]
	ListReviewsByUser(ctx context.Context, session, userID string) ListResult[response_models.Review]
	CurrentReviews(ctx context.Context, session string) ListResult[response_models.Review]
	AddReview(ctx context.Context, req request_models.AddReviewRequest) Outcome
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepositoryInterface
	lists      *ListKeeper
}

func NewReviewService(reviewRepo repositories.ReviewRepositoryInterface, lists *ListKeeper) ReviewServiceInterface {
	return &ReviewService{reviewRepo: reviewRepo, lists: lists}
}

func (s *ReviewService) ListReviews(ctx context.Context, session string) ListResult[response_models.Review] {
	return fetchList(ctx, s.lists, session, "reviews", s.reviewRepo.ListReviews)
}

// ListReviewsByUser behaves exactly like ListReviews for a blank user id.
func (s *ReviewService) ListReviewsByUser(ctx context.Context, session, userID string) ListResult[response_models.Review] {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return s.ListReviews(ctx, session)
	}

	return fetchList(ctx, s.lists, session, "reviews:"+userID, func(ctx context.Context) ([]response_models.Review, error) {
		reviews, err := s.reviewRepo.ListReviewsByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		// the filtered endpoint only returns review ids
		for i := range reviews {
			if reviews[i].UserID == "" {
				reviews[i].UserID = userID
			}
		}
		return reviews, nil
	})
}

func (s *ReviewService) CurrentReviews(ctx context.Context, session string) ListResult[response_models.Review] {
	return currentList(ctx, s.lists, session, "reviews", s.reviewRepo.ListReviews)
}

func (s *ReviewService) AddReview(ctx context.Context, req request_models.AddReviewRequest) Outcome {
	msg, err := s.reviewRepo.CreateReview(ctx, req)
	if err != nil {
		return refused(err)
	}
	return accepted(msg, reviewCreated)
}
