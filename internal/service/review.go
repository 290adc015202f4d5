package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dukerupert/vanir/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// ReviewService provides business logic for product reviews
type ReviewService interface {
	CreateReview(ctx context.Context, userID, productID pgtype.UUID, params ReviewParams) (*Review, error)
	ListProductReviews(ctx context.Context, productID pgtype.UUID, limit, offset int32) ([]Review, error)
	ListUserReviews(ctx context.Context, userID pgtype.UUID, limit, offset int32) ([]Review, error)
	GetProductRating(ctx context.Context, productID pgtype.UUID) (*RatingSummary, error)
	SetApproval(ctx context.Context, reviewID pgtype.UUID, approved bool) error
	DeleteReview(ctx context.Context, reviewID pgtype.UUID) error
}

// Review represents a review view model
type Review struct {
	ID          pgtype.UUID
	ProductID   pgtype.UUID
	ProductName string
	Username    string
	Rating      int32
	Title       string
	Comment     string
	IsApproved  bool
	CreatedAt   pgtype.Timestamptz
}

// ReviewParams carries the fields of a submitted review
type ReviewParams struct {
	Rating  int32
	Title   string
	Comment string
}

// RatingSummary aggregates a product's approved reviews
type RatingSummary struct {
	TotalReviews  int64
	AverageRating float64
	Distribution  map[int32]int64
}

type reviewService struct {
	repo repository.Querier
}

// NewReviewService creates a new ReviewService instance
func NewReviewService(repo repository.Querier) ReviewService {
	return &reviewService{repo: repo}
}

// CreateReview submits a review for a product. Each user gets one review
// per product; reviews start unapproved and are hidden until moderated.
func (s *reviewService) CreateReview(ctx context.Context, userID, productID pgtype.UUID, params ReviewParams) (*Review, error) {
	if params.Rating < 1 || params.Rating > 5 {
		return nil, ErrInvalidRating
	}

	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if !product.IsActive {
		return nil, ErrProductNotFound
	}

	_, err = s.repo.FindReviewByUserAndProduct(ctx, repository.FindReviewByUserAndProductParams{
		UserID:    userID,
		ProductID: productID,
	})
	if err == nil {
		return nil, ErrDuplicateReview
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to check for existing review: %w", err)
	}

	created, err := s.repo.CreateReview(ctx, repository.CreateReviewParams{
		UserID:    userID,
		ProductID: productID,
		Rating:    params.Rating,
		Title:     optionalText(params.Title),
		Comment:   optionalText(params.Comment),
	})
	if err != nil {
		// The existence check above can lose a race with another request.
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateReview
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	review := Review{
		ID:         created.ID,
		ProductID:  created.ProductID,
		Rating:     created.Rating,
		Title:      created.Title.String,
		Comment:    created.Comment.String,
		IsApproved: created.IsApproved,
		CreatedAt:  created.CreatedAt,
	}
	return &review, nil
}

// ListProductReviews returns a product's approved reviews, newest first.
func (s *reviewService) ListProductReviews(ctx context.Context, productID pgtype.UUID, limit, offset int32) ([]Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := s.repo.ListApprovedReviews(ctx, repository.ListApprovedReviewsParams{
		ProductID: productID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	reviews := make([]Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, Review{
			ID:         row.ID,
			ProductID:  row.ProductID,
			Username:   row.Username,
			Rating:     row.Rating,
			Title:      row.Title.String,
			Comment:    row.Comment.String,
			IsApproved: row.IsApproved,
			CreatedAt:  row.CreatedAt,
		})
	}
	return reviews, nil
}

// ListUserReviews returns every review the user has written, newest first,
// including ones still waiting for moderation.
func (s *reviewService) ListUserReviews(ctx context.Context, userID pgtype.UUID, limit, offset int32) ([]Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := s.repo.ListReviewsByUser(ctx, repository.ListReviewsByUserParams{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list user reviews: %w", err)
	}

	reviews := make([]Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, Review{
			ID:          row.ID,
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Rating:      row.Rating,
			Title:       row.Title.String,
			Comment:     row.Comment.String,
			IsApproved:  row.IsApproved,
			CreatedAt:   row.CreatedAt,
		})
	}
	return reviews, nil
}

// GetProductRating aggregates the approved reviews of a product.
func (s *reviewService) GetProductRating(ctx context.Context, productID pgtype.UUID) (*RatingSummary, error) {
	summary, err := s.repo.GetReviewSummary(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get review summary: %w", err)
	}

	dist, err := s.repo.GetRatingDistribution(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rating distribution: %w", err)
	}

	result := &RatingSummary{
		TotalReviews:  summary.TotalReviews,
		AverageRating: summary.AverageRating,
		Distribution:  make(map[int32]int64, len(dist)),
	}
	for _, row := range dist {
		result.Distribution[row.Rating] = row.Count
	}
	return result, nil
}

// SetApproval publishes or hides a review.
func (s *reviewService) SetApproval(ctx context.Context, reviewID pgtype.UUID, approved bool) error {
	rows, err := s.repo.SetReviewApproval(ctx, repository.SetReviewApprovalParams{
		ID:         reviewID,
		IsApproved: approved,
	})
	if err != nil {
		return fmt.Errorf("failed to set review approval: %w", err)
	}
	if rows == 0 {
		return ErrReviewNotFound
	}
	return nil
}

// DeleteReview removes a review permanently.
func (s *reviewService) DeleteReview(ctx context.Context, reviewID pgtype.UUID) error {
	rows, err := s.repo.DeleteReview(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if rows == 0 {
		return ErrReviewNotFound
	}
	return nil
}
