package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createReview = `-- name: CreateReview :one
INSERT INTO reviews (user_id, product_id, rating, title, comment)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, user_id, product_id, rating, title, comment, is_approved, created_at, updated_at
`

type CreateReviewParams struct {
	UserID    pgtype.UUID
	ProductID pgtype.UUID
	Rating    int32
	Title     pgtype.Text
	Comment   pgtype.Text
}

func (q *Queries) CreateReview(ctx context.Context, arg CreateReviewParams) (Review, error) {
	row := q.db.QueryRow(ctx, createReview, arg.UserID, arg.ProductID, arg.Rating, arg.Title, arg.Comment)
	var r Review
	err := row.Scan(&r.ID, &r.UserID, &r.ProductID, &r.Rating, &r.Title, &r.Comment, &r.IsApproved, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

const findReviewByUserAndProduct = `-- name: FindReviewByUserAndProduct :one
SELECT id, user_id, product_id, rating, title, comment, is_approved, created_at, updated_at
FROM reviews
WHERE user_id = $1 AND product_id = $2
`

type FindReviewByUserAndProductParams struct {
	UserID    pgtype.UUID
	ProductID pgtype.UUID
}

func (q *Queries) FindReviewByUserAndProduct(ctx context.Context, arg FindReviewByUserAndProductParams) (Review, error) {
	row := q.db.QueryRow(ctx, findReviewByUserAndProduct, arg.UserID, arg.ProductID)
	var r Review
	err := row.Scan(&r.ID, &r.UserID, &r.ProductID, &r.Rating, &r.Title, &r.Comment, &r.IsApproved, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

const listApprovedReviews = `-- name: ListApprovedReviews :many
SELECT r.id, r.user_id, r.product_id, r.rating, r.title, r.comment, r.is_approved, r.created_at, r.updated_at,
       u.username
FROM reviews r
JOIN users u ON u.id = r.user_id
WHERE r.product_id = $1 AND r.is_approved
ORDER BY r.created_at DESC, r.id
LIMIT $2 OFFSET $3
`

type ListApprovedReviewsParams struct {
	ProductID pgtype.UUID
	Limit     int32
	Offset    int32
}

type ListApprovedReviewsRow struct {
	ID         pgtype.UUID
	UserID     pgtype.UUID
	ProductID  pgtype.UUID
	Rating     int32
	Title      pgtype.Text
	Comment    pgtype.Text
	IsApproved bool
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
	Username   string
}

func (q *Queries) ListApprovedReviews(ctx context.Context, arg ListApprovedReviewsParams) ([]ListApprovedReviewsRow, error) {
	rows, err := q.db.Query(ctx, listApprovedReviews, arg.ProductID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListApprovedReviewsRow
	for rows.Next() {
		var r ListApprovedReviewsRow
		if err := rows.Scan(
			&r.ID,
			&r.UserID,
			&r.ProductID,
			&r.Rating,
			&r.Title,
			&r.Comment,
			&r.IsApproved,
			&r.CreatedAt,
			&r.UpdatedAt,
			&r.Username,
		); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const listReviewsByUser = `-- name: ListReviewsByUser :many
SELECT r.id, r.user_id, r.product_id, r.rating, r.title, r.comment, r.is_approved, r.created_at, r.updated_at,
       p.name AS product_name
FROM reviews r
JOIN products p ON p.id = r.product_id
WHERE r.user_id = $1
ORDER BY r.created_at DESC, r.id
LIMIT $2 OFFSET $3
`

type ListReviewsByUserParams struct {
	UserID pgtype.UUID
	Limit  int32
	Offset int32
}

type ListReviewsByUserRow struct {
	ID          pgtype.UUID
	UserID      pgtype.UUID
	ProductID   pgtype.UUID
	Rating      int32
	Title       pgtype.Text
	Comment     pgtype.Text
	IsApproved  bool
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
	ProductName string
}

func (q *Queries) ListReviewsByUser(ctx context.Context, arg ListReviewsByUserParams) ([]ListReviewsByUserRow, error) {
	rows, err := q.db.Query(ctx, listReviewsByUser, arg.UserID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListReviewsByUserRow
	for rows.Next() {
		var r ListReviewsByUserRow
		if err := rows.Scan(
			&r.ID,
			&r.UserID,
			&r.ProductID,
			&r.Rating,
			&r.Title,
			&r.Comment,
			&r.IsApproved,
			&r.CreatedAt,
			&r.UpdatedAt,
			&r.ProductName,
		); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const getReviewSummary = `-- name: GetReviewSummary :one
SELECT count(*)::bigint AS total_reviews,
       COALESCE(avg(rating), 0)::float8 AS average_rating
FROM reviews
WHERE product_id = $1 AND is_approved
`

type GetReviewSummaryRow struct {
	TotalReviews  int64
	AverageRating float64
}

func (q *Queries) GetReviewSummary(ctx context.Context, productID pgtype.UUID) (GetReviewSummaryRow, error) {
	row := q.db.QueryRow(ctx, getReviewSummary, productID)
	var r GetReviewSummaryRow
	err := row.Scan(&r.TotalReviews, &r.AverageRating)
	return r, err
}

const getRatingDistribution = `-- name: GetRatingDistribution :many
SELECT rating, count(*)::bigint AS count
FROM reviews
WHERE product_id = $1 AND is_approved
GROUP BY rating
ORDER BY rating
`

type GetRatingDistributionRow struct {
	Rating int32
	Count  int64
}

func (q *Queries) GetRatingDistribution(ctx context.Context, productID pgtype.UUID) ([]GetRatingDistributionRow, error) {
	rows, err := q.db.Query(ctx, getRatingDistribution, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetRatingDistributionRow
	for rows.Next() {
		var r GetRatingDistributionRow
		if err := rows.Scan(&r.Rating, &r.Count); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const setReviewApproval = `-- name: SetReviewApproval :execrows
UPDATE reviews
SET is_approved = $2,
    updated_at = now()
WHERE id = $1
`

type SetReviewApprovalParams struct {
	ID         pgtype.UUID
	IsApproved bool
}

func (q *Queries) SetReviewApproval(ctx context.Context, arg SetReviewApprovalParams) (int64, error) {
	tag, err := q.db.Exec(ctx, setReviewApproval, arg.ID, arg.IsApproved)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteReview = `-- name: DeleteReview :execrows
DELETE FROM reviews
WHERE id = $1
`

func (q *Queries) DeleteReview(ctx context.Context, id pgtype.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteReview, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
