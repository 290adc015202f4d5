package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dukerupert/vanir/internal/service"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileHandler_ListReviews(t *testing.T) {
	userID := mustUUID(t, "11111111-1111-1111-1111-111111111111")
	productID := mustUUID(t, "22222222-2222-2222-2222-222222222222")

	reviews := &mockReviewService{
		listUserReviews: func(ctx context.Context, uid pgtype.UUID, limit, offset int32) ([]service.Review, error) {
			assert.Equal(t, userID, uid)
			assert.Equal(t, int32(5), limit)
			return []service.Review{{
				ID:          mustUUID(t, "33333333-3333-3333-3333-333333333333"),
				ProductID:   productID,
				ProductName: "Pour Over Kettle",
				Rating:      4,
				Title:       "Pours well",
				IsApproved:  false,
			}}, nil
		},
	}
	h := NewProfileHandler(&mockUserService{}, reviews, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/profile/reviews?limit=5", nil)
	req = withIdentity(req, userID)
	rec := httptest.NewRecorder()

	h.ListReviews(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []struct {
		ProductName string `json:"product_name"`
		Rating      int32  `json:"rating"`
		IsApproved  bool   `json:"is_approved"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Pour Over Kettle", got[0].ProductName)
	assert.False(t, got[0].IsApproved, "pending reviews stay visible to their author")
}

func TestProfileHandler_ListReviews_RequiresAuth(t *testing.T) {
	h := NewProfileHandler(&mockUserService{}, &mockReviewService{}, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/profile/reviews", nil)
	rec := httptest.NewRecorder()

	h.ListReviews(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
