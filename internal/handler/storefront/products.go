package storefront

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/vanir/internal/handler"
	"github.com/dukerupert/vanir/internal/service"
	"github.com/dukerupert/vanir/internal/telemetry"
)

// ProductHandler serves the public catalog and product reviews.
type ProductHandler struct {
	products service.ProductService
	reviews  service.ReviewService
	metrics  *telemetry.BusinessMetrics
	logger   *slog.Logger
}

func NewProductHandler(products service.ProductService, reviews service.ReviewService, metrics *telemetry.BusinessMetrics, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		reviews:  reviews,
		metrics:  metrics,
		logger:   logger,
	}
}

// List handles GET /products. Only active products are visible here.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := service.ProductFilter{
		Search:   r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
		Limit:    handler.QueryInt32(r, "limit", 50),
		Offset:   handler.QueryInt32(r, "offset", 0),
	}

	products, err := h.products.ListProducts(r.Context(), filter)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, handler.NewProductViews(products))
}

// Get handles GET /products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	productID, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	product, err := h.products.GetProduct(r.Context(), productID, false)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, handler.NewProductView(*product))
}

// ListReviews handles GET /products/{id}/reviews
func (h *ProductHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	productID, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	limit := handler.QueryInt32(r, "limit", 20)
	offset := handler.QueryInt32(r, "offset", 0)

	reviews, err := h.reviews.ListProductReviews(r.Context(), productID, limit, offset)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, handler.NewReviewViews(reviews))
}

type ratingResponse struct {
	TotalReviews  int64           `json:"total_reviews"`
	AverageRating float64         `json:"average_rating"`
	Distribution  map[int32]int64 `json:"distribution"`
}

// GetRating handles GET /products/{id}/rating
func (h *ProductHandler) GetRating(w http.ResponseWriter, r *http.Request) {
	productID, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	summary, err := h.reviews.GetProductRating(r.Context(), productID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, ratingResponse{
		TotalReviews:  summary.TotalReviews,
		AverageRating: summary.AverageRating,
		Distribution:  summary.Distribution,
	})
}

type createReviewRequest struct {
	Rating  int32  `json:"rating"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

// CreateReview handles POST /products/{id}/reviews
func (h *ProductHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	identity, err := handler.Identity(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	productID, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	var req createReviewRequest
	if err := handler.Decode(w, r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	review, err := h.reviews.CreateReview(r.Context(), identity.UserID, productID, service.ReviewParams{
		Rating:  req.Rating,
		Title:   req.Title,
		Comment: req.Comment,
	})
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	h.metrics.ReviewsSubmitted.Inc()
	handler.RespondJSON(w, http.StatusCreated, handler.NewReviewView(*review))
}
