package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	appmetrics "eventScout/app/echo-server/metrics"
	"eventScout/business/discovery"
	"eventScout/domain"
	"eventScout/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type (
	DiscoveryHandler struct {
		validate         *validator.Validate
		discoveryService DiscoveryService
		socialService    SocialService
	}

	DiscoveryService interface {
		Search(ctx context.Context, userID uint, personaLabel, geoHash string, page, limit int) (domain.SearchResult, error)
		Explain(ctx context.Context, userID uint, personaLabel, geoHash string, limit int) ([]discovery.ScoredEvent, error)
	}

	SocialService interface {
		Annotate(ctx context.Context, userID uint, events []domain.Event) []domain.DiscoveryItem
	}

	DiscoverQuery struct {
		Persona string `query:"persona"`
		Geohash string `query:"geohash" validate:"omitempty,min=4,max=12"`
		Page    int    `query:"page"`
		Limit   int    `query:"limit" validate:"omitempty,max=100"`
	}

	DiscoverResponse struct {
		Items       []domain.DiscoveryItem   `json:"items"`
		Page        int                      `json:"page"`
		TotalPages  int                      `json:"total_pages"`
		Total       int                      `json:"total"`
		Diagnostics []domain.QueryDiagnostic `json:"diagnostics,omitempty"`
	}
)

func NewDiscoveryHandler(discoveryService DiscoveryService, socialService SocialService) *DiscoveryHandler {
	return &DiscoveryHandler{
		validate:         validator.New(),
		discoveryService: discoveryService,
		socialService:    socialService,
	}
}

// GET /api/v1/discovery?persona=Secure+Optimist&geohash=dr5reg&page=0&limit=20
func (h *DiscoveryHandler) Discover(c echo.Context) error {
	started := time.Now()

	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q DiscoverQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if q.Limit <= 0 {
		q.Limit = 20
	}
	if q.Page < 0 {
		q.Page = 0
	}

	ctx := discovery.WithTraceID(c.Request().Context(), uuid.New().String())

	result, err := h.discoveryService.Search(ctx, userID, q.Persona, q.Geohash, q.Page, q.Limit)
	if err != nil {
		if errors.Is(err, discovery.ErrNoPersona) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	// RSVP / friends annotations are attached strictly after ranking and
	// pagination; they never move an item.
	items := h.socialService.Annotate(ctx, userID, result.Items)

	metrics.DiscoverySearchRequests.Inc()
	metrics.DiscoverySearchLatency.Observe(time.Since(started).Seconds())
	appmetrics.DiscoverPageSize.Observe(float64(len(items)))

	return c.JSON(http.StatusOK, fres.Response.StatusOK(DiscoverResponse{
		Items:       items,
		Page:        result.Page,
		TotalPages:  result.TotalPages,
		Total:       result.Total,
		Diagnostics: result.Diagnostics,
	}))
}

// GET /api/v1/discovery/explain?persona=...&geohash=...&limit=20
// Exposes the per-axis score components for inspection.
func (h *DiscoveryHandler) Explain(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q DiscoverQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if q.Limit <= 0 {
		q.Limit = 20
	}

	ctx := discovery.WithTraceID(c.Request().Context(), uuid.New().String())

	scored, err := h.discoveryService.Explain(ctx, userID, q.Persona, q.Geohash, q.Limit)
	if err != nil {
		if errors.Is(err, discovery.ErrNoPersona) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(scored))
}
