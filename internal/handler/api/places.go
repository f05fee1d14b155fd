package api

import (
	"net/http"

	reqdto "band-booking/internal/handler/dto/request"
	resdto "band-booking/internal/handler/dto/response"
	"band-booking/internal/handler/httperr"
	"band-booking/internal/pkg/errs"
	"band-booking/internal/usecase/queries"
	"band-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type PlacesHandler struct {
	q queries.PlacesQueries
}

func NewPlacesHandler(q queries.PlacesQueries) *PlacesHandler {
	return &PlacesHandler{q: q}
}

// @Summary Venue autocomplete
// @Description Proxy Google Places autocomplete without exposing the API key
// @Tags places
// @Accept json
// @Produce json
// @Param request body reqdto.PlacesAutocompleteRequest true "Autocomplete input"
// @Success 200 {object} resdto.PlacesAutocompleteResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/places/autocomplete [post]
func (h *PlacesHandler) Autocomplete(c *gin.Context) {
	var req reqdto.PlacesAutocompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.q.Autocomplete(c.Request.Context(), req.Input, req.SessionToken)
	if err != nil {
		abortWithPlacesError(c, err, "Input is required", "Failed to fetch autocomplete results")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAutocompleteResult(result))
}

// @Summary Venue details
// @Description Proxy Google Places details for a selected prediction
// @Tags places
// @Accept json
// @Produce json
// @Param request body reqdto.PlaceDetailsRequest true "Place id"
// @Success 200 {object} resdto.PlaceDetailsResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/places/details [post]
func (h *PlacesHandler) Details(c *gin.Context) {
	var req reqdto.PlaceDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.q.Details(c.Request.Context(), req.PlaceID, req.SessionToken)
	if err != nil {
		abortWithPlacesError(c, err, "Place ID is required", "Failed to fetch place details")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlaceDetailsResult(result))
}

func abortWithPlacesError(c *gin.Context, err error, badRequestMsg, upstreamMsg string) {
	switch {
	case errs.Is(err, shared.ErrMalformedInput):
		httperr.AbortWithError(c, http.StatusBadRequest, err, badRequestMsg, nil)
	case errs.Is(err, queries.ErrPlacesNotConfigured):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Server configuration error", nil)
	case errs.Is(err, shared.ErrUpstreamUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, upstreamMsg, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
