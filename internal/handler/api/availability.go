package api

import (
	"math"
	"net/http"
	"strconv"

	resdto "band-booking/internal/handler/dto/response"
	"band-booking/internal/handler/httperr"
	"band-booking/internal/pkg/errs"
	"band-booking/internal/usecase/queries"
	"band-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

var (
	errMissingDate     = errs.New("date parameter is required")
	errInvalidDuration = errs.New("duration must be a number of hours")
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Get availability
// @Description List the day's hourly slots and whether a gig of the given length can start in each
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param duration query number false "Gig length in hours, fractions truncated (default 4)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingDate, "Date parameter is required", nil)
		return
	}

	var hours int
	if raw := c.Query("duration"); raw != "" {
		// fractional hours from the booking form are truncated to whole slots
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) == 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(errInvalidDuration, shared.ErrMalformedInput), "Duration must be between 1 and 12 hours", nil)
			return
		}
		hours = int(math.Trunc(v))
	}

	result, err := h.q.GetAvailability(c.Request.Context(), queries.AvailabilityQuery{
		Date:          date,
		DurationHours: hours,
	})
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInvalidDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format. Use YYYY-MM-DD", nil)
		case errs.Is(err, queries.ErrInvalidDuration):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Duration must be between 1 and 12 hours", nil)
		case errs.Is(err, queries.ErrDateInPast):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Cannot book gigs in the past", nil)
		case errs.Is(err, queries.ErrBeyondHorizon):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Date is too far in advance", nil)
		case errs.Is(err, shared.ErrUpstreamUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Failed to fetch availability", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayAvailability(result))
}
