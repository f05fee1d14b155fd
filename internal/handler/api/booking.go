package api

import (
	"errors"
	"net/http"
	"strings"

	"band-booking/internal/domain/booking"
	reqdto "band-booking/internal/handler/dto/request"
	resdto "band-booking/internal/handler/dto/response"
	"band-booking/internal/handler/httperr"
	"band-booking/internal/pkg/config"
	"band-booking/internal/pkg/errs"
	"band-booking/internal/usecase/commands"
	"band-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "Idempotent-Replayed"
	maxIdempotencyKeyLen = 255
)

var errIdempotencyKeyTooLong = errs.New("idempotency key too long")

type BookingHandler struct {
	cmds commands.BookingCommands
	cfg  config.BookingConfig
}

func NewBookingHandler(cmds commands.BookingCommands, cfg config.BookingConfig) *BookingHandler {
	return &BookingHandler{cmds: cmds, cfg: cfg}
}

// @Summary Book a gig
// @Description Validate the request, re-check the slot against the calendar and create the event
// @Tags bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Key for safely retrying the same submission"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/book [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	idempotencyKey := strings.TrimSpace(c.GetHeader(idempotencyKeyHeader))
	if len(idempotencyKey) > maxIdempotencyKeyLen {
		httperr.AbortWithError(c, http.StatusBadRequest, errIdempotencyKeyTooLong, "Idempotency-Key is too long", nil)
		return
	}

	domainReq, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), domainReq, idempotencyKey)
	if err != nil {
		h.abortWithBookingError(c, err)
		return
	}

	if result.IsReplayed {
		c.Header(replayedHeader, "true")
	}
	c.JSON(http.StatusCreated, resdto.FromBookingConfirmation(result.Confirmation))
}

func (h *BookingHandler) abortWithBookingError(c *gin.Context, err error) {
	var validationErr *commands.ValidationError
	switch {
	case errors.As(err, &validationErr):
		httperr.AbortWithFieldErrors(c, http.StatusBadRequest, err, validationErr.Result.Errors)
	case errs.Is(err, commands.ErrSlotConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "This time slot is no longer available. Please select another time.", nil)
	case errs.Is(err, commands.ErrIdempotencyInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "This booking is still being processed", nil)
	case errs.Is(err, commands.ErrIdempotencyMismatch):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Idempotency-Key was already used for a different booking", nil)
	case errs.Is(err, shared.ErrMalformedInput):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date or time", nil)
	case errs.Is(err, shared.ErrUpstreamUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Calendar is temporarily unavailable. Please try again.", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create booking. Please try again.", nil)
	}
}

// @Summary Booking options
// @Description Event types, duration packages and referral sources offered by the booking form
// @Tags bookings
// @Produce json
// @Success 200 {object} resdto.BookingOptionsResponse
// @Router /api/booking/options [get]
func (h *BookingHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.BookingOptionsResponse{
		EventTypes:           booking.EventTypes,
		DurationPackages:     booking.DurationPackages,
		ReferralSources:      booking.ReferralSources,
		AdvanceBookingMonths: h.cfg.AdvanceMonths,
		TimeZone:             h.cfg.TimeZone,
	})
}
