//go:build e2e

package booking

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	resdto "band-booking/internal/handler/dto/response"
	"band-booking/tests/common/builder"
	"band-booking/tests/common/dbtest"
	"band-booking/tests/common/httptest"
	"band-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/suite"
)

type bookingE2ESuite struct {
	e2e.SharedSuite
	loc  *time.Location
	date string
}

func TestBookingE2E(t *testing.T) {
	suite.Run(t, new(bookingE2ESuite))
}

func (s *bookingE2ESuite) SetupSuite() {
	s.SharedSuite.SetupSuite()

	loc, err := time.LoadLocation(s.Config.Booking.TimeZone)
	s.Require().NoError(err)
	s.loc = loc
	// the app runs on the real clock, so pick a day safely in the future
	s.date = time.Now().In(loc).AddDate(0, 0, 14).Format("2006-01-02")
}

func (s *bookingE2ESuite) at(clock string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", s.date+" "+clock, s.loc)
	s.Require().NoError(err)
	return t
}

func (s *bookingE2ESuite) availability(duration int) resdto.AvailabilityResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
		fmt.Sprintf("/api/availability?date=%s&duration=%d", s.date, duration), nil, nil)

	var res resdto.AvailabilityResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	return res
}

func (s *bookingE2ESuite) slotAvailable(res resdto.AvailabilityResponse, start string) bool {
	for _, slot := range res.Slots {
		if slot.Start == start {
			return slot.Available
		}
	}
	s.FailNow("slot not found", start)
	return false
}

func (s *bookingE2ESuite) TestAvailability() {
	s.Run("empty calendar leaves every slot open", func() {
		res := s.availability(4)

		s.Equal(s.date, res.Date)
		s.Equal(4, res.Duration)
		s.Len(res.Slots, 24)
		for _, slot := range res.Slots {
			s.True(slot.Available, "slot %s", slot.Start)
		}
	})

	s.Run("existing event blocks its buffered span", func() {
		dbtest.SeedCalendarEvent(s.T(), s.DB, "Private party", s.at("14:00"), s.at("18:00"), s.Config.Booking.Buffer)

		res := s.availability(4)

		s.True(s.slotAvailable(res, "09:00"))
		s.False(s.slotAvailable(res, "10:00"))
		s.False(s.slotAvailable(res, "17:00"))
		s.False(s.slotAvailable(res, "18:00"))
		s.True(s.slotAvailable(res, "19:00"))
	})

	s.Run("invalid date is rejected", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/availability?date=not-a-date", nil, nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})
}

func (s *bookingE2ESuite) TestCreateBooking() {
	s.Run("books a free slot and stores the event", func() {
		body := builder.NewBookingRequestBuilder().WithSchedule(s.date, "14:00").BuildRequestDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/book", body, nil)

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)

		expected := resdto.BookingResponse{
			Success: true,
			Message: "Gig booking confirmed!",
			Appointment: resdto.AppointmentResponse{
				Date:      s.date,
				Time:      "14:00",
				Duration:  4,
				EventType: "wedding",
			},
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(resdto.BookingResponse{}, "BookingID"),
		}
		if diff := cmp.Diff(expected, res, opts...); diff != "" {
			s.T().Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}
		s.NotEmpty(res.BookingID)
		s.Equal(1, dbtest.CountCalendarEvents(s.T(), s.DB))

		after := s.availability(4)
		s.False(s.slotAvailable(after, "14:00"))
	})

	s.Run("second booking of the same slot conflicts", func() {
		body := builder.NewBookingRequestBuilder().WithSchedule(s.date, "14:00").BuildRequestDTO()

		first := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/book", body, nil)
		httptest.AssertSuccessResponse(s.T(), first, http.StatusCreated, nil)

		second := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/book", body, nil)
		httptest.AssertErrorResponse(s.T(), second, http.StatusConflict, "no longer available")
		s.Equal(1, dbtest.CountCalendarEvents(s.T(), s.DB))
	})

	s.Run("booking inside the buffer of a seeded event conflicts", func() {
		dbtest.SeedCalendarEvent(s.T(), s.DB, "Corporate dinner", s.at("10:00"), s.at("13:00"), s.Config.Booking.Buffer)
		body := builder.NewBookingRequestBuilder().WithSchedule(s.date, "13:00").WithDuration(2).BuildRequestDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/book", body, nil)

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
		s.Equal(1, dbtest.CountCalendarEvents(s.T(), s.DB))
	})

	s.Run("buffer-sized gap is bookable", func() {
		dbtest.SeedCalendarEvent(s.T(), s.DB, "Corporate dinner", s.at("10:00"), s.at("13:00"), s.Config.Booking.Buffer)
		body := builder.NewBookingRequestBuilder().WithSchedule(s.date, "14:00").WithDuration(2).BuildRequestDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/book", body, nil)

		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, nil)
		s.Equal(2, dbtest.CountCalendarEvents(s.T(), s.DB))
	})

	s.Run("idempotent retry replays the confirmation", func() {
		body := builder.NewBookingRequestBuilder().WithSchedule(s.date, "19:00").BuildRequestDTO()
		headers := map[string]string{"Idempotency-Key": "retry-" + s.date}

		first := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/book", body, headers)
		var original resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), first, http.StatusCreated, &original)

		retry := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/book", body, headers)
		var replayed resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), retry, http.StatusCreated, &replayed)
		httptest.AssertHeaders(s.T(), retry, map[string]string{"Idempotent-Replayed": "true"})

		s.Equal(original.BookingID, replayed.BookingID)
		s.Equal(1, dbtest.CountCalendarEvents(s.T(), s.DB))
	})

	s.Run("invalid request reports every field", func() {
		body := builder.NewBookingRequestBuilder().
			WithSchedule(s.date, "14:00").
			WithContact("", "").
			With(func(b *builder.BookingRequestBuilder) { b.EventDescription = "too short" }).
			BuildRequestDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/book", body, nil)

		res := httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
		s.Contains(res.Detail.Fields, "contactPhone")
		s.Contains(res.Detail.Fields, "eventDescription")
		s.Equal(0, dbtest.CountCalendarEvents(s.T(), s.DB))
	})
}
