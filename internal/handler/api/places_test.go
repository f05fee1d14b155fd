//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"band-booking/internal/handler/api"
	reqdto "band-booking/internal/handler/dto/request"
	"band-booking/internal/pkg/errs"
	"band-booking/internal/usecase/queries"
	"band-booking/internal/usecase/shared"
	"band-booking/tests/common/httptest"
	"band-booking/tests/common/testutil"
	queriesmock "band-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PlacesHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockPlacesQueries
	handler     *api.PlacesHandler
}

func (s *PlacesHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPlacesQueries(s.mockCtrl)
	s.handler = api.NewPlacesHandler(s.mockQueries)

	s.router.POST("/api/places/autocomplete", s.handler.Autocomplete)
	s.router.POST("/api/places/details", s.handler.Details)
}

func (s *PlacesHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPlacesHandlerSuite(t *testing.T) {
	suite.Run(t, new(PlacesHandlerTestSuite))
}

func (s *PlacesHandlerTestSuite) TestAutocomplete() {
	url := "/api/places/autocomplete"
	reqBody := reqdto.PlacesAutocompleteRequest{Input: "grand hall", SessionToken: "tok-1"}

	s.Run("success: passes predictions through untouched", func() {
		s.mockQueries.EXPECT().Autocomplete(gomock.Any(), "grand hall", "tok-1").
			Return(&queries.AutocompleteResult{
				Predictions: json.RawMessage(`[{"place_id":"p1","description":"The Grand Hall"}]`),
				Status:      "OK",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		var body struct {
			Predictions []map[string]any `json:"predictions"`
			Status      string           `json:"status"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("OK", body.Status)
		s.Require().Len(body.Predictions, 1)
		s.Equal("p1", body.Predictions[0]["place_id"])
	})

	s.Run("success: session token is optional", func() {
		s.mockQueries.EXPECT().Autocomplete(gomock.Any(), "grand hall", "").
			Return(&queries.AutocompleteResult{Predictions: json.RawMessage(`[]`), Status: "ZERO_RESULTS"}, nil).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("sessionToken", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps query errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "blank input",
				queriesError:   errs.Mark(queries.ErrPlacesInputRequired, shared.ErrMalformedInput),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Input is required",
			},
			{
				name:           "no API key",
				queriesError:   queries.ErrPlacesNotConfigured,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Server configuration error",
			},
			{
				name:           "provider failure",
				queriesError:   errs.Mark(errors.New("REQUEST_DENIED"), shared.ErrUpstreamUnavailable),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Failed to fetch autocomplete results",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().Autocomplete(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *PlacesHandlerTestSuite) TestDetails() {
	url := "/api/places/details"

	s.Run("success: returns the place result", func() {
		s.mockQueries.EXPECT().Details(gomock.Any(), "p1", "").
			Return(&queries.PlaceDetailsResult{
				Result: json.RawMessage(`{"name":"The Grand Hall","formatted_address":"123 Main St"}`),
				Status: "OK",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.PlaceDetailsRequest{PlaceID: "p1"}, nil)

		var body struct {
			Result map[string]any `json:"result"`
			Status string         `json:"status"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("The Grand Hall", body.Result["name"])
	})

	s.Run("error: 400 Bad Request without a place id", func() {
		s.mockQueries.EXPECT().Details(gomock.Any(), "", "").
			Return(nil, errs.Mark(queries.ErrPlaceIDRequired, shared.ErrMalformedInput)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Place ID is required")
	})

	s.Run("error: 400 Bad Request on malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, "{")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
