package queries

import (
	"context"
	"encoding/json"
	"strings"

	"band-booking/internal/pkg/errs"
	"band-booking/internal/usecase/shared"
)

var (
	ErrPlacesInputRequired = errs.New("input is required")
	ErrPlaceIDRequired     = errs.New("place ID is required")
	ErrPlacesNotConfigured = errs.New("places API key not configured")
)

// AutocompleteResult carries the provider's predictions through untouched.
type AutocompleteResult struct {
	Predictions json.RawMessage
	Status      string
}

type PlaceDetailsResult struct {
	Result json.RawMessage
	Status string
}

type PlacesClient interface {
	Autocomplete(ctx context.Context, input, sessionToken string) (*AutocompleteResult, error)
	Details(ctx context.Context, placeID, sessionToken string) (*PlaceDetailsResult, error)
}

type PlacesQueries interface {
	Autocomplete(ctx context.Context, input, sessionToken string) (*AutocompleteResult, error)
	Details(ctx context.Context, placeID, sessionToken string) (*PlaceDetailsResult, error)
}

type placesQueriesImpl struct {
	client PlacesClient
}

// NewPlacesQueries accepts a nil client when no API key is configured;
// every lookup then fails with ErrPlacesNotConfigured.
func NewPlacesQueries(client PlacesClient) PlacesQueries {
	return &placesQueriesImpl{client: client}
}

func (p *placesQueriesImpl) Autocomplete(ctx context.Context, input, sessionToken string) (*AutocompleteResult, error) {
	if strings.TrimSpace(input) == "" {
		return nil, errs.Mark(ErrPlacesInputRequired, shared.ErrMalformedInput)
	}
	if p.client == nil {
		return nil, ErrPlacesNotConfigured
	}
	res, err := p.client.Autocomplete(ctx, input, sessionToken)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrUpstreamUnavailable)
	}
	return res, nil
}

func (p *placesQueriesImpl) Details(ctx context.Context, placeID, sessionToken string) (*PlaceDetailsResult, error) {
	if strings.TrimSpace(placeID) == "" {
		return nil, errs.Mark(ErrPlaceIDRequired, shared.ErrMalformedInput)
	}
	if p.client == nil {
		return nil, ErrPlacesNotConfigured
	}
	res, err := p.client.Details(ctx, placeID, sessionToken)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrUpstreamUnavailable)
	}
	return res, nil
}
