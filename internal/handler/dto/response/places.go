package response

import (
	"encoding/json"

	"band-booking/internal/usecase/queries"
)

type PlacesAutocompleteResponse struct {
	Predictions json.RawMessage `json:"predictions" swaggertype:"array,object"`
	Status      string          `json:"status"`
}

type PlaceDetailsResponse struct {
	Result json.RawMessage `json:"result" swaggertype:"object"`
	Status string          `json:"status"`
}

func FromAutocompleteResult(r *queries.AutocompleteResult) PlacesAutocompleteResponse {
	return PlacesAutocompleteResponse{Predictions: r.Predictions, Status: r.Status}
}

func FromPlaceDetailsResult(r *queries.PlaceDetailsResult) PlaceDetailsResponse {
	return PlaceDetailsResponse{Result: r.Result, Status: r.Status}
}
