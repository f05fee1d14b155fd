package request

type PlacesAutocompleteRequest struct {
	Input        string `json:"input" example:"Grand Hall"`
	SessionToken string `json:"sessionToken,omitempty"`
}

type PlaceDetailsRequest struct {
	PlaceID      string `json:"placeId" example:"ChIJN1t_tDeuEmsRUsoyG83frY4"`
	SessionToken string `json:"sessionToken,omitempty"`
}
