// Package places proxies Google Places lookups so the API key stays on
// the server.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"band-booking/internal/infra"
	"band-booking/internal/pkg/config"
	"band-booking/internal/usecase/queries"
)

const (
	autocompleteTypes = "establishment|geocode"
	detailsFields     = "formatted_address,name,geometry,place_id,address_components"

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"

	maxResponseBytes = 1 << 20
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

func NewClient(cfg config.PlacesConfig, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		logger:     logger,
	}
}

type autocompleteResponse struct {
	Predictions json.RawMessage `json:"predictions"`
	Status      string          `json:"status"`
}

type detailsResponse struct {
	Result json.RawMessage `json:"result"`
	Status string          `json:"status"`
}

func (c *Client) Autocomplete(ctx context.Context, input, sessionToken string) (*queries.AutocompleteResult, error) {
	params := url.Values{}
	params.Set("input", input)
	params.Set("key", c.apiKey)
	params.Set("types", autocompleteTypes)
	if sessionToken != "" {
		params.Set("sessiontoken", sessionToken)
	}

	var resp autocompleteResponse
	if err := c.get(ctx, "/autocomplete/json", params, &resp); err != nil {
		return nil, err
	}
	if resp.Status != statusOK && resp.Status != statusZeroResults {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindUnavailable,
			"places autocomplete returned status "+resp.Status, nil)
	}

	predictions := resp.Predictions
	if len(predictions) == 0 || string(predictions) == "null" {
		predictions = json.RawMessage("[]")
	}
	return &queries.AutocompleteResult{Predictions: predictions, Status: resp.Status}, nil
}

func (c *Client) Details(ctx context.Context, placeID, sessionToken string) (*queries.PlaceDetailsResult, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("key", c.apiKey)
	params.Set("fields", detailsFields)
	if sessionToken != "" {
		params.Set("sessiontoken", sessionToken)
	}

	var resp detailsResponse
	if err := c.get(ctx, "/details/json", params, &resp); err != nil {
		return nil, err
	}
	if resp.Status != statusOK {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindUnavailable,
			"places details returned status "+resp.Status, nil)
	}
	return &queries.PlaceDetailsResult{Result: resp.Result, Status: resp.Status}, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindUnavailable, "places request failed", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return infra.WrapGatewayErr(c.logger, infra.KindUnavailable,
			fmt.Sprintf("places returned HTTP %d", res.StatusCode), nil)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindUnavailable, "failed to read places response", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindMalformedResponse, "failed to decode places response", err)
	}
	return nil
}
