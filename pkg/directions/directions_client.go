package directions

import (
	"FoodBridge/domain"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrProviderUnavailable covers every way the external lookup can fail:
// transport errors, timeouts and non-OK provider statuses. Callers degrade
// to a local estimate instead of surfacing it.
var ErrProviderUnavailable = domain.NewFailure(domain.KindUnavailable, "directions provider unavailable")

type (
	Estimate struct {
		DistanceText string
		DurationText string
		Summary      string
		MapsLink     string
	}

	// Client resolves a travel estimate between two postal addresses.
	Client interface {
		Route(ctx context.Context, origin, destination string) (*Estimate, error)
	}

	googleClient struct {
		baseURL    string
		apiKey     string
		httpClient *http.Client
	}
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/directions/json"

func NewGoogleClient(baseURL, apiKey string) Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &googleClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type googleDirectionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Summary string `json:"summary"`
		Legs    []struct {
			Distance struct {
				Text string `json:"text"`
			} `json:"distance"`
			Duration struct {
				Text string `json:"text"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

func (c *googleClient) Route(ctx context.Context, origin, destination string) (*Estimate, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("directions API key not configured: %w", ErrProviderUnavailable)
	}

	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directions provider returned %s: %w", resp.Status, ErrProviderUnavailable)
	}

	var payload googleDirectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("directions response malformed: %w", ErrProviderUnavailable)
	}

	if payload.Status != "OK" || len(payload.Routes) == 0 || len(payload.Routes[0].Legs) == 0 {
		return nil, fmt.Errorf("directions provider status %s: %w", payload.Status, ErrProviderUnavailable)
	}

	leg := payload.Routes[0].Legs[0]
	return &Estimate{
		DistanceText: leg.Distance.Text,
		DurationText: leg.Duration.Text,
		Summary:      payload.Routes[0].Summary,
		MapsLink:     MapsLink(origin, destination),
	}, nil
}

// MapsLink builds a universal maps link the frontend can open directly.
func MapsLink(origin, destination string) string {
	return fmt.Sprintf(
		"https://www.google.com/maps/dir/?api=1&origin=%s&destination=%s",
		url.QueryEscape(origin),
		url.QueryEscape(destination),
	)
}
