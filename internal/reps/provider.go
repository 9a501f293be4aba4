package reps

import (
	"context"
	"net/url"
	"strings"

	"github.com/jonathan/talkto/internal/fetch"
	"github.com/jonathan/talkto/internal/types"
)

// DefaultFiveCallsURL is the base URL of the 5 Calls API.
const DefaultFiveCallsURL = "https://api.5calls.org"

// Provider returns the representatives for a validated zip code.
type Provider interface {
	Name() string
	Representatives(ctx context.Context, zip string) ([]types.Representative, error)
}

// FiveCallsProvider looks up representatives through the 5 Calls API.
type FiveCallsProvider struct {
	baseURL string
	options *fetch.Options
}

// NewFiveCallsProvider creates a provider. An empty baseURL uses DefaultFiveCallsURL.
func NewFiveCallsProvider(baseURL string, opts *fetch.Options) *FiveCallsProvider {
	if baseURL == "" {
		baseURL = DefaultFiveCallsURL
	}
	return &FiveCallsProvider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		options: opts,
	}
}

// Name implements Provider.
func (p *FiveCallsProvider) Name() string {
	return "5calls"
}

type fiveCallsResponse struct {
	Location        string                 `json:"location"`
	State           string                 `json:"state"`
	District        string                 `json:"district"`
	Representatives []types.Representative `json:"representatives"`
}

// Representatives implements Provider.
func (p *FiveCallsProvider) Representatives(ctx context.Context, zip string) ([]types.Representative, error) {
	endpoint := p.baseURL + "/v1/reps?location=" + url.QueryEscape(zip)

	var resp fiveCallsResponse
	if err := fetch.JSON(ctx, endpoint, p.options, &resp); err != nil {
		return nil, &LookupError{
			Provider: p.Name(),
			Message:  "failed to fetch representatives",
			Cause:    err,
		}
	}

	return resp.Representatives, nil
}
