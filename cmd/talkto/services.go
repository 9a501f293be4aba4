package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jonathan/talkto/internal/config"
	"github.com/jonathan/talkto/internal/directory"
	"github.com/jonathan/talkto/internal/fetch"
	"github.com/jonathan/talkto/internal/legislation"
	"github.com/jonathan/talkto/internal/reps"
	"github.com/jonathan/talkto/internal/trends"
)

func fetchOptions(c *config.Config) *fetch.Options {
	opts := fetch.DefaultOptions()
	opts.Timeout = c.HTTPTimeout
	return opts
}

// newRepsService builds the lookup service for the configured provider.
func newRepsService(ctx context.Context, c *config.Config) (*reps.Service, error) {
	switch c.Provider {
	case config.ProviderCivic:
		provider, err := reps.NewCivicProvider(ctx, reps.CivicConfig{
			APIKey:     c.CivicAPIKey,
			Endpoint:   c.CivicEndpoint,
			HTTPClient: &http.Client{Timeout: c.HTTPTimeout},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create civic provider: %w", err)
		}
		return reps.NewService(provider), nil
	default:
		return reps.NewService(reps.NewFiveCallsProvider(c.FiveCallsURL, fetchOptions(c))), nil
	}
}

func newTrendsAggregator(c *config.Config) *trends.Aggregator {
	return trends.NewAggregator(trends.NewGoogleTrendsClient(c.TrendsURL, c.HTTPTimeout), trends.DefaultConfig())
}

func newActivityService(c *config.Config) *legislation.Service {
	fetcher := fetch.NewCachedFetcher(&fetch.CachedFetcherConfig{
		CacheTTL:  c.CacheTTL,
		CacheSize: c.CacheSize,
		Options:   fetchOptions(c).WithHeader("Accept", "application/json"),
	})
	client := legislation.NewCongressClient(c.CongressURL, c.CongressAPIKey, fetcher)
	return legislation.NewService(client, legislation.ServiceConfig{
		BillLimit: c.BillLimit,
	})
}

func loadDirectory(c *config.Config) (*directory.Directory, error) {
	return directory.LoadFiles(c.OrganizationsFile, c.LocalOrganizationsFile)
}

// writeJSON prints v as indented JSON to the command's output.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
