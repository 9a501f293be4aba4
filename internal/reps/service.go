package reps

import (
	"context"
	"log"
	"time"

	"github.com/jonathan/talkto/internal/metrics"
	"github.com/jonathan/talkto/internal/types"
)

// Service validates zip codes, queries a provider and classifies the result.
type Service struct {
	provider Provider
}

// NewService creates a representatives service.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// Lookup returns the classified representatives for a zip code.
// Invalid zip codes are rejected before any network call.
func (s *Service) Lookup(ctx context.Context, zip string) (*types.RepsResponse, error) {
	clean, err := ValidateZip(zip)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	list, err := s.provider.Representatives(ctx, clean)
	metrics.RecordUpstream(metrics.UpstreamReps, err, time.Since(start).Seconds())
	if err != nil {
		log.Printf("[reps] %s lookup for %s failed: %v", s.provider.Name(), clean, err)
		return nil, err
	}

	if len(list) == 0 {
		return nil, ErrNoRepresentatives
	}

	return &types.RepsResponse{
		Zip:         clean,
		RepsByLevel: Classify(list),
	}, nil
}
