package reps

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"google.golang.org/api/civicinfo/v2"
	"google.golang.org/api/option"

	"github.com/jonathan/talkto/internal/types"
)

// CivicProvider looks up representatives through the Google Civic Information API.
type CivicProvider struct {
	svc *civicinfo.Service
}

// CivicConfig configures the Civic Information client.
type CivicConfig struct {
	APIKey     string
	Endpoint   string // Overrides the API base URL (tests)
	HTTPClient *http.Client
}

// NewCivicProvider creates a provider backed by the civicinfo/v2 client.
func NewCivicProvider(ctx context.Context, cfg CivicConfig) (*CivicProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New(MsgMissingCivicKey)
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	svc, err := civicinfo.NewService(ctx, opts...)
	if err != nil {
		return nil, &LookupError{Provider: "civicinfo", Message: "failed to create client", Cause: err}
	}
	return &CivicProvider{svc: svc}, nil
}

// Name implements Provider.
func (p *CivicProvider) Name() string {
	return "civicinfo"
}

// Representatives implements Provider.
func (p *CivicProvider) Representatives(ctx context.Context, zip string) ([]types.Representative, error) {
	resp, err := p.svc.Representatives.RepresentativeInfoByAddress().
		Address(zip).
		Context(ctx).
		Do()
	if err != nil {
		return nil, &LookupError{
			Provider: p.Name(),
			Message:  "failed to fetch representatives",
			Cause:    err,
		}
	}
	return flattenCivic(resp), nil
}

// flattenCivic turns offices and officials into one record per official.
// Federal executive offices are skipped; the panel covers legislators and
// state government only.
func flattenCivic(resp *civicinfo.RepresentativeInfoResponse) []types.Representative {
	if resp == nil {
		return nil
	}

	var out []types.Representative
	for _, office := range resp.Offices {
		if office == nil {
			continue
		}
		area, keep := civicArea(office, resp.Divisions)
		if !keep {
			continue
		}
		for _, idx := range office.OfficialIndices {
			if idx < 0 || int(idx) >= len(resp.Officials) || resp.Officials[idx] == nil {
				continue
			}
			official := resp.Officials[idx]
			rep := types.Representative{
				Name:     official.Name,
				Party:    official.Party,
				PhotoURL: official.PhotoUrl,
				Reason:   office.Name,
				Area:     area,
			}
			if len(official.Phones) > 0 {
				rep.Phone = official.Phones[0]
			}
			if len(official.Urls) > 0 {
				rep.URL = official.Urls[0]
			}
			out = append(out, rep)
		}
	}
	return out
}

func civicArea(office *civicinfo.Office, divisions map[string]civicinfo.GeographicDivision) (string, bool) {
	federal := slices.Contains(office.Levels, "country")
	switch {
	case federal && slices.Contains(office.Roles, "legislatorUpperBody"):
		return "US Senate", true
	case federal && slices.Contains(office.Roles, "legislatorLowerBody"):
		return "US House", true
	case federal:
		return "", false
	}
	if div, ok := divisions[office.DivisionId]; ok && div.Name != "" {
		return div.Name, true
	}
	return office.Name, true
}
