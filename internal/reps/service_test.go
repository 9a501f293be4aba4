package reps

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talkto/internal/types"
)

type fakeProvider struct {
	reps  []types.Representative
	err   error
	calls int
	zips  []string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Representatives(_ context.Context, zip string) ([]types.Representative, error) {
	f.calls++
	f.zips = append(f.zips, zip)
	return f.reps, f.err
}

func TestService_InvalidZipMakesNoCall(t *testing.T) {
	provider := &fakeProvider{}
	svc := NewService(provider)

	_, err := svc.Lookup(context.Background(), "9021")

	require.Error(t, err)
	assert.Equal(t, "Please enter a valid 5-digit zip code", err.Error())
	assert.Zero(t, provider.calls)
}

func TestService_Classifies(t *testing.T) {
	provider := &fakeProvider{reps: []types.Representative{
		{Name: "Sen", Reason: "Senator", Area: "US Senate"},
		{Name: "Rep", Reason: "House", Area: "US House"},
		{Name: "Gov", Reason: "Governor", Area: "Governor"},
	}}
	svc := NewService(provider)

	resp, err := svc.Lookup(context.Background(), " 90210 ")
	require.NoError(t, err)

	assert.Equal(t, "90210", resp.Zip)
	assert.Equal(t, []string{"90210"}, provider.zips)
	assert.Len(t, resp.Senators, 1)
	assert.Len(t, resp.HouseReps, 1)
	assert.Len(t, resp.State, 1)
}

func TestService_NoRepresentatives(t *testing.T) {
	svc := NewService(&fakeProvider{reps: []types.Representative{}})

	_, err := svc.Lookup(context.Background(), "90210")
	assert.ErrorIs(t, err, ErrNoRepresentatives)
}

func TestService_ProviderFailure(t *testing.T) {
	cause := &LookupError{Provider: "fake", Message: "down", Cause: errors.New("connection refused")}
	svc := NewService(&fakeProvider{err: cause})

	_, err := svc.Lookup(context.Background(), "90210")

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "fake", lookupErr.Provider)
}

func TestFiveCallsProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/reps", r.URL.Path)
		assert.Equal(t, "90210", r.URL.Query().Get("location"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"location": "Beverly Hills",
			"state": "CA",
			"district": "32",
			"representatives": [
				{"id": "P000145", "name": "Alex Padilla", "phone": "202-224-3553", "url": "https://www.padilla.senate.gov/",
				 "photoURL": "https://images.5calls.org/p.jpg", "party": "Democrat", "state": "CA",
				 "reason": "This is one of your two Senators", "area": "US Senate"},
				{"name": "Someone", "area": "StateAG"}
			]
		}`))
	}))
	defer server.Close()

	provider := NewFiveCallsProvider(server.URL+"/", nil)
	list, err := provider.Representatives(context.Background(), "90210")
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "Alex Padilla", list[0].Name)
	assert.Equal(t, "https://images.5calls.org/p.jpg", list[0].PhotoURL)
	assert.Equal(t, "", list[1].Phone)
	assert.Equal(t, "", list[1].Reason)
}

func TestFiveCallsProvider_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	provider := NewFiveCallsProvider(server.URL, nil)
	_, err := provider.Representatives(context.Background(), "90210")

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "5calls", lookupErr.Provider)
}

func TestFiveCallsProvider_DefaultURL(t *testing.T) {
	provider := NewFiveCallsProvider("", nil)
	assert.Equal(t, DefaultFiveCallsURL, provider.baseURL)
}
