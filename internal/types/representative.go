// Package types provides type definitions for structured data used throughout the talkto service.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// Representative is one elected official as returned by a representatives lookup provider.
// Optional fields decode to the empty string when absent.
type Representative struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Party    string `json:"party"`
	Phone    string `json:"phone"`
	URL      string `json:"url"`
	PhotoURL string `json:"photoURL"`
	Reason   string `json:"reason"` // Free text describing the office, e.g. "This is one of your two Senators"
	Area     string `json:"area"`   // District or chamber, e.g. "US Senate"
	State    string `json:"state,omitempty"`
}

// Bucket is the display group an official is sorted into.
type Bucket string

// Buckets in display order.
const (
	BucketSenator Bucket = "senator"
	BucketHouse   Bucket = "house"
	BucketState   Bucket = "state"
)

// ClassifiedRepresentative is a Representative with its bucket, display title
// and the card fields derived for rendering.
type ClassifiedRepresentative struct {
	Representative
	Bucket       Bucket `json:"bucket"`
	Title        string `json:"title"`
	PartyName    string `json:"partyName"`
	PartyBadge   string `json:"partyBadge"`
	PhoneDisplay string `json:"phoneDisplay,omitempty"`
	PhoneDial    string `json:"phoneDial,omitempty"`
	ContactURL   string `json:"contactURL,omitempty"`
}

// RepsByLevel holds the three buckets. Each preserves input order.
type RepsByLevel struct {
	Senators  []ClassifiedRepresentative `json:"senators"`
	HouseReps []ClassifiedRepresentative `json:"houseReps"`
	State     []ClassifiedRepresentative `json:"state"`
}

// Total returns the number of officials across all buckets.
func (r RepsByLevel) Total() int {
	return len(r.Senators) + len(r.HouseReps) + len(r.State)
}

// RepsResponse is the payload of the representatives endpoint.
type RepsResponse struct {
	Zip string `json:"zip"`
	RepsByLevel
}

// ZipQuery is a user-supplied zip code awaiting validation.
type ZipQuery struct {
	Zip string `json:"zip" validate:"required,len=5,number"`
}

// Validate validates the ZipQuery using the validator.
func (q *ZipQuery) Validate() error {
	validate := validator.New()
	return validate.Struct(q)
}
