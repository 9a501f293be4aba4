// Package reps looks up elected officials for a zip code and sorts them into
// senators, house representatives and state officials.
package reps

import (
	"strings"

	"github.com/jonathan/talkto/internal/types"
)

// fields holds the lower-cased text a rule matches against.
type fields struct {
	name   string
	reason string
	area   string
}

func newFields(rep types.Representative) fields {
	return fields{
		name:   rep.Name,
		reason: strings.ToLower(rep.Reason),
		area:   strings.ToLower(rep.Area),
	}
}

// rule assigns a bucket when match returns true. Rules are evaluated in
// order and the first match wins.
type rule struct {
	name   string
	bucket types.Bucket
	match  func(f fields) bool
}

var rules = []rule{
	{
		name:   "senate",
		bucket: types.BucketSenator,
		match: func(f fields) bool {
			return strings.Contains(f.reason, "senator") ||
				strings.Contains(f.reason, "senate") ||
				strings.Contains(f.area, "us senate")
		},
	},
	{
		name:   "house",
		bucket: types.BucketHouse,
		match: func(f fields) bool {
			return strings.Contains(f.reason, "house") ||
				strings.Contains(f.reason, "representative") ||
				strings.Contains(f.area, "us house")
		},
	},
	{
		name:   "governor",
		bucket: types.BucketState,
		match: func(f fields) bool {
			return strings.Contains(f.reason, "governor") || strings.Contains(f.area, "governor")
		},
	},
	{
		name:   "named",
		bucket: types.BucketState,
		match: func(f fields) bool {
			return f.name != ""
		},
	},
}

// BucketFor returns the bucket a representative belongs to. ok is false when
// no rule matches, which only happens for records without a name.
func BucketFor(rep types.Representative) (bucket types.Bucket, ok bool) {
	f := newFields(rep)
	for _, r := range rules {
		if r.match(f) {
			return r.bucket, true
		}
	}
	return "", false
}

// Classify sorts representatives into buckets, preserving input order within
// each bucket. Unnamed records that match no office rule are dropped.
func Classify(reps []types.Representative) types.RepsByLevel {
	out := types.RepsByLevel{
		Senators:  []types.ClassifiedRepresentative{},
		HouseReps: []types.ClassifiedRepresentative{},
		State:     []types.ClassifiedRepresentative{},
	}

	for _, rep := range reps {
		bucket, ok := BucketFor(rep)
		if !ok {
			continue
		}
		card := BuildCard(rep, bucket)
		switch bucket {
		case types.BucketSenator:
			out.Senators = append(out.Senators, card)
		case types.BucketHouse:
			out.HouseReps = append(out.HouseReps, card)
		default:
			out.State = append(out.State, card)
		}
	}

	return out
}

// Title returns the display title for a representative in the given bucket.
func Title(rep types.Representative, bucket types.Bucket) string {
	switch bucket {
	case types.BucketSenator:
		return "US Senator"
	case types.BucketHouse:
		return "US Representative"
	}

	reason := strings.ToLower(rep.Reason)
	switch {
	case strings.Contains(reason, "senator") || strings.Contains(reason, "senate"):
		return "US Senator"
	case strings.Contains(reason, "house") || strings.Contains(reason, "representative"):
		return "US Representative"
	case strings.Contains(reason, "governor"):
		return "Governor"
	case rep.Area != "":
		return rep.Area
	default:
		return "Representative"
	}
}
