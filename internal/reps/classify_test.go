package reps

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talkto/internal/types"
)

func TestBucketFor(t *testing.T) {
	tests := []struct {
		name     string
		rep      types.Representative
		expected types.Bucket
		ok       bool
	}{
		{"senator by reason", types.Representative{Name: "A", Reason: "This is one of your two Senators"}, types.BucketSenator, true},
		{"senate by area", types.Representative{Name: "A", Area: "US Senate"}, types.BucketSenator, true},
		{"mixed case", types.Representative{Name: "A", Reason: "SENATOR", Area: "us SENATE, District X"}, types.BucketSenator, true},
		{"house by reason", types.Representative{Name: "B", Reason: "This is your representative in the House"}, types.BucketHouse, true},
		{"house by area", types.Representative{Name: "B", Area: "US House"}, types.BucketHouse, true},
		{"governor by reason", types.Representative{Name: "C", Reason: "This is your Governor"}, types.BucketState, true},
		{"governor by area", types.Representative{Name: "C", Area: "Governor"}, types.BucketState, true},
		{"default state", types.Representative{Name: "D", Reason: "Attorney General", Area: "StateAG"}, types.BucketState, true},
		{"unnamed unmatched dropped", types.Representative{Reason: "Attorney General"}, "", false},
		{"unnamed senator kept", types.Representative{Reason: "Senator"}, types.BucketSenator, true},
		{"senate wins over house", types.Representative{Name: "E", Reason: "representative", Area: "US Senate"}, types.BucketSenator, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, ok := BucketFor(tt.rep)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, bucket)
		})
	}
}

func TestClassify_SenatorRegardlessOfCase(t *testing.T) {
	for _, reason := range []string{"Senator", "senator", "SENATOR", "sEnAtOr"} {
		out := Classify([]types.Representative{{Name: "X", Reason: reason, Area: "US Senate, District X"}})
		require.Len(t, out.Senators, 1, reason)
		assert.Empty(t, out.HouseReps)
		assert.Empty(t, out.State)
	}
}

func TestClassify_PreservesOrderWithinBucket(t *testing.T) {
	input := []types.Representative{
		{Name: "Sen 1", Area: "US Senate"},
		{Name: "Rep 1", Area: "US House"},
		{Name: "Sen 2", Area: "US Senate"},
		{Name: "Gov", Reason: "Governor"},
		{Name: "AG", Area: "StateAG"},
	}

	out := Classify(input)

	assert.Equal(t, []string{"Sen 1", "Sen 2"}, names(out.Senators))
	assert.Equal(t, []string{"Rep 1"}, names(out.HouseReps))
	assert.Equal(t, []string{"Gov", "AG"}, names(out.State))
}

func TestClassify_EmptyInput(t *testing.T) {
	out := Classify(nil)
	assert.NotNil(t, out.Senators)
	assert.NotNil(t, out.HouseReps)
	assert.NotNil(t, out.State)
	assert.Zero(t, out.Total())
}

// Every named record lands in exactly one bucket.
func TestClassify_PartitionsNamedRecords(t *testing.T) {
	reasons := []string{"", "Senator", "senate seat", "House", "your representative", "Governor", "Mayor", "State Senator"}
	areas := []string{"", "US Senate", "US House", "Governor", "StateLower", "California"}
	nameChoices := []string{"", "Pat", "Sam"}

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(12)
		input := make([]types.Representative, n)
		named := 0
		for i := range input {
			input[i] = types.Representative{
				Name:   nameChoices[rng.Intn(len(nameChoices))],
				Reason: reasons[rng.Intn(len(reasons))],
				Area:   areas[rng.Intn(len(areas))],
			}
			if input[i].Name != "" {
				input[i].Name = fmt.Sprintf("%s-%d", input[i].Name, i)
				named++
			}
		}

		out := Classify(input)

		seen := map[string]int{}
		for _, bucket := range [][]types.ClassifiedRepresentative{out.Senators, out.HouseReps, out.State} {
			for _, r := range bucket {
				if r.Name != "" {
					seen[r.Name]++
				}
			}
		}
		for _, rep := range input {
			if rep.Name != "" {
				assert.Equal(t, 1, seen[rep.Name], "record %q must be in exactly one bucket", rep.Name)
			}
		}
		namedOut := 0
		for _, c := range seen {
			namedOut += c
		}
		assert.Equal(t, named, namedOut)
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name     string
		rep      types.Representative
		bucket   types.Bucket
		expected string
	}{
		{"senator bucket", types.Representative{Reason: "whatever"}, types.BucketSenator, "US Senator"},
		{"house bucket", types.Representative{}, types.BucketHouse, "US Representative"},
		{"governor", types.Representative{Reason: "This is your Governor", Area: "Governor"}, types.BucketState, "Governor"},
		{"area fallback", types.Representative{Reason: "Attorney General", Area: "StateAG"}, types.BucketState, "StateAG"},
		{"generic fallback", types.Representative{Reason: "Mayor"}, types.BucketState, "Representative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Title(tt.rep, tt.bucket))
		})
	}
}

func names(list []types.ClassifiedRepresentative) []string {
	out := make([]string, 0, len(list))
	for _, r := range list {
		out = append(out, r.Name)
	}
	return out
}
