package trends

import (
	"context"
	"log"
	"math"
	"sort"
	"time"

	"github.com/jonathan/talkto/internal/metrics"
	"github.com/jonathan/talkto/internal/settle"
	"github.com/jonathan/talkto/internal/types"
)

// PanelName labels fallback metrics for this aggregator.
const PanelName = "public-trends"

// Config controls the aggregation policy.
type Config struct {
	Topics     []types.CivicTopic
	QueryCount int
	MinResults int
	MaxResults int
	Geo        string
	Window     time.Duration
}

// DefaultConfig returns the production policy.
func DefaultConfig() Config {
	return Config{
		Topics:     CivicTopics,
		QueryCount: DefaultQueryCount,
		MinResults: DefaultMinResults,
		MaxResults: DefaultMaxResults,
		Geo:        DefaultGeo,
		Window:     7 * 24 * time.Hour,
	}
}

// Aggregator ranks civic topics by recent search interest.
type Aggregator struct {
	source InterestSource
	config Config
	now    func() time.Time
}

// NewAggregator creates an aggregator over the given source.
func NewAggregator(source InterestSource, config Config) *Aggregator {
	return &Aggregator{source: source, config: config, now: time.Now}
}

// PublicTrends scores the queried topics concurrently and ranks them.
// A topic whose fetch fails scores NeutralScore. Topics lost to cancellation
// or a panic are dropped, and when fewer than MinResults remain the curated
// list is served. It never fails.
func (a *Aggregator) PublicTrends(ctx context.Context) types.PublicTrendsResponse {
	topics := a.config.Topics
	if a.config.QueryCount > 0 && a.config.QueryCount < len(topics) {
		topics = topics[:a.config.QueryCount]
	}

	outcomes := settle.All(ctx, topics, 0, a.scoreTopic)
	for i, o := range outcomes {
		if !o.OK() {
			log.Printf("[trends] %q failed: %v", topics[i].Term, o.Err)
		}
	}

	scores := Rank(settle.Fulfilled(outcomes))
	if len(scores) < a.config.MinResults {
		log.Printf("[trends] only %d of %d topics scored, serving curated topics", len(scores), len(topics))
		metrics.RecordFallback(PanelName)
		return a.curated()
	}

	if a.config.MaxResults > 0 && len(scores) > a.config.MaxResults {
		scores = scores[:a.config.MaxResults]
	}
	return types.PublicTrendsResponse{
		Trends:  scores,
		Updated: a.now().UTC(),
		Source:  types.SourceGoogleTrends,
	}
}

func (a *Aggregator) scoreTopic(ctx context.Context, topic types.CivicTopic) (types.TopicScore, error) {
	start := time.Now()
	values, err := a.source.InterestOverTime(ctx, Query{
		Keyword: topic.Term,
		Geo:     a.config.Geo,
		Window:  a.config.Window,
	})
	metrics.RecordUpstream(metrics.UpstreamTrends, err, time.Since(start).Seconds())
	if err != nil {
		// A cancelled request is not scored; the topic drops out of the panel.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return types.TopicScore{}, ctxErr
		}
		log.Printf("[trends] %q scored neutral after error: %v", topic.Term, err)
		return NewTopicScore(topic, a.config.Geo, NeutralScore), nil
	}
	return NewTopicScore(topic, a.config.Geo, MeanScore(values)), nil
}

func (a *Aggregator) curated() types.PublicTrendsResponse {
	trends := make([]types.TopicScore, len(CuratedTopics))
	copy(trends, CuratedTopics)
	return types.PublicTrendsResponse{
		Trends:  trends,
		Updated: a.now().UTC(),
		Source:  types.SourceCurated,
	}
}

// MeanScore is the rounded arithmetic mean of a series; an empty series scores NeutralScore.
func MeanScore(values []int) int {
	if len(values) == 0 {
		return NeutralScore
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return int(math.Round(float64(sum) / float64(len(values))))
}

// Rank sorts scores by intensity descending. Ties keep their input order.
func Rank(scores []types.TopicScore) []types.TopicScore {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Intensity > scores[j].Intensity
	})
	return scores
}
