package mongo

import (
	"testing"

	"social-analytics-srv/internal/analytics/repository"
	"social-analytics-srv/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func stageNames(p mongo.Pipeline) []string {
	names := make([]string, 0, len(p))
	for _, s := range p {
		names = append(names, s[0].Key)
	}
	return names
}

func assertStages(t *testing.T, p mongo.Pipeline, want ...string) {
	t.Helper()
	got := stageNames(p)
	if len(got) != len(want) {
		t.Fatalf("stages: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("stages: got %v, want %v", got, want)
		}
	}
}

func groupDoc(t *testing.T, p mongo.Pipeline) bson.D {
	t.Helper()
	for _, s := range p {
		if s[0].Key == "$group" {
			return s[0].Value.(bson.D)
		}
	}
	t.Fatal("no $group stage")
	return nil
}

func TestBuildCountByFieldPipeline(t *testing.T) {
	p := buildCountByFieldPipeline(model.PostFilter{}, model.FieldPlatform)
	assertStages(t, p, "$match", "$group", "$sort")

	id, _ := lookup(groupDoc(t, p), "_id")
	if id != "$platform" {
		t.Errorf("group _id: got %v, want $platform", id)
	}
}

func TestEngagementSumsTreatNullAsZero(t *testing.T) {
	p := buildInfluencersPipeline(repository.TopInfluencersOptions{Limit: 5})
	assertStages(t, p, "$match", "$group", "$addFields", "$sort", "$limit")

	group := groupDoc(t, p)
	for _, name := range []string{"totalLikes", "totalShares", "totalComments"} {
		v, ok := lookup(group, name)
		if !ok {
			t.Fatalf("missing %s", name)
		}
		sum, _ := lookup(v.(bson.D), "$sum")
		if _, ok := lookup(sum.(bson.D), "$ifNull"); !ok {
			t.Errorf("%s: sum is not wrapped in $ifNull", name)
		}
	}

	limit, _ := lookup(p[4], "$limit")
	if limit != int64(5) {
		t.Errorf("$limit: got %v, want 5", limit)
	}
}

func TestInfluencersTotalEngagementIsSumOfTotals(t *testing.T) {
	p := buildInfluencersPipeline(repository.TopInfluencersOptions{Limit: 10})
	fields := p[2][0].Value.(bson.D)

	v, ok := lookup(fields, "totalEngagement")
	if !ok {
		t.Fatal("missing totalEngagement")
	}
	add, _ := lookup(v.(bson.D), "$add")
	terms := add.(bson.A)
	want := []string{"$totalLikes", "$totalShares", "$totalComments"}
	for i := range want {
		if terms[i] != want[i] {
			t.Errorf("term %d: got %v, want %s", i, terms[i], want[i])
		}
	}
}

func TestBuildSentimentDistributionPipelineKeys(t *testing.T) {
	tests := []struct {
		name     string
		groupBy  repository.SentimentGroupBy
		wantKeys []string
	}{
		{name: "sentiment", groupBy: repository.SentimentGroupBySentiment, wantKeys: []string{"sentiment"}},
		{name: "source", groupBy: repository.SentimentGroupBySource, wantKeys: []string{"sentiment", "sourceId"}},
		{name: "topic", groupBy: repository.SentimentGroupByFirstTopic, wantKeys: []string{"sentiment", "topic"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := buildSentimentDistributionPipeline(repository.SentimentDistributionOptions{GroupBy: tt.groupBy})
			assertStages(t, p, "$match", "$group", "$sort")

			id, _ := lookup(groupDoc(t, p), "_id")
			key := id.(bson.D)
			if len(key) != len(tt.wantKeys) {
				t.Fatalf("key: got %v, want fields %v", key, tt.wantKeys)
			}
			for i, k := range tt.wantKeys {
				if key[i].Key != k {
					t.Errorf("key field %d: got %s, want %s", i, key[i].Key, k)
				}
			}
		})
	}
}

func TestBuildTopicDistributionPipelineUnwindsTopics(t *testing.T) {
	p := buildTopicDistributionPipeline(model.PostFilter{})
	assertStages(t, p, "$match", "$unwind", "$group", "$sort")

	unwind, _ := lookup(p[1], "$unwind")
	if unwind != "$topics" {
		t.Errorf("$unwind: got %v, want $topics", unwind)
	}
}

func TestBuildTimelinePipelineSortsByDate(t *testing.T) {
	p := buildTimelinePipeline(model.PostFilter{})
	assertStages(t, p, "$match", "$group", "$sort")

	sort, _ := lookup(p[2], "$sort")
	first := sort.(bson.D)[0]
	if first.Key != "_id.date" || first.Value != 1 {
		t.Errorf("first sort key: got %v, want _id.date ascending", first)
	}
}
