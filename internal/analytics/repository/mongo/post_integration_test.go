//go:build integration

package mongo

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"social-analytics-srv/internal/analytics/repository"
	"social-analytics-srv/internal/model"
	"social-analytics-srv/pkg/log"

	"github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Usage:
//   go test -tags integration ./internal/analytics/repository/mongo/...

func skipIfNoDocker(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if exec.CommandContext(ctx, "docker", "info").Run() != nil {
		t.Skip("Skipping test: Docker not available")
	}
}

func setupRepository(t *testing.T, docs []interface{}) repository.PostRepository {
	t.Helper()
	skipIfNoDocker(t)

	ctx := context.Background()
	ctr, err := tcmongo.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("start mongo container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(ctr); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	uri, err := ctr.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	coll := client.Database("analytics_test").Collection("posts")
	if len(docs) > 0 {
		if _, err := coll.InsertMany(ctx, docs); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return New(coll, log.NewNop())
}

func fixturePosts(now time.Time) []interface{} {
	docs := make([]interface{}, 0, 10)
	for i := 0; i < 5; i++ {
		docs = append(docs, bson.M{
			"postId": "pos-" + string(rune('a'+i)), "platform": "twitter", "sourceId": "alice",
			"text": "Great launch", "combinedText": "great launch ai",
			"sentiment": "positive", "sentimentConfidence": 0.9,
			"topics": bson.A{"ai", "policy"}, "likes": 10, "shares": 2, "comments": 1,
			"time": now.Add(-time.Duration(i+1) * time.Hour),
		})
	}
	for i := 0; i < 3; i++ {
		docs = append(docs, bson.M{
			"postId": "neg-" + string(rune('a'+i)), "platform": "facebook", "sourceId": "bob",
			"text": "Bad outage", "combinedText": "bad outage",
			"sentiment": "negative", "sentimentConfidence": 0.7,
			"topics": bson.A{}, "likes": nil, "shares": 5,
			"time": now.Add(-48 * time.Hour),
		})
	}
	return docs
}

func TestListPostsAndCount_Integration(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	repo := setupRepository(t, fixturePosts(now))
	ctx := context.Background()

	filter := model.PostFilter{Sentiment: model.SentimentPositive}
	posts, err := repo.ListPosts(ctx, repository.ListPostsOptions{Filter: filter, Limit: 2})
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("posts: got %d, want 2", len(posts))
	}
	if !posts[0].Time.After(posts[1].Time) {
		t.Error("posts are not sorted by time descending")
	}

	total, err := repo.CountPosts(ctx, filter)
	if err != nil {
		t.Fatalf("CountPosts: %v", err)
	}
	if total != 5 {
		t.Errorf("total: got %d, want 5", total)
	}
}

func TestKeywordMatchesOncePerPost_Integration(t *testing.T) {
	now := time.Now().UTC()
	repo := setupRepository(t, fixturePosts(now))

	// "launch" appears in both text and combinedText of the positive posts.
	total, err := repo.CountPosts(context.Background(), model.PostFilter{Keyword: "LAUNCH"})
	if err != nil {
		t.Fatalf("CountPosts: %v", err)
	}
	if total != 5 {
		t.Errorf("total: got %d, want 5", total)
	}
}

func TestNullEngagementCountsAsZero_Integration(t *testing.T) {
	now := time.Now().UTC()
	repo := setupRepository(t, fixturePosts(now))
	ctx := context.Background()

	avg, err := repo.AverageEngagement(ctx, model.PostFilter{Platform: "facebook"})
	if err != nil {
		t.Fatalf("AverageEngagement: %v", err)
	}
	if avg.AvgLikes != 0 || avg.AvgShares != 5 || avg.AvgComments != 0 {
		t.Errorf("averages: got %+v, want (0,5,0)", avg)
	}

	posts, err := repo.ListPosts(ctx, repository.ListPostsOptions{Filter: model.PostFilter{Platform: "facebook"}, Limit: 1})
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 1 || posts[0].Likes != 0 || posts[0].Comments != 0 {
		t.Errorf("decoded engagement: got %+v", posts)
	}
}

func TestInfluencers_Integration(t *testing.T) {
	now := time.Now().UTC()
	repo := setupRepository(t, fixturePosts(now))

	got, err := repo.TopInfluencers(context.Background(), repository.TopInfluencersOptions{Limit: 10})
	if err != nil {
		t.Fatalf("TopInfluencers: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("influencers: got %d, want 2", len(got))
	}
	for _, inf := range got {
		if inf.TotalEngagement != inf.TotalLikes+inf.TotalShares+inf.TotalComments {
			t.Errorf("%s: totalEngagement %d != sum of totals", inf.SourceID, inf.TotalEngagement)
		}
	}
	if got[0].SourceID != "alice" || got[0].AvgSentiment != 1 {
		t.Errorf("top influencer: got %+v", got[0])
	}
	if got[1].AvgSentiment != -1 {
		t.Errorf("bob avgSentiment: got %v, want -1", got[1].AvgSentiment)
	}
}

func TestTopicDistributionUnwinds_Integration(t *testing.T) {
	now := time.Now().UTC()
	repo := setupRepository(t, fixturePosts(now))

	got, err := repo.TopicDistribution(context.Background(), model.PostFilter{})
	if err != nil {
		t.Fatalf("TopicDistribution: %v", err)
	}
	counts := map[string]int64{}
	for _, b := range got {
		counts[b.Topic] = b.Count
	}
	if counts["ai"] != 5 || counts["policy"] != 5 || len(counts) != 2 {
		t.Errorf("topic counts: got %v", counts)
	}
}

func TestRecentPostsAndDistinct_Integration(t *testing.T) {
	now := time.Now().UTC()
	repo := setupRepository(t, fixturePosts(now))
	ctx := context.Background()

	recent, err := repo.ListRecentPosts(ctx, repository.ListRecentPostsOptions{Since: now.Add(-24 * time.Hour), Limit: 100})
	if err != nil {
		t.Fatalf("ListRecentPosts: %v", err)
	}
	if len(recent) != 5 {
		t.Errorf("recent: got %d, want 5", len(recent))
	}

	topics, err := repo.DistinctValues(ctx, model.FieldTopics)
	if err != nil {
		t.Fatalf("DistinctValues: %v", err)
	}
	if len(topics) != 2 || topics[0] != "ai" || topics[1] != "policy" {
		t.Errorf("topics: got %v", topics)
	}
}
