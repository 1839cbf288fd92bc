package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaoloGuimalan/chatterloop-user-service/internal/entities"
)

func candidate(id, owner string, score float64, reacted bool, tagged ...string) Candidate {
	return Candidate{
		Post: entities.Post{
			ID:             id,
			Owner:          owner,
			TaggedAccounts: tagged,
		},
		RankingScore:  score,
		ViewerReacted: reacted,
	}
}

func ids(cc []Candidate) []string {
	out := make([]string, len(cc))
	for i, c := range cc {
		out[i] = c.Post.ID
	}
	return out
}

func TestCompose(t *testing.T) {
	neighbors := map[string]struct{}{"friend": {}}

	// friend-first beats raw score, unreacted stranger beats reacted one,
	// viewer's own post sinks to the bottom but stays since its score > 0
	out := Compose("viewer", neighbors, []Candidate{
		candidate("a", "friend", 5, false),
		candidate("v", "viewer", 10, false),
		candidate("s", "stranger", 8, true),
	})

	require.Equal(t, []string{"a", "s", "v"}, ids(out))
}

func TestCompose_UnreactedStrangerBeatsReacted(t *testing.T) {
	out := Compose("viewer", nil, []Candidate{
		candidate("seen", "a", 9, true),
		candidate("fresh", "b", 2, false),
	})

	require.Equal(t, []string{"fresh", "seen"}, ids(out))
}

func TestCompose_OwnPostSuppression(t *testing.T) {
	out := Compose("viewer", nil, []Candidate{
		candidate("zero", "viewer", 0, false),
		candidate("kept", "viewer", 0.01, false),
		candidate("negative", "viewer", -1, false),
	})

	require.Equal(t, []string{"kept"}, ids(out))
}

func TestCompose_StrangerZeroScoreKept(t *testing.T) {
	out := Compose("viewer", nil, []Candidate{
		candidate("s", "stranger", 0, false),
	})

	require.Equal(t, []string{"s"}, ids(out))
}

func TestCompose_FriendTagged(t *testing.T) {
	neighbors := map[string]struct{}{"friend": {}}

	out := Compose("viewer", neighbors, []Candidate{
		candidate("plain", "stranger", 100, false),
		candidate("tagged", "stranger", 1, false, "nobody", "friend"),
	})

	require.Equal(t, []string{"tagged", "plain"}, ids(out))
}

func TestCompose_ScoreTieKeepsInputOrder(t *testing.T) {
	out := Compose("viewer", nil, []Candidate{
		candidate("first", "a", 3, false),
		candidate("second", "b", 3, false),
		candidate("third", "c", 3, false),
	})

	require.Equal(t, []string{"first", "second", "third"}, ids(out))
}

func TestCompose_ScoreDescendingWithinBucket(t *testing.T) {
	out := Compose("viewer", nil, []Candidate{
		candidate("low", "a", 1, false),
		candidate("high", "b", 9, false),
		candidate("mid", "c", 4, false),
	})

	require.Equal(t, []string{"high", "mid", "low"}, ids(out))
}

func TestPage(t *testing.T) {
	items := []Candidate{
		candidate("1", "a", 0, false),
		candidate("2", "a", 0, false),
		candidate("3", "a", 0, false),
	}

	assert.Equal(t, []string{"1", "2"}, ids(Page(items, 1, 2)))
	assert.Equal(t, []string{"3"}, ids(Page(items, 2, 2)))
	assert.Empty(t, Page(items, 3, 2))
	assert.Equal(t, []string{"1", "2", "3"}, ids(Page(items, 1, 0)))
	assert.Equal(t, []string{"1", "2", "3"}, ids(Page(items, 0, 5)))
}
