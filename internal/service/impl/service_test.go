package impl

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaoloGuimalan/chatterloop-user-service/internal/entities"
	"github.com/PaoloGuimalan/chatterloop-user-service/internal/notifier"
	notifiermock "github.com/PaoloGuimalan/chatterloop-user-service/internal/notifier/mock"
	"github.com/PaoloGuimalan/chatterloop-user-service/internal/score"
	"github.com/PaoloGuimalan/chatterloop-user-service/internal/service"
	"github.com/PaoloGuimalan/chatterloop-user-service/internal/storage"
	storagemock "github.com/PaoloGuimalan/chatterloop-user-service/internal/storage/mock"
)

var (
	testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ctx     = context.Background()
)

func setup(t *testing.T) (*srv, *storagemock.MockStorage, *notifiermock.MockDispatcher) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	st := storagemock.NewMockStorage(ctrl)
	d := notifiermock.NewMockDispatcher(ctrl)

	return &srv{
		s:     st,
		d:     d,
		cfg:   score.DefaultConfig(),
		now:   func() time.Time { return testNow },
		newID: func() string { return "new-id" },
	}, st, d
}

func expectTx(st *storagemock.MockStorage) {
	st.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, f func(storage.Storage) error) error {
			return f(st)
		})
}

// testPost is three hours old, so the decay divisor is (3+1)^0.5 = 2.
func testPost() *entities.Post {
	return &entities.Post{
		ID:        "post-1",
		Owner:     "owner",
		Caption:   "hello",
		Privacy:   entities.PrivacyPublic,
		CreatedAt: testNow.Add(-3 * time.Hour),
	}
}

func testEngagement(likes, comments, shares uint32, boost float64) *entities.Engagement {
	return &entities.Engagement{
		PostID:        "post-1",
		LikesCount:    likes,
		CommentsCount: comments,
		SharesCount:   shares,
		ContentWeight: 1,
		UpdateBoost:   boost,
	}
}

func TestService_CreatePost(t *testing.T) {
	s, st, _ := setup(t)

	expectTx(st)

	p := &entities.Post{
		Owner:      "owner",
		Caption:    "hi",
		References: []entities.MediaKind{entities.MediaImage},
	}

	st.EXPECT().CreatePost(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, in *storage.CreatePostParams) error {
			assert.Equal(t, "new-id", in.ID)
			assert.Equal(t, "owner", in.Owner)
			assert.Equal(t, entities.PrivacyPublic, in.Privacy)
			assert.Equal(t, testNow, in.CreatedAt)
			return nil
		})

	st.EXPECT().CreateEngagement(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e *entities.Engagement) error {
			assert.Equal(t, "new-id", e.PostID)
			// one image: (1 + 1.2) / 2
			assert.InDelta(t, 1.1, e.ContentWeight, 1e-9)
			assert.Equal(t, float64(1), e.UpdateBoost)
			// fresh post, zero counters: 1 * 1.1 * 1
			assert.InDelta(t, 1.1, e.RankingScore, 1e-9)
			return nil
		})

	require.NoError(t, s.CreatePost(ctx, p))
	assert.Equal(t, "new-id", p.ID)
}

func TestService_CreatePost_UnknownMediaKind(t *testing.T) {
	s, _, _ := setup(t)

	err := s.CreatePost(ctx, &entities.Post{
		Owner:      "owner",
		References: []entities.MediaKind{"gif"},
	})
	require.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestService_React(t *testing.T) {
	s, st, d := setup(t)

	expectTx(st)
	st.EXPECT().GetPost(ctx, "post-1").Return(testPost(), nil)
	st.EXPECT().LockEngagement(ctx, "post-1").Return(testEngagement(1, 0, 0, 1), nil)
	st.EXPECT().CreateReaction(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r *entities.Reaction) error {
			assert.Equal(t, "new-id", r.ID)
			assert.Equal(t, "heart", r.Kind)
			return nil
		})
	st.EXPECT().IncrementEngagement(ctx, "post-1", storage.LikesCounter, 1).Return(nil)
	st.EXPECT().IncrementPreviewTally(ctx, "post-1", "heart", 1).Return(nil)
	st.EXPECT().SetEngagementScore(ctx, "post-1", gomock.Any(), gomock.Any(), testNow).DoAndReturn(
		func(_ context.Context, _ string, boost, value float64, _ time.Time) error {
			assert.InDelta(t, 1.1, boost, 1e-9)
			// (2 likes + base 1) / 2 * 1.1
			assert.InDelta(t, 1.65, value, 1e-9)
			return nil
		})
	st.EXPECT().GetAccount(ctx, "owner").Return(&entities.Account{ID: "owner", Username: "owner"}, nil)
	st.EXPECT().GetAccount(ctx, "reactor").Return(&entities.Account{ID: "reactor", Username: "reactor"}, nil)

	d.EXPECT().Notify(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, in notifier.Intent) error {
			assert.Equal(t, "new-id", in.ReferenceID)
			assert.Equal(t, "owner", in.ToAccount)
			assert.Equal(t, "post_reaction", in.Kind)
			return nil
		})
	d.EXPECT().PublishEvent(ctx, "owner", "@reactor reacted heart to your post.").Return(nil)

	require.NoError(t, s.React(ctx, "post-1", "reactor", "heart"))
}

func TestService_React_OwnPost(t *testing.T) {
	s, st, _ := setup(t)

	expectTx(st)
	st.EXPECT().GetPost(ctx, "post-1").Return(testPost(), nil)
	st.EXPECT().LockEngagement(ctx, "post-1").Return(testEngagement(0, 0, 0, 1), nil)
	st.EXPECT().CreateReaction(ctx, gomock.Any()).Return(nil)
	st.EXPECT().IncrementEngagement(ctx, "post-1", storage.LikesCounter, 1).Return(nil)
	st.EXPECT().IncrementPreviewTally(ctx, "post-1", "heart", 1).Return(nil)
	st.EXPECT().SetEngagementScore(ctx, "post-1", gomock.Any(), gomock.Any(), testNow).Return(nil)

	// no notification for reacting to one's own post
	require.NoError(t, s.React(ctx, "post-1", "owner", "heart"))
}

func TestService_React_Duplicate(t *testing.T) {
	s, st, _ := setup(t)

	expectTx(st)
	st.EXPECT().GetPost(ctx, "post-1").Return(testPost(), nil)
	st.EXPECT().LockEngagement(ctx, "post-1").Return(testEngagement(1, 0, 0, 1), nil)
	st.EXPECT().CreateReaction(ctx, gomock.Any()).Return(storage.ErrConflict)

	err := s.React(ctx, "post-1", "reactor", "heart")

	var conflict *service.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, service.ConflictDuplicateReaction, conflict.Reason)
}

func TestService_React_PostNotFound(t *testing.T) {
	s, st, _ := setup(t)

	expectTx(st)
	st.EXPECT().GetPost(ctx, "missing").Return(nil, storage.ErrNotFound)

	require.ErrorIs(t, s.React(ctx, "missing", "reactor", "heart"), service.ErrNotFound)
}

func TestService_RemoveReaction(t *testing.T) {
	s, st, d := setup(t)

	expectTx(st)
	st.EXPECT().GetPost(ctx, "post-1").Return(testPost(), nil)
	st.EXPECT().LockEngagement(ctx, "post-1").Return(testEngagement(2, 0, 0, 1.1), nil)
	st.EXPECT().GetReaction(ctx, "post-1", "reactor").
		Return(&entities.Reaction{ID: "r-1", PostID: "post-1", Account: "reactor", Kind: "heart"}, nil)
	st.EXPECT().DeleteReaction(ctx, "r-1").Return(nil)
	st.EXPECT().IncrementEngagement(ctx, "post-1", storage.LikesCounter, -1).Return(nil)
	st.EXPECT().IncrementPreviewTally(ctx, "post-1", "heart", -1).Return(nil)
	st.EXPECT().SetEngagementScore(ctx, "post-1", gomock.Any(), gomock.Any(), testNow).DoAndReturn(
		func(_ context.Context, _ string, boost, value float64, _ time.Time) error {
			assert.InDelta(t, 1.0, boost, 1e-9)
			// (1 like + base 1) / 2 * 1.0
			assert.InDelta(t, 1.0, value, 1e-9)
			return nil
		})

	d.EXPECT().DeleteByReference(ctx, "r-1").Return(nil)

	require.NoError(t, s.RemoveReaction(ctx, "post-1", "reactor"))
}

func TestService_ChangeReaction(t *testing.T) {
	s, st, d := setup(t)

	expectTx(st)
	st.EXPECT().GetPost(ctx, "post-1").Return(testPost(), nil)
	st.EXPECT().LockEngagement(ctx, "post-1").Return(testEngagement(1, 0, 0, 1), nil)
	st.EXPECT().GetReaction(ctx, "post-1", "reactor").
		Return(&entities.Reaction{ID: "r-1", PostID: "post-1", Account: "reactor", Kind: "heart"}, nil)
	st.EXPECT().SetReactionKind(ctx, "r-1", "laugh").Return(nil)
	st.EXPECT().IncrementPreviewTally(ctx, "post-1", "heart", -1).Return(nil)
	st.EXPECT().IncrementPreviewTally(ctx, "post-1", "laugh", 1).Return(nil)
	// counters and boost stay as they are on a swap
	st.EXPECT().SetEngagementScore(ctx, "post-1", gomock.Any(), gomock.Any(), testNow).DoAndReturn(
		func(_ context.Context, _ string, boost, value float64, _ time.Time) error {
			assert.InDelta(t, 1.0, boost, 1e-9)
			assert.InDelta(t, 1.0, value, 1e-9)
			return nil
		})
	st.EXPECT().GetAccount(ctx, "reactor").Return(&entities.Account{ID: "reactor", Username: "reactor"}, nil)
	st.EXPECT().GetAccount(ctx, "owner").Return(&entities.Account{ID: "owner", Username: "owner"}, nil)

	d.EXPECT().UpdateContent(ctx, "r-1", "@reactor reacted laugh to your post.").Return(nil)
	d.EXPECT().PublishEvent(ctx, "owner", "@reactor reacted laugh to your post.").Return(nil)

	require.NoError(t, s.ChangeReaction(ctx, "post-1", "reactor", "laugh"))
}

func TestService_ChangeReaction_SameKind(t *testing.T) {
	s, st, _ := setup(t)

	expectTx(st)
	st.EXPECT().GetPost(ctx, "post-1").Return(testPost(), nil)
	st.EXPECT().LockEngagement(ctx, "post-1").Return(testEngagement(1, 0, 0, 1), nil)
	st.EXPECT().GetReaction(ctx, "post-1", "reactor").
		Return(&entities.Reaction{ID: "r-1", PostID: "post-1", Account: "reactor", Kind: "heart"}, nil)

	require.NoError(t, s.ChangeReaction(ctx, "post-1", "reactor", "heart"))
}

func TestService_AddComment(t *testing.T) {
	s, st, d := setup(t)

	expectTx(st)
	st.EXPECT().GetPost(ctx, "post-1").Return(testPost(), nil)
	st.EXPECT().LockEngagement(ctx, "post-1").Return(testEngagement(0, 0, 0, 1), nil)
	st.EXPECT().CreateComment(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c *entities.Comment) error {
			assert.Equal(t, "new-id", c.ID)
			assert.Equal(t, "nice!", c.Text)
			assert.Nil(t, c.ParentID)
			return nil
		})
	st.EXPECT().IncrementEngagement(ctx, "post-1", storage.CommentsCounter, 1).Return(nil)
	st.EXPECT().SetEngagementScore(ctx, "post-1", gomock.Any(), gomock.Any(), testNow).DoAndReturn(
		func(_ context.Context, _ string, boost, value float64, _ time.Time) error {
			assert.InDelta(t, 1.3, boost, 1e-9)
			// (1 comment * 3 + base 1) / 2 * 1.3
			assert.InDelta(t, 2.6, value, 1e-9)
			return nil
		})
	st.EXPECT().GetAccount(ctx, "owner").Return(&entities.Account{ID: "owner", Username: "owner"}, nil)
	st.EXPECT().GetAccount(ctx, "bob").Return(&entities.Account{ID: "bob", Username: "bob"}, nil)

	d.EXPECT().Notify(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, in notifier.Intent) error {
			assert.Equal(t, "post_comment", in.Kind)
			assert.Equal(t, "Post Comment", in.Headline)
			return nil
		})
	d.EXPECT().PublishEvent(ctx, "owner", "@bob commented on your post.").Return(nil)

	c, err := s.AddComment(ctx, &service.AddCommentParams{
		PostID:  "post-1",
		Account: "bob",
		Text:    "nice!",
	})
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "new-id", c.ID)
}

func TestService_AddComment_Reply(t *testing.T) {
	s, st, d := setup(t)

	parentID := "c-parent"

	expectTx(st)
	st.EXPECT().GetPost(ctx, "post-1").Return(testPost(), nil)
	st.EXPECT().LockEngagement(ctx, "post-1").Return(testEngagement(0, 1, 0, 1.3), nil)
	st.EXPECT().GetComment(ctx, parentID).Return(&entities.Comment{
		ID:      parentID,
		PostID:  "post-1",
		Account: "alice",
		Text:    "a very long parent comment text which gets cut",
	}, nil)
	st.EXPECT().CreateComment(ctx, gomock.Any()).Return(nil)
	st.EXPECT().IncrementEngagement(ctx, "post-1", storage.CommentsCounter, 1).Return(nil)
	st.EXPECT().SetEngagementScore(ctx, "post-1", gomock.Any(), gomock.Any(), testNow).Return(nil)
	st.EXPECT().GetAccount(ctx, "alice").Return(&entities.Account{ID: "alice", Username: "alice"}, nil)
	st.EXPECT().GetAccount(ctx, "bob").Return(&entities.Account{ID: "bob", Username: "bob"}, nil)

	d.EXPECT().Notify(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, in notifier.Intent) error {
			assert.Equal(t, "alice", in.ToAccount)
			assert.Equal(t, "Replied Comment", in.Headline)
			assert.Equal(t, `@bob replied to your comment "a very long parent comment tex..."`, in.Details)
			return nil
		})
	d.EXPECT().PublishEvent(ctx, "alice", gomock.Any()).Return(nil)

	_, err := s.AddComment(ctx, &service.AddCommentParams{
		PostID:   "post-1",
		Account:  "bob",
		ParentID: &parentID,
		Text:     "agreed",
	})
	require.NoError(t, err)
}

func TestService_AddComment_Empty(t *testing.T) {
	s, _, _ := setup(t)

	_, err := s.AddComment(ctx, &service.AddCommentParams{
		PostID:  "post-1",
		Account: "bob",
		Text:    "   ",
	})
	require.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestService_AddComment_ParentFromAnotherPost(t *testing.T) {
	s, st, _ := setup(t)

	parentID := "c-parent"

	expectTx(st)
	st.EXPECT().GetPost(ctx, "post-1").Return(testPost(), nil)
	st.EXPECT().LockEngagement(ctx, "post-1").Return(testEngagement(0, 0, 0, 1), nil)
	st.EXPECT().GetComment(ctx, parentID).Return(&entities.Comment{ID: parentID, PostID: "post-2"}, nil)

	_, err := s.AddComment(ctx, &service.AddCommentParams{
		PostID:   "post-1",
		Account:  "bob",
		ParentID: &parentID,
		Text:     "agreed",
	})
	require.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestService_SoftDeleteComment(t *testing.T) {
	s, st, _ := setup(t)

	// tombstone only, comments_count keeps its value
	st.EXPECT().TombstoneComment(ctx, "c-1", testNow, "bob").Return(nil)

	require.NoError(t, s.SoftDeleteComment(ctx, "c-1", "bob"))
}

func TestService_SharePost(t *testing.T) {
	s, st, _ := setup(t)

	expectTx(st)
	st.EXPECT().GetPost(ctx, "post-1").Return(testPost(), nil)
	st.EXPECT().LockEngagement(ctx, "post-1").Return(testEngagement(0, 0, 0, 1), nil)
	st.EXPECT().IncrementEngagement(ctx, "post-1", storage.SharesCounter, 1).Return(nil)
	st.EXPECT().SetEngagementScore(ctx, "post-1", gomock.Any(), gomock.Any(), testNow).DoAndReturn(
		func(_ context.Context, _ string, boost, value float64, _ time.Time) error {
			assert.InDelta(t, 1.5, boost, 1e-9)
			// (1 share * 5 + base 1) / 2 * 1.5
			assert.InDelta(t, 4.5, value, 1e-9)
			return nil
		})

	require.NoError(t, s.SharePost(ctx, "post-1", "bob"))
}

func TestService_RecomputeScore(t *testing.T) {
	s, st, _ := setup(t)

	expectTx(st)
	st.EXPECT().GetPost(ctx, "post-1").Return(testPost(), nil)
	st.EXPECT().LockEngagement(ctx, "post-1").Return(testEngagement(2, 1, 0, 1.4), nil)
	st.EXPECT().SetEngagementScore(ctx, "post-1", gomock.Any(), gomock.Any(), testNow).DoAndReturn(
		func(_ context.Context, _ string, boost, value float64, _ time.Time) error {
			// boost untouched, only the age decay moves
			assert.InDelta(t, 1.4, boost, 1e-9)
			// (1*3 + 2 + base 1) / 2 * 1.4
			assert.InDelta(t, 4.2, value, 1e-9)
			return nil
		})

	require.NoError(t, s.RecomputeScore(ctx, "post-1"))
}

func TestService_ProposeConnection(t *testing.T) {
	s, st, d := setup(t)

	expectTx(st)
	st.EXPECT().GetAccount(ctx, "alice").Return(&entities.Account{ID: "alice", Username: "alice"}, nil)
	st.EXPECT().GetAccount(ctx, "bob").Return(&entities.Account{ID: "bob", Username: "bob"}, nil)
	st.EXPECT().GetConnectionBetween(ctx, "alice", "bob").Return(nil, storage.ErrNotFound)
	st.EXPECT().CreateConnection(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, g *entities.ConnectionGroup) error {
			assert.Equal(t, "new-id", g.ID)
			assert.Equal(t, "alice", g.Initiator)
			assert.Equal(t, "bob", g.Target)
			assert.Equal(t, entities.ConnectionPending, g.Status)
			return nil
		})

	d.EXPECT().Notify(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, in notifier.Intent) error {
			assert.Equal(t, "bob", in.ToAccount)
			assert.Equal(t, "connection_request", in.Kind)
			return nil
		})
	d.EXPECT().PublishEvent(ctx, "bob", "@alice sent you a connection request.").Return(nil)

	id, err := s.ProposeConnection(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, "new-id", id)
}

func TestService_ProposeConnection_Conflicts(t *testing.T) {
	tests := []struct {
		name      string
		initiator string
		target    string
		existing  *entities.ConnectionGroup
		createErr error
		reason    service.ConflictReason
	}{
		{
			name:      "self pair",
			initiator: "alice",
			target:    "alice",
			reason:    service.ConflictSelfPair,
		},
		{
			name:      "duplicate group",
			initiator: "alice",
			target:    "bob",
			existing:  &entities.ConnectionGroup{ID: "g-1", Initiator: "alice", Target: "bob"},
			reason:    service.ConflictDuplicateGroup,
		},
		{
			name:      "reciprocal already initiated",
			initiator: "alice",
			target:    "bob",
			existing:  &entities.ConnectionGroup{ID: "g-1", Initiator: "bob", Target: "alice"},
			reason:    service.ConflictReciprocalInitiated,
		},
		{
			name:      "lost race on pair index",
			initiator: "alice",
			target:    "bob",
			createErr: storage.ErrConflict,
			reason:    service.ConflictUserInUse,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s, st, _ := setup(t)

			if tc.initiator != tc.target {
				expectTx(st)
				st.EXPECT().GetAccount(ctx, tc.initiator).Return(&entities.Account{ID: tc.initiator, Username: tc.initiator}, nil)
				st.EXPECT().GetAccount(ctx, tc.target).Return(&entities.Account{ID: tc.target, Username: tc.target}, nil)

				if tc.existing != nil {
					st.EXPECT().GetConnectionBetween(ctx, tc.initiator, tc.target).Return(tc.existing, nil)
				} else {
					st.EXPECT().GetConnectionBetween(ctx, tc.initiator, tc.target).Return(nil, storage.ErrNotFound)
					st.EXPECT().CreateConnection(ctx, gomock.Any()).Return(tc.createErr)
				}
			}

			_, err := s.ProposeConnection(ctx, tc.initiator, tc.target)

			var conflict *service.ConflictError
			require.ErrorAs(t, err, &conflict)
			assert.Equal(t, tc.reason, conflict.Reason)
		})
	}
}

func TestService_ProposeConnection_UnknownTarget(t *testing.T) {
	s, st, _ := setup(t)

	expectTx(st)
	st.EXPECT().GetAccount(ctx, "alice").Return(&entities.Account{ID: "alice", Username: "alice"}, nil)
	st.EXPECT().GetAccount(ctx, "ghost").Return(nil, storage.ErrNotFound)

	_, err := s.ProposeConnection(ctx, "alice", "ghost")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestService_AcceptConnection(t *testing.T) {
	s, st, d := setup(t)

	expectTx(st)
	st.EXPECT().GetConnection(ctx, "g-1").Return(&entities.ConnectionGroup{
		ID:        "g-1",
		Initiator: "alice",
		Target:    "bob",
		Status:    entities.ConnectionPending,
	}, nil)
	st.EXPECT().AcceptConnection(ctx, "g-1").Return(nil)
	st.EXPECT().GetAccount(ctx, "alice").Return(&entities.Account{ID: "alice", Username: "alice"}, nil)
	st.EXPECT().GetAccount(ctx, "bob").Return(&entities.Account{ID: "bob", Username: "bob"}, nil)

	d.EXPECT().Notify(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, in notifier.Intent) error {
			assert.Equal(t, "alice", in.ToAccount)
			assert.Equal(t, "connection_accept", in.Kind)
			return nil
		})
	d.EXPECT().PublishEvent(ctx, "alice", "@bob accepted your connection request.").Return(nil)

	require.NoError(t, s.AcceptConnection(ctx, "g-1", "bob"))
}

func TestService_AcceptConnection_NotTarget(t *testing.T) {
	s, st, _ := setup(t)

	expectTx(st)
	st.EXPECT().GetConnection(ctx, "g-1").Return(&entities.ConnectionGroup{
		ID:        "g-1",
		Initiator: "alice",
		Target:    "bob",
		Status:    entities.ConnectionPending,
	}, nil)

	require.ErrorIs(t, s.AcceptConnection(ctx, "g-1", "alice"), service.ErrInvalidInput)
}

func TestService_AcceptConnection_AlreadyAccepted(t *testing.T) {
	s, st, _ := setup(t)

	expectTx(st)
	st.EXPECT().GetConnection(ctx, "g-1").Return(&entities.ConnectionGroup{
		ID:        "g-1",
		Initiator: "alice",
		Target:    "bob",
		Status:    entities.ConnectionAccepted,
	}, nil)

	// idempotent, no update and no notification
	require.NoError(t, s.AcceptConnection(ctx, "g-1", "bob"))
}

func TestService_ResolveNeighbors(t *testing.T) {
	s, st, _ := setup(t)

	st.EXPECT().ListNeighbors(ctx, "alice").Return([]string{"bob", "carol", "alice"}, nil)

	nn, err := s.ResolveNeighbors(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"bob": {}, "carol": {}}, nn)
}

func TestService_ComposeFeed(t *testing.T) {
	s, st, _ := setup(t)

	st.EXPECT().ListNeighbors(ctx, "viewer").Return([]string{"friend"}, nil)
	st.EXPECT().ListFeedCandidates(ctx, "viewer").Return([]*storage.FeedCandidate{
		{Post: entities.Post{ID: "own-zero", Owner: "viewer"}, RankingScore: 0},
		{Post: entities.Post{ID: "stranger", Owner: "someone"}, RankingScore: 9, ViewerReacted: true},
		{Post: entities.Post{ID: "friendly", Owner: "friend"}, RankingScore: 1},
	}, nil)

	ff, err := s.ComposeFeed(ctx, "viewer", 1, 10)
	require.NoError(t, err)

	ids := make([]string, len(ff))
	for i, f := range ff {
		ids[i] = f.Post.ID
	}
	// friend first, the viewer's zero-score post is hidden
	assert.Equal(t, []string{"friendly", "stranger"}, ids)
}

func TestService_GetReactionBreakdown(t *testing.T) {
	s, st, _ := setup(t)

	st.EXPECT().GetPost(ctx, "post-1").Return(testPost(), nil)
	st.EXPECT().GetPreviewTallies(ctx, "post-1").Return(map[string]uint32{"heart": 2, "laugh": 1}, nil)

	tt, err := s.GetReactionBreakdown(ctx, "post-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]uint32{"heart": 2, "laugh": 1}, tt)
}
