package server

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaoloGuimalan/chatterloop-user-service/internal/entities"
	"github.com/PaoloGuimalan/chatterloop-user-service/internal/feed"
	"github.com/PaoloGuimalan/chatterloop-user-service/internal/service"
	"github.com/PaoloGuimalan/chatterloop-user-service/internal/service/mock"
)

func Test_getFeed(t *testing.T) {
	timestamp := time.Unix(100, 0)

	r, err := http.NewRequest(http.MethodGet, "/v1/feed?requestedBy=viewer&page=2&pageSize=5", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().ComposeFeed(gomock.Any(), "viewer", 2, 5).Return([]feed.Candidate{
		{
			Post: entities.Post{
				ID:        "post-1",
				Owner:     "friend",
				Caption:   "caption",
				Privacy:   entities.PrivacyPublic,
				CreatedAt: timestamp,
			},
			RankingScore: 4.2,
		},
	}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/feed", srv.getFeed)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
   "items":[
      {
         "post":{
            "id":"post-1",
            "owner":"friend",
            "caption":"caption",
            "privacy":"public",
            "references":[],
            "taggedAccounts":null,
            "createdAt":100
         },
         "rankingScore":4.2,
         "viewerReacted":false
      }
   ]
}
	`, w.Body.String())
}

func Test_getFeed_MissingViewer(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/v1/feed", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := chi.NewRouter()
	srv := server{s: mock.NewMockService(ctrl)}
	router.Get("/v1/feed", srv.getFeed)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_getFeed_InvalidPageSize(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/v1/feed?requestedBy=viewer&pageSize=1000", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := chi.NewRouter()
	srv := server{s: mock.NewMockService(ctrl)}
	router.Get("/v1/feed", srv.getFeed)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_createPost(t *testing.T) {
	body := `{"owner":"alice","caption":"hello","references":["image","video"],"taggedAccounts":["bob"]}`

	r, err := http.NewRequest(http.MethodPost, "/v1/posts", bytes.NewBufferString(body))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, p *entities.Post) error {
			assert.Equal(t, "alice", p.Owner)
			assert.Equal(t, []entities.MediaKind{entities.MediaImage, entities.MediaVideo}, p.References)
			assert.Equal(t, []string{"bob"}, p.TaggedAccounts)
			p.ID = "generated-id"
			return nil
		})

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/posts", srv.createPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":"generated-id"}`, w.Body.String())
}

func Test_getPost_NotFound(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/v1/posts/missing", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().GetPost(gomock.Any(), "missing").
		Return(nil, fmt.Errorf("post missing: %w", service.ErrNotFound))

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/posts/{postID}", srv.getPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_react(t *testing.T) {
	r, err := http.NewRequest(http.MethodPost, "/v1/posts/post-1/reactions",
		bytes.NewBufferString(`{"account":"bob","kind":"heart"}`))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().React(gomock.Any(), "post-1", "bob", "heart").Return(nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/posts/{postID}/reactions", srv.react)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func Test_react_Duplicate(t *testing.T) {
	r, err := http.NewRequest(http.MethodPost, "/v1/posts/post-1/reactions",
		bytes.NewBufferString(`{"account":"bob","kind":"heart"}`))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().React(gomock.Any(), "post-1", "bob", "heart").
		Return(&service.ConflictError{Reason: service.ConflictDuplicateReaction})

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/posts/{postID}/reactions", srv.react)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"conflict: duplicate_reaction","reason":"duplicate_reaction"}`, w.Body.String())
}

func Test_removeReaction_MissingAccount(t *testing.T) {
	r, err := http.NewRequest(http.MethodDelete, "/v1/posts/post-1/reactions", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := chi.NewRouter()
	srv := server{s: mock.NewMockService(ctrl)}
	router.Delete("/v1/posts/{postID}/reactions", srv.removeReaction)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_getReactionBreakdown(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/v1/posts/post-1/reactions", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().GetReactionBreakdown(gomock.Any(), "post-1").
		Return(map[string]uint32{"heart": 3, "laugh": 1}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/posts/{postID}/reactions", srv.getReactionBreakdown)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"heart":3,"laugh":1}`, w.Body.String())
}

func Test_addComment(t *testing.T) {
	timestamp := time.Unix(200, 0)

	r, err := http.NewRequest(http.MethodPost, "/v1/posts/post-1/comments",
		bytes.NewBufferString(`{"account":"bob","text":"nice!"}`))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().AddComment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, p *service.AddCommentParams) (*entities.Comment, error) {
			assert.Equal(t, "post-1", p.PostID)
			assert.Equal(t, "bob", p.Account)
			assert.Equal(t, "nice!", p.Text)
			return &entities.Comment{
				ID:        "c-1",
				PostID:    "post-1",
				Account:   "bob",
				Text:      "nice!",
				CreatedAt: timestamp,
				UpdatedAt: timestamp,
			}, nil
		})

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/posts/{postID}/comments", srv.addComment)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `
{
   "id":"c-1",
   "postId":"post-1",
   "account":"bob",
   "text":"nice!",
   "createdAt":200,
   "updatedAt":200,
   "deleted":false
}
	`, w.Body.String())
}

func Test_listComments_Tombstoned(t *testing.T) {
	timestamp := time.Unix(300, 0)
	deletedAt := timestamp.Add(time.Hour)

	r, err := http.NewRequest(http.MethodGet, "/v1/posts/post-1/comments", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().ListComments(gomock.Any(), "post-1", gomock.Nil(), 1, 10).Return([]*entities.Comment{
		{
			ID:        "c-1",
			PostID:    "post-1",
			Account:   "bob",
			Text:      "removed text",
			CreatedAt: timestamp,
			UpdatedAt: timestamp,
			DeletedAt: &deletedAt,
			DeletedBy: "bob",
		},
	}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/posts/{postID}/comments", srv.listComments)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	// tombstoned comments keep their slot with blanked content
	assert.JSONEq(t, `
[
   {
      "id":"c-1",
      "postId":"post-1",
      "account":"bob",
      "text":"",
      "createdAt":300,
      "updatedAt":300,
      "deleted":true
   }
]
	`, w.Body.String())
}

func Test_proposeConnection(t *testing.T) {
	r, err := http.NewRequest(http.MethodPost, "/v1/connections",
		bytes.NewBufferString(`{"initiator":"alice","target":"bob"}`))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().ProposeConnection(gomock.Any(), "alice", "bob").Return("g-1", nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/connections", srv.proposeConnection)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":"g-1"}`, w.Body.String())
}

func Test_proposeConnection_Conflicts(t *testing.T) {
	for _, reason := range []service.ConflictReason{
		service.ConflictSelfPair,
		service.ConflictDuplicateGroup,
		service.ConflictUserInUse,
		service.ConflictReciprocalInitiated,
	} {
		reason := reason
		t.Run(string(reason), func(t *testing.T) {
			r, err := http.NewRequest(http.MethodPost, "/v1/connections",
				bytes.NewBufferString(`{"initiator":"alice","target":"bob"}`))
			require.NoError(t, err)

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			s := mock.NewMockService(ctrl)

			s.EXPECT().ProposeConnection(gomock.Any(), "alice", "bob").
				Return("", &service.ConflictError{Reason: reason})

			router := chi.NewRouter()
			srv := server{s: s}
			router.Post("/v1/connections", srv.proposeConnection)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, http.StatusConflict, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":"conflict: %s","reason":"%s"}`, reason, reason), w.Body.String())
		})
	}
}

func Test_acceptConnection(t *testing.T) {
	r, err := http.NewRequest(http.MethodPost, "/v1/connections/g-1/accept",
		bytes.NewBufferString(`{"account":"bob"}`))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().AcceptConnection(gomock.Any(), "g-1", "bob").Return(nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/connections/{groupID}/accept", srv.acceptConnection)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func Test_getEngagement(t *testing.T) {
	timestamp := time.Unix(400, 0)

	r, err := http.NewRequest(http.MethodGet, "/v1/posts/post-1/engagement", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().GetEngagement(gomock.Any(), "post-1").Return(&entities.Engagement{
		PostID:        "post-1",
		LikesCount:    2,
		CommentsCount: 1,
		SharesCount:   0,
		ContentWeight: 1.1,
		UpdateBoost:   1.4,
		RankingScore:  4.62,
		UpdatedAt:     timestamp,
	}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/posts/{postID}/engagement", srv.getEngagement)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
   "postId":"post-1",
   "likesCount":2,
   "commentsCount":1,
   "sharesCount":0,
   "contentWeight":1.1,
   "updateBoost":1.4,
   "rankingScore":4.62,
   "updatedAt":400
}
	`, w.Body.String())
}
