package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/PaoloGuimalan/chatterloop-user-service/internal/entities"
	"github.com/PaoloGuimalan/chatterloop-user-service/internal/service"
)

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode request: %w", err)
	}

	return nil
}

func extractPaginationFromQuery(q url.Values) (page, pageSize int, err error) {
	page, pageSize = 1, defaultPageSize

	if s := q.Get("page"); s != "" {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil || v == 0 {
			return 0, 0, fmt.Errorf("invalid page")
		}
		page = int(v)
	}

	if s := q.Get("pageSize"); s != "" {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil || v == 0 {
			return 0, 0, fmt.Errorf("invalid pageSize")
		}
		if v > maxPageSize {
			return 0, 0, fmt.Errorf("pageSize is too big")
		}
		pageSize = int(v)
	}

	return page, pageSize, nil
}

func (s server) createAccount(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /accounts Accounts CreateAccount
	//
	// Register an account replica.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/CreateAccountRequest"
	// responses:
	//   '201':
	//     description: account created
	//   '409':
	//     description: account already exists
	//     schema:
	//       "$ref": "#/definitions/ConflictResponse"

	var req CreateAccountRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.CreateAccount(r.Context(), &entities.Account{
		ID:         req.ID,
		Username:   req.Username,
		IsActive:   req.IsActive,
		IsVerified: req.IsVerified,
	}); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (s server) getAccount(w http.ResponseWriter, r *http.Request) {
	a, err := s.s.GetAccount(r.Context(), chi.URLParam(r, "account"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIAccount(a))
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts Posts CreatePost
	//
	// Create a post and its initial engagement snapshot.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/CreatePostRequest"
	// responses:
	//   '201':
	//     description: post created
	//     schema:
	//       "$ref": "#/definitions/CreatePostResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req CreatePostRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	refs := make([]entities.MediaKind, len(req.References))
	for i, v := range req.References {
		refs[i] = entities.MediaKind(v)
	}

	post := entities.Post{
		Owner:          req.Owner,
		Caption:        req.Caption,
		Privacy:        entities.PrivacyStatus(req.Privacy),
		References:     refs,
		TaggedAccounts: req.TaggedAccounts,
	}

	if err := s.s.CreatePost(r.Context(), &post); err != nil {
		writeServiceError(w, err)
		return
	}

	writeOK(w, http.StatusCreated, CreatePostResponse{ID: post.ID})
}

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	p, err := s.s.GetPost(r.Context(), chi.URLParam(r, "postID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIPost(p))
}

func (s server) listProfilePosts(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := extractPaginationFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pp, err := s.s.ListPostsByOwner(r.Context(), chi.URLParam(r, "account"), page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]*Post, len(pp))
	for i, p := range pp {
		out[i] = toAPIPost(p)
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) getFeed(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /feed Feed GetFeed
	//
	// Return the composed feed page for the requesting account.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: requestedBy
	//   description: account the feed is composed for
	//   in: query
	//   required: true
	// - name: page
	//   in: query
	//   required: false
	//   default: 1
	// - name: pageSize
	//   in: query
	//   required: false
	//   default: 10
	//   maximum: 100
	// responses:
	//   '200':
	//     description: feed page
	//     schema:
	//       "$ref": "#/definitions/FeedResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	viewer := r.URL.Query().Get("requestedBy")
	if viewer == "" {
		writeError(w, http.StatusBadRequest, "requestedBy is required")
		return
	}

	page, pageSize, err := extractPaginationFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := s.s.ComposeFeed(r.Context(), viewer, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeOK(w, http.StatusOK, newFeedResponse(items))
}

func (s server) react(w http.ResponseWriter, r *http.Request) {
	var req ReactionRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.React(r.Context(), chi.URLParam(r, "postID"), req.Account, req.Kind); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (s server) changeReaction(w http.ResponseWriter, r *http.Request) {
	var req ReactionRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.ChangeReaction(r.Context(), chi.URLParam(r, "postID"), req.Account, req.Kind); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s server) removeReaction(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")
	if account == "" {
		writeError(w, http.StatusBadRequest, "account is required")
		return
	}

	if err := s.s.RemoveReaction(r.Context(), chi.URLParam(r, "postID"), account); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) getReactionBreakdown(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{postID}/reactions Posts GetReactionBreakdown
	//
	// Return per-kind reaction tallies for the post preview.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: tallies keyed by reaction kind
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	tt, err := s.s.GetReactionBreakdown(r.Context(), chi.URLParam(r, "postID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeOK(w, http.StatusOK, tt)
}

func (s server) addComment(w http.ResponseWriter, r *http.Request) {
	var req CommentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := s.s.AddComment(r.Context(), &service.AddCommentParams{
		PostID:     chi.URLParam(r, "postID"),
		Account:    req.Account,
		ParentID:   req.ParentID,
		Text:       req.Text,
		Attachment: req.Attachment,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeOK(w, http.StatusCreated, toAPIComment(c))
}

func (s server) listComments(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := extractPaginationFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var parentID *string
	if v := r.URL.Query().Get("parentId"); v != "" {
		parentID = &v
	}

	cc, err := s.s.ListComments(r.Context(), chi.URLParam(r, "postID"), parentID, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]*Comment, len(cc))
	for i, c := range cc {
		out[i] = toAPIComment(c)
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) updateComment(w http.ResponseWriter, r *http.Request) {
	var req UpdateCommentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.UpdateComment(r.Context(), chi.URLParam(r, "commentID"), req.Text); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s server) deleteComment(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")
	if account == "" {
		writeError(w, http.StatusBadRequest, "account is required")
		return
	}

	if err := s.s.SoftDeleteComment(r.Context(), chi.URLParam(r, "commentID"), account); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) sharePost(w http.ResponseWriter, r *http.Request) {
	var req ShareRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.SharePost(r.Context(), chi.URLParam(r, "postID"), req.Account); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (s server) getEngagement(w http.ResponseWriter, r *http.Request) {
	e, err := s.s.GetEngagement(r.Context(), chi.URLParam(r, "postID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIEngagement(e))
}

func (s server) proposeConnection(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /connections Connections ProposeConnection
	//
	// Propose a connection between two accounts. At most one group may exist
	// per pair of accounts regardless of direction.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/ConnectionRequest"
	// responses:
	//   '201':
	//     description: connection proposed
	//     schema:
	//       "$ref": "#/definitions/ConnectionResponse"
	//   '409':
	//     description: pair conflict
	//     schema:
	//       "$ref": "#/definitions/ConflictResponse"

	var req ConnectionRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.s.ProposeConnection(r.Context(), req.Initiator, req.Target)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeOK(w, http.StatusCreated, ConnectionResponse{ID: id})
}

func (s server) acceptConnection(w http.ResponseWriter, r *http.Request) {
	var req AcceptConnectionRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.AcceptConnection(r.Context(), chi.URLParam(r, "groupID"), req.Account); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s server) listConnections(w http.ResponseWriter, r *http.Request) {
	cc, err := s.s.ListConnections(r.Context(), chi.URLParam(r, "account"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]*Connection, len(cc))
	for i, g := range cc {
		out[i] = toAPIConnection(g)
	}

	writeOK(w, http.StatusOK, out)
}
