package server

import (
	"encoding/json"
	"errors"
	"net/http"

	sentry "github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"

	"github.com/PaoloGuimalan/chatterloop-user-service/internal/entities"
	"github.com/PaoloGuimalan/chatterloop-user-service/internal/feed"
	"github.com/PaoloGuimalan/chatterloop-user-service/internal/service"
)

const maxPageSize = 100
const defaultPageSize = 10

var log = logrus.WithField("layer", "server")

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// ConflictResponse carries the reason the mutation was refused.
// swagger:model
type ConflictResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// CreateAccountRequest ...
type CreateAccountRequest struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	IsActive   bool   `json:"isActive"`
	IsVerified bool   `json:"isVerified"`
}

// Account ...
type Account struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	IsActive   bool   `json:"isActive"`
	IsVerified bool   `json:"isVerified"`
	CreatedAt  uint64 `json:"createdAt"`
}

// CreatePostRequest ...
type CreatePostRequest struct {
	Owner          string   `json:"owner"`
	Caption        string   `json:"caption"`
	Privacy        string   `json:"privacy"`
	References     []string `json:"references"`
	TaggedAccounts []string `json:"taggedAccounts"`
}

// CreatePostResponse ...
type CreatePostResponse struct {
	ID string `json:"id"`
}

// Post ...
type Post struct {
	ID             string   `json:"id"`
	Owner          string   `json:"owner"`
	Caption        string   `json:"caption"`
	Privacy        string   `json:"privacy"`
	References     []string `json:"references"`
	TaggedAccounts []string `json:"taggedAccounts"`
	CreatedAt      uint64   `json:"createdAt"`
}

// Engagement ...
type Engagement struct {
	PostID        string  `json:"postId"`
	LikesCount    uint32  `json:"likesCount"`
	CommentsCount uint32  `json:"commentsCount"`
	SharesCount   uint32  `json:"sharesCount"`
	ContentWeight float64 `json:"contentWeight"`
	UpdateBoost   float64 `json:"updateBoost"`
	RankingScore  float64 `json:"rankingScore"`
	UpdatedAt     uint64  `json:"updatedAt"`
}

// FeedItem ...
type FeedItem struct {
	Post          Post    `json:"post"`
	RankingScore  float64 `json:"rankingScore"`
	ViewerReacted bool    `json:"viewerReacted"`
}

// FeedResponse ...
// swagger:model
type FeedResponse struct {
	Items []FeedItem `json:"items"`
}

// ReactionRequest ...
type ReactionRequest struct {
	Account string `json:"account"`
	Kind    string `json:"kind"`
}

// CommentRequest ...
type CommentRequest struct {
	Account    string  `json:"account"`
	ParentID   *string `json:"parentId,omitempty"`
	Text       string  `json:"text"`
	Attachment string  `json:"attachment"`
}

// UpdateCommentRequest ...
type UpdateCommentRequest struct {
	Text string `json:"text"`
}

// Comment is a comment tree node. Tombstoned comments keep their place with
// blanked content.
type Comment struct {
	ID         string  `json:"id"`
	PostID     string  `json:"postId"`
	ParentID   *string `json:"parentId,omitempty"`
	Account    string  `json:"account"`
	Text       string  `json:"text"`
	Attachment string  `json:"attachment,omitempty"`
	CreatedAt  uint64  `json:"createdAt"`
	UpdatedAt  uint64  `json:"updatedAt"`
	Deleted    bool    `json:"deleted"`
}

// ShareRequest ...
type ShareRequest struct {
	Account string `json:"account"`
}

// ConnectionRequest ...
type ConnectionRequest struct {
	Initiator string `json:"initiator"`
	Target    string `json:"target"`
}

// ConnectionResponse ...
type ConnectionResponse struct {
	ID string `json:"id"`
}

// AcceptConnectionRequest ...
type AcceptConnectionRequest struct {
	Account string `json:"account"`
}

// Connection ...
type Connection struct {
	ID        string `json:"id"`
	Initiator string `json:"initiator"`
	Target    string `json:"target"`
	Status    string `json:"status"`
	CreatedAt uint64 `json:"createdAt"`
}

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Error("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeOK(w, status, Error{Error: message})
}

func writeInternalError(w http.ResponseWriter, message string) {
	log.Error(message)
	sentry.CaptureMessage(message)

	writeError(w, http.StatusInternalServerError, "internal error")
}

// writeServiceError maps business-logic failures onto http statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	var conflict *service.ConflictError

	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &conflict):
		writeOK(w, http.StatusConflict, ConflictResponse{
			Error:  conflict.Error(),
			Reason: string(conflict.Reason),
		})
	default:
		writeInternalError(w, err.Error())
	}
}

func toAPIAccount(a *entities.Account) *Account {
	if a == nil {
		return nil
	}

	return &Account{
		ID:         a.ID,
		Username:   a.Username,
		IsActive:   a.IsActive,
		IsVerified: a.IsVerified,
		CreatedAt:  uint64(a.CreatedAt.Unix()),
	}
}

func toAPIPost(p *entities.Post) *Post {
	if p == nil {
		return nil
	}

	refs := make([]string, len(p.References))
	for i, k := range p.References {
		refs[i] = string(k)
	}

	return &Post{
		ID:             p.ID,
		Owner:          p.Owner,
		Caption:        p.Caption,
		Privacy:        string(p.Privacy),
		References:     refs,
		TaggedAccounts: p.TaggedAccounts,
		CreatedAt:      uint64(p.CreatedAt.Unix()),
	}
}

func toAPIEngagement(e *entities.Engagement) *Engagement {
	if e == nil {
		return nil
	}

	return &Engagement{
		PostID:        e.PostID,
		LikesCount:    e.LikesCount,
		CommentsCount: e.CommentsCount,
		SharesCount:   e.SharesCount,
		ContentWeight: e.ContentWeight,
		UpdateBoost:   e.UpdateBoost,
		RankingScore:  e.RankingScore,
		UpdatedAt:     uint64(e.UpdatedAt.Unix()),
	}
}

func toAPIComment(c *entities.Comment) *Comment {
	if c == nil {
		return nil
	}

	out := &Comment{
		ID:         c.ID,
		PostID:     c.PostID,
		ParentID:   c.ParentID,
		Account:    c.Account,
		Text:       c.Text,
		Attachment: c.Attachment,
		CreatedAt:  uint64(c.CreatedAt.Unix()),
		UpdatedAt:  uint64(c.UpdatedAt.Unix()),
	}

	if c.DeletedAt != nil {
		out.Deleted = true
		out.Text = ""
		out.Attachment = ""
	}

	return out
}

func toAPIConnection(g *entities.ConnectionGroup) *Connection {
	if g == nil {
		return nil
	}

	return &Connection{
		ID:        g.ID,
		Initiator: g.Initiator,
		Target:    g.Target,
		Status:    string(g.Status),
		CreatedAt: uint64(g.CreatedAt.Unix()),
	}
}

func newFeedResponse(items []feed.Candidate) FeedResponse {
	out := FeedResponse{Items: make([]FeedItem, len(items))}

	for i, item := range items {
		p := item.Post
		out.Items[i] = FeedItem{
			Post:          *toAPIPost(&p),
			RankingScore:  item.RankingScore,
			ViewerReacted: item.ViewerReacted,
		}
	}

	return out
}
