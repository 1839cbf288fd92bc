// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/PaoloGuimalan/chatterloop-user-service/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrConflict is returned when a uniqueness constraint is violated.
var ErrConflict = fmt.Errorf("conflict")

// CounterKind is an engagement counter selector.
type CounterKind string

const (
	// LikesCounter ...
	LikesCounter CounterKind = "likes"
	// CommentsCounter ...
	CommentsCounter CounterKind = "comments"
	// SharesCounter ...
	SharesCounter CounterKind = "shares"
)

// Storage provides methods for interacting with database.
//
// Engagement counters are clamped at zero on decrement, over-decrement is
// silently absorbed. Engagement mutations and the score write for one post
// belong in a single InTx call with the engagement row locked first.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error

	CreateAccount(ctx context.Context, a *entities.Account) error
	GetAccount(ctx context.Context, id string) (*entities.Account, error)

	CreatePost(ctx context.Context, p *CreatePostParams) error
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	ListPostIDs(ctx context.Context) ([]string, error)
	ListPostsByOwner(ctx context.Context, owner string, limit, offset int) ([]*entities.Post, error)

	CreateEngagement(ctx context.Context, e *entities.Engagement) error
	GetEngagement(ctx context.Context, postID string) (*entities.Engagement, error)
	LockEngagement(ctx context.Context, postID string) (*entities.Engagement, error)
	IncrementEngagement(ctx context.Context, postID string, kind CounterKind, delta int) error
	SetEngagementScore(ctx context.Context, postID string, boost, rankingScore float64, updatedAt time.Time) error

	IncrementPreviewTally(ctx context.Context, postID, reactionKind string, delta int) error
	GetPreviewTallies(ctx context.Context, postID string) (map[string]uint32, error)

	CreateReaction(ctx context.Context, r *entities.Reaction) error
	GetReaction(ctx context.Context, postID, account string) (*entities.Reaction, error)
	SetReactionKind(ctx context.Context, id, kind string) error
	DeleteReaction(ctx context.Context, id string) error

	CreateComment(ctx context.Context, c *entities.Comment) error
	GetComment(ctx context.Context, id string) (*entities.Comment, error)
	SetCommentText(ctx context.Context, id, text string, updatedAt time.Time) error
	TombstoneComment(ctx context.Context, id string, deletedAt time.Time, deletedBy string) error
	ListComments(ctx context.Context, p *ListCommentsParams) ([]*entities.Comment, error)

	CreateConnection(ctx context.Context, c *entities.ConnectionGroup) error
	GetConnection(ctx context.Context, id string) (*entities.ConnectionGroup, error)
	GetConnectionBetween(ctx context.Context, a, b string) (*entities.ConnectionGroup, error)
	AcceptConnection(ctx context.Context, id string) error
	ListConnections(ctx context.Context, account string) ([]*entities.ConnectionGroup, error)
	ListNeighbors(ctx context.Context, account string) ([]string, error)

	ListFeedCandidates(ctx context.Context, viewer string) ([]*FeedCandidate, error)
}

// CreatePostParams ...
type CreatePostParams struct {
	ID             string
	Owner          string
	Caption        string
	Privacy        entities.PrivacyStatus
	References     []entities.MediaKind
	TaggedAccounts []string
	CreatedAt      time.Time
}

// ListCommentsParams ...
type ListCommentsParams struct {
	PostID   string
	ParentID *string
	Limit    int
	Offset   int
}

// FeedCandidate is a post with the viewer-specific signals attached.
type FeedCandidate struct {
	Post          entities.Post
	RankingScore  float64
	ViewerReacted bool
}
