// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/PaoloGuimalan/chatterloop-user-service/internal/entities"
	"github.com/PaoloGuimalan/chatterloop-user-service/internal/feed"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// ErrNotFound returned when a referenced post, account, comment or
// connection group is absent.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput returned when a request payload fails validation.
var ErrInvalidInput = errors.New("invalid input")

// ConflictReason identifies which invariant a conflicting mutation violated.
type ConflictReason string

const (
	// ConflictSelfPair ...
	ConflictSelfPair ConflictReason = "self_pair"
	// ConflictDuplicateGroup ...
	ConflictDuplicateGroup ConflictReason = "duplicate_group"
	// ConflictUserInUse ...
	ConflictUserInUse ConflictReason = "user_already_in_use"
	// ConflictReciprocalInitiated ...
	ConflictReciprocalInitiated ConflictReason = "reciprocal_already_initiated"
	// ConflictDuplicateReaction ...
	ConflictDuplicateReaction ConflictReason = "duplicate_reaction"
	// ConflictDuplicateAccount ...
	ConflictDuplicateAccount ConflictReason = "duplicate_account"
)

// ConflictError ...
type ConflictError struct {
	Reason ConflictReason
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Reason)
}

// AddCommentParams ...
type AddCommentParams struct {
	PostID     string
	Account    string
	ParentID   *string
	Text       string
	Attachment string
}

// Service ...
type Service interface {
	CreateAccount(ctx context.Context, a *entities.Account) error
	GetAccount(ctx context.Context, id string) (*entities.Account, error)

	CreatePost(ctx context.Context, p *entities.Post) error
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	ListPostsByOwner(ctx context.Context, owner string, page, pageSize int) ([]*entities.Post, error)

	React(ctx context.Context, postID, account, kind string) error
	ChangeReaction(ctx context.Context, postID, account, kind string) error
	RemoveReaction(ctx context.Context, postID, account string) error
	GetReactionBreakdown(ctx context.Context, postID string) (map[string]uint32, error)

	AddComment(ctx context.Context, p *AddCommentParams) (*entities.Comment, error)
	UpdateComment(ctx context.Context, commentID, text string) error
	SoftDeleteComment(ctx context.Context, commentID, account string) error
	ListComments(ctx context.Context, postID string, parentID *string, page, pageSize int) ([]*entities.Comment, error)

	SharePost(ctx context.Context, postID, account string) error
	GetEngagement(ctx context.Context, postID string) (*entities.Engagement, error)
	RecomputeScore(ctx context.Context, postID string) error

	ProposeConnection(ctx context.Context, initiator, target string) (string, error)
	AcceptConnection(ctx context.Context, groupID, account string) error
	ResolveNeighbors(ctx context.Context, account string) (map[string]struct{}, error)
	ListConnections(ctx context.Context, account string) ([]*entities.ConnectionGroup, error)

	ComposeFeed(ctx context.Context, viewer string, page, pageSize int) ([]feed.Candidate, error)
}
