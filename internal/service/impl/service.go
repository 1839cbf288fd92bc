// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/PaoloGuimalan/chatterloop-user-service/internal/entities"
	"github.com/PaoloGuimalan/chatterloop-user-service/internal/feed"
	"github.com/PaoloGuimalan/chatterloop-user-service/internal/notifier"
	"github.com/PaoloGuimalan/chatterloop-user-service/internal/score"
	"github.com/PaoloGuimalan/chatterloop-user-service/internal/service"
	"github.com/PaoloGuimalan/chatterloop-user-service/internal/storage"
)

var log = logrus.WithField("layer", "service")

type srv struct {
	s   storage.Storage
	d   notifier.Dispatcher
	cfg score.Config

	now   func() time.Time
	newID func() string
}

// New creates new instance of service.
func New(s storage.Storage, d notifier.Dispatcher, cfg score.Config) service.Service {
	return &srv{
		s:     s,
		d:     d,
		cfg:   cfg,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// notification is an intent plus the event-stream message to be emitted once
// the owning transaction commits.
type notification struct {
	intent   *notifier.Intent
	username string
	message  string
}

func (s *srv) dispatch(ctx context.Context, nn []notification) {
	for _, n := range nn {
		if n.intent != nil {
			if err := s.d.Notify(ctx, *n.intent); err != nil {
				log.WithError(err).Error("failed to dispatch notification intent")
			}
		}
		if n.username != "" {
			if err := s.d.PublishEvent(ctx, n.username, n.message); err != nil {
				log.WithError(err).Error("failed to publish event")
			}
		}
	}
}

func ageHours(createdAt, now time.Time) float64 {
	h := now.Sub(createdAt).Hours()
	if h < 0 {
		return 0
	}

	return h
}

// recompute persists the ranking score derived from the (already mutated)
// engagement snapshot. Must run inside the same transaction which locked the
// engagement row.
func (s *srv) recompute(ctx context.Context, tx storage.Storage, post *entities.Post, e *entities.Engagement, boost float64) error {
	now := s.now()

	value := score.Calculate(s.cfg, score.Input{
		LikesCount:    e.LikesCount,
		CommentsCount: e.CommentsCount,
		SharesCount:   e.SharesCount,
		ContentWeight: e.ContentWeight,
		AgeHours:      ageHours(post.CreatedAt, now),
		UpdateBoost:   boost,
	})

	if err := tx.SetEngagementScore(ctx, post.ID, boost, value, now); err != nil {
		return fmt.Errorf("failed to save score: %w", err)
	}

	return nil
}

// getPostLocked loads the post and locks its engagement row, serializing
// concurrent recomputations of the same post.
func getPostLocked(ctx context.Context, tx storage.Storage, postID string) (*entities.Post, *entities.Engagement, error) {
	post, err := tx.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("post %s: %w", postID, service.ErrNotFound)
		}

		return nil, nil, fmt.Errorf("failed to get post: %w", err)
	}

	e, err := tx.LockEngagement(ctx, postID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("engagement %s: %w", postID, service.ErrNotFound)
		}

		return nil, nil, fmt.Errorf("failed to lock engagement: %w", err)
	}

	return post, e, nil
}

func (s *srv) CreateAccount(ctx context.Context, a *entities.Account) error {
	if a.ID == "" || a.Username == "" {
		return fmt.Errorf("%w: account id and username are required", service.ErrInvalidInput)
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.now()
	}

	if err := s.s.CreateAccount(ctx, a); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return &service.ConflictError{Reason: service.ConflictDuplicateAccount}
		}

		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

func (s *srv) GetAccount(ctx context.Context, id string) (*entities.Account, error) {
	a, err := s.s.GetAccount(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("account %s: %w", id, service.ErrNotFound)
		}

		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return a, nil
}

func validateReferences(refs []entities.MediaKind) error {
	for _, k := range refs {
		switch k {
		case entities.MediaImage, entities.MediaVideo, entities.MediaOther:
		default:
			return fmt.Errorf("%w: unknown media kind %q", service.ErrInvalidInput, k)
		}
	}

	return nil
}

func (s *srv) CreatePost(ctx context.Context, p *entities.Post) error {
	if p.Owner == "" {
		return fmt.Errorf("%w: post owner is required", service.ErrInvalidInput)
	}
	if err := validateReferences(p.References); err != nil {
		return err
	}

	if p.ID == "" {
		p.ID = s.newID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	if p.Privacy == "" {
		p.Privacy = entities.PrivacyPublic
	}

	contentWeight := score.ContentWeight(p.References)

	return s.s.InTx(ctx, func(tx storage.Storage) error {
		if err := tx.CreatePost(ctx, &storage.CreatePostParams{
			ID:             p.ID,
			Owner:          p.Owner,
			Caption:        p.Caption,
			Privacy:        p.Privacy,
			References:     p.References,
			TaggedAccounts: p.TaggedAccounts,
			CreatedAt:      p.CreatedAt,
		}); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("account %s: %w", p.Owner, service.ErrNotFound)
			}

			return fmt.Errorf("failed to create post: %w", err)
		}

		// initial score over a zero engagement snapshot
		e := entities.Engagement{
			PostID:        p.ID,
			ContentWeight: contentWeight,
			UpdateBoost:   1,
			UpdatedAt:     s.now(),
		}
		e.RankingScore = score.Calculate(s.cfg, score.Input{
			ContentWeight: contentWeight,
			AgeHours:      0,
			UpdateBoost:   1,
		})

		if err := tx.CreateEngagement(ctx, &e); err != nil {
			return fmt.Errorf("failed to create engagement: %w", err)
		}

		return nil
	})
}

func (s *srv) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	p, err := s.s.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("post %s: %w", id, service.ErrNotFound)
		}

		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return p, nil
}

func (s *srv) ListPostsByOwner(ctx context.Context, owner string, page, pageSize int) ([]*entities.Post, error) {
	if pageSize <= 0 {
		pageSize = feed.DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	pp, err := s.s.ListPostsByOwner(ctx, owner, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return pp, nil
}

func (s *srv) React(ctx context.Context, postID, account, kind string) error {
	if kind == "" {
		return fmt.Errorf("%w: empty reaction kind", service.ErrInvalidInput)
	}

	var nn []notification

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		post, e, err := getPostLocked(ctx, tx, postID)
		if err != nil {
			return err
		}

		reactionID := s.newID()
		if err := tx.CreateReaction(ctx, &entities.Reaction{
			ID:        reactionID,
			PostID:    postID,
			Account:   account,
			Kind:      kind,
			CreatedAt: s.now(),
		}); err != nil {
			if errors.Is(err, storage.ErrConflict) {
				return &service.ConflictError{Reason: service.ConflictDuplicateReaction}
			}
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("account %s: %w", account, service.ErrNotFound)
			}

			return fmt.Errorf("failed to create reaction: %w", err)
		}

		if err := tx.IncrementEngagement(ctx, postID, storage.LikesCounter, 1); err != nil {
			return fmt.Errorf("failed to increment likes: %w", err)
		}
		if err := tx.IncrementPreviewTally(ctx, postID, kind, 1); err != nil {
			return fmt.Errorf("failed to increment preview tally: %w", err)
		}

		e.LikesCount++
		boost := score.NextBoost(s.cfg, e.UpdateBoost, score.EventReact, false)
		if err := s.recompute(ctx, tx, post, e, boost); err != nil {
			return err
		}

		if post.Owner != account {
			n, err := reactionNotification(ctx, tx, post.Owner, account, kind, reactionID)
			if err != nil {
				return err
			}
			nn = append(nn, *n)
		}

		return nil
	}); err != nil {
		return err
	}

	s.dispatch(ctx, nn)

	return nil
}

func reactionNotification(ctx context.Context, tx storage.Storage, owner, actor, kind, reactionID string) (*notification, error) {
	ownerAcc, err := tx.GetAccount(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner account: %w", err)
	}
	actorAcc, err := tx.GetAccount(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("failed to get actor account: %w", err)
	}

	details := fmt.Sprintf("@%s reacted %s to your post.", actorAcc.Username, kind)

	return &notification{
		intent: &notifier.Intent{
			ReferenceID: reactionID,
			ToAccount:   ownerAcc.Username,
			FromAccount: actorAcc.Username,
			Kind:        "post_reaction",
			Headline:    "Post Reaction",
			Details:     details,
		},
		username: ownerAcc.Username,
		message:  details,
	}, nil
}

func (s *srv) ChangeReaction(ctx context.Context, postID, account, kind string) error {
	if kind == "" {
		return fmt.Errorf("%w: empty reaction kind", service.ErrInvalidInput)
	}

	var nn []notification
	var reactionID, details string

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		post, e, err := getPostLocked(ctx, tx, postID)
		if err != nil {
			return err
		}

		r, err := tx.GetReaction(ctx, postID, account)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("reaction: %w", service.ErrNotFound)
			}

			return fmt.Errorf("failed to get reaction: %w", err)
		}

		if r.Kind == kind {
			return nil
		}

		if err := tx.SetReactionKind(ctx, r.ID, kind); err != nil {
			return fmt.Errorf("failed to update reaction: %w", err)
		}
		if err := tx.IncrementPreviewTally(ctx, postID, r.Kind, -1); err != nil {
			return fmt.Errorf("failed to decrement preview tally: %w", err)
		}
		if err := tx.IncrementPreviewTally(ctx, postID, kind, 1); err != nil {
			return fmt.Errorf("failed to increment preview tally: %w", err)
		}

		// counts and boost are untouched on a swap, the score still tracks age
		if err := s.recompute(ctx, tx, post, e, e.UpdateBoost); err != nil {
			return err
		}

		if post.Owner != account {
			actorAcc, err := tx.GetAccount(ctx, account)
			if err != nil {
				return fmt.Errorf("failed to get actor account: %w", err)
			}
			ownerAcc, err := tx.GetAccount(ctx, post.Owner)
			if err != nil {
				return fmt.Errorf("failed to get owner account: %w", err)
			}

			reactionID = r.ID
			details = fmt.Sprintf("@%s reacted %s to your post.", actorAcc.Username, kind)
			nn = append(nn, notification{username: ownerAcc.Username, message: details})
		}

		return nil
	}); err != nil {
		return err
	}

	if reactionID != "" {
		if err := s.d.UpdateContent(ctx, reactionID, details); err != nil {
			log.WithError(err).Error("failed to dispatch notification update")
		}
	}
	s.dispatch(ctx, nn)

	return nil
}

func (s *srv) RemoveReaction(ctx context.Context, postID, account string) error {
	var reactionID string

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		post, e, err := getPostLocked(ctx, tx, postID)
		if err != nil {
			return err
		}

		r, err := tx.GetReaction(ctx, postID, account)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("reaction: %w", service.ErrNotFound)
			}

			return fmt.Errorf("failed to get reaction: %w", err)
		}

		if err := tx.DeleteReaction(ctx, r.ID); err != nil {
			return fmt.Errorf("failed to delete reaction: %w", err)
		}
		if err := tx.IncrementEngagement(ctx, postID, storage.LikesCounter, -1); err != nil {
			return fmt.Errorf("failed to decrement likes: %w", err)
		}
		if err := tx.IncrementPreviewTally(ctx, postID, r.Kind, -1); err != nil {
			return fmt.Errorf("failed to decrement preview tally: %w", err)
		}

		if e.LikesCount > 0 {
			e.LikesCount--
		}
		boost := score.NextBoost(s.cfg, e.UpdateBoost, score.EventReact, true)
		if err := s.recompute(ctx, tx, post, e, boost); err != nil {
			return err
		}

		reactionID = r.ID

		return nil
	}); err != nil {
		return err
	}

	if err := s.d.DeleteByReference(ctx, reactionID); err != nil {
		log.WithError(err).Error("failed to dispatch notification delete")
	}

	return nil
}

func (s *srv) GetReactionBreakdown(ctx context.Context, postID string) (map[string]uint32, error) {
	if _, err := s.GetPost(ctx, postID); err != nil {
		return nil, err
	}

	tt, err := s.s.GetPreviewTallies(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get preview tallies: %w", err)
	}

	return tt, nil
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}

	return s
}

func (s *srv) AddComment(ctx context.Context, p *service.AddCommentParams) (*entities.Comment, error) {
	if strings.TrimSpace(p.Text) == "" && p.Attachment == "" {
		return nil, fmt.Errorf("%w: no comment to save", service.ErrInvalidInput)
	}

	var nn []notification
	var out *entities.Comment

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		post, e, err := getPostLocked(ctx, tx, p.PostID)
		if err != nil {
			return err
		}

		var parent *entities.Comment
		if p.ParentID != nil {
			parent, err = tx.GetComment(ctx, *p.ParentID)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					return fmt.Errorf("parent comment %s: %w", *p.ParentID, service.ErrNotFound)
				}

				return fmt.Errorf("failed to get parent comment: %w", err)
			}
			if parent.PostID != p.PostID {
				return fmt.Errorf("%w: parent comment belongs to another post", service.ErrInvalidInput)
			}
		}

		now := s.now()
		c := entities.Comment{
			ID:         s.newID(),
			PostID:     p.PostID,
			ParentID:   p.ParentID,
			Account:    p.Account,
			Text:       p.Text,
			Attachment: p.Attachment,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		if err := tx.CreateComment(ctx, &c); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("account %s: %w", p.Account, service.ErrNotFound)
			}

			return fmt.Errorf("failed to create comment: %w", err)
		}

		if err := tx.IncrementEngagement(ctx, p.PostID, storage.CommentsCounter, 1); err != nil {
			return fmt.Errorf("failed to increment comments: %w", err)
		}

		e.CommentsCount++
		boost := score.NextBoost(s.cfg, e.UpdateBoost, score.EventComment, false)
		if err := s.recompute(ctx, tx, post, e, boost); err != nil {
			return err
		}

		n, err := commentNotification(ctx, tx, post, parent, &c)
		if err != nil {
			return err
		}
		if n != nil {
			nn = append(nn, *n)
		}

		out = &c

		return nil
	}); err != nil {
		return nil, err
	}

	s.dispatch(ctx, nn)

	return out, nil
}

func commentNotification(ctx context.Context, tx storage.Storage, post *entities.Post, parent, c *entities.Comment) (*notification, error) {
	to := post.Owner
	if parent != nil {
		to = parent.Account
	}
	if to == c.Account {
		return nil, nil
	}

	toAcc, err := tx.GetAccount(ctx, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipient account: %w", err)
	}
	fromAcc, err := tx.GetAccount(ctx, c.Account)
	if err != nil {
		return nil, fmt.Errorf("failed to get author account: %w", err)
	}

	headline := "Post Comment"
	details := fmt.Sprintf("@%s commented on your post.", fromAcc.Username)
	if parent != nil {
		headline = "Replied Comment"
		details = fmt.Sprintf("@%s replied to your comment %q", fromAcc.Username, truncate(parent.Text, 30))
	}

	return &notification{
		intent: &notifier.Intent{
			ReferenceID: c.ID,
			ToAccount:   toAcc.Username,
			FromAccount: fromAcc.Username,
			Kind:        "post_comment",
			Headline:    headline,
			Details:     details,
		},
		username: toAcc.Username,
		message:  details,
	}, nil
}

func (s *srv) UpdateComment(ctx context.Context, commentID, text string) error {
	return s.s.InTx(ctx, func(tx storage.Storage) error {
		c, err := tx.GetComment(ctx, commentID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("comment %s: %w", commentID, service.ErrNotFound)
			}

			return fmt.Errorf("failed to get comment: %w", err)
		}

		if strings.TrimSpace(text) == "" && c.Attachment == "" {
			return fmt.Errorf("%w: no comment to save", service.ErrInvalidInput)
		}

		if err := tx.SetCommentText(ctx, commentID, text, s.now()); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("comment %s: %w", commentID, service.ErrNotFound)
			}

			return fmt.Errorf("failed to update comment: %w", err)
		}

		return nil
	})
}

// SoftDeleteComment tombstones a comment. comments_count is left as is, a
// deleted comment keeps its engagement weight.
func (s *srv) SoftDeleteComment(ctx context.Context, commentID, account string) error {
	if err := s.s.TombstoneComment(ctx, commentID, s.now(), account); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("comment %s: %w", commentID, service.ErrNotFound)
		}

		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}

func (s *srv) ListComments(ctx context.Context, postID string, parentID *string, page, pageSize int) ([]*entities.Comment, error) {
	if pageSize <= 0 {
		pageSize = feed.DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	cc, err := s.s.ListComments(ctx, &storage.ListCommentsParams{
		PostID:   postID,
		ParentID: parentID,
		Limit:    pageSize,
		Offset:   (page - 1) * pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return cc, nil
}

func (s *srv) SharePost(ctx context.Context, postID, account string) error {
	return s.s.InTx(ctx, func(tx storage.Storage) error {
		post, e, err := getPostLocked(ctx, tx, postID)
		if err != nil {
			return err
		}

		if err := tx.IncrementEngagement(ctx, postID, storage.SharesCounter, 1); err != nil {
			return fmt.Errorf("failed to increment shares: %w", err)
		}

		e.SharesCount++
		boost := score.NextBoost(s.cfg, e.UpdateBoost, score.EventShare, false)

		return s.recompute(ctx, tx, post, e, boost)
	})
}

func (s *srv) GetEngagement(ctx context.Context, postID string) (*entities.Engagement, error) {
	e, err := s.s.GetEngagement(ctx, postID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("engagement %s: %w", postID, service.ErrNotFound)
		}

		return nil, fmt.Errorf("failed to get engagement: %w", err)
	}

	return e, nil
}

// RecomputeScore refreshes the cached score of a post against its current
// age without touching counters or boost. Used by the rescore maintenance
// command.
func (s *srv) RecomputeScore(ctx context.Context, postID string) error {
	return s.s.InTx(ctx, func(tx storage.Storage) error {
		post, e, err := getPostLocked(ctx, tx, postID)
		if err != nil {
			return err
		}

		return s.recompute(ctx, tx, post, e, e.UpdateBoost)
	})
}

func (s *srv) ProposeConnection(ctx context.Context, initiator, target string) (string, error) {
	if initiator == "" || target == "" {
		return "", fmt.Errorf("%w: initiator and target are required", service.ErrInvalidInput)
	}
	if initiator == target {
		return "", &service.ConflictError{Reason: service.ConflictSelfPair}
	}

	id := s.newID()
	var nn []notification

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		initiatorAcc, err := tx.GetAccount(ctx, initiator)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("account %s: %w", initiator, service.ErrNotFound)
			}

			return fmt.Errorf("failed to get initiator: %w", err)
		}

		targetAcc, err := tx.GetAccount(ctx, target)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("account %s: %w", target, service.ErrNotFound)
			}

			return fmt.Errorf("failed to get target: %w", err)
		}

		existing, err := tx.GetConnectionBetween(ctx, initiator, target)
		switch {
		case err == nil:
			if existing.Initiator == initiator {
				return &service.ConflictError{Reason: service.ConflictDuplicateGroup}
			}

			return &service.ConflictError{Reason: service.ConflictReciprocalInitiated}
		case !errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("failed to check existing connection: %w", err)
		}

		if err := tx.CreateConnection(ctx, &entities.ConnectionGroup{
			ID:        id,
			Initiator: initiator,
			Target:    target,
			Status:    entities.ConnectionPending,
			CreatedAt: s.now(),
		}); err != nil {
			// lost the race on the pair index
			if errors.Is(err, storage.ErrConflict) {
				return &service.ConflictError{Reason: service.ConflictUserInUse}
			}

			return fmt.Errorf("failed to create connection: %w", err)
		}

		details := fmt.Sprintf("@%s sent you a connection request.", initiatorAcc.Username)
		nn = append(nn, notification{
			intent: &notifier.Intent{
				ReferenceID: id,
				ToAccount:   targetAcc.Username,
				FromAccount: initiatorAcc.Username,
				Kind:        "connection_request",
				Headline:    "Connection Request",
				Details:     details,
			},
			username: targetAcc.Username,
			message:  details,
		})

		return nil
	}); err != nil {
		return "", err
	}

	s.dispatch(ctx, nn)

	return id, nil
}

func (s *srv) AcceptConnection(ctx context.Context, groupID, account string) error {
	var nn []notification

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		g, err := tx.GetConnection(ctx, groupID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("connection %s: %w", groupID, service.ErrNotFound)
			}

			return fmt.Errorf("failed to get connection: %w", err)
		}

		if g.Target != account {
			return fmt.Errorf("%w: only the target may accept a connection", service.ErrInvalidInput)
		}
		if g.Status == entities.ConnectionAccepted {
			return nil
		}

		if err := tx.AcceptConnection(ctx, groupID); err != nil {
			return fmt.Errorf("failed to accept connection: %w", err)
		}

		initiatorAcc, err := tx.GetAccount(ctx, g.Initiator)
		if err != nil {
			return fmt.Errorf("failed to get initiator: %w", err)
		}
		targetAcc, err := tx.GetAccount(ctx, g.Target)
		if err != nil {
			return fmt.Errorf("failed to get target: %w", err)
		}

		details := fmt.Sprintf("@%s accepted your connection request.", targetAcc.Username)
		nn = append(nn, notification{
			intent: &notifier.Intent{
				ReferenceID: groupID,
				ToAccount:   initiatorAcc.Username,
				FromAccount: targetAcc.Username,
				Kind:        "connection_accept",
				Headline:    "Connection Accepted",
				Details:     details,
			},
			username: initiatorAcc.Username,
			message:  details,
		})

		return nil
	}); err != nil {
		return err
	}

	s.dispatch(ctx, nn)

	return nil
}

func (s *srv) ResolveNeighbors(ctx context.Context, account string) (map[string]struct{}, error) {
	ids, err := s.s.ListNeighbors(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to list neighbors: %w", err)
	}

	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == account {
			continue
		}
		out[id] = struct{}{}
	}

	return out, nil
}

func (s *srv) ListConnections(ctx context.Context, account string) ([]*entities.ConnectionGroup, error) {
	cc, err := s.s.ListConnections(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}

	return cc, nil
}

func (s *srv) ComposeFeed(ctx context.Context, viewer string, page, pageSize int) ([]feed.Candidate, error) {
	neighbors, err := s.ResolveNeighbors(ctx, viewer)
	if err != nil {
		return nil, err
	}

	cc, err := s.s.ListFeedCandidates(ctx, viewer)
	if err != nil {
		return nil, fmt.Errorf("failed to list feed candidates: %w", err)
	}

	candidates := make([]feed.Candidate, len(cc))
	for i, c := range cc {
		candidates[i] = feed.Candidate{
			Post:          c.Post,
			RankingScore:  c.RankingScore,
			ViewerReacted: c.ViewerReacted,
		}
	}

	return feed.Page(feed.Compose(viewer, neighbors, candidates), page, pageSize), nil
}
