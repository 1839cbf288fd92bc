// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/PaoloGuimalan/chatterloop-user-service/internal/entities"
	"github.com/PaoloGuimalan/chatterloop-user-service/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run InTx within tx")

const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

type pg struct {
	ext sqlx.ExtContext
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

type accountDTO struct {
	ID         string    `db:"id"`
	Username   string    `db:"username"`
	IsActive   bool      `db:"is_active"`
	IsVerified bool      `db:"is_verified"`
	CreatedAt  time.Time `db:"created_at"`
}

type postDTO struct {
	ID        string    `db:"post_id"`
	Owner     string    `db:"owner"`
	Caption   string    `db:"caption"`
	Privacy   string    `db:"privacy_status"`
	CreatedAt time.Time `db:"created_at"`
}

type engagementDTO struct {
	PostID        string    `db:"post_id"`
	LikesCount    uint32    `db:"likes_count"`
	CommentsCount uint32    `db:"comments_count"`
	SharesCount   uint32    `db:"shares_count"`
	ContentWeight float64   `db:"content_weight"`
	UpdateBoost   float64   `db:"update_boost"`
	RankingScore  float64   `db:"ranking_score"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type commentDTO struct {
	ID         string         `db:"comment_id"`
	PostID     string         `db:"post_id"`
	ParentID   sql.NullString `db:"parent_id"`
	Account    string         `db:"account_id"`
	Text       string         `db:"text"`
	Attachment sql.NullString `db:"attachment"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
	DeletedAt  *time.Time     `db:"deleted_at"`
	DeletedBy  sql.NullString `db:"deleted_by"`
}

type connectionDTO struct {
	ID        string    `db:"connection_id"`
	Initiator string    `db:"initiator"`
	Target    string    `db:"target"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

type feedCandidateDTO struct {
	ID            string         `db:"post_id"`
	Owner         string         `db:"owner"`
	Caption       string         `db:"caption"`
	Privacy       string         `db:"privacy_status"`
	CreatedAt     time.Time      `db:"created_at"`
	RankingScore  float64        `db:"ranking_score"`
	ViewerReacted bool           `db:"viewer_reacted"`
	Tagged        pq.StringArray `db:"tagged"`
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) CreateAccount(ctx context.Context, a *entities.Account) error {
	dto := accountDTO{
		ID:         a.ID,
		Username:   a.Username,
		IsActive:   a.IsActive,
		IsVerified: a.IsVerified,
		CreatedAt:  a.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO account(id, username, is_active, is_verified, created_at)
			VALUES(:id, :username, :is_active, :is_verified, :created_at)
		`, dto,
	); err != nil {
		if isErrCode(err, uniqueViolation) {
			return storage.ErrConflict
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetAccount(ctx context.Context, id string) (*entities.Account, error) {
	var a accountDTO

	if err := sqlx.GetContext(ctx, s.ext, &a,
		`SELECT id, username, is_active, is_verified, created_at FROM account WHERE id=$1`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Account{
		ID:         a.ID,
		Username:   a.Username,
		IsActive:   a.IsActive,
		IsVerified: a.IsVerified,
		CreatedAt:  a.CreatedAt,
	}, nil
}

func (s pg) CreatePost(ctx context.Context, p *storage.CreatePostParams) error {
	post := postDTO{
		ID:        p.ID,
		Owner:     p.Owner,
		Caption:   p.Caption,
		Privacy:   string(p.Privacy),
		CreatedAt: p.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO post(post_id, owner, caption, privacy_status, created_at)
			VALUES(:post_id, :owner, :caption, :privacy_status, :created_at)
		`, post,
	); err != nil {
		if isErrCode(err, foreignKeyViolation) {
			return storage.ErrNotFound
		}
		if isErrCode(err, uniqueViolation) {
			return storage.ErrConflict
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	for i, kind := range p.References {
		if _, err := s.ext.ExecContext(ctx,
			`INSERT INTO post_reference(reference_id, post_id, media_kind) VALUES($1, $2, $3)`,
			fmt.Sprintf("%s/%d", p.ID, i), p.ID, string(kind),
		); err != nil {
			return fmt.Errorf("failed to exec: %w", err)
		}
	}

	for i, account := range p.TaggedAccounts {
		if _, err := s.ext.ExecContext(ctx,
			`INSERT INTO post_tag(post_tag_id, post_id, account_id) VALUES($1, $2, $3)`,
			fmt.Sprintf("%s/%d", p.ID, i), p.ID, account,
		); err != nil {
			if isErrCode(err, foreignKeyViolation) {
				return storage.ErrNotFound
			}

			return fmt.Errorf("failed to exec: %w", err)
		}
	}

	return nil
}

func (s pg) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	var p postDTO

	if err := sqlx.GetContext(ctx, s.ext, &p,
		`SELECT post_id, owner, caption, privacy_status, created_at FROM post WHERE post_id=$1`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	var kinds []string
	if err := sqlx.SelectContext(ctx, s.ext, &kinds,
		`SELECT media_kind FROM post_reference WHERE post_id=$1 ORDER BY reference_id`, id,
	); err != nil {
		return nil, fmt.Errorf("failed to query references: %w", err)
	}

	var tagged []string
	if err := sqlx.SelectContext(ctx, s.ext, &tagged,
		`SELECT account_id FROM post_tag WHERE post_id=$1 ORDER BY post_tag_id`, id,
	); err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	refs := make([]entities.MediaKind, len(kinds))
	for i, k := range kinds {
		refs[i] = entities.MediaKind(k)
	}

	return &entities.Post{
		ID:             p.ID,
		Owner:          p.Owner,
		Caption:        p.Caption,
		Privacy:        entities.PrivacyStatus(p.Privacy),
		References:     refs,
		TaggedAccounts: tagged,
		CreatedAt:      p.CreatedAt,
	}, nil
}

func (s pg) ListPostIDs(ctx context.Context) ([]string, error) {
	var ids []string

	if err := sqlx.SelectContext(ctx, s.ext, &ids, `SELECT post_id FROM post ORDER BY created_at`); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return ids, nil
}

func (s pg) ListPostsByOwner(ctx context.Context, owner string, limit, offset int) ([]*entities.Post, error) {
	var pp []*postDTO

	if err := sqlx.SelectContext(ctx, s.ext, &pp,
		`
			SELECT post_id, owner, caption, privacy_status, created_at FROM post
			WHERE owner=$1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3
		`, owner, limit, offset,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Post, len(pp))
	for i, p := range pp {
		out[i] = &entities.Post{
			ID:        p.ID,
			Owner:     p.Owner,
			Caption:   p.Caption,
			Privacy:   entities.PrivacyStatus(p.Privacy),
			CreatedAt: p.CreatedAt,
		}
	}

	return out, nil
}

func (s pg) CreateEngagement(ctx context.Context, e *entities.Engagement) error {
	dto := engagementDTO{
		PostID:        e.PostID,
		LikesCount:    e.LikesCount,
		CommentsCount: e.CommentsCount,
		SharesCount:   e.SharesCount,
		ContentWeight: e.ContentWeight,
		UpdateBoost:   e.UpdateBoost,
		RankingScore:  e.RankingScore,
		UpdatedAt:     e.UpdatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO post_engagement(post_id, likes_count, comments_count, shares_count, content_weight, update_boost, ranking_score, updated_at)
			VALUES(:post_id, :likes_count, :comments_count, :shares_count, :content_weight, :update_boost, :ranking_score, :updated_at)
		`, dto,
	); err != nil {
		if isErrCode(err, foreignKeyViolation) {
			return storage.ErrNotFound
		}
		if isErrCode(err, uniqueViolation) {
			return storage.ErrConflict
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) getEngagement(ctx context.Context, postID, suffix string) (*entities.Engagement, error) {
	var e engagementDTO

	if err := sqlx.GetContext(ctx, s.ext, &e, fmt.Sprintf(`
			SELECT post_id, likes_count, comments_count, shares_count, content_weight, update_boost, ranking_score, updated_at
			FROM post_engagement
			WHERE post_id=$1 %s
		`, suffix), postID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Engagement{
		PostID:        e.PostID,
		LikesCount:    e.LikesCount,
		CommentsCount: e.CommentsCount,
		SharesCount:   e.SharesCount,
		ContentWeight: e.ContentWeight,
		UpdateBoost:   e.UpdateBoost,
		RankingScore:  e.RankingScore,
		UpdatedAt:     e.UpdatedAt,
	}, nil
}

func (s pg) GetEngagement(ctx context.Context, postID string) (*entities.Engagement, error) {
	return s.getEngagement(ctx, postID, "")
}

// LockEngagement reads the engagement row FOR UPDATE, serializing concurrent
// recomputations of the same post for the rest of the transaction.
func (s pg) LockEngagement(ctx context.Context, postID string) (*entities.Engagement, error) {
	return s.getEngagement(ctx, postID, "FOR UPDATE")
}

func (s pg) IncrementEngagement(ctx context.Context, postID string, kind storage.CounterKind, delta int) error {
	var column string
	switch kind {
	case storage.LikesCounter:
		column = "likes_count"
	case storage.CommentsCounter:
		column = "comments_count"
	case storage.SharesCounter:
		column = "shares_count"
	default:
		return fmt.Errorf("unknown counter kind %q", kind)
	}

	res, err := s.ext.ExecContext(ctx, fmt.Sprintf(
		`UPDATE post_engagement SET %[1]s = GREATEST(0, %[1]s + $2) WHERE post_id=$1`, column,
	), postID, delta)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) SetEngagementScore(ctx context.Context, postID string, boost, rankingScore float64, updatedAt time.Time) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE post_engagement SET update_boost=$2, ranking_score=$3, updated_at=$4 WHERE post_id=$1`,
		postID, boost, rankingScore, updatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) IncrementPreviewTally(ctx context.Context, postID, reactionKind string, delta int) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO preview_tally(post_id, reaction_kind, count) VALUES($1, $2, GREATEST(0, $3))
			ON CONFLICT(post_id, reaction_kind) DO UPDATE SET count = GREATEST(0, preview_tally.count + $3)
		`, postID, reactionKind, delta,
	); err != nil {
		if isErrCode(err, foreignKeyViolation) {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetPreviewTallies(ctx context.Context, postID string) (map[string]uint32, error) {
	rows, err := s.ext.QueryxContext(ctx,
		`SELECT reaction_kind, count FROM preview_tally WHERE post_id=$1`, postID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer rows.Close()

	out := make(map[string]uint32)
	for rows.Next() {
		var (
			kind  string
			count uint32
		)
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("failed to scan: %w", err)
		}
		out[kind] = count
	}

	return out, rows.Err()
}

func (s pg) CreateReaction(ctx context.Context, r *entities.Reaction) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO reaction(reaction_id, post_id, account_id, kind, created_at)
			VALUES($1, $2, $3, $4, $5)
		`, r.ID, r.PostID, r.Account, r.Kind, r.CreatedAt.UTC(),
	); err != nil {
		if isErrCode(err, uniqueViolation) {
			return storage.ErrConflict
		}
		if isErrCode(err, foreignKeyViolation) {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetReaction(ctx context.Context, postID, account string) (*entities.Reaction, error) {
	var r struct {
		ID        string    `db:"reaction_id"`
		PostID    string    `db:"post_id"`
		Account   string    `db:"account_id"`
		Kind      string    `db:"kind"`
		CreatedAt time.Time `db:"created_at"`
	}

	if err := sqlx.GetContext(ctx, s.ext, &r,
		`SELECT reaction_id, post_id, account_id, kind, created_at FROM reaction WHERE post_id=$1 AND account_id=$2`,
		postID, account,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Reaction{
		ID:        r.ID,
		PostID:    r.PostID,
		Account:   r.Account,
		Kind:      r.Kind,
		CreatedAt: r.CreatedAt,
	}, nil
}

func (s pg) SetReactionKind(ctx context.Context, id, kind string) error {
	res, err := s.ext.ExecContext(ctx, `UPDATE reaction SET kind=$2 WHERE reaction_id=$1`, id, kind)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) DeleteReaction(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM reaction WHERE reaction_id=$1`, id)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) CreateComment(ctx context.Context, c *entities.Comment) error {
	var parent sql.NullString
	if c.ParentID != nil {
		parent = sql.NullString{String: *c.ParentID, Valid: true}
	}

	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO comment(comment_id, post_id, parent_id, account_id, text, attachment, created_at, updated_at)
			VALUES($1, $2, $3, $4, $5, $6, $7, $7)
		`, c.ID, c.PostID, parent, c.Account, c.Text, nullString(c.Attachment), c.CreatedAt.UTC(),
	); err != nil {
		if isErrCode(err, foreignKeyViolation) {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetComment(ctx context.Context, id string) (*entities.Comment, error) {
	var c commentDTO

	if err := sqlx.GetContext(ctx, s.ext, &c, `
			SELECT comment_id, post_id, parent_id, account_id, text, attachment, created_at, updated_at, deleted_at, deleted_by
			FROM comment WHERE comment_id=$1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return commentFromDTO(&c), nil
}

func (s pg) SetCommentText(ctx context.Context, id, text string, updatedAt time.Time) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE comment SET text=$2, updated_at=$3 WHERE comment_id=$1 AND deleted_at IS NULL`,
		id, text, updatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) TombstoneComment(ctx context.Context, id string, deletedAt time.Time, deletedBy string) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE comment SET deleted_at=$2, deleted_by=$3 WHERE comment_id=$1 AND deleted_at IS NULL`,
		id, deletedAt.UTC(), deletedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) ListComments(ctx context.Context, p *storage.ListCommentsParams) ([]*entities.Comment, error) {
	query := `
		SELECT comment_id, post_id, parent_id, account_id, text, attachment, created_at, updated_at, deleted_at, deleted_by
		FROM comment WHERE post_id=$1 AND parent_id IS NULL
		ORDER BY created_at LIMIT $2 OFFSET $3
	`
	args := []interface{}{p.PostID, p.Limit, p.Offset}

	if p.ParentID != nil {
		query = `
			SELECT comment_id, post_id, parent_id, account_id, text, attachment, created_at, updated_at, deleted_at, deleted_by
			FROM comment WHERE post_id=$1 AND parent_id=$4
			ORDER BY created_at LIMIT $2 OFFSET $3
		`
		args = append(args, *p.ParentID)
	}

	var cc []*commentDTO
	if err := sqlx.SelectContext(ctx, s.ext, &cc, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Comment, len(cc))
	for i, c := range cc {
		out[i] = commentFromDTO(c)
	}

	return out, nil
}

func (s pg) CreateConnection(ctx context.Context, c *entities.ConnectionGroup) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO connection(connection_id, initiator, target, status, created_at)
			VALUES($1, $2, $3, $4, $5)
		`, c.ID, c.Initiator, c.Target, string(c.Status), c.CreatedAt.UTC(),
	); err != nil {
		if isErrCode(err, uniqueViolation) {
			return storage.ErrConflict
		}
		if isErrCode(err, foreignKeyViolation) {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetConnection(ctx context.Context, id string) (*entities.ConnectionGroup, error) {
	var c connectionDTO

	if err := sqlx.GetContext(ctx, s.ext, &c,
		`SELECT connection_id, initiator, target, status, created_at FROM connection WHERE connection_id=$1`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return connectionFromDTO(&c), nil
}

func (s pg) GetConnectionBetween(ctx context.Context, a, b string) (*entities.ConnectionGroup, error) {
	var c connectionDTO

	if err := sqlx.GetContext(ctx, s.ext, &c, `
			SELECT connection_id, initiator, target, status, created_at FROM connection
			WHERE (initiator=$1 AND target=$2) OR (initiator=$2 AND target=$1)
		`, a, b,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return connectionFromDTO(&c), nil
}

// AcceptConnection moves a pending group to accepted. Accepted groups are
// never moved back.
func (s pg) AcceptConnection(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE connection SET status='accepted' WHERE connection_id=$1 AND status='pending'`, id,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) ListConnections(ctx context.Context, account string) ([]*entities.ConnectionGroup, error) {
	var cc []*connectionDTO

	if err := sqlx.SelectContext(ctx, s.ext, &cc, `
			SELECT connection_id, initiator, target, status, created_at FROM connection
			WHERE initiator=$1 OR target=$1
			ORDER BY created_at DESC
		`, account,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.ConnectionGroup, len(cc))
	for i, c := range cc {
		out[i] = connectionFromDTO(c)
	}

	return out, nil
}

func (s pg) ListNeighbors(ctx context.Context, account string) ([]string, error) {
	var out []string

	if err := sqlx.SelectContext(ctx, s.ext, &out, `
			SELECT DISTINCT counterpart FROM (
				SELECT CASE WHEN initiator=$1 THEN target ELSE initiator END AS counterpart
				FROM connection
				WHERE (initiator=$1 OR target=$1) AND status='accepted'
			) c
			JOIN account a ON a.id = c.counterpart
			WHERE a.is_active AND a.is_verified AND c.counterpart <> $1
		`, account,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return out, nil
}

func (s pg) ListFeedCandidates(ctx context.Context, viewer string) ([]*storage.FeedCandidate, error) {
	var cc []*feedCandidateDTO

	if err := sqlx.SelectContext(ctx, s.ext, &cc, `
			SELECT p.post_id, p.owner, p.caption, p.privacy_status, p.created_at,
				e.ranking_score,
				(r.reaction_id IS NOT NULL) AS viewer_reacted,
				COALESCE(array_agg(t.account_id) FILTER (WHERE t.account_id IS NOT NULL), '{}') AS tagged
			FROM post p
			JOIN post_engagement e ON e.post_id = p.post_id
			LEFT JOIN reaction r ON r.post_id = p.post_id AND r.account_id = $1
			LEFT JOIN post_tag t ON t.post_id = p.post_id
			GROUP BY p.post_id, e.ranking_score, r.reaction_id
			ORDER BY p.created_at DESC
		`, viewer,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*storage.FeedCandidate, len(cc))
	for i, c := range cc {
		out[i] = &storage.FeedCandidate{
			Post: entities.Post{
				ID:             c.ID,
				Owner:          c.Owner,
				Caption:        c.Caption,
				Privacy:        entities.PrivacyStatus(c.Privacy),
				TaggedAccounts: c.Tagged,
				CreatedAt:      c.CreatedAt,
			},
			RankingScore:  c.RankingScore,
			ViewerReacted: c.ViewerReacted,
		}
	}

	return out, nil
}

func commentFromDTO(c *commentDTO) *entities.Comment {
	out := entities.Comment{
		ID:         c.ID,
		PostID:     c.PostID,
		Account:    c.Account,
		Text:       c.Text,
		Attachment: c.Attachment.String,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
		DeletedAt:  c.DeletedAt,
		DeletedBy:  c.DeletedBy.String,
	}

	if c.ParentID.Valid {
		parent := c.ParentID.String
		out.ParentID = &parent
	}

	return &out
}

func connectionFromDTO(c *connectionDTO) *entities.ConnectionGroup {
	return &entities.ConnectionGroup{
		ID:        c.ID,
		Initiator: c.Initiator,
		Target:    c.Target,
		Status:    entities.ConnectionStatus(c.Status),
		CreatedAt: c.CreatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func isErrCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == code
	}

	return false
}
