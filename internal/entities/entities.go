// Package entities contains main entities of service.
package entities

import "time"

// PrivacyStatus ...
type PrivacyStatus string

const (
	// PrivacyPublic ...
	PrivacyPublic PrivacyStatus = "public"
	// PrivacyPrivate ...
	PrivacyPrivate PrivacyStatus = "private"
	// PrivacyCustom ...
	PrivacyCustom PrivacyStatus = "custom"
)

// MediaKind is a kind of media reference attached to a post.
type MediaKind string

const (
	// MediaImage ...
	MediaImage MediaKind = "image"
	// MediaVideo ...
	MediaVideo MediaKind = "video"
	// MediaOther ...
	MediaOther MediaKind = "other"
)

// ConnectionStatus ...
type ConnectionStatus string

const (
	// ConnectionPending ...
	ConnectionPending ConnectionStatus = "pending"
	// ConnectionAccepted ...
	ConnectionAccepted ConnectionStatus = "accepted"
)

// Account ...
type Account struct {
	ID         string
	Username   string
	IsActive   bool
	IsVerified bool
	CreatedAt  time.Time
}

// Post ...
type Post struct {
	ID             string
	Owner          string
	Caption        string
	Privacy        PrivacyStatus
	References     []MediaKind
	TaggedAccounts []string
	CreatedAt      time.Time
}

// Engagement is a per-post engagement snapshot with its cached ranking score.
// RankingScore is always derived from the other fields plus post age, never
// mutated on its own.
type Engagement struct {
	PostID        string
	LikesCount    uint32
	CommentsCount uint32
	SharesCount   uint32
	ContentWeight float64
	UpdateBoost   float64
	RankingScore  float64
	UpdatedAt     time.Time
}

// Reaction ...
type Reaction struct {
	ID        string
	PostID    string
	Account   string
	Kind      string
	CreatedAt time.Time
}

// Comment is a node of a post's comment tree. Root comments have nil ParentID.
// Deleting a comment tombstones it, the node and its children stay addressable.
type Comment struct {
	ID         string
	PostID     string
	ParentID   *string
	Account    string
	Text       string
	Attachment string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
	DeletedBy  string
}

// ConnectionGroup is a single symmetric relationship between two accounts.
// At most one group may exist per unordered account pair.
type ConnectionGroup struct {
	ID        string
	Initiator string
	Target    string
	Status    ConnectionStatus
	CreatedAt time.Time
}
