// Package notifier hands notification intents off to the delivery collaborator.
package notifier

import "context"

//go:generate mockgen -destination=./mock/notifier.go -package=mock -source=notifier.go

// Intent is a single notification to be delivered to an account. Delivery
// itself is outside this service.
type Intent struct {
	ReferenceID string `json:"referenceID"`
	ToAccount   string `json:"toUserID"`
	FromAccount string `json:"fromUserID"`
	Kind        string `json:"type"`
	Headline    string `json:"content_headline"`
	Details     string `json:"content_details"`
}

// Dispatcher emits notification intents and per-user event stream messages.
type Dispatcher interface {
	Notify(ctx context.Context, intent Intent) error
	UpdateContent(ctx context.Context, referenceID, details string) error
	DeleteByReference(ctx context.Context, referenceID string) error
	PublishEvent(ctx context.Context, username, message string) error
}
