package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NotificationsChannel is the channel the notification delivery service
// subscribes to.
const NotificationsChannel = "notifications"

type redisDispatcher struct {
	client *redis.Client
}

// NewRedis creates a Dispatcher publishing over redis pub/sub.
func NewRedis(client *redis.Client) Dispatcher {
	return redisDispatcher{client: client}
}

type notificationMessage struct {
	Action string `json:"action"`
	Intent Intent `json:"intent"`
}

// eventMessage is the per-user SSE event envelope.
type eventMessage struct {
	LogType  *string      `json:"logType"`
	Pod      string       `json:"pod"`
	Event    string       `json:"event"`
	Message  eventPayload `json:"message"`
	DateTime string       `json:"dateTime"`
}

type eventPayload struct {
	Status  bool   `json:"status"`
	Auth    bool   `json:"auth"`
	Message string `json:"message"`
	Result  string `json:"result"`
}

func (d redisDispatcher) publish(ctx context.Context, channel string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := d.client.Publish(ctx, channel, b).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", channel, err)
	}

	return nil
}

func (d redisDispatcher) Notify(ctx context.Context, intent Intent) error {
	return d.publish(ctx, NotificationsChannel, notificationMessage{Action: "add", Intent: intent})
}

func (d redisDispatcher) UpdateContent(ctx context.Context, referenceID, details string) error {
	return d.publish(ctx, NotificationsChannel, notificationMessage{
		Action: "update_content",
		Intent: Intent{ReferenceID: referenceID, Details: details},
	})
}

func (d redisDispatcher) DeleteByReference(ctx context.Context, referenceID string) error {
	return d.publish(ctx, NotificationsChannel, notificationMessage{
		Action: "delete",
		Intent: Intent{ReferenceID: referenceID},
	})
}

func (d redisDispatcher) PublishEvent(ctx context.Context, username, message string) error {
	return d.publish(ctx, fmt.Sprintf("events_%s", username), eventMessage{
		Pod:      "podless",
		Event:    "notifications",
		Message:  eventPayload{Status: true, Auth: true, Message: message},
		DateTime: time.Now().Format(time.RFC3339),
	})
}
