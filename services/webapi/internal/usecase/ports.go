package usecase

import (
	"context"
	"io"
	"time"

	"blog-api/pkg/logger"
)

const (
	EventUserRegistered   = "user.registered"
	EventCommentSubmitted = "comment.submitted"
)

// EventPublisher delivers domain events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload map[string]interface{}) error
}

type ImageStore interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
	DeleteFile(key string) error
}

type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// publish is fire-and-forget: the change is already committed, so a broker
// failure is only logged.
func publish(ctx context.Context, publisher EventPublisher, log *logger.Logger, eventType string, payload map[string]interface{}) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, eventType, payload); err != nil {
		log.Warn("Failed to publish %s event: %v", eventType, err)
	}
}
