// Package events publishes article lifecycle events to NATS so downstream
// consumers (site cache invalidation, notifications) can react without
// polling the database. Publishing is best-effort: the API response never
// waits on a slow broker beyond the publish call itself.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"atleti-backend/model"
)

const articleSubject = "articles.events"

// Publisher wraps a NATS connection for article events.
type Publisher struct {
	conn *nats.Conn
}

// NewPublisher connects to NATS at the given URL.
func NewPublisher(url string) (*Publisher, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &Publisher{conn: nc}, nil
}

// Close closes the NATS connection.
func (p *Publisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}

// ArticleEvent is the envelope sent on the articles subject.
type ArticleEvent struct {
	Action    string        `json:"action"` // "created", "updated", "deleted"
	Article   model.Article `json:"article"`
	Timestamp time.Time     `json:"timestamp"`
	Source    string        `json:"source"`
	Version   string        `json:"version"`
}

// PublishArticle sends one lifecycle event for the given article.
func (p *Publisher) PublishArticle(action string, article model.Article) error {
	event := ArticleEvent{
		Action:    action,
		Article:   article,
		Timestamp: time.Now().UTC(),
		Source:    "atleti-backend",
		Version:   "1.0",
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal article event: %w", err)
	}
	if err := p.conn.Publish(articleSubject, data); err != nil {
		return fmt.Errorf("publish article event: %w", err)
	}
	return nil
}
