package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"batulens/internal/domain/service"

	"github.com/pkg/errors"
)

// localHTTPPublisher implements EventPublisher by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PublishDatasetEvent publishes an event by sending HTTP POST to the local endpoint
func (p *localHTTPPublisher) PublishDatasetEvent(ctx context.Context, event *service.DatasetEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	var push PubSubPushMessage
	push.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	push.Message.Attributes = map[string]string{
		"event_id": event.EventID,
		"action":   event.Action,
	}
	push.Message.MessageID = event.EventID
	push.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	push.Subscription = "local-dev"

	body, err := json.Marshal(push)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	p.logger.Info("[LocalPubSub] Publishing dataset event",
		slog.String("event_id", event.EventID),
		slog.String("action", event.Action),
		slog.String("endpoint", p.endpoint),
	)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to push dataset event")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Errorf("local push endpoint returned %s", resp.Status)
	}

	return nil
}

// Close is a no-op for the local HTTP publisher
func (p *localHTTPPublisher) Close() error {
	return nil
}
