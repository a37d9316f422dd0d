package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agadev/config"
	"agadev/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *entity.ContentEvent {
	return &entity.ContentEvent{
		RequestID: "req-1",
		Type:      entity.ContentEventPublished,
		Kind:      entity.ContentKindNews,
		ID:        42,
		Slug:      "essai",
		Published: true,
		At:        time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishContentEvent(t *testing.T) {
	var received PushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishContentEvent(context.Background(), sampleEvent()))

	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "published", received.Message.Attributes["type"])
	assert.Equal(t, "news", received.Message.Attributes["kind"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event entity.ContentEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, int64(42), event.ID)
	assert.Equal(t, "essai", event.Slug)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishContentEvent(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNoopPublisher(t *testing.T) {
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: discardLogger(),
	})
	require.NoError(t, err)

	assert.NoError(t, publisher.PublishContentEvent(context.Background(), sampleEvent()))
	assert.NoError(t, publisher.Close())
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured is noop", cfg: nil},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: ProviderLocal}, wantErr: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: ProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}
