package realtime

import (
	"testing"

	"github.com/google/uuid"

	"github.com/ovenline/bakehouse-backend/internal/platform/logger"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return NewHub(log)
}

func TestHubBroadcastReachesSubscribers(t *testing.T) {
	hub := newTestHub(t)
	client := hub.NewClient(uuid.New())
	hub.Subscribe(client, "bakery-floor")

	hub.Broadcast(Message{Channel: "bakery-floor", Event: EventChatMessagePosted, Data: "hi"})

	select {
	case msg := <-client.Outbound:
		if msg.Event != EventChatMessagePosted {
			t.Fatalf("unexpected event: %s", msg.Event)
		}
	default:
		t.Fatalf("expected a delivered message")
	}
}

func TestHubDoesNotCrossChannels(t *testing.T) {
	hub := newTestHub(t)
	client := hub.NewClient(uuid.New())
	hub.Subscribe(client, "channel-a")

	hub.Broadcast(Message{Channel: "channel-b", Event: EventStockUpdated})

	select {
	case msg := <-client.Outbound:
		t.Fatalf("message leaked across channels: %+v", msg)
	default:
	}
}

func TestHubUnsubscribeStopsDelivery(t *testing.T) {
	hub := newTestHub(t)
	client := hub.NewClient(uuid.New())
	hub.Subscribe(client, "x")
	hub.Unsubscribe(client, "x")

	hub.Broadcast(Message{Channel: "x", Event: EventStockUpdated})

	select {
	case msg := <-client.Outbound:
		t.Fatalf("unexpected delivery after unsubscribe: %+v", msg)
	default:
	}
}

func TestHubRemoveClosesClient(t *testing.T) {
	hub := newTestHub(t)
	client := hub.NewClient(uuid.New())
	hub.Subscribe(client, "x")
	hub.Remove(client)

	select {
	case <-client.Done():
	default:
		t.Fatalf("expected client done channel to be closed")
	}
}
