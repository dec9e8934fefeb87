package sse

import (
	"testing"
)

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()

	a := &Client{ID: "a", Events: make(chan Event, 4)}
	b := &Client{ID: "b", Events: make(chan Event, 4)}
	hub.Register(a)
	hub.Register(b)

	if hub.ClientCount() != 2 {
		t.Fatalf("Expected 2 clients, got %d", hub.ClientCount())
	}

	hub.Broadcast(Event{EventType: "qr_scan_created", Data: `{"id":1}`})

	for _, client := range []*Client{a, b} {
		select {
		case ev := <-client.Events:
			if ev.EventType != "qr_scan_created" {
				t.Errorf("Unexpected event type %s for client %s", ev.EventType, client.ID)
			}
		default:
			t.Errorf("Client %s received no event", client.ID)
		}
	}
}

func TestHubSkipsFullClient(t *testing.T) {
	hub := NewHub()

	full := &Client{ID: "full", Events: make(chan Event, 1)}
	healthy := &Client{ID: "healthy", Events: make(chan Event, 4)}
	hub.Register(full)
	hub.Register(healthy)

	full.Events <- Event{EventType: "filler"}

	// Must not block even though one buffer has no room.
	hub.Broadcast(Event{EventType: "qr_scan_created", Data: `{"id":2}`})

	select {
	case ev := <-healthy.Events:
		if ev.EventType != "qr_scan_created" {
			t.Errorf("Unexpected event type %s", ev.EventType)
		}
	default:
		t.Errorf("Healthy client should still receive the event")
	}
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub()

	client := &Client{ID: "a", Events: make(chan Event, 4)}
	hub.Register(client)
	hub.Unregister("a")

	if hub.ClientCount() != 0 {
		t.Fatalf("Expected 0 clients, got %d", hub.ClientCount())
	}
	// The events channel is closed on unregister.
	if _, ok := <-client.Events; ok {
		t.Errorf("Expected closed events channel")
	}

	// Unregistering twice is a no-op.
	hub.Unregister("a")
}
