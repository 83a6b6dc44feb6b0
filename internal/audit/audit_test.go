package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func testEvent(eventType string) Event {
	return Event{
		Timestamp: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
		EventType: eventType,
		Identity:  "a@x.com",
		Role:      "user",
		Success:   true,
	}
}

func TestDispatcherDeliversToSink(t *testing.T) {
	sink := NewChannelSink(4)
	d := NewDispatcher(Config{Enabled: true, BufferSize: 4}, sink)

	d.Emit(context.Background(), testEvent("login"))
	d.Close()

	select {
	case got := <-sink.Events():
		if got.EventType != "login" || got.Identity != "a@x.com" {
			t.Fatalf("event = %+v", got)
		}
	default:
		t.Fatal("event not delivered")
	}
}

func TestDisabledDispatcherIsNil(t *testing.T) {
	d := NewDispatcher(Config{Enabled: false}, NewChannelSink(1))
	if d != nil {
		t.Fatal("disabled config must yield a nil dispatcher")
	}

	// nil receivers are valid for the whole API.
	d.Emit(context.Background(), testEvent("login"))
	if d.Dropped() != 0 {
		t.Fatal("nil dispatcher reported drops")
	}
	d.Close()
}

func TestCloseDrainsBufferedEvents(t *testing.T) {
	sink := NewChannelSink(8)
	d := NewDispatcher(Config{Enabled: true, BufferSize: 8}, sink)

	for i := 0; i < 5; i++ {
		d.Emit(context.Background(), testEvent("logout"))
	}
	d.Close()

	delivered := 0
	for {
		select {
		case <-sink.Events():
			delivered++
		default:
			if delivered != 5 {
				t.Fatalf("delivered %d events, want 5", delivered)
			}
			return
		}
	}
}

func TestEmitAfterCloseIsIgnored(t *testing.T) {
	sink := NewChannelSink(1)
	d := NewDispatcher(Config{Enabled: true, BufferSize: 1}, sink)
	d.Close()

	d.Emit(context.Background(), testEvent("login"))

	select {
	case got := <-sink.Events():
		t.Fatalf("event delivered after close: %+v", got)
	default:
	}
}

func TestJSONWriterSinkWritesOneLinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONWriterSink(&buf)

	sink.Emit(context.Background(), testEvent("login"))
	sink.Emit(context.Background(), Event{
		Timestamp: time.Date(2026, 8, 28, 12, 1, 0, 0, time.UTC),
		EventType: "forced_logout",
		Success:   false,
		Error:     "authentication expired",
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("wrote %d lines, want 2", len(lines))
	}

	var first Event
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("first line is not JSON: %v", err)
	}
	if first.EventType != "login" || !first.Success {
		t.Fatalf("first event = %+v", first)
	}

	var second Event
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("second line is not JSON: %v", err)
	}
	if second.Error != "authentication expired" {
		t.Fatalf("second event = %+v", second)
	}
}
