package receiver

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/phonedeveloper/btlogd/internal/infrastructure/config"
	"github.com/phonedeveloper/btlogd/internal/infrastructure/logging"
)

// mockStore is an in-memory settings.Store.
type mockStore struct {
	mu      sync.Mutex
	verbose bool
}

func (m *mockStore) Verbose(_ context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.verbose
}

func (m *mockStore) SetVerbose(_ context.Context, v bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verbose = v
	return nil
}

// mockSink captures written lines.
type mockSink struct {
	mu    sync.Mutex
	lines []string
	err   error
}

func (m *mockSink) WriteLine(line string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.lines = append(m.lines, line)
	return nil
}

func (m *mockSink) Lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.lines...)
}

// mockHub captures broadcast payloads.
type mockHub struct {
	mu       sync.Mutex
	channels []string
	payloads []Line
}

func (m *mockHub) Broadcast(channel string, payload any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.channels = append(m.channels, channel)
	if l, ok := payload.(Line); ok {
		m.payloads = append(m.payloads, l)
	}
}

func testLogger() *logging.Logger {
	return logging.New(config.LoggingConfig{Level: "error", Format: "text", Output: "stdout"}, "test")
}

// testReceiver builds a receiver without an MQTT client; handleMessage is
// exercised directly.
func testReceiver(store *mockStore, out *mockSink, hub *mockHub) *Receiver {
	deps := Deps{
		Settings:            store,
		Sink:                out,
		Logger:              testLogger(),
		DeviceTypeAvailable: true,
	}
	// Assign only when non-nil so a nil *mockHub doesn't become a
	// non-nil Broadcaster interface value.
	if hub != nil {
		deps.Hub = hub
	}
	return &Receiver{
		deps: deps,
		ctx:  context.Background(),
	}
}

const stateChangedJSON = `{
	"action": "android.bluetooth.adapter.action.STATE_CHANGED",
	"extras": {
		"android.bluetooth.adapter.extra.STATE": {"type": "int", "value": 12}
	}
}`

func TestHandleMessage_WritesDecodedLines(t *testing.T) {
	store := &mockStore{}
	out := &mockSink{}
	hub := &mockHub{}
	r := testReceiver(store, out, hub)

	if err := r.handleMessage("btlog/intent/pixel-7", []byte(stateChangedJSON)); err != nil {
		t.Fatalf("handleMessage: %v", err)
	}

	lines := out.Lines()
	if len(lines) != 3 {
		t.Fatalf("got %d lines %q, want 3", len(lines), lines)
	}
	if !strings.Contains(lines[0], "New Bluetooth Broadcast Intent") {
		t.Errorf("first line = %q, want banner", lines[0])
	}
	if lines[1] != "BluetoothAdapter.ACTION_STATE_CHANGED" {
		t.Errorf("class line = %q", lines[1])
	}
	if lines[2] != "android.bluetooth.adapter.extra.STATE STATE_ON" {
		t.Errorf("extra line = %q", lines[2])
	}
}

func TestHandleMessage_BroadcastsEachLine(t *testing.T) {
	store := &mockStore{}
	out := &mockSink{}
	hub := &mockHub{}
	r := testReceiver(store, out, hub)

	if err := r.handleMessage("btlog/intent/pixel-7", []byte(stateChangedJSON)); err != nil {
		t.Fatalf("handleMessage: %v", err)
	}

	if len(hub.payloads) != len(out.Lines()) {
		t.Fatalf("broadcast %d payloads, want %d", len(hub.payloads), len(out.Lines()))
	}
	for i, p := range hub.payloads {
		if hub.channels[i] != ChannelIntentLine {
			t.Errorf("channel = %q, want %q", hub.channels[i], ChannelIntentLine)
		}
		if p.Source != "pixel-7" {
			t.Errorf("source = %q, want pixel-7", p.Source)
		}
		if p.ID == "" {
			t.Error("payload ID is empty")
		}
		if p.ID != hub.payloads[0].ID {
			t.Error("lines of one intent should share an ID")
		}
	}
}

func TestHandleMessage_MalformedPayloadDropped(t *testing.T) {
	store := &mockStore{}
	out := &mockSink{}
	r := testReceiver(store, out, nil)

	for _, payload := range []string{"not json", `{"extras":{}}`, ""} {
		if err := r.handleMessage("btlog/intent", []byte(payload)); err != nil {
			t.Errorf("handleMessage(%q) = %v, want nil", payload, err)
		}
	}

	if got := out.Lines(); len(got) != 0 {
		t.Errorf("wrote %d lines for malformed payloads, want 0", len(got))
	}
}

func TestHandleMessage_VerbosityReadPerMessage(t *testing.T) {
	store := &mockStore{}
	out := &mockSink{}
	r := testReceiver(store, out, nil)

	if err := r.handleMessage("btlog/intent", []byte(stateChangedJSON)); err != nil {
		t.Fatalf("handleMessage: %v", err)
	}

	if err := store.SetVerbose(context.Background(), true); err != nil {
		t.Fatalf("SetVerbose: %v", err)
	}

	if err := r.handleMessage("btlog/intent", []byte(stateChangedJSON)); err != nil {
		t.Fatalf("handleMessage: %v", err)
	}

	lines := out.Lines()
	first, second := lines[:3], lines[3:]

	for _, l := range first {
		if strings.HasPrefix(l, "Action: ") {
			t.Errorf("compact output contains verbose line %q", l)
		}
	}

	foundAction := false
	for _, l := range second {
		if strings.HasPrefix(l, "Action: ") {
			foundAction = true
		}
	}
	if !foundAction {
		t.Errorf("verbose output missing Action line: %q", second)
	}
}

func TestHandleMessage_SinkErrorPropagates(t *testing.T) {
	store := &mockStore{}
	out := &mockSink{err: errors.New("disk full")}
	r := testReceiver(store, out, nil)

	if err := r.handleMessage("btlog/intent", []byte(stateChangedJSON)); err == nil {
		t.Error("handleMessage = nil, want error when sink fails")
	}
}

func TestNew_RequiresDeps(t *testing.T) {
	if _, err := New(Deps{}); err == nil {
		t.Error("New() with empty deps should fail")
	}
}

func TestSourceFromTopic(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"btlog/intent", ""},
		{"btlog/intent/pixel-7", "pixel-7"},
		{"btlog/intent/bench/rig", "bench/rig"},
	}

	for _, tt := range tests {
		if got := SourceFromTopic(tt.topic); got != tt.want {
			t.Errorf("SourceFromTopic(%q) = %q, want %q", tt.topic, got, tt.want)
		}
	}
}

func TestSanitizeLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain line", "plain line"},
		{"multi\nline", "multi line"},
		{"crlf\r\nline", "crlf line"},
		{"cr\rline", "cr line"},
	}

	for _, tt := range tests {
		if got := sanitizeLine(tt.in); got != tt.want {
			t.Errorf("sanitizeLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
