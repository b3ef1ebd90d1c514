// Package receiver consumes forwarded broadcast intents from MQTT and
// drives the decode pipeline.
//
// Each message on btlog/intent (optionally suffixed with a forwarder
// source name) is parsed, decoded into log lines using the verbosity
// flag current at arrival, appended to the output sink, broadcast to
// WebSocket clients, and recorded in the intent history when enabled.
package receiver

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/phonedeveloper/btlogd/internal/decoder"
	"github.com/phonedeveloper/btlogd/internal/history"
	"github.com/phonedeveloper/btlogd/internal/infrastructure/logging"
	"github.com/phonedeveloper/btlogd/internal/infrastructure/mqtt"
	"github.com/phonedeveloper/btlogd/internal/intent"
	"github.com/phonedeveloper/btlogd/internal/settings"
	"github.com/phonedeveloper/btlogd/internal/sink"
)

// Broadcaster fans a decoded line out to live tail clients.
// *api.Hub satisfies this.
type Broadcaster interface {
	Broadcast(channel string, payload any)
}

// ChannelIntentLine is the broadcast channel decoded lines go out on.
// It matches the channel new WebSocket clients are subscribed to.
const ChannelIntentLine = "intent.line"

// Line is the payload broadcast for each decoded log line. ID groups the
// lines of one intent so clients can reassemble multi-line entries.
type Line struct {
	ID     string `json:"id"`
	Source string `json:"source,omitempty"`
	Line   string `json:"line"`
}

// Deps holds the dependencies required by the receiver.
type Deps struct {
	MQTT     *mqtt.Client
	Settings settings.Store
	Sink     sink.Sink
	Logger   *logging.Logger
	Hub      Broadcaster     // optional: no WebSocket relay when nil
	History  *history.Client // optional: no intent history when nil

	// QoS for the intent subscription.
	QoS byte

	// DeviceTypeAvailable is forwarded to the decoder; it reports whether
	// the observed platform exposes the device-type field.
	DeviceTypeAvailable bool
}

// Receiver subscribes to the intent topics and processes each message.
type Receiver struct {
	deps Deps

	mu  sync.RWMutex
	ctx context.Context // set by Start; used for settings reads in handlers
}

// New creates a receiver. Start must be called before any messages flow.
func New(deps Deps) (*Receiver, error) {
	if deps.MQTT == nil {
		return nil, fmt.Errorf("receiver: mqtt client is required")
	}
	if deps.Settings == nil {
		return nil, fmt.Errorf("receiver: settings store is required")
	}
	if deps.Sink == nil {
		return nil, fmt.Errorf("receiver: sink is required")
	}
	if deps.Logger == nil {
		return nil, fmt.Errorf("receiver: logger is required")
	}
	return &Receiver{deps: deps, ctx: context.Background()}, nil
}

// Start subscribes to the intent topic tree. The context is retained for
// settings reads triggered by incoming messages.
func (r *Receiver) Start(ctx context.Context) error {
	r.mu.Lock()
	r.ctx = ctx
	r.mu.Unlock()

	topic := mqtt.Topics{}.AllIntents()
	if err := r.deps.MQTT.Subscribe(topic, r.deps.QoS, r.handleMessage); err != nil {
		return fmt.Errorf("receiver: subscribing to %s: %w", topic, err)
	}
	r.deps.Logger.Info("receiver started", "topic", topic)
	return nil
}

// Close unsubscribes from the intent topics.
func (r *Receiver) Close() error {
	if err := r.deps.MQTT.Unsubscribe(mqtt.Topics{}.AllIntents()); err != nil {
		return fmt.Errorf("receiver: unsubscribing: %w", err)
	}
	return nil
}

// handleMessage processes one forwarded intent.
//
// Malformed payloads are logged and dropped rather than returned as
// errors: a broken forwarder must not wedge the subscription. The
// verbosity flag is read once per message, so a toggle mid-stream
// applies cleanly from the next intent onward.
func (r *Receiver) handleMessage(topic string, payload []byte) error {
	source := SourceFromTopic(topic)

	ev, err := intent.Parse(payload)
	if err != nil {
		r.deps.Logger.Warn("dropping malformed intent",
			"topic", topic,
			"source", source,
			"error", err,
		)
		return nil
	}

	r.mu.RLock()
	ctx := r.ctx
	r.mu.RUnlock()

	opts := decoder.Options{
		Verbose:             r.deps.Settings.Verbose(ctx),
		DeviceTypeAvailable: r.deps.DeviceTypeAvailable,
	}
	lines := decoder.Decode(ev, opts)

	id := uuid.NewString()
	for _, line := range lines {
		line = sanitizeLine(line)
		if err := r.deps.Sink.WriteLine(line); err != nil {
			return fmt.Errorf("receiver: writing line: %w", err)
		}
		if r.deps.Hub != nil {
			r.deps.Hub.Broadcast(ChannelIntentLine, Line{ID: id, Source: source, Line: line})
		}
	}

	if r.deps.History != nil {
		r.deps.History.RecordIntent(source, ev.Action, decoder.Family(ev.Action), len(ev.Extras))
	}

	return nil
}

// SourceFromTopic extracts the forwarder source name from an intent topic.
// The bare topic (no per-source suffix) yields "".
func SourceFromTopic(topic string) string {
	base := mqtt.Topics{}.Intent()
	if topic == base {
		return ""
	}
	return strings.TrimPrefix(topic, base+"/")
}

// sanitizeLine flattens any embedded line breaks so one decoded line is
// always one physical log line.
func sanitizeLine(line string) string {
	line = strings.ReplaceAll(line, "\r\n", " ")
	line = strings.ReplaceAll(line, "\n", " ")
	line = strings.ReplaceAll(line, "\r", " ")
	return line
}
