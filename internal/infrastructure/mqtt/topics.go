package mqtt

import "fmt"

// Topic prefixes for the btlog MQTT hierarchy.
//
// The companion forwarder publishes one JSON document per broadcast intent
// under btlog/intent. The daemon publishes its own lifecycle status under
// btlog/system.
const (
	// TopicPrefix is the base for all btlog topics.
	TopicPrefix = "btlog"

	// TopicPrefixSystem is the base for system topics.
	TopicPrefixSystem = "btlog/system"
)

// Topics provides builders for btlog MQTT topics.
// Using these helpers ensures consistent topic naming across the codebase.
//
//	topics := mqtt.Topics{}
//	topic := topics.IntentFrom("pixel-7")
//	// Returns: "btlog/intent/pixel-7"
type Topics struct{}

// Intent returns the bare intent topic used by forwarders that do not
// identify themselves.
//
// Example: btlog/intent
func (Topics) Intent() string {
	return fmt.Sprintf("%s/intent", TopicPrefix)
}

// IntentFrom returns the intent topic for a specific forwarder.
//
// Example: btlog/intent/pixel-7
func (Topics) IntentFrom(source string) string {
	return fmt.Sprintf("%s/intent/%s", TopicPrefix, source)
}

// SystemStatus returns the daemon status topic.
//
// Example: btlog/system/status
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/status", TopicPrefixSystem)
}

// AllIntents returns a pattern matching intents from every forwarder,
// including the bare intent topic.
//
// Pattern: btlog/intent/#
func (Topics) AllIntents() string {
	return fmt.Sprintf("%s/intent/#", TopicPrefix)
}

// AllTopics returns a pattern matching all btlog topics.
// Use with caution - this receives ALL traffic.
//
// Pattern: btlog/#
func (Topics) AllTopics() string {
	return "btlog/#"
}
