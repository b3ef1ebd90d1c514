package history

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// RecordIntent writes a decoded intent event to InfluxDB.
//
// This is the primary method for recording intent history. The write is
// non-blocking; data is batched and sent asynchronously.
//
// Parameters:
//   - source: Forwarder identifier the intent arrived from ("" becomes "unknown")
//   - action: The raw broadcast action string
//   - class: The resolved class name, or the unknown-class marker
//   - extras: Number of extras carried by the intent
//
// Example:
//
//	client.RecordIntent("pixel-7", "android.bluetooth.adapter.action.STATE_CHANGED",
//	    "BluetoothAdapter", 2)
func (c *Client) RecordIntent(source, action, class string, extras int) {
	if !c.IsConnected() {
		return
	}

	if source == "" {
		source = "unknown"
	}

	point := write.NewPoint(
		"intents",
		map[string]string{
			"source": source,
			"class":  class,
		},
		map[string]interface{}{
			"action": action,
			"extras": extras,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WritePoint writes a custom point with full control over tags and fields.
//
// Use this for measurements that don't fit RecordIntent, such as decode
// failure counters.
//
// Parameters:
//   - measurement: The measurement name (table)
//   - tags: Key-value pairs for indexing (low cardinality)
//   - fields: Key-value pairs for the actual data
//
// Example:
//
//	client.WritePoint("decode_errors",
//	    map[string]string{"source": "pixel-7"},
//	    map[string]interface{}{"count": 1})
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, time.Now())
	c.writeAPI.WritePoint(point)
}

// WritePointWithTime writes a custom point with a specific timestamp.
//
// Use this when the timestamp is not "now" (e.g., replayed data).
//
// Parameters:
//   - measurement: The measurement name
//   - tags: Key-value pairs for indexing
//   - fields: Key-value pairs for the data
//   - timestamp: The exact time for this data point
func (c *Client) WritePointWithTime(measurement string, tags map[string]string, fields map[string]interface{}, timestamp time.Time) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, timestamp)
	c.writeAPI.WritePoint(point)
}
