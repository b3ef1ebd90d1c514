// Package history provides optional InfluxDB-backed intent history for btlogd.
//
// It wraps the official influxdb-client-go v2 library with connection
// management, event writing, and health monitoring.
//
// # Purpose
//
// When enabled, every decoded broadcast intent is recorded as a time-series
// point. This lets operators graph intent volume per source and per class,
// and look back at what a device was broadcasting hours ago without keeping
// the text log.
//
// # Usage
//
//	cfg := config.InfluxDBConfig{
//	    Enabled: true,
//	    URL:    "http://localhost:8086",
//	    Token:  "your-token",
//	    Org:    "btlog",
//	    Bucket: "intents",
//	}
//
//	client, err := history.Connect(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	client.RecordIntent("pixel-7", action, class, len(extras))
//
// # Thread Safety
//
// All methods are safe for concurrent use from multiple goroutines.
// The underlying write API uses non-blocking batched writes.
//
// # Error Handling
//
// Write operations are non-blocking and batch errors are logged via a callback.
// Connection and health check errors are returned directly.
//
// # Performance
//
// Writes are batched according to config.yaml settings (batch_size, flush_interval).
// This reduces network overhead when intents arrive in bursts.
package history
