// Package mqtt provides MQTT client connectivity for btlogd.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Message publishing with QoS guarantees
//   - Topic subscriptions with wildcard support
//   - Last Will and Testament (LWT) for offline detection
//   - Connection health monitoring
//
// # Architecture
//
// btlogd uses MQTT as the transport between the companion forwarder app
// (which republishes Android broadcast intents as JSON) and the daemon.
// The broker decouples the daemon from however many forwarders publish
// into it.
//
//	Forwarder App ↔ MQTT Broker ↔ btlogd
//
// # Security Considerations
//
//   - TLS is required for production deployments (cfg.Broker.TLS=true)
//   - Credentials are validated against broker ACL
//   - Anonymous access is only for local development
//   - Message payloads are not encrypted beyond TLS transport
//
// # Performance Characteristics
//
//   - Connection: <1 second to local broker
//   - Publish latency: <10ms for QoS 1 to local broker
//   - Reconnect: Exponential backoff 1s-60s with jitter
//   - Message throughput: Broker-limited (typically 10K+ msg/sec)
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Subscribe to all forwarded intents
//	err = client.Subscribe(mqtt.Topics{}.AllIntents(), 1,
//	    func(topic string, payload []byte) error {
//	        log.Printf("Received: %s = %s", topic, payload)
//	        return nil
//	    })
//
//	// Publish daemon status
//	client.Publish(mqtt.Topics{}.SystemStatus(), []byte(`{"status":"online"}`), 1, true)
package mqtt
