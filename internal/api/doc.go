// Package api implements the HTTP REST API and WebSocket server for btlogd.
//
// This package provides:
//   - REST endpoints for the verbosity setting and service health
//   - WebSocket hub for live tailing of decoded intent lines
//   - Middleware stack (request ID, logging, recovery, CORS, body size limit)
//
// # Architecture
//
// The API server sits beside the MQTT receiver pipeline. The receiver decodes
// incoming broadcast intents and hands each formatted line to the WebSocket
// hub, which fans it out to connected clients. The REST surface controls the
// single piece of persisted state: the verbosity flag in SQLite.
//
// # Graceful Degradation
//
// The server operates without MQTT or the database wired in; /health then
// simply omits those checks. This enables testing and partial operation.
package api
