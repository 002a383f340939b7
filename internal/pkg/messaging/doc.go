// Package messaging publishes and consumes domain events over a pluggable
// broker (NSQ, NATS, Kafka or Google Pub/Sub).
//
// A Handler acknowledges a delivery by returning nil. Any error, or a panic,
// asks the broker to redeliver the message later.
package messaging
