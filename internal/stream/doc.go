// Package stream maintains the live subscriptions against the push
// transport.
//
// Each subscription owns its own WebSocket connection: the runner dials,
// sends the subscription frame, then receives until the connection closes or
// the context is canceled. The manager fans one runner out per derived task
// and waits for all of them, optionally capping how many connections are
// open at once.
//
// A transport failure ends only the owning subscription. A malformed inbound
// frame is logged and skipped; the subscription keeps receiving.
package stream
