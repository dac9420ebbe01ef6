// Package writer emits the session output: the live-games catalog once at
// start, then every inbound update as it arrives.
package writer
