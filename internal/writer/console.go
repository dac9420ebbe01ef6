package writer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// Console prints session output to a single stream. Updates from many
// concurrent subscriptions interleave at entry boundaries, never mid-line.
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsole creates a Console writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Catalog pretty-prints the live-games array, followed by a blank line.
func (c *Console) Catalog(raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("indent catalog: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintf(c.out, "%s\n\n", buf.Bytes())
	return err
}

// Update prints one inbound update: channel, payload, blank line.
func (c *Console) Update(channel string, payload json.RawMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintf(c.out, "%s\n%s\n\n", channel, payload)
	return err
}
