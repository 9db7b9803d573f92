// Package trace tags each interactive command with an id so its log lines
// can be correlated.
package trace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// ContextKey type for context keys
type ContextKey string

const (
	// CommandIDKey is the context key for the command ID
	CommandIDKey ContextKey = "command_id"
)

// NewCommandID creates a unique command ID
func NewCommandID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("cmd_%d", time.Now().UnixNano())
	}
	return "cmd_" + hex.EncodeToString(b)
}

// WithCommandID returns ctx carrying a fresh command ID.
func WithCommandID(ctx context.Context) context.Context {
	return context.WithValue(ctx, CommandIDKey, NewCommandID())
}

// CommandID extracts the command ID from context
func CommandID(ctx context.Context) string {
	if id, ok := ctx.Value(CommandIDKey).(string); ok {
		return id
	}
	return ""
}
