// Package messaging routes script messages posted by UI surfaces.
package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/duopane/internal/logging"
)

// HandlerName is the script message handler pages post to, as in
// window.webkit.messageHandlers.duopane.postMessage(...).
const HandlerName = "duopane"

// ResponseMessage is the name replies are delivered under.
const ResponseMessage = "response"

var (
	ErrMalformedMessage = errors.New("malformed script message")
	ErrUnknownType      = errors.New("no handler for message type")
)

// Message is the JS -> Go envelope.
type Message struct {
	Type      string          `json:"type"`
	RequestID string          `json:"requestId,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// Response answers a request carrying a requestId.
type Response struct {
	RequestID string `json:"requestId"`
	OK        bool   `json:"ok"`
	Result    any    `json:"result,omitempty"`
	Error     string `json:"error,omitempty"`
}

// MessageHandler handles a decoded message payload.
type MessageHandler interface {
	Handle(ctx context.Context, payload json.RawMessage) (any, error)
}

// MessageHandlerFunc adapts a function to the MessageHandler interface.
type MessageHandlerFunc func(ctx context.Context, payload json.RawMessage) (any, error)

// Handle calls f(ctx, payload).
func (f MessageHandlerFunc) Handle(ctx context.Context, payload json.RawMessage) (any, error) {
	return f(ctx, payload)
}

type handlerEntry struct {
	handler MessageHandler
	reply   bool
}

// Router dispatches script messages to registered handlers. Handlers run on
// the goroutine calling Dispatch, which for host surfaces is the main loop.
type Router struct {
	baseCtx context.Context

	mu       sync.RWMutex
	handlers map[string]handlerEntry
}

// NewRouter creates an empty router.
func NewRouter(ctx context.Context) *Router {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Router{
		baseCtx:  ctx,
		handlers: make(map[string]handlerEntry),
	}
}

// Register adds a one-way handler. Its result is discarded.
func (r *Router) Register(msgType string, handler MessageHandler) error {
	return r.register(msgType, handlerEntry{handler: handler})
}

// RegisterRequest adds a handler whose result, or error, is sent back to the
// caller when the message carries a requestId.
func (r *Router) RegisterRequest(msgType string, handler MessageHandler) error {
	return r.register(msgType, handlerEntry{handler: handler, reply: true})
}

func (r *Router) register(msgType string, entry handlerEntry) error {
	if msgType == "" {
		return errors.New("message type cannot be empty")
	}
	if entry.handler == nil {
		return errors.New("message handler cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.handlers[msgType]; exists {
		return fmt.Errorf("handler for %q already registered", msgType)
	}
	r.handlers[msgType] = entry
	return nil
}

// Types returns the registered message types.
func (r *Router) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.handlers))
	for t := range r.handlers {
		types = append(types, t)
	}
	return types
}

// Dispatch decodes raw and runs its handler. from receives the reply of
// request handlers and may be nil for surfaces that never ask.
func (r *Router) Dispatch(ctx context.Context, from Replier, raw []byte) error {
	if ctx == nil {
		ctx = r.baseCtx
	}
	log := logging.FromContext(ctx).With().Str("component", "message-router").Logger()

	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		log.Warn().Err(err).Int("len", len(raw)).Msg("failed to unmarshal script message")
		return fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}
	if msg.Type == "" {
		log.Warn().Msg("script message missing type")
		return fmt.Errorf("%w: missing type", ErrMalformedMessage)
	}

	r.mu.RLock()
	entry, ok := r.handlers[msg.Type]
	r.mu.RUnlock()
	if !ok {
		log.Warn().Str("type", msg.Type).Msg("no handler registered for message type")
		if msg.RequestID != "" {
			r.reply(ctx, from, Response{RequestID: msg.RequestID, Error: "unknown message type"})
		}
		return fmt.Errorf("%w: %q", ErrUnknownType, msg.Type)
	}

	log.Trace().
		Str("type", msg.Type).
		Str("request_id", msg.RequestID).
		Int("payload_len", len(msg.Payload)).
		Msg("received script message")

	result, err := entry.handler.Handle(ctx, msg.Payload)
	if err != nil {
		log.Warn().Err(err).Str("type", msg.Type).Msg("message handler returned error")
	}

	if entry.reply && msg.RequestID != "" {
		resp := Response{RequestID: msg.RequestID, OK: err == nil, Result: result}
		if err != nil {
			resp.Error = err.Error()
			resp.Result = nil
		}
		r.reply(ctx, from, resp)
	}

	if err != nil {
		return fmt.Errorf("handle %s: %w", msg.Type, err)
	}
	return nil
}

func (r *Router) reply(ctx context.Context, to Replier, resp Response) {
	if to == nil {
		return
	}
	if err := to.Send(ctx, ResponseMessage, resp); err != nil {
		logging.FromContext(ctx).Warn().Err(err).
			Str("request_id", resp.RequestID).
			Msg("failed to deliver response")
	}
}
