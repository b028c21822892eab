package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/duopane/internal/domain/entity"
	"github.com/bnema/duopane/internal/logging"
)

// Message types posted by the overlay and settings pages.
const (
	TypeGetSettings      = "get-settings"
	TypeSaveSettings     = "save-settings"
	TypeUpdateSplitRatio = "update-split-ratio"
	TypeDragMove         = "drag-move"
	TypeDragEnd          = "drag-end"
	TypeOpenSettings     = "open-settings"
)

// RegisterAll wires every message type to backend.
func RegisterAll(ctx context.Context, router *Router, backend Backend) error {
	log := logging.FromContext(ctx).With().Str("component", "handlers").Logger()

	requests := map[string]MessageHandlerFunc{
		TypeGetSettings: func(ctx context.Context, _ json.RawMessage) (any, error) {
			return backend.GetSettings(ctx), nil
		},
		TypeSaveSettings: func(ctx context.Context, payload json.RawMessage) (any, error) {
			// Fields absent from the payload keep their value, including
			// when the save lands before the stored record has loaded.
			var patch entity.SettingsPatch
			if err := json.Unmarshal(payload, &patch); err != nil {
				return nil, fmt.Errorf("invalid settings payload: %w", err)
			}
			backend.SaveSettings(ctx, patch)
			return true, nil
		},
	}

	oneWay := map[string]MessageHandlerFunc{
		TypeUpdateSplitRatio: func(ctx context.Context, payload json.RawMessage) (any, error) {
			ratio, err := decodeNumber(payload)
			if err != nil {
				return nil, fmt.Errorf("invalid split ratio: %w", err)
			}
			backend.UpdateSplitRatio(ctx, ratio)
			return nil, nil
		},
		TypeDragMove: func(ctx context.Context, payload json.RawMessage) (any, error) {
			clientX, err := decodeNumber(payload)
			if err != nil {
				return nil, fmt.Errorf("invalid drag position: %w", err)
			}
			backend.DragMove(ctx, clientX)
			return nil, nil
		},
		TypeDragEnd: func(ctx context.Context, _ json.RawMessage) (any, error) {
			backend.DragEnd(ctx)
			return nil, nil
		},
		TypeOpenSettings: func(ctx context.Context, _ json.RawMessage) (any, error) {
			backend.OpenSettingsEditor(ctx)
			return nil, nil
		},
	}

	for msgType, handler := range requests {
		if err := router.RegisterRequest(msgType, handler); err != nil {
			return err
		}
	}
	for msgType, handler := range oneWay {
		if err := router.Register(msgType, handler); err != nil {
			return err
		}
	}

	log.Debug().Int("count", len(requests)+len(oneWay)).Msg("registered message handlers")
	return nil
}

// decodeNumber accepts a bare JSON number.
func decodeNumber(payload json.RawMessage) (float64, error) {
	if len(payload) == 0 {
		return 0, fmt.Errorf("empty payload")
	}
	var v float64
	if err := json.Unmarshal(payload, &v); err != nil {
		return 0, err
	}
	return v, nil
}
