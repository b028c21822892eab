package messaging

import (
	"context"

	"github.com/bnema/duopane/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_messaging.go -package=mocks

// Backend carries out the operations UI surfaces may request.
type Backend interface {
	GetSettings(ctx context.Context) entity.Settings
	SaveSettings(ctx context.Context, patch entity.SettingsPatch) entity.Settings
	UpdateSplitRatio(ctx context.Context, ratio float64)
	DragMove(ctx context.Context, clientX float64)
	DragEnd(ctx context.Context)
	OpenSettingsEditor(ctx context.Context)
}

// Replier sends a named message back to the surface a request came from.
type Replier interface {
	Send(ctx context.Context, name string, payload any) error
}
