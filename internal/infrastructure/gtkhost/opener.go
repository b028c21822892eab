package gtkhost

import (
	"context"
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gio/v2"

	"github.com/bnema/duopane/internal/application/port"
	"github.com/bnema/duopane/internal/logging"
)

// Opener launches URIs with the desktop's default handler.
type Opener struct{}

var _ port.ExternalOpener = Opener{}

// Open hands uri to the default application. Only http, https and mailto
// are forwarded.
func (Opener) Open(ctx context.Context, uri string) error {
	if !externalAllowed(uri) {
		return fmt.Errorf("%w: %q", ErrSchemeNotAllowed, uri)
	}
	if err := gio.AppInfoLaunchDefaultForURI(uri, nil); err != nil {
		return fmt.Errorf("launch default handler: %w", err)
	}
	logging.FromContext(ctx).Debug().Str("uri", uri).Msg("opened link externally")
	return nil
}
