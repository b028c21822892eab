package gtkhost

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/diamondburned/gotk4-webkitgtk/pkg/javascriptcore/v6"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"

	"github.com/bnema/duopane/assets"
	"github.com/bnema/duopane/internal/app/messaging"
	"github.com/bnema/duopane/internal/application/port"
	"github.com/bnema/duopane/internal/domain/entity"
	"github.com/bnema/duopane/internal/infrastructure/config"
	"github.com/bnema/duopane/internal/logging"
)

// MessageHandler receives raw script messages posted by a bridged surface.
type MessageHandler func(from port.Surface, raw []byte)

// Factory creates WebView surfaces on a window. Content surfaces get one
// persistent network session per partition; sessions are retained for the
// lifetime of the factory so WebKit never falls back to ephemeral storage.
type Factory struct {
	window    *Window
	content   config.ContentConfig
	onMessage MessageHandler

	sessions map[entity.PartitionKey]*webkit.NetworkSession
}

var _ port.SurfaceFactory = (*Factory)(nil)

// NewFactory creates a factory placing surfaces on window.
func NewFactory(window *Window, content config.ContentConfig, onMessage MessageHandler) *Factory {
	return &Factory{
		window:    window,
		content:   content,
		onMessage: onMessage,
		sessions:  make(map[entity.PartitionKey]*webkit.NetworkSession, 2),
	}
}

// NewContentSurface creates a pane view isolated in the partition's storage.
func (f *Factory) NewContentSurface(ctx context.Context, partition entity.Partition) (port.Surface, error) {
	session, err := f.session(ctx, partition)
	if err != nil {
		return nil, err
	}

	obj := coreglib.NewObjectWithProperties(webkit.GTypeWebView, map[string]any{
		"network-session": session,
	})
	view, ok := obj.Cast().(*webkit.WebView)
	if !ok || view == nil {
		return nil, fmt.Errorf("create web view for %s", partition.Key)
	}
	applyContentSettings(view, f.content)

	return newSurface(ctx, view, f.window), nil
}

// NewOverlaySurface creates the transparent divider surface and loads its
// page. It is the only window surface that can post messages.
func (f *Factory) NewOverlaySurface(ctx context.Context) (port.Surface, error) {
	view := webkit.NewWebView()
	if view == nil {
		return nil, fmt.Errorf("create overlay web view")
	}
	applyContentSettings(view, f.content)

	s := newSurface(logging.WithComponent(ctx, "overlay"), view, f.window)
	if err := enableBridge(ctx, view, s, f.onMessage); err != nil {
		return nil, err
	}
	view.LoadHTML(assets.OverlayHTML, "")
	return s, nil
}

func (f *Factory) session(ctx context.Context, partition entity.Partition) (*webkit.NetworkSession, error) {
	if session, ok := f.sessions[partition.Key]; ok {
		return session, nil
	}
	if partition.DataDir == "" || partition.CacheDir == "" {
		return nil, fmt.Errorf("partition %s has no storage directories", partition.Key)
	}

	session := webkit.NewNetworkSession(partition.DataDir, partition.CacheDir)
	if session == nil {
		return nil, fmt.Errorf("create network session for %s", partition.Key)
	}
	if session.IsEphemeral() {
		return nil, fmt.Errorf("network session for %s is ephemeral", partition.Key)
	}

	cookiePath := filepath.Join(partition.DataDir, "cookies.db")
	cookies := session.CookieManager()
	cookies.SetPersistentStorage(cookiePath, webkit.CookiePersistentStorageSqlite)
	cookies.SetAcceptPolicy(webkit.CookiePolicyAcceptNoThirdParty)
	session.SetPersistentCredentialStorageEnabled(true)

	f.sessions[partition.Key] = session
	logging.FromContext(ctx).Info().
		Str("partition", string(partition.Key)).
		Str("data_dir", partition.DataDir).
		Str("cookie_path", cookiePath).
		Msg("network session configured")
	return session, nil
}

func applyContentSettings(view *webkit.WebView, cfg config.ContentConfig) {
	settings := view.Settings()
	if settings == nil {
		return
	}
	settings.SetEnableJavascript(true)
	settings.SetEnableDeveloperExtras(cfg.EnableDevTools)
	switch cfg.HardwareAcceleration {
	case config.HardwareAccelerationNever:
		settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyNever)
	default:
		settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyAlways)
	}
	if cfg.UserAgent != "" {
		settings.SetUserAgent(cfg.UserAgent)
	}
}

// enableBridge injects the page bridge and routes its messages to onMessage.
func enableBridge(ctx context.Context, view *webkit.WebView, from port.Surface, onMessage MessageHandler) error {
	log := logging.FromContext(ctx)

	ucm := view.UserContentManager()
	if ucm == nil {
		return fmt.Errorf("web view has no user content manager")
	}
	ucm.AddScript(webkit.NewUserScript(
		assets.BridgeScript,
		webkit.UserContentInjectTopFrame,
		webkit.UserScriptInjectAtDocumentStart,
		nil,
		nil,
	))

	ucm.ConnectScriptMessageReceived(func(value *javascriptcore.Value) {
		if onMessage == nil || value == nil {
			return
		}
		onMessage(from, []byte(value.ToJSON(0)))
	})
	if !ucm.RegisterScriptMessageHandler(messaging.HandlerName, "") {
		return fmt.Errorf("register %q message handler", messaging.HandlerName)
	}

	log.Debug().Int("bridge_bytes", len(assets.BridgeScript)).Msg("page bridge installed")
	return nil
}
