package gtkhost

import (
	"context"
	"fmt"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/duopane/internal/application/port"
	"github.com/bnema/duopane/internal/domain/entity"
	"github.com/bnema/duopane/internal/logging"
)

// surface adapts a WebView to port.Surface. host is nil for views that own
// their toplevel, such as the settings editor.
type surface struct {
	view *webkit.WebView
	host *Window
	log  zerolog.Logger

	painted    bool
	firstPaint []func()
	external   func(uri string)
}

var _ port.Surface = (*surface)(nil)

func newSurface(ctx context.Context, view *webkit.WebView, host *Window) *surface {
	s := &surface{
		view: view,
		host: host,
		log:  *logging.FromContext(ctx),
	}

	view.ConnectLoadChanged(func(event webkit.LoadEvent) {
		if event != webkit.LoadFinished || s.painted {
			return
		}
		s.painted = true
		for _, fn := range s.firstPaint {
			fn()
		}
		s.firstPaint = nil
	})

	view.ConnectDecidePolicy(func(decision webkit.PolicyDecisioner, kind webkit.PolicyDecisionType) bool {
		if kind != webkit.PolicyDecisionTypeNewWindowAction {
			return false
		}
		nav, ok := decision.(*webkit.NavigationPolicyDecision)
		if !ok {
			return false
		}
		uri := nav.NavigationAction().Request().URI()
		nav.Ignore()

		if s.external != nil && uri != "" {
			s.external(uri)
		} else {
			s.log.Debug().Str("uri", uri).Msg("new window request dropped")
		}
		return true
	})

	if host != nil {
		host.attach(view)
	}
	return s
}

func (s *surface) Navigate(_ context.Context, uri string) error {
	if uri == "" {
		uri = port.BlankURL
	}
	s.view.LoadURI(uri)
	return nil
}

func (s *surface) SetBounds(rect entity.Rect) {
	if s.host == nil {
		return
	}
	s.host.place(s.view, rect)
}

func (s *surface) SetTransparentBackground() {
	clear := gdk.NewRGBA(0, 0, 0, 0)
	s.view.SetBackgroundColor(&clear)
}

func (s *surface) OnFirstPaint(callback func()) {
	if s.painted {
		callback()
		return
	}
	s.firstPaint = append(s.firstPaint, callback)
}

func (s *surface) OnExternalNavigation(callback func(uri string)) {
	s.external = callback
}

func (s *surface) Send(ctx context.Context, name string, payload any) error {
	script, err := receiveScript(name, payload)
	if err != nil {
		return fmt.Errorf("send %s: %w", name, err)
	}
	s.view.EvaluateJavascript(ctx, script, -1, "", "", nil)
	return nil
}
