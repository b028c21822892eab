// Package assets embeds the pages and scripts loaded into UI surfaces.
package assets

import _ "embed"

// BridgeScript is injected at document start into every UI surface. It
// exposes window.duopane for posting script messages and receiving pushes.
//
//go:embed bridge.js
var BridgeScript string

// OverlayHTML draws the divider and the first-run configure buttons.
//
//go:embed overlay.html
var OverlayHTML string

// SettingsHTML is the settings editor form.
//
//go:embed settings.html
var SettingsHTML string
