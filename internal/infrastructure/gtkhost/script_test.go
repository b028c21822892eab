package gtkhost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiveScript(t *testing.T) {
	script, err := receiveScript("onSettingsChanged", map[string]any{"divider_color": "</script>"})
	require.NoError(t, err)

	assert.Equal(t,
		`window.duopane && window.duopane.receive("onSettingsChanged", {"divider_color":"\u003c/script\u003e"});`,
		script)
}

func TestReceiveScript_RejectsUnencodablePayload(t *testing.T) {
	_, err := receiveScript("overlayLayout", make(chan int))
	assert.Error(t, err)
}

func TestExternalAllowed(t *testing.T) {
	tests := []struct {
		uri  string
		want bool
	}{
		{"https://example.com/a?b=c", true},
		{"http://example.com", true},
		{"HTTPS://example.com", true},
		{"mailto:someone@example.com", true},
		{"file:///etc/passwd", false},
		{"javascript:alert(1)", false},
		{"about:blank", false},
		{"https://", false},
		{"", false},
		{"::not a url", false},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			assert.Equal(t, tt.want, externalAllowed(tt.uri))
		})
	}
}
