package gtkhost

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrSchemeNotAllowed is returned when a URI is refused by the external opener.
var ErrSchemeNotAllowed = errors.New("scheme not allowed for external opening")

var externalSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
}

// receiveScript builds the script delivering a named message to the page
// bridge. JSON encoding escapes everything that could break out of the call.
func receiveScript(name string, payload any) (string, error) {
	encodedName, err := json.Marshal(name)
	if err != nil {
		return "", fmt.Errorf("encode message name: %w", err)
	}
	encodedPayload, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode %s payload: %w", name, err)
	}
	return fmt.Sprintf("window.duopane && window.duopane.receive(%s, %s);", encodedName, encodedPayload), nil
}

// externalAllowed reports whether uri may be handed to the desktop.
func externalAllowed(uri string) bool {
	u, err := url.Parse(strings.TrimSpace(uri))
	if err != nil {
		return false
	}
	if !externalSchemes[strings.ToLower(u.Scheme)] {
		return false
	}
	if u.Scheme != "mailto" && u.Host == "" {
		return false
	}
	return true
}
