package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/bnema/duopane/internal/domain/entity"
)

// ErrUnknownKey is returned by SetField for a key outside Keys().
var ErrUnknownKey = errors.New("unknown settings key")

var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]+|(rgb|rgba|hsl|hsla)\([^)]*\))$`)

// ValidColor reports whether value looks like a CSS color token.
func ValidColor(value string) bool {
	return colorPattern.MatchString(strings.TrimSpace(value))
}

// SetField returns s with the named field parsed from value.
func SetField(s entity.Settings, key, value string) (entity.Settings, error) {
	value = strings.TrimSpace(value)

	switch key {
	case keySideAURL:
		s.SideAURL = value
	case keySideBURL:
		s.SideBURL = value
	case keySplitRatio:
		ratio, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return s, fmt.Errorf("split_ratio: %w", err)
		}
		s.SplitRatio = entity.ClampRatio(ratio)
	case keyDividerColor:
		if !ValidColor(value) {
			return s, fmt.Errorf("divider_color: %q is not a color", value)
		}
		s.DividerColor = value
	case keySwapped:
		swapped, err := strconv.ParseBool(value)
		if err != nil {
			return s, fmt.Errorf("swapped: %w", err)
		}
		s.Swapped = swapped
	default:
		return s, fmt.Errorf("%w: %q (valid keys: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
	}
	return s, nil
}

// Field returns the named field formatted for display.
func Field(s entity.Settings, key string) (string, error) {
	switch key {
	case keySideAURL:
		return s.SideAURL, nil
	case keySideBURL:
		return s.SideBURL, nil
	case keySplitRatio:
		return strconv.FormatFloat(s.SplitRatio, 'f', -1, 64), nil
	case keyDividerColor:
		return s.DividerColor, nil
	case keySwapped:
		return strconv.FormatBool(s.Swapped), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}

// Schema returns the JSON schema of settings.json.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{DoNotReference: true, AllowAdditionalProperties: true}
	schema := r.Reflect(&entity.Settings{})

	schema.ID = "https://github.com/bnema/duopane/settings.schema.json"
	schema.Title = "duopane settings"
	schema.Description = "User settings shared by the duopane window and CLI"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
