// ABOUTME: Gear tag decoding for equipment check-in flows
// ABOUTME: Structured ST1 payloads with a permissive bare-tag fallback
package scan

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnreadable means the payload matched no known tag format.
var ErrUnreadable = errors.New("unreadable tag payload")

// Tag is one decoded gear tag. Name is only present on structured
// payloads.
type Tag struct {
	AssetTag string
	Name     string
}

// assetTagPattern matches the studio's label scheme: a category prefix,
// a dash, and an alphanumeric id (CAM-001, TRI-44B).
var assetTagPattern = regexp.MustCompile(`^[A-Z]{2,5}-[A-Za-z0-9]+$`)

// Parse decodes a scanned payload. The primary format is the structured
// "ST1|<asset>|<name>" QR payload printed on newer labels; older labels
// carry only the bare asset tag, handled by the fallback.
func Parse(payload string) (Tag, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return Tag{}, ErrUnreadable
	}

	if strings.HasPrefix(payload, "ST1|") {
		parts := strings.SplitN(payload, "|", 3)
		if len(parts) < 2 || parts[1] == "" {
			return Tag{}, fmt.Errorf("%w: malformed ST1 payload", ErrUnreadable)
		}
		tag := Tag{AssetTag: strings.ToUpper(strings.TrimSpace(parts[1]))}
		if len(parts) == 3 {
			tag.Name = strings.TrimSpace(parts[2])
		}
		if !assetTagPattern.MatchString(tag.AssetTag) {
			return Tag{}, fmt.Errorf("%w: bad asset tag %q", ErrUnreadable, tag.AssetTag)
		}
		return tag, nil
	}

	// Fallback decoder for bare-tag labels.
	upper := strings.ToUpper(payload)
	if assetTagPattern.MatchString(upper) {
		return Tag{AssetTag: upper}, nil
	}
	return Tag{}, fmt.Errorf("%w: %q", ErrUnreadable, payload)
}
