package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var tagSlugRegex = regexp.MustCompile(`^[a-z0-9-]{2,50}$`)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateTagSlug validates tag slug format.
func ValidateTagSlug(slug string) error {
	if !tagSlugRegex.MatchString(slug) {
		return fmt.Errorf("slug must be 2-50 characters and contain only lowercase letters, numbers, and hyphens")
	}

	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		return fmt.Errorf("slug cannot start or end with a hyphen")
	}

	return nil
}

// ValidateTagColor validates a #RRGGBB color value.
func ValidateTagColor(color string) error {
	if !hexColorRegex.MatchString(color) {
		return fmt.Errorf("color must be a hex value like #49B64E")
	}
	return nil
}
