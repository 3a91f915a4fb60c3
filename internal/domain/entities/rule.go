package entities

import "strings"

// MirrorRule selects artifacts that must be re-hosted locally under a
// rewritten platform tag. An artifact matches only when its file name
// contains both the package marker and the source platform tag.
type MirrorRule struct {
	Marker  string
	FromTag string
	ToTag   string
}

// Matches reports whether the rule applies to the given file name
func (r MirrorRule) Matches(fileName string) bool {
	return strings.Contains(fileName, r.Marker) && strings.Contains(fileName, r.FromTag)
}

// Rename substitutes the source platform tag with the target tag, leaving
// the rest of the file name untouched.
func (r MirrorRule) Rename(fileName string) string {
	return strings.Replace(fileName, r.FromTag, r.ToTag, 1)
}

// DefaultMirrorRules covers the wheels whose published platform tag does not
// match what installers on the target platform accept.
func DefaultMirrorRules() []MirrorRule {
	return []MirrorRule{
		{Marker: "pydantic_core", FromTag: "linux_aarch64", ToTag: "android_24_aarch64"},
	}
}
