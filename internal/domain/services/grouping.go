// Package services contains the naming and grouping rules for release artifacts.
package services

import (
	"sort"
	"strings"

	"github.com/tur-wheels/wheeldex/internal/domain/entities"
	"github.com/tur-wheels/wheeldex/internal/domain/interfaces"
)

// NormalizePackageName derives the grouping key from an artifact file name.
// The distribution segment is everything before the version separator (the
// first "-" that introduces a digit, falling back to the first "-" when the
// name has no version); underscores become hyphens and the result is
// lowercased. Returns "" when the name contains no "-" to split on.
func NormalizePackageName(fileName string) string {
	first := strings.IndexByte(fileName, '-')
	if first < 0 {
		return ""
	}

	cut := first
	for i := first; i < len(fileName)-1; i++ {
		if fileName[i] == '-' && fileName[i+1] >= '0' && fileName[i+1] <= '9' {
			cut = i
			break
		}
	}

	return strings.ToLower(strings.ReplaceAll(fileName[:cut], "_", "-"))
}

// GroupByPackage buckets artifacts by normalized package name. Artifacts
// whose file name yields no package name are skipped with a diagnostic.
// Each group's artifacts are sorted by file name so runs over identical
// input produce identical output.
func GroupByPackage(artifacts []entities.Artifact, logger interfaces.Logger) map[string]*entities.PackageGroup {
	groups := make(map[string]*entities.PackageGroup)

	for _, artifact := range artifacts {
		name := NormalizePackageName(artifact.FileName)
		if name == "" {
			logger.Warn("could not derive package name", interfaces.F("file", artifact.FileName))
			continue
		}

		group, ok := groups[name]
		if !ok {
			group = &entities.PackageGroup{Name: name}
			groups[name] = group
		}
		group.Artifacts = append(group.Artifacts, artifact)
	}

	for _, group := range groups {
		sort.Slice(group.Artifacts, func(i, j int) bool {
			return group.Artifacts[i].FileName < group.Artifacts[j].FileName
		})
	}

	return groups
}

// SortedPackageNames returns the group keys in alphabetical order
func SortedPackageNames(groups map[string]*entities.PackageGroup) []string {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
