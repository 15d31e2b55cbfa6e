package tools

import "github.com/stackbase-dev/stackbase-mcp/pkg/backendver"

// VersionRequirement bounds the backend versions a tool is compatible with.
// Both bounds are inclusive; an empty bound is open.
type VersionRequirement struct {
	MinVersion string
	MaxVersion string
}

// SatisfiedBy reports whether the backend version fits inside the bounds.
func (r VersionRequirement) SatisfiedBy(version string) bool {
	if r.MinVersion != "" && backendver.LessThan(version, r.MinVersion) {
		return false
	}
	if r.MaxVersion != "" && backendver.LessThan(r.MaxVersion, version) {
		return false
	}
	return true
}

// versionRequirements gates tools on the backend version resolved at
// registration time. Tools absent from the map are always eligible.
var versionRequirements = map[string]VersionRequirement{
	"upsert-schedule":   {MinVersion: "1.1.1"},
	"delete-schedule":   {MinVersion: "1.1.1"},
	"create-deployment": {MinVersion: "1.4.7"},
}
