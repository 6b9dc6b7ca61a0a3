package protocol

import "strings"

// SupportedVersions lists the MCP revisions the harness understands, newest first.
var SupportedVersions = []string{
	CurrentProtocolVersion,
	OldProtocolVersion,
}

// NormalizeVersion normalizes a version string for comparison.
func NormalizeVersion(version string) string {
	version = strings.ToLower(strings.TrimSpace(version))
	version = strings.TrimPrefix(version, "v")

	if version == "latest" || version == "current" {
		return SupportedVersions[0]
	}
	return version
}

// ValidateVersion returns the canonical form of version if it is supported.
func ValidateVersion(version string) (string, bool) {
	normalized := NormalizeVersion(version)
	for _, supported := range SupportedVersions {
		if supported == normalized {
			return supported, true
		}
	}
	return "", false
}
