package jsonvalue

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ParseDialectVersion parses a "major.minor" version string, as extracted
// from a $schema dialect URI (e.g. "draft/2020-12" -> "2020.12"), into a
// semver.Version with patch pinned to zero. Dialect versions aren't
// genuine semver, but major.minor is exactly the shape semver.Version
// already knows how to compare, so borrowing it avoids a hand-rolled
// parser for what is otherwise ordinary dotted-version comparison.
func ParseDialectVersion(version string) (*semver.Version, error) {
	if version == "" {
		return nil, errors.New("dialect version string is empty")
	}
	v, err := semver.NewVersion(version + ".0")
	if err != nil {
		return nil, fmt.Errorf("dialect version must be 'major.minor', got %q: %w", version, err)
	}
	return v, nil
}

// IsCompatibleDialect reports whether a schema declaring schemaVersion can
// be validated by an adapter declaring supportedVersion: major versions
// must match exactly, and the adapter's declared minor must be at least
// the schema's minor.
func IsCompatibleDialect(schemaVersion, supportedVersion *semver.Version) bool {
	if schemaVersion.Major() != supportedVersion.Major() {
		return false
	}
	return supportedVersion.Minor() >= schemaVersion.Minor()
}

// CheckDialectCompatibility validates that schemaVersion is compatible
// with one of an adapter's supportedVersions (both "major.minor"
// strings). It returns nil when compatible, or an error describing the
// mismatch.
func CheckDialectCompatibility(schemaVersion string, supportedVersions []string) error {
	if schemaVersion == "" {
		return errors.New("schema dialect version is empty")
	}
	schema, err := ParseDialectVersion(schemaVersion)
	if err != nil {
		return fmt.Errorf("invalid schema dialect version %q: %w", schemaVersion, err)
	}

	for _, supported := range supportedVersions {
		supportedVersion, perr := ParseDialectVersion(supported)
		if perr != nil {
			continue
		}
		if IsCompatibleDialect(schema, supportedVersion) {
			return nil
		}
	}
	return fmt.Errorf(
		"dialect version mismatch: schema requires %s, adapter supports %v",
		schemaVersion, supportedVersions,
	)
}
