package config

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckGeneratorVersion verifies that current satisfies the constraint from
// the generator_version setting. An empty constraint or a non-release build
// ("dev", or anything that is not semver) passes.
func CheckGeneratorVersion(constraint, current string) error {
	if strings.TrimSpace(constraint) == "" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing %s %q: %w", KeyGeneratorVersion, constraint, err)
	}

	v, err := parseSemver(current)
	if err != nil {
		return nil
	}

	if ok, errs := c.Validate(v); !ok {
		reason := ""
		if len(errs) > 0 {
			reason = ": " + errs[0].Error()
		}
		return fmt.Errorf("generator version %s does not satisfy %s %q%s", v, KeyGeneratorVersion, constraint, reason)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
