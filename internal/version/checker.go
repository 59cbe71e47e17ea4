package version

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/studiowebux/burrow/internal/gopher"
	"github.com/studiowebux/burrow/internal/transport"
	"github.com/studiowebux/burrow/internal/types"
)

// Version is the client version, overridable at link time.
var Version = "0.1.0"

// The release feed is itself served over gopher: a text selector whose
// first line is the latest version string.
const (
	releaseHost     = "gopher.studiowebux.com"
	releaseSelector = "/burrow/latest.txt"
)

// CheckForUpdate fetches the release feed and reports whether a newer
// version is available. Plain transport on purpose; the check is
// best-effort and skipped entirely in Tor-only sessions by the caller.
func CheckForUpdate(ctx context.Context, currentVersion string) (available bool, latestVersion string, err error) {
	addr := types.Address{
		Host:     releaseHost,
		Port:     types.DefaultPort,
		Selector: releaseSelector,
		Type:     types.TypeText,
	}
	resp, err := gopher.Fetch(ctx, addr, "", transport.Options{})
	if err != nil {
		return false, "", fmt.Errorf("failed to fetch release feed: %w", err)
	}

	latestVersion, err = latestFromFeed(resp.Body)
	if err != nil {
		return false, "", err
	}

	current := strings.TrimPrefix(currentVersion, "v")
	return isNewerVersion(latestVersion, current), latestVersion, nil
}

// latestFromFeed extracts the version from the feed body: the first
// line, with an optional leading v.
func latestFromFeed(body []byte) (string, error) {
	line, _, _ := strings.Cut(string(body), "\n")
	latest := strings.TrimPrefix(strings.TrimSpace(line), "v")
	if latest == "" {
		return "", fmt.Errorf("empty release feed")
	}
	return latest, nil
}

// isNewerVersion compares two semantic versions and returns true if latest > current
// Supports versions like "0.0.28", "1.2.3", "0.0.29-dev", etc.
func isNewerVersion(latest, current string) bool {
	latestParts := parseVersion(latest)
	currentParts := parseVersion(current)

	// Pad shorter version with zeros
	maxLen := len(latestParts)
	if len(currentParts) > maxLen {
		maxLen = len(currentParts)
	}

	for len(latestParts) < maxLen {
		latestParts = append(latestParts, 0)
	}
	for len(currentParts) < maxLen {
		currentParts = append(currentParts, 0)
	}

	// Compare each part
	for i := 0; i < maxLen; i++ {
		if latestParts[i] > currentParts[i] {
			return true
		}
		if latestParts[i] < currentParts[i] {
			return false
		}
	}

	return false
}

// parseVersion parses a version string into integer parts
// Handles pre-release versions by stripping everything after "-" or "+"
func parseVersion(version string) []int {
	// Strip pre-release and build metadata (everything after - or +)
	if idx := strings.IndexAny(version, "-+"); idx != -1 {
		version = version[:idx]
	}

	parts := strings.Split(version, ".")
	result := make([]int, 0, len(parts))

	for _, part := range parts {
		num, err := strconv.Atoi(part)
		if err != nil {
			// If we can't parse a number, skip it
			continue
		}
		result = append(result, num)
	}

	return result
}
