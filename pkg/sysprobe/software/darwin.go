package software

import (
	"context"
	"strings"
)

// macCodeNames maps a macOS release to Apple's marketing name, keyed by the
// significant version prefix.
var macCodeNames = map[string]string{
	"10.13": "High Sierra",
	"10.14": "Mojave",
	"10.15": "Catalina",
	"11":    "Big Sur",
	"12":    "Monterey",
	"13":    "Ventura",
	"14":    "Sonoma",
	"15":    "Sequoia",
	"26":    "Tahoe",
}

type macOS struct {
	base
}

var _ OperatingSystem = (*macOS)(nil)

// NewMacOS constructs the macOS operating system view.
func NewMacOS(ctx context.Context) (OperatingSystem, error) {
	b, err := newBase(ctx)
	if err != nil {
		return nil, err
	}
	b.family = "macOS"
	b.manufacturer = "Apple"
	b.version.CodeName = darwinCodeName(b.version.Version)
	b.fsIgnore = map[string]bool{"devfs": true, "autofs": true, "map": true}
	return &macOS{base: b}, nil
}

// darwinCodeName resolves the marketing name for a macOS version string.
// Releases before Big Sur are keyed on major.minor, later ones on the major
// alone. Unknown releases get no code name.
func darwinCodeName(version string) string {
	parts := strings.SplitN(version, ".", 3)
	if len(parts) == 0 || parts[0] == "" {
		return ""
	}
	if parts[0] == "10" && len(parts) > 1 {
		return macCodeNames[parts[0]+"."+parts[1]]
	}
	return macCodeNames[parts[0]]
}
