// Package sysprobe is the entry point for cross-platform system information.
// A SystemInfo facade resolves the running platform once, lazily constructs
// the matching software.OperatingSystem and hardware.HardwareAbstractionLayer
// implementations exactly once each, and projects them into report.Documents
// under caller-selected inclusion keys.
package sysprobe

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/redjax/sysprobe/pkg/sysprobe/hardware"
	"github.com/redjax/sysprobe/pkg/sysprobe/report"
	"github.com/redjax/sysprobe/pkg/sysprobe/software"
)

var log = logrus.WithField("component", "sysprobe")

// osBuilders and hwBuilders map each supported platform to its capability
// constructor. Porting to a new platform means adding one entry to each
// table; a platform with no entry surfaces ErrUnsupportedPlatform when a
// capability is requested.
var osBuilders = map[Platform]func(context.Context) (software.OperatingSystem, error){
	PlatformWindows: software.NewWindows,
	PlatformLinux:   software.NewLinux,
	PlatformMacOS:   software.NewMacOS,
	PlatformSolaris: software.NewSolaris,
	PlatformFreeBSD: software.NewFreeBSD,
}

var hwBuilders = map[Platform]func(context.Context) (hardware.HardwareAbstractionLayer, error){
	PlatformWindows: hardware.NewWindows,
	PlatformLinux:   hardware.NewLinux,
	PlatformMacOS:   hardware.NewMacOS,
	PlatformSolaris: hardware.NewSolaris,
	PlatformFreeBSD: hardware.NewFreeBSD,
}

// SystemInfo is the facade callers go through for everything. Both
// capability views are constructed lazily, at most once per facade, and
// shared by every caller afterwards; the getters are safe for concurrent
// use. The zero value is not usable, construct with New or NewForPlatform.
type SystemInfo struct {
	platform Platform

	os lazyRef[software.OperatingSystem]
	hw lazyRef[hardware.HardwareAbstractionLayer]
}

// New returns a facade bound to the detected platform.
func New() *SystemInfo {
	return NewForPlatform(Detect())
}

// NewForPlatform returns a facade that dispatches on an explicit platform
// instead of the detected one. Useful for exercising a specific variant or
// the unsupported-platform path; normal callers want New.
func NewForPlatform(p Platform) *SystemInfo {
	return &SystemInfo{platform: p}
}

// Platform returns the platform this facade dispatches on.
func (si *SystemInfo) Platform() Platform {
	return si.platform
}

// OperatingSystem returns the shared operating system view, constructing it
// on first call. Construction failures are returned to the caller unchanged
// and are not cached, so a later call attempts construction again.
func (si *SystemInfo) OperatingSystem(ctx context.Context) (software.OperatingSystem, error) {
	return si.os.get(func() (software.OperatingSystem, error) {
		build, ok := osBuilders[si.platform]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, si.platform)
		}
		log.Debugf("constructing %s operating system view", si.platform)
		return build(ctx)
	})
}

// Hardware returns the shared hardware abstraction layer, constructing it on
// first call. Same caching and failure semantics as OperatingSystem; the two
// capabilities are constructed independently and never block one another.
func (si *SystemInfo) Hardware(ctx context.Context) (hardware.HardwareAbstractionLayer, error) {
	return si.hw.get(func() (hardware.HardwareAbstractionLayer, error) {
		build, ok := hwBuilders[si.platform]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, si.platform)
		}
		log.Debugf("constructing %s hardware abstraction layer", si.platform)
		return build(ctx)
	})
}

// ToDocument projects the facade into a report.Document under cfg's
// inclusion keys. The platform field never constructs a capability; the
// operatingSystem and hardware sections construct only the capability they
// describe, so a projection asks for exactly what the caller toggled on.
// Capability construction errors abort the projection and propagate
// unchanged; gather failures inside an already constructed capability
// surface as omitted fields instead.
func (si *SystemInfo) ToDocument(ctx context.Context, cfg report.Config) (*report.Document, error) {
	doc := report.NewDocument()

	if cfg.Bool(report.KeyPlatform) {
		doc.Add("platform", si.platform.String())
	}

	if cfg.Bool(report.KeyOperatingSystem) {
		os, err := si.OperatingSystem(ctx)
		if err != nil {
			return nil, err
		}
		doc.AddDocument("operatingSystem", os.ToDocument(ctx, cfg))
	}

	if cfg.Bool(report.KeyHardware) {
		hw, err := si.Hardware(ctx)
		if err != nil {
			return nil, err
		}
		doc.AddDocument("hardware", hw.ToDocument(ctx, cfg))
	}

	return doc, nil
}
