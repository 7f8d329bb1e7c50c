package hardware

import (
	"context"

	"github.com/redjax/sysprobe/pkg/sysprobe/report"
)

type solarisHAL struct {
	base
}

var _ HardwareAbstractionLayer = (*solarisHAL)(nil)

// NewSolaris constructs the Solaris/illumos hardware view using the portable
// probes; ghw has no Solaris backend.
func NewSolaris(ctx context.Context) (HardwareAbstractionLayer, error) {
	b, err := newBase(ctx)
	if err != nil {
		return nil, err
	}
	return &solarisHAL{base: b}, nil
}

func (h *solarisHAL) ComputerSystem(ctx context.Context) (*ComputerSystem, error) {
	return h.portableComputerSystem(ctx, "Oracle")
}

func (h *solarisHAL) Disks(ctx context.Context) ([]Disk, error) {
	return h.portableDisks(ctx)
}

func (h *solarisHAL) ToDocument(ctx context.Context, cfg report.Config) *report.Document {
	return renderHardware(ctx, cfg, h)
}
