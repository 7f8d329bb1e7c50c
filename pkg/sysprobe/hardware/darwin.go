package hardware

import (
	"context"

	"github.com/redjax/sysprobe/pkg/sysprobe/report"
)

type macHAL struct {
	base
}

var _ HardwareAbstractionLayer = (*macHAL)(nil)

// NewMacOS constructs the macOS hardware view. Macs expose no DMI tables, so
// machine identity and disks come from the portable probes.
func NewMacOS(ctx context.Context) (HardwareAbstractionLayer, error) {
	b, err := newBase(ctx)
	if err != nil {
		return nil, err
	}
	return &macHAL{base: b}, nil
}

func (h *macHAL) ComputerSystem(ctx context.Context) (*ComputerSystem, error) {
	return h.portableComputerSystem(ctx, "Apple Inc.")
}

func (h *macHAL) Disks(ctx context.Context) ([]Disk, error) {
	return h.portableDisks(ctx)
}

func (h *macHAL) ToDocument(ctx context.Context, cfg report.Config) *report.Document {
	return renderHardware(ctx, cfg, h)
}
