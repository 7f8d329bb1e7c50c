package hardware

import (
	"context"

	"github.com/redjax/sysprobe/pkg/sysprobe/report"
)

type windowsHAL struct {
	base
}

var _ HardwareAbstractionLayer = (*windowsHAL)(nil)

// NewWindows constructs the Windows hardware view. ghw reads machine
// identity and the disk inventory through WMI.
func NewWindows(ctx context.Context) (HardwareAbstractionLayer, error) {
	b, err := newBase(ctx)
	if err != nil {
		return nil, err
	}
	return &windowsHAL{base: b}, nil
}

func (h *windowsHAL) ComputerSystem(ctx context.Context) (*ComputerSystem, error) {
	return h.ghwComputerSystem(ctx)
}

func (h *windowsHAL) Disks(ctx context.Context) ([]Disk, error) {
	return h.ghwDisks(ctx)
}

func (h *windowsHAL) ToDocument(ctx context.Context, cfg report.Config) *report.Document {
	return renderHardware(ctx, cfg, h)
}
