package hardware

import (
	"context"

	"github.com/redjax/sysprobe/pkg/sysprobe/report"
)

type linuxHAL struct {
	base
}

var _ HardwareAbstractionLayer = (*linuxHAL)(nil)

// NewLinux constructs the Linux hardware view. Machine identity and the disk
// inventory come from DMI/sysfs through ghw.
func NewLinux(ctx context.Context) (HardwareAbstractionLayer, error) {
	b, err := newBase(ctx)
	if err != nil {
		return nil, err
	}
	return &linuxHAL{base: b}, nil
}

func (h *linuxHAL) ComputerSystem(ctx context.Context) (*ComputerSystem, error) {
	return h.ghwComputerSystem(ctx)
}

func (h *linuxHAL) Disks(ctx context.Context) ([]Disk, error) {
	return h.ghwDisks(ctx)
}

func (h *linuxHAL) ToDocument(ctx context.Context, cfg report.Config) *report.Document {
	return renderHardware(ctx, cfg, h)
}
