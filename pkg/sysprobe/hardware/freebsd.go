package hardware

import (
	"context"

	"github.com/redjax/sysprobe/pkg/sysprobe/report"
)

type freebsdHAL struct {
	base
}

var _ HardwareAbstractionLayer = (*freebsdHAL)(nil)

// NewFreeBSD constructs the FreeBSD hardware view using the portable probes;
// ghw has no FreeBSD backend.
func NewFreeBSD(ctx context.Context) (HardwareAbstractionLayer, error) {
	b, err := newBase(ctx)
	if err != nil {
		return nil, err
	}
	return &freebsdHAL{base: b}, nil
}

func (h *freebsdHAL) ComputerSystem(ctx context.Context) (*ComputerSystem, error) {
	return h.portableComputerSystem(ctx, "The FreeBSD Project")
}

func (h *freebsdHAL) Disks(ctx context.Context) ([]Disk, error) {
	return h.portableDisks(ctx)
}

func (h *freebsdHAL) ToDocument(ctx context.Context, cfg report.Config) *report.Document {
	return renderHardware(ctx, cfg, h)
}
