package software

import "context"

type windowsOS struct {
	base
}

var _ OperatingSystem = (*windowsOS)(nil)

// NewWindows constructs the Windows operating system view.
func NewWindows(ctx context.Context) (OperatingSystem, error) {
	b, err := newBase(ctx)
	if err != nil {
		return nil, err
	}
	b.family = "Windows"
	b.manufacturer = "Microsoft"
	// Windows exposes no pseudo filesystems through the partition list.
	b.fsIgnore = nil
	return &windowsOS{base: b}, nil
}
