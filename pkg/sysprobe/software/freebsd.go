package software

import "context"

type freebsdOS struct {
	base
}

var _ OperatingSystem = (*freebsdOS)(nil)

// NewFreeBSD constructs the FreeBSD operating system view.
func NewFreeBSD(ctx context.Context) (OperatingSystem, error) {
	b, err := newBase(ctx)
	if err != nil {
		return nil, err
	}
	if b.family == "" {
		b.family = "FreeBSD"
	}
	b.manufacturer = "The FreeBSD Project"
	b.fsIgnore = map[string]bool{
		"devfs": true, "procfs": true, "fdescfs": true, "linprocfs": true,
		"linsysfs": true, "tmpfs": true,
	}
	return &freebsdOS{base: b}, nil
}
