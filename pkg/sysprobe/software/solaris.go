package software

import "context"

type solarisOS struct {
	base
}

var _ OperatingSystem = (*solarisOS)(nil)

// NewSolaris constructs the Solaris/illumos operating system view.
func NewSolaris(ctx context.Context) (OperatingSystem, error) {
	b, err := newBase(ctx)
	if err != nil {
		return nil, err
	}
	if b.family == "" {
		b.family = "SunOS"
	}
	b.manufacturer = "Oracle"
	b.fsIgnore = map[string]bool{
		"proc": true, "ctfs": true, "mntfs": true, "objfs": true,
		"sharefs": true, "fd": true, "dev": true, "devfs": true,
	}
	return &solarisOS{base: b}, nil
}
