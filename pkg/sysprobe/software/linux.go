package software

import "context"

// linuxPseudoFS lists mount types FileStores skips on Linux: kernel and
// container plumbing, not storage a user cares about.
var linuxPseudoFS = map[string]bool{
	"autofs": true, "binfmt_misc": true, "cgroup": true, "cgroup2": true,
	"debugfs": true, "devpts": true, "devtmpfs": true, "efivarfs": true,
	"fusectl": true, "mqueue": true, "proc": true, "pstore": true,
	"securityfs": true, "sysfs": true, "tmpfs": true, "overlay": true,
	"tracefs": true, "nsfs": true, "ramfs": true, "squashfs": true,
	"aufs": true, "snap": true,
}

type linuxOS struct {
	base
}

var _ OperatingSystem = (*linuxOS)(nil)

// NewLinux constructs the Linux operating system view. Family comes from the
// detected distribution ("Ubuntu", "Fedora", ...) when the probe can name it.
func NewLinux(ctx context.Context) (OperatingSystem, error) {
	b, err := newBase(ctx)
	if err != nil {
		return nil, err
	}
	if b.family == "" {
		b.family = "Linux"
	}
	b.manufacturer = "GNU/Linux"
	b.fsIgnore = linuxPseudoFS
	return &linuxOS{base: b}, nil
}
