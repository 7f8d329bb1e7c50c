package software

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"
	"unicode"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/sirupsen/logrus"

	"github.com/redjax/sysprobe/pkg/sysprobe/report"
)

var log = logrus.WithField("component", "software")

// processListLimit caps the process list emitted during projection. The
// Processes operation itself takes an explicit limit.
const processListLimit = 10

// base is the gopsutil-backed collector every variant embeds. Variant
// constructors fill in the identity fields and the pseudo filesystem ignore
// list; the gather operations are shared because gopsutil already routes
// them to the right native source.
type base struct {
	family       string
	manufacturer string
	version      VersionInfo
	bitness      int
	elevated     bool

	// Filesystem types FileStores skips, e.g. proc or tmpfs on Linux.
	fsIgnore map[string]bool
}

// newBase probes host identity once. This is the expensive, fallible part of
// variant construction; the facade retries it on the next call if it fails.
func newBase(ctx context.Context) (base, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return base{}, fmt.Errorf("probe host identity: %w", err)
	}

	return base{
		family: capitalize(info.Platform),
		version: VersionInfo{
			Version: info.PlatformVersion,
			Build:   info.KernelVersion,
		},
		bitness:  bitnessFromArch(info.KernelArch),
		elevated: currentUserElevated(),
	}, nil
}

func (b *base) Family() string       { return b.family }
func (b *base) Manufacturer() string { return b.manufacturer }
func (b *base) Version() VersionInfo { return b.version }
func (b *base) Bitness() int         { return b.bitness }
func (b *base) IsElevated() bool     { return b.elevated }

func (b *base) BootTime(ctx context.Context) (time.Time, error) {
	secs, err := host.BootTimeWithContext(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("read boot time: %w", err)
	}
	return time.Unix(int64(secs), 0), nil
}

func (b *base) Uptime(ctx context.Context) (time.Duration, error) {
	secs, err := host.UptimeWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("read uptime: %w", err)
	}
	return time.Duration(secs) * time.Second, nil
}

func (b *base) ProcessCount(ctx context.Context) (int, error) {
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("list pids: %w", err)
	}
	return len(pids), nil
}

func (b *base) ThreadCount(ctx context.Context) (int, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("list processes: %w", err)
	}

	total := 0
	for _, p := range procs {
		n, err := p.NumThreadsWithContext(ctx)
		if err != nil {
			// Processes exit while we iterate; skip the ones that vanished.
			continue
		}
		total += int(n)
	}
	return total, nil
}

func (b *base) Processes(ctx context.Context, limit int) ([]Process, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	out := make([]Process, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		entry := Process{PID: p.Pid, Name: name}

		if user, err := p.UsernameWithContext(ctx); err == nil {
			entry.User = user
		}
		if pct, err := p.CPUPercentWithContext(ctx); err == nil {
			entry.CPUPercent = pct
		}
		if pct, err := p.MemoryPercentWithContext(ctx); err == nil {
			entry.MemoryPercent = pct
		}
		if mi, err := p.MemoryInfoWithContext(ctx); err == nil && mi != nil {
			entry.ResidentBytes = mi.RSS
		}
		out = append(out, entry)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CPUPercent > out[j].CPUPercent })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (b *base) FileStores(ctx context.Context) ([]FileStore, error) {
	partitions, err := disk.PartitionsWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list partitions: %w", err)
	}

	var stores []FileStore
	for _, part := range partitions {
		if b.fsIgnore[part.Fstype] {
			continue
		}
		usage, err := disk.UsageWithContext(ctx, part.Mountpoint)
		if err != nil {
			// Unreadable mounts (permissions, stale NFS) are skipped, not fatal.
			continue
		}
		stores = append(stores, FileStore{
			Name:        part.Device,
			Mount:       part.Mountpoint,
			Type:        part.Fstype,
			Total:       usage.Total,
			Used:        usage.Used,
			Free:        usage.Free,
			UsedPercent: usage.UsedPercent,
		})
	}
	return stores, nil
}

// ToDocument renders identity fields unconditionally (they were paid for at
// construction) and consults cfg for each gathered group. A group whose
// gather fails is omitted; the failure is logged at debug level so it can be
// chased without polluting the document.
func (b *base) ToDocument(ctx context.Context, cfg report.Config) *report.Document {
	doc := report.NewDocument().
		Add("family", b.family).
		Add("manufacturer", b.manufacturer).
		Add("bitness", b.bitness).
		Add("elevated", b.elevated)

	if t, err := b.BootTime(ctx); err == nil {
		doc.Add("bootTime", t.Format(time.RFC3339))
	} else {
		log.Debugf("boot time omitted: %v", err)
	}
	if d, err := b.Uptime(ctx); err == nil {
		doc.Add("uptime", d.String())
	} else {
		log.Debugf("uptime omitted: %v", err)
	}

	if cfg.Bool(report.KeyOSVersion) {
		doc.AddDocument("version", b.version.ToDocument())
	}

	if cfg.Bool(report.KeyOSProcesses) {
		if n, err := b.ProcessCount(ctx); err == nil {
			doc.Add("processCount", n)
		} else {
			log.Debugf("process count omitted: %v", err)
		}
		if n, err := b.ThreadCount(ctx); err == nil {
			doc.Add("threadCount", n)
		} else {
			log.Debugf("thread count omitted: %v", err)
		}
		if procs, err := b.Processes(ctx, processListLimit); err == nil {
			doc.Add("processes", processDocuments(procs))
		} else {
			log.Debugf("process list omitted: %v", err)
		}
	}

	if cfg.Bool(report.KeyOSFileStores) {
		if stores, err := b.FileStores(ctx); err == nil {
			doc.Add("fileStores", fileStoreDocuments(stores))
		} else {
			log.Debugf("file stores omitted: %v", err)
		}
	}

	return doc
}

// bitnessFromArch maps a kernel architecture string to a word size, falling
// back to the word size this binary was compiled for.
func bitnessFromArch(arch string) int {
	switch arch {
	case "x86_64", "amd64", "arm64", "aarch64", "ppc64", "ppc64le", "s390x", "riscv64", "mips64", "loong64":
		return 64
	case "x86", "i386", "i486", "i586", "i686", "arm", "armv6l", "armv7l", "mips":
		return 32
	}
	return strconv.IntSize
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
