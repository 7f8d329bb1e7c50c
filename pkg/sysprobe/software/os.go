// Package software defines the operating system capability of the sysprobe
// facade: one OperatingSystem contract with a concrete implementation per
// supported platform. Variants are selected by the facade's dispatch table,
// never by callers; nothing outside the constructors should depend on a
// concrete variant type.
package software

import (
	"context"
	"time"

	"github.com/redjax/sysprobe/pkg/sysprobe/report"
)

// OperatingSystem is the software view of the host. Identity accessors
// (Family, Manufacturer, Version, Bitness, IsElevated) answer from state
// probed once at construction; the remaining operations gather fresh data on
// every call and honor the supplied context.
type OperatingSystem interface {
	// Family names the OS family, e.g. "Windows", "Ubuntu", "macOS".
	Family() string

	// Manufacturer names who publishes the OS, e.g. "Microsoft".
	Manufacturer() string

	// Version describes the installed release.
	Version() VersionInfo

	// Bitness is the kernel word size in bits, 32 or 64.
	Bitness() int

	// IsElevated reports whether the current process runs with
	// administrative rights (root on unix, elevated token on Windows).
	IsElevated() bool

	// BootTime returns the instant the host booted.
	BootTime(ctx context.Context) (time.Time, error)

	// Uptime returns how long the host has been up.
	Uptime(ctx context.Context) (time.Duration, error)

	// ProcessCount returns the number of live processes.
	ProcessCount(ctx context.Context) (int, error)

	// ThreadCount returns the number of live threads across all processes.
	ThreadCount(ctx context.Context) (int, error)

	// Processes returns the top limit processes ordered by CPU usage,
	// or every process when limit <= 0.
	Processes(ctx context.Context, limit int) ([]Process, error)

	// FileStores returns mounted filesystems with usage, skipping the
	// platform's pseudo filesystems.
	FileStores(ctx context.Context) ([]FileStore, error)

	// ToDocument projects the view under cfg's inclusion keys. Gather
	// failures become omitted fields, never errors.
	ToDocument(ctx context.Context, cfg report.Config) *report.Document
}

// VersionInfo describes an installed OS release. Fields a platform cannot
// determine stay empty and are suppressed during projection.
type VersionInfo struct {
	Version  string
	CodeName string
	Build    string
}

func (v VersionInfo) String() string {
	s := v.Version
	if v.CodeName != "" {
		s += " (" + v.CodeName + ")"
	}
	if v.Build != "" {
		s += " build " + v.Build
	}
	return s
}

// ToDocument renders the release as a document; a fully empty VersionInfo
// renders empty and is dropped by the parent.
func (v VersionInfo) ToDocument() *report.Document {
	return report.NewDocument().
		Add("version", v.Version).
		Add("codeName", v.CodeName).
		Add("build", v.Build)
}

// FileStore is one mounted filesystem with its usage at gather time.
type FileStore struct {
	Name        string
	Mount       string
	Type        string
	Total       uint64
	Used        uint64
	Free        uint64
	UsedPercent float64
}

func (f FileStore) ToDocument() *report.Document {
	return report.NewDocument().
		Add("name", f.Name).
		Add("mount", f.Mount).
		Add("type", f.Type).
		Add("total", f.Total).
		Add("used", f.Used).
		Add("free", f.Free).
		Add("usedPercent", f.UsedPercent)
}

// Process is a point-in-time view of one live process.
type Process struct {
	PID           int32
	Name          string
	User          string
	CPUPercent    float64
	MemoryPercent float32
	ResidentBytes uint64
}

func (p Process) ToDocument() *report.Document {
	return report.NewDocument().
		Add("pid", p.PID).
		Add("name", p.Name).
		Add("user", p.User).
		Add("cpuPercent", p.CPUPercent).
		Add("memoryPercent", p.MemoryPercent).
		Add("residentBytes", p.ResidentBytes)
}

func fileStoreDocuments(stores []FileStore) []*report.Document {
	docs := make([]*report.Document, 0, len(stores))
	for _, fs := range stores {
		docs = append(docs, fs.ToDocument())
	}
	return docs
}

func processDocuments(procs []Process) []*report.Document {
	docs := make([]*report.Document, 0, len(procs))
	for _, p := range procs {
		docs = append(docs, p.ToDocument())
	}
	return docs
}
