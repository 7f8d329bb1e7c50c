package software

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redjax/sysprobe/pkg/sysprobe/report"
)

func TestBitnessFromArch(t *testing.T) {
	cases := []struct {
		arch string
		want int
	}{
		{"x86_64", 64},
		{"amd64", 64},
		{"aarch64", 64},
		{"arm64", 64},
		{"s390x", 64},
		{"riscv64", 64},
		{"i686", 32},
		{"i386", 32},
		{"armv7l", 32},
		{"x86", 32},
		{"", strconv.IntSize},
		{"weird", strconv.IntSize},
	}

	for _, tc := range cases {
		t.Run(tc.arch, func(t *testing.T) {
			assert.Equal(t, tc.want, bitnessFromArch(tc.arch))
		})
	}
}

func TestDarwinCodeName(t *testing.T) {
	cases := []struct {
		version string
		want    string
	}{
		{"10.15.7", "Catalina"},
		{"11.6", "Big Sur"},
		{"13.2.1", "Ventura"},
		{"14.0", "Sonoma"},
		{"15.1", "Sequoia"},
		{"26.0", "Tahoe"},
		{"9.9", ""},
		{"", ""},
	}

	for _, tc := range cases {
		t.Run(tc.version, func(t *testing.T) {
			assert.Equal(t, tc.want, darwinCodeName(tc.version))
		})
	}
}

func TestVersionInfoDocument(t *testing.T) {
	full := VersionInfo{Version: "24.04", CodeName: "noble", Build: "6.8.0"}
	doc := full.ToDocument()
	assert.Equal(t, 3, doc.Len())

	v, _ := doc.Get("version")
	assert.Equal(t, "24.04", v)

	empty := VersionInfo{}
	assert.Equal(t, 0, empty.ToDocument().Len(), "an empty release renders empty and gets suppressed upstream")

	partial := VersionInfo{Version: "13.2"}
	doc = partial.ToDocument()
	assert.True(t, doc.Has("version"))
	assert.False(t, doc.Has("codeName"))
	assert.False(t, doc.Has("build"))
}

func TestVersionInfoString(t *testing.T) {
	assert.Equal(t, "14.1 (Sonoma) build 23B74", VersionInfo{Version: "14.1", CodeName: "Sonoma", Build: "23B74"}.String())
	assert.Equal(t, "12.4", VersionInfo{Version: "12.4"}.String())
}

func TestFileStoreDocumentShape(t *testing.T) {
	fs := FileStore{
		Name:        "/dev/sda1",
		Mount:       "/",
		Type:        "ext4",
		Total:       1024,
		Used:        512,
		Free:        512,
		UsedPercent: 50,
	}

	doc := fs.ToDocument()
	assert.True(t, doc.Has("name"))
	assert.True(t, doc.Has("mount"))
	assert.True(t, doc.Has("usedPercent"))

	total, _ := doc.Get("total")
	assert.Equal(t, uint64(1024), total)
}

func TestProcessDocumentShape(t *testing.T) {
	p := Process{PID: 1, Name: "init", CPUPercent: 0, MemoryPercent: 0.5, ResidentBytes: 4096}

	doc := p.ToDocument()
	assert.True(t, doc.Has("pid"))
	assert.True(t, doc.Has("name"))
	assert.True(t, doc.Has("cpuPercent"), "a zero CPU reading is data, not absence")
	assert.False(t, doc.Has("user"), "an unknown user is suppressed")
}

func TestVariantIdentity(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name         string
		construct    func(context.Context) (OperatingSystem, error)
		manufacturer string
	}{
		{"windows", NewWindows, "Microsoft"},
		{"linux", NewLinux, "GNU/Linux"},
		{"darwin", NewMacOS, "Apple"},
		{"solaris", NewSolaris, "Oracle"},
		{"freebsd", NewFreeBSD, "The FreeBSD Project"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			os, err := tc.construct(ctx)
			require.NoError(t, err)

			assert.Equal(t, tc.manufacturer, os.Manufacturer())
			assert.NotEmpty(t, os.Family())
			assert.Contains(t, []int{32, 64}, os.Bitness())
		})
	}
}

func TestDocumentGatesGatheredGroups(t *testing.T) {
	ctx := context.Background()
	os, err := NewLinux(ctx)
	require.NoError(t, err)

	// Identity renders unconditionally, gathered groups stay off.
	doc := os.ToDocument(ctx, report.Config{})
	assert.True(t, doc.Has("family"))
	assert.True(t, doc.Has("manufacturer"))
	assert.True(t, doc.Has("bitness"))
	assert.False(t, doc.Has("version"))
	assert.False(t, doc.Has("fileStores"))
	assert.False(t, doc.Has("processes"))

	doc = os.ToDocument(ctx, report.Enable(report.KeyOSProcesses))
	assert.True(t, doc.Has("processes"), "a live host always has processes")
	assert.True(t, doc.Has("processCount"))
	assert.False(t, doc.Has("fileStores"), "siblings stay excluded")
}

func TestProcessesHonorsLimit(t *testing.T) {
	ctx := context.Background()
	os, err := NewLinux(ctx)
	require.NoError(t, err)

	procs, err := os.Processes(ctx, 3)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(procs), 3)

	for i := 1; i < len(procs); i++ {
		assert.GreaterOrEqual(t, procs[i-1].CPUPercent, procs[i].CPUPercent, "ordered by CPU descending")
	}
}
