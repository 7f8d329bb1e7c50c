package hardware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redjax/sysprobe/pkg/sysprobe/report"
)

func TestComputerSystemDocument(t *testing.T) {
	cs := &ComputerSystem{
		Hostname:     "build-01",
		Manufacturer: "LENOVO",
		Model:        "20XW",
		Serial:       "PF3XXXXX",
		HardwareUUID: "d2f1c7a0",
		Firmware:     Firmware{Vendor: "LENOVO", Version: "N32ET89W", Date: "06/13/2023"},
		Baseboard:    Baseboard{Manufacturer: "LENOVO", Product: "20XW", Serial: "L1HFXXXXX"},
	}

	doc := cs.ToDocument()
	assert.True(t, doc.Has("hostname"))
	assert.True(t, doc.Has("firmware"))
	assert.True(t, doc.Has("baseboard"))

	fw, ok := doc.Get("firmware")
	require.True(t, ok)
	assert.True(t, fw.(*report.Document).Has("version"))
}

func TestComputerSystemDocumentSuppressesUnknowns(t *testing.T) {
	cs := &ComputerSystem{Hostname: "vm-7734"}

	doc := cs.ToDocument()
	assert.Equal(t, 1, doc.Len())
	assert.False(t, doc.Has("firmware"), "an all-empty firmware block is absent")
	assert.False(t, doc.Has("baseboard"))
	assert.False(t, doc.Has("serial"))
}

func TestProcessorDocument(t *testing.T) {
	p := Processor{Name: "AMD Ryzen 7 5800X", Vendor: "AuthenticAMD", PhysicalCores: 8, LogicalCores: 16, MHz: 3800}

	doc := p.ToDocument()
	assert.True(t, doc.Has("physicalCores"))
	assert.True(t, doc.Has("mhz"))

	unknown := Processor{Name: "QEMU Virtual CPU"}
	doc = unknown.ToDocument()
	assert.True(t, doc.Has("name"))
	assert.False(t, doc.Has("physicalCores"), "a zero core count means the probe failed, not zero cores")
	assert.False(t, doc.Has("mhz"))
}

func TestMemoryDocumentSwapGate(t *testing.T) {
	noSwap := &MemoryInfo{Total: 1 << 30, Available: 1 << 29, Used: 1 << 29, UsedPercent: 50}
	doc := noSwap.ToDocument()
	assert.True(t, doc.Has("total"))
	assert.False(t, doc.Has("swapTotal"), "hosts without swap do not report zeroed swap fields")

	withSwap := &MemoryInfo{Total: 1 << 30, SwapTotal: 1 << 28, SwapUsed: 0, SwapUsedPercent: 0}
	doc = withSwap.ToDocument()
	assert.True(t, doc.Has("swapTotal"))
	assert.True(t, doc.Has("swapUsed"), "unused swap is still data once swap exists")
}

func TestDiskDocumentSuppressesUnknownSize(t *testing.T) {
	d := Disk{Name: "nvme0n1", Model: "Samsung SSD 980", SizeBytes: 0, ReadBytes: 1024}

	doc := d.ToDocument()
	assert.False(t, doc.Has("size"))
	assert.False(t, doc.Has("removable"))
	assert.True(t, doc.Has("readBytes"))

	sized := Disk{Name: "sda", SizeBytes: 512 << 30, Removable: true}
	doc = sized.ToDocument()
	size, _ := doc.Get("size")
	assert.Equal(t, uint64(512<<30), size)
	assert.True(t, doc.Has("removable"))
}

func TestNetworkIFDocument(t *testing.T) {
	nic := NetworkIF{
		Name:          "eth0",
		MAC:           "52:54:00:12:34:56",
		MTU:           1500,
		Flags:         []string{"up", "broadcast"},
		Addresses:     []string{"192.168.1.10/24"},
		BytesSent:     2048,
		BytesReceived: 4096,
	}

	doc := nic.ToDocument()
	assert.True(t, doc.Has("mtu"))
	assert.True(t, doc.Has("flags"))
	assert.True(t, doc.Has("bytesReceived"))

	bare := NetworkIF{Name: "lo"}
	doc = bare.ToDocument()
	assert.True(t, doc.Has("name"))
	assert.False(t, doc.Has("mac"))
	assert.False(t, doc.Has("flags"))
	assert.False(t, doc.Has("bytesSent"))
}

func TestSensorDocumentThresholdGate(t *testing.T) {
	s := Sensor{Key: "coretemp_core_0", Temperature: 42.5}
	doc := s.ToDocument()
	assert.True(t, doc.Has("temperature"))
	assert.False(t, doc.Has("high"))
	assert.False(t, doc.Has("critical"))

	s = Sensor{Key: "coretemp_core_0", Temperature: 42.5, High: 80, Critical: 100}
	doc = s.ToDocument()
	assert.True(t, doc.Has("high"))
	assert.True(t, doc.Has("critical"))
}

func TestAverageLoad(t *testing.T) {
	assert.Equal(t, 0.0, averageLoad(nil))
	assert.Equal(t, 50.0, averageLoad([]float64{25, 75}))
	assert.InDelta(t, 10.0, averageLoad([]float64{10, 10, 10, 10}), 0.0001)
}

// stubHAL makes renderHardware deterministic: every group answers from canned
// data, and any group listed in fail answers with an error instead.
type stubHAL struct {
	fail map[string]bool
}

var _ HardwareAbstractionLayer = (*stubHAL)(nil)

func (s *stubHAL) ComputerSystem(ctx context.Context) (*ComputerSystem, error) {
	if s.fail["computerSystem"] {
		return nil, errors.New("dmi unavailable")
	}
	return &ComputerSystem{Hostname: "stub", Manufacturer: "ACME"}, nil
}

func (s *stubHAL) Processor() Processor {
	return Processor{Name: "Stub CPU", LogicalCores: 4}
}

func (s *stubHAL) ProcessorLoad(ctx context.Context) ([]float64, error) {
	if s.fail["load"] {
		return nil, errors.New("no counters")
	}
	return []float64{10, 20, 30, 40}, nil
}

func (s *stubHAL) Memory(ctx context.Context) (*MemoryInfo, error) {
	if s.fail["memory"] {
		return nil, errors.New("no meminfo")
	}
	return &MemoryInfo{Total: 1 << 30, Available: 1 << 29, Used: 1 << 29, UsedPercent: 50}, nil
}

func (s *stubHAL) Disks(ctx context.Context) ([]Disk, error) {
	if s.fail["disks"] {
		return nil, errors.New("no block devices")
	}
	return []Disk{{Name: "sda", SizeBytes: 1 << 30}}, nil
}

func (s *stubHAL) NetworkInterfaces(ctx context.Context) ([]NetworkIF, error) {
	if s.fail["network"] {
		return nil, errors.New("no interfaces")
	}
	return []NetworkIF{{Name: "eth0", MAC: "52:54:00:12:34:56"}}, nil
}

func (s *stubHAL) DefaultGateway(ctx context.Context) (string, error) {
	if s.fail["gateway"] {
		return "", errors.New("no route")
	}
	return "192.168.1.1", nil
}

func (s *stubHAL) Sensors(ctx context.Context) ([]Sensor, error) {
	if s.fail["sensors"] {
		return nil, errors.New("no thermal zone")
	}
	return []Sensor{{Key: "cpu", Temperature: 40}}, nil
}

func (s *stubHAL) ToDocument(ctx context.Context, cfg report.Config) *report.Document {
	return renderHardware(ctx, cfg, s)
}

func TestRenderHardwareEmptyConfigRendersNothing(t *testing.T) {
	h := &stubHAL{}
	doc := h.ToDocument(context.Background(), report.Config{})
	assert.Equal(t, 0, doc.Len())
}

func TestRenderHardwareGatesEveryGroup(t *testing.T) {
	ctx := context.Background()
	h := &stubHAL{}

	cases := []struct {
		key   string
		field string
	}{
		{report.KeyHWComputerSystem, "computerSystem"},
		{report.KeyHWProcessor, "processor"},
		{report.KeyHWMemory, "memory"},
		{report.KeyHWDisks, "disks"},
		{report.KeyHWNetworkInterface, "network"},
		{report.KeyHWSensors, "sensors"},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			doc := h.ToDocument(ctx, report.Enable(tc.key))
			assert.Equal(t, 1, doc.Len(), "only the enabled group renders")
			assert.True(t, doc.Has(tc.field))
		})
	}
}

func TestRenderHardwareOmitsFailedGroups(t *testing.T) {
	ctx := context.Background()
	cfg := report.Enable(report.Keys()...)

	h := &stubHAL{fail: map[string]bool{"memory": true, "sensors": true}}
	doc := h.ToDocument(ctx, cfg)
	assert.False(t, doc.Has("memory"), "a failed gather is an absent field, not an error")
	assert.False(t, doc.Has("sensors"))
	assert.True(t, doc.Has("disks"), "healthy groups still render")
}

func TestRenderHardwareProcessorLoadDegradesGracefully(t *testing.T) {
	ctx := context.Background()
	cfg := report.Enable(report.KeyHWProcessor)

	h := &stubHAL{}
	doc := h.ToDocument(ctx, cfg)
	proc, ok := doc.Get("processor")
	require.True(t, ok)
	assert.True(t, proc.(*report.Document).Has("loadPercent"))

	avg, _ := proc.(*report.Document).Get("loadPercent")
	assert.InDelta(t, 25.0, avg.(float64), 0.0001)

	h = &stubHAL{fail: map[string]bool{"load": true}}
	doc = h.ToDocument(ctx, cfg)
	proc, ok = doc.Get("processor")
	require.True(t, ok, "identity still renders when sampling fails")
	assert.False(t, proc.(*report.Document).Has("loadPercent"))
}

func TestRenderHardwareNetworkPartialFailure(t *testing.T) {
	ctx := context.Background()
	cfg := report.Enable(report.KeyHWNetworkInterface)

	h := &stubHAL{fail: map[string]bool{"gateway": true}}
	doc := h.ToDocument(ctx, cfg)
	network, ok := doc.Get("network")
	require.True(t, ok)
	assert.True(t, network.(*report.Document).Has("interfaces"))
	assert.False(t, network.(*report.Document).Has("defaultGateway"))
}

func TestVariantConstructors(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name      string
		construct func(context.Context) (HardwareAbstractionLayer, error)
	}{
		{"windows", NewWindows},
		{"linux", NewLinux},
		{"darwin", NewMacOS},
		{"solaris", NewSolaris},
		{"freebsd", NewFreeBSD},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, err := tc.construct(ctx)
			require.NoError(t, err)

			proc := h.Processor()
			assert.Greater(t, proc.LogicalCores, 0)

			mem, err := h.Memory(ctx)
			require.NoError(t, err)
			assert.Greater(t, mem.Total, uint64(0))
		})
	}
}

func TestNetworkInterfacesOnLiveHost(t *testing.T) {
	ctx := context.Background()
	h, err := NewLinux(ctx)
	require.NoError(t, err)

	ifs, err := h.NetworkInterfaces(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, ifs, "even a container has a loopback interface")

	for _, nic := range ifs {
		assert.NotEmpty(t, nic.Name)
	}
}
