// Package hardware defines the hardware capability of the sysprobe facade:
// one HardwareAbstractionLayer contract with a concrete implementation per
// supported platform. Linux and Windows enrich their answers with DMI data
// through ghw; the remaining platforms assemble the same views from portable
// probes. Callers never see the difference.
package hardware

import (
	"context"

	"github.com/redjax/sysprobe/pkg/sysprobe/report"
)

// HardwareAbstractionLayer is the hardware view of the host. Processor
// identity is probed once at construction; every other operation gathers
// fresh data per call and honors the supplied context.
type HardwareAbstractionLayer interface {
	// ComputerSystem describes the machine itself: manufacturer, model,
	// serial number, firmware and baseboard.
	ComputerSystem(ctx context.Context) (*ComputerSystem, error)

	// Processor returns the identity probed at construction.
	Processor() Processor

	// ProcessorLoad samples per-core load and returns one percentage per
	// logical core.
	ProcessorLoad(ctx context.Context) ([]float64, error)

	// Memory returns physical and swap usage.
	Memory(ctx context.Context) (*MemoryInfo, error)

	// Disks returns the physical disk inventory with IO counters.
	Disks(ctx context.Context) ([]Disk, error)

	// NetworkInterfaces returns the host's interfaces with traffic counters.
	NetworkInterfaces(ctx context.Context) ([]NetworkIF, error)

	// DefaultGateway returns the IPv4 default gateway, or an error when the
	// host has none that can be discovered.
	DefaultGateway(ctx context.Context) (string, error)

	// Sensors returns temperature sensor readings, which many hosts
	// (virtual machines in particular) do not expose at all.
	Sensors(ctx context.Context) ([]Sensor, error)

	// ToDocument projects the view under cfg's inclusion keys. Gather
	// failures become omitted fields, never errors.
	ToDocument(ctx context.Context, cfg report.Config) *report.Document
}

// ComputerSystem identifies the machine. Unknown fields stay empty and are
// suppressed during projection.
type ComputerSystem struct {
	Hostname     string
	Manufacturer string
	Model        string
	Serial       string
	HardwareUUID string
	Firmware     Firmware
	Baseboard    Baseboard
}

// Firmware describes the BIOS/UEFI image.
type Firmware struct {
	Vendor  string
	Version string
	Date    string
}

// Baseboard describes the motherboard.
type Baseboard struct {
	Manufacturer string
	Product      string
	Serial       string
}

func (c *ComputerSystem) ToDocument() *report.Document {
	firmware := report.NewDocument().
		Add("vendor", c.Firmware.Vendor).
		Add("version", c.Firmware.Version).
		Add("date", c.Firmware.Date)
	baseboard := report.NewDocument().
		Add("manufacturer", c.Baseboard.Manufacturer).
		Add("product", c.Baseboard.Product).
		Add("serial", c.Baseboard.Serial)

	return report.NewDocument().
		Add("hostname", c.Hostname).
		Add("manufacturer", c.Manufacturer).
		Add("model", c.Model).
		Add("serial", c.Serial).
		Add("hardwareUUID", c.HardwareUUID).
		AddDocument("firmware", firmware).
		AddDocument("baseboard", baseboard)
}

// Processor is the CPU identity, fixed for the life of the process.
type Processor struct {
	Name          string
	Vendor        string
	PhysicalCores int
	LogicalCores  int
	MHz           float64
}

func (p Processor) ToDocument() *report.Document {
	doc := report.NewDocument().
		Add("name", p.Name).
		Add("vendor", p.Vendor)
	if p.PhysicalCores > 0 {
		doc.Add("physicalCores", p.PhysicalCores)
	}
	if p.LogicalCores > 0 {
		doc.Add("logicalCores", p.LogicalCores)
	}
	if p.MHz > 0 {
		doc.Add("mhz", p.MHz)
	}
	return doc
}

// MemoryInfo is a point-in-time view of physical memory and swap.
type MemoryInfo struct {
	Total           uint64
	Available       uint64
	Used            uint64
	UsedPercent     float64
	SwapTotal       uint64
	SwapUsed        uint64
	SwapUsedPercent float64
}

func (m *MemoryInfo) ToDocument() *report.Document {
	doc := report.NewDocument().
		Add("total", m.Total).
		Add("available", m.Available).
		Add("used", m.Used).
		Add("usedPercent", m.UsedPercent)
	if m.SwapTotal > 0 {
		doc.Add("swapTotal", m.SwapTotal).
			Add("swapUsed", m.SwapUsed).
			Add("swapUsedPercent", m.SwapUsedPercent)
	}
	return doc
}

// Disk is one physical disk (or, on platforms without an inventory source,
// one device backing a mounted partition). A zero SizeBytes means the size
// is unknown and the field is suppressed.
type Disk struct {
	Name       string
	Model      string
	Serial     string
	Type       string
	SizeBytes  uint64
	Removable  bool
	ReadBytes  uint64
	WriteBytes uint64
}

func (d Disk) ToDocument() *report.Document {
	doc := report.NewDocument().
		Add("name", d.Name).
		Add("model", d.Model).
		Add("serial", d.Serial).
		Add("type", d.Type)
	if d.SizeBytes > 0 {
		doc.Add("size", d.SizeBytes)
	}
	if d.Removable {
		doc.Add("removable", true)
	}
	if d.ReadBytes > 0 {
		doc.Add("readBytes", d.ReadBytes)
	}
	if d.WriteBytes > 0 {
		doc.Add("writeBytes", d.WriteBytes)
	}
	return doc
}

// NetworkIF is one network interface with traffic counters at gather time.
type NetworkIF struct {
	Name          string
	MAC           string
	MTU           int
	Flags         []string
	Addresses     []string
	BytesSent     uint64
	BytesReceived uint64
}

func (n NetworkIF) ToDocument() *report.Document {
	doc := report.NewDocument().
		Add("name", n.Name).
		Add("mac", n.MAC)
	if n.MTU > 0 {
		doc.Add("mtu", n.MTU)
	}
	doc.Add("flags", n.Flags).
		Add("addresses", n.Addresses)
	if n.BytesSent > 0 {
		doc.Add("bytesSent", n.BytesSent)
	}
	if n.BytesReceived > 0 {
		doc.Add("bytesReceived", n.BytesReceived)
	}
	return doc
}

// Sensor is one temperature reading in degrees Celsius. High and Critical
// thresholds are suppressed when the sensor does not report them.
type Sensor struct {
	Key         string
	Temperature float64
	High        float64
	Critical    float64
}

func (s Sensor) ToDocument() *report.Document {
	doc := report.NewDocument().
		Add("sensor", s.Key).
		Add("temperature", s.Temperature)
	if s.High > 0 {
		doc.Add("high", s.High)
	}
	if s.Critical > 0 {
		doc.Add("critical", s.Critical)
	}
	return doc
}

// renderHardware projects any HAL implementation under cfg. It dispatches
// through the interface so variants that specialize ComputerSystem or Disks
// feed their own answers into the document. Every group is gated by its key;
// a group whose gather fails is omitted and logged at debug level.
func renderHardware(ctx context.Context, cfg report.Config, h HardwareAbstractionLayer) *report.Document {
	doc := report.NewDocument()

	if cfg.Bool(report.KeyHWComputerSystem) {
		if cs, err := h.ComputerSystem(ctx); err == nil {
			doc.AddDocument("computerSystem", cs.ToDocument())
		} else {
			log.Debugf("computer system omitted: %v", err)
		}
	}

	if cfg.Bool(report.KeyHWProcessor) {
		proc := h.Processor().ToDocument()
		if loads, err := h.ProcessorLoad(ctx); err == nil {
			proc.Add("loadPercent", averageLoad(loads)).
				Add("loadPercentPerCore", loads)
		} else {
			log.Debugf("processor load omitted: %v", err)
		}
		doc.AddDocument("processor", proc)
	}

	if cfg.Bool(report.KeyHWMemory) {
		if mem, err := h.Memory(ctx); err == nil {
			doc.AddDocument("memory", mem.ToDocument())
		} else {
			log.Debugf("memory omitted: %v", err)
		}
	}

	if cfg.Bool(report.KeyHWDisks) {
		if disks, err := h.Disks(ctx); err == nil {
			docs := make([]*report.Document, 0, len(disks))
			for _, d := range disks {
				docs = append(docs, d.ToDocument())
			}
			doc.Add("disks", docs)
		} else {
			log.Debugf("disks omitted: %v", err)
		}
	}

	if cfg.Bool(report.KeyHWNetworkInterface) {
		network := report.NewDocument()
		if ifs, err := h.NetworkInterfaces(ctx); err == nil {
			docs := make([]*report.Document, 0, len(ifs))
			for _, nic := range ifs {
				docs = append(docs, nic.ToDocument())
			}
			network.Add("interfaces", docs)
		} else {
			log.Debugf("network interfaces omitted: %v", err)
		}
		if gw, err := h.DefaultGateway(ctx); err == nil {
			network.Add("defaultGateway", gw)
		} else {
			log.Debugf("default gateway omitted: %v", err)
		}
		doc.AddDocument("network", network)
	}

	if cfg.Bool(report.KeyHWSensors) {
		if sensors, err := h.Sensors(ctx); err == nil {
			docs := make([]*report.Document, 0, len(sensors))
			for _, s := range sensors {
				docs = append(docs, s.ToDocument())
			}
			doc.Add("sensors", docs)
		} else {
			log.Debugf("sensors omitted: %v", err)
		}
	}

	return doc
}

func averageLoad(loads []float64) float64 {
	if len(loads) == 0 {
		return 0
	}
	sum := 0.0
	for _, l := range loads {
		sum += l
	}
	return sum / float64(len(loads))
}
