package hardware

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"sort"
	"time"

	"github.com/denisbrodbeck/machineid"
	"github.com/jackpal/gateway"
	"github.com/jaypipes/ghw"
	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	psnet "github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/sensors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "hardware")

// loadSampleWindow is how long ProcessorLoad samples before reporting.
const loadSampleWindow = 200 * time.Millisecond

// base carries the collectors shared by all variants. ComputerSystem and
// Disks stay on the variants because their sources differ by platform; the
// helpers below do the heavy lifting for both camps.
type base struct {
	processor Processor
}

// newBase seeds processor identity once. CPUID answers instantly on
// x86/amd64 and reports zeros elsewhere, so gopsutil fills the gaps; the
// gopsutil probe is also the fallible part that makes construction worth
// retrying.
func newBase(ctx context.Context) (base, error) {
	proc, err := probeProcessor(ctx)
	if err != nil {
		return base{}, err
	}
	return base{processor: proc}, nil
}

func probeProcessor(ctx context.Context) (Processor, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return Processor{}, fmt.Errorf("probe processor: %w", err)
	}

	proc := Processor{
		Name:          cpuid.CPU.BrandName,
		Vendor:        cpuid.CPU.VendorString,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
	}
	if len(infos) > 0 {
		if proc.Name == "" {
			proc.Name = infos[0].ModelName
		}
		if proc.Vendor == "" {
			proc.Vendor = infos[0].VendorID
		}
		proc.MHz = infos[0].Mhz
	}
	if proc.PhysicalCores <= 0 {
		if n, err := cpu.CountsWithContext(ctx, false); err == nil {
			proc.PhysicalCores = n
		}
	}
	if proc.LogicalCores <= 0 {
		if n, err := cpu.CountsWithContext(ctx, true); err == nil {
			proc.LogicalCores = n
		}
	}
	return proc, nil
}

func (b *base) Processor() Processor {
	return b.processor
}

func (b *base) ProcessorLoad(ctx context.Context) ([]float64, error) {
	loads, err := cpu.PercentWithContext(ctx, loadSampleWindow, true)
	if err != nil {
		return nil, fmt.Errorf("sample processor load: %w", err)
	}
	return loads, nil
}

func (b *base) Memory(ctx context.Context) (*MemoryInfo, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("read virtual memory: %w", err)
	}

	info := &MemoryInfo{
		Total:       vm.Total,
		Available:   vm.Available,
		Used:        vm.Used,
		UsedPercent: vm.UsedPercent,
	}
	if swap, err := mem.SwapMemoryWithContext(ctx); err == nil {
		info.SwapTotal = swap.Total
		info.SwapUsed = swap.Used
		info.SwapUsedPercent = swap.UsedPercent
	} else {
		log.Debugf("swap omitted: %v", err)
	}
	return info, nil
}

func (b *base) NetworkInterfaces(ctx context.Context) ([]NetworkIF, error) {
	ifaces, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list network interfaces: %w", err)
	}

	counters := map[string]psnet.IOCountersStat{}
	if stats, err := psnet.IOCountersWithContext(ctx, true); err == nil {
		for _, s := range stats {
			counters[s.Name] = s
		}
	} else {
		log.Debugf("interface counters omitted: %v", err)
	}

	out := make([]NetworkIF, 0, len(ifaces))
	for _, iface := range ifaces {
		nic := NetworkIF{
			Name:  iface.Name,
			MAC:   iface.HardwareAddr,
			MTU:   iface.MTU,
			Flags: iface.Flags,
		}
		for _, addr := range iface.Addrs {
			nic.Addresses = append(nic.Addresses, addr.Addr)
		}
		if c, ok := counters[iface.Name]; ok {
			nic.BytesSent = c.BytesSent
			nic.BytesReceived = c.BytesRecv
		}
		out = append(out, nic)
	}
	return out, nil
}

func (b *base) DefaultGateway(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	gw, err := gateway.DiscoverGateway()
	if err != nil {
		return "", fmt.Errorf("discover default gateway: %w", err)
	}
	if gw == nil || gw.Equal(net.IPv4zero) {
		return "", errors.New("no default gateway")
	}
	return gw.String(), nil
}

func (b *base) Sensors(ctx context.Context) ([]Sensor, error) {
	stats, err := sensors.SensorsTemperaturesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("read temperature sensors: %w", err)
	}

	out := make([]Sensor, 0, len(stats))
	for _, s := range stats {
		out = append(out, Sensor{
			Key:         s.SensorKey,
			Temperature: s.Temperature,
			High:        s.High,
			Critical:    s.Critical,
		})
	}
	return out, nil
}

// ghwComputerSystem assembles the machine identity from DMI via ghw. Used by
// the Linux and Windows variants, where ghw has first-class support.
func (b *base) ghwComputerSystem(ctx context.Context) (*ComputerSystem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	product, err := ghw.Product()
	if err != nil {
		return nil, fmt.Errorf("probe DMI product: %w", err)
	}

	cs := &ComputerSystem{
		Manufacturer: dmiValue(product.Vendor),
		Model:        dmiValue(product.Name),
		Serial:       dmiValue(product.SerialNumber),
		HardwareUUID: dmiValue(product.UUID),
	}
	cs.Hostname, _ = os.Hostname()

	if board, err := ghw.Baseboard(); err == nil {
		cs.Baseboard = Baseboard{
			Manufacturer: dmiValue(board.Vendor),
			Product:      dmiValue(board.Product),
			Serial:       dmiValue(board.SerialNumber),
		}
	} else {
		log.Debugf("baseboard omitted: %v", err)
	}
	if bios, err := ghw.BIOS(); err == nil {
		cs.Firmware = Firmware{
			Vendor:  dmiValue(bios.Vendor),
			Version: dmiValue(bios.Version),
			Date:    dmiValue(bios.Date),
		}
	} else {
		log.Debugf("firmware omitted: %v", err)
	}
	if cs.HardwareUUID == "" {
		if id, err := machineid.ID(); err == nil {
			cs.HardwareUUID = id
		}
	}
	return cs, nil
}

// portableComputerSystem assembles what identity is available without DMI:
// hostname plus the OS-managed machine id. Variant constructors supply the
// vendor they know a priori (e.g. Apple for macOS).
func (b *base) portableComputerSystem(ctx context.Context, vendor string) (*ComputerSystem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("read hostname: %w", err)
	}

	cs := &ComputerSystem{
		Hostname:     hostname,
		Manufacturer: vendor,
	}
	if id, err := machineid.ID(); err == nil {
		cs.HardwareUUID = id
	} else {
		log.Debugf("machine id omitted: %v", err)
	}
	return cs, nil
}

// ghwDisks returns the block device inventory merged with IO counters.
func (b *base) ghwDisks(ctx context.Context) ([]Disk, error) {
	block, err := ghw.Block()
	if err != nil {
		return nil, fmt.Errorf("probe block devices: %w", err)
	}
	counters := ioCounters(ctx)

	out := make([]Disk, 0, len(block.Disks))
	for _, d := range block.Disks {
		entry := Disk{
			Name:      d.Name,
			Model:     dmiValue(d.Model),
			Serial:    dmiValue(d.SerialNumber),
			Type:      d.DriveType.String(),
			SizeBytes: d.SizeBytes,
			Removable: d.IsRemovable,
		}
		if c, ok := counters[d.Name]; ok {
			entry.ReadBytes = c.ReadBytes
			entry.WriteBytes = c.WriteBytes
		}
		out = append(out, entry)
	}
	return out, nil
}

// portableDisks builds the inventory from the kernel's IO accounting, which
// is the broadest portable source. Sizes are unknown through this path and
// stay suppressed.
func (b *base) portableDisks(ctx context.Context) ([]Disk, error) {
	stats, err := disk.IOCountersWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("read disk counters: %w", err)
	}

	out := make([]Disk, 0, len(stats))
	for name, c := range stats {
		out = append(out, Disk{
			Name:       name,
			Serial:     c.SerialNumber,
			ReadBytes:  c.ReadBytes,
			WriteBytes: c.WriteBytes,
		})
	}
	// Map iteration order would make successive documents disagree.
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func ioCounters(ctx context.Context) map[string]disk.IOCountersStat {
	stats, err := disk.IOCountersWithContext(ctx)
	if err != nil {
		log.Debugf("disk counters omitted: %v", err)
		return nil
	}
	return stats
}

// dmiValue filters ghw's "unknown" placeholder down to an absent value so
// projection suppresses it.
func dmiValue(s string) string {
	if s == "unknown" {
		return ""
	}
	return s
}
