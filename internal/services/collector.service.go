package services

import (
	"log"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/hyperpolymath/ambientops/internal/models"
)

const collectorSource = "system_collector"

const gb = 1024 * 1024 * 1024

// SystemCollector samples the host's disk, memory and cpu usage into the
// metrics store on a fixed interval, feeding the tracked categories.
type SystemCollector struct {
	store    *MetricsStore
	interval time.Duration
	diskPath string

	mu      sync.Mutex
	running bool
	done    chan struct{}
}

func NewSystemCollector(store *MetricsStore, interval time.Duration, diskPath string) *SystemCollector {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if diskPath == "" {
		diskPath = "/"
	}
	return &SystemCollector{store: store, interval: interval, diskPath: diskPath}
}

// Start launches the sampling loop. Starting twice is a no-op.
func (c *SystemCollector) Start() {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.done = make(chan struct{})
	done := c.done
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		c.collectOnce()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				c.collectOnce()
			}
		}
	}()

	log.Printf("[COLLECTOR] started (interval: %v, disk: %s)", c.interval, c.diskPath)
}

// Stop halts the sampling loop.
func (c *SystemCollector) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	c.running = false
	close(c.done)
	log.Println("[COLLECTOR] stopped")
}

// collectOnce probes the system and records one sample per tracked metric.
// The probes can take hundreds of milliseconds, so they run before any
// store write rather than under a shared lock.
func (c *SystemCollector) collectOnce() {
	if cpuStatus, err := ProbeCPU(); err == nil {
		c.store.Record("cpu_percent", cpuStatus.UsagePercent, nil, collectorSource)
	} else {
		log.Printf("[COLLECTOR] cpu probe failed: %v", err)
	}

	if memStatus, err := ProbeMemory(); err == nil {
		c.store.Record("memory_percent", memStatus.UsagePercent, nil, collectorSource)
	} else {
		log.Printf("[COLLECTOR] memory probe failed: %v", err)
	}

	if diskStatus, err := ProbeDisk(c.diskPath); err == nil {
		c.store.Record("disk_percent", diskStatus.UsagePercent, nil, collectorSource)
	} else {
		log.Printf("[COLLECTOR] disk probe failed: %v", err)
	}
}

// Snapshot probes all tracked resources once without touching the store.
func (c *SystemCollector) Snapshot() (*models.SystemStatus, error) {
	cpuStatus, err := ProbeCPU()
	if err != nil {
		return nil, err
	}
	memStatus, err := ProbeMemory()
	if err != nil {
		return nil, err
	}
	diskStatus, err := ProbeDisk(c.diskPath)
	if err != nil {
		return nil, err
	}
	return &models.SystemStatus{CPU: cpuStatus, Memory: memStatus, Disk: diskStatus}, nil
}

// ProbeCPU returns current CPU usage.
func ProbeCPU() (*models.CPUStatus, error) {
	percentage, err := cpu.Percent(0, false)
	if err != nil {
		return nil, err
	}

	coreCount, err := cpu.Counts(true)
	if err != nil {
		log.Printf("[COLLECTOR] could not get core count: %v", err)
		coreCount = 0
	}

	return &models.CPUStatus{
		UsagePercent: percentage[0],
		CoreCount:    coreCount,
	}, nil
}

// ProbeMemory returns current memory usage.
func ProbeMemory() (*models.MemoryStatus, error) {
	virtualMemory, err := mem.VirtualMemory()
	if err != nil {
		return nil, err
	}

	return &models.MemoryStatus{
		TotalGB:      float64(virtualMemory.Total) / gb,
		UsedGB:       float64(virtualMemory.Used) / gb,
		AvailableGB:  float64(virtualMemory.Available) / gb,
		UsagePercent: virtualMemory.UsedPercent,
	}, nil
}

// ProbeDisk returns disk usage for one path.
func ProbeDisk(path string) (*models.DiskStatus, error) {
	if path == "" {
		path = "/"
	}

	usage, err := disk.Usage(path)
	if err != nil {
		return nil, err
	}

	return &models.DiskStatus{
		Path:         path,
		TotalGB:      float64(usage.Total) / gb,
		UsedGB:       float64(usage.Used) / gb,
		FreeGB:       float64(usage.Free) / gb,
		UsagePercent: usage.UsedPercent,
	}, nil
}
