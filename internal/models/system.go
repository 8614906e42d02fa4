package models

// CPUStatus is a point-in-time CPU probe result.
type CPUStatus struct {
	UsagePercent float64 `json:"usage_percent"`
	CoreCount    int     `json:"core_count"`
}

// MemoryStatus is a point-in-time memory probe result.
type MemoryStatus struct {
	TotalGB      float64 `json:"total_gb"`
	UsedGB       float64 `json:"used_gb"`
	AvailableGB  float64 `json:"available_gb"`
	UsagePercent float64 `json:"usage_percent"`
}

// DiskStatus is a point-in-time disk probe result for one mount.
type DiskStatus struct {
	Path         string  `json:"path"`
	TotalGB      float64 `json:"total_gb"`
	UsedGB       float64 `json:"used_gb"`
	FreeGB       float64 `json:"free_gb"`
	UsagePercent float64 `json:"usage_percent"`
}

// SystemStatus combines the probes behind the tracked categories.
type SystemStatus struct {
	CPU    *CPUStatus    `json:"cpu"`
	Memory *MemoryStatus `json:"memory"`
	Disk   *DiskStatus   `json:"disk"`
}
