package status

import (
	"encoding/json"
	"time"
)

// Snapshot holds the simulated campus metrics. Field order matches the
// JSON key order the frontend and the prompt block expect.
type Snapshot struct {
	LabOccupancy string `json:"AI Lab 301 Occupancy"`
	LibraryZone  string `json:"Library Quiet Zone"`
	ServerHealth string `json:"Main Server Health"`
	WiFiStatus   string `json:"Campus Wi-Fi Status"`
	PowerSource  string `json:"Power Supply"`
}

// ForHour derives the snapshot for an hour of day (0-23). Peak academic
// hours are [9,16), evening lab hours [16,20), everything else counts
// as night/off-hours.
func ForHour(hour int) Snapshot {
	switch {
	case hour >= 9 && hour < 16:
		return Snapshot{
			LabOccupancy: "High (85% occupied)",
			LibraryZone:  "Moderately Busy",
			ServerHealth: "Degraded (High Load)",
			WiFiStatus:   "Operational (Moderate Speed)",
			PowerSource:  "Main Grid",
		}
	case hour >= 16 && hour < 20:
		return Snapshot{
			LabOccupancy: "Moderate (50% occupied)",
			LibraryZone:  "Quiet Zone",
			ServerHealth: "Operational (Normal)",
			WiFiStatus:   "Operational (Fast Speed)",
			PowerSource:  "Main Grid",
		}
	default:
		return Snapshot{
			LabOccupancy: "Low (5% occupied/Closed)",
			LibraryZone:  "Closed",
			ServerHealth: "Operational (Low Load)",
			WiFiStatus:   "Operational (Low Speed)",
			PowerSource:  "Main Grid",
		}
	}
}

// PromptBlock renders the snapshot as the labeled block embedded into
// the system prompt.
func (s Snapshot) PromptBlock() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		// Snapshot is a flat struct of strings; this cannot fail.
		return ""
	}
	return "\n\n# 💡 CURRENT CAMPUS STATUS (Use ONLY for live status queries)\n" + string(data) + "\n"
}

// Service derives snapshots from wall-clock time. Nothing is cached;
// every call recomputes from the current hour.
type Service struct {
	now func() time.Time
}

// NewService returns a simulator driven by the system clock.
func NewService() *Service {
	return &Service{now: time.Now}
}

// NewServiceWithClock returns a simulator driven by a custom clock.
func NewServiceWithClock(now func() time.Time) *Service {
	return &Service{now: now}
}

// Current returns the snapshot for the current hour.
func (s *Service) Current() Snapshot {
	return ForHour(s.now().Hour())
}
