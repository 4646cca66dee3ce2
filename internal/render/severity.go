package render

// Severity classifies how full a lot is.
type Severity string

const (
	SeverityOK   Severity = "ok"
	SeverityWarn Severity = "warn"
	SeverityBad  Severity = "bad"
)

// Classify returns the severity for a lot with free spaces out of total.
//
//	total == 0           warn
//	free/total >  0.5    ok
//	free/total >  0.2    warn
//	otherwise            bad
//
// The ratios are compared in integer arithmetic so the 0.5 and 0.2
// boundaries are exact.
func Classify(free, total int) Severity {
	if total == 0 {
		return SeverityWarn
	}
	f, t := int64(free), int64(total)
	if t < 0 {
		f, t = -f, -t
	}
	switch {
	case 2*f > t:
		return SeverityOK
	case 5*f > t:
		return SeverityWarn
	default:
		return SeverityBad
	}
}

// Pill is a short colored status label.
type Pill struct {
	Class string `json:"class"`
	Label string `json:"label"`
}

// Pill classes.
const (
	PillOK      = "ok"
	PillBad     = "bad"
	PillOnline  = "online"
	PillOffline = "offline"
)

// OccupancyPill labels a space as occupied or free.
func OccupancyPill(occupied bool, loc Locale) Pill {
	if occupied {
		return Pill{Class: PillBad, Label: loc.Occupied}
	}
	return Pill{Class: PillOK, Label: loc.Free}
}

// SensorPill labels a sensor as online or offline.
func SensorPill(online bool, loc Locale) Pill {
	if online {
		return Pill{Class: PillOnline, Label: loc.Online}
	}
	return Pill{Class: PillOffline, Label: loc.Offline}
}
