// Package gnss streams position fixes from an NMEA receiver.
package gnss

import (
	"time"

	nmea "github.com/adrianmo/go-nmea"
)

// Fix is a position solution merged from the RMC and GGA sentences of
// one epoch.
type Fix struct {
	Time       time.Time `json:"time"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Altitude   float64   `json:"altitude"`
	Satellites int       `json:"satellites"`
	Quality    string    `json:"quality"`
	Valid      bool      `json:"valid"`
	SpeedKnots float64   `json:"speed_knots"`
	Course     float64   `json:"course"`
}

// FixHandler receives fixes.
type FixHandler interface {
	HandleFix(Fix)
}

// FixHandlerFunc is func form of FixHandler.
type FixHandlerFunc func(Fix)

// HandleFix implements FixHandler.
func (f FixHandlerFunc) HandleFix(fix Fix) {
	f(fix)
}

// Tracker merges sentences into fixes. A fix is complete once RMC and GGA
// carrying the same time of day have both been seen.
type Tracker struct {
	fix     Fix
	rmcTime nmea.Time
	ggaTime nmea.Time
	hasRMC  bool
	hasGGA  bool
}

// Update applies one sentence and returns the fix if the epoch is complete.
// Sentences other than RMC and GGA are ignored.
func (t *Tracker) Update(s nmea.Sentence) (Fix, bool) {
	switch m := s.(type) {
	case nmea.RMC:
		if t.hasGGA && m.Time != t.ggaTime {
			t.reset()
		}
		t.hasRMC, t.rmcTime = true, m.Time
		t.fix.Time = fixTime(m.Date, m.Time)
		t.fix.Latitude, t.fix.Longitude = m.Latitude, m.Longitude
		t.fix.Valid = m.Validity == nmea.ValidRMC
		t.fix.SpeedKnots, t.fix.Course = m.Speed, m.Course
	case nmea.GGA:
		if t.hasRMC && m.Time != t.rmcTime {
			t.reset()
		}
		t.hasGGA, t.ggaTime = true, m.Time
		if !t.hasRMC {
			t.fix.Latitude, t.fix.Longitude = m.Latitude, m.Longitude
		}
		t.fix.Altitude = m.Altitude
		t.fix.Satellites = int(m.NumSatellites)
		t.fix.Quality = m.FixQuality
	default:
		return Fix{}, false
	}
	if !t.hasRMC || !t.hasGGA {
		return Fix{}, false
	}
	fix := t.fix
	t.reset()
	return fix, true
}

func (t *Tracker) reset() {
	*t = Tracker{}
}

func fixTime(d nmea.Date, tm nmea.Time) time.Time {
	if !d.Valid || !tm.Valid {
		return time.Time{}
	}
	return time.Date(2000+d.YY, time.Month(d.MM), d.DD,
		tm.Hour, tm.Minute, tm.Second, tm.Millisecond*int(time.Millisecond), time.UTC)
}
