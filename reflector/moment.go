package reflector

import (
	"fmt"
	"math"
	"time"
)

// Moment selects one day and one time of day of a series.
type Moment struct {
	timeIndex int
	dayNumber int
	startDay  int       // day of year of day number 0
	dayCount  int       // number of days in the series
	hours     []float64 // times of day, h
}

// NewMoment starts at the first day and first time.
func NewMoment(startDay int, hours []float64, dayCount int) *Moment {
	if len(hours) == 0 {
		hours = []float64{0}
	}
	if dayCount < 1 {
		dayCount = 1
	}
	return &Moment{startDay: startDay, hours: hours, dayCount: dayCount}
}

// DefaultMoment is the placeholder used while no sun data is loaded.
func DefaultMoment() *Moment {
	return NewMoment(1, nil, 1)
}

func (m *Moment) isDefault() bool {
	return m.startDay == 1 && len(m.hours) == 1
}

func (m *Moment) TimeIndex() int {
	return m.timeIndex
}

// SetTimeIndex clamps index into the sampled times.
func (m *Moment) SetTimeIndex(index int) {
	m.timeIndex = min(len(m.hours)-1, index)
	m.timeIndex = max(0, m.timeIndex)
}

// Time is the current time of day, h.
func (m *Moment) Time() float64 {
	return m.hours[m.timeIndex]
}

// SetTime moves to the first sampled time at or after t. Times past the
// last sample leave the index unchanged.
func (m *Moment) SetTime(t float64) {
	for i, h := range m.hours {
		if h >= t {
			m.SetTimeIndex(i)
			return
		}
	}
}

func (m *Moment) DayNumber() int {
	return m.dayNumber
}

// SetDayNumber clamps dayNum into the days of the series.
func (m *Moment) SetDayNumber(dayNum int) {
	m.dayNumber = max(0, min(m.dayCount-1, dayNum))
}

func (m *Moment) DayOfYear() int {
	return m.dayNumber + m.startDay
}

// SetDayOfYear is ignored on the default moment.
func (m *Moment) SetDayOfYear(dayOfYear int) {
	if m.isDefault() {
		return
	}
	m.SetDayNumber(dayOfYear - m.startDay)
}

func (m *Moment) TimeString() string {
	return FormatTime(m.Time())
}

func (m *Moment) DateString() string {
	return FormatDate(m.DayOfYear())
}

/*
Clock string of a decimal hour.

	Args:
		t: time of day, h

	Returns:
		e.g. "9:30 am", "12:06 pm", "1:00 pm"

	Notes:
		Rounded to the nearest minute, so 0.1 h steps stored a hair below the
		intended value print as intended. Hours before 1 am print as "0:mm am",
		and 24 h wraps to midnight.
*/
func FormatTime(t float64) string {
	total := int(math.Round(t*60)) % (24 * 60)
	h, minutes := total/60, total%60
	ampm := "am"
	if h >= 12 {
		ampm = "pm"
	}
	if h >= 13 {
		h -= 12
	}
	return fmt.Sprintf("%d:%02d %s", h, minutes, ampm)
}

// dateYear is a non-leap year for day-of-year labels.
const dateYear = 2023

// FormatDate is the "Jan 02" label of a day of year.
func FormatDate(dayOfYear int) string {
	d := time.Date(dateYear, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, dayOfYear-1)
	return d.Format("Jan 02")
}

// AzAltString describes a ray for display, in whole degrees.
func AzAltString(az, alt float64) string {
	altDeg := round(Rad2Deg(alt))
	if altDeg == 90 {
		return fmt.Sprintf("azimuth undefined, altitude %d°", altDeg)
	}
	return fmt.Sprintf("azimuth %d°, altitude %d°", round(Rad2Deg(az)), altDeg)
}
