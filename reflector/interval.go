package reflector

// Interval is the time step between sun samples.
type Interval string

const (
	IntervalH1  Interval = "1h"
	IntervalM30 Interval = "30m"
	IntervalM15 Interval = "15m"
	IntervalM6  Interval = "6m"
)

func IntervalFromString(str string) Interval {
	switch str {
	case "1h":
		return IntervalH1
	case "30m":
		return IntervalM30
	case "15m":
		return IntervalM15
	case "6m":
		return IntervalM6
	default:
		panic("invalid interval")
	}
}

/*
Number of steps in one hour.

	Notes:
		1h: 1
		30m: 2
		15m: 4
		6m: 10
*/
func (i Interval) NHour() int {
	switch i {
	case IntervalH1:
		return 1
	case IntervalM30:
		return 2
	case IntervalM15:
		return 4
	case IntervalM6:
		return 10
	default:
		panic("invalid interval")
	}
}

// Hours is the step length, h.
func (i Interval) Hours() float64 {
	return 1.0 / float64(i.NHour())
}

/*
Decimal hours sampled between two times of day.

	Args:
		startHour: first hour, h
		endHour: last hour, h (inclusive)

	Returns:
		times of day, h, rounded to 1/100 h

	Notes:
		A step up to 0.01 h before startHour still counts as inside.
*/
func (i Interval) HoursBetween(startHour, endHour float64) []float64 {
	n := i.NHour()
	hours := make([]float64, 0, (24*n)+1)
	for k := 0; k <= 24*n; k++ {
		h := float64(k) / float64(n)
		if h > endHour {
			break
		}
		if startHour-h > 0.01 {
			continue
		}
		hours = append(hours, float64(round(100*h))/100)
	}
	return hours
}
