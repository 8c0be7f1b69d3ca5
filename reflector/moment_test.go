package reflector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMomentClamping(t *testing.T) {
	m := NewMoment(172, []float64{8, 8.1, 8.2, 8.3}, 3)

	m.SetTimeIndex(10)
	assert.Equal(t, 3, m.TimeIndex())
	m.SetTimeIndex(-2)
	assert.Equal(t, 0, m.TimeIndex())

	m.SetDayNumber(5)
	assert.Equal(t, 2, m.DayNumber())
	m.SetDayNumber(-1)
	assert.Equal(t, 0, m.DayNumber())

	m.SetDayOfYear(173)
	assert.Equal(t, 1, m.DayNumber())
	assert.Equal(t, 173, m.DayOfYear())
	m.SetDayOfYear(400)
	assert.Equal(t, 2, m.DayNumber())
}

func TestMomentSetTime(t *testing.T) {
	m := NewMoment(1, []float64{8, 8.1, 8.2, 8.3}, 1)

	m.SetTime(8.15)
	assert.Equal(t, 2, m.TimeIndex())
	assert.Equal(t, 8.2, m.Time())

	m.SetTime(0)
	assert.Equal(t, 0, m.TimeIndex())

	// past the last sample: unchanged
	m.SetTime(9)
	assert.Equal(t, 0, m.TimeIndex())
}

func TestDefaultMoment(t *testing.T) {
	m := DefaultMoment()
	assert.Equal(t, 1, m.DayOfYear())
	assert.Equal(t, 0.0, m.Time())

	m.SetDayOfYear(100)
	assert.Equal(t, 1, m.DayOfYear())

	m.SetTimeIndex(3)
	assert.Equal(t, 0, m.TimeIndex())
}

func TestFormatTime(t *testing.T) {
	cases := []struct {
		t    float64
		want string
	}{
		{0, "0:00 am"},
		{6.5, "6:30 am"},
		{9.3, "9:18 am"},
		{11.9, "11:54 am"},
		{11.999, "12:00 pm"},
		{12, "12:00 pm"},
		{12.5, "12:30 pm"},
		{12.9, "12:54 pm"},
		{13, "1:00 pm"},
		{15.1, "3:06 pm"},
		{20.2999999, "8:18 pm"},
		{23.999, "0:00 am"},
		{24, "0:00 am"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatTime(c.t), "t=%v", c.t)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Jan 01", FormatDate(1))
	assert.Equal(t, "Feb 01", FormatDate(32))
	assert.Equal(t, "Mar 01", FormatDate(60))
	assert.Equal(t, "Jun 21", FormatDate(172))
	assert.Equal(t, "Dec 31", FormatDate(365))

	m := NewMoment(172, []float64{13.5}, 2)
	m.SetDayNumber(1)
	assert.Equal(t, "Jun 22", m.DateString())
	assert.Equal(t, "1:30 pm", m.TimeString())
}

func TestAzAltString(t *testing.T) {
	assert.Equal(t, "azimuth 180°, altitude 45°", AzAltString(Deg2Rad(180), Deg2Rad(45)))
	assert.Equal(t, "azimuth undefined, altitude 90°", AzAltString(0, Deg2Rad(89.7)))
}
