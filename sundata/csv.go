package sundata

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/gocarina/gocsv"

	"sun_reflector/reflector"
)

// SunRow is one sun sample in the long CSV format; angles in degrees.
type SunRow struct {
	Day      int     `csv:"day"`      // day of year
	Hour     float64 `csv:"hour"`     // time of day, h
	Azimuth  float64 `csv:"azimuth"`  // clockwise from North, degree
	Altitude float64 `csv:"altitude"` // degree
}

/*
Reads sun data from a long CSV (day,hour,azimuth,altitude).

	Args:
		r: CSV source
		loc: site of the data, not carried by the CSV

	Returns:
		the series, angles converted to rad

	Notes:
		Days must be consecutive and share the same times of day. Rows may come
		in any order; they are sorted by day and hour.
*/
func ReadCSV(r io.Reader, loc reflector.Location) (*reflector.SunPositionSeries, error) {
	var rows []*SunRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("read sun csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read sun csv: %w", ErrNoData)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Day != rows[j].Day {
			return rows[i].Day < rows[j].Day
		}
		return rows[i].Hour < rows[j].Hour
	})

	startDay := rows[0].Day
	var hours []float64
	for _, row := range rows {
		if row.Day != startDay {
			break
		}
		hours = append(hours, row.Hour)
	}
	n := len(hours)
	if len(rows)%n != 0 {
		return nil, fmt.Errorf("%w: %d rows is not a multiple of %d samples per day", ErrRaggedData, len(rows), n)
	}

	timeStep := reflector.DefaultTimeStep
	if n > 1 && hours[1] > hours[0] {
		timeStep = hours[1] - hours[0]
	}
	series := reflector.NewSunPositionSeries(startDay, loc, hours, timeStep)

	for d := 0; d < len(rows)/n; d++ {
		samples := make([]reflector.Sample, n)
		for k := 0; k < n; k++ {
			row := rows[d*n+k]
			if row.Day != startDay+d {
				return nil, fmt.Errorf("%w: expected day %d, got %d", ErrRaggedData, startDay+d, row.Day)
			}
			if row.Hour != hours[k] {
				return nil, fmt.Errorf("%w: day %d hour %g does not match %g", ErrRaggedData, row.Day, row.Hour, hours[k])
			}
			samples[k] = reflector.Sample{
				Azimuth:  reflector.Deg2Rad(row.Azimuth),
				Altitude: reflector.Deg2Rad(row.Altitude),
			}
		}
		series.AddDay(samples)
	}
	return series, nil
}

func ReadCSVFile(path string, loc reflector.Location) (*reflector.SunPositionSeries, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("sun data file %s does not exist", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	series, err := ReadCSV(f, loc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return series, nil
}

// Rows flattens a series into long CSV rows.
func Rows(series *reflector.SunPositionSeries) []*SunRow {
	rows := make([]*SunRow, 0, series.DayCount()*series.SamplesPerDay())
	for d := 0; d < series.DayCount(); d++ {
		for k, s := range series.Day(d) {
			if k >= len(series.Hours) {
				break
			}
			rows = append(rows, &SunRow{
				Day:      series.StartDay + d,
				Hour:     series.Hours[k],
				Azimuth:  reflector.Rad2Deg(s.Azimuth),
				Altitude: reflector.Rad2Deg(s.Altitude),
			})
		}
	}
	return rows
}

func WriteCSV(w io.Writer, series *reflector.SunPositionSeries) error {
	if series.DayCount() == 0 {
		return fmt.Errorf("write sun csv: %w", ErrNoData)
	}
	return gocsv.Marshal(Rows(series), w)
}
