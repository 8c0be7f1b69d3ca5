package sundata

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"sun_reflector/reflector"
)

const (
	startDayTag  = "startday_"
	latitudeTag  = "_lat_"
	longitudeTag = "_long_"
	timeZoneTag  = "_timezone_"
)

// Name is the first line of a text file, e.g.
// "startday_172_lat_40.000000_long_-75.000000_timezone_-5".
func Name(startDay int, loc reflector.Location) string {
	return fmt.Sprintf("%s%d%s%f%s%f%s%d",
		startDayTag, startDay,
		latitudeTag, loc.Latitude,
		longitudeTag, loc.Longitude,
		timeZoneTag, int(math.Round(loc.TimeZone)))
}

// parseName reads the start day and location from the first line.
func parseName(line string) (int, reflector.Location, error) {
	var loc reflector.Location
	name := strings.ToLower(strings.TrimSpace(line))
	if !strings.HasPrefix(name, startDayTag) {
		return 0, loc, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	name = name[len(startDayTag):]

	field := func(tag string) (string, error) {
		n := strings.Index(name, tag)
		if n < 0 {
			return "", fmt.Errorf("%w: missing %q", ErrMalformedHeader, strings.Trim(tag, "_"))
		}
		s := name[:n]
		name = name[n+len(tag):]
		return s, nil
	}

	sd, err := field(latitudeTag)
	if err != nil {
		return 0, loc, err
	}
	lat, err := field(longitudeTag)
	if err != nil {
		return 0, loc, err
	}
	lon, err := field(timeZoneTag)
	if err != nil {
		return 0, loc, err
	}

	startDay, err := strconv.Atoi(sd)
	if err != nil {
		return 0, loc, fmt.Errorf("%w: start day: %v", ErrMalformedHeader, err)
	}
	if loc.Latitude, err = strconv.ParseFloat(lat, 64); err != nil {
		return 0, loc, fmt.Errorf("%w: latitude: %v", ErrMalformedHeader, err)
	}
	if loc.Longitude, err = strconv.ParseFloat(lon, 64); err != nil {
		return 0, loc, fmt.Errorf("%w: longitude: %v", ErrMalformedHeader, err)
	}
	tz, err := strconv.ParseFloat(strings.TrimSpace(name), 64)
	if err != nil {
		return 0, loc, fmt.Errorf("%w: time zone: %v", ErrMalformedHeader, err)
	}
	loc.TimeZone = math.Round(tz)
	return startDay, loc, nil
}

/*
Reads sun data in the tab-delimited text format.

	Args:
		r: text source

	Returns:
		the series, angles converted to rad

	Notes:
		Line 1 is the name (see Name), line 2 the column header, then one row
		per time of day: decimal hour, then azimuth and altitude in degrees
		for each day. The time step is taken from the first two hours.
*/
func ReadText(r io.Reader) (*reflector.SunPositionSeries, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read sun text: %w", err)
	}
	if len(records) < 3 || len(records[0]) == 0 {
		return nil, fmt.Errorf("%w: need a name line, a header and at least one row", ErrMalformedHeader)
	}

	startDay, loc, err := parseName(records[0][0])
	if err != nil {
		return nil, err
	}

	cols := len(records[1])
	if cols < 3 || cols%2 == 0 {
		return nil, fmt.Errorf("%w: header has %d columns", ErrMalformedHeader, cols)
	}
	dayCount := (cols - 1) / 2

	rows := records[2:]
	hours := make([]float64, len(rows))
	days := make([][]reflector.Sample, dayCount)
	for d := range days {
		days[d] = make([]reflector.Sample, len(rows))
	}

	for k, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedData, k+3, len(row), cols)
		}
		values := make([]float64, cols)
		for c, s := range row {
			if values[c], err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", k+3, c+1, err)
			}
		}
		hours[k] = values[0]
		for d := 0; d < dayCount; d++ {
			days[d][k] = reflector.Sample{
				Azimuth:  reflector.Deg2Rad(values[1+2*d]),
				Altitude: reflector.Deg2Rad(values[2+2*d]),
			}
		}
	}

	timeStep := reflector.DefaultTimeStep
	if len(hours) > 1 && hours[1] > hours[0] {
		timeStep = hours[1] - hours[0]
	}

	series := reflector.NewSunPositionSeries(startDay, loc, hours, timeStep)
	for _, day := range days {
		series.AddDay(day)
	}
	return series, nil
}

// ReadTextFile reads a text file of sun data.
func ReadTextFile(path string) (*reflector.SunPositionSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	series, err := ReadText(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return series, nil
}

// WriteText writes a series in the tab-delimited text format.
func WriteText(w io.Writer, series *reflector.SunPositionSeries) error {
	if series.DayCount() == 0 {
		return fmt.Errorf("write sun text: %w", ErrNoData)
	}

	writer := csv.NewWriter(w)
	writer.Comma = '\t'

	if err := writer.Write([]string{Name(series.StartDay, series.Location)}); err != nil {
		return err
	}

	header := []string{"t"}
	for d := 0; d < series.DayCount(); d++ {
		header = append(header, fmt.Sprintf("x%d", d), fmt.Sprintf("y%d", d))
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	format := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	for k, h := range series.Hours {
		row := []string{format(h)}
		for d := 0; d < series.DayCount(); d++ {
			day := series.Day(d)
			if k >= len(day) {
				return fmt.Errorf("%w: day %d has %d samples, want %d", ErrRaggedData, d, len(day), len(series.Hours))
			}
			row = append(row,
				format(reflector.Rad2Deg(day[k].Azimuth)),
				format(reflector.Rad2Deg(day[k].Altitude)))
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteTextFile writes a series to a text file.
func WriteTextFile(path string, series *reflector.SunPositionSeries) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteText(f, series); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
