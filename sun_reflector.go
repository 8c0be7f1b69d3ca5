package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sun_reflector/internal/log"
	"sun_reflector/reflector"
	"sun_reflector/sundata"
)

/*
Runs a panel study.

	Args:
		cfg: validated configuration

	Notes:
		Loads or generates the sun data, computes reflections and insolation
		for the panel orientation, then records sun hours per day.
*/
func run(cfg *Config) error {

	// ---- preparation ----

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	log.Infof("Sun data start")
	series, err := sundata.Make(cfg.sunRequest())
	if err != nil {
		return fmt.Errorf("make sun data: %w", err)
	}
	log.Infow("Sun data loaded",
		"start_day", series.StartDay,
		"days", series.DayCount(),
		"samples_per_day", series.SamplesPerDay(),
		"time_step", series.TimeStep)

	s := reflector.NewSession()
	cfg.applySkyline(s.Skyline())
	s.SetOrientation(cfg.orientation())

	// ---- calculation ----

	log.Infof("Reflection calculation start")
	s.Load(series)

	az, alt := s.Normal()
	n := s.NormalVec()
	log.Infow("Panel normal",
		"direction", reflector.AzAltString(az, alt),
		"east", n.X, "north", n.Y, "up", n.Z)

	summary := s.Summary()

	// ---- output ----

	rec := NewRecorder(cfg.Output.Dir)
	rec.recordDays(series.StartDay, summary)
	rec.recordPanel(s.Result())
	if cfg.Output.SaveRays {
		rec.recordRays(series, s.Result())
	}
	if cfg.Output.SaveSkyline {
		rec.recordSkyline(s.Skyline())
	}
	if err := rec.export(); err != nil {
		return err
	}

	if cfg.Output.SaveSunData {
		path := filepath.Join(cfg.Output.Dir, "sun_data.txt")
		log.Infof("Save sun data to `%s`", path)
		if err := sundata.WriteTextFile(path, series); err != nil {
			return fmt.Errorf("save sun data: %w", err)
		}
	}

	if cfg.Output.PrintSummary {
		printSummary(series.StartDay, summary)
	}
	return nil
}

func printSummary(startDay int, sm reflector.Summary) {
	if len(sm.Days) == 0 {
		fmt.Println("no sun data")
		return
	}
	fmt.Printf("days: %d\n", len(sm.Days))
	fmt.Printf("total sun hours: %.1f on panel, %.1f facing the sun\n", sm.Total.FixedPanel, sm.Total.SunFacing)
	fmt.Printf("daily mean: %.2f h on panel, %.2f h facing the sun\n", sm.Mean.FixedPanel, sm.Mean.SunFacing)
	fmt.Printf("best day: %s (%.2f h)\n", reflector.FormatDate(startDay+sm.BestDay), sm.Max.FixedPanel)
	fmt.Printf("worst day: %s (%.2f h)\n", reflector.FormatDate(startDay+sm.WorstDay), sm.Min.FixedPanel)
	fmt.Printf("capture ratio: %.1f%%\n", 100*sm.Captured)
}

// applyFlags copies the explicitly set flags over the file configuration.
func applyFlags(fs *flag.FlagSet, cfg *Config, f *cliFlags) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "o":
			cfg.Output.Dir = f.outputDir
		case "sun":
			cfg.Sun.Method = f.sunMethod
		case "sun_path":
			cfg.Sun.Path = f.sunPath
		case "lat":
			cfg.Location.Latitude = f.latitude
		case "long":
			cfg.Location.Longitude = f.longitude
		case "tz":
			cfg.Location.TimeZone = f.timeZone
		case "year":
			cfg.Sun.Year = f.year
		case "start_day":
			cfg.Sun.StartDay = f.startDay
		case "days":
			cfg.Sun.DayCount = f.dayCount
		case "interval":
			cfg.Sun.Interval = f.interval
		case "direction":
			cfg.Panel.Direction = f.direction
		case "tilt_axis":
			cfg.Panel.TiltAxisAzimuth = f.tiltAxis
			cfg.Panel.Direction = ""
		case "tilt":
			cfg.Panel.Tilt = f.tilt
		case "dip":
			cfg.Panel.Dip = f.dip
		case "rays_saved":
			cfg.Output.SaveRays = f.raysSaved
		case "sun_saved":
			cfg.Output.SaveSunData = f.sunSaved
		}
	})
}

type cliFlags struct {
	configPath string
	outputDir  string
	sunMethod  string
	sunPath    string
	latitude   float64
	longitude  float64
	timeZone   float64
	year       int
	startDay   int
	dayCount   int
	interval   string
	direction  string
	tiltAxis   float64
	tilt       float64
	dip        float64
	raysSaved  bool
	sunSaved   bool
	debug      bool
}

func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("sun_reflector", flag.ExitOnError)
	fs.StringVar(&f.configPath, "config", "", "YAML file describing the study")
	fs.StringVar(&f.outputDir, "o", ".", "output folder")
	fs.StringVar(&f.sunMethod, "sun", "calc", "sun data method: file, csv, calc or meeus")
	fs.StringVar(&f.sunPath, "sun_path", "", "sun data file, required by the file and csv methods")
	fs.Float64Var(&f.latitude, "lat", 40.0, "latitude, degree")
	fs.Float64Var(&f.longitude, "long", -75.0, "longitude, degree")
	fs.Float64Var(&f.timeZone, "tz", -5, "time zone, hours from UTC")
	fs.IntVar(&f.year, "year", 2023, "year of generated sun data")
	fs.IntVar(&f.startDay, "start_day", 1, "first day of year of generated sun data")
	fs.IntVar(&f.dayCount, "days", 365, "number of days of generated sun data")
	fs.StringVar(&f.interval, "interval", "6m", "time step of generated sun data: 1h, 30m, 15m or 6m")
	fs.StringVar(&f.direction, "direction", "", "tilt axis preset: n, ne, e, se, s, sw, w or nw")
	fs.Float64Var(&f.tiltAxis, "tilt_axis", 0, "tilt axis azimuth, degree")
	fs.Float64Var(&f.tilt, "tilt", 0, "tilt, degree")
	fs.Float64Var(&f.dip, "dip", 0, "dip, degree")
	fs.BoolVar(&f.raysSaved, "rays_saved", false, "save every sun and reflected ray")
	fs.BoolVar(&f.sunSaved, "sun_saved", false, "save the sun data in the text format")
	fs.BoolVar(&f.debug, "debug", false, "debug logging")
	return fs
}

func main() {
	var f cliFlags
	fs := newFlagSet(&f)
	fs.Parse(os.Args[1:])

	if err := log.Init(f.debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := loadConfig(f.configPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	applyFlags(fs, cfg, &f)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	start := time.Now()

	if err := run(cfg); err != nil {
		log.Errorf("%v", err)
		log.Sync()
		os.Exit(1)
	}

	log.Infof("elapsed_time: %v", time.Since(start))
}
