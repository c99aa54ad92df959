// Command solarpy prints a solar geometry and beam irradiance report for a
// point on Earth at a given date and time.
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/akamensky/argparse"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"

	"github.com/aqreed/solarpy/solarpy"
)

// Site bundles the observer position and panel definition. All of it can be
// loaded from a YAML file with --site.
type Site struct {
	Name       string  `yaml:"name"`
	Latitude   float64 `yaml:"latitude"`
	Longitude  float64 `yaml:"longitude"`
	Altitude   float64 `yaml:"altitude"`
	Slope      float64 `yaml:"slope"`
	Azimuth    float64 `yaml:"azimuth"`
	Area       float64 `yaml:"area"`
	Efficiency float64 `yaml:"efficiency"`
}

func main() {
	parser := argparse.NewParser("solarpy", "Solar position, sunrise/sunset and beam irradiance for any point on Earth")

	lat := parser.FloatPositional(&argparse.Options{
		Default: 40.416,
		Help:    "latitude of the site in degrees, -90 (S) to 90 (N)"})

	lng := parser.FloatPositional(&argparse.Options{
		Default: -3.703,
		Help:    "longitude of the site in degrees, -180 (W) to 180 (E)"})

	alt := parser.Float("a", "altitude", &argparse.Options{
		Default: 0.0,
		Help:    "altitude above sea level in meters, 0 to 24000"})

	dateStr := parser.String("d", "date", &argparse.Options{
		Default: "",
		Help:    "calendar date as YYYY-MM-DD (default: today)"})

	timeStr := parser.String("t", "time", &argparse.Options{
		Default: "12:00",
		Help:    "time of day as HH:MM"})

	isSolar := parser.Flag("", "solar", &argparse.Options{
		Help: "interpret the time of day as solar time instead of standard clock time"})

	slope := parser.Float("", "slope", &argparse.Options{
		Default: 0.0,
		Help:    "panel slope from horizontal in degrees, 0 to 180"})

	surfAz := parser.Float("", "azimuth", &argparse.Options{
		Default: 0.0,
		Help:    "panel azimuth in degrees, 0 south, east negative, -180 to 180"})

	area := parser.Float("", "area", &argparse.Options{
		Default: 1.0,
		Help:    "panel surface in m2"})

	eff := parser.Float("", "efficiency", &argparse.Options{
		Default: 1.0,
		Help:    "panel efficiency, 0 to 1"})

	siteFile := parser.String("s", "site", &argparse.Options{
		Default: "",
		Help:    "YAML site definition (overrides position and panel flags)"})

	verbose := parser.Flag("v", "verbose", &argparse.Options{
		Help: "debug logging"})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(2)
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	site := Site{
		Latitude:   *lat,
		Longitude:  *lng,
		Altitude:   *alt,
		Slope:      *slope,
		Azimuth:    *surfAz,
		Area:       *area,
		Efficiency: *eff,
	}
	if *siteFile != "" {
		buf, err := os.ReadFile(*siteFile)
		if err != nil {
			log.Fatal().Err(err).Str("path", *siteFile).Msg("cannot read site file")
		}
		if err := yaml.Unmarshal(buf, &site); err != nil {
			log.Fatal().Err(err).Str("path", *siteFile).Msg("cannot parse site file")
		}
		log.Debug().Str("site", site.Name).Msg("site definition loaded")
	}

	when := time.Now().UTC()
	if *dateStr != "" {
		d, err := time.Parse("2006-01-02", *dateStr)
		if err != nil {
			log.Fatal().Err(err).Msg("date must be YYYY-MM-DD")
		}
		when = d
	}
	tod, err := time.Parse("15:04", *timeStr)
	if err != nil {
		log.Fatal().Err(err).Msg("time must be HH:MM")
	}
	when = time.Date(when.Year(), when.Month(), when.Day(),
		tod.Hour(), tod.Minute(), 0, 0, time.UTC)

	if !*isSolar {
		st, err := solarpy.StandardToSolarTime(when, site.Longitude)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid longitude")
		}
		log.Debug().
			Str("standard", when.Format("15:04")).
			Str("solar", st.Format("15:04:05")).
			Msg("converted standard time to solar time")
		when = st
	}

	if err := report(os.Stdout, site, when); err != nil {
		log.Fatal().Err(err).Msg("report failed")
	}
}

func report(w *os.File, site Site, when time.Time) error {
	n := solarpy.DayOfYear(when)
	dec, err := solarpy.Declination(n)
	if err != nil {
		return err
	}
	eqt, err := solarpy.EquationOfTime(n)
	if err != nil {
		return err
	}
	thz, err := solarpy.ZenithAngle(when, site.Latitude)
	if err != nil {
		return err
	}
	az, err := solarpy.SolarAzimuth(when, site.Latitude)
	if err != nil {
		return err
	}
	altitude, err := solarpy.SolarAltitude(when, site.Latitude)
	if err != nil {
		return err
	}
	lh, err := solarpy.DaylightHours(when, site.Latitude)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Solar report for %s solar time (lat %.4f, lng %.4f, h %.0f m)\n",
		when.Format("2006-01-02 15:04"), site.Latitude, site.Longitude, site.Altitude)
	fmt.Fprintf(w, "  day of the year      %d\n", n)
	fmt.Fprintf(w, "  declination          %+.3f deg\n", deg(dec))
	fmt.Fprintf(w, "  equation of time     %+.2f min\n", eqt)
	fmt.Fprintf(w, "  hour angle           %+.3f deg\n", deg(solarpy.HourAngle(when)))
	fmt.Fprintf(w, "  zenith angle         %.3f deg\n", deg(thz))
	fmt.Fprintf(w, "  solar azimuth        %+.3f deg\n", deg(az))
	fmt.Fprintf(w, "  solar altitude       %+.3f deg\n", deg(altitude))

	sr, errRise := solarpy.SunriseTime(when, site.Latitude)
	ss, errSet := solarpy.SunsetTime(when, site.Latitude)
	switch {
	case solarpy.IsPermanentDayNight(errRise) || solarpy.IsPermanentDayNight(errSet):
		if lh == 0 {
			fmt.Fprintf(w, "  sunrise/sunset       none, permanent darkness\n")
		} else {
			fmt.Fprintf(w, "  sunrise/sunset       none, permanent daylight\n")
		}
	case errRise != nil:
		return errRise
	case errSet != nil:
		return errSet
	default:
		fmt.Fprintf(w, "  sunrise (solar)      %s\n", sr.Format("15:04"))
		fmt.Fprintf(w, "  sunset (solar)       %s\n", ss.Format("15:04"))
	}
	fmt.Fprintf(w, "  daylight             %.2f h\n", lh)

	p, err := solarpy.StandardPressure(site.Altitude)
	if err != nil {
		return err
	}
	m, err := solarpy.AirMassKastenYoung1989(deg(thz), site.Altitude, true)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  pressure (ISA)       %.0f Pa\n", p)
	fmt.Fprintf(w, "  air mass (KY1989)    %.3f\n", m)
	fmt.Fprintf(w, "  air mass (Young94)   %.3f\n", solarpy.AirMassYoung1994(deg(thz)))

	gb, err := solarpy.BeamIrradiance(site.Altitude, when, site.Latitude)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  extraterrestrial     %.1f W/m2\n", solarpy.ExtraterrestrialNormalIrradiance(when))
	fmt.Fprintf(w, "  beam irradiance      %.1f W/m2\n", gb)

	vnorm, err := solarpy.SurfaceNormalNED(site.Slope, site.Azimuth)
	if err != nil {
		return err
	}
	panel, err := solarpy.NewSolarPanel(site.Area, site.Efficiency, site.Name)
	if err != nil {
		return err
	}
	if err := panel.SetPosition(site.Latitude, site.Longitude, site.Altitude); err != nil {
		return err
	}
	if err := panel.SetOrientation(vnorm); err != nil {
		return err
	}
	panel.SetDateTime(when)
	pw, err := panel.Power()
	if err != nil {
		return err
	}
	gp, err := solarpy.IrradianceOnPlane(vnorm, site.Altitude, when, site.Latitude)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  plane irradiance     %.1f W/m2 (slope %.1f deg, azimuth %.1f deg)\n",
		gp, site.Slope, site.Azimuth)
	fmt.Fprintf(w, "  panel power          %.1f W (%.2f m2 at %.0f%% efficiency)\n",
		pw, site.Area, site.Efficiency*100)
	return nil
}

func deg(rad float64) float64 {
	return rad * 180 / math.Pi
}
