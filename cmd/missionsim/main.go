package main

import (
	"flag"
	"os"
	"strings"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/viper"

	missions "github.com/pysat/pysatMissions"
)

// This tool reads a scenario file, generates the trajectory and the derived
// frames, and writes everything as CSV.

const (
	defaultScenario = "~~unset~~"
	dateFormat      = "2006-01-02 15:04:05"
)

var (
	scenario string
	verbose  bool
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "simulation scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "really verbose (esp. for configuration)")
}

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)

	if scenario == defaultScenario {
		logger.Log("fatal", "no scenario provided")
		os.Exit(1)
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		logger.Log("fatal", err, "scenario", scenario+".toml")
		os.Exit(1)
	}

	body := viper.GetString("orbit.body")
	if body == "" {
		body = "Earth"
	}

	spec, err := orbitSpecFromConfig()
	if err != nil {
		logger.Log("fatal", err)
		os.Exit(1)
	}
	warning, err := missions.ValidateOrbitSpec(spec)
	if err != nil {
		logger.Log("fatal", err)
		os.Exit(1)
	}
	if warning != "" {
		logger.Log("warning", warning)
	}

	prop, err := missions.NewSGP4FromSpec(spec, body)
	if err != nil {
		logger.Log("fatal", err)
		os.Exit(1)
	}
	prop.Workers = viper.GetInt("time.workers")

	grid, err := timeGridFromConfig(spec, body)
	if err != nil {
		logger.Log("fatal", err)
		os.Exit(1)
	}
	if verbose {
		logger.Log("msg", "time grid built", "samples", grid.Len(), "cadence", grid.Cadence)
	}

	series, err := missions.RunFramePipeline(grid, prop)
	if err != nil {
		logger.Log("fatal", err)
		os.Exit(1)
	}

	frames, err := missions.BuildAttitudeFrames(series.PosECEF, series.VelECEF)
	if err != nil {
		logger.Log("fatal", err)
		os.Exit(1)
	}

	var extras []missions.ExtraColumn
	for _, name := range viper.GetStringSlice("output.fields") {
		model, ok := missions.LookupFieldModel(name)
		if !ok {
			logger.Log("warning", "field model unavailable, skipping", "field", name)
			continue
		}
		field, err := model.Evaluate(series)
		if err != nil {
			logger.Log("fatal", err, "field", name)
			os.Exit(1)
		}
		px, py, pz, err := missions.ProjectOntoFrame(field, frames)
		if err != nil {
			logger.Log("fatal", err, "field", name)
			os.Exit(1)
		}
		meta := missions.ColumnMeta{Units: model.Units(), Desc: name + " in the spacecraft frame"}
		extras = append(extras,
			missions.ExtraColumn{Name: name + "_sc_x", Values: px, Meta: meta},
			missions.ExtraColumn{Name: name + "_sc_y", Values: py, Meta: meta},
			missions.ExtraColumn{Name: name + "_sc_z", Values: pz, Meta: meta},
		)
	}

	for stName := range viper.GetStringMap("stations") {
		key := "stations." + stName
		st := missions.NewStation(stName,
			viper.GetFloat64(key+".alt"),
			viper.GetFloat64(key+".elevation"),
			viper.GetFloat64(key+".lat"),
			viper.GetFloat64(key+".lon"))
		visible := 0
		for _, obs := range st.Observe(series) {
			if obs.Visible {
				visible++
			}
		}
		logger.Log("station", st.String(), "visible_samples", visible, "of", series.Len())
	}

	outName := viper.GetString("output.file")
	if outName == "" {
		outName = scenario + ".csv"
	}
	f, err := os.Create(outName)
	if err != nil {
		logger.Log("fatal", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := missions.WriteCSV(f, series, extras...); err != nil {
		logger.Log("fatal", err)
		os.Exit(1)
	}
	logger.Log("msg", "scenario complete", "samples", series.Len(), "output", outName)
}

// orbitSpecFromConfig builds the orbit specification from whichever keys the
// scenario actually sets, so that absent and zero stay distinguishable.
func orbitSpecFromConfig() (missions.OrbitSpec, error) {
	var spec missions.OrbitSpec
	spec.TLE1 = viper.GetString("orbit.tle1")
	spec.TLE2 = viper.GetString("orbit.tle2")
	setIf := func(key string, dst **float64) {
		if viper.IsSet(key) {
			v := viper.GetFloat64(key)
			*dst = &v
		}
	}
	setIf("orbit.alt_periapsis", &spec.AltPeriapsis)
	setIf("orbit.alt_apoapsis", &spec.AltApoapsis)
	setIf("orbit.inclination", &spec.Inclination)
	setIf("orbit.raan", &spec.RAAN)
	setIf("orbit.arg_periapsis", &spec.ArgPeriapsis)
	setIf("orbit.mean_anomaly", &spec.MeanAnomaly)
	setIf("orbit.bstar", &spec.Bstar)
	if viper.IsSet("time.epoch") {
		epoch, err := time.Parse(dateFormat, viper.GetString("time.epoch"))
		if err != nil {
			return spec, err
		}
		spec.Epoch = epoch.UTC()
	}
	return spec, nil
}

func timeGridFromConfig(spec missions.OrbitSpec, body string) (missions.TimeGrid, error) {
	epoch := spec.Epoch
	if epoch.IsZero() {
		epoch = missions.DefaultEpoch
	}
	cadence := viper.GetDuration("time.cadence")
	if cadence == 0 {
		cadence = time.Second
	}
	if viper.GetBool("time.single_orbit") {
		meanMotion, err := spec.MeanMotion(body)
		if err != nil {
			return missions.TimeGrid{}, err
		}
		return missions.NewSingleOrbitGrid(epoch, cadence, meanMotion)
	}
	samples := viper.GetInt("time.num_samples")
	if samples == 0 {
		samples = 100
	}
	return missions.NewTimeGrid(epoch, cadence, samples)
}
