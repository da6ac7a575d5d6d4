package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"workable/internal/auth"
	"workable/internal/config"
	"workable/internal/exitcode"
	"workable/internal/output"
	"workable/internal/service"
)

func init() {
	Register(&WeatherCmd{})
}

// WeatherCmd implements the weather command. Takes a city name, or an
// explicit --lat/--lng pair in place of the browser geolocation the
// dashboard used.
type WeatherCmd struct {
	lat string
	lng string
}

// SetCoords sets the coordinate flags (for testing).
func (c *WeatherCmd) SetCoords(lat, lng string) {
	c.lat = lat
	c.lng = lng
}

func (c *WeatherCmd) Name() string      { return "weather" }
func (c *WeatherCmd) Aliases() []string { return nil }
func (c *WeatherCmd) Synopsis() string  { return "Look up current weather" }
func (c *WeatherCmd) Usage() string     { return "workable weather <city> | --lat <lat> --lng <lng>" }
func (c *WeatherCmd) NeedsAuth() bool   { return false }

func (c *WeatherCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.lat, "lat", "", "")
	fs.StringVar(&c.lng, "lng", "", "")
}

func (c *WeatherCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, ac *auth.Controller, args []string, out, errOut io.Writer) int {
	query, code := c.buildQuery(args, errOut)
	if code != exitcode.Success {
		return code
	}

	weather, err := svc.Weather(ctx, query)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	output.FormatWeather(out, weather)
	return exitcode.Success
}

func (c *WeatherCmd) buildQuery(args []string, errOut io.Writer) (service.WeatherQuery, int) {
	if c.lat != "" || c.lng != "" {
		if c.lat == "" || c.lng == "" {
			fmt.Fprintln(errOut, "error: --lat and --lng must be used together")
			return service.WeatherQuery{}, exitcode.UserError
		}
		lat, err := strconv.ParseFloat(c.lat, 64)
		if err != nil {
			fmt.Fprintf(errOut, "error: invalid latitude: %s\n", c.lat)
			return service.WeatherQuery{}, exitcode.UserError
		}
		lng, err := strconv.ParseFloat(c.lng, 64)
		if err != nil {
			fmt.Fprintf(errOut, "error: invalid longitude: %s\n", c.lng)
			return service.WeatherQuery{}, exitcode.UserError
		}
		return service.WeatherQuery{Lat: lat, Lng: lng, ByCoords: true}, exitcode.Success
	}

	city := strings.TrimSpace(strings.Join(args, " "))
	if city == "" {
		fmt.Fprintln(errOut, "error: city required")
		return service.WeatherQuery{}, exitcode.UserError
	}
	return service.WeatherQuery{City: city}, exitcode.Success
}
