package cli

import (
	"io"

	"github.com/Flyrell/transithours/internal/interval"
	"github.com/Flyrell/transithours/internal/route"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// tagFlagNames maps command line flags to the tag they stand for, in the
// order they are read.
var tagFlagNames = []struct {
	flag string
	tag  string
}{
	{"opening-hours", interval.TagOpeningHours},
	{"interval", interval.TagInterval},
	{"interval-conditional", interval.TagIntervalConditional},
}

// commandLineRoute names tags given directly as flags.
const commandLineRoute = "command line"

// withTagFlags returns the flags selecting a route, followed by extra.
func withTagFlags(extra ...StringFlag) []StringFlag {
	flags := []StringFlag{{Name: "route", Usage: "route name or ID from the catalog"}}
	for _, tf := range tagFlagNames {
		flags = append(flags, StringFlag{Name: tf.flag, Usage: tf.tag + " tag value"})
	}
	return append(flags, extra...)
}

// readRoute returns the catalog route named by --route, or a route made of
// the tag flags that were given. A tag flag that is not given is an absent
// tag.
func readRoute(cmd *cobra.Command) (route.Route, error) {
	name, _ := cmd.Flags().GetString("route")
	if name != "" {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return route.Route{}, err
		}
		r, err := cat.Find(name)
		if err != nil {
			return route.Route{}, err
		}
		return *r, nil
	}

	tags := map[string]string{}
	for _, tf := range tagFlagNames {
		if cmd.Flags().Changed(tf.flag) {
			v, _ := cmd.Flags().GetString(tf.flag)
			tags[tf.tag] = v
		}
	}
	return route.Route{Name: commandLineRoute, Tags: tags}, nil
}

func loadCatalog(cmd *cobra.Command) (*route.Catalog, error) {
	path, _ := cmd.Flags().GetString("routes")
	if path == "" {
		path = route.DefaultPath
	}
	return route.Load(path)
}

func newConverter(cmd *cobra.Command) *interval.Converter {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return interval.NewConverter(interval.WithLogger(newLogger(cmd.ErrOrStderr(), verbose)))
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{Level: level, Prefix: "transithours"})
}
