package main

import (
	"flag"
	"io"
	"os"

	"github.com/LdDl/osm2route"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// options of a single run. YAML file fills them first, explicitly set flags win
type options struct {
	File      string   `yaml:"file" validate:"required"`
	Tags      []string `yaml:"tags" validate:"required,min=1,dive,required"`
	Source    int64    `yaml:"source" validate:"min=0"`
	Target    int64    `yaml:"target" validate:"min=0"`
	SourceOSM string   `yaml:"source_osm"`
	TargetOSM string   `yaml:"target_osm"`
	Engine    string   `yaml:"engine" validate:"oneof=dijkstra ch"`
	Format    string   `yaml:"format" validate:"oneof=text wkt geojson gpx"`
	Out       string   `yaml:"out"`
	Strict    bool     `yaml:"strict"`
	Verbose   bool     `yaml:"verbose"`
}

func defaultOptions() options {
	return options{
		File:   "arlington.osm",
		Tags:   []string{osm2route.DEFAULT_ROAD_CLASS},
		Source: 10,
		Target: 0,
		Engine: "dijkstra",
		Format: "text",
		Strict: true,
	}
}

var validate = validator.New()

// parseOptions reads command line arguments (without program name)
func parseOptions(args []string, stderr io.Writer) (options, error) {
	opts := defaultOptions()
	fs := flag.NewFlagSet("osm2route", flag.ContinueOnError)
	fs.SetOutput(stderr)

	file := fs.String("file", opts.File, "Filename of *.osm (XML) or *.osm.pbf file")
	tagStr := fs.String("tags", osm2route.DEFAULT_ROAD_CLASS, "Set of needed highway classes (separated by commas)")
	source := fs.Int64("source", opts.Source, "Compact ID of source vertex")
	target := fs.Int64("target", opts.Target, "Compact ID of target vertex")
	sourceOSM := fs.String("source-osm", "", "OSM node ID of source. Overrides -source")
	targetOSM := fs.String("target-osm", "", "OSM node ID of target. Overrides -target")
	engine := fs.String("engine", opts.Engine, "Shortest path engine. Expected values: dijkstra / ch")
	format := fs.String("format", opts.Format, "Format of output waypoints. Expected values: text / wkt / geojson / gpx")
	out := fs.String("out", "", "Prefix of CSV files for network export. E.g.: if prefix is 'map.csv' then 'map_roads.csv', 'map_edges.csv', 'map_vertices.csv' will be produced. Empty value disables export")
	strict := fs.Bool("strict", opts.Strict, "Abort on ways referencing unknown nodes. When disabled such ways are skipped")
	verbose := fs.Bool("verbose", opts.Verbose, "Print every road and enable debug logging")
	configPath := fs.String("config", "", "Path to YAML file with options")

	if err := fs.Parse(args); err != nil {
		return opts, errors.Wrap(err, "Can't parse flags")
	}

	if *configPath != "" {
		if err := loadOptionsFile(*configPath, &opts); err != nil {
			return opts, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "file":
			opts.File = *file
		case "tags":
			opts.Tags = osm2route.ParseRoadTags(*tagStr)
		case "source":
			opts.Source = *source
		case "target":
			opts.Target = *target
		case "source-osm":
			opts.SourceOSM = *sourceOSM
		case "target-osm":
			opts.TargetOSM = *targetOSM
		case "engine":
			opts.Engine = *engine
		case "format":
			opts.Format = *format
		case "out":
			opts.Out = *out
		case "strict":
			opts.Strict = *strict
		case "verbose":
			opts.Verbose = *verbose
		}
	})

	if err := validate.Struct(opts); err != nil {
		return opts, errors.Wrap(err, "Invalid options")
	}
	return opts, nil
}

func loadOptionsFile(path string, opts *options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "Can't read config file")
	}
	if err := yaml.Unmarshal(data, opts); err != nil {
		return errors.Wrap(err, "Can't parse config file")
	}
	return nil
}
