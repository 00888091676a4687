package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/LdDl/osm2route"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitBadUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitBadUsage
	}
	format, err := osm2route.ParseOutputFormat(opts.Format)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitBadUsage
	}
	logger := newLogger(opts.Verbose, stderr)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	parser := osm2route.NewParser(
		opts.File,
		osm2route.WithRoadTags(opts.Tags),
		osm2route.WithStrictMode(opts.Strict),
		osm2route.WithLogger(logger),
	)
	logger.Debug(parser.String())

	reporter := osm2route.NewReporter(stdout, format, opts.Verbose)
	net, err := parser.BuildNetwork(ctx)
	if net != nil {
		if errSummary := reporter.Summary(net); errSummary != nil {
			logger.Error("Can't print summary", zap.Error(errSummary))
			return exitFailure
		}
	}
	if err != nil {
		logger.Error("Can't build network", zap.Error(err))
		return exitFailure
	}

	if opts.Out != "" {
		err = net.ExportToCSV(opts.Out, format)
		if err != nil {
			logger.Error("Can't export network", zap.Error(err))
			return exitFailure
		}
	}

	source, target, err := resolveEndpoints(net, opts)
	if err != nil {
		logger.Error("Can't resolve path endpoints", zap.Error(err))
		return exitFailure
	}

	path, err := findPath(net, opts, source, target)
	if err != nil {
		logger.Error("Can't find path", zap.Int64("source", int64(source)), zap.Int64("target", int64(target)), zap.Error(err))
		return exitFailure
	}
	err = reporter.Path(path)
	if err != nil {
		logger.Error("Can't print path", zap.Error(err))
		return exitFailure
	}
	return exitOK
}

// resolveEndpoints prefers OSM node identifiers over compact ones when both are given
func resolveEndpoints(net *osm2route.RoadNetwork, opts options) (osm2route.VertexID, osm2route.VertexID, error) {
	source := osm2route.VertexID(opts.Source)
	target := osm2route.VertexID(opts.Target)
	var err error
	if opts.SourceOSM != "" {
		source, err = net.VertexOf(osm2route.NodeID(opts.SourceOSM))
		if err != nil {
			return osm2route.NoVertex, osm2route.NoVertex, errors.Wrap(err, "Source")
		}
	}
	if opts.TargetOSM != "" {
		target, err = net.VertexOf(osm2route.NodeID(opts.TargetOSM))
		if err != nil {
			return osm2route.NoVertex, osm2route.NoVertex, errors.Wrap(err, "Target")
		}
	}
	return source, target, nil
}

func findPath(net *osm2route.RoadNetwork, opts options, source, target osm2route.VertexID) (*osm2route.Path, error) {
	if opts.Engine != "ch" {
		return net.ShortestPath(source, target)
	}
	engine, err := osm2route.NewContractionEngine(net)
	if err != nil {
		return nil, err
	}
	if opts.Out != "" {
		fnamePart := strings.Split(opts.Out, ".csv")
		err = engine.ExportShortcutsToFile(fnamePart[0] + "_shortcuts.csv")
		if err != nil {
			return nil, errors.Wrap(err, "Can't export shortcuts")
		}
	}
	return engine.ShortestPath(source, target)
}

func newLogger(verbose bool, stderr io.Writer) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(stderr),
		level,
	)
	return zap.New(core)
}
