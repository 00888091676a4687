package osm2route

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Parser struct {
	filename   string
	roadCfg    RoadConfiguration
	strictMode bool
	logger     *zap.Logger
}

func (parser *Parser) String() string {
	return fmt.Sprintf(`
Network parser parameters:
	filename: '%s'
	entity_name: '%s'
	road_types: '%s'
	strict_mode enabled?: %t
	`,
		parser.filename,
		parser.roadCfg.EntityName,
		strings.Join(parser.roadCfg.Tags, ","),
		parser.strictMode,
	)
}

func NewParser(fileName string, options ...func(*Parser)) *Parser {
	parser := &Parser{
		filename:   fileName,
		roadCfg:    DefaultRoadConfiguration(),
		strictMode: true,
		logger:     zap.NewNop(),
	}
	for _, option := range options {
		option(parser)
	}
	return parser
}

// WithRoadTags sets accepted road classes. Empty list keeps the default one
func WithRoadTags(tags []string) func(*Parser) {
	return func(parser *Parser) {
		if len(tags) == 0 {
			return
		}
		parser.roadCfg.Tags = tags
	}
}

func WithStrictMode(strictMode bool) func(*Parser) {
	return func(parser *Parser) {
		parser.strictMode = strictMode
	}
}

func WithLogger(logger *zap.Logger) func(*Parser) {
	return func(parser *Parser) {
		if logger == nil {
			return
		}
		parser.logger = logger
	}
}

// BuildNetwork reads the file and runs every stage up to the road graph
func (parser *Parser) BuildNetwork(ctx context.Context) (*RoadNetwork, error) {
	st := time.Now()
	parser.logger.Info("Start building network", zap.String("filename", parser.filename))
	data, err := readOSM(ctx, parser.filename, parser.logger)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read OSM data")
	}
	net, err := NewRoadNetwork(data, parser.roadCfg, parser.strictMode, parser.logger)
	if err != nil {
		return net, errors.Wrap(err, "Can't prepare road network")
	}
	parser.logger.Info("Network has been built", zap.Duration("took", time.Since(st)))
	return net, nil
}
