package osm2route

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/paulmach/osm/osmpbf"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type InputFormat uint16

const (
	FORMAT_XML = InputFormat(iota + 1)
	FORMAT_PBF
)

func (iotaIdx InputFormat) String() string {
	return [...]string{"xml", "pbf"}[iotaIdx-1]
}

// guessInputFormat picks format by file extension
func guessInputFormat(filename string) (InputFormat, error) {
	ext := filepath.Ext(filename)
	switch ext {
	case ".osm", ".xml":
		return FORMAT_XML, nil
	case ".pbf":
		return FORMAT_PBF, nil
	default:
		return 0, fmt.Errorf("File extension '%s' for file '%s' is not handled yet", ext, filename)
	}
}

func readOSM(ctx context.Context, filename string, logger *zap.Logger) (*OSMData, error) {
	format, err := guessInputFormat(filename)
	if err != nil {
		return nil, err
	}
	logger.Debug("Opening file", zap.String("filename", filename), zap.Stringer("format", format))
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "File open")
	}
	defer file.Close()
	return ReadOSM(ctx, file, format, logger)
}

// ReadOSM reads whole document from r. Nothing is returned for a document which failed to parse
func ReadOSM(ctx context.Context, r io.Reader, format InputFormat, logger *zap.Logger) (*OSMData, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	st := time.Now()
	sm := newOSMStateMachine(logger)
	switch format {
	case FORMAT_XML:
		if err := readOSMXML(ctx, r, sm); err != nil {
			return nil, err
		}
	case FORMAT_PBF:
		scanner := osmpbf.New(ctx, r, 4)
		defer scanner.Close()
		if err := readOSMObjects(scanner, sm); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("Unknown input format %d", format)
	}
	logger.Info("Document has been read",
		zap.Int("nodes", sm.data.NodesNum()),
		zap.Int("ways", sm.data.WaysNum()),
		zap.Duration("took", time.Since(st)),
	)
	return sm.data, nil
}
