package osm2route

import (
	"context"
	"encoding/xml"
	"io"
	"math"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// readOSMXML pulls tokens from the document and feeds element events into the state machine.
// Syntax and encoding errors are fatal, everything else is logged and skipped.
func readOSMXML(ctx context.Context, r io.Reader, sm *osmStateMachine) error {
	decoder := xml.NewDecoder(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		token, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			line, _ := decoder.InputPos()
			return errors.Wrapf(ErrParse, "line %d: %v", line, err)
		}
		switch t := token.(type) {
		case xml.StartElement:
			sm.onStartElement(t.Name.Local, t.Attr)
		case xml.EndElement:
			sm.onEndElement(t.Name.Local)
		case xml.Comment:
			sm.logger.Debug("Comment", zap.ByteString("text", t))
		}
	}
}

func (sm *osmStateMachine) onStartElement(name string, attrs []xml.Attr) {
	switch name {
	case "node":
		id := NodeID(attrValue(attrs, "id"))
		pt, hasPoint := GeoPoint{}, true
		lat, err := strconv.ParseFloat(attrValue(attrs, "lat"), 64)
		if err != nil {
			hasPoint = false
			sm.logger.Warn("Can't parse latitude", zap.String("node_id", string(id)), zap.Error(err))
		}
		lon, err := strconv.ParseFloat(attrValue(attrs, "lon"), 64)
		if err != nil {
			hasPoint = false
			sm.logger.Warn("Can't parse longitude", zap.String("node_id", string(id)), zap.Error(err))
		}
		if hasPoint && (!isFinite(lat) || !isFinite(lon)) {
			hasPoint = false
			sm.logger.Warn("Coordinates are not finite", zap.String("node_id", string(id)), zap.Float64("lat", lat), zap.Float64("lon", lon))
		}
		if hasPoint {
			pt = GeoPoint{Lat: lat, Lon: lon}
		}
		sm.startNode(id, pt, hasPoint)
	case "way":
		sm.startWay(WayID(attrValue(attrs, "id")))
	case "nd":
		sm.wayNodeRef(NodeID(attrValue(attrs, "ref")))
	case "tag":
		sm.wayTag(attrValue(attrs, "k"), attrValue(attrs, "v"))
	}
}

func (sm *osmStateMachine) onEndElement(name string) {
	switch name {
	case "node":
		sm.endNode()
	case "way":
		sm.endWay()
	}
}

func attrValue(attrs []xml.Attr, name string) string {
	for _, attr := range attrs {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
