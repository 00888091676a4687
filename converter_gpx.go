package osm2route

import (
	"io"
	"strconv"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

const gpxCreator = "osm2route"

// PrepareGPXDocument builds GPX 1.1 document with a single track through every vertex of the path
func PrepareGPXDocument(path *Path) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	gpx := doc.CreateElement("gpx")
	gpx.CreateAttr("version", "1.1")
	gpx.CreateAttr("creator", gpxCreator)
	gpx.CreateAttr("xmlns", "http://www.topografix.com/GPX/1/1")

	trk := gpx.CreateElement("trk")
	trk.CreateElement("name").SetText(pathName(path))
	seg := trk.CreateElement("trkseg")
	for i, pt := range path.Points {
		trkpt := seg.CreateElement("trkpt")
		trkpt.CreateAttr("lat", formatCoordinate(pt.Lat))
		trkpt.CreateAttr("lon", formatCoordinate(pt.Lon))
		trkpt.CreateElement("name").SetText(string(path.NodeIDs[i]))
	}
	doc.Indent(2)
	return doc
}

// WriteGPX writes GPX document of the path into w
func WriteGPX(w io.Writer, path *Path) error {
	_, err := PrepareGPXDocument(path).WriteTo(w)
	if err != nil {
		return errors.Wrap(err, "Can't write GPX document")
	}
	return nil
}

func pathName(path *Path) string {
	if len(path.NodeIDs) == 0 {
		return ""
	}
	return string(path.NodeIDs[0]) + " - " + string(path.NodeIDs[len(path.NodeIDs)-1])
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}
