package osm2route

// HighwayType is a value of 'highway' tag
type HighwayType uint16

const (
	HIGHWAY_MOTORWAY = HighwayType(iota + 1)
	HIGHWAY_MOTORWAY_LINK
	HIGHWAY_TRUNK
	HIGHWAY_TRUNK_LINK
	HIGHWAY_PRIMARY
	HIGHWAY_PRIMARY_LINK
	HIGHWAY_SECONDARY
	HIGHWAY_SECONDARY_LINK
	HIGHWAY_TERTIARY
	HIGHWAY_TERTIARY_LINK
	HIGHWAY_RESIDENTIAL
	HIGHWAY_LIVING_STREET
	HIGHWAY_SERVICE
	HIGHWAY_ROAD
	HIGHWAY_UNCLASSIFIED
	HIGHWAY_TRACK
	HIGHWAY_CYCLEWAY
	HIGHWAY_FOOTWAY
	HIGHWAY_PEDESTRIAN
	HIGHWAY_STEPS
)

func (iotaIdx HighwayType) String() string {
	return [...]string{"motorway", "motorway_link", "trunk", "trunk_link", "primary", "primary_link", "secondary", "secondary_link", "tertiary", "tertiary_link", "residential", "living_street", "service", "road", "unclassified", "track", "cycleway", "footway", "pedestrian", "steps"}[iotaIdx-1]
}

// Drivable reports whether motor vehicles are expected on roads of this class
func (iotaIdx HighwayType) Drivable() bool {
	return iotaIdx >= HIGHWAY_MOTORWAY && iotaIdx <= HIGHWAY_UNCLASSIFIED
}

// getHighwayType returns 0 for values outside of the known set
func getHighwayType(str string) HighwayType {
	if found, ok := highwaysTypes[str]; ok {
		return found
	}
	return 0
}

var (
	highwaysTypes = map[string]HighwayType{
		"motorway":       HIGHWAY_MOTORWAY,
		"motorway_link":  HIGHWAY_MOTORWAY_LINK,
		"trunk":          HIGHWAY_TRUNK,
		"trunk_link":     HIGHWAY_TRUNK_LINK,
		"primary":        HIGHWAY_PRIMARY,
		"primary_link":   HIGHWAY_PRIMARY_LINK,
		"secondary":      HIGHWAY_SECONDARY,
		"secondary_link": HIGHWAY_SECONDARY_LINK,
		"tertiary":       HIGHWAY_TERTIARY,
		"tertiary_link":  HIGHWAY_TERTIARY_LINK,
		"residential":    HIGHWAY_RESIDENTIAL,
		"living_street":  HIGHWAY_LIVING_STREET,
		"service":        HIGHWAY_SERVICE,
		"road":           HIGHWAY_ROAD,
		"unclassified":   HIGHWAY_UNCLASSIFIED,
		"track":          HIGHWAY_TRACK,
		"cycleway":       HIGHWAY_CYCLEWAY,
		"footway":        HIGHWAY_FOOTWAY,
		"pedestrian":     HIGHWAY_PEDESTRIAN,
		"steps":          HIGHWAY_STEPS,
	}
)

// unusualRoadClasses returns configured classes which are unknown or not meant for motor vehicles
func unusualRoadClasses(tags []string) []string {
	unusual := make([]string, 0)
	for _, tag := range tags {
		if ht := getHighwayType(tag); ht == 0 || !ht.Drivable() {
			unusual = append(unusual, tag)
		}
	}
	return unusual
}
