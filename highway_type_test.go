package osm2route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighwayType(t *testing.T) {
	for str, ht := range highwaysTypes {
		if ht.String() != str {
			t.Errorf("String of %d must be '%s', but got '%s'", ht, str, ht.String())
		}
	}
	assert.True(t, getHighwayType("residential").Drivable())
	assert.False(t, getHighwayType("footway").Drivable())
	assert.Equal(t, HighwayType(0), getHighwayType("bridleway"))
	assert.Equal(t, []string{"footway", "bridleway"}, unusualRoadClasses([]string{"residential", "footway", "primary", "bridleway"}))
}
