package datastructure

import (
	"errors"
	"math"
	"testing"

	"github.com/lintang-b-s/sidewalk-nav/pkg"
	"github.com/stretchr/testify/assert"
)

func TestCoordinateValidate(t *testing.T) {
	tests := []struct {
		name    string
		coord   Coordinate
		wantErr bool
	}{
		{name: "schaumburg library", coord: NewCoordinate(42.025464, -88.083289)},
		{name: "poles and antimeridian", coord: NewCoordinate(-90, 180)},
		{name: "NaN latitude", coord: NewCoordinate(math.NaN(), 10), wantErr: true},
		{name: "infinite longitude", coord: NewCoordinate(10, math.Inf(1)), wantErr: true},
		{name: "latitude out of range", coord: NewCoordinate(91, 0), wantErr: true},
		{name: "longitude out of range", coord: NewCoordinate(0, -180.5), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.coord.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalidCoordinate))
			assert.Equal(t, pkg.ErrBadParamInput, pkg.ErrorCode(err))
		})
	}
}

func TestFromLonLat(t *testing.T) {
	c := FromLonLat([2]float64{-88.0531299984337, 42.0629624921386})
	assert.Equal(t, 42.0629624921386, c.Lat)
	assert.Equal(t, -88.0531299984337, c.Lon)
	assert.Equal(t, [2]float64{-88.0531299984337, 42.0629624921386}, c.LonLat())
}
