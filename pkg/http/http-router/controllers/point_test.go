package controllers

import (
	"encoding/json"
	"testing"

	"github.com/lintang-b-s/sidewalk-nav/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointInputForms(t *testing.T) {
	want := datastructure.NewCoordinate(-7.7956, 110.3695)
	cases := []struct {
		name string
		body string
	}{
		{"lat lon object", `{"lat": -7.7956, "lon": 110.3695}`},
		{"latitude longitude object", `{"latitude": -7.7956, "longitude": 110.3695}`},
		{"lon lat array", `[110.3695, -7.7956]`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var p pointInput
			require.NoError(t, json.Unmarshal([]byte(c.body), &p))
			assert.Equal(t, want, p.Coordinate)
		})
	}
}

func TestPointInputRejects(t *testing.T) {
	for _, body := range []string{`{"lat": 1}`, `[1, 2, 3]`, `"here"`, `{}`} {
		var p pointInput
		assert.Error(t, json.Unmarshal([]byte(body), &p), body)
	}
}
