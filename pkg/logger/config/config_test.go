package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Configuration
		wantErr bool
	}{
		{"info rfc3339", Configuration{Level: INFO_LEVEL, TimeFormat: time.RFC3339Nano}, false},
		{"debug kitchen", Configuration{Level: DEBUG_LEVEL, TimeFormat: time.Kitchen}, false},
		{"level too high", Configuration{Level: DEBUG_LEVEL + 1, TimeFormat: time.RFC3339}, true},
		{"negative level", Configuration{Level: -1, TimeFormat: time.RFC3339}, true},
		{"empty format", Configuration{Level: INFO_LEVEL}, true},
		{"constant format", Configuration{Level: INFO_LEVEL, TimeFormat: "log"}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.cfg.Validate()
			if c.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
