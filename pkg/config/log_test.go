package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_LogConfig_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		level     string
		expectErr bool
	}{
		{name: "empty defaults", level: ""},
		{name: "debug", level: "debug"},
		{name: "info", level: "info"},
		{name: "warn", level: "warn"},
		{name: "error", level: "error"},
		{name: "unknown level rejected", level: "verbose", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			err := (&LogConfig{Level: tc.level}).Validate()
			// then
			if tc.expectErr {
				assert.ErrorContains(t, err, "invalid log level")
				return
			}
			assert.NoError(t, err)
		})
	}
}
