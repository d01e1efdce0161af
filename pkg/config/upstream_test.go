package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_UpstreamConfig_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       UpstreamConfig
		expectErr string
	}{
		{
			name: "valid config",
			cfg:  UpstreamConfig{URL: "https://fakestoreapi.com", Timeout: 10 * time.Second},
		},
		{
			name:      "missing URL",
			cfg:       UpstreamConfig{Timeout: 10 * time.Second},
			expectErr: "upstream URL is not configured",
		},
		{
			name:      "URL without scheme",
			cfg:       UpstreamConfig{URL: "fakestoreapi.com", Timeout: 10 * time.Second},
			expectErr: "invalid upstream URL",
		},
		{
			name:      "zero timeout",
			cfg:       UpstreamConfig{URL: "https://fakestoreapi.com"},
			expectErr: "invalid upstream timeout",
		},
		{
			name:      "negative timeout",
			cfg:       UpstreamConfig{URL: "https://fakestoreapi.com", Timeout: -time.Second},
			expectErr: "invalid upstream timeout",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			err := tc.cfg.Validate()
			// then
			if tc.expectErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectErr)
		})
	}
}
