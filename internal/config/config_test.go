package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(cfg *Config)
		validate func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "token obrigatório",
			setup: func(cfg *Config) {
				cfg.Magento.AccessToken = "  "
			},
			validate: func(t *testing.T, cfg *Config, err error) {
				assert.True(t, errors.Is(err, ErrMissingMagentoToken))
			},
		},
		{
			name: "campos derivados",
			setup: func(cfg *Config) {
				cfg.Magento.BaseURL = "https://loja.example/rest/V1/"
				cfg.Magento.TimeoutSeconds = 12
				cfg.App.Timezone = "Europe/Amsterdam"
			},
			validate: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "https://loja.example/rest/V1", cfg.Magento.BaseURL)
				assert.Equal(t, 12*time.Second, cfg.Magento.Timeout)
				assert.Equal(t, "Europe/Amsterdam", cfg.App.Location.String())
				assert.Equal(t, 100, cfg.Magento.PageSize)
				assert.Equal(t, 1, cfg.Magento.MaxConcurrentLookups)
			},
		},
		{
			name: "fuso inválido",
			setup: func(cfg *Config) {
				cfg.App.Timezone = "Mars/Olympus"
			},
			validate: func(t *testing.T, cfg *Config, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Magento.AccessToken = "token"
			cfg.App.Timezone = "UTC"
			tt.setup(cfg)

			err := cfg.normalize()
			tt.validate(t, cfg, err)
		})
	}
}
