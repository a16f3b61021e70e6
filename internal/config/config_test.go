package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaleb-himes/wolfCLU/internal/config"
)

func valid() config.Config {
	return config.Config{Parallel: 1}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "hex key", mutate: func(c *config.Config) { c.Key = "00ff" }},
		{name: "bad hex key", mutate: func(c *config.Config) { c.Key = "xyz" }, wantErr: true},
		{name: "bad hex iv", mutate: func(c *config.Config) { c.IV = "0" }, wantErr: true},
		{name: "size too large", mutate: func(c *config.Config) { c.Size = 65 }, wantErr: true},
		{name: "negative length", mutate: func(c *config.Config) { c.Length = -1 }, wantErr: true},
		{name: "time above bound", mutate: func(c *config.Config) { c.Seconds = 11 }, wantErr: true},
		{name: "zero parallel", mutate: func(c *config.Config) { c.Parallel = 0 }, wantErr: true},
		{
			name: "password and key together",
			mutate: func(c *config.Config) {
				c.Password = "secret"
				c.Key = "00ff"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
