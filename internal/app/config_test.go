package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"simpletools/internal/config"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(true, false, "/tmp/conf")

	assert.True(t, cfg.Debug)
	assert.False(t, cfg.Silent)
	assert.Equal(t, "/tmp/conf", cfg.ConfigPath)
	assert.Nil(t, cfg.FileConfig)
}

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name   string
		cli    Config
		verify func(*testing.T, config.Config)
	}{
		{
			name: "no flags set keeps file values",
			cli:  Config{},
			verify: func(t *testing.T, c config.Config) {
				assert.Equal(t, config.TransportStdio, c.Server.Transport)
				assert.Equal(t, "localhost", c.Server.Host)
				assert.Equal(t, 8090, c.Server.Port)
				assert.Equal(t, "local", c.Server.UserID)
			},
		},
		{
			name: "every flag set wins",
			cli:  Config{Transport: "sse", Host: "0.0.0.0", Port: 9000, UserID: "alice"},
			verify: func(t *testing.T, c config.Config) {
				assert.Equal(t, config.TransportSSE, c.Server.Transport)
				assert.Equal(t, "0.0.0.0", c.Server.Host)
				assert.Equal(t, 9000, c.Server.Port)
				assert.Equal(t, "alice", c.Server.UserID)
			},
		},
		{
			name: "partial flags",
			cli:  Config{Port: 7777},
			verify: func(t *testing.T, c config.Config) {
				assert.Equal(t, 7777, c.Server.Port)
				assert.Equal(t, config.TransportStdio, c.Server.Transport)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileConfig := config.GetDefaultConfig()
			tt.cli.ApplyOverrides(&fileConfig)
			tt.verify(t, fileConfig)
		})
	}
}
