package logger

import (
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/ytget/yt-audio/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		env        config.Environment
		level      logrus.Level
		jsonOutput bool
	}{
		{"text info", config.Environment{LogLevel: "info", LogFormat: "text"}, logrus.InfoLevel, false},
		{"json debug", config.Environment{LogLevel: "debug", LogFormat: "json"}, logrus.DebugLevel, true},
		{"unknown level falls back to info", config.Environment{LogLevel: "loud"}, logrus.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(&tt.env)

			if log.GetLevel() != tt.level {
				t.Errorf("expected level %s, got %s", tt.level, log.GetLevel())
			}
			_, isJSON := log.Formatter.(*logrus.JSONFormatter)
			if isJSON != tt.jsonOutput {
				t.Errorf("expected JSON formatter %v, got %T", tt.jsonOutput, log.Formatter)
			}
		})
	}
}
