package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/eldamo-anki/internal/infrastructure/config"
)

func TestNewLogger(t *testing.T) {
	cases := []struct {
		name string
		log  config.LogConfig
		want logrus.Level
	}{
		{name: "info", log: config.LogConfig{Level: "info"}, want: logrus.InfoLevel},
		{name: "warn", log: config.LogConfig{Level: "warn", Format: "text"}, want: logrus.WarnLevel},
		{name: "verbose", log: config.LogConfig{Level: "error", Verbose: true}, want: logrus.DebugLevel},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			logger, err := NewLogger(&config.Config{Log: c.log}, nil)
			if err != nil {
				t.Fatalf("new logger: %v", err)
			}
			if logger.GetLevel() != c.want {
				t.Fatalf("expected level %s, got %s", c.want, logger.GetLevel())
			}
		})
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	if _, err := NewLogger(&config.Config{Log: config.LogConfig{Level: "loud"}}, nil); err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestNewLogger_Formats(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&config.Config{Log: config.LogConfig{Level: "info", Format: "json"}}, &buf)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.WithField("deck", "Quenya").Info("collected cards")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json output, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "collected cards" || entry["deck"] != "Quenya" {
		t.Fatalf("unexpected entry %v", entry)
	}

	buf.Reset()
	logger, err = NewLogger(&config.Config{Log: config.LogConfig{Level: "info", Format: "text"}}, &buf)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("collected cards")
	if !strings.Contains(buf.String(), `msg="collected cards"`) {
		t.Fatalf("unexpected text output %q", buf.String())
	}
}
