package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewRespectsLevel(t *testing.T) {
	out := &bytes.Buffer{}
	log := New(out, "warn", "text")

	log.Info("should be dropped")
	log.Warn("should appear")

	got := out.String()
	if strings.Contains(got, "should be dropped") {
		t.Errorf("info line logged at warn level: %q", got)
	}
	if !strings.Contains(got, "should appear") {
		t.Errorf("warn line missing: %q", got)
	}
}

func TestNewFallsBackToInfoOnBadLevel(t *testing.T) {
	log := New(&bytes.Buffer{}, "loud", "text")
	if log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", log.GetLevel())
	}
}

func TestNewJSONFormat(t *testing.T) {
	out := &bytes.Buffer{}
	log := New(out, "info", "json")

	log.WithField("key", "name").Info("set")

	got := out.String()
	if !strings.Contains(got, `"key":"name"`) {
		t.Errorf("json output = %q, want key field", got)
	}
}
