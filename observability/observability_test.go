package observability

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestTextLoggerLine(t *testing.T) {
	var buf bytes.Buffer
	log := TextLogger(&buf)
	log.Info("loaded", String("path", "doc.json"), Int("roots", 2))

	want := "INFO loaded path=doc.json roots=2\n"
	if buf.String() != want {
		t.Errorf("line = %q, want %q", buf.String(), want)
	}
}

func TestTextLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := TextLogger(&buf)
	log.Debug("d")
	log.Warn("w")
	log.Error("e", Error("err", errors.New("boom")))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %q", lines)
	}
	if lines[0] != "DEBUG d" || lines[1] != "WARN w" || lines[2] != "ERROR e err=boom" {
		t.Errorf("lines = %q", lines)
	}
}

func TestTextLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	log := TextLogger(&buf).With(String("component", "render"))
	log.Info("start")
	log.With(Int("page", 3)).Info("next")

	want := "INFO start component=render\n" +
		"INFO next component=render page=3\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestNopLogger(t *testing.T) {
	var log Logger = NopLogger{}
	log.Info("ignored", String("k", "v"))
	if log.With(Int("n", 1)) == nil {
		t.Error("With returned nil")
	}
}
