package emit

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriterLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf)

	l.WithField("b", 2).WithField("a", 1).Infof("hello %s", "world")

	out := buf.String()
	if !strings.Contains(out, "INFO") {
		t.Errorf("Expected INFO level, got %q", out)
	}
	// Fields are rendered sorted by key.
	if !strings.Contains(out, "[a=1, b=2]") {
		t.Errorf("Expected sorted fields, got %q", out)
	}
	if !strings.Contains(out, "hello world") {
		t.Errorf("Expected the formatted message, got %q", out)
	}
}

func TestWriterLoggerWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf)

	l.WithField("child", true)
	l.Warn("plain")

	if strings.Contains(buf.String(), "child") {
		t.Errorf("Expected the parent logger to stay field-free, got %q", buf.String())
	}
}
