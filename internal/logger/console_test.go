package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		log          func(l *ConsoleLogger)
		shouldAppear bool
	}{
		{name: "trace sees trace", logLevel: "trace", log: func(l *ConsoleLogger) { l.Tracef("msg") }, shouldAppear: true},
		{name: "debug blocks trace", logLevel: "debug", log: func(l *ConsoleLogger) { l.Tracef("msg") }, shouldAppear: false},
		{name: "debug sees debug", logLevel: "debug", log: func(l *ConsoleLogger) { l.Debugf("msg") }, shouldAppear: true},
		{name: "info blocks debug", logLevel: "info", log: func(l *ConsoleLogger) { l.Debugf("msg") }, shouldAppear: false},
		{name: "info sees info", logLevel: "info", log: func(l *ConsoleLogger) { l.Infof("msg") }, shouldAppear: true},
		{name: "warn blocks info", logLevel: "warn", log: func(l *ConsoleLogger) { l.Infof("msg") }, shouldAppear: false},
		{name: "warn sees warn", logLevel: "warn", log: func(l *ConsoleLogger) { l.Warnf("msg") }, shouldAppear: true},
		{name: "error blocks warn", logLevel: "error", log: func(l *ConsoleLogger) { l.Warnf("msg") }, shouldAppear: false},
		{name: "error sees error", logLevel: "error", log: func(l *ConsoleLogger) { l.Errorf("msg") }, shouldAppear: true},
		{name: "default blocks debug", logLevel: "", log: func(l *ConsoleLogger) { l.Debugf("msg") }, shouldAppear: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.log(NewConsoleLogger(buf, tt.logLevel))
			assert.Equal(t, tt.shouldAppear, strings.Contains(buf.String(), "msg"))
		})
	}
}

func TestConsoleLoggerFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	NewConsoleLogger(buf, "debug").Debugf("skipping %s", "a/b")

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] skipping a/b")
	assert.True(t, strings.HasPrefix(out, "["))
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestNormalizeLevel(t *testing.T) {
	assert.Equal(t, "debug", NormalizeLevel(" DEBUG "))
	assert.Equal(t, "warn", NormalizeLevel("verbose"))
	assert.Equal(t, "warn", NormalizeLevel(""))
}

func TestNilWriterDiscards(t *testing.T) {
	l := NewConsoleLogger(nil, "trace")
	assert.NotPanics(t, func() { l.Errorf("nothing") })
}
