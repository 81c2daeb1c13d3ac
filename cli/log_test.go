package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardnew/minigrep/log"
)

func TestLogConfig_Scan(t *testing.T) {
	t.Cleanup(func() { log.Config(log.WithOutput(os.Stderr)) })
	log.Config(log.WithOutput(&bytes.Buffer{}))

	tests := []struct {
		name string
		args []string
		want logConfig
	}{
		{
			name: "none",
			args: []string{"query", "file.txt"},
			want: logConfig{Level: "info", Format: "text", TimeLayout: "none"},
		},
		{
			name: "assigned values",
			args: []string{"--log-level=debug", "--log-format=json", "--log-time-layout=rfc3339"},
			want: logConfig{Level: "debug", Format: "json", TimeLayout: "rfc3339"},
		},
		{
			name: "separate values",
			args: []string{"--log-level", "warn", "--log-format", "json", "query"},
			want: logConfig{Level: "warn", Format: "json", TimeLayout: "none"},
		},
		{
			name: "missing value",
			args: []string{"--log-time-layout", "--log-caller"},
			want: logConfig{Level: "info", Format: "text", Caller: true},
		},
		{
			name: "booleans",
			args: []string{"--log-pretty", "--log-caller=false"},
			want: logConfig{Level: "info", Format: "text", TimeLayout: "none", Pretty: true},
		},
		{
			name: "negated",
			args: []string{"--log-pretty", "--no-log-pretty", "--no-log-caller=false"},
			want: logConfig{Level: "info", Format: "text", TimeLayout: "none", Caller: true},
		},
		{
			name: "invalid boolean",
			args: []string{"--log-caller=maybe"},
			want: logConfig{Level: "info", Format: "text", TimeLayout: "none"},
		},
		{
			name: "stops at terminator",
			args: []string{"--log-level=error", "--", "--log-level=debug"},
			want: logConfig{Level: "error", Format: "text", TimeLayout: "none"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := logConfig{Level: "info", Format: "text", TimeLayout: "none"}
			f.scan(tt.args)

			assert.Equal(t, tt.want, f)
		})
	}
}

func TestLogConfig_ScanAppliesToDefault(t *testing.T) {
	t.Cleanup(func() { log.Config(log.WithOutput(os.Stderr)) })
	log.Config(log.WithOutput(&bytes.Buffer{}))

	var f logConfig

	f.reset()
	f.scan([]string{"--log-level=trace", "--log-format=json"})

	assert.Equal(t, log.LevelTrace, log.Default().Level())
	assert.Equal(t, log.FormatJSON, log.Default().Format())

	f.reset()

	assert.Equal(t, log.LevelInfo, log.Default().Level())
	assert.Equal(t, log.FormatText, log.Default().Format())
}
