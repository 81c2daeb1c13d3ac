package log

import (
	"slices"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"Info", LevelInfo},
		{" warn ", LevelWarn},
		{"error", LevelError},
		{"warn+1", LevelWarn + 1},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	for name := range Levels() {
		if got := ParseLevel(name).String(); got != name {
			t.Errorf("ParseLevel(%q).String() = %q", name, got)
		}
	}

	if got := (LevelInfo + 2).String(); got != "INFO+2" {
		t.Errorf("(LevelInfo+2).String() = %q, want INFO+2", got)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"text", FormatText},
		{"yaml", DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseFormat(tt.in); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if got := slices.Collect(Formats()); !slices.Equal(got, []string{"text", "json"}) {
		t.Errorf("Formats() = %v", got)
	}
}

func TestConfig_Options(t *testing.T) {
	c := apply(config{},
		WithLevel(LevelWarn),
		WithFormat(FormatJSON),
		WithCaller(true),
		WithPretty(true),
		nil,
	)

	if c.level != LevelWarn {
		t.Errorf("level = %v, want warn", c.level)
	}

	if c.format != FormatJSON {
		t.Errorf("format = %v, want json", c.format)
	}

	if !c.caller || !c.pretty {
		t.Errorf("caller = %v, pretty = %v, want both true", c.caller, c.pretty)
	}

	if c = WithOutput(nil)(c); c.output == nil {
		t.Error("WithOutput(nil) left output nil")
	}
}

func TestMakeFormatTime(t *testing.T) {
	ts := time.Date(2024, 3, 9, 15, 4, 5, 123456789, time.UTC)

	tests := []struct {
		layout string
		want   string
	}{
		{"RFC3339", "2024-03-09T15:04:05Z"},
		{"rfc-3339", "2024-03-09T15:04:05Z"},
		{"RFC3339Nano", "2024-03-09T15:04:05.123456789Z"},
		{"Kitchen", "3:04PM"},
		{"ms", "Mar  9 15:04:05.123"},
		{"2006/01/02", "2024/03/09"},
		{"none", ""},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			if got := makeFormatTime(tt.layout)(ts); got != tt.want {
				t.Errorf("layout %q: got %q, want %q", tt.layout, got, tt.want)
			}
		})
	}
}
