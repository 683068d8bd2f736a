package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		boolFlags    []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-d", "data.db", "-x", "1"},
			allowedFlags: []string{"-d", "-l"},
			want:         []string{"-d", "data.db"},
		},
		{
			name:         "equals form",
			args:         []string{"-l=hi", "-x", "1"},
			allowedFlags: []string{"-d", "-l"},
			want:         []string{"-l=hi"},
		},
		{
			name:         "double dash matches the same name",
			args:         []string{"--config=alt.json", "--d", "x.db"},
			allowedFlags: []string{"-config", "-d"},
			want:         []string{"--config=alt.json", "--d", "x.db"},
		},
		{
			name:         "unknown flags and positionals ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next flag is not taken as value",
			args:         []string{"-c", "-i", "5"},
			allowedFlags: []string{"-c", "-i"},
			want:         []string{"-c", "-i", "5"},
		},
		{
			name:         "bool flag does not consume the next argument",
			args:         []string{"-once", "extra", "-i", "30"},
			allowedFlags: []string{"-once", "-i"},
			boolFlags:    []string{"-once"},
			want:         []string{"-once", "-i", "30"},
		},
		{
			name:         "bool flag with explicit value",
			args:         []string{"-login=false"},
			allowedFlags: []string{"-login"},
			boolFlags:    []string{"-login"},
			want:         []string{"-login=false"},
		},
		{
			name:         "stops at terminator",
			args:         []string{"-d", "a.db", "--", "-d", "b.db"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d", "a.db"},
		},
		{
			name:         "repeated flag keeps order",
			args:         []string{"-c", "one.json", "-c", "two.json"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags, tt.boolFlags...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "/path/short.json", ConfigPath([]string{"-c", "/path/short.json"}))
	assert.Equal(t, "/path/long.json", ConfigPath([]string{"-config", "/path/long.json"}))
	assert.Equal(t, "/path/eq.json", ConfigPath([]string{"-d", "x.db", "--config=/path/eq.json"}))
	assert.Empty(t, ConfigPath([]string{"-x", "1", "-y", "2"}))
	assert.Equal(t, "/path/2.json", ConfigPath([]string{"-c", "/path/1.json", "-config", "/path/2.json"}))
}
