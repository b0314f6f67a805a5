package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPick(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		names []string
		want  []string
	}{
		{
			name:  "separate value",
			args:  []string{"-c", "conf.json", "-a", ":3000"},
			names: []string{"c"},
			want:  []string{"-c", "conf.json"},
		},
		{
			name:  "inline value with double dash",
			args:  []string{"--config=alt.json", "-a", ":3000"},
			names: []string{"config"},
			want:  []string{"--config=alt.json"},
		},
		{
			name:  "unknown flags and positionals dropped",
			args:  []string{"-x", "1", "--y=2", "positional"},
			names: []string{"c"},
			want:  []string{},
		},
		{
			name:  "trailing flag without value kept",
			args:  []string{"-t"},
			names: []string{"t"},
			want:  []string{"-t"},
		},
		{
			name:  "next dash token is not a value",
			args:  []string{"-t", "-a", ":3000"},
			names: []string{"t", "a"},
			want:  []string{"-t", "-a", ":3000"},
		},
		{
			name:  "repeated flag preserved in order",
			args:  []string{"-d", "one", "-d", "two"},
			names: []string{"d"},
			want:  []string{"-d", "one", "-d", "two"},
		},
		{
			name:  "empty args",
			args:  []string{},
			names: []string{"c"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pick(tt.args, tt.names...))
		})
	}
}

func TestConfigPath(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short", func(t *testing.T) {
		os.Args = []string{"bin", "-a", ":1", "-c", "/etc/tetris.json"}
		assert.Equal(t, "/etc/tetris.json", ConfigPath())
	})

	t.Run("long with equals", func(t *testing.T) {
		os.Args = []string{"bin", "-config=/tmp/x.json"}
		assert.Equal(t, "/tmp/x.json", ConfigPath())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"bin", "-a", ":1"}
		assert.Empty(t, ConfigPath())
	})
}
