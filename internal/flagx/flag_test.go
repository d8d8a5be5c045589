package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "short flag with separate value",
			args:    []string{"-c", "client.toml", "-a", "localhost"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-c", "client.toml"},
		},
		{
			name:    "flag with equals",
			args:    []string{"-config=alt.json", "-a", "localhost"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-config=alt.json"},
		},
		{
			name:    "unknown flags ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "flag followed by another flag has no value",
			args:    []string{"-i", "-a", "host:1"},
			allowed: []string{"-i", "-a"},
			want:    []string{"-i", "-a", "host:1"},
		},
		{
			name:    "repeated flag preserved in order",
			args:    []string{"-db", "one.db", "-db", "two.db"},
			allowed: []string{"-db"},
			want:    []string{"-db", "one.db", "-db", "two.db"},
		},
		{
			name:    "empty args",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFileFromArgs(t *testing.T) {
	assert.Equal(t, "/etc/farmsync/client.toml", ConfigFileFromArgs([]string{"-c", "/etc/farmsync/client.toml"}))
	assert.Equal(t, "/tmp/x.json", ConfigFileFromArgs([]string{"-a", "h:1", "-config=/tmp/x.json"}))
	assert.Equal(t, "/b.json", ConfigFileFromArgs([]string{"-c", "/a.json", "-config", "/b.json"}))
	assert.Empty(t, ConfigFileFromArgs([]string{"-x", "1"}))
}

func TestConfigFile_ReadsOSArgs(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"farmsync", "-c", "from-os.toml"}
	assert.Equal(t, "from-os.toml", ConfigFile())
}
