package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/birdgroups/internal/birdgroups"
	"github.com/tphakala/birdgroups/internal/buildinfo"
	"github.com/tphakala/birdgroups/internal/conf"
	"github.com/tphakala/birdgroups/internal/config"
	"github.com/tphakala/birdgroups/internal/errors"
	"github.com/tphakala/birdgroups/internal/report"
)

var (
	registryFile     = filepath.Join("..", "internal", "birdgroups", "testdata", "registry.yaml")
	conflictFile     = filepath.Join("..", "internal", "birdgroups", "testdata", "conflict.yaml")
	observationsFile = filepath.Join("..", "internal", "ebird", "testdata", "recent.json")
)

type result struct {
	stdout string
	stderr string
	err    error
}

// runCLI executes the command tree in-process with an isolated home
// directory so no user config is picked up.
func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	ctx := config.NewContext(conf.NewLoader(), buildinfo.NewContext("1.0.0", "2026-10-01"))
	root := RootCommand(ctx)

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestLookupCommand(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		stdin string
		args  []string
		want  string
	}{
		{
			name: "known and unknown names",
			args: []string{"lookup", "Mallard", "Common Loon"},
			want: "Mallard\tDabbling Ducks\nCommon Loon\tNOT_IN_GROUPS\n",
		},
		{
			name: "normalized spelling",
			args: []string{"lookup", "  ross’s   GOOSE "},
			want: "  ross’s   GOOSE \tGeese\n",
		},
		{
			name: "default flag",
			args: []string{"lookup", "--default", "Other", "Common Loon"},
			want: "Common Loon\tOther\n",
		},
		{
			name: "default from environment",
			env:  map[string]string{"BIRDGROUPS_LOOKUP_DEFAULT": "Unlisted"},
			args: []string{"lookup", "Common Loon"},
			want: "Common Loon\tUnlisted\n",
		},
		{
			name: "flag beats environment",
			env:  map[string]string{"BIRDGROUPS_LOOKUP_DEFAULT": "Unlisted"},
			args: []string{"lookup", "--default", "Other", "Common Loon"},
			want: "Common Loon\tOther\n",
		},
		{
			name:  "names from stdin",
			stdin: "Mallard\r\n\nBrant\n",
			args:  []string{"lookup"},
			want:  "Mallard\tDabbling Ducks\nBrant\tGeese\n",
		},
		{
			name: "alternative registry",
			args: []string{"lookup", "--registry", registryFile, "Common Loon", "Brant"},
			want: "Common Loon\tLoons\nBrant\tNOT_IN_GROUPS\n",
		},
		{
			name: "registry from environment",
			env:  map[string]string{"BIRDGROUPS_REGISTRY_PATH": registryFile},
			args: []string{"lookup", "Common Loon"},
			want: "Common Loon\tLoons\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			res := runCLI(t, tt.stdin, tt.args...)
			require.NoError(t, res.err, res.stderr)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestLookupConflictingRegistry(t *testing.T) {
	res := runCLI(t, "", "lookup", "--registry", conflictFile, "Mallard")
	require.Error(t, res.err)
	assert.True(t, errors.IsConflict(res.err))
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "appears in multiple groups: Dabbling Ducks and Ducks")
}

func TestNormalizeCommand(t *testing.T) {
	res := runCLI(t, "", "normalize", "  Ross’s  Goose ", "Mallard / American Black Duck")
	require.NoError(t, res.err)
	assert.Equal(t, "ross's goose\nmallard/american black duck\n", res.stdout)

	res = runCLI(t, "", "normalize")
	require.Error(t, res.err)
}

func TestGroupsCommand(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		res := runCLI(t, "", "groups", "--registry", registryFile)
		require.NoError(t, res.err)
		assert.Equal(t,
			"Loons (2)\n  Common Loon\n  Red-throated Loon\n\nDabbling Ducks (3)\n  Mallard\n  Mallard / American Black Duck\n  Gadwall\n",
			res.stdout)
	})

	t.Run("json", func(t *testing.T) {
		res := runCLI(t, "", "groups", "-o", "json")
		require.NoError(t, res.err)

		var doc struct {
			Groups []birdgroups.Group `json:"groups"`
		}
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &doc))
		assert.Equal(t, birdgroups.Registry(doc.Groups), birdgroups.DefaultRegistry())
	})

	t.Run("yaml loads back", func(t *testing.T) {
		res := runCLI(t, "", "groups", "--output", "yaml")
		require.NoError(t, res.err)

		reg, err := birdgroups.LoadRegistry(strings.NewReader(res.stdout))
		require.NoError(t, err)
		assert.Equal(t, birdgroups.DefaultRegistry(), reg)
	})

	t.Run("unknown format", func(t *testing.T) {
		res := runCLI(t, "", "groups", "-o", "csv")
		require.Error(t, res.err)
		assert.True(t, errors.IsCategory(res.err, errors.CategoryValidation))
	})
}

func TestValidateCommand(t *testing.T) {
	idx, err := birdgroups.NewDefaultIndex()
	require.NoError(t, err)

	res := runCLI(t, "", "validate")
	require.NoError(t, res.err)
	assert.Equal(t, fmt.Sprintf("built-in registry: ok, 15 groups, %d species\n", idx.Len()), res.stdout)

	res = runCLI(t, "", "validate", registryFile)
	require.NoError(t, res.err)
	assert.Equal(t, registryFile+": ok, 2 groups, 5 species\n", res.stdout)

	res = runCLI(t, "", "validate", conflictFile)
	require.Error(t, res.err)
	assert.True(t, errors.IsConflict(res.err))
	assert.Empty(t, res.stdout)

	res = runCLI(t, "", "validate", filepath.Join("testdata", "missing.yaml"))
	require.Error(t, res.err)
	assert.True(t, errors.IsCategory(res.err, errors.CategoryFileIO))
}

func TestSummaryCommand(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		res := runCLI(t, "", "summary", observationsFile)
		require.NoError(t, res.err, res.stderr)
		assert.Contains(t, res.stdout, "Dabbling Ducks")
		assert.Contains(t, res.stdout, "NOT_IN_GROUPS")
		assert.NotContains(t, res.stdout, "Owls", "empty groups are hidden by default")
		assert.True(t, strings.HasSuffix(res.stdout, "Total: 5 records, 3 in groups\n"))
	})

	t.Run("all groups", func(t *testing.T) {
		res := runCLI(t, "", "summary", "--all", observationsFile)
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "Owls")
	})

	t.Run("json from stdin", func(t *testing.T) {
		data, err := os.ReadFile(observationsFile)
		require.NoError(t, err)

		res := runCLI(t, string(data), "summary", "-o", "json", "--default", "Other", "-")
		require.NoError(t, res.err)

		var s report.Summary
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &s))
		total, classified := s.Totals()
		assert.Equal(t, 5, total)
		assert.Equal(t, 3, classified)
		assert.Equal(t, "Other", s.Sections[len(s.Sections)-1].Group)
	})

	t.Run("bad input", func(t *testing.T) {
		res := runCLI(t, "not json", "summary", "-")
		require.Error(t, res.err)
		assert.True(t, errors.IsCategory(res.err, errors.CategoryFileParsing))
	})
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	abs, err := filepath.Abs(registryFile)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(cfgPath,
		[]byte("registry:\n  path: "+abs+"\nlookup:\n  default: Elsewhere\n"), 0o600))

	res := runCLI(t, "", "--config", cfgPath, "lookup", "Common Loon", "Brant")
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "Common Loon\tLoons\nBrant\tElsewhere\n", res.stdout)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("log:\n  level: loud\n"), 0o600))

	res = runCLI(t, "", "--config", broken, "lookup", "Mallard")
	require.Error(t, res.err)
	assert.True(t, errors.IsCategory(res.err, errors.CategoryConfiguration))

	res = runCLI(t, "", "--config", broken, "version")
	require.NoError(t, res.err, "version does not read the config")
	assert.Equal(t, "birdgroups 1.0.0 (built 2026-10-01)\n", res.stdout)
}

func TestDebugLogging(t *testing.T) {
	res := runCLI(t, "", "--debug", "lookup", "Mallard")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "settings loaded")
	assert.Contains(t, res.stderr, "trace_id=")

	res = runCLI(t, "", "lookup", "Mallard")
	require.NoError(t, res.err)
	assert.NotContains(t, res.stderr, "settings loaded")
}
