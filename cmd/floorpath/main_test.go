package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const building = `{
	"building": {
		"floors": [["OOS", "OOO"], ["OOS", "OXO"]],
		"links": [{"from": {"x": 2, "y": 0, "z": 0}, "to": {"x": 2, "y": 0, "z": 1}}]
	},
	"query": {"start": {"x": 0, "y": 1, "z": 0}, "dest": {"x": 0, "y": 1, "z": 1}}
}`

func configDir(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "floorpath.json"), []byte(body), 0644))

	return dir
}

func TestRun_PrintsRoute(t *testing.T) {
	t.Cleanup(viper.Reset)
	var out, logs bytes.Buffer

	err := run(context.Background(), []string{"--config", configDir(t, building), "--algorithm", "astar"}, &out, &logs)
	require.NoError(t, err)

	assert.Equal(t, "cost 48, 6 cells\n"+
		"(0,1,0)\n(1,0,0)\n(2,0,0)\n(2,0,1)\n(1,0,1)\n(0,1,1)\n", out.String())
	assert.Contains(t, logs.String(), "building loaded")
	assert.Contains(t, logs.String(), "route found")
	assert.Contains(t, logs.String(), "algorithm=astar")
}

func TestRun_NoRoute(t *testing.T) {
	t.Cleanup(viper.Reset)
	var out, logs bytes.Buffer
	body := `{
		"building": {"floors": [["OXS"], ["OOS"]],
			"links": [{"from": {"x": 2, "y": 0, "z": 0}, "to": {"x": 2, "y": 0, "z": 1}}]},
		"query": {"start": {"x": 0, "y": 0, "z": 0}, "dest": {"x": 0, "y": 0, "z": 1}}
	}`

	err := run(context.Background(), []string{"--config", configDir(t, body)}, &out, &logs)
	assert.ErrorIs(t, err, errNoRoute)
	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), "query failed")
}

func TestRun_BadSettings(t *testing.T) {
	cases := map[string][]string{
		"algorithm": {"--algorithm", "bfs"},
		"policy":    {"--policy", "random"},
		"heuristic": {"--heuristic", "euclid"},
	}
	for name, extra := range cases {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(viper.Reset)
			args := append([]string{"--config", configDir(t, building)}, extra...)
			err := run(context.Background(), args, &bytes.Buffer{}, &bytes.Buffer{})
			assert.Error(t, err)
		})
	}
}

func TestRun_MissingConfig(t *testing.T) {
	t.Cleanup(viper.Reset)
	err := run(context.Background(), []string{"--config", t.TempDir()}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "error reading config file")
}
