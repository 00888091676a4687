package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "osm2route.yaml")
	require.NoError(t, os.WriteFile(fname, []byte(content), 0644))
	return fname
}

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := parseOptions(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, defaultOptions(), opts)
	assert.Equal(t, int64(10), opts.Source)
	assert.Equal(t, int64(0), opts.Target)
	assert.True(t, opts.Strict)
}

func TestParseOptionsFlags(t *testing.T) {
	opts, err := parseOptions([]string{"-file", "map.osm.pbf", "-tags", "residential,primary", "-source", "3", "-engine", "ch", "-format", "gpx", "-strict=false"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "map.osm.pbf", opts.File)
	assert.Equal(t, []string{"residential", "primary"}, opts.Tags)
	assert.Equal(t, int64(3), opts.Source)
	assert.Equal(t, "ch", opts.Engine)
	assert.Equal(t, "gpx", opts.Format)
	assert.False(t, opts.Strict)
}

func TestParseOptionsConfigFile(t *testing.T) {
	fname := writeConfig(t, `
file: city.osm
tags: [residential, tertiary]
source: 4
target: 7
format: wkt
verbose: true
`)
	opts, err := parseOptions([]string{"-config", fname, "-target", "1"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "city.osm", opts.File)
	assert.Equal(t, []string{"residential", "tertiary"}, opts.Tags)
	assert.Equal(t, int64(4), opts.Source)
	// Explicit flag wins over file
	assert.Equal(t, int64(1), opts.Target)
	assert.Equal(t, "wkt", opts.Format)
	assert.True(t, opts.Verbose)
	// Keys absent in file keep defaults
	assert.True(t, opts.Strict)
	assert.Equal(t, "dijkstra", opts.Engine)
}

func TestParseOptionsInvalid(t *testing.T) {
	cases := [][]string{
		{"-engine", "astar"},
		{"-format", "kml"},
		{"-source", "-1"},
		{"-tags", " , "},
		{"-file", ""},
		{"-config", filepath.Join(t.TempDir(), "missing.yaml")},
		{"-config", writeConfig(t, "source: [1, 2]")},
		{"-unknown-flag"},
	}
	for _, args := range cases {
		_, err := parseOptions(args, io.Discard)
		if err == nil {
			t.Errorf("Options %v must be rejected", args)
		}
	}
}
