package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/mudreport/internal/config"
)

func testConfig(playerDir string) config.Config {
	return config.Config{
		Report: config.ReportConfig{
			PlayerDir:    playerDir,
			Extension:    ".plr",
			Limit:        100,
			SummaryLimit: 10,
		},
		Logging: config.LoggingConfig{Level: "info", Format: "console"},
	}
}

func writePlayerFile(t *testing.T, root, subdir, name, contents string) {
	t.Helper()
	dir := filepath.Join(root, subdir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644))
}

func TestRun_FullReport(t *testing.T) {
	root := t.TempDir()
	writePlayerFile(t, root, "A-E", "alice.plr", "Name: Alice\nClas: 0\nLevl: 30\nExp : 1500000\nGold: 100\n")
	writePlayerFile(t, root, "A-E", "bob.plr", "Name: Bob\nClas: 3\nLevl: 12\nExp : 9500\nGold: 5000\n")

	var b strings.Builder
	code := run(testConfig(root), zap.NewNop(), &b)
	out := b.String()

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Reading player files from: ")
	assert.Contains(t, out, "Found 2 players")
	assert.Contains(t, out, "🏆 TOP 10 PLAYERS BY XP")
	assert.Contains(t, out, "💰 TOP 10 PLAYERS BY GOLD")
	assert.Contains(t, out, "1,500,000")

	// XP table ranks Alice first, gold table ranks Bob first.
	xpSection := out[strings.Index(out, "BY XP"):strings.Index(out, "BY GOLD")]
	assert.Less(t, strings.Index(xpSection, "Alice"), strings.Index(xpSection, "Bob"))
	goldSection := out[strings.Index(out, "BY GOLD"):]
	assert.Less(t, strings.Index(goldSection, "Bob"), strings.Index(goldSection, "Alice"))
}

func TestRun_EmptyStoreStillSucceeds(t *testing.T) {
	root := t.TempDir()

	var b strings.Builder
	code := run(testConfig(root), zap.NewNop(), &b)
	out := b.String()

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Found 0 players")
	assert.Contains(t, out, "🏆 TOP 10 PLAYERS BY XP")
	assert.Contains(t, out, "Class Distribution:")
}

func TestRun_MissingRootFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent", "plrfiles")

	var b strings.Builder
	code := run(testConfig(missing), zap.NewNop(), &b)
	out := b.String()

	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Error: Could not find plrfiles directory")
	assert.Contains(t, out, "Looked in: "+missing)
}

func TestResolvePlayerDir_OverrideWins(t *testing.T) {
	root := t.TempDir()
	cfg := testConfig(root).Report

	got, ok := resolvePlayerDir(cfg)
	assert.True(t, ok)
	assert.Equal(t, root, got)
}

func TestResolvePlayerDir_MissingNamesLastCandidate(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "nope")).Report

	got, ok := resolvePlayerDir(cfg)
	assert.False(t, ok)
	assert.Equal(t, cfg.PlayerDir, got)
}
