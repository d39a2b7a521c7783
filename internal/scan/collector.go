// Package scan locates and parses player files beneath a plrfiles root.
package scan

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/cory-johannsen/mudreport/internal/player"
)

// DefaultExtension is the tbaMUD player-file extension.
const DefaultExtension = ".plr"

// Collector walks a plrfiles root and parses every player file it finds.
// The report is best-effort: anything that cannot be read or parsed is
// skipped rather than failing the run.
type Collector struct {
	fs     afero.Fs
	logger *zap.Logger
	ext    string
}

// NewCollector creates a Collector over fs. ext is the player-file extension
// including the dot; empty selects DefaultExtension.
//
// Precondition: logger must not be nil.
func NewCollector(fs afero.Fs, logger *zap.Logger, ext string) *Collector {
	if ext == "" {
		ext = DefaultExtension
	}
	return &Collector{fs: fs, logger: logger, ext: ext}
}

// Collect parses all player files directly beneath root's subdirectories.
//
// The layout is <root>/<subdir>/*.plr, one file per character; the walk does
// not recurse past that one level and non-directory children of root are
// skipped. Unreadable files and files without a name produce no record and
// no diagnostic beyond a debug log. Result order follows directory traversal
// and carries no meaning.
//
// Precondition: root must exist; the caller verifies it.
func (c *Collector) Collect(root string) []*player.Player {
	entries, err := afero.ReadDir(c.fs, root)
	if err != nil {
		c.logger.Debug("reading plrfiles root", zap.String("root", root), zap.Error(err))
		return nil
	}

	var players []*player.Player
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		subdir := filepath.Join(root, entry.Name())
		files, err := afero.ReadDir(c.fs, subdir)
		if err != nil {
			c.logger.Debug("reading player subdirectory", zap.String("dir", subdir), zap.Error(err))
			continue
		}
		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(file.Name(), c.ext) {
				continue
			}
			path := filepath.Join(subdir, file.Name())
			data, err := afero.ReadFile(c.fs, path)
			if err != nil {
				c.logger.Debug("reading player file", zap.String("path", path), zap.Error(err))
				continue
			}
			p, ok := player.Parse(data)
			if !ok {
				c.logger.Debug("player file has no name", zap.String("path", path))
				continue
			}
			players = append(players, p)
		}
	}

	return players
}
