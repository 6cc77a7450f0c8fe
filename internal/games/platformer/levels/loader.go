// Package levels loads platformer level files.
// This package depends on world but world does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/formats"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Rows     []string
	Respawn  *core.Vector
	Metadata map[string]string
	FilePath string
}

// Build parses the plan into a playable world.Level. A respawn point set in
// the level file overrides the one in the physics options.
func (l *Level) Build(opts ...world.Option) (*world.Level, error) {
	all := slices.Clone(opts)
	if l.Respawn != nil {
		all = append(all, world.WithRespawn(*l.Respawn))
	}
	lvl, err := world.ParsePlan(l.Rows, all...)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return lvl, nil
}

// Validate reports whether the level builds with default physics.
func (l *Level) Validate() error {
	_, err := l.Build()
	return err
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root   string
	Logger *log.Logger // optional; receives skipped files

	fsys fs.FS
}

// NewLoader creates a new level loader rooted at a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// Builtin returns a loader over the levels compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return &Loader{Root: "builtin", fsys: sub}
}

func (l *Loader) filesystem() fs.FS {
	if l.fsys == nil {
		l.fsys = os.DirFS(l.Root)
	}
	return l.fsys
}

// LoadAll recursively scans and loads all level files. Files that fail to
// parse or build are skipped.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	fsys := l.filesystem()

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			l.skip(p, err)
			return nil
		}
		level, err := parseLevel(data, ext, filepath.Join(l.Root, filepath.FromSlash(p)))
		if err != nil {
			l.skip(p, err)
			return nil
		}
		if err := level.Validate(); err != nil {
			l.skip(p, err)
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func (l *Loader) skip(p string, err error) {
	if l.Logger != nil {
		l.Logger.Warn("skipping level file", "file", p, "err", err)
	}
}

// LoadFile loads a single level file from disk without building it.
func LoadFile(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	return parseLevel(data, strings.ToLower(filepath.Ext(p)), p)
}

func parseLevel(data []byte, ext, filePath string) (Level, error) {
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", filePath, err)
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Rows:     parsed.Rows,
		Respawn:  parsed.Respawn,
		Metadata: parsed.Metadata,
		FilePath: filePath,
	}, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), ext)
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
