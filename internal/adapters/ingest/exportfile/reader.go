package exportfile

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	perr "polyglot/internal/platform/errors"
	"polyglot/internal/platform/logger"
)

// maxFileBytes guards against runaway exports; mirrors the exporter's 50MB cap
const maxFileBytes = 50 << 20

// File is one export file with its decoded posts
type File struct {
	Path  string
	Posts []RawPost
}

// ListFiles returns export JSON paths under dir, newest first
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, perr.DBf("read export dir %q: %v", dir, err)
	}

	type candidate struct {
		path string
		mod  time.Time
	}
	var cands []candidate
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		cands = append(cands, candidate{path: filepath.Join(dir, e.Name()), mod: info.ModTime()})
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].mod.After(cands[j].mod) })

	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.path)
	}
	return out, nil
}

// ReadFile decodes one export file
func ReadFile(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, err
	}
	if info.Size() > maxFileBytes {
		return File{}, perr.InvalidArgf("export file %q exceeds %d bytes", filepath.Base(path), maxFileBytes)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	posts, err := decodePosts(raw)
	if err != nil {
		return File{}, perr.JSONErrf("decode export %q: %v", filepath.Base(path), err)
	}
	return File{Path: path, Posts: posts}, nil
}

// Walk streams export files to fn, newest first, with per-file progress logging.
// Decode failures are logged and skipped so one bad file cannot stop a run
func Walk(ctx context.Context, dir string, fn func(File) error) error {
	paths, err := ListFiles(dir)
	if err != nil {
		return err
	}

	log := logger.Named("exportfile")
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		f, err := ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("file", filepath.Base(path)).Msg("skipping export file")
			continue
		}
		log.Info().
			Str("file", filepath.Base(path)).
			Int("posts", len(f.Posts)).
			Int("file_index", i+1).
			Int("file_total", len(paths)).
			Msg("export file decoded")

		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}
