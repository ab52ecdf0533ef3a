package wordlist

import (
	"bufio"
	"bytes"
	"log/slog"
	"os"
	"sort"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Source loads a word set from a path. Implementations never fail: an
// unreadable source yields an empty set.
type Source interface {
	Load(path string) Set
}

// FileSource reads newline-separated wordlists from the local filesystem.
type FileSource struct {
	Logger *slog.Logger
}

func (fs FileSource) logger() *slog.Logger {
	if fs.Logger != nil {
		return fs.Logger
	}
	return slog.Default()
}

// Load reads path and returns its lines lowercased and trimmed, skipping blank
// lines. A missing or unreadable file yields an empty set.
func (fs FileSource) Load(path string) Set {
	b, err := os.ReadFile(path)
	if err != nil {
		fs.logger().Debug("wordlist unavailable", "path", path, "error", err)
		return Set{}
	}
	m := map[string]struct{}{}
	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		if w := normalize(sc.Text()); w != "" {
			m[w] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		fs.logger().Debug("wordlist truncated", "path", path, "error", err)
	}
	s := build(m)
	fs.logger().Debug("wordlist loaded", "path", path, "words", s.Len())
	return s
}

// LoadAll expands each pattern as a doublestar glob (plain paths pass through
// unchanged), loads every file, and merges the result. Files whose contents
// were already loaded under another name are skipped.
func (fs FileSource) LoadAll(patterns []string) Set {
	var sets []Set
	seen := map[uint64]bool{}
	for _, p := range Expand(patterns) {
		s := fs.Load(p)
		if s.Empty() {
			continue
		}
		if seen[s.Fingerprint()] {
			fs.logger().Debug("wordlist duplicate skipped", "path", p)
			continue
		}
		seen[s.Fingerprint()] = true
		sets = append(sets, s)
	}
	return Merge(sets...)
}

// Expand resolves glob patterns into file paths. Patterns without matches are
// kept as-is so that the loader can report them.
func Expand(patterns []string) []string {
	var out []string
	dup := map[string]bool{}
	add := func(p string) {
		if !dup[p] {
			dup[p] = true
			out = append(out, p)
		}
	}
	for _, pat := range patterns {
		if pat == "" {
			continue
		}
		matches, err := doublestar.FilepathGlob(pat, doublestar.WithFilesOnly())
		if err != nil || len(matches) == 0 {
			add(pat)
			continue
		}
		sort.Strings(matches)
		for _, m := range matches {
			add(m)
		}
	}
	return out
}
