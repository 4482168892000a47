package domain

import (
	"jibfiles.dev/pkg/jibfiles/internal/adapter"
	m "jibfiles.dev/pkg/jibfiles/internal/model"
)

// pathSet is an insertion-ordered set keyed by canonical filesystem
// identity. Two spellings of the same real path count as one entry; the
// first-seen display form is what gets reported.
type pathSet struct {
	fs    adapter.ProjectFS
	keys  map[m.Path]struct{}
	paths []m.Path
}

func newPathSet(fs adapter.ProjectFS) *pathSet {
	return &pathSet{fs: fs, keys: make(map[m.Path]struct{})}
}

func (s *pathSet) add(path m.Path) {
	key := s.key(path)
	if _, ok := s.keys[key]; ok {
		return
	}

	s.keys[key] = struct{}{}
	s.paths = append(s.paths, path)
}

// key canonicalizes path for identity checks only. Paths that cannot be
// resolved (typically not on disk yet) fall back to their cleaned absolute
// form so they still de-duplicate textually.
func (s *pathSet) key(path m.Path) m.Path {
	if real, err := s.fs.RealPath(path); err == nil {
		return real
	}

	if abs, err := s.fs.Abs(path); err == nil {
		return abs
	}

	return path
}

func (s *pathSet) list() []m.Path {
	out := make([]m.Path, len(s.paths))
	copy(out, s.paths)

	return out
}
