package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jibfiles.dev/pkg/jibfiles/internal/adapter"
	m "jibfiles.dev/pkg/jibfiles/internal/model"
)

func TestPathSet_PreservesFirstSeenOrder(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a")
	b := filepath.Join(root, "b")
	c := filepath.Join(root, "c")
	mustMkdirAll(t, a)
	mustMkdirAll(t, b)
	mustMkdirAll(t, c)

	set := newPathSet(adapter.NewLocalProjectFS())
	set.add(m.Path(c))
	set.add(m.Path(a))
	set.add(m.Path(b))
	set.add(m.Path(a))

	assert.Equal(t, []m.Path{m.Path(c), m.Path(a), m.Path(b)}, set.list())
}

func TestPathSet_DeduplicatesByCanonicalIdentity(t *testing.T) {
	root := t.TempDir()
	real := filepath.Join(root, "real")
	mustMkdirAll(t, real)

	alias := filepath.Join(root, "alias")
	require.NoError(t, os.Symlink(real, alias))

	set := newPathSet(adapter.NewLocalProjectFS())
	set.add(m.Path(alias))
	set.add(m.Path(real))

	assert.Equal(t, []m.Path{m.Path(alias)}, set.list())
}

func TestPathSet_NonexistentPathsFallBackToTextualIdentity(t *testing.T) {
	root := t.TempDir()
	missing := filepath.Join(root, "not-there.jar")

	set := newPathSet(adapter.NewLocalProjectFS())
	set.add(m.Path(missing))
	set.add(m.Path(missing))
	set.add(m.Path(filepath.Join(root, "sub", "..", "not-there.jar")))

	assert.Equal(t, []m.Path{m.Path(missing)}, set.list())
}

func TestPathSet_ListReturnsCopy(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a")
	mustMkdirAll(t, a)

	set := newPathSet(adapter.NewLocalProjectFS())
	set.add(m.Path(a))

	first := set.list()
	first[0] = "mutated"

	assert.Equal(t, []m.Path{m.Path(a)}, set.list())
}
