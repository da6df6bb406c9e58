package rice_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/ricer/pkg/errors"
	"github.com/arthur-debert/ricer/pkg/rice"
	"github.com/arthur-debert/ricer/pkg/testutil"
	"github.com/arthur-debert/ricer/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T, f fixture)
		want    rice.State
	}{
		{
			name:    "missing",
			prepare: func(t *testing.T, f fixture) {},
			want:    rice.StateMissing,
		},
		{
			name: "linked",
			prepare: func(t *testing.T, f fixture) {
				testutil.CreateSymlink(t, filepath.Join(f.src, "sway"), filepath.Join(f.dst, "sway"))
			},
			want: rice.StateLinked,
		},
		{
			name: "conflict",
			prepare: func(t *testing.T, f fixture) {
				testutil.CreateDir(t, f.dst, "sway")
			},
			want: rice.StateConflict,
		},
		{
			name: "wrong target",
			prepare: func(t *testing.T, f fixture) {
				other := testutil.CreateDir(t, f.src, "other")
				testutil.CreateSymlink(t, other, filepath.Join(f.dst, "sway"))
			},
			want: rice.StateWrongTarget,
		},
		{
			name: "relative link to source",
			prepare: func(t *testing.T, f fixture) {
				dst := filepath.Join(f.dst, "sway")
				rel, err := filepath.Rel(f.dst, filepath.Join(f.src, "sway"))
				require.NoError(t, err)
				testutil.CreateSymlink(t, rel, dst)
			},
			want: rice.StateLinked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			tt.prepare(t, f)
			l, out := newLinker(types.Mode{})

			st, err := l.Status("sway", f.src, f.dst)
			require.NoError(t, err)

			assert.Equal(t, tt.want, st.State)
			assert.Empty(t, out())
		})
	}
}

func TestStatusBroken(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "repo")
	dst := filepath.Join(root, "home")
	testutil.CreateSymlink(t, filepath.Join(src, "wofi"), filepath.Join(dst, "wofi"))
	l, _ := newLinker(types.Mode{})

	st, err := l.Status("wofi", src, dst)
	require.NoError(t, err)

	assert.Equal(t, rice.StateBroken, st.State)
	assert.Equal(t, filepath.Join(src, "wofi"), st.Target)
}

func TestStatusRejectsNamesOutsideDestination(t *testing.T) {
	f := setup(t)
	l, _ := newLinker(types.Mode{})

	_, err := l.Status("..", f.src, f.dst)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
