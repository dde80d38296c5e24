package dscvr_test

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nordsat/swathbatch/internal/dscvr"
	"github.com/nordsat/swathbatch/internal/model"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	var testCases = []struct {
		scenario string
		given    func(t *testing.T) string
		then     model.Mode
		thenErr  error
	}{
		{
			scenario: "missing path",
			given: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nope")
			},
			thenErr: model.ErrPathNotFound,
		},
		{
			scenario: "directory",
			given: func(t *testing.T) string {
				return t.TempDir()
			},
			then: model.ModeDirectory,
		},
		{
			scenario: "plain file",
			given: func(t *testing.T) string {
				return writeFile(t, "orbit.l1b", []byte("scanline records"))
			},
			then: model.ModeFileStrict,
		},
		{
			scenario: "tar content without tar suffix",
			given: func(t *testing.T) string {
				return writeArchive(t, "blob", false)
			},
			then: model.ModeArchive,
		},
		{
			scenario: "gzipped tar",
			given: func(t *testing.T) string {
				return writeArchive(t, "blob2", true)
			},
			then: model.ModeArchive,
		},
		{
			scenario: "tar suffix on a plain file",
			given: func(t *testing.T) string {
				return writeFile(t, "fake.tar", []byte("not really an archive"))
			},
			then: model.ModeFileStrict,
		},
		{
			scenario: "gzip without tar inside",
			given: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "notes.gz")
				f, err := os.Create(path)
				require.NoError(t, err)
				gz := gzip.NewWriter(f)
				_, err = gz.Write([]byte("just compressed text"))
				require.NoError(t, err)
				require.NoError(t, gz.Close())
				require.NoError(t, f.Close())
				return path
			},
			then: model.ModeFileStrict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.scenario, func(t *testing.T) {
			t.Parallel()
			mode, err := dscvr.Classify(tc.given(t))
			if tc.thenErr != nil {
				require.ErrorIs(t, err, tc.thenErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.then, mode)
		})
	}
}

func TestClassifyStatError(t *testing.T) {
	t.Parallel()

	// a name past NAME_MAX fails stat without the path being missing
	long := filepath.Join(t.TempDir(), strings.Repeat("a", 300))
	_, err := dscvr.Classify(long)
	require.Error(t, err)
	require.NotErrorIs(t, err, model.ErrPathNotFound)
}

func writeFile(t *testing.T, name string, b []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func writeArchive(t *testing.T, name string, compress bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)

	var w io.Writer = f
	var gz *gzip.Writer
	if compress {
		gz = gzip.NewWriter(f)
		w = gz
	}
	tw := tar.NewWriter(w)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: "member", Typeflag: tar.TypeReg, Mode: 0o600, Size: 4}))
	_, err = tw.Write([]byte("data"))
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	if gz != nil {
		require.NoError(t, gz.Close())
	}
	require.NoError(t, f.Close())
	return path
}
