package localdir

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vasp-registry/models"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFetcher_List(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "potpaw_PBE", "VERSION"), "r5_4_0\nsecond line\n")
	writeFile(t, filepath.Join(root, "potpaw_PBE", "Li_sv", "POTCAR"), "li")
	writeFile(t, filepath.Join(root, "potpaw_PBE", "Fe", "POTCAR"), "fe")
	writeFile(t, filepath.Join(root, "potpaw_PBE", "Fe", "PSCTR"), "ignored")
	writeFile(t, filepath.Join(root, "loose", "Cu", "POTCAR"), "cu")

	f := &Fetcher{Root: root, Logger: zap.NewNop()}
	require.Equal(t, "localdir", f.Name())

	files, err := f.List(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 3)

	require.Equal(t, "cu", files[0].Content)
	require.Equal(t, models.UnknownRelease, files[0].Release)
	require.Equal(t, "fe", files[1].Content)
	require.Equal(t, "r5_4_0", files[1].Release)
	require.Equal(t, "li", files[2].Content)
	require.Equal(t, "r5_4_0", files[2].Release)
}

func TestFetcher_List_MissingRoot(t *testing.T) {
	f := &Fetcher{Root: filepath.Join(t.TempDir(), "nope"), Logger: zap.NewNop()}
	_, err := f.List(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFetcher_List_SkipsUnreadableFile(t *testing.T) {
	root := t.TempDir()
	// VERSION als Verzeichnis macht nur die POTCARs darunter unlesbar
	require.NoError(t, os.MkdirAll(filepath.Join(root, "broken", "VERSION"), 0o755))
	writeFile(t, filepath.Join(root, "broken", "Fe", "POTCAR"), "fe")
	writeFile(t, filepath.Join(root, "good", "Li_sv", "POTCAR"), "li")

	f := &Fetcher{Root: root, Logger: zap.NewNop()}
	files, err := f.List(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "li", files[0].Content)
}
