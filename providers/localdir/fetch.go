package localdir

import (
	"context"
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"

	"vasp-registry/config"
	"vasp-registry/providers"
)

// Fetcher durchsucht ein lokales Verzeichnis (z.B. ein entpacktes potpaw_PBE) nach POTCAR-Dateien.
type Fetcher struct {
	Root   string
	Logger *zap.Logger
}

// NewFetcher erstellt einen neuen Verzeichnis-Fetcher.
func NewFetcher(cfg *config.Config, logger *zap.Logger) *Fetcher {
	return &Fetcher{Root: cfg.PotcarDir, Logger: logger}
}

func (f *Fetcher) Name() string {
	return "localdir"
}

// List liefert alle Dateien namens POTCAR unterhalb von Root, in lexikalischer Reihenfolge.
// Nicht lesbare Dateien werden protokolliert und übersprungen.
func (f *Fetcher) List(ctx context.Context) ([]providers.PotcarFile, error) {
	log := f.Logger.With(zap.String("root", f.Root))

	var files []providers.PotcarFile
	skipped := 0
	err := filepath.WalkDir(f.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || d.Name() != providers.PotcarFileName {
			return nil
		}
		file, err := providers.ReadLocal(path)
		if err != nil {
			skipped++
			log.Warn("POTCAR übersprungen", zap.String("path", path), zap.Error(err))
			return nil
		}
		files = append(files, file)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("POTCAR-Dateien gefunden", zap.Int("count", len(files)), zap.Int("skipped", skipped))
	return files, nil
}
