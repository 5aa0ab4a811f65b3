package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"

	"vasp-registry/config"
	"vasp-registry/providers"
	"vasp-registry/storage"
)

// ImportService kümmert sich um die Orchestrierung des Imports aus allen Quellen.
type ImportService struct {
	Config     *config.Config
	Potentials *PotentialService
	S3Client   storage.ObjectStore // nil, wenn nicht archiviert wird
	Logger     *zap.Logger
	Providers  []providers.Provider
}

// NewImportService erstellt eine neue Instanz des ImportService.
func NewImportService(cfg *config.Config, potentials *PotentialService, s3 storage.ObjectStore, logger *zap.Logger, providers []providers.Provider) *ImportService {
	return &ImportService{
		Config:     cfg,
		Potentials: potentials,
		S3Client:   s3,
		Logger:     logger,
		Providers:  providers,
	}
}

// RunAllProviders importiert alle Dateien aller Provider und liefert die Zahl neu angelegter Potentiale.
func (s *ImportService) RunAllProviders(ctx context.Context) (int, error) {
	total := 0
	for _, provider := range s.Providers {
		count, err := s.RunProvider(ctx, provider)
		if err != nil {
			s.Logger.Error("Fehler beim Verarbeiten des Providers", zap.String("provider", provider.Name()), zap.Error(err))
			continue
		}
		total += count
	}
	return total, nil
}

// RunProvider importiert alle Dateien eines Providers. Eine fehlerhafte Datei
// wird protokolliert und übersprungen; ihre Transaktion ist dann zurückgerollt.
func (s *ImportService) RunProvider(ctx context.Context, provider providers.Provider) (int, error) {
	log := s.Logger.With(zap.String("provider", provider.Name()))
	log.Info("Starte Import für Provider.")

	files, err := provider.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list %s: %w", provider.Name(), err)
	}

	created, failed := 0, 0
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return created, err
		}
		res, err := s.Potentials.Import(ctx, file)
		if err != nil {
			failed++
			log.Warn("POTCAR übersprungen", zap.String("source", file.Source), zap.Error(err))
			continue
		}
		created += res.Created
		if res.Created > 0 {
			s.archive(ctx, file)
		}
	}

	log.Info("Import für Provider abgeschlossen",
		zap.Int("files", len(files)), zap.Int("failed", failed), zap.Int("new_potentials", created))
	return created, nil
}

// archive lädt den Rohtext nach S3, falls Archivierung aktiv ist. Fehler werden nur protokolliert.
func (s *ImportService) archive(ctx context.Context, file providers.PotcarFile) {
	if s.S3Client == nil || !s.Config.S3Archive {
		return
	}
	key := ArchiveKey(file)
	link, err := storage.UploadFile(ctx, s.S3Client, s.Config, key, []byte(file.Content))
	if err != nil {
		s.Logger.Error("S3-Upload fehlgeschlagen", zap.String("key", key), zap.Error(err))
		return
	}
	s.Logger.Info("POTCAR nach S3 archiviert", zap.String("s3_link", link))
}

// ArchiveKey ist der S3-Key, unter dem ein POTCAR archiviert wird.
func ArchiveKey(file providers.PotcarFile) string {
	sum := sha256.Sum256([]byte(file.Content))
	return fmt.Sprintf("potcars/%s/%s.POTCAR", file.Release, hex.EncodeToString(sum[:]))
}
