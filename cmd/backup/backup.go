package main

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vasp-registry/config"
	"vasp-registry/models"
	"vasp-registry/storage"
)

const backupPrefix = "backups/"

// dumpPotential nimmt den Rohtext mit, den die API-Darstellung weglässt.
type dumpPotential struct {
	models.Potential
	Potcar string `json:"potcar"`
}

type dump struct {
	CreatedAt  time.Time        `json:"created_at"`
	Potentials []dumpPotential  `json:"potentials"`
	Hubbards   []models.Hubbard `json:"hubbards"`
}

func backupKey(now time.Time) string {
	return fmt.Sprintf("%sbackup-%s.json.gz", backupPrefix, now.Format("2006-01-02T15-04-05Z"))
}

// createDump liest alle Potentiale und Hubbard-Datensätze und liefert sie als gzip-komprimiertes JSON.
func createDump(ctx context.Context, db *gorm.DB, now time.Time) ([]byte, error) {
	var pots []models.Potential
	if err := db.WithContext(ctx).Order("id").Find(&pots).Error; err != nil {
		return nil, fmt.Errorf("reading potentials: %w", err)
	}
	var hubs []models.Hubbard
	if err := db.WithContext(ctx).Order("id").Find(&hubs).Error; err != nil {
		return nil, fmt.Errorf("reading hubbards: %w", err)
	}

	d := dump{CreatedAt: now, Potentials: make([]dumpPotential, len(pots)), Hubbards: hubs}
	for i, p := range pots {
		d.Potentials[i] = dumpPotential{Potential: p, Potcar: p.Potcar}
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if err := json.NewEncoder(gz).Encode(d); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// rotateBackups behält die neuesten cfg.KeepBackup Objekte unter backups/ und löscht den Rest.
func rotateBackups(ctx context.Context, client storage.ObjectStore, cfg *config.Config, logger *zap.Logger) error {
	objects, err := storage.ListObjects(ctx, client, cfg.S3Bucket, backupPrefix)
	if err != nil {
		return err
	}
	if len(objects) <= cfg.KeepBackup {
		logger.Info("Keine Rotation nötig", zap.Int("backups", len(objects)), zap.Int("keep", cfg.KeepBackup))
		return nil
	}

	sort.Slice(objects, func(i, j int) bool {
		return objects[i].LastModified.After(*objects[j].LastModified)
	})

	for _, obj := range objects[cfg.KeepBackup:] {
		logger.Info("Lösche altes Backup", zap.String("key", aws.ToString(obj.Key)))
		_, err := client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(cfg.S3Bucket),
			Key:    obj.Key,
		})
		if err != nil {
			logger.Error("Fehler beim Löschen", zap.String("key", aws.ToString(obj.Key)), zap.Error(err))
		}
	}
	return nil
}
