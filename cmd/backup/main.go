// Command backup exportiert Potentiale und Hubbard-Parameter als gzip-JSON nach S3 und rotiert alte Backups.
package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"vasp-registry/config"
	"vasp-registry/storage"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	log.Info("Starte Backup-Prozess...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Fehler beim Laden der Konfiguration: %v", err)
	}
	if !cfg.S3Enabled() {
		log.Fatal("S3_BUCKET ist nicht gesetzt, Backup nicht möglich")
	}

	db, err := storage.OpenDatabase(cfg)
	if err != nil {
		log.Fatalf("Fehler beim Öffnen der Datenbank: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	// 1. Export erstellen
	data, err := createDump(ctx, db, time.Now().UTC())
	if err != nil {
		log.Fatalf("Fehler beim Erstellen des Exports: %v", err)
	}

	// 2. S3-Client erstellen
	client, err := storage.NewS3Client(ctx, cfg)
	if err != nil {
		log.Fatalf("Fehler beim Erstellen des S3-Clients: %v", err)
	}

	// 3. Hochladen
	key := backupKey(time.Now().UTC())
	link, err := storage.UploadFile(ctx, client, cfg, key, data)
	if err != nil {
		log.Fatalf("Fehler beim Hochladen nach S3: %v", err)
	}
	log.Infow("Backup hochgeladen", "s3_link", link, "bytes", len(data))

	// 4. Alte Backups rotieren
	if err := rotateBackups(ctx, client, cfg, logger); err != nil {
		log.Fatalf("Fehler bei der Rotation alter Backups: %v", err)
	}

	log.Info("Backup-Prozess erfolgreich abgeschlossen.")
}
