package s3bucket

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"go.uber.org/zap"

	"vasp-registry/config"
	"vasp-registry/models"
	"vasp-registry/providers"
	"vasp-registry/storage"
)

// Fetcher liest POTCAR-Dateien aus einem S3-Bucket unterhalb eines Prefix.
type Fetcher struct {
	Client storage.ObjectStore
	Bucket string
	Prefix string
	Logger *zap.Logger
}

// NewFetcher erstellt einen neuen S3-Fetcher.
func NewFetcher(cfg *config.Config, client storage.ObjectStore, logger *zap.Logger) *Fetcher {
	return &Fetcher{Client: client, Bucket: cfg.S3Bucket, Prefix: cfg.S3Prefix, Logger: logger}
}

func (f *Fetcher) Name() string {
	return "s3"
}

// List lädt jedes Objekt, dessen Basisname POTCAR ist, samt ../VERSION.
func (f *Fetcher) List(ctx context.Context) ([]providers.PotcarFile, error) {
	log := f.Logger.With(zap.String("bucket", f.Bucket), zap.String("prefix", f.Prefix))
	versions := make(map[string]string) // pro Durchlauf: VERSION-Key -> Release

	objects, err := storage.ListObjects(ctx, f.Client, f.Bucket, f.Prefix)
	if err != nil {
		return nil, fmt.Errorf("list s3://%s/%s: %w", f.Bucket, f.Prefix, err)
	}

	var files []providers.PotcarFile
	for _, obj := range objects {
		key := aws.ToString(obj.Key)
		if path.Base(key) != providers.PotcarFileName {
			continue
		}
		data, err := storage.Download(ctx, f.Client, f.Bucket, key)
		if err != nil {
			return nil, fmt.Errorf("download s3://%s/%s: %w", f.Bucket, key, err)
		}
		release, err := f.release(ctx, versions, key)
		if err != nil {
			return nil, err
		}
		files = append(files, providers.PotcarFile{Source: key, Content: string(data), Release: release})
	}

	log.Info("POTCAR-Objekte gefunden", zap.Int("count", len(files)))
	return files, nil
}

// release liest ../VERSION zum POTCAR-Key. versions gehört dem aufrufenden List,
// parallele Durchläufe teilen sich nichts.
func (f *Fetcher) release(ctx context.Context, versions map[string]string, potcarKey string) (string, error) {
	versionKey := path.Join(path.Dir(path.Dir(potcarKey)), providers.VersionFileName)
	if release, ok := versions[versionKey]; ok {
		return release, nil
	}

	release := models.UnknownRelease
	data, err := storage.Download(ctx, f.Client, f.Bucket, versionKey)
	switch {
	case storage.IsNotFound(err):
	case err != nil:
		return "", fmt.Errorf("download s3://%s/%s: %w", f.Bucket, versionKey, err)
	default:
		if release, err = providers.FirstLine(bytes.NewReader(data)); err != nil {
			return "", err
		}
	}
	versions[versionKey] = release
	return release, nil
}
