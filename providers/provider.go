package providers

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"vasp-registry/models"
)

// PotcarFileName ist der Dateiname, unter dem VASP Pseudopotentiale ablegt.
const PotcarFileName = "POTCAR"

// VersionFileName liegt (optional, meist von Hand angelegt) ein Verzeichnis
// über dem POTCAR und enthält in der ersten Zeile den Release.
const VersionFileName = "VERSION"

// PotcarFile ist der Inhalt einer POTCAR-Datei samt Release-Angabe.
type PotcarFile struct {
	Source  string // Pfad oder S3-Key
	Content string
	Release string
}

// Provider ist das Interface, das jede POTCAR-Quelle (z.B. lokales Verzeichnis, S3) implementieren muss.
type Provider interface {
	// List liefert alle POTCAR-Dateien der Quelle mitsamt Inhalt.
	List(ctx context.Context) ([]PotcarFile, error)

	// Name gibt den eindeutigen Namen des Providers zurück (z.B. "localdir").
	Name() string
}

// ReadLocal liest ein POTCAR von der Platte. Fehlt die VERSION-Datei, ist der
// Release "unknown".
func ReadLocal(path string) (PotcarFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return PotcarFile{}, fmt.Errorf("read POTCAR %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return PotcarFile{}, err
	}
	versionPath := filepath.Join(filepath.Dir(abs), "..", VersionFileName)
	release, err := readVersion(versionPath)
	if err != nil {
		return PotcarFile{}, err
	}

	return PotcarFile{Source: path, Content: string(content), Release: release}, nil
}

func readVersion(path string) (string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.UnknownRelease, nil
	}
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	release, err := FirstLine(f)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return release, nil
}

// FirstLine liefert die erste Zeile ohne umgebende Leerzeichen.
func FirstLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
