package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const (
	StylesPath = "css/styles.css"
	ScriptPath = "js/app.js"
)

// Manifest maps static asset paths to cache-busting URLs under /static/.
type Manifest struct {
	mu        sync.RWMutex
	assets    map[string]string
	staticDir string
}

func NewManifest(staticDir string) *Manifest {
	return &Manifest{
		assets:    make(map[string]string),
		staticDir: staticDir,
	}
}

// Load prefers a build manifest at dist/manifest.json. Without one, every
// file under the static directory is fingerprinted by content hash.
func (m *Manifest) Load() error {
	assets, err := m.readBuildManifest()
	if err != nil {
		return err
	}
	if assets == nil {
		assets, err = m.fingerprint()
		if err != nil {
			return err
		}
	}

	m.mu.Lock()
	m.assets = assets
	m.mu.Unlock()
	return nil
}

func (m *Manifest) readBuildManifest() (map[string]string, error) {
	manifestPath := filepath.Join(m.staticDir, "dist", "manifest.json")

	// #nosec G304 -- manifestPath is built from the configured static dir, not user input
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var hashed map[string]string
	if err := json.Unmarshal(data, &hashed); err != nil {
		return nil, err
	}
	assets := make(map[string]string, len(hashed))
	for path, target := range hashed {
		assets[path] = "/static/" + target
	}
	return assets, nil
}

func (m *Manifest) fingerprint() (map[string]string, error) {
	assets := make(map[string]string)
	if _, err := os.Stat(m.staticDir); os.IsNotExist(err) {
		return assets, nil
	}

	err := filepath.WalkDir(m.staticDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		// #nosec G304 -- path comes from walking the configured static dir
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(m.staticDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		sum := sha256.Sum256(data)
		assets[rel] = "/static/" + rel + "?v=" + hex.EncodeToString(sum[:4])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assets, nil
}

// URL returns the versioned URL for an asset, or its plain /static/ path.
func (m *Manifest) URL(path string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if url, ok := m.assets[path]; ok {
		return url
	}
	return "/static/" + path
}

func (m *Manifest) StylesURL() string {
	return m.URL(StylesPath)
}

func (m *Manifest) ScriptURL() string {
	return m.URL(ScriptPath)
}
