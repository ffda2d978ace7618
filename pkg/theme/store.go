package theme

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	glinterrors "github.com/glintui/glint/pkg/errors"
)

// Selection is the persisted user choice: a mode plus, optionally, the name
// of an active custom theme. The custom theme registry itself is never
// persisted; a persisted name only resolves once the theme has been
// re-registered in the new process.
type Selection struct {
	Mode            Mode
	CustomThemeName string
}

// Store persists the user's theme selection between processes.
type Store interface {
	// Load reads the persisted selection. A missing store yields the zero
	// selection (system mode, no custom theme) without error.
	Load() (Selection, error)
	// Save durably writes the selection.
	Save(Selection) error
}

// selectionFile is the on-disk layout: two scalars under a "theme" key.
type selectionFile struct {
	Theme selectionEntry `yaml:"theme"`
}

type selectionEntry struct {
	Mode            string `yaml:"mode"`
	CustomThemeName string `yaml:"customThemeName,omitempty"`
}

// FileStore keeps the selection in a YAML settings file under the user's
// config directory.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a store backed by the given file path. The parent
// directory is created on the first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultSettingsPath returns the per-user settings file location.
func DefaultSettingsPath(app string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "."+app, "settings.yaml"), nil
}

// Path returns the backing file location.
func (s *FileStore) Path() string { return s.path }

// Load reads the persisted selection. A missing or unreadable mode string
// degrades to system mode rather than failing.
func (s *FileStore) Load() (Selection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Selection{Mode: ModeSystem}, nil
		}
		return Selection{Mode: ModeSystem}, glinterrors.NewStoreError(s.path, err)
	}

	var file selectionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Selection{Mode: ModeSystem}, glinterrors.NewStoreError(s.path, err)
	}

	mode, err := ParseMode(file.Theme.Mode)
	if err != nil {
		// Unknown modes are not fatal: fall back to system.
		mode = ModeSystem
	}

	return Selection{Mode: mode, CustomThemeName: file.Theme.CustomThemeName}, nil
}

// Save writes the selection atomically (temp file + rename).
func (s *FileStore) Save(sel Selection) error {
	file := selectionFile{
		Theme: selectionEntry{
			Mode:            sel.Mode.String(),
			CustomThemeName: sel.CustomThemeName,
		},
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return glinterrors.NewStoreError(s.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return glinterrors.NewStoreError(s.path, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return glinterrors.NewStoreError(s.path, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return glinterrors.NewStoreError(s.path, err)
	}

	return nil
}

// NopStore discards saves and always loads the zero selection. It is the
// default for managers constructed without persistence.
type NopStore struct{}

var _ Store = NopStore{}

func (NopStore) Load() (Selection, error) { return Selection{Mode: ModeSystem}, nil }
func (NopStore) Save(Selection) error     { return nil }
