package themefile

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"

	glinterrors "github.com/glintui/glint/pkg/errors"
	"github.com/glintui/glint/pkg/theme"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Parse loads a theme definition file from disk, validates it, and returns
// the resulting definition.
func Parse(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, glinterrors.NewParseError(path, 0, err)
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, glinterrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&def); err != nil {
		return nil, err
	}

	return &def, nil
}

// Files lists the theme definition files in a directory, sorted by name. A
// missing directory is not an error; it just means no custom themes yet.
func Files(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, glinterrors.NewStoreError(dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadDir parses every definition file in a directory and returns the
// resulting handles. The first parse or validation failure aborts the load;
// callers that want to skip bad files should walk Files and Parse themselves.
func LoadDir(dir string) ([]theme.Handle, error) {
	paths, err := Files(dir)
	if err != nil {
		return nil, err
	}

	handles := make([]theme.Handle, 0, len(paths))
	for _, path := range paths {
		def, err := Parse(path)
		if err != nil {
			return nil, err
		}
		handles = append(handles, def.Handle())
	}
	return handles, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
