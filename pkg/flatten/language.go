package flatten

import (
	"path"
	"strings"
)

// languageFor returns the fence language tag for a file, or "" when its
// extension is not in the table. A leading dot is part of the name, so
// ".bashrc" has no extension.
func languageFor(relPath string, languages map[string]string) string {
	name := strings.TrimLeft(path.Base(relPath), ".")
	ext := strings.TrimPrefix(path.Ext(name), ".")
	if ext == "" {
		return ""
	}
	return languages[ext]
}
