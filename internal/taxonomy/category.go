package taxonomy

import (
	"path"
	"path/filepath"
	"strings"
)

// FileCategory is a coarse classification of a file by its extension
type FileCategory string

const (
	CategoryCode   FileCategory = "code"
	CategoryDocs   FileCategory = "docs"
	CategoryStyle  FileCategory = "style"
	CategoryConfig FileCategory = "config"
	CategoryTest   FileCategory = "test"
	CategoryOther  FileCategory = "other"
)

// String returns the string representation of the category
func (c FileCategory) String() string {
	return string(c)
}

var extensionCategories = map[string]FileCategory{
	".py": CategoryCode, ".js": CategoryCode, ".java": CategoryCode, ".cpp": CategoryCode,
	".c": CategoryCode, ".h": CategoryCode, ".ts": CategoryCode, ".go": CategoryCode, ".rb": CategoryCode,

	".md": CategoryDocs, ".txt": CategoryDocs, ".rst": CategoryDocs,
	".pdf": CategoryDocs, ".doc": CategoryDocs, ".docx": CategoryDocs,

	".css": CategoryStyle, ".scss": CategoryStyle, ".less": CategoryStyle,
	".html": CategoryStyle, ".xml": CategoryStyle,

	".json": CategoryConfig, ".yaml": CategoryConfig, ".yml": CategoryConfig,
	".toml": CategoryConfig, ".ini": CategoryConfig, ".conf": CategoryConfig,
}

// testSuffixes are matched against the whole file name, ahead of the
// single extension table.
var testSuffixes = []string{".test.js", ".spec.py", ".test.py", ".test.ts"}

// Categorize classifies a path by its extension
func Categorize(p string) FileCategory {
	name := strings.ToLower(baseName(p))
	for _, suffix := range testSuffixes {
		if strings.HasSuffix(name, suffix) && len(name) > len(suffix) {
			return CategoryTest
		}
	}

	if category, ok := extensionCategories[strings.ToLower(SplitExt(p))]; ok {
		return category
	}
	return CategoryOther
}

// SplitExt returns the extension of the last path element, dot included.
// Leading dots do not start an extension, so ".gitignore" has none.
func SplitExt(p string) string {
	name := strings.TrimLeft(baseName(p), ".")
	return filepath.Ext(name)
}

// BaseName returns the last element of a slash or OS separated path
func BaseName(p string) string {
	return baseName(p)
}

func baseName(p string) string {
	return path.Base(filepath.ToSlash(p))
}
