// internal/highlight/languages.go
package highlight

import (
	"embed"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	gosrc "github.com/smacker/go-tree-sitter/golang"
	jssrc "github.com/smacker/go-tree-sitter/javascript"
	pythonsrc "github.com/smacker/go-tree-sitter/python"
	rustsrc "github.com/smacker/go-tree-sitter/rust"

	"github.com/mutablevalue/Code-Editor/internal/logger"
)

//go:embed queries/*/*.scm
var embeddedQueries embed.FS

// Language bundles a tree-sitter grammar with its highlight query.
type Language struct {
	Name  string
	Lang  *sitter.Language
	Query []byte
}

type registration struct {
	name       string
	lang       *sitter.Language
	extensions []string
	queryPath  string
}

var registrations = []registration{
	{"Go", gosrc.GetLanguage(), []string{".go"}, "go"},
	{"Python", pythonsrc.GetLanguage(), []string{".py", ".pyw"}, "python"},
	{"JavaScript", jssrc.GetLanguage(), []string{".js", ".mjs", ".cjs"}, "javascript"},
	{"Rust", rustsrc.GetLanguage(), []string{".rs"}, "rust"},
}

// ForPath maps a file path to its language by extension. This is a pure
// lookup: same extension, same ruleset. Unknown extensions (and the empty
// path of a never-saved document) yield nil, meaning plain text.
func ForPath(path string) *Language {
	if path == "" {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, reg := range registrations {
		for _, e := range reg.extensions {
			if e != ext {
				continue
			}
			query, err := embeddedQueries.ReadFile("queries/" + reg.queryPath + "/highlights.scm")
			if err != nil {
				logger.Warnf("Highlight: missing query for %s: %v", reg.name, err)
				return nil
			}
			return &Language{Name: reg.name, Lang: reg.lang, Query: query}
		}
	}
	return nil
}
