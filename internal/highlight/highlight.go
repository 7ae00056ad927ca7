// internal/highlight/highlight.go
package highlight

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mutablevalue/Code-Editor/internal/logger"
)

// Span is a styled range on a single line, rune-indexed, end exclusive.
type Span struct {
	StartCol int
	EndCol   int
	Kind     string // capture group: "keyword", "string", "comment", ...
}

// Result maps line number to the styled spans on that line.
type Result map[int][]Span

// Annotate parses content with the given language and returns per-line
// styled spans for the rendering collaborator. This lives entirely outside
// the editor core: it reads a content snapshot and computes display
// annotations, nothing more. A nil language yields an empty result.
func Annotate(content string, lang *Language) (Result, error) {
	result := make(Result)
	if lang == nil {
		return result, nil
	}

	parser := sitter.NewParser()
	parser.SetLanguage(lang.Lang)
	tree, err := parser.ParseCtx(context.Background(), nil, []byte(content))
	if err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	defer tree.Close()

	query, err := sitter.NewQuery(lang.Query, lang.Lang)
	if err != nil {
		return nil, fmt.Errorf("query parse failed: %w", err)
	}
	defer query.Close()

	lines := strings.Split(content, "\n")

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(query, tree.RootNode())

	for {
		match, exists := qc.NextMatch()
		if !exists {
			break
		}
		for _, capture := range match.Captures {
			kind := captureKind(query.CaptureNameForId(capture.Index))
			node := capture.Node
			startLine := int(node.StartPoint().Row)
			endLine := int(node.EndPoint().Row)
			if startLine >= len(lines) {
				continue
			}

			// Multi-line captures (block comments, raw strings) become one
			// span per line.
			for lineNum := startLine; lineNum <= endLine && lineNum < len(lines); lineNum++ {
				line := lines[lineNum]
				startCol := 0
				endCol := utf8.RuneCountInString(line)
				if lineNum == startLine {
					startCol = byteToRuneCol(line, int(node.StartPoint().Column))
				}
				if lineNum == endLine {
					endCol = byteToRuneCol(line, int(node.EndPoint().Column))
				}
				if endCol <= startCol {
					continue
				}
				result[lineNum] = append(result[lineNum], Span{
					StartCol: startCol,
					EndCol:   endCol,
					Kind:     kind,
				})
			}
		}
	}

	logger.Debugf("Highlight: annotated %d line(s) as %s", len(result), lang.Name)
	return result, nil
}

// captureKind strips a capture name like "keyword.control" to its general
// style group.
func captureKind(name string) string {
	name = strings.TrimPrefix(name, "@")
	if dot := strings.Index(name, "."); dot != -1 {
		return name[:dot]
	}
	return name
}

// byteToRuneCol converts a byte column (tree-sitter Points are byte-based)
// to a rune column within the line.
func byteToRuneCol(line string, byteCol int) int {
	if byteCol <= 0 {
		return 0
	}
	if byteCol > len(line) {
		byteCol = len(line)
	}
	return utf8.RuneCountInString(line[:byteCol])
}
