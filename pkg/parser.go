package pathedit

import (
	"fmt"
	"strings"

	"github.com/rustyoz/svg"

	"github.com/gucio321/pathedit/pkg/pathdata"
)

// Parse creates a document from path data. On a parse error the document
// still holds every command before the malformed one.
func Parse(data []byte) (result *Document, err error) {
	// 0.0: initialize
	result = NewDocument()

	// 1.0: parse commands
	err = result.SetData(string(data))

	// N.N: return
	return result, err
}

// ParseSVG creates a document from the d attributes of every path of an svg
// file: paths placed directly in the root first, then the paths of each group
// (nested groups included) in document order. Other shapes are ignored and
// should be converted to paths beforehand (e.g. inkscape's object-to-path).
//
// A leading relative move of each path is made absolute, so paths keep their
// place when joined. On a parse error the document holds the commands read
// so far and the error names the failing path.
func ParseSVG(data []byte) (*Document, error) {
	// 0.0: unmarshal xml
	doc, err := svg.ParseSvg(string(data), "", 1)
	if err != nil {
		return nil, fmt.Errorf("reading svg: %w", err)
	}

	// 1.0: collect path data
	all := pathData(doc.Elements, nil)
	for i := range doc.Groups {
		all = pathData(doc.Groups[i].Elements, all)
	}

	result := NewDocument()
	if len(all) == 0 {
		return result, ErrNoSVGPaths
	}

	// 2.0: parse every path
	var (
		path     pathdata.Path
		parseErr error
	)

	for i, d := range all {
		p, err := pathdata.ParseAll(d)
		if len(p) > 0 {
			if m, ok := p[0].(*pathdata.Move); ok {
				m.SetAbsolute(true)
			}
		}

		path = append(path, p...)

		if err != nil {
			parseErr = fmt.Errorf("svg path %d: %w", i+1, err)
			break
		}
	}

	// N.N: return
	return result, result.load(path.String(), path, parseErr)
}

func pathData(elements []svg.DrawingInstructionParser, result []string) []string {
	for _, e := range elements {
		switch v := e.(type) {
		case *svg.Path:
			if d := strings.TrimSpace(v.D); d != "" {
				result = append(result, d)
			}
		case *svg.Group:
			result = pathData(v.Elements, result)
		}
	}

	return result
}
