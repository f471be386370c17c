package project

import (
	"bytes"
	"encoding/json"
	"log/slog"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Reader loads configuration documents with absent-on-failure semantics.
type Reader struct {
	fs     afero.Fs
	logger *slog.Logger
}

// NewReader creates a reader over fs. A nil logger discards output.
func NewReader(fs afero.Fs, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Reader{fs: fs, logger: logger}
}

// Read parses the document at path. Missing files and parse failures both
// yield Absent; neither is an error.
func (r *Reader) Read(path string, kind DocumentKind) Document {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		r.logger.Debug("document not readable", "path", path, "error", err)
		return Absent()
	}

	var value any
	switch kind {
	case KindYAML:
		err = yaml.Unmarshal(data, &value)
	default:
		err = json.Unmarshal(StripComments(data), &value)
	}
	if err != nil {
		r.logger.Debug("document not parseable", "path", path, "kind", kind.String(), "error", err)
		return Absent()
	}
	return NewDocument(value)
}

// StripComments removes // line comments and /* */ block comments from JSON
// source. Comment markers inside string literals are kept. Newlines inside
// block comments are preserved so parser offsets still map to source lines.
func StripComments(src []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(src))

	inString := false
	for i := 0; i < len(src); i++ {
		c := src[i]

		if inString {
			out.WriteByte(c)
			switch c {
			case '\\':
				if i+1 < len(src) {
					i++
					out.WriteByte(src[i])
				}
			case '"':
				inString = false
			}
			continue
		}

		if c == '"' {
			inString = true
			out.WriteByte(c)
			continue
		}

		if c == '/' && i+1 < len(src) {
			switch src[i+1] {
			case '/':
				i += 2
				for i < len(src) && src[i] != '\n' {
					i++
				}
				if i < len(src) {
					out.WriteByte('\n')
				}
				continue
			case '*':
				i += 2
				for i < len(src) && !(src[i] == '*' && i+1 < len(src) && src[i+1] == '/') {
					if src[i] == '\n' {
						out.WriteByte('\n')
					}
					i++
				}
				// skip the closing "*/"
				i++
				continue
			}
		}

		out.WriteByte(c)
	}
	return out.Bytes()
}
