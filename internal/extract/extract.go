package extract

import (
	"fmt"
	"regexp"

	"github.com/tidwall/gjson"
)

// NullText is what an absent value renders as.
const NullText = "null"

// Value is a scalar read from a response body. The zero Value is absent.
type Value struct {
	text  string
	found bool
}

func Found(text string) Value {
	return Value{text: text, found: true}
}

func (v Value) Get() (string, bool) {
	return v.text, v.found
}

func (v Value) Present() bool {
	return v.found
}

func (v Value) String() string {
	if !v.found {
		return NullText
	}
	return v.text
}

// Field names one scalar inside a JSON document. Path is a gjson path used by
// PathExtractor; Pattern is the equivalent regular expression with a single
// capturing group used by PatternExtractor. When FirstKey is set, Path points
// at an object and the value is the name of its first member.
type Field struct {
	Name     string
	Path     string
	FirstKey bool
	Pattern  *regexp.Regexp
}

type Extractor interface {
	Lookup(body string, field Field) Value
}

const (
	ModePath    = "path"
	ModePattern = "pattern"
)

func New(mode string) (Extractor, error) {
	switch mode {
	case ModePath, "":
		return PathExtractor{}, nil
	case ModePattern:
		return PatternExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown extractor mode %q", mode)
	}
}

// PathExtractor parses the body as JSON and indexes it by Field.Path.
type PathExtractor struct{}

func (PathExtractor) Lookup(body string, field Field) Value {
	if field.Path == "" || !gjson.Valid(body) {
		return Value{}
	}

	result := gjson.Get(body, field.Path)
	if !result.Exists() {
		return Value{}
	}

	if field.FirstKey {
		if !result.IsObject() {
			return Value{}
		}
		var key Value
		result.ForEach(func(k, _ gjson.Result) bool {
			key = Found(k.String())
			return false
		})
		return key
	}

	switch result.Type {
	case gjson.String:
		return Found(result.Str)
	case gjson.Number, gjson.True, gjson.False:
		// raw keeps the number exactly as the upstream wrote it
		return Found(result.Raw)
	default:
		return Value{}
	}
}

// PatternExtractor applies Field.Pattern to the raw body text.
type PatternExtractor struct{}

func (PatternExtractor) Lookup(body string, field Field) Value {
	return Match(body, field.Pattern)
}

// Match returns the first capturing group of the first match of re in text.
// It never fails: no pattern, no match or no group all yield an absent Value.
func Match(text string, re *regexp.Regexp) Value {
	if re == nil {
		return Value{}
	}
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return Value{}
	}
	return Found(m[1])
}
