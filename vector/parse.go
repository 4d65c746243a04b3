package vector

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-linalg/scalar"
)

// Text form literals shared by String and Parse.
const (
	fmtOpen  = "["
	fmtClose = "]"
	fmtSep   = ", "
)

// Parse reads a vector in the form produced by String: elements in the
// ring's text format, comma separated, enclosed in brackets. Whitespace
// around elements is ignored; "[]" is the empty vector.
func Parse[T any](ring scalar.Ring[T], s string, opts ...Option) (*Vector[T], error) {
	if ring == nil {
		return nil, vectorErrorf("Parse", ErrNilRing)
	}

	body := strings.TrimSpace(s)
	if !strings.HasPrefix(body, fmtOpen) || !strings.HasSuffix(body, fmtClose) || len(body) < 2 {
		return nil, vectorErrorf("Parse", fmt.Errorf("%w: %q is not enclosed in brackets", ErrParse, s))
	}
	body = strings.TrimSpace(body[1 : len(body)-1])

	if body == "" {
		return FromSlice(ring, nil, opts...)
	}

	fields := strings.Split(body, ",")
	values := make([]T, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			return nil, vectorErrorf("Parse", fmt.Errorf("%w: empty element %d", ErrParse, i))
		}
		x, err := ring.Parse(f)
		if err != nil {
			return nil, vectorErrorf("Parse", fmt.Errorf("element %d: %w", i, err))
		}
		values[i] = x
	}

	return &Vector[T]{ring: ring, data: values, cfg: buildConfig(opts)}, nil
}
