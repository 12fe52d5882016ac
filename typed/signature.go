// SPDX-License-Identifier: MIT

package typed

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmath/value"
)

const (
	restPrefix = "..."
	anyName    = "any"
)

// param is one parsed parameter slot.
type param struct {
	types []value.Type // alternatives in declaration order (nil when any)
	any   bool
	rest  bool
}

func (p param) accepts(t value.Type) bool {
	if p.any {
		return true
	}
	for _, pt := range p.types {
		if pt == t {
			return true
		}
	}

	return false
}

func (p param) String() string {
	var sb strings.Builder
	if p.rest {
		sb.WriteString(restPrefix)
	}
	if p.any {
		sb.WriteString(anyName)
		return sb.String()
	}
	for i, t := range p.types {
		if i > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString(t.String())
	}

	return sb.String()
}

// Signature is a parsed, normalised parameter list.
type Signature struct {
	params []param
}

// ParseSignature parses the grammar documented in the package overview.
//
// Errors:
//   - ErrBadSignature for empty parameters or a misplaced rest marker.
//   - value.ErrUnknownType for unknown type names.
func ParseSignature(s string) (Signature, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Signature{}, nil
	}
	raw := strings.Split(s, ",")
	params := make([]param, len(raw))
	for i, r := range raw {
		p, err := parseParam(strings.TrimSpace(r), i == len(raw)-1)
		if err != nil {
			return Signature{}, typedErrorf("ParseSignature("+strconv.Quote(s)+")", err)
		}
		params[i] = p
	}

	return Signature{params: params}, nil
}

func parseParam(s string, last bool) (param, error) {
	var p param
	if strings.HasPrefix(s, restPrefix) {
		if !last {
			return param{}, ErrBadSignature
		}
		p.rest = true
		s = strings.TrimSpace(strings.TrimPrefix(s, restPrefix))
	}
	if s == "" {
		return param{}, ErrBadSignature
	}
	seen := make(map[value.Type]bool)
	for _, alt := range strings.Split(s, "|") {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			return param{}, ErrBadSignature
		}
		if alt == anyName {
			p.any = true
			continue
		}
		t, err := value.ParseType(alt)
		if err != nil {
			return param{}, err
		}
		if !seen[t] {
			seen[t] = true
			p.types = append(p.types, t)
		}
	}
	if p.any {
		p.types = nil
	}

	return p, nil
}

// String returns the normalised signature text.
func (s Signature) String() string {
	parts := make([]string, len(s.params))
	for i, p := range s.params {
		parts[i] = p.String()
	}

	return strings.Join(parts, ", ")
}

// Arity returns the minimum number of arguments and whether more are accepted.
func (s Signature) Arity() (int, bool) {
	n := len(s.params)
	if n > 0 && s.params[n-1].rest {
		return n, true
	}

	return n, false
}

// paramFor returns the slot that receives argument i.
func (s Signature) paramFor(i int) param {
	if i >= len(s.params) {
		return s.params[len(s.params)-1]
	}

	return s.params[i]
}

// fits reports whether n arguments satisfy the arity.
func (s Signature) fits(n int) bool {
	need, variadic := s.Arity()
	if variadic {
		return n >= need
	}

	return n == need
}
