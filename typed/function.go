// SPDX-License-Identifier: MIT

package typed

import (
	"fmt"

	"github.com/katalvlaran/lvmath/value"
)

// Impl is an overload body. Arguments arrive already converted to the types
// of the selected signature; rest arguments are appended in order.
type Impl func(args ...value.Value) (value.Value, error)

// Overload pairs a signature string with its implementation.
type Overload struct {
	Signature string
	Impl      Impl
}

// Overloads is an ordered overload set; order is the declaration order used
// to break ties.
type Overloads []Overload

// Typed creates dispatching functions bound to one conversion table.
type Typed struct {
	conversions []Conversion
	routes      *routeTable
}

// New returns a Typed using conversions in the given priority order.
func New(conversions ...Conversion) *Typed {
	convs := append([]Conversion(nil), conversions...)

	return &Typed{conversions: convs, routes: buildRoutes(convs)}
}

// Conversions returns a copy of the conversion table.
func (t *Typed) Conversions() []Conversion {
	return append([]Conversion(nil), t.conversions...)
}

// Create builds a dispatching Function.
//
// Errors:
//   - ErrNoSignatures when overloads is empty.
//   - ErrBadSignature / value.ErrUnknownType from parsing.
//   - ErrDuplicateSignature when two overloads normalise to the same text.
func (t *Typed) Create(name string, overloads Overloads) (*Function, error) {
	if len(overloads) == 0 {
		return nil, typedErrorf(name, ErrNoSignatures)
	}
	f := &Function{name: name, typed: t}
	if err := f.add(overloads); err != nil {
		return nil, err
	}

	return f, nil
}

// entry is one resolved overload.
type entry struct {
	sig  Signature
	text string
	impl Impl
}

// Function is a named callable that dispatches on argument types.
// A Function is immutable after creation and safe for concurrent use.
type Function struct {
	name    string
	typed   *Typed
	entries []entry
}

func (f *Function) add(overloads Overloads) error {
	seen := make(map[string]bool, len(f.entries)+len(overloads))
	for _, e := range f.entries {
		seen[e.text] = true
	}
	for _, o := range overloads {
		if o.Impl == nil {
			return typedErrorf(f.name+": "+o.Signature, ErrBadSignature)
		}
		sig, err := ParseSignature(o.Signature)
		if err != nil {
			return typedErrorf(f.name, err)
		}
		text := sig.String()
		if seen[text] {
			return typedErrorf(f.name+": "+text, ErrDuplicateSignature)
		}
		seen[text] = true
		f.entries = append(f.entries, entry{sig: sig, text: text, impl: o.Impl})
	}

	return nil
}

// Name returns the function name.
func (f *Function) Name() string { return f.name }

// Signatures returns the normalised signatures in declaration order.
func (f *Function) Signatures() []string {
	out := make([]string, len(f.entries))
	for i, e := range f.entries {
		out[i] = e.text
	}

	return out
}

// Extend returns a new Function with additional overloads appended after the
// existing ones. f is unchanged.
func (f *Function) Extend(overloads Overloads) (*Function, error) {
	g := &Function{name: f.name, typed: f.typed, entries: append([]entry(nil), f.entries...)}
	if err := g.add(overloads); err != nil {
		return nil, err
	}

	return g, nil
}

// score is the ranking tuple; lower is better.
type score struct {
	conversions int
	anys        int
	unions      int
	rest        int
	decl        int
}

func (s score) less(o score) bool {
	switch {
	case s.conversions != o.conversions:
		return s.conversions < o.conversions
	case s.anys != o.anys:
		return s.anys < o.anys
	case s.unions != o.unions:
		return s.unions < o.unions
	case s.rest != o.rest:
		return s.rest < o.rest
	}

	return s.decl < o.decl
}

// plan holds the conversion chain chosen for each argument.
type plan [][]Conversion

// match scores e against types, returning the per-argument conversion plan.
func (f *Function) match(decl int, e entry, types []value.Type) (score, plan, bool) {
	if !e.sig.fits(len(types)) {
		return score{}, nil, false
	}
	sc := score{decl: decl}
	if _, variadic := e.sig.Arity(); variadic {
		sc.rest = 1
	}
	var p plan
	for i, t := range types {
		prm := e.sig.paramFor(i)
		switch {
		case prm.any:
			sc.anys++
			continue
		case prm.accepts(t):
			if len(prm.types) > 1 {
				sc.unions++
			}
			continue
		}
		// Conversion: shortest chain to any alternative; ties → first alternative.
		var best []Conversion
		for _, to := range prm.types {
			r := f.typed.routes.route(t, to)
			if r != nil && (best == nil || len(r) < len(best)) {
				best = r
			}
		}
		if best == nil {
			return score{}, nil, false
		}
		if p == nil {
			p = make(plan, len(types))
		}
		p[i] = best
		sc.conversions += len(best)
		if len(prm.types) > 1 {
			sc.unions++
		}
	}

	return sc, p, true
}

// resolve picks the best entry for types.
func (f *Function) resolve(types []value.Type) (int, plan, error) {
	bestIdx := -1
	var bestScore score
	var bestPlan plan
	for i, e := range f.entries {
		sc, p, ok := f.match(i, e, types)
		if !ok {
			continue
		}
		if bestIdx < 0 || sc.less(bestScore) {
			bestIdx, bestScore, bestPlan = i, sc, p
		}
	}
	if bestIdx < 0 {
		return -1, nil, &DispatchError{Name: f.name, Types: types, Reason: f.reason(len(types))}
	}

	return bestIdx, bestPlan, nil
}

// reason classifies a failed resolution by arity.
func (f *Function) reason(n int) error {
	fewer, more, fits := false, false, false
	for _, e := range f.entries {
		need, variadic := e.sig.Arity()
		switch {
		case e.sig.fits(n):
			fits = true
		case n < need:
			fewer = true
		case !variadic && n > need:
			more = true
		}
	}
	switch {
	case fits:
		return ErrNoMatchingSignature
	case fewer && !more:
		return ErrTooFewArguments
	case more && !fewer:
		return ErrTooManyArguments
	}

	return ErrNoMatchingSignature
}

// Resolve returns the signature that would handle arguments of the given
// types, without invoking it.
func (f *Function) Resolve(types ...value.Type) (string, error) {
	idx, _, err := f.resolve(types)
	if err != nil {
		return "", err
	}

	return f.entries[idx].text, nil
}

// Call dispatches args to the best overload.
//
// Implementation:
//   - Stage 1: tag every argument with value.TypeOf.
//   - Stage 2: score candidates (see package docs) and pick the lowest tuple.
//   - Stage 3: apply the chosen conversion chains, then invoke the overload.
//
// Errors:
//   - *DispatchError when nothing matches.
//   - Conversion failures wrapped with the function name and argument position.
//   - Whatever the overload returns.
func (f *Function) Call(args ...value.Value) (value.Value, error) {
	types := value.TypesOf(args)
	idx, p, err := f.resolve(types)
	if err != nil {
		return nil, err
	}
	if p != nil {
		conv := make([]value.Value, len(args))
		copy(conv, args)
		for i, chain := range p {
			for _, c := range chain {
				conv[i], err = c.Convert(conv[i])
				if err != nil {
					return nil, fmt.Errorf("%s: argument %d: %w", f.name, i, err)
				}
			}
		}
		args = conv
	}

	return f.entries[idx].impl(args...)
}
