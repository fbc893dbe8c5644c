package comb

// Sequential composition merges sub-results into one of a small closed set of
// variants: everything dropped (ignored), exactly one real value (kept
// unwrapped), or two and more real values (a flat Sequence). The merge
// function below is total over that set and never inspects value identity
// beyond it.

// Sequence is an ordered list of values produced by sequential composition.
// Sequences from chained Then calls are always flat, regardless of grouping;
// nested pairs never occur.
type Sequence []interface{}

// ignored marks a value for exclusion from sequential merging. Skip produces
// it, merge drops it.
type ignored struct {
	v interface{}
}

// merge implements the flattening rule: ignored values are dropped; a lone
// surviving value stays unwrapped; two surviving values form a Sequence,
// splicing in any Sequence operand.
func merge(v1, v2 interface{}) interface{} {
	vs := make([]interface{}, 0, 2)
	if _, drop := v1.(ignored); !drop {
		vs = append(vs, v1)
	}
	if _, drop := v2.(ignored); !drop {
		vs = append(vs, v2)
	}
	switch len(vs) {
	case 1:
		return vs[0]
	case 2:
		left, lok := vs[0].(Sequence)
		right, rok := vs[1].(Sequence)
		switch {
		case lok && rok:
			out := make(Sequence, 0, len(left)+len(right))
			return append(append(out, left...), right...)
		case lok:
			out := make(Sequence, 0, len(left)+1)
			return append(append(out, left...), vs[1])
		case rok:
			out := make(Sequence, 0, len(right)+1)
			return append(append(out, vs[0]), right...)
		}
		return Sequence{vs[0], vs[1]}
	}
	return ignored{}
}
