// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package errors

// Template describes the layer of an Err chain a caller is looking for.
// Zero fields match anything.
type Template struct {
	Code Code
	Kind Kind
	Op   Op
	Msg  string
}

// T builds a Template from any mix of Code, Kind, Op and string (the layer's
// msg). Other argument types are ignored and later values win.
func T(args ...any) *Template {
	t := &Template{}
	for _, a := range args {
		switch arg := a.(type) {
		case Code:
			t.Code = arg
		case Kind:
			t.Kind = arg
		case Op:
			t.Op = arg
		case string:
			t.Msg = arg
		}
	}
	return t
}

func (t *Template) matches(e *Err) bool {
	switch {
	case t.Code != Unknown && t.Code != e.Code:
		return false
	case t.Kind != Other && t.Kind != e.Info().Kind:
		return false
	case t.Op != "" && t.Op != e.Op:
		return false
	case t.Msg != "" && t.Msg != e.Msg:
		return false
	}
	return true
}

// Match reports whether any *Err layer in the chain of err satisfies every
// non-zero field of t. A layer added by Wrap carries the code of the layer it
// wraps, so matching on Code alone succeeds at the outermost layer.
func Match(t *Template, err error) bool {
	if t == nil || err == nil {
		return false
	}
	for {
		var e *Err
		if !As(err, &e) {
			return false
		}
		if t.matches(e) {
			return true
		}
		if e.Wrapped == nil {
			return false
		}
		err = e.Wrapped
	}
}
