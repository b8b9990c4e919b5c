// ==============================================================================================
// FILE: internal/interp/scope.go
// ==============================================================================================
// PACKAGE: interp
// PURPOSE: The Environment component (spec.md §4.3): a chain of scopes
//          holding named Bindings. Lookup walks parents; Set may rebind an
//          ancestor's binding, DefineLocal never does; lock flags are
//          append-only per binding lifetime.
// ==============================================================================================

package interp

import "github.com/lithammer/fuzzysearch/fuzzy"

// binding is a (value, lock-flag) pair. Names are keyed by the owning map,
// matching spec.md §3's {name, value, is_lock} triple.
type binding struct {
	value  Value
	locked bool
}

// Scope is one frame of the lexical scope chain (spec.md §3 "Scope"). The
// root scope has a nil parent and lives as long as the program; every other
// scope is pushed on function call entry (blocks run in the enclosing scope).
type Scope struct {
	vars   map[string]*binding
	parent *Scope
}

// NewScope creates a child scope of parent. Passing a nil parent creates a
// root scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{vars: make(map[string]*binding), parent: parent}
}

// Get walks from s up through parents, returning the bound value or an
// Error value "undefined variable <name>" if no ancestor has it (spec.md
// §4.3). The fuzzy-matched "did you mean" suggestion is an ambient usability
// addition (see DESIGN.md), appended only when a close candidate exists.
func (s *Scope) Get(name string) Value {
	for sc := s; sc != nil; sc = sc.parent {
		if b, ok := sc.vars[name]; ok {
			return b.value
		}
	}
	if suggestion := s.suggest(name); suggestion != "" {
		return NewError("undefined variable %q (did you mean %q?)", name, suggestion)
	}
	return NewError("undefined variable %q", name)
}

// Set implements assignment semantics: if name exists in any ancestor and is
// not locked, it is overwritten there; if locked, Set fails; if absent
// anywhere, a new binding is created in the current scope (spec.md §4.3).
// The returned bool is false only on a lock violation.
func (s *Scope) Set(name string, value Value, isLock bool) (ok bool, errMsg string) {
	for sc := s; sc != nil; sc = sc.parent {
		if b, found := sc.vars[name]; found {
			if b.locked {
				return false, "cannot assign to locked binding"
			}
			b.value = value
			b.locked = isLock
			return true, ""
		}
	}
	s.vars[name] = &binding{value: value, locked: isLock}
	return true, ""
}

// DefineLocal creates or overwrites name in the current scope only, never
// walking to a parent — used for function parameters, repeat loop
// variables, and function definitions (spec.md §4.3).
func (s *Scope) DefineLocal(name string, value Value, isLock bool) {
	s.vars[name] = &binding{value: value, locked: isLock}
}

// names collects every binding name reachable from s, used only to build
// "did you mean" suggestions.
func (s *Scope) names() []string {
	var out []string
	seen := make(map[string]bool)
	for sc := s; sc != nil; sc = sc.parent {
		for name := range sc.vars {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}

// suggest finds the closest reachable binding name to name, the way
// opal-lang's planner finds the closest candidate for an unresolved
// reference. Returns "" if nothing reachable is a plausible typo.
func (s *Scope) suggest(name string) string {
	candidates := s.names()
	if len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindFold(name, candidates)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	if best.Distance > 2 {
		return ""
	}
	return best.Target
}
