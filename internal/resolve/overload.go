package resolve

import (
	"strings"

	"github.com/graphlang/codeindex/internal/model"
)

// resolveOverloadSet narrows candidates by arity, then by per-position
// argument-type compatibility, per spec §4.8's overload-resolution rules.
// filter additionally restricts candidates to a particular declaring scope
// (a class, a package, or "any" for the last-resort step).
func resolveOverloadSet(candidates []*model.FunctionSymbol, call model.ParsedCall, filter func(*model.Symbol) bool, table *model.SymbolTable) (string, *model.FunctionSymbol, bool) {
	var scoped []*model.FunctionSymbol
	for _, fn := range candidates {
		owner := table.OwnerOf(fn)
		if owner == nil || !filter(owner) {
			continue
		}
		scoped = append(scoped, fn)
	}
	if len(scoped) == 0 {
		return "", nil, false
	}

	arityFiltered := filterByArity(scoped, call)
	if len(arityFiltered) == 0 {
		return "", nil, false
	}
	if len(arityFiltered) == 1 {
		return table.OwnerOf(arityFiltered[0]).FQN, arityFiltered[0], true
	}

	if len(call.ArgumentTypes) == 0 {
		// Arity known or unknown but no type info to break the tie: refuse
		// to guess among several same-arity candidates.
		return "", nil, false
	}

	best, _, tie := bestByArgumentTypes(arityFiltered, call.ArgumentTypes)
	if tie || best == nil {
		return "", nil, false
	}
	return table.OwnerOf(best).FQN, best, true
}

func filterByArity(candidates []*model.FunctionSymbol, call model.ParsedCall) []*model.FunctionSymbol {
	if !call.HasArgumentCount {
		return candidates
	}
	var out []*model.FunctionSymbol
	for _, fn := range candidates {
		if len(fn.ParameterTypes) == call.ArgumentCount {
			out = append(out, fn)
			continue
		}
		if isVariadicCompatible(fn, call.ArgumentCount) {
			out = append(out, fn)
		}
	}
	return out
}

// isVariadicCompatible treats a trailing "..." or "[]"-suffixed final
// parameter as a vararg/rest parameter whose fixed prefix must be <= the
// call's argument count.
func isVariadicCompatible(fn *model.FunctionSymbol, argCount int) bool {
	n := len(fn.ParameterTypes)
	if n == 0 {
		return false
	}
	last := fn.ParameterTypes[n-1]
	if !strings.HasSuffix(last, "...") && !strings.HasSuffix(last, "[]") {
		return false
	}
	return n-1 <= argCount
}

// compatibility scores, highest-wins; ties are left unresolved.
const (
	scoreExact         = 4
	scoreSubtype       = 3
	scoreWidening      = 2
	scoreAnyCompatible = 1
	scoreIncompatible  = -1
)

func bestByArgumentTypes(candidates []*model.FunctionSymbol, argTypes []string) (*model.FunctionSymbol, int, bool) {
	type scored struct {
		fn    *model.FunctionSymbol
		score int
	}
	var ranked []scored
	for _, fn := range candidates {
		total, ok := scoreCandidate(fn, argTypes)
		if !ok {
			continue
		}
		ranked = append(ranked, scored{fn, total})
	}
	if len(ranked) == 0 {
		return nil, 0, false
	}
	best := ranked[0]
	for _, r := range ranked[1:] {
		if r.score > best.score {
			best = r
		}
	}
	tie := false
	for _, r := range ranked {
		if r.fn != best.fn && r.score == best.score {
			tie = true
		}
	}
	return best.fn, best.score, tie
}

func scoreCandidate(fn *model.FunctionSymbol, argTypes []string) (int, bool) {
	total := 0
	for i, argType := range argTypes {
		if i >= len(fn.ParameterTypes) {
			break
		}
		s := positionScore(fn.ParameterTypes[i], argType)
		if s == scoreIncompatible {
			return 0, false
		}
		total += s
	}
	return total, true
}

func positionScore(paramType, argType string) int {
	paramType = normalizeType(paramType)
	argType = normalizeType(argType)
	switch {
	case paramType == argType:
		return scoreExact
	case paramType == "" || argType == "":
		return scoreAnyCompatible
	case isAnyLike(paramType) || isAnyLike(argType):
		return scoreAnyCompatible
	case isNumeric(paramType) && isNumeric(argType):
		return scoreWidening
	default:
		return scoreIncompatible
	}
}

func normalizeType(t string) string {
	t = strings.TrimSpace(t)
	t = strings.TrimSuffix(t, "?")
	t = strings.TrimSuffix(t, "...")
	t = strings.TrimSuffix(t, "[]")
	return t
}

func isAnyLike(t string) bool {
	switch t {
	case "Any", "any", "unknown", "Object", "object":
		return true
	}
	return false
}

func isNumeric(t string) bool {
	switch t {
	case "Int", "Long", "Short", "Byte", "Double", "Float",
		"int", "long", "short", "byte", "double", "float",
		"number", "bigint":
		return true
	}
	return false
}
