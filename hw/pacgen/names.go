package pacgen

import (
	"fmt"
	"strings"
	"unicode"
)

// camel turns a register map name into an exported Go identifier:
// "rx_full" becomes "RxFull".
func camel(name string) string {
	var sb strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(part[:1]))
		sb.WriteString(part[1:])
	}
	return exported(sb.String())
}

// upper turns a register map name into the upper-case form used in type
// and constant names.
func upper(name string) string {
	return exported(strings.ToUpper(strings.Trim(name, "_")))
}

func exported(id string) string {
	if id == "" || !unicode.IsLetter(rune(id[0])) {
		return "X" + id
	}
	return id
}

// namespace detects distinct names mapping to the same identifier within a
// scope.
type namespace struct {
	scope string
	ids   map[string]string // identifier -> original name
}

func newNamespace(scope string, reserved ...string) *namespace {
	ns := &namespace{scope: scope, ids: make(map[string]string)}
	for _, r := range reserved {
		ns.ids[r] = ""
	}
	return ns
}

// add registers name under identifier id. Names clashing with a reserved
// identifier get the suffix; clashes between two names are errors.
func (ns *namespace) add(name, id, suffix string) (string, error) {
	if orig, ok := ns.ids[id]; ok && orig == "" && suffix != "" {
		id += suffix
	}
	if orig, ok := ns.ids[id]; ok {
		if orig == "" {
			orig = "reserved identifier"
		}
		return "", fmt.Errorf("%s: %q and %q both map to %s: %w", ns.scope, orig, name, id, ErrNameCollision)
	}
	ns.ids[id] = name
	return id, nil
}
