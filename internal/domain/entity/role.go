package entity

import (
	"encoding/json"
	"sort"
	"strings"
)

// RoleSet is the canonical, normalized form of a user's roles: a set of
// lowercase role names. All downstream authorization logic works on this
// type; raw role data is interpreted exactly once, at ParseRoleSet.
type RoleSet map[string]struct{}

// ParseRoleSet normalizes any of the role encodings found in the wild
// into a RoleSet: a native string list, a JSON-encoded list or object, a
// comma-delimited string, or whitespace-separated tokens. Parsing never
// fails; unparseable input yields the empty set.
func ParseRoleSet(raw any) RoleSet {
	set := make(RoleSet)

	switch v := raw.(type) {
	case nil:
		return set
	case []string:
		for _, name := range v {
			set.add(name)
		}
	case []any:
		for _, item := range v {
			if name, ok := item.(string); ok {
				set.add(name)
			}
		}
	case map[string]any:
		// Object form: {"admin": true}. Truthy values grant the role.
		for name, enabled := range v {
			if truthy(enabled) {
				set.add(name)
			}
		}
	case map[string]bool:
		for name, enabled := range v {
			if enabled {
				set.add(name)
			}
		}
	case string:
		parseRoleString(v, set)
	}

	return set
}

func parseRoleString(raw string, set RoleSet) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return
	}

	// JSON-encoded lists and objects are detected structurally and
	// re-dispatched through the typed branches.
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		var decoded any
		if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
			for name := range ParseRoleSet(decoded) {
				set.add(name)
			}
		}

		return
	}

	// Delimited string: commas and/or whitespace.
	for _, token := range strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	}) {
		set.add(token)
	}
}

func (s RoleSet) add(name string) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return
	}
	s[name] = struct{}{}
}

// Contains reports whether the set holds the given role name.
// The lookup is case-insensitive, matching the set's normalization.
func (s RoleSet) Contains(name string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(name))]

	return ok
}

// ContainsAny reports whether the set intersects the given allow-list.
func (s RoleSet) ContainsAny(names []string) bool {
	for _, name := range names {
		if s.Contains(name) {
			return true
		}
	}

	return false
}

// Strings returns the roles as a sorted slice for stable serialization.
func (s RoleSet) Strings() []string {
	result := make([]string, 0, len(s))
	for name := range s {
		result = append(result, name)
	}
	sort.Strings(result)

	return result
}

func truthy(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return strings.EqualFold(val, "true") || val == "1"
	case float64:
		return val != 0
	default:
		return false
	}
}
