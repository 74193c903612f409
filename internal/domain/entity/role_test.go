package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoleSet_NativeList(t *testing.T) {
	roles := ParseRoleSet([]string{"Admin", "manager", " admin "})

	assert.Len(t, roles, 2)
	assert.True(t, roles.Contains("admin"))
	assert.True(t, roles.Contains("manager"))
}

func TestParseRoleSet_AnyList(t *testing.T) {
	roles := ParseRoleSet([]any{"admin", 42, "Cashier"})

	assert.Len(t, roles, 2)
	assert.True(t, roles.Contains("admin"))
	assert.True(t, roles.Contains("cashier"))
}

func TestParseRoleSet_ObjectForm(t *testing.T) {
	roles := ParseRoleSet(map[string]any{
		"admin":   true,
		"manager": false,
		"cashier": "true",
		"viewer":  float64(1),
		"ghost":   float64(0),
	})

	assert.ElementsMatch(t, []string{"admin", "cashier", "viewer"}, roles.Strings())
}

func TestParseRoleSet_BoolMap(t *testing.T) {
	roles := ParseRoleSet(map[string]bool{"Admin": true, "manager": false})

	assert.Equal(t, []string{"admin"}, roles.Strings())
}

func TestParseRoleSet_JSONStrings(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected []string
	}{
		{"json list", `["Admin", "manager"]`, []string{"admin", "manager"}},
		{"json object", `{"admin": true, "viewer": false}`, []string{"admin"}},
		{"malformed json", `["admin"`, nil},
		{"csv", "admin,manager, cashier", []string{"admin", "cashier", "manager"}},
		{"whitespace separated", "admin  manager\tcashier", []string{"admin", "cashier", "manager"}},
		{"mixed delimiters", "admin, manager cashier", []string{"admin", "cashier", "manager"}},
		{"empty", "", nil},
		{"blank tokens", " , , ", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			roles := ParseRoleSet(tc.raw)
			if tc.expected == nil {
				assert.Empty(t, roles)
			} else {
				assert.Equal(t, tc.expected, roles.Strings())
			}
		})
	}
}

func TestParseRoleSet_NeverFails(t *testing.T) {
	// Unsupported shapes degrade to the empty set instead of erroring.
	assert.Empty(t, ParseRoleSet(nil))
	assert.Empty(t, ParseRoleSet(42))
	assert.Empty(t, ParseRoleSet([]int{1, 2}))
}

func TestRoleSet_ContainsAny(t *testing.T) {
	roles := ParseRoleSet([]string{"manager"})

	assert.True(t, roles.ContainsAny([]string{"admin", "manager"}))
	assert.True(t, roles.ContainsAny([]string{"MANAGER"}))
	assert.False(t, roles.ContainsAny([]string{"admin", "cashier"}))
	assert.False(t, roles.ContainsAny(nil))
}
