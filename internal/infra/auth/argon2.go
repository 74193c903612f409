package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

// argon2Params holds the cost parameters parsed from an encoded hash.
type argon2Params struct {
	variant string
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	hash    []byte
}

// verifyArgon2 checks a password against an encoded argon2 hash of the
// form $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>. Any parse failure
// is a non-match.
func verifyArgon2(password, encoded string) bool {
	params, ok := parseArgon2(encoded)
	if !ok {
		return false
	}

	var derived []byte
	switch params.variant {
	case "argon2id":
		derived = argon2.IDKey([]byte(password), params.salt, params.time, params.memory, params.threads, uint32(len(params.hash)))
	case "argon2i":
		derived = argon2.Key([]byte(password), params.salt, params.time, params.memory, params.threads, uint32(len(params.hash)))
	default:
		return false
	}

	return subtle.ConstantTimeCompare(derived, params.hash) == 1
}

func parseArgon2(encoded string) (argon2Params, bool) {
	var params argon2Params

	parts := strings.Split(encoded, "$")
	// Leading separator yields an empty first element:
	// ["", variant, version, costs, salt, hash]
	if len(parts) != 6 || parts[0] != "" {
		return params, false
	}
	params.variant = parts[1]

	if !strings.HasPrefix(parts[2], "v=") {
		return params, false
	}
	version, err := strconv.Atoi(strings.TrimPrefix(parts[2], "v="))
	if err != nil || version != argon2.Version {
		return params, false
	}

	for _, field := range strings.Split(parts[3], ",") {
		key, value, found := strings.Cut(field, "=")
		if !found {
			return params, false
		}
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return params, false
		}
		switch key {
		case "m":
			params.memory = uint32(n)
		case "t":
			params.time = uint32(n)
		case "p":
			params.threads = uint8(n)
		default:
			return params, false
		}
	}
	if params.memory == 0 || params.time == 0 || params.threads == 0 {
		return params, false
	}

	if params.salt, err = base64.RawStdEncoding.Strict().DecodeString(parts[4]); err != nil {
		return params, false
	}
	if params.hash, err = base64.RawStdEncoding.Strict().DecodeString(parts[5]); err != nil {
		return params, false
	}
	if len(params.hash) == 0 {
		return params, false
	}

	return params, true
}
