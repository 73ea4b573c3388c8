// Package rules implements the business-rule checks that run before every
// catalog mutation: identity consistency, existence of the primary entity,
// existence of every referenced entity, duplicate-key detection, and
// cascade-blocking on delete.
//
// Each check returns a discriminated *Violation instead of accumulating
// state, so callers decide the HTTP outcome from the Kind alone. A nil
// Violation means the mutation may proceed. Infrastructure failures come
// back as a separate error.
//
// Checks run in a fixed order and the first failure wins: identity
// mismatch, then primary existence, then foreign keys, then duplicates,
// then cascade blocks.
package rules

import "fmt"

// Kind classifies a rule violation so controllers can pick a status code.
type Kind int

const (
	// KindInvalid marks a malformed or inconsistent request.
	KindInvalid Kind = iota
	// KindNotFound marks a missing primary or referenced entity.
	KindNotFound
	// KindDuplicate marks a unique-key collision (country name, ISBN).
	KindDuplicate
	// KindBlocked marks a delete prevented by dependent entities.
	KindBlocked
)

// Violation carries the failure kind plus human-readable reasons.
type Violation struct {
	Kind     Kind
	Messages []string
}

func (v *Violation) Error() string {
	if len(v.Messages) > 0 {
		return v.Messages[0]
	}
	return "rule violation"
}

func invalid(format string, args ...any) *Violation {
	return &Violation{Kind: KindInvalid, Messages: []string{fmt.Sprintf(format, args...)}}
}

func notFound(format string, args ...any) *Violation {
	return &Violation{Kind: KindNotFound, Messages: []string{fmt.Sprintf(format, args...)}}
}

func duplicate(format string, args ...any) *Violation {
	return &Violation{Kind: KindDuplicate, Messages: []string{fmt.Sprintf(format, args...)}}
}

func blocked(format string, args ...any) *Violation {
	return &Violation{Kind: KindBlocked, Messages: []string{fmt.Sprintf(format, args...)}}
}

// checkIDMatch enforces the path-id vs body-id consistency rule on updates.
// A zero body id is tolerated: the entity then inherits the path id.
func checkIDMatch(pathID, bodyID uint) *Violation {
	if bodyID != 0 && bodyID != pathID {
		return invalid("body id %d does not match path id %d", bodyID, pathID)
	}
	return nil
}
