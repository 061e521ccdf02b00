package identifier

import "errors"

var (
	ErrSequenceExhausted = errors.New("identifier sequence exhausted")
	ErrIdentifierTaken   = errors.New("identifier already taken")
)
