package types

import "errors"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat   ErrKind = iota // missing or wrong magic marker
	ErrKindCorrupt                 // record stream contents that cannot be decoded
	ErrKindRange                   // cursor or value outside the available bits
	ErrKindNotFound                // missing attribute or table entry
	ErrKindState                   // operation refused for the document's current state
)

// String returns a short lowercase label for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindCorrupt:
		return "corrupt"
	case ErrKindRange:
		return "range"
	case ErrKindNotFound:
		return "not found"
	case ErrKindState:
		return "state"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels returned (wrapped) by the codec and the document layer.
var (
	// ErrBadMagic indicates the attribute section does not start with "gf".
	ErrBadMagic = &Error{Kind: ErrKindFormat, Msg: "attribute section magic not found"}
	// ErrUnknownAttributeID indicates a record id outside the table that is not the sentinel.
	ErrUnknownAttributeID = &Error{Kind: ErrKindCorrupt, Msg: "unknown attribute id"}
	// ErrOutOfRange indicates a bit cursor ran past the end of its buffer.
	ErrOutOfRange = &Error{Kind: ErrKindRange, Msg: "bit offset out of range"}
	// ErrValueOutOfRange indicates a value does not fit its record's bit width.
	ErrValueOutOfRange = &Error{Kind: ErrKindRange, Msg: "value does not fit field width"}
	// ErrAttributeNotFound indicates a name that is unknown or absent before the sentinel.
	ErrAttributeNotFound = &Error{Kind: ErrKindNotFound, Msg: "attribute not found"}
	// ErrUnknownClass indicates a class id or name outside the class table.
	ErrUnknownClass = &Error{Kind: ErrKindNotFound, Msg: "unknown character class"}
	// ErrInvalidName indicates a character name that cannot be stored or used as a file name.
	ErrInvalidName = &Error{Kind: ErrKindFormat, Msg: "invalid character name"}
	// ErrNameMismatch indicates the in-file name differs from the save identity.
	ErrNameMismatch = &Error{Kind: ErrKindState, Msg: "character name does not match save identity"}
)

// KindOf reports the ErrKind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var te *Error
	if !errors.As(err, &te) {
		return 0, false
	}
	return te.Kind, true
}
