package sched

import (
	"fmt"
	"io"
)

// RestartUnset is the restart-index sentinel for records that have not been
// tagged with a restart step.
const RestartUnset = -1

// Keyword is the uniform handle for one parsed SCHEDULE keyword block:
// a type tag, the exact source name token, an optional restart tag, and the
// type-specific payload. The type and name are immutable after creation;
// the payload is exclusively owned by the record.
type Keyword struct {
	typ     KeywordType
	name    string
	restart int
	payload Payload
}

// NewKeyword creates a record for the given type and payload. The payload
// must match the type's variant shape; the typed accessors enforce this at
// query time.
func NewKeyword(typ KeywordType, name string, payload Payload) *Keyword {
	return &Keyword{
		typ:     typ,
		name:    name,
		restart: RestartUnset,
		payload: payload,
	}
}

// Type returns the keyword's variant tag.
func (k *Keyword) Type() KeywordType { return k.typ }

// Name returns the exact keyword name token from the source.
func (k *Keyword) Name() string { return k.name }

// TypeName returns the canonical name of the keyword's type.
func (k *Keyword) TypeName() string { return k.typ.String() }

// RestartIndex returns the restart tag, or RestartUnset.
func (k *Keyword) RestartIndex() int { return k.restart }

// SetRestartIndex tags the record with the restart step that produced it.
// The value is not validated.
func (k *Keyword) SetRestartIndex(n int) { k.restart = n }

// Payload returns the variant body. Callers that need a concrete shape
// should use the typed accessors instead.
func (k *Keyword) Payload() Payload { return k.payload }

// Clone returns an independent deep copy of the record. Mutating the clone's
// restart index or payload never affects the source; no payload is ever
// shared between two records.
func (k *Keyword) Clone() *Keyword {
	dup := &Keyword{
		typ:     k.typ,
		name:    k.name,
		restart: k.restart,
	}
	if k.payload != nil {
		dup.payload = k.payload.clone()
	}
	return dup
}

// Fprintf writes a human-readable dump of the record: type, name, restart
// tag, and payload rows. The output is diagnostic only; there is no
// round-trip guarantee back to a record.
func (k *Keyword) Fprintf(w io.Writer) {
	if k.restart != RestartUnset {
		fmt.Fprintf(w, "%s (%s, restart %d)\n", k.name, k.typ, k.restart)
	} else {
		fmt.Fprintf(w, "%s (%s)\n", k.name, k.typ)
	}
	if k.payload != nil {
		k.payload.dump(w)
	}
}

func (k *Keyword) mismatch(want string) error {
	return fmt.Errorf("%w: %s payload requested from %s record", ErrTypeMismatch, want, k.typ)
}

// Dates returns the DATES payload.
func (k *Keyword) Dates() (*Dates, error) {
	if p, ok := k.payload.(*Dates); ok && k.typ == KwDates {
		return p, nil
	}
	return nil, k.mismatch("DATES")
}

// Tstep returns the TSTEP payload.
func (k *Keyword) Tstep() (*Tstep, error) {
	if p, ok := k.payload.(*Tstep); ok && k.typ == KwTstep {
		return p, nil
	}
	return nil, k.mismatch("TSTEP")
}

// Welspecs returns the WELSPECS payload.
func (k *Keyword) Welspecs() (*Welspecs, error) {
	if p, ok := k.payload.(*Welspecs); ok && k.typ == KwWelspecs {
		return p, nil
	}
	return nil, k.mismatch("WELSPECS")
}

// Compdat returns the COMPDAT payload.
func (k *Keyword) Compdat() (*Compdat, error) {
	if p, ok := k.payload.(*Compdat); ok && k.typ == KwCompdat {
		return p, nil
	}
	return nil, k.mismatch("COMPDAT")
}

// Wconhist returns the WCONHIST payload.
func (k *Keyword) Wconhist() (*Wconhist, error) {
	if p, ok := k.payload.(*Wconhist); ok && k.typ == KwWconhist {
		return p, nil
	}
	return nil, k.mismatch("WCONHIST")
}

// Wconinje returns the WCONINJE payload.
func (k *Keyword) Wconinje() (*Wconinje, error) {
	if p, ok := k.payload.(*Wconinje); ok && k.typ == KwWconinje {
		return p, nil
	}
	return nil, k.mismatch("WCONINJE")
}

// Wconinjh returns the WCONINJH payload.
func (k *Keyword) Wconinjh() (*Wconinjh, error) {
	if p, ok := k.payload.(*Wconinjh); ok && k.typ == KwWconinjh {
		return p, nil
	}
	return nil, k.mismatch("WCONINJH")
}

// Wconprod returns the WCONPROD payload.
func (k *Keyword) Wconprod() (*Wconprod, error) {
	if p, ok := k.payload.(*Wconprod); ok && k.typ == KwWconprod {
		return p, nil
	}
	return nil, k.mismatch("WCONPROD")
}

// Wconinj returns the WCONINJ payload.
func (k *Keyword) Wconinj() (*Wconinj, error) {
	if p, ok := k.payload.(*Wconinj); ok && k.typ == KwWconinj {
		return p, nil
	}
	return nil, k.mismatch("WCONINJ")
}

// Gruptree returns the GRUPTREE payload.
func (k *Keyword) Gruptree() (*Gruptree, error) {
	if p, ok := k.payload.(*Gruptree); ok && k.typ == KwGruptree {
		return p, nil
	}
	return nil, k.mismatch("GRUPTREE")
}

// Include returns the INCLUDE payload.
func (k *Keyword) Include() (*Include, error) {
	if p, ok := k.payload.(*Include); ok && k.typ == KwInclude {
		return p, nil
	}
	return nil, k.mismatch("INCLUDE")
}

// Raw returns the verbatim token payload of an UNTYPED or NONE record.
func (k *Keyword) Raw() (*Raw, error) {
	if p, ok := k.payload.(*Raw); ok && (k.typ == KwUntyped || k.typ == KwNone) {
		return p, nil
	}
	return nil, k.mismatch("UNTYPED")
}
