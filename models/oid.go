// Package models holds the small set of value types shared by every other
// package in this module: the OID representation and the segment index type.
// Like the teacher's own models package, it has no internal dependencies.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// OID is a parsed SNMP object identifier, one element per sub-identifier.
// It is the encoded form referred to throughout the spec as "encoded_oid,
// encoded_length" — here the slice length doubles as encoded_length.
type OID []uint32

// ParseOID parses a textual dotted OID such as "1.3.6.1.2.1.1.1" or
// ".1.3.6.1.2.1.1.1" into its numeric encoding. A leading dot is accepted
// and discarded; it fails fatally (as the bootstrap's catalog load must)
// on any non-numeric or empty component.
func ParseOID(text string) (OID, error) {
	text = strings.TrimPrefix(text, ".")
	if text == "" {
		return nil, fmt.Errorf("models: empty OID")
	}
	parts := strings.Split(text, ".")
	out := make(OID, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("models: unparseable OID %q: %w", text, err)
		}
		out[i] = uint32(n)
	}
	return out, nil
}

// String renders the OID in canonical numeric form with a leading dot,
// matching gosnmp's own PDU.Name convention and the report writer's
// output format.
func (o OID) String() string {
	var b strings.Builder
	for _, v := range o {
		b.WriteByte('.')
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	return b.String()
}

// Clone returns an independent copy, so callers may append to it without
// aliasing the catalog's immutable base OIDs.
func (o OID) Clone() OID {
	out := make(OID, len(o))
	copy(out, o)
	return out
}

// HasPrefix reports whether the first len(prefix) sub-identifiers of o
// equal prefix exactly. An OID shorter than prefix never has it.
func (o OID) HasPrefix(prefix OID) bool {
	if len(o) < len(prefix) {
		return false
	}
	for i, v := range prefix {
		if o[i] != v {
			return false
		}
	}
	return true
}

// CommonPrefixLen returns the number of leading sub-identifiers shared by
// a and b. This is the "common prefix" referenced by spec §4.4/§9: the
// tail past this length, taken from the last response varbinding, is what
// gets appended to each catalog OID of a segment to build its
// continuation request.
func CommonPrefixLen(a, b OID) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// Append returns a new OID equal to o with tail's sub-identifiers appended.
// o is never mutated.
func (o OID) Append(tail OID) OID {
	out := make(OID, 0, len(o)+len(tail))
	out = append(out, o...)
	out = append(out, tail...)
	return out
}
