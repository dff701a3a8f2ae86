// Package report implements the Report Writer: per-host output sink plus
// canonical-numeric-form formatting of varbindings, errors and timeouts.
// Sink is a re-specified descendant of the teacher's transport/file
// Transport interface: one sink per host rather than one shared transport
// for the whole process, and WriteLine appends a text line rather than a
// length-prefixed record.
package report

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gosnmp/gosnmp"
)

// Sink is the per-host output stream: either a shared stdout (analysis
// mode) or an exclusive file named after the host (bulk mode).
type Sink interface {
	WriteLine(line string) error
	Close() error
}

// fileSink wraps a single os.File (or any io.WriteCloser) exclusive to one
// host; no locking is needed since exactly one goroutine ever owns a
// host's mutable state at a time (see dispatcher).
type fileSink struct {
	w io.WriteCloser
}

// NewFileSink wraps w as a bulk-mode, per-host sink.
func NewFileSink(w io.WriteCloser) Sink { return &fileSink{w: w} }

func (s *fileSink) WriteLine(line string) error {
	_, err := io.WriteString(s.w, line+"\n")
	return err
}

func (s *fileSink) Close() error { return s.w.Close() }

// sharedSink wraps one io.Writer (stdout in analysis mode) shared by every
// host context; writes are serialized with a mutex, important when w is
// os.Stdout and many hosts interleave lines.
type sharedSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSharedSink builds a sink suitable for sharing across every host
// context in analysis mode.
func NewSharedSink(w io.Writer) Sink { return &sharedSink{w: w} }

func (s *sharedSink) WriteLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, line+"\n")
	return err
}

// Close is a no-op: the shared writer outlives any one host context, and
// this sink never closes it.
func (s *sharedSink) Close() error { return nil }

// IPv4Header is the sentinel first line written to a per-host file in
// bulk mode, used by the downstream collector to identify the source.
func IPv4Header(transportAddress string) string {
	return fmt.Sprintf("ipv4:%s", transportAddress)
}

// FormatVarbind renders one varbinding in canonical numeric form:
// ".<oid> = <type>: <value>".
func FormatVarbind(pdu gosnmp.SnmpPDU) string {
	return fmt.Sprintf("%s = %s: %s", pdu.Name, typeString(pdu.Type), valueString(pdu))
}

// FormatError renders a protocol-error line: "ERROR: <peer>: <oid>: <message>".
func FormatError(peer, oid, message string) string {
	return fmt.Sprintf("ERROR: %s: %s: %s", peer, oid, message)
}

// FormatTimeout renders the operator-facing timeout marker: "<peer>: Timeout".
func FormatTimeout(peer string) string {
	return fmt.Sprintf("%s: Timeout", peer)
}

// typeString names a gosnmp.Asn1BER the way net-snmp's brief output does:
// a short type tag, never the Go type's package-qualified name.
func typeString(t gosnmp.Asn1BER) string {
	switch t {
	case gosnmp.Integer:
		return "INTEGER"
	case gosnmp.OctetString:
		return "STRING"
	case gosnmp.ObjectIdentifier:
		return "OID"
	case gosnmp.IPAddress:
		return "IpAddress"
	case gosnmp.Counter32:
		return "Counter32"
	case gosnmp.Gauge32:
		return "Gauge32"
	case gosnmp.TimeTicks:
		return "Timeticks"
	case gosnmp.Counter64:
		return "Counter64"
	case gosnmp.Uinteger32:
		return "UInteger32"
	case gosnmp.OpaqueFloat:
		return "Opaque: Float"
	case gosnmp.OpaqueDouble:
		return "Opaque: Double"
	case gosnmp.NoSuchObject:
		return "NoSuchObject"
	case gosnmp.NoSuchInstance:
		return "NoSuchInstance"
	case gosnmp.EndOfMibView:
		return "EndOfMibView"
	default:
		return "UNKNOWN"
	}
}

// valueString renders the PDU's value numerically, never pretty-printed
// (no symbolic timeticks, no hex truncation), matching the bootstrap's
// NUMERIC_TIMETICKS / unbounded HEX_OUTPUT_LENGTH configuration: an OCTET
// STRING that isn't cleanly printable is rendered as space-separated hex
// pairs, in full, rather than emitted raw (which could inject an embedded
// newline and split a report line in two).
func valueString(pdu gosnmp.SnmpPDU) string {
	switch v := pdu.Value.(type) {
	case []byte:
		if printable(v) {
			return string(v)
		}
		return hexString(v)
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// printable reports whether every byte is plain printable ASCII; control
// and high-bit bytes (as seen in DOCSIS binary OCTET STRINGs, e.g. MAC
// addresses and certificate blobs) are not.
func printable(v []byte) bool {
	for _, b := range v {
		if b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}

func hexString(v []byte) string {
	var b strings.Builder
	for i, c := range v {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02X", c)
	}
	return b.String()
}
