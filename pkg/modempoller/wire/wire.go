// Package wire is the thin asynchronous shim over gosnmp. gosnmp's public
// calls (GetNext, GetBulk) already perform a full blocking request and
// wait for a response, retrying internally up to Retries times before
// giving up with an error — this is the concrete "wire library's own
// retransmissions" spec.md's non-goals refer to. Send runs one such call
// on its own goroutine and posts exactly one Event to a shared channel
// when it resolves, which is how the single-threaded dispatcher loop of
// spec.md §5 is realised without a literal select()-over-fds primitive:
// the dispatcher goroutine is the only reader of the channel and so is
// the only goroutine that ever touches shared state.
package wire

import (
	"github.com/gosnmp/gosnmp"

	"github.com/olebowle/modempoller/models"
)

// Op selects which PDU type a Send issues.
type Op int

const (
	// OpGetNext is used once per host for the NON_REP segment.
	OpGetNext Op = iota
	// OpGetBulk is used for every tabular segment, initial send and
	// every continuation alike.
	OpGetBulk
)

// Session is the subset of *gosnmp.GoSNMP that Send needs. Satisfied by
// *gosnmp.GoSNMP itself; tests substitute a fake, the same shape as the
// teacher's own small-interface-per-dependency style (Poller, Transport).
type Session interface {
	GetNext(oids []string) (*gosnmp.SnmpPacket, error)
	GetBulk(oids []string, nonRepeaters, maxRepetitions uint8) (*gosnmp.SnmpPacket, error)
}

// Event is what a Send goroutine posts back to the dispatcher. Received
// false means the gosnmp call returned an error. gosnmp's GetNext/GetBulk
// fold the wire library's own retransmissions and a local send failure
// into the same blocking call and the same untyped error return, so this
// shim cannot tell "exhausted retries waiting for a reply" (a per-request
// transport timeout) apart from "could not even transmit the PDU" (a
// send failure) by inspecting err. Continuation records which of those a
// failure is more likely to be, approximated by call site: a priming
// send (the host's first request for a segment) failing almost always
// means the host is unreachable — a timeout in spec terms — while a
// continuation send (following an already-answered request) failing
// mid-walk is the "snmp_send refuses a continuation" case. See
// dispatcher.onResponse and DESIGN.md for how the two are routed.
type Event struct {
	HostIndex    int
	Segment      models.SegmentID
	ReqID        uint32
	Received     bool
	Packet       *gosnmp.SnmpPacket
	Err          error
	Continuation bool
}

// Send issues one PDU asynchronously against session and posts its
// outcome to events. reqID is a dispatcher-assigned logical correlation
// id (see classify_response in package segment) — it is not passed to
// gosnmp, which allocates its own wire-level request id internally; it
// exists purely so a stale or duplicate Event can be recognised as not
// belonging to the segment's current outstanding request. continuation
// must be true iff this Send follows a prior response on the same
// segment (a BuildContinuation PDU), false for a Prime-time initial send.
func Send(session Session, hostIndex int, seg models.SegmentID, reqID uint32, op Op, maxReps uint8, oids []string, continuation bool, events chan<- Event) {
	go func() {
		var pkt *gosnmp.SnmpPacket
		var err error
		switch op {
		case OpGetNext:
			pkt, err = session.GetNext(oids)
		case OpGetBulk:
			pkt, err = session.GetBulk(oids, 0, maxReps)
		}
		events <- Event{
			HostIndex:    hostIndex,
			Segment:      seg,
			ReqID:        reqID,
			Received:     err == nil,
			Packet:       pkt,
			Err:          err,
			Continuation: continuation,
		}
	}()
}
