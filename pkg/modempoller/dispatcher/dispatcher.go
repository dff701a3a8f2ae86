// Package dispatcher implements the Async Dispatcher: the event loop that
// owns every host context, primes the initial per-segment requests, fans
// responses into the segment state machine, enforces the wall-clock
// deadline, and tracks the count of hosts still active.
//
// Go has no direct equivalent of net-snmp's select()-over-an-fd_set, and
// gosnmp exposes no raw readiness primitive: GetNext/GetBulk are each a
// full blocking request-response round trip with retries baked in. The
// translation keeps the spec's single-suspension-point, single-owner
// design (spec.md §5) by running each outstanding request on its own
// goroutine (package wire) that posts one Event to a shared channel; this
// dispatcher is the only goroutine that ever reads that channel or
// touches a HostContext, so no locking is needed anywhere in this package.
package dispatcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gosnmp/gosnmp"

	"github.com/olebowle/modempoller/models"
	"github.com/olebowle/modempoller/pkg/modempoller/catalog"
	"github.com/olebowle/modempoller/pkg/modempoller/hostcontext"
	"github.com/olebowle/modempoller/pkg/modempoller/report"
	"github.com/olebowle/modempoller/pkg/modempoller/segment"
	"github.com/olebowle/modempoller/pkg/modempoller/wire"
)

// Config carries the dispatcher's tunables. Retries and Timeout are also
// the numbers baked into every session's gosnmp.GoSNMP (Retries/Timeout),
// so the global deadline formula start+(Retries+2)*Timeout matches the
// per-request retry budget exactly, as spec.md §4.5/§5 requires.
type Config struct {
	Retries     int
	Timeout     time.Duration
	Logger      *slog.Logger
	OperatorOut io.Writer // where Timeout markers are written; defaults to os.Stdout equivalent supplied by caller
}

// Dispatcher is the single owner of every HostContext's mutable state for
// one poll cycle.
type Dispatcher struct {
	cat      *catalog.Catalog
	hosts    []*hostcontext.Context
	active   int
	deadline time.Time
	events   chan wire.Event
	cfg      Config

	nextReqID uint32
}

// New builds a dispatcher over hosts, all polled against cat.
func New(cat *catalog.Catalog, hosts []*hostcontext.Context, cfg Config) *Dispatcher {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Dispatcher{
		cat:    cat,
		hosts:  hosts,
		events: make(chan wire.Event, len(hosts)*cat.SegmentCount()),
		cfg:    cfg,
	}
}

// ActiveHosts returns the current active-host count, satisfying testable
// property 2 (active-host accounting) as an observable at any callback
// boundary between Prime/Run steps.
func (d *Dispatcher) ActiveHosts() int { return d.active }

func (d *Dispatcher) allocReqID() uint32 {
	d.nextReqID++
	return d.nextReqID
}

func initialOIDs(cat *catalog.Catalog, seg models.SegmentID) []string {
	entries := cat.Entries(seg)
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.OID.String()
	}
	return out
}

// Prime issues the initial per-segment PDU for every host: GETNEXT for
// NON_REP, GETBULK with the catalog's repetition schedule for every
// tabular segment. A host is counted active iff its NON_REP send was
// issued — gosnmp's synchronous call shape means there is no separate
// enqueue-failure signal available before the round trip resolves, so
// every primed host starts active and a NON_REP failure surfaces (and
// decrements active_hosts) through the same Event path as any other
// timeout, the moment its goroutine resolves.
func (d *Dispatcher) Prime(start time.Time) {
	d.deadline = start.Add(time.Duration(d.cfg.Retries+2) * d.cfg.Timeout)

	for hi, h := range d.hosts {
		for s := 0; s < d.cat.SegmentCount(); s++ {
			seg := models.SegmentID(s)
			op := wire.OpGetBulk
			if seg == 0 {
				op = wire.OpGetNext
			}
			reqID := d.allocReqID()
			h.RequestIDs[s] = reqID
			wire.Send(h.Session, hi, seg, reqID, op, d.cat.MaxRepetitions(seg), initialOIDs(d.cat, seg), false, d.events)
		}
		if h.RequestIDs[0] != 0 {
			d.active++
		}
	}
}

// Run drains Events until every host is finished or the global deadline
// elapses, whichever comes first. It is the dispatcher's sole suspension
// point: net-snmp's 1-second-polled select() loop collapses into one
// channel receive per iteration because each per-request timeout/retry
// cycle already ran to completion inside the gosnmp call that produced
// the Event.
func (d *Dispatcher) Run(ctx context.Context) error {
	for d.active > 0 {
		remaining := time.Until(d.deadline)
		if remaining <= 0 {
			d.cfg.Logger.Warn("deadline reached with hosts still active", "active", d.active)
			return nil
		}

		select {
		case ev := <-d.events:
			d.onResponse(ev)
		case <-time.After(remaining):
			d.cfg.Logger.Warn("deadline reached with hosts still active", "active", d.active)
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// onResponse is on_response: the callback body of spec.md §4.4.
func (d *Dispatcher) onResponse(ev wire.Event) {
	h := d.hosts[ev.HostIndex]

	if int(ev.Segment) >= len(h.RequestIDs) || h.RequestIDs[ev.Segment] != ev.ReqID {
		return // stale or duplicate event; the slot has since moved on
	}

	if !ev.Received {
		if ev.Continuation {
			// Send failure mid-cycle (spec.md §7): a continuation PDU
			// failed to go out or come back; this segment is treated as
			// complete, the rest of the host is untouched.
			d.cfg.Logger.Warn("continuation send failed; closing segment", "host", h.TransportAddress, "segment", ev.Segment, "err", ev.Err)
			d.markSegmentDone(h, ev.Segment)
			return
		}
		d.closeHost(h, ev.Err)
		return
	}

	pkt := ev.Packet
	seg, lastEntry, ok := segment.Classify(d.cat, ev.ReqID, h.RequestIDs)
	if !ok {
		return
	}

	if pkt.Error != gosnmp.NoError {
		d.emitProtocolError(h, pkt)
		d.markSegmentDone(h, seg)
		return
	}

	for _, v := range pkt.Variables {
		h.Sink.WriteLine(report.FormatVarbind(v))
	}

	if seg == 0 {
		d.markSegmentDone(h, seg)
		return
	}

	last, ok := segment.LastVarbind(pkt.Variables)
	if !ok {
		d.markSegmentDone(h, seg)
		return
	}

	lastName, err := models.ParseOID(last.Name)
	if err != nil {
		d.cfg.Logger.Warn("unparseable varbinding name", "name", last.Name, "err", err)
		d.markSegmentDone(h, seg)
		return
	}

	if segment.WalkComplete(lastEntry.OID, lastName) {
		d.markSegmentDone(h, seg)
		return
	}

	nextOIDs := segment.BuildContinuation(d.cat, seg, lastEntry.OID, lastName)
	reqID := d.allocReqID()
	h.RequestIDs[seg] = reqID
	wire.Send(h.Session, ev.HostIndex, seg, reqID, wire.OpGetBulk, d.cat.MaxRepetitions(seg), nextOIDs, true, d.events)
}

// closeHost implements the per-request transport timeout error: failure
// of a priming send (never a continuation — see onResponse) closes the
// host globally, not just the one segment that last fired, per spec.md
// §4.4's failure policy and §7.
func (d *Dispatcher) closeHost(h *hostcontext.Context, cause error) {
	wasActive := h.Active()
	fmt.Fprintln(d.cfg.OperatorOut, report.FormatTimeout(h.TransportAddress))
	for i := range h.RequestIDs {
		h.RequestIDs[i] = 0
	}
	if wasActive {
		d.active--
	}
	d.cfg.Logger.Warn("host timed out", "host", h.TransportAddress, "err", cause)
}

// markSegmentDone zeroes one segment's slot and decrements active_hosts
// exactly once, the moment every slot of the host reaches zero —
// updateActiveHosts's contract verbatim.
func (d *Dispatcher) markSegmentDone(h *hostcontext.Context, seg models.SegmentID) {
	h.RequestIDs[seg] = 0
	if !h.Active() {
		d.active--
	}
}

// emitProtocolError writes one ERROR line naming the OID at the PDU's
// 1-based error index, matching net-snmp's errindex convention. A
// protocol error closes only the segment it occurred on; the caller is
// responsible for calling markSegmentDone.
func (d *Dispatcher) emitProtocolError(h *hostcontext.Context, pkt *gosnmp.SnmpPacket) {
	oid := ""
	if idx := int(pkt.ErrorIndex); idx >= 1 && idx <= len(pkt.Variables) {
		oid = pkt.Variables[idx-1].Name
	}
	h.Sink.WriteLine(report.FormatError(h.TransportAddress, oid, fmt.Sprintf("%v", pkt.Error)))
}
