// Package hostcontext implements the Host Context: per-modem mutable
// state (the SNMP session handle, the array of outstanding request ids
// indexed by segment, the output sink). Session construction is grounded
// on the teacher's poller/session.go NewSession: Target/Port/Timeout/
// Retries set at open time, then Connect().
package hostcontext

import (
	"fmt"
	"io"
	"time"

	"github.com/gosnmp/gosnmp"

	"github.com/olebowle/modempoller/pkg/modempoller/inventory"
	"github.com/olebowle/modempoller/pkg/modempoller/report"
	"github.com/olebowle/modempoller/pkg/modempoller/wire"
)

const snmpPort = uint16(161)

// Context is per-modem mutable state. A zero value for RequestIDs[seg]
// means that segment is idle or complete; the host is active iff at
// least one entry is nonzero, per spec.md §3's invariant.
type Context struct {
	TransportAddress string
	ReportName       string
	Session          wire.Session
	RequestIDs       []uint32
	Sink             report.Sink

	conn io.Closer
}

// Open constructs an SNMPv2c session bound to rec's transport address and
// community string, with retries and timeout fixed at open time, and
// connects it. segmentCount sizes RequestIDs. On session-open failure the
// caller must skip this host for the cycle — it is not fatal for the
// whole poll run (spec.md §4.3/§7).
func Open(rec inventory.HostRecord, timeout time.Duration, retries int, segmentCount int, sink report.Sink) (*Context, error) {
	session := &gosnmp.GoSNMP{
		Target:    rec.TransportAddress,
		Port:      snmpPort,
		Community: rec.Community,
		Version:   gosnmp.Version2c,
		Timeout:   timeout,
		Retries:   retries,
		MaxOids:   gosnmp.MaxOids,
	}

	if err := session.Connect(); err != nil {
		return nil, fmt.Errorf("hostcontext: %s: connect: %w", rec.TransportAddress, err)
	}

	return &Context{
		TransportAddress: rec.TransportAddress,
		ReportName:       rec.ReportName,
		Session:          session,
		RequestIDs:       make([]uint32, segmentCount),
		Sink:             sink,
		conn:             session.Conn,
	}, nil
}

// Active reports whether any segment of this host still has an
// outstanding request, i.e. whether the host is counted in active_hosts.
func (c *Context) Active() bool {
	for _, id := range c.RequestIDs {
		if id != 0 {
			return true
		}
	}
	return false
}

// Close tears down the session and the sink, ignoring errors from either
// (both are best-effort at shutdown).
func (c *Context) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
	if c.Sink != nil {
		c.Sink.Close()
	}
}
