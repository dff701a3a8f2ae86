// Package segment implements the Segment State Machine's pure helpers:
// classify_response and walk_complete, plus the continuation-OID builder
// used by on_response. These are kept free of any I/O or channel
// interaction so they can be tested as ordinary functions; the effectful
// on_response glue lives in package dispatcher, which calls these.
package segment

import (
	"github.com/gosnmp/gosnmp"

	"github.com/olebowle/modempoller/models"
	"github.com/olebowle/modempoller/pkg/modempoller/catalog"
)

// Classify scans a host's request-id slots in segment order and returns
// the first segment whose slot equals reqid, together with the catalog's
// last OID entry of that segment — exactly getSegmentLastOid's contract.
// Returns ok=false if no slot matches (a delayed duplicate; the caller
// must discard it).
func Classify(cat *catalog.Catalog, reqID uint32, requestIDs []uint32) (seg models.SegmentID, lastEntry catalog.Entry, ok bool) {
	for s := 0; s < len(requestIDs); s++ {
		if requestIDs[s] != 0 && requestIDs[s] == reqID {
			sid := models.SegmentID(s)
			return sid, cat.EntryAt(cat.LastOf(sid)), true
		}
	}
	return 0, catalog.Entry{}, false
}

// LastVarbind returns the last element of a varbinding sequence by a
// single forward pass, never by indexing — the wire library's own
// varbinding list is a forward-only sequence, and tests must not assume
// random access (spec design note "Linked varbinding list -> forward
// iterator").
func LastVarbind(variables []gosnmp.SnmpPDU) (gosnmp.SnmpPDU, bool) {
	var last gosnmp.SnmpPDU
	found := false
	for _, v := range variables {
		last = v
		found = true
	}
	return last, found
}

// WalkComplete compares the prefix of the last response varbinding's name
// to the first len(lastRequestOID) sub-identifiers of the last OID asked
// about. If the prefix still matches, the modem returned a row still
// inside the requested table column and more rows may follow (not
// complete). If the prefix differs, the walk has left the table and the
// segment is complete. lastRequestOID must be the catalog's original
// encoded OID, never an extended continuation suffix.
func WalkComplete(lastRequestOID, lastResponseVarbindName models.OID) bool {
	return !lastResponseVarbindName.HasPrefix(lastRequestOID)
}

// BuildContinuation constructs the next GETBULK's OID list for seg: for
// each catalog entry of the segment, the catalog base OID followed by the
// tail of lastResponseVarbindName past its common prefix with
// lastEntryOID. The tail, not merely the final sub-identifier, is what
// makes this correct for multi-level indices such as the OFDM sub-carrier
// table's (channelId, subcarrierId) pair — see spec.md §9's ruling against
// the single-sub-identifier variant.
func BuildContinuation(cat *catalog.Catalog, seg models.SegmentID, lastEntryOID, lastResponseVarbindName models.OID) []string {
	prefixLen := models.CommonPrefixLen(lastResponseVarbindName, lastEntryOID)
	tail := lastResponseVarbindName[prefixLen:]

	first, last := cat.FirstOf(seg), cat.LastOf(seg)
	out := make([]string, 0, last-first+1)
	for i := first; i <= last; i++ {
		full := cat.EntryAt(i).OID.Append(tail)
		out = append(out, full.String())
	}
	return out
}
