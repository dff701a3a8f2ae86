package models

// SegmentID indexes a catalog's ordered segment list. Segment 0 is always
// the distinguished NON_REP segment carrying scalar (non-repeating)
// variables; every other segment is tabular and walked via GETBULK.
type SegmentID int

// SegmentState is the per-(host, segment) lifecycle named in spec §4.4:
// IDLE -> OUTSTANDING -> (OUTSTANDING | DONE). It is not stored explicitly
// anywhere — a segment is OUTSTANDING iff its request-id slot is nonzero,
// and DONE iff it is zero after having been sent at least once — but the
// name is useful in comments and tests, so it lives here.
type SegmentState int

const (
	SegmentIdle SegmentState = iota
	SegmentOutstanding
	SegmentDone
)

func (s SegmentState) String() string {
	switch s {
	case SegmentIdle:
		return "idle"
	case SegmentOutstanding:
		return "outstanding"
	case SegmentDone:
		return "done"
	default:
		return "unknown"
	}
}
