package segment

import (
	"testing"

	"github.com/gosnmp/gosnmp"
	"github.com/stretchr/testify/require"

	"github.com/olebowle/modempoller/models"
	"github.com/olebowle/modempoller/pkg/modempoller/catalog"
)

func mustOID(t *testing.T, s string) models.OID {
	t.Helper()
	oid, err := models.ParseOID(s)
	require.NoError(t, err)
	return oid
}

func TestClassifyFindsMatchingSlot(t *testing.T) {
	cat, err := catalog.Load(catalog.VariantBulk)
	require.NoError(t, err)

	requestIDs := make([]uint32, cat.SegmentCount())
	requestIDs[1] = 42

	seg, lastEntry, ok := Classify(cat, 42, requestIDs)
	require.True(t, ok)
	require.Equal(t, models.SegmentID(1), seg)
	require.Equal(t, cat.EntryAt(cat.LastOf(models.SegmentID(1))), lastEntry)
}

func TestClassifyUnknownReqIDIsDiscarded(t *testing.T) {
	cat, err := catalog.Load(catalog.VariantBulk)
	require.NoError(t, err)
	requestIDs := make([]uint32, cat.SegmentCount())
	requestIDs[0] = 1

	_, _, ok := Classify(cat, 999, requestIDs)
	require.False(t, ok)
}

// TestClassifyIdempotent covers testable property 7: classify_response is
// a pure function of (reqid, request_ids) — delivering the same reqid
// twice yields the same segment.
func TestClassifyIdempotent(t *testing.T) {
	cat, err := catalog.Load(catalog.VariantBulk)
	require.NoError(t, err)
	requestIDs := make([]uint32, cat.SegmentCount())
	requestIDs[2] = 7

	seg1, _, ok1 := Classify(cat, 7, requestIDs)
	seg2, _, ok2 := Classify(cat, 7, requestIDs)
	require.True(t, ok1)
	require.True(t, ok2)
	require.Equal(t, seg1, seg2)
}

func TestLastVarbindSinglePass(t *testing.T) {
	vars := []gosnmp.SnmpPDU{
		{Name: ".1.3.6.1.2.1.1.1.1"},
		{Name: ".1.3.6.1.2.1.1.1.2"},
		{Name: ".1.3.6.1.2.1.1.1.3"},
	}
	last, ok := LastVarbind(vars)
	require.True(t, ok)
	require.Equal(t, ".1.3.6.1.2.1.1.1.3", last.Name)
}

func TestLastVarbindEmpty(t *testing.T) {
	_, ok := LastVarbind(nil)
	require.False(t, ok)
}

func TestWalkCompleteStillInTable(t *testing.T) {
	base := mustOID(t, "1.3.6.1.2.1.10.127.1.1.1.1.2")
	row := mustOID(t, "1.3.6.1.2.1.10.127.1.1.1.1.2.5")
	require.False(t, WalkComplete(base, row))
}

func TestWalkCompleteLeftTable(t *testing.T) {
	base := mustOID(t, "1.3.6.1.2.1.10.127.1.1.1.1.2")
	other := mustOID(t, "1.3.6.1.2.1.10.127.1.1.1.1.3.5")
	require.True(t, WalkComplete(base, other))
}

func TestWalkCompleteShorterResponse(t *testing.T) {
	base := mustOID(t, "1.3.6.1.2.1.10.127.1.1.1.1.2")
	short := mustOID(t, "1.3.6.1.2.1.10.127.1.1.1.1")
	require.True(t, WalkComplete(base, short))
}

// TestBuildContinuationMultiLevelIndex covers testable property 4 and
// scenario S5: the OFDM sub-carrier table (DOWNSUB31) has a two-level
// (channelId, subcarrierId) index. The continuation must carry the full
// ".3.42" tail on every OID of the segment, not merely ".42".
func TestBuildContinuationMultiLevelIndex(t *testing.T) {
	cat, err := catalog.Load(catalog.VariantAnalysis)
	require.NoError(t, err)

	var downsub models.SegmentID
	for s := 0; s < cat.SegmentCount(); s++ {
		if cat.SegmentName(models.SegmentID(s)) == "DOWNSUB31" {
			downsub = models.SegmentID(s)
		}
	}

	lastEntry := cat.EntryAt(cat.LastOf(downsub))
	lastVarbindName := lastEntry.OID.Append(mustOID(t, "3.42"))

	next := BuildContinuation(cat, downsub, lastEntry.OID, lastVarbindName)
	require.Len(t, next, cat.Count(downsub))
	for i, entry := range cat.Entries(downsub) {
		require.Equal(t, entry.OID.String()+".3.42", next[i])
	}
}

func TestBuildContinuationSingleLevelIndex(t *testing.T) {
	cat, err := catalog.Load(catalog.VariantBulk)
	require.NoError(t, err)
	seg := models.SegmentID(1) // DOWNSTREAM30

	lastEntry := cat.EntryAt(cat.LastOf(seg))
	lastVarbindName := lastEntry.OID.Append(mustOID(t, "7"))

	next := BuildContinuation(cat, seg, lastEntry.OID, lastVarbindName)
	for i, entry := range cat.Entries(seg) {
		require.Equal(t, entry.OID.String()+".7", next[i])
	}
}
