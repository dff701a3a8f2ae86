package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/olebowle/modempoller/models"
)

func TestLoadUnknownVariant(t *testing.T) {
	_, err := Load("vendor-secret")
	require.Error(t, err)
}

func TestLoadAnalysisSegmentContiguity(t *testing.T) {
	cat, err := Load(VariantAnalysis)
	require.NoError(t, err)
	require.Equal(t, 9, cat.SegmentCount())

	for seg := 0; seg < cat.SegmentCount(); seg++ {
		sid := models.SegmentID(seg)
		first := cat.FirstOf(sid)
		last := cat.LastOf(sid)
		require.Equal(t, first+cat.Count(sid)-1, last)
		for i := first; i <= last; i++ {
			require.Equal(t, sid, cat.SegmentOf(i))
		}
	}
}

func TestLoadBulkVariant(t *testing.T) {
	cat, err := Load(VariantBulk)
	require.NoError(t, err)
	require.Equal(t, 3, cat.SegmentCount())
	require.Equal(t, 7, cat.Count(models.SegmentID(0)))
	require.Equal(t, 6, cat.Count(models.SegmentID(1)))
	require.Equal(t, 4, cat.Count(models.SegmentID(2)))
}

func TestCatalogsDifferInSegmentCounts(t *testing.T) {
	analysis, err := Load(VariantAnalysis)
	require.NoError(t, err)
	bulk, err := Load(VariantBulk)
	require.NoError(t, err)
	require.NotEqual(t, analysis.SegmentCount(), bulk.SegmentCount())
}

func TestEntryOIDsParsed(t *testing.T) {
	cat, err := Load(VariantAnalysis)
	require.NoError(t, err)
	e := cat.EntryAt(0)
	require.Equal(t, ".1.3.6.1.2.1.1.1", e.OID.String())
}

func TestMaxRepetitionsNonRepIsZero(t *testing.T) {
	cat, err := Load(VariantAnalysis)
	require.NoError(t, err)
	require.Zero(t, cat.MaxRepetitions(models.SegmentID(0)))
}
