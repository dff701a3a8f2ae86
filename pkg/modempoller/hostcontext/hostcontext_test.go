package hostcontext

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/olebowle/modempoller/pkg/modempoller/inventory"
)

func TestActiveReflectsRequestIDs(t *testing.T) {
	c := &Context{RequestIDs: make([]uint32, 3)}
	require.False(t, c.Active())

	c.RequestIDs[1] = 42
	require.True(t, c.Active())

	c.RequestIDs[1] = 0
	require.False(t, c.Active())
}

func TestOpenFailsOnUnresolvableTarget(t *testing.T) {
	// An empty transport address cannot be resolved into a UDP endpoint;
	// Open must surface that as an error rather than panic, so the
	// caller can skip this host for the cycle per spec.md §4.3/§7.
	_, err := Open(inventory.HostRecord{}, 0, 0, 3, nil)
	require.Error(t, err)
}
