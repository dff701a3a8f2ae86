package wire

import (
	"errors"
	"testing"
	"time"

	"github.com/gosnmp/gosnmp"
	"github.com/stretchr/testify/require"

	"github.com/olebowle/modempoller/models"
)

type fakeSession struct {
	getNext func([]string) (*gosnmp.SnmpPacket, error)
	getBulk func([]string, uint8, uint8) (*gosnmp.SnmpPacket, error)
}

func (f *fakeSession) GetNext(oids []string) (*gosnmp.SnmpPacket, error) { return f.getNext(oids) }
func (f *fakeSession) GetBulk(oids []string, nonRep, maxRep uint8) (*gosnmp.SnmpPacket, error) {
	return f.getBulk(oids, nonRep, maxRep)
}

func TestSendGetNextPostsReceivedEvent(t *testing.T) {
	pkt := &gosnmp.SnmpPacket{Variables: []gosnmp.SnmpPDU{{Name: ".1.3.6.1.2.1.1.1.0"}}}
	session := &fakeSession{getNext: func(oids []string) (*gosnmp.SnmpPacket, error) { return pkt, nil }}

	events := make(chan Event, 1)
	Send(session, 0, models.SegmentID(0), 1, OpGetNext, 0, []string{".1.3.6.1.2.1.1.1"}, false, events)

	select {
	case ev := <-events:
		require.True(t, ev.Received)
		require.Equal(t, pkt, ev.Packet)
		require.Equal(t, uint32(1), ev.ReqID)
	case <-time.After(time.Second):
		t.Fatal("event never posted")
	}
}

func TestSendGetBulkPostsFailureEvent(t *testing.T) {
	session := &fakeSession{getBulk: func(oids []string, nonRep, maxRep uint8) (*gosnmp.SnmpPacket, error) {
		return nil, errors.New("timeout")
	}}

	events := make(chan Event, 1)
	Send(session, 3, models.SegmentID(1), 5, OpGetBulk, 9, []string{".1.3.6.1.2.1.2.2.1.2"}, true, events)

	select {
	case ev := <-events:
		require.False(t, ev.Received)
		require.Equal(t, 3, ev.HostIndex)
		require.Equal(t, models.SegmentID(1), ev.Segment)
		require.Error(t, ev.Err)
		require.True(t, ev.Continuation)
	case <-time.After(time.Second):
		t.Fatal("event never posted")
	}
}
