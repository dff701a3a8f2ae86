package report

import (
	"bytes"
	"testing"

	"github.com/gosnmp/gosnmp"
	"github.com/stretchr/testify/require"
)

func TestFileSinkWritesLines(t *testing.T) {
	var buf closableBuffer
	sink := NewFileSink(&buf)

	require.NoError(t, sink.WriteLine(IPv4Header("10.0.0.1")))
	require.NoError(t, sink.WriteLine(FormatVarbind(gosnmp.SnmpPDU{
		Name:  ".1.3.6.1.2.1.1.1.0",
		Type:  gosnmp.OctetString,
		Value: []byte("modem-1"),
	})))
	require.NoError(t, sink.Close())

	require.Equal(t, "ipv4:10.0.0.1\n.1.3.6.1.2.1.1.1.0 = STRING: modem-1\n", buf.String())
	require.True(t, buf.closed)
}

func TestSharedSinkSerializesWrites(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSharedSink(&buf)

	require.NoError(t, sink.WriteLine("a"))
	require.NoError(t, sink.WriteLine("b"))
	require.NoError(t, sink.Close())

	require.Equal(t, "a\nb\n", buf.String())
}

func TestFormatError(t *testing.T) {
	require.Equal(t, "ERROR: 10.0.0.1: .1.3.6.1.2.1.2.2.1.2: noSuchName",
		FormatError("10.0.0.1", ".1.3.6.1.2.1.2.2.1.2", "noSuchName"))
}

func TestFormatTimeout(t *testing.T) {
	require.Equal(t, "10.0.0.1: Timeout", FormatTimeout("10.0.0.1"))
}

func TestFormatVarbindHexEncodesUnprintableOctetString(t *testing.T) {
	line := FormatVarbind(gosnmp.SnmpPDU{
		Name:  ".1.3.6.1.2.1.2.2.1.6.2",
		Type:  gosnmp.OctetString,
		Value: []byte{0x00, 0x1A, 0x0A, 0xFF},
	})
	require.Equal(t, ".1.3.6.1.2.1.2.2.1.6.2 = STRING: 00 1A 0A FF", line)
	require.NotContains(t, line[len(".1.3.6.1.2.1.2.2.1.6.2 = STRING: "):], "\n")
}

func TestFormatVarbindKeepsPrintableOctetStringAsText(t *testing.T) {
	line := FormatVarbind(gosnmp.SnmpPDU{
		Name:  ".1.3.6.1.2.1.1.1.0",
		Type:  gosnmp.OctetString,
		Value: []byte("modem-1"),
	})
	require.Equal(t, ".1.3.6.1.2.1.1.1.0 = STRING: modem-1", line)
}

type closableBuffer struct {
	bytes.Buffer
	closed bool
}

func (c *closableBuffer) Close() error {
	c.closed = true
	return nil
}
