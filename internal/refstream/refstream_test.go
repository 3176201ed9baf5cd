package refstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReadNoTag(t *testing.T) {
	addr, isWrite, err := Parse("256")
	require.NoError(t, err)
	assert.Equal(t, uint16(256), addr)
	assert.False(t, isWrite)
}

func TestParseReadTagTreatedAsRead(t *testing.T) {
	addr, isWrite, err := Parse("256 R")
	require.NoError(t, err)
	assert.Equal(t, uint16(256), addr)
	assert.False(t, isWrite)
}

func TestParseWriteTag(t *testing.T) {
	addr, isWrite, err := Parse("256 W")
	require.NoError(t, err)
	assert.Equal(t, uint16(256), addr)
	assert.True(t, isWrite)
}

func TestParseTolerantOfTrailingWhitespaceAndCRLF(t *testing.T) {
	addr, isWrite, err := Parse("42 W \r\n")
	require.NoError(t, err)
	assert.Equal(t, uint16(42), addr)
	assert.True(t, isWrite)
}

func TestParseRejectsNonDigits(t *testing.T) {
	_, _, err := Parse("0x100 W")
	assert.ErrorIs(t, err, ErrBadInputLine)
}

func TestParseRejectsEmptyLine(t *testing.T) {
	_, _, err := Parse("")
	assert.ErrorIs(t, err, ErrBadInputLine)
}

func TestParseRejectsOutOfRangeAddress(t *testing.T) {
	_, _, err := Parse("99999999")
	assert.ErrorIs(t, err, ErrBadInputLine)
}
