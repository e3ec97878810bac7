package pgtext_test

import (
	"testing"

	"github.com/AndrewDonelson/pgtext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type colour int16

const (
	red colour = iota
	green
	blue
)

// moodLevel checks that a second, unrelated enumeration derives the same
// behavior with no per-type code.
type moodLevel uint8

const (
	calm moodLevel = iota
	tense
	panicked
)

func TestEnumCodec_FormatsUnderlyingInteger(t *testing.T) {
	c := pgtext.EnumCodecOf[colour]()

	s, err := c.Format(blue)
	require.NoError(t, err)
	assert.Equal(t, "2", s)

	s, err = c.Format(red)
	require.NoError(t, err)
	assert.Equal(t, "0", s)
}

func TestEnumCodec_ParsesBack(t *testing.T) {
	c := pgtext.EnumCodecOf[colour]()

	var v colour
	require.NoError(t, c.Parse(pgtext.NewText("2"), &v))
	assert.Equal(t, blue, v)

	require.NoError(t, c.Parse(pgtext.NewText("1"), &v))
	assert.Equal(t, green, v)
}

func TestEnumCodec_SecondEnumBehavesIdentically(t *testing.T) {
	c := pgtext.EnumCodecOf[moodLevel]()

	s, err := c.Format(panicked)
	require.NoError(t, err)
	assert.Equal(t, "2", s)

	var v moodLevel
	require.NoError(t, c.Parse(pgtext.NewText("1"), &v))
	assert.Equal(t, tense, v)
}

func TestEnumCodec_GrammarAndRange(t *testing.T) {
	c := pgtext.EnumCodecOf[colour]()

	var v colour
	assert.ErrorIs(t, c.Parse(pgtext.NewText("blue"), &v), pgtext.ErrParse)
	assert.ErrorIs(t, c.Parse(pgtext.NewText(""), &v), pgtext.ErrParse)
	assert.ErrorIs(t, c.Parse(pgtext.NewText("40000"), &v), pgtext.ErrParse, "beyond int16")

	u := pgtext.EnumCodecOf[moodLevel]()
	var m moodLevel
	assert.ErrorIs(t, u.Parse(pgtext.NewText("-1"), &m), pgtext.ErrParse, "unsigned underlying type")
}

func TestEnumCodec_NoIntrinsicNull(t *testing.T) {
	c := pgtext.EnumCodecOf[colour]()

	assert.False(t, c.HasNull())
	assert.False(t, c.IsNull(red))

	_, err := c.Null()
	assert.ErrorIs(t, err, pgtext.ErrNullConversion)

	var v colour
	assert.ErrorIs(t, c.Parse(pgtext.NullText(), &v), pgtext.ErrNullRead)
}

func TestEnumCodecWithNull_SentinelIsNull(t *testing.T) {
	const missing colour = -1
	c := pgtext.EnumCodecWithNull(missing)

	require.True(t, c.HasNull())
	assert.True(t, c.IsNull(missing))
	assert.False(t, c.IsNull(red))

	null, err := c.Null()
	require.NoError(t, err)
	assert.Equal(t, missing, null)

	_, err = c.Format(missing)
	assert.ErrorIs(t, err, pgtext.ErrNullConversion)

	s, err := c.Format(green)
	require.NoError(t, err)
	assert.Equal(t, "1", s)
}

func TestEnumCodecWithNull_ParseNullYieldsSentinel(t *testing.T) {
	const missing colour = -1
	c := pgtext.EnumCodecWithNull(missing)

	v := blue
	require.NoError(t, c.Parse(pgtext.NullText(), &v))
	assert.Equal(t, missing, v)
	assert.True(t, c.IsNull(v))

	// Null round-trips: the sentinel read back still formats as null.
	_, err := c.Format(v)
	assert.ErrorIs(t, err, pgtext.ErrNullConversion)
}

func TestEnumCodec_OutOfMembershipParses(t *testing.T) {
	// Membership is intentionally not validated; any in-range integer is
	// accepted.
	c := pgtext.EnumCodecOf[colour]()

	var v colour
	require.NoError(t, c.Parse(pgtext.NewText("9"), &v))
	assert.Equal(t, colour(9), v)
}
