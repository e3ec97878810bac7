package pgtext_test

import (
	"testing"

	"github.com/AndrewDonelson/pgtext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ToString / FromString round-trips ────────────────────────────────────────

func TestToString_Builtins(t *testing.T) {
	s, err := pgtext.ToString(true)
	require.NoError(t, err)
	assert.Equal(t, "true", s)

	s, err = pgtext.ToString(int32(-2147483648))
	require.NoError(t, err)
	assert.Equal(t, "-2147483648", s)

	s, err = pgtext.ToString(uint16(65535))
	require.NoError(t, err)
	assert.Equal(t, "65535", s)

	s, err = pgtext.ToString("hello world")
	require.NoError(t, err)
	assert.Equal(t, "hello world", s)

	s, err = pgtext.ToString(float64(-2.25))
	require.NoError(t, err)
	assert.Equal(t, "-2.25", s)
}

func TestFromString_Builtins(t *testing.T) {
	var b bool
	require.NoError(t, pgtext.FromString("TRUE", &b))
	assert.True(t, b)

	var n int64
	require.NoError(t, pgtext.FromString("-9223372036854775808", &n))
	assert.Equal(t, int64(-9223372036854775808), n)

	var u uint8
	require.NoError(t, pgtext.FromString("255", &u))
	assert.Equal(t, uint8(255), u)

	var s string
	require.NoError(t, pgtext.FromString("", &s))
	assert.Equal(t, "", s)

	var f float32
	require.NoError(t, pgtext.FromString("3.5", &f))
	assert.Equal(t, float32(3.5), f)
}

func TestRoundTrip_Builtins(t *testing.T) {
	for _, v := range []int{0, 1, -1, 42, -99999} {
		s, err := pgtext.ToString(v)
		require.NoError(t, err)
		var back int
		require.NoError(t, pgtext.FromString(s, &back))
		assert.Equal(t, v, back)
	}
	for _, v := range []float64{0, 1.5, -2.25, 1e300, 5e-324} {
		s, err := pgtext.ToString(v)
		require.NoError(t, err)
		var back float64
		require.NoError(t, pgtext.FromString(s, &back))
		assert.Equal(t, v, back)
	}
	for _, v := range []string{"", "plain", "tab\tand\nnewline", "naïve"} {
		s, err := pgtext.ToString(v)
		require.NoError(t, err)
		var back string
		require.NoError(t, pgtext.FromString(s, &back))
		assert.Equal(t, v, back)
	}
}

// ── bool grammar ─────────────────────────────────────────────────────────────

func TestFromString_BoolLiterals(t *testing.T) {
	for _, lit := range []string{"true", "TRUE", "t", "T", "1"} {
		var b bool
		require.NoError(t, pgtext.FromString(lit, &b), lit)
		assert.True(t, b, lit)
	}
	for _, lit := range []string{"false", "FALSE", "f", "F", "0"} {
		var b bool
		require.NoError(t, pgtext.FromString(lit, &b), lit)
		assert.False(t, b, lit)
	}
}

func TestFromString_BoolRejected(t *testing.T) {
	for _, lit := range []string{"", "yes", "no", "True", "tRUE", " true", "true ", "10", "2"} {
		var b bool
		err := pgtext.FromString(lit, &b)
		assert.ErrorIs(t, err, pgtext.ErrParse, "%q", lit)
	}
}

// ── integer grammar ──────────────────────────────────────────────────────────

func TestFromString_IntRejected(t *testing.T) {
	for _, lit := range []string{"", " 1", "1 ", "+-1", "--1", "0x10", "1e3", "1.0", "abc", "1_000"} {
		var n int
		err := pgtext.FromString(lit, &n)
		assert.ErrorIs(t, err, pgtext.ErrParse, "%q", lit)
	}
}

func TestFromString_IntOutOfRange(t *testing.T) {
	var n8 int8
	assert.ErrorIs(t, pgtext.FromString("128", &n8), pgtext.ErrParse)
	assert.ErrorIs(t, pgtext.FromString("-129", &n8), pgtext.ErrParse)

	var u8 uint8
	assert.ErrorIs(t, pgtext.FromString("256", &u8), pgtext.ErrParse)
	assert.ErrorIs(t, pgtext.FromString("-1", &u8), pgtext.ErrParse)
}

// ── FromText null guards ─────────────────────────────────────────────────────

func TestFromText_NullIntoValueType(t *testing.T) {
	var n int
	err := pgtext.FromText(pgtext.NullText(), &n)
	assert.ErrorIs(t, err, pgtext.ErrNullConversion)

	var s string
	err = pgtext.FromText(pgtext.NullText(), &s)
	assert.ErrorIs(t, err, pgtext.ErrNullConversion)
}

func TestFromText_NullIntoWrapper(t *testing.T) {
	p := new(int)
	require.NoError(t, pgtext.FromText(pgtext.NullText(), &p))
	assert.Nil(t, p)

	o := pgtext.Some(7)
	require.NoError(t, pgtext.FromText(pgtext.NullText(), &o))
	assert.False(t, o.Present())
}

func TestFromText_EmptyStringIsNotNull(t *testing.T) {
	// A present empty cell and an absent cell are different states.
	var s string
	require.NoError(t, pgtext.FromText(pgtext.NewText(""), &s))
	assert.Equal(t, "", s)

	var p *string
	require.NoError(t, pgtext.FromText(pgtext.NewText(""), &p))
	require.NotNil(t, p)
	assert.Equal(t, "", *p)
}

// ── any-typed entry points ───────────────────────────────────────────────────

func TestFormatValue(t *testing.T) {
	s, err := pgtext.FormatValue(int16(300))
	require.NoError(t, err)
	assert.Equal(t, "300", s)

	_, err = pgtext.FormatValue((*int)(nil))
	assert.ErrorIs(t, err, pgtext.ErrNullConversion)

	_, err = pgtext.FormatValue(struct{ X int }{})
	assert.ErrorIs(t, err, pgtext.ErrNoCodec)
}

func TestParseValue(t *testing.T) {
	var n int32
	require.NoError(t, pgtext.ParseValue(pgtext.NewText("-5"), &n))
	assert.Equal(t, int32(-5), n)

	var p *bool
	require.NoError(t, pgtext.ParseValue(pgtext.NewText("t"), &p))
	require.NotNil(t, p)
	assert.True(t, *p)

	err := pgtext.ParseValue(pgtext.NewText("1"), nil)
	assert.Error(t, err)

	err = pgtext.ParseValue(pgtext.NullText(), &n)
	assert.ErrorIs(t, err, pgtext.ErrNullConversion)
}

func TestIsNullValue(t *testing.T) {
	null, err := pgtext.IsNullValue((*int)(nil))
	require.NoError(t, err)
	assert.True(t, null)

	null, err = pgtext.IsNullValue(42)
	require.NoError(t, err)
	assert.False(t, null)

	null, err = pgtext.IsNullValue(pgtext.Some("x"))
	require.NoError(t, err)
	assert.False(t, null)
}

// ── Text cell semantics ──────────────────────────────────────────────────────

func TestText_NullVsEmpty(t *testing.T) {
	assert.True(t, pgtext.NullText().Null())
	assert.False(t, pgtext.NewText("").Null())
	assert.Equal(t, "", pgtext.NullText().String())
	assert.Equal(t, "", pgtext.NewText("").String())
}
