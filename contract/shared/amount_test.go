package shared

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want Amount
		ok   bool
	}{
		{"1", 1000, true},
		{"1.5", 1500, true},
		{"0.001", 1, true},
		{" 2.250 ", 2250, true},
		{"0", 0, true},
		{"0.0001", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"9223372036854775.807", math.MaxInt64, true},
		{"9223372036854775.808", 0, false},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseAmount(c.in)
			if !c.ok {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestAmountString(t *testing.T) {
	assert.Equal(t, "1.500", Amount(1500).String())
	assert.Equal(t, "0.001", Amount(1).String())
	assert.Equal(t, "0.000", Amount(0).String())
}

func TestMulQuantity(t *testing.T) {
	got, ok := MulQuantity(1500, 3)
	require.True(t, ok)
	assert.Equal(t, Amount(4500), got)

	_, ok = MulQuantity(math.MaxInt64, 2)
	assert.False(t, ok, "product above int64 must be reported")

	_, ok = MulQuantity(2, math.MaxUint64)
	assert.False(t, ok)

	got, ok = MulQuantity(0, math.MaxUint64)
	require.True(t, ok)
	assert.Equal(t, Amount(0), got)
}

func TestShareOfFloors(t *testing.T) {
	assert.Equal(t, Amount(0), ShareOf(1, 1000))
	assert.Equal(t, Amount(333), ShareOf(3333, 1000))
	assert.Equal(t, Amount(100), ShareOf(1000, 1000))
	assert.Equal(t, Amount(math.MaxInt64), ShareOf(math.MaxInt64, BpsDenominator))
	assert.Equal(t, Amount(0), ShareOf(1000, 0))
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "paused", Symbol(ErrPaused))
	assert.Equal(t, "deadline_passed", Symbol(fmt.Errorf("post x: %w", ErrDeadlinePassed)))
	assert.Equal(t, "insufficient_payment", Symbol(fmt.Errorf("a: %w", fmt.Errorf("b: %w", ErrInsufficientPayment))))
	assert.Equal(t, "error", Symbol(fmt.Errorf("something else")))
}

func TestParseTimestamp(t *testing.T) {
	v, ok := ParseTimestamp("1700000000")
	require.True(t, ok)
	assert.Equal(t, int64(1700000000), v)

	v, ok = ParseTimestamp("2025-09-03T00:00:00")
	require.True(t, ok)
	assert.Equal(t, int64(1756857600), v)

	v2, ok := ParseTimestamp("2025-09-03T00:00:00Z")
	require.True(t, ok)
	assert.Equal(t, v, v2)

	_, ok = ParseTimestamp("yesterday")
	assert.False(t, ok)
}

func TestCodecRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteUint64(42)
	w.WriteString("post|with|pipes")
	w.WriteInt64(-5)
	w.WriteBool(true)

	r := NewReader(w.Bytes())
	n, err := r.ReadUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), n)
	s, err := r.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "post|with|pipes", s)
	i, err := r.ReadInt64()
	require.NoError(t, err)
	assert.Equal(t, int64(-5), i)
	b, err := r.ReadBool()
	require.NoError(t, err)
	assert.True(t, b)

	_, err = r.ReadUint64()
	assert.Error(t, err)
}

func TestPackStringAvoidsCollisions(t *testing.T) {
	a := string(append(PackString("ab", nil), "c"...))
	b := string(append(PackString("a", nil), "bc"...))
	assert.NotEqual(t, a, b)
}
