package rec_test

import (
	"testing"

	"coreseq/rec"

	"github.com/stretchr/testify/require"
)

func TestKey_Values(t *testing.T) {
	r := rec.Record{"David", "52", "127.98"}

	k := rec.Key{rec.F(0), rec.FInt(1), rec.FFloat(2)}

	vs, err := k.Values(r)
	require.NoError(t, err)
	require.Len(t, vs, 3)
	require.Equal(t, "David", vs[0].String())
	require.Equal(t, "52", vs[1].String())
}

func TestKey_Values_BadCast(t *testing.T) {
	r := rec.Record{"David", "fifty-two"}

	_, err := rec.Key{rec.FInt(1)}.Values(r)
	require.ErrorContains(t, err, "field 1")

	_, err = rec.Key{rec.FFloat(0)}.Values(r)
	require.Error(t, err)
}

func TestKey_Values_OutOfRange(t *testing.T) {
	r := rec.Record{"only"}

	_, err := rec.Key{rec.F(5)}.Values(r)
	require.ErrorContains(t, err, "out of range")
}

func TestValue_Compare_CastMatters(t *testing.T) {
	a := rec.Record{"9"}
	b := rec.Record{"10"}

	// As strings "10" sorts before "9".
	sa, err := rec.Key{rec.F(0)}.Values(a)
	require.NoError(t, err)
	sb, err := rec.Key{rec.F(0)}.Values(b)
	require.NoError(t, err)
	require.Positive(t, sa[0].Compare(sb[0]))

	// As integers 9 sorts before 10.
	ia, err := rec.Key{rec.FInt(0)}.Values(a)
	require.NoError(t, err)
	ib, err := rec.Key{rec.FInt(0)}.Values(b)
	require.NoError(t, err)
	require.Negative(t, ia[0].Compare(ib[0]))
}

func TestCompareValues_Lexicographic(t *testing.T) {
	k := rec.Key{rec.F(0), rec.FFloat(1)}

	a, err := k.Values(rec.Record{"Blue", "361.69"})
	require.NoError(t, err)
	b, err := k.Values(rec.Record{"Blue", "379.97"})
	require.NoError(t, err)
	c, err := k.Values(rec.Record{"Red", "1.00"})
	require.NoError(t, err)

	require.Negative(t, rec.CompareValues(a, b))
	require.Positive(t, rec.CompareValues(b, a))
	require.Zero(t, rec.CompareValues(a, a))

	// The first part dominates.
	require.Negative(t, rec.CompareValues(b, c))
}

func TestKey_Strings(t *testing.T) {
	r := rec.Record{"a", "b", "c"}

	ks, err := rec.Fields(2, 0).Strings(r)
	require.NoError(t, err)
	require.Equal(t, []string{"c", "a"}, ks)

	_, err = rec.Fields(9).Strings(r)
	require.Error(t, err)
}
