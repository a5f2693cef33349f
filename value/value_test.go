package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqualSameTag(t *testing.T) {
	ok, err := Equal(NewInt(1), NewInt(1))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = Equal(NewInt(1), NewInt(2))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEqualNullOnlyEqualsNull(t *testing.T) {
	ok, err := Equal(NewNull(), NewNull())
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = Equal(NewNull(), NewInt(0))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEqualCrossTagIsTypeError(t *testing.T) {
	_, err := Equal(NewInt(1), NewString("1"))
	require.Error(t, err)
	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
}

func TestCompareOrdersNullFirstAscending(t *testing.T) {
	c, err := Compare(NewNull(), NewInt(-100))
	require.NoError(t, err)
	require.Equal(t, -1, c)

	c, err = Compare(NewInt(-100), NewNull())
	require.NoError(t, err)
	require.Equal(t, 1, c)

	c, err = Compare(NewNull(), NewNull())
	require.NoError(t, err)
	require.Equal(t, 0, c)
}

func TestCompareCrossTagIsTypeError(t *testing.T) {
	_, err := Compare(NewFloat(1.0), NewBool(true))
	require.Error(t, err)
}

func TestCompareScalarOrder(t *testing.T) {
	c, err := Compare(NewFloat(1.5), NewFloat(2.5))
	require.NoError(t, err)
	require.Equal(t, -1, c)

	c, err = Compare(NewString("a"), NewString("b"))
	require.NoError(t, err)
	require.Equal(t, -1, c)

	c, err = Compare(NewBool(false), NewBool(true))
	require.NoError(t, err)
	require.Equal(t, -1, c)
}

func TestCoerceIdentityAndWidening(t *testing.T) {
	v, err := Coerce(int32(7))
	require.NoError(t, err)
	require.Equal(t, Int, v.Tag())
	require.Equal(t, int64(7), v.Int())

	v, err = Coerce(float32(1.5))
	require.NoError(t, err)
	require.Equal(t, Float, v.Tag())

	v, err = Coerce(nil)
	require.NoError(t, err)
	require.True(t, v.IsNull())
}

func TestCoerceUnsupportedIsTypeError(t *testing.T) {
	_, err := Coerce(struct{ X int }{X: 1})
	require.Error(t, err)
}
