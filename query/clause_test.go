package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kasuganosora/memrel/value"
)

func TestOnlyFirstSelectOrderByLimitHonored(t *testing.T) {
	q := New().
		Select("a", "b").
		Select("c").
		OrderBy("a", true).
		OrderBy("b", false).
		Limit(5).
		Limit(1)

	cols, ok := q.SelectColumns()
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, cols)

	ob, ok := q.Order()
	require.True(t, ok)
	require.Equal(t, "a", ob.Column)
	require.False(t, ob.Descending)

	n, ok := q.LimitN()
	require.True(t, ok)
	require.Equal(t, 5, n)
}

func TestWheresAccumulateInAppendOrder(t *testing.T) {
	q := New().
		Where("a", Eq, value.NewInt(1)).
		Where("b", Gt, value.NewInt(2))

	wheres := q.Wheres()
	require.Len(t, wheres, 2)
	require.Equal(t, "a", wheres[0].Column)
	require.Equal(t, "b", wheres[1].Column)
}

func TestOperatorValid(t *testing.T) {
	require.True(t, Eq.Valid())
	require.False(t, Operator("~=").Valid())
}
