package container

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnyQueue_BindsOnFirstPush(t *testing.T) {
	q := NewAnyQueue(nil)
	assert.Nil(t, q.ElemType())

	require.NoError(t, q.Push(1))
	assert.Equal(t, reflect.TypeOf(0), q.ElemType())

	err := q.Push("1")
	require.ErrorIs(t, err, ErrTypeConstraintViolation)
	assert.Equal(t, 1, q.Size())

	require.NoError(t, q.Push(2))
	for _, want := range []int{1, 2} {
		got, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err = q.Pop()
	assert.ErrorIs(t, err, ErrEmptyContainer)
}

func TestAnyQueue_NilCannotBind(t *testing.T) {
	q := NewAnyQueue(nil)
	assert.ErrorIs(t, q.Push(nil), ErrTypeConstraintViolation)
	assert.Nil(t, q.ElemType())
	assert.True(t, q.Empty())
}

func TestAnyQueue_InterfaceElem(t *testing.T) {
	q := NewAnyQueueOf[fmt.Stringer]()

	require.NoError(t, q.Push(reflect.TypeOf(0)))
	require.NoError(t, q.Push(nil))

	err := q.Push(3)
	var tce *TypeConstraintError
	require.True(t, errors.As(err, &tce))
	assert.Equal(t, "fmt.Stringer", tce.Expected.String())
	assert.Equal(t, "int", tce.Actual.String())
	assert.Contains(t, err.Error(), "expected fmt.Stringer, got int")
	assert.Equal(t, 2, q.Size())
}

func TestAnyQueue_ClearKeepsBinding(t *testing.T) {
	q := NewAnyQueue(nil)
	require.NoError(t, q.Push("a"))
	q.Clear()

	assert.True(t, q.Empty())
	assert.ErrorIs(t, q.Push(1), ErrTypeConstraintViolation)
	require.NoError(t, q.Push("b"))

	head, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, "b", head)
	assert.Equal(t, []any{"b"}, q.Value())
}
