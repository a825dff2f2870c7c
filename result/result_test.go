package result_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/fgp-interop/result"
)

func TestTryCatchReturnedError(t *testing.T) {
	res := result.Try(func() (int, error) {
		return strconv.Atoi("forty-two")
	})
	require.True(t, res.IsErr())
	var numErr *strconv.NumError
	assert.ErrorAs(t, res.Err(), &numErr)
}

func TestTryCatchRecoversPanic(t *testing.T) {
	res := result.Try(func() (string, error) {
		panic("unexpected end of input")
	})
	require.True(t, res.IsErr())
	assert.EqualError(t, res.Err(), "unexpected end of input")
}

func TestTryCatchRecoversPanicWithError(t *testing.T) {
	boom := errors.New("boom")
	res := result.Try(func() (int, error) {
		panic(boom)
	})
	assert.ErrorIs(t, res.Err(), boom)
}

func TestTryCatchOnThrowSeesReason(t *testing.T) {
	var seen []any
	onThrow := func(reason any) error {
		seen = append(seen, reason)
		return errors.New("wrapped")
	}
	failed := result.TryCatch(func() (int, error) { return 0, errors.New("first") }, onThrow)
	panicked := result.TryCatch(func() (int, error) { panic(7) }, onThrow)

	assert.EqualError(t, failed.Err(), "wrapped")
	assert.EqualError(t, panicked.Err(), "wrapped")
	require.Len(t, seen, 2)
	assert.EqualError(t, seen[0].(error), "first")
	assert.Equal(t, 7, seen[1])
}

func TestTryCatchOnThrowReturningNil(t *testing.T) {
	res := result.TryCatch(func() (int, error) {
		return 0, errors.New("lost")
	}, func(any) error { return nil })
	require.True(t, res.IsErr(), "a nil error from onThrow must not turn into success")
	assert.NotEmpty(t, res.Err().Error())
}

func TestTryCatchSuccess(t *testing.T) {
	res := result.Try(func() (int, error) { return strconv.Atoi("42") })
	assert.Equal(t, "Ok(42)", res.String())
	assert.Equal(t, 42, res.UnsafeUnwrap())
}

func TestString(t *testing.T) {
	assert.Equal(t, "Ok(aaa)", result.Ok("aaa").String())
	assert.Equal(t, "Err(boom)", result.Err[string](errors.New("boom")).String())
	assert.Equal(t, "Err(result: nil error)", result.Err[int](nil).String())
}

func TestSequenceAndTraverse(t *testing.T) {
	seq := result.Sequence([]result.Result[int]{result.Ok(1), result.Ok(2)})
	if seq.IsErr() {
		t.Fatalf("sequence failed: %v", seq.Err())
	}
	if values := seq.UnwrapOr(nil); len(values) != 2 {
		t.Fatalf("unexpected length %d", len(values))
	}

	res := result.Traverse([]string{"1", "x", "3"}, func(s string) result.Result[int] {
		return result.FromTuple(strconv.Atoi(s))
	})
	if res.IsOk() {
		t.Fatalf("expected traversal to stop on the bad input")
	}
}

func TestRecoverAndCollect(t *testing.T) {
	boom := errors.New("boom")
	recovered := result.Recover(result.Err[int](boom), func(err error) int {
		if !errors.Is(err, boom) {
			t.Fatalf("unexpected err %v", err)
		}
		return 10
	})
	if recovered.UnwrapOr(0) != 10 {
		t.Fatalf("expected recovery")
	}
	values := result.Collect([]result.Result[int]{result.Ok(1), result.Err[int](boom), result.Ok(2)})
	assert.Equal(t, []int{1, 2}, values)
}

func TestMapErrAndTap(t *testing.T) {
	wrapped := result.MapErr(result.Err[int](errors.New("inner")), func(err error) error {
		return errors.Join(errors.New("outer"), err)
	})
	assert.ErrorContains(t, wrapped.Err(), "outer")

	var tapped, tappedErr int
	result.Tap(result.Ok(3), func(v int) { tapped = v })
	result.TapErr(wrapped, func(error) { tappedErr++ })
	result.Tap(wrapped, func(int) { t.Fatalf("tap must not run on Err") })
	assert.Equal(t, 3, tapped)
	assert.Equal(t, 1, tappedErr)
}

func TestMoInterop(t *testing.T) {
	ok := result.FromMo(mo.Ok("aaa"))
	assert.Equal(t, "aaa", ok.UnwrapOr(""))

	boom := errors.New("boom")
	failed := result.FromMo(mo.Err[string](boom))
	assert.ErrorIs(t, failed.Err(), boom)

	value, err := result.Ok(5).ToMo().Get()
	require.NoError(t, err)
	assert.Equal(t, 5, value)
	assert.True(t, failed.ToMo().IsError())
}
