package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	r := Success()

	assert.True(t, r.Succeeded())
	assert.True(t, r.OK())
	assert.Empty(t, r.Errors())
	assert.NotNil(t, r.Errors())
}

func TestFailureKeepsErrorOrder(t *testing.T) {
	r := Failure("first", "second")

	assert.False(t, r.OK())
	assert.Equal(t, []string{"first", "second"}, r.Errors())
}

func TestErrorsIsACopy(t *testing.T) {
	r := Failure("boom")

	errs := r.Errors()
	errs[0] = "changed"

	assert.Equal(t, []string{"boom"}, r.Errors())
}

func TestMessages(t *testing.T) {
	s := SuccessWithMessages("saved", "")
	assert.True(t, s.OK())
	assert.Equal(t, "saved", s.Message())

	f := FailureWithMessages("Person with ID 4 was not found", "careful")
	assert.False(t, f.OK())
	assert.Empty(t, f.Errors())
	assert.Equal(t, "careful", f.DangerMessage())
	assert.Equal(t, "Person with ID 4 was not found careful", f.FailureText())
}

func TestTypedData(t *testing.T) {
	r := Ok[int64](42)

	require.True(t, r.OK())
	assert.Equal(t, int64(42), r.Data())

	v, ok := r.TryData()
	assert.True(t, ok)
	assert.Equal(t, int64(42), v)
}

func TestDataOnFailurePanics(t *testing.T) {
	r := Fail[int64]("Full name cannot be empty.")

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered)
		accessErr, ok := recovered.(*DataAccessError)
		require.True(t, ok)
		assert.Equal(t, []string{"Full name cannot be empty."}, accessErr.Errors)
	}()

	_ = r.Data()
	t.Fatal("Data should have panicked")
}

func TestTryDataOnFailure(t *testing.T) {
	_, ok := Fail[string]("nope").TryData()
	assert.False(t, ok)
}

func TestFailWithMessages(t *testing.T) {
	r := FailWithMessages[int]([]string{"a"}, "msg", "danger")

	assert.False(t, r.OK())
	assert.Equal(t, []string{"a"}, r.Errors())
	assert.Equal(t, "msg", r.Message())
	assert.Equal(t, "danger", r.DangerMessage())
}

func TestMap(t *testing.T) {
	doubled := Map(Ok(21), func(v int) int { return v * 2 })
	assert.Equal(t, 42, doubled.Data())

	failed := Map(Fail[int]("bad"), func(v int) string { return "unused" })
	assert.False(t, failed.OK())
	assert.Equal(t, []string{"bad"}, failed.Errors())
}

func TestFromResult(t *testing.T) {
	typed := FromResult[int64](FailureWithMessages("missing", ""))
	assert.False(t, typed.OK())
	assert.Equal(t, "missing", typed.Message())

	assert.True(t, FromResult[int64](Success()).OK())
}

func TestNotFound(t *testing.T) {
	r := NotFound("Person with ID 7 was not found")
	assert.False(t, r.Succeeded())
	assert.True(t, r.IsNotFound())
	assert.Equal(t, "Person with ID 7 was not found", r.Message())
	assert.Empty(t, r.Errors())

	assert.False(t, FailureWithMessages("x", "").IsNotFound())
	assert.True(t, FromResult[int64](r).IsNotFound())
}
