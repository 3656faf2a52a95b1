package hamlet_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/joshyorko/scriptboard/hamlet"
)

func TestHamletCanSpeakBothWays(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	var nothing *int
	must_be.Nil(nil)
	must_be.Nil(nothing)
	wont_be.Nil(t)

	must_be.True(true)
	wont_be.True(false)

	must_be.Equal([]string{"a", "b"}, []string{"a", "b"})
	wont_be.Equal("a", "b")

	must_be.Length(2, []int{1, 2})
	must_be.Contains("to be, or not to be", "not")
	wont_be.Contains("to be", "not")

	base := errors.New("base")
	must_be.ErrorIs(base, fmt.Errorf("wrapped: %w", base))
	wont_be.ErrorIs(base, errors.New("base"))

	must_be.Panic(func() { panic("yes") })
	wont_be.Panic(func() {})
}
