package wizard_test

import (
	"strconv"
	"testing"

	"github.com/joshyorko/scriptboard/hamlet"
	"github.com/joshyorko/scriptboard/wizard"
)

func TestParseIndexAcceptsOneBasedRange(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	for count := 1; count <= 5; count++ {
		for choice := 1; choice <= count; choice++ {
			index, err := wizard.ParseIndex(strconv.Itoa(choice), count)
			must_be.Nil(err)
			must_be.Equal(choice-1, index)
		}
	}
}

func TestParseIndexRejectsEverythingElse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		count int
	}{
		{"zero is reserved", "0", 3},
		{"zero with empty list", "0", 0},
		{"one past the end", "4", 3},
		{"anything with empty list", "1", 0},
		{"empty line", "", 3},
		{"letters", "abc", 3},
		{"letters with big list", "abc", 1000},
		{"negative", "-1", 3},
		{"explicit plus", "+1", 3},
		{"decimal", "1.0", 3},
		{"inner space", "1 2", 3},
		{"overflow", "99999999999999999999", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			must_be, _ := hamlet.Specifications(t)

			index, err := wizard.ParseIndex(tt.input, tt.count)
			must_be.ErrorIs(wizard.ErrInvalidInput, err)
			must_be.Equal(-1, index)
		})
	}
}
