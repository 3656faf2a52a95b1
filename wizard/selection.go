package wizard

import (
	"errors"
	"strconv"
)

const (
	maxIndexDigits = 10
)

var (
	// ErrInvalidInput is returned for any menu choice that is not a number
	// in the listed range.
	ErrInvalidInput = errors.New("invalid option")
)

func digitsOnly(input string) bool {
	for _, char := range input {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

// ParseIndex converts a 1-based menu choice into a 0-based index into a list
// of count entries. Zero is never a valid selection.
func ParseIndex(input string, count int) (int, error) {
	if len(input) == 0 || len(input) > maxIndexDigits || !digitsOnly(input) {
		return -1, ErrInvalidInput
	}
	number, err := strconv.Atoi(input)
	if err != nil {
		return -1, ErrInvalidInput
	}
	if number < 1 || number > count {
		return -1, ErrInvalidInput
	}
	return number - 1, nil
}
