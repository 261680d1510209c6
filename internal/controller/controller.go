package controller

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// The form boundary coerces instead of rejecting: unparseable numbers
// become 0, an unparseable construction year becomes the current year.

func coerceFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func coerceInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func coerceYear(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return time.Now().Year()
	}
	return v
}
