package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mvpathlete/athlete/internal/model"
)

// DateLayout matches the en-US locale date strings records carry, e.g. 1/2/2024.
const DateLayout = "1/2/2006"

func FormatDate(t time.Time) string {
	return t.Local().Format(DateLayout)
}

func parsePositiveNumber(field, text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, invalid(field, "is required")
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalid(field, "must be a number")
	}
	if v <= 0 {
		return 0, invalid(field, "must be > 0")
	}
	return v, nil
}

func parseOptionalMinutes(field, text string) (*int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return nil, invalid(field, "must be a whole number of minutes")
	}
	if v < 0 {
		return nil, invalid(field, "must be >= 0")
	}
	if v > model.MaxRollMinutes {
		return nil, invalid(field, fmt.Sprintf("must be <= %d", model.MaxRollMinutes))
	}
	return &v, nil
}
