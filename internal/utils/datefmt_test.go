package utils_test

import (
	"testing"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestToTwoDigits(t *testing.T) {
	assert.Equal(t, "05", utils.ToTwoDigits(5))
	assert.Equal(t, "10", utils.ToTwoDigits(10))
	assert.Equal(t, "00", utils.ToTwoDigits(0))
	assert.Equal(t, "2024", utils.ToTwoDigits(2024))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 6, 5, 9, 8, 7, 0, time.UTC)
	assert.Equal(t, "05/06/2024", utils.FormatDate(ts, "/"))
	assert.Equal(t, "05-06-2024", utils.FormatDate(ts, "-"))
}

func TestFormatClock(t *testing.T) {
	ts := time.Date(2024, 6, 5, 9, 8, 7, 0, time.UTC)
	assert.Equal(t, "09:08:07", utils.FormatClock(ts, ":"))
}
