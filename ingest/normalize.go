package ingest

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"bitbucket.org/armazemdata/corte_backend/utils"
	"github.com/shopspring/decimal"
)

var (
	dateLayoutRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$|^\d{4}-\d{2}-\d{2}$`)
	timeLayoutRe = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
)

// Serial day numbers count from 1899-12-30; subtracting unixEpochDay
// aligns them with the 1970-01-01 epoch.
const unixEpochDay = 25569

// JS Date range limit; serials past it would not form a calendar instant.
const maxEpochMillis = 8.64e15

// NormalizeDate converts a cell of unknown type into a YYYY-MM-DD string.
// Every failure path returns nil, nothing escapes.
func NormalizeDate(c Cell) *string {
	if c.Kind == CellAbsent {
		return nil
	}
	text := strings.TrimSpace(c.Text)
	switch text {
	case "", "0", "0000-00-00", "00/00/0000":
		return nil
	}

	if c.Kind == CellString && dateLayoutRe.MatchString(text) {
		sep := "-"
		if strings.Contains(text, "/") {
			sep = "/"
		}
		for _, part := range strings.Split(text, sep) {
			if strings.Trim(part, "0") == "" {
				return nil
			}
		}
		return &text
	}

	if c.Kind != CellNumber {
		return nil
	}
	// Stray small numbers are almost certainly not dates.
	if c.Number < 1 {
		return nil
	}
	millis := math.Round((c.Number - unixEpochDay) * 86400 * 1000)
	if millis > maxEpochMillis || millis < -maxEpochMillis {
		return nil
	}
	formatted := time.UnixMilli(int64(millis)).UTC().Format("2006-01-02")
	return &formatted
}

// NormalizeTime converts a cell of unknown type into an HH:MM:SS string.
// Numeric values are fractions of a 24-hour day; hours are deliberately
// not wrapped, a value >= 1.0 yields hour >= 24 so upstream data errors
// stay visible instead of being masked.
func NormalizeTime(c Cell) *string {
	if c.Kind == CellAbsent {
		return nil
	}
	text := strings.TrimSpace(c.Text)
	if text == "" {
		return nil
	}

	if c.Kind == CellString && timeLayoutRe.MatchString(text) {
		return &text
	}

	if c.Kind != CellNumber {
		return nil
	}
	totalSeconds := int64(math.Round(c.Number * 24 * 60 * 60))
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	formatted := fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	return &formatted
}

// NormalizeDecimal accepts a numeric cell directly or a string with comma
// as decimal separator; missing or unparseable values degrade to zero.
func NormalizeDecimal(c Cell) decimal.Decimal {
	switch c.Kind {
	case CellNumber:
		return decimal.NewFromFloat(c.Number)
	case CellString:
		d, err := utils.ParseDecimal(strings.ReplaceAll(c.Text, ",", "."))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}
