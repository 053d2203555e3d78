package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/casherapp/casher_backend/internal/apperrors"
)

// CanonicalLayout is the storage representation of a calendar date.
const CanonicalLayout = "2006-01-02"

// Normalize parses a user-supplied date string into the canonical YYYY-MM-DD
// form. Two input shapes are accepted:
//
//   - a delimited triple, DD-MM-YYYY, using exactly one non-alphanumeric
//     separator character ("15-06-2023", "15/06/2023")
//   - an ISO-style timestamp, YYYY-MM-DDThh:mm:ss, detected by the 'T'
//
// The check is deliberately shallow on the delimited path: day 31 of any
// month is accepted. All rejections wrap apperrors.ErrValidation.
func Normalize(raw string, yearMin, yearMax int) (string, error) {
	if strings.Contains(raw, "T") {
		return normalizeISO(raw, yearMin, yearMax)
	}
	return normalizeDelimited(raw, yearMin, yearMax)
}

func normalizeDelimited(raw string, yearMin, yearMax int) (string, error) {
	separators := map[rune]struct{}{}
	var sep rune
	for _, r := range raw {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			separators[r] = struct{}{}
			sep = r
		}
	}
	if len(separators) != 1 {
		return "", fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, raw)
	}

	parts := strings.Split(raw, string(sep))
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: enter the date as DD-MM-YYYY", apperrors.ErrValidation)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return "", fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, raw)
		}
		nums[i] = n
	}

	if nums[0] < 1 || nums[0] > 31 {
		return "", fmt.Errorf("%w: invalid day of the month %d", apperrors.ErrValidation, nums[0])
	}
	if nums[1] < 1 || nums[1] > 12 {
		return "", fmt.Errorf("%w: invalid calendar month %d", apperrors.ErrValidation, nums[1])
	}
	if nums[2] < yearMin || nums[2] > yearMax {
		return "", fmt.Errorf("%w: year must be between %d and %d", apperrors.ErrValidation, yearMin, yearMax)
	}

	// Reassemble from the original digit strings, year first.
	return parts[2] + "-" + parts[1] + "-" + parts[0], nil
}

// normalizeISO handles the YYYY-MM-DDThh:mm:ss shape. The year range is
// validated first and the day range last, then one calendar day is added;
// month and year rollover is left to the time package.
func normalizeISO(raw string, yearMin, yearMax int) (string, error) {
	datePart, _, _ := strings.Cut(raw, "T")
	if len(datePart) != 10 || datePart[4] != '-' || datePart[7] != '-' {
		return "", fmt.Errorf("%w: invalid timestamp %q", apperrors.ErrValidation, raw)
	}

	year, errY := strconv.Atoi(datePart[0:4])
	month, errM := strconv.Atoi(datePart[5:7])
	day, errD := strconv.Atoi(datePart[8:10])
	if errY != nil || errM != nil || errD != nil {
		return "", fmt.Errorf("%w: invalid timestamp %q", apperrors.ErrValidation, raw)
	}

	if year < yearMin || year > yearMax {
		return "", fmt.Errorf("%w: year must be between %d and %d", apperrors.ErrValidation, yearMin, yearMax)
	}
	if month < 1 || month > 12 {
		return "", fmt.Errorf("%w: invalid calendar month %d", apperrors.ErrValidation, month)
	}
	if day < 1 || day > 31 {
		return "", fmt.Errorf("%w: invalid day of the month %d", apperrors.ErrValidation, day)
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return d.AddDate(0, 0, 1).Format(CanonicalLayout), nil
}

// StartOfWeek returns the most recent Sunday on or before t, at midnight.
func StartOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// MonthBounds returns the first and last calendar day of t's month.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first, first.AddDate(0, 1, -1)
}
