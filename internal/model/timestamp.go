package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	// TimestampLayout is used both for user input and the storage file.
	TimestampLayout = "2006-01-02 1504"
	DisplayLayout   = "Jan 02 2006 15:04"

	TimestampHint = "yyyy-MM-dd HHmm"
)

func ParseTimestamp(raw string) (time.Time, error) {
	v := strings.TrimSpace(raw)
	out, err := time.Parse(TimestampLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("model: invalid timestamp %q, expected %s", v, TimestampHint)
	}
	return out, nil
}

func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

func FormatDisplay(t time.Time) string {
	return t.Format(DisplayLayout)
}
