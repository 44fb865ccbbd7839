package helpers

import (
	"strconv"
	"time"
)

// MilisecondsToTime converts milliseconds since epoch to golang time object
func MilisecondsToTime(milli int64) time.Time {
	return time.UnixMilli(milli)
}

// TimeToMiliseconds converts a golang time object to milliseconds since epoch
func TimeToMiliseconds(t time.Time) int64 {
	return t.UnixMilli()
}

// ParseStringToInt parses string to int
func ParseStringToInt(str string) (int64, error) {
	return strconv.ParseInt(str, 10, 64)
}
