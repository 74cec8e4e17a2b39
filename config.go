package textkit

import (
	"strconv"
)

func ParseLineCount(str string) (int, error) {
	n, err := parseCount("line", str, 0)
	return int(n), err
}

func ParseByteCount(str string) (int64, error) {
	return parseCount("byte", str, 64)
}

func parseCount(kind, str string, bits int) (int64, error) {
	n, err := strconv.ParseInt(str, 10, bits)
	if err != nil || n <= 0 {
		return 0, &ConfigError{Option: kind, Value: str, Err: ErrIllegalCount}
	}
	return n, nil
}
