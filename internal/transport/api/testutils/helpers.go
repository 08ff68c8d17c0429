package testutils

import "strings"

// OverByteLimit строка, которая проходит проверку длины в рунах, но превышает limit в байтах.
func OverByteLimit(limit int) string {
	const symbol = "😁" // 4 байта, 1 руна
	return strings.Repeat(symbol, limit/len(symbol)+1)
}
