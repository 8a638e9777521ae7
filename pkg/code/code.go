package code

import "fmt"

const prefix = "CMP-"

// Format renders the n-th complaint code: "CMP-" plus the sequence number
// zero-padded to six digits. Numbers beyond 999999 keep all their digits.
func Format(n int64) string {
	return fmt.Sprintf("%s%06d", prefix, n)
}
