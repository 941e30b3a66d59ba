package identifier

import (
	"strconv"
	"strings"
)

// Seeds convert data created before the counters existed into the last value
// already used, so the first allocation continues where the old scheme stopped.

// SeedFromCustomerCodes returns the largest purely numeric code. Non-numeric
// legacy codes are ignored; no numeric code yields 0.
func SeedFromCustomerCodes(codes []string) int64 {
	var highest int64
	for _, code := range codes {
		n, err := strconv.ParseInt(strings.TrimSpace(code), 10, 64)
		if err != nil || n < 0 {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest
}

// SeedFromOrderCount continues the count-based numbering: with n existing
// orders the next number is n+1.
func SeedFromOrderCount(count int64) int64 {
	if count < 0 {
		return 0
	}
	return count
}

// SeedFromLatestReceipt parses the numeric suffix of the most recent receipt
// number. Both "RCP007" and the date-based "RCP20240115007" forms are
// accepted; the latter contributes its last three digits. Anything
// unparseable yields 0, so numbering restarts at RCP001.
func SeedFromLatestReceipt(latest string) int64 {
	suffix, ok := strings.CutPrefix(strings.TrimSpace(latest), receiptPrefix)
	if !ok || suffix == "" {
		return 0
	}
	if len(suffix) > 3 {
		suffix = suffix[len(suffix)-3:]
	}
	n, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
