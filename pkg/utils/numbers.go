package utils

import (
	"fmt"
	"time"
)

// OrderNumber returns "ORD-" plus the last six digits of the millisecond clock
func OrderNumber(now time.Time) string {
	return "ORD-" + clockSuffix(now)
}

// InvoiceNumber returns "INV-" plus the last six digits of the millisecond clock
func InvoiceNumber(now time.Time) string {
	return "INV-" + clockSuffix(now)
}

func clockSuffix(now time.Time) string {
	return fmt.Sprintf("%06d", now.UnixMilli()%1_000_000)
}
