package entry

import (
	"fmt"
	"time"
)

var months = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Describe renders t as "<Month> <Day>", e.g. "March 10".
func Describe(t time.Time) string {
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Day())
}
