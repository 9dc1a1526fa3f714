package job

// The catalog carries wage and commute time as display strings
// ("¥1,200/hour", "15 min"). Filtering and sorting need numbers, so both
// parsers take the first run of digits, allowing comma grouping inside the
// run. Anything before the first digit (currency symbols, text) is skipped.

// ParseWage extracts the hourly wage from a salary display string. The
// second return is false when the string carries no digits at all.
func ParseWage(salary string) (int, bool) {
	return firstIntRun(salary)
}

// ParseCommuteMinutes extracts the commute duration in minutes from a
// commute display string.
func ParseCommuteMinutes(commute string) (int, bool) {
	return firstIntRun(commute)
}

func firstIntRun(s string) (int, bool) {
	n := 0
	found := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			found = true
			n = n*10 + int(r-'0')
			continue
		}
		if found {
			if r == ',' {
				continue
			}
			break
		}
	}
	return n, found
}
