package postgres

import "strconv"

// placeholder renders the nth positional argument marker.
func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}
