// Package natsort orders file names the way directory browsers do:
// embedded digit runs compare by numeric value, everything else compares
// case-insensitively. "img2.png" sorts before "img10.png".
package natsort

import (
	"sort"
	"strings"
)

// Less reports whether a orders before b in natural order
func Less(a, b string) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]

		if isDigit(ca) && isDigit(cb) {
			ia, ja := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}

			na := strings.TrimLeft(a[ia:i], "0")
			nb := strings.TrimLeft(b[ja:j], "0")

			// More significant digits means a larger number
			if len(na) != len(nb) {
				return len(na) < len(nb)
			}
			if na != nb {
				return na < nb
			}
			// Equal values: fewer leading zeros first
			if i-ia != j-ja {
				return i-ia < j-ja
			}
			continue
		}

		la, lb := lower(ca), lower(cb)
		if la != lb {
			return la < lb
		}
		i++
		j++
	}
	return len(a)-i < len(b)-j
}

// Sort orders names in place in natural order
func Sort(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return Less(names[i], names[j])
	})
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
