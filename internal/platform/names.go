package platform

import (
	"runtime"
	"strings"
)

// illegalChars are characters forbidden by common filesystem conventions.
// The Windows set is enforced on every platform so plans stay portable
// across drives and sync tools. Both separators count as path characters.
const illegalChars = `<>:"/\|?*`

// reservedDeviceNames are Windows device names that cannot be used as a
// file base name regardless of extension, case-insensitive.
var reservedDeviceNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// CaseInsensitive reports whether the host filesystem folds case when
// resolving names. Collision checks must fold names on such systems.
func CaseInsensitive() bool {
	return runtime.GOOS == "windows" || runtime.GOOS == "darwin"
}

// FoldName normalizes a file name for collision comparison
func FoldName(name string) string {
	if CaseInsensitive() {
		return strings.ToLower(name)
	}
	return name
}

// IllegalCharIn returns the first illegal character found in name, or 0.
// Control characters are always illegal.
func IllegalCharIn(name string) rune {
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			return r
		}
		if strings.ContainsRune(illegalChars, r) {
			return r
		}
	}
	return 0
}

// IsReservedDeviceName reports whether base (the name without extension)
// is a Windows reserved device name
func IsReservedDeviceName(base string) bool {
	return reservedDeviceNames[strings.ToUpper(base)]
}

// MaxNameLength is the longest file name, in bytes, accepted by the
// common filesystems this tool targets.
const MaxNameLength = 255

// HasUnsafeEdge reports whether name ends with a dot or a space. Windows
// strips those silently on creation, so the file would not carry the name
// it was given.
func HasUnsafeEdge(name string) bool {
	return strings.HasSuffix(name, ".") || strings.HasSuffix(name, " ")
}
