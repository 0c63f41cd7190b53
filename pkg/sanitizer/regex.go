package sanitizer

import "regexp"

// \D in RE2 is anything but ASCII 0-9.
var nonDigitRegex = regexp.MustCompile(`\D`)
