// file: internal/args/args.go

package args

import "strings"

// Legacy multi-letter single-dash flags and their long spellings. pflag
// would read "-na" as "-n a".
var legacyFlags = map[string]string{
	"-na": "--numeric-array",
	"-ca": "--char-array",
}

// Flags whose next argument is a value
var valueFlags = map[string]bool{
	"-f": true, "--file": true,
	"-o": true, "--output": true,
	"-a": true, "--address": true,
	"-v": true, "--variables": true,
	"-l": true, "--line": true,
	"-n": true, "--name": true,
}

// Normalize rewrites legacy flag spellings to their long form and strips
// one pair of surrounding double quotes from flag values
func Normalize(argv []string) []string {
	out := make([]string, 0, len(argv))
	for i := 0; i < len(argv); i++ {
		a := argv[i]
		if long, ok := legacyFlags[a]; ok {
			out = append(out, long)
			continue
		}
		out = append(out, a)
		if valueFlags[a] && i+1 < len(argv) {
			i++
			out = append(out, unquote(argv[i]))
		}
	}
	return out
}

// Has reports whether any of names appears as a flag in argv
func Has(argv []string, names ...string) bool {
	for i := 0; i < len(argv); i++ {
		for _, n := range names {
			if argv[i] == n {
				return true
			}
		}
		if valueFlags[argv[i]] {
			i++
		}
	}
	return false
}

func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
