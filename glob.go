// glob.go - path-pattern matching for the configuration table and MIDI routing

package ggm

// globMatch reports whether s matches pattern, where '?' matches
// exactly one character and '*' matches any run of characters
// (including none). There is no escape character and consecutive '*'
// are not supported ("**" does not match an empty string) - the same
// contract the
// configuration table and CC-routing table rely on.
//
// This is the straightforward recursive formulation: patterns here are
// short, fixed, compile-time strings, so recursion depth is bounded and
// not worth trading readability for an iterative two-pointer rewrite.
func globMatch(pattern, s string) bool {
	if pattern == "" {
		return s == ""
	}
	p0 := pattern[0]
	if p0 == '*' {
		if len(pattern) > 1 && s == "" {
			return false
		}
		if s != "" && globMatch(pattern, s[1:]) {
			return true
		}
		return globMatch(pattern[1:], s)
	}
	if s == "" {
		return false
	}
	if p0 == '?' || p0 == s[0] {
		return globMatch(pattern[1:], s[1:])
	}
	return false
}
