package utils

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// SecureFilename turns a client supplied filename into a safe bare name made of
// ASCII letters, digits, '_', '.' and '-'. Path separators become word breaks,
// so "../../etc/passwd.jpg" yields "etc_passwd.jpg". The result may be empty.
func SecureFilename(name string) string {
	name = norm.NFKD.String(name)

	var ascii strings.Builder
	for _, r := range name {
		if r < utf8.RuneSelf {
			ascii.WriteRune(r)
		}
	}
	name = strings.NewReplacer("/", " ", `\`, " ").Replace(ascii.String())
	name = strings.Join(strings.Fields(name), "_")

	var out strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '.', r == '-':
			out.WriteRune(r)
		}
	}
	return strings.Trim(out.String(), "._")
}
