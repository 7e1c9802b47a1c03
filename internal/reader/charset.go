package reader

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// localeVariables are consulted in order; the first non-empty one names the
// host locale.
var localeVariables = []string{"LC_ALL", "LC_CTYPE", "LANG"}

// HostCharset returns the encoding of the host locale, derived from the
// codeset of LC_ALL, LC_CTYPE or LANG (e.g. "de_DE.ISO-8859-1@euro").
// The C and POSIX locales, an unset locale and unknown codesets yield UTF-8.
func HostCharset() encoding.Encoding {
	for _, name := range localeVariables {
		locale := os.Getenv(name)
		if locale == "" {
			continue
		}

		cs := codeset(locale)
		if cs == "" {
			return unicode.UTF8
		}
		enc, err := LookupCharset(cs)
		if err != nil {
			return unicode.UTF8
		}
		return enc
	}

	return unicode.UTF8
}

// LookupCharset resolves a charset name through the IANA registry, falling
// back to the WHATWG names. Names known to the registry but without a
// decoder are reported as unsupported.
func LookupCharset(name string) (encoding.Encoding, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "":
		return nil, fmt.Errorf("%w: empty name", ErrUnsupportedCharset)
	case "utf8", "utf-8":
		return unicode.UTF8, nil
	}

	if enc, err := ianaindex.IANA.Encoding(normalized); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(normalized); err == nil {
		return enc, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedCharset, name)
}

// codeset extracts the codeset part of a POSIX locale name:
// language[_territory][.codeset][@modifier].
func codeset(locale string) string {
	locale, _, _ = strings.Cut(locale, "@")
	_, cs, found := strings.Cut(locale, ".")
	if !found {
		return ""
	}
	return cs
}
