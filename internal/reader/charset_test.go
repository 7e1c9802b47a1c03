package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestCodeset(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{locale: "en_US.UTF-8", want: "UTF-8"},
		{locale: "de_DE.ISO-8859-15@euro", want: "ISO-8859-15"},
		{locale: "C", want: ""},
		{locale: "POSIX", want: ""},
		{locale: "sr_RS@latin", want: ""},
		{locale: "C.utf8", want: "utf8"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, codeset(tt.locale))
		})
	}
}

func TestLookupCharset(t *testing.T) {
	enc, err := LookupCharset("utf8")
	require.NoError(t, err)
	assert.Equal(t, unicode.UTF8, enc)

	enc, err = LookupCharset("ISO-8859-1")
	require.NoError(t, err)
	assert.Equal(t, charmap.ISO8859_1, enc)

	enc, err = LookupCharset("windows-1252")
	require.NoError(t, err)
	assert.Equal(t, charmap.Windows1252, enc)

	_, err = LookupCharset("")
	assert.ErrorIs(t, err, ErrUnsupportedCharset)

	_, err = LookupCharset("no-such-charset")
	assert.ErrorIs(t, err, ErrUnsupportedCharset)
}

func TestHostCharset(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T)
	}{
		{
			name: "unset locale",
			env:  map[string]string{"LC_ALL": "", "LC_CTYPE": "", "LANG": ""},
		},
		{
			name: "posix locale",
			env:  map[string]string{"LC_ALL": "POSIX", "LC_CTYPE": "", "LANG": ""},
		},
		{
			name: "unknown codeset",
			env:  map[string]string{"LC_ALL": "", "LC_CTYPE": "xx_XX.NOPE", "LANG": ""},
		},
		{
			name: "utf-8 lang",
			env:  map[string]string{"LC_ALL": "", "LC_CTYPE": "", "LANG": "en_US.UTF-8"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, unicode.UTF8, HostCharset())
		})
	}
}

func TestHostCharset_Precedence(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_CTYPE", "de_DE.ISO-8859-1")
	t.Setenv("LANG", "en_US.UTF-8")

	assert.Equal(t, charmap.ISO8859_1, HostCharset())
}
