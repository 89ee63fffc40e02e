package quote_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shiro/map2-legacy/quote"
)

func TestUnquote(t *testing.T) {
	value, n, ok := quote.Unquote([]byte(`"abc"`))
	require.True(t, ok)
	require.Equal(t, "abc", value)
	require.Equal(t, 5, n)

	value, n, ok = quote.Unquote([]byte(`"a\nb" rest`))
	require.True(t, ok)
	require.Equal(t, "a\nb", value)
	require.Equal(t, 6, n)

	value, n, ok = quote.Unquote([]byte(`""`))
	require.True(t, ok)
	require.Equal(t, "", value)
	require.Equal(t, 2, n)

	_, _, ok = quote.Unquote([]byte(`"abc`))
	require.False(t, ok)

	_, _, ok = quote.Unquote([]byte("\"a\nb\""))
	require.False(t, ok)

	_, _, ok = quote.Unquote([]byte(`"a\qb"`))
	require.False(t, ok)

	_, _, ok = quote.Unquote([]byte(`abc`))
	require.False(t, ok)
}

func TestQuote(t *testing.T) {
	require.Equal(t, `"abc"`, quote.Quote("abc"))
	require.Equal(t, `"a\nb"`, quote.Quote("a\nb"))
	require.Equal(t, `"say \"hi\""`, quote.Quote(`say "hi"`))

	for _, s := range []string{"", "abc", "a\tb\r\n", `\ and "`} {
		value, n, ok := quote.Unquote([]byte(quote.Quote(s)))
		require.True(t, ok)
		require.Equal(t, s, value)
		require.Equal(t, len(quote.Quote(s)), n)
	}
}
