package currencypkg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromCode(t *testing.T) {
	t.Parallel()

	got, err := FromCode("usd")
	require.NoError(t, err)
	require.Equal(t, "USD", got.Code)
	require.NotEmpty(t, got.Symbol)

	for _, blank := range []string{"", " ", "\t"} {
		_, err := FromCode(blank)
		require.ErrorIs(t, err, ErrCodeRequired)
	}

	_, err = FromCode("ABC")
	require.ErrorIs(t, err, ErrUnsupportedCode)
}

func TestCurrencyEquality(t *testing.T) {
	t.Parallel()

	c1, err := FromCode("USD")
	require.NoError(t, err)

	c2, err := FromCode("usd")
	require.NoError(t, err)

	require.Equal(t, c1, c2)

	eur, err := FromCode("EUR")
	require.NoError(t, err)
	require.NotEqual(t, c1, eur)
}

func TestIsSupportedCurrency(t *testing.T) {
	t.Parallel()

	for _, c := range SupportedCurrencies {
		require.True(t, IsSupportedCurrency(c))
	}

	require.False(t, IsSupportedCurrency("ABC"))
	require.False(t, IsSupportedCurrency(""))
}
