package validators

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigitsOnly(t *testing.T) {
	t.Parallel()

	require.Equal(t, "5586989038050", DigitsOnly("+55 (86) 98903-8050"))
	require.Empty(t, DigitsOnly("abc"))
}

func TestIsValidPhone(t *testing.T) {
	t.Parallel()

	require.True(t, IsValidPhone("(86) 98903-8050"))
	require.True(t, IsValidPhone("+55 86 98903 8050"))
	require.False(t, IsValidPhone("123"))
	require.False(t, IsValidPhone("0800"))
}

func TestNormalizeBRPhone(t *testing.T) {
	t.Parallel()

	require.Equal(t, "5586989038050", NormalizeBRPhone("(86) 98903-8050"))
	require.Equal(t, "5586989038050", NormalizeBRPhone("+55 86 98903-8050"))
}
