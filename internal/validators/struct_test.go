package validators

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	ID    *string `json:"id" validate:"required,min=1"`
	Count *int    `json:"count,omitempty" validate:"required,gte=0"`
	Note  string  `json:"note"`
}

func TestStructReportsJSONNames(t *testing.T) {
	t.Parallel()

	fields, err := Struct(sample{})
	require.NoError(t, err)
	require.Equal(t, []string{"id", "count"}, fields)

	id, zero := "x", 0
	fields, err = Struct(sample{ID: &id, Count: &zero})
	require.NoError(t, err)
	require.Empty(t, fields)

	empty, neg := "", -1
	fields, err = Struct(sample{ID: &empty, Count: &neg})
	require.NoError(t, err)
	require.Equal(t, []string{"id", "count"}, fields)
}

func TestStructRejectsNonStruct(t *testing.T) {
	t.Parallel()

	_, err := Struct("texto")
	require.Error(t, err)
}
