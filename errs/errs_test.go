package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	require := require.New(t)

	err := New(KindHeaderInvalid, "signature", []byte{0, 0, 0, 0}, "B000")
	require.Equal(`HeaderInvalid: field=signature got=[0 0 0 0] want=B000`, err.Error())
}

func TestErrorsIsSentinel(t *testing.T) {
	require := require.New(t)

	err := New(KindElementSizeConflict, "block7", 4, 8)
	require.True(errors.Is(err, KindOnly(KindElementSizeConflict)))
	require.False(errors.Is(err, KindOnly(KindAccessionInvalid)))
}

func TestAs(t *testing.T) {
	require := require.New(t)

	err := New(KindUnsupportedDtype, "dtype", byte(9), nil)
	e, ok := As(err)
	require.True(ok)
	require.Equal(KindUnsupportedDtype, e.Kind)
}
