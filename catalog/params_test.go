package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateParameters(t *testing.T) {
	r := Default()
	argon, err := r.Get("argon2id")
	require.NoError(t, err)

	t.Run("valid values", func(t *testing.T) {
		err := ValidateParameters(argon, map[string]string{
			"salt":        "c2FsdHNhbHQ",
			"time":        "3",
			"memory":      "65536",
			"parallelism": "4",
		})
		require.NoError(t, err)
	})

	t.Run("missing required parameter", func(t *testing.T) {
		err := ValidateParameters(argon, map[string]string{
			"time":        "3",
			"memory":      "65536",
			"parallelism": "4",
		})
		require.ErrorIs(t, err, ErrMissingParameter)
	})

	t.Run("unknown parameter rejected", func(t *testing.T) {
		err := ValidateParameters(argon, map[string]string{
			"salt":        "s",
			"time":        "3",
			"memory":      "65536",
			"parallelism": "4",
			"pepper":      "??",
		})
		require.ErrorIs(t, err, ErrUnknownParameter)
	})

	t.Run("non-numeric value for number parameter", func(t *testing.T) {
		err := ValidateParameters(argon, map[string]string{
			"salt":        "s",
			"time":        "lots",
			"memory":      "65536",
			"parallelism": "4",
		})
		require.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("bounds enforced", func(t *testing.T) {
		err := ValidateParameters(argon, map[string]string{
			"salt":        "s",
			"time":        "0",
			"memory":      "65536",
			"parallelism": "4",
		})
		require.ErrorIs(t, err, ErrInvalidParameter)

		err = ValidateParameters(argon, map[string]string{
			"salt":        "s",
			"time":        "3",
			"memory":      "65536",
			"parallelism": "300",
		})
		require.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("optional parameters may be omitted", func(t *testing.T) {
		simhash, err := r.Get("simhash")
		require.NoError(t, err)
		require.NoError(t, ValidateParameters(simhash, nil))
		require.NoError(t, ValidateParameters(simhash, map[string]string{"shingle": "3"}))
	})

	t.Run("no schema accepts no values", func(t *testing.T) {
		sha, err := r.Get("sha256")
		require.NoError(t, err)
		require.NoError(t, ValidateParameters(sha, nil))
		require.ErrorIs(t, ValidateParameters(sha, map[string]string{"seed": "1"}), ErrUnknownParameter)
	})
}
