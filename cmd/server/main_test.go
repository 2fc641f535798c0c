package main

import (
	"testing"

	"caffind_backend/internal/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerHeader_PassesStrictParsing(t *testing.T) {
	for _, in := range []string{"abc.def", "Bearer abc.def"} {
		t.Run(in, func(t *testing.T) {
			header := bearerHeader(in)

			token, err := identity.TokenFromHeader(header, true)
			require.NoError(t, err)
			assert.Equal(t, "abc.def", token)
		})
	}
}

func TestNewRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"serve", "translate", "verify-token"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}
