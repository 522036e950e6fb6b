package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/frota-api/pkg/jwt"
)

func TestGenerateYParse(t *testing.T) {
	tok, err := pkgjwt.Generate("secreto", "u-1", "op@pm.gov.br", "frota-test", 5)
	require.NoError(t, err)

	userID, email, err := pkgjwt.Parse("secreto", tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, "op@pm.gov.br", email)
}

func TestParse_FirmaIncorrectaYExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate("secreto", "u-1", "op@pm.gov.br", "frota-test", 5)
	require.NoError(t, err)
	_, _, err = pkgjwt.Parse("otro", tok)
	assert.Error(t, err)

	expired, err := pkgjwt.Generate("secreto", "u-1", "op@pm.gov.br", "frota-test", -1)
	require.NoError(t, err)
	_, _, err = pkgjwt.Parse("secreto", expired)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "u-1", "e", "i", 5)
	assert.Error(t, err)
	_, _, err = pkgjwt.Parse("", "x")
	assert.Error(t, err)
}
