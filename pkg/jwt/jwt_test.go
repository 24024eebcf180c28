package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/textil-lotes/pkg/jwt"
)

const testSecret = "secreto-solo-para-tests"

func TestGenerateYParse(t *testing.T) {
	token, err := jwt.Generate(testSecret, "u1", "Maria", "textil-lotes-test", 60)
	require.NoError(t, err)

	userID, userName, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "Maria", userName)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate(testSecret, "u1", "Maria", "textil-lotes-test", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro-secreto", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(testSecret, "u1", "Maria", "textil-lotes-test", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse(testSecret, token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "u1", "Maria", "iss", 60)
	assert.Error(t, err)
}
