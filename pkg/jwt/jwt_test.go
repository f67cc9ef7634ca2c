package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturation-api/pkg/jwt"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate("secreto", "user-1", "company-1", "admin", "facturation", time.Hour)
	require.NoError(t, err)

	claims, err := jwt.Parse("secreto", "facturation", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "company-1", claims.CompanyID)
	assert.Equal(t, "admin", claims.Role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate("secreto", "user-1", "company-1", "", "", time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse("otro", "", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := jwt.Generate("secreto", "user-1", "company-1", "", "", -time.Minute)
	require.NoError(t, err)

	_, err = jwt.Parse("secreto", "", token)
	assert.Error(t, err)
}

func TestParse_EmisorDistinto(t *testing.T) {
	token, err := jwt.Generate("secreto", "user-1", "company-1", "", "otro-emisor", time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse("secreto", "facturation", token)
	assert.Error(t, err)
}

func TestParse_SinEmpresa(t *testing.T) {
	token, err := jwt.Generate("secreto", "user-1", "", "", "", time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse("secreto", "", token)
	assert.Error(t, err)
}

func TestSecretoVacio(t *testing.T) {
	_, err := jwt.Generate("", "u", "c", "", "", time.Hour)
	assert.ErrorIs(t, err, jwt.ErrEmptySecret)
	_, err = jwt.Parse("", "", "x")
	assert.ErrorIs(t, err, jwt.ErrEmptySecret)
}
