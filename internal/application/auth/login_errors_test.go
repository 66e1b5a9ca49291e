package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Piscinas-api/internal/application/auth"
)

// Los códigos conocidos devuelven su mensaje de producto.
func TestMessageForErrorCode_CodigosConocidos(t *testing.T) {
	cases := []struct {
		code  string
		title string
	}{
		{"no-organization", "Organization Setup Required"},
		{"invalid-credentials", "Invalid Credentials"},
		{"account-suspended", "Account Suspended"},
		{"oauth-failed", "Sign-in Failed"},
		{"session-expired", "Session Expired"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			e := auth.MessageForErrorCode(tc.code)
			assert.Equal(t, tc.code, e.Code)
			assert.Equal(t, tc.title, e.Title)
			assert.NotEmpty(t, e.Message)
		})
	}
}

// Un código desconocido recibe el mensaje genérico; el código crudo no se filtra.
func TestMessageForErrorCode_CodigoDesconocido(t *testing.T) {
	e := auth.MessageForErrorCode("totally-made-up")
	assert.Equal(t, "unknown", e.Code)
	assert.Equal(t, "Sign-in Error", e.Title)
	assert.NotContains(t, e.Message, "totally-made-up")
}

func TestMessageForErrorCode_CodigoVacio(t *testing.T) {
	e := auth.MessageForErrorCode("")
	assert.Equal(t, "unknown", e.Code)
}
