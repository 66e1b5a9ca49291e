package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Piscinas-api/internal/application/usecase"
)

// "Núñez" y "nunez" deben producir el mismo término de búsqueda.
func TestNormalizeSearch(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Núñez", "nunez"},
		{"  GARCÍA  ", "garcia"},
		{"piscina peñalosa", "piscina penalosa"},
		{"sin acentos", "sin acentos"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, usecase.NormalizeSearch(tc.in), "entrada: %q", tc.in)
	}
}
