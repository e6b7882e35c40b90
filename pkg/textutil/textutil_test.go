package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viapro/armazem-api/pkg/textutil"
)

func TestNormalize_RemoveAcentosEBaixaCaixa(t *testing.T) {
	assert.Equal(t, "valvula", textutil.Normalize("Válvula"))
	assert.Equal(t, "joao pereira", textutil.Normalize("João Pereira"))
	assert.Equal(t, "chapa", textutil.Normalize("chapa"))
	assert.Equal(t, "", textutil.Normalize(""))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, textutil.ContainsFold("Válvula de esfera 1/2\"", "valvula"))
	assert.True(t, textutil.ContainsFold("Cabo de aço", "AÇO"))
	assert.False(t, textutil.ContainsFold("Chapa galvanizada", "parafuso"))
}
