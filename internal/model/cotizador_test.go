package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEtapaNombre(t *testing.T) {
	assert.Equal(t, "Cotizador", EtapaCotizador.Nombre())
	assert.Equal(t, "Trámite", EtapaTramite.Nombre())
	assert.Equal(t, "Confirmación", EtapaConfirmacion.Nombre())
	assert.Equal(t, "Cargaro", EtapaCargarPdf.Nombre())
}

func TestPasosAvance_NoIncluyeCotizador(t *testing.T) {
	// The first stage is the starting point; it can only be reached by revert.
	_, ok := PasosAvance["cotizador"]
	assert.False(t, ok)
	assert.Equal(t, EtapaTramite, PasosAvance["tramite"])
	assert.Equal(t, EtapaConfirmacion, PasosAvance["confirmacion"])
	assert.Equal(t, EtapaCargarPdf, PasosAvance["cargaro"])
}

func TestPasosReversion_NoIncluyeCargaro(t *testing.T) {
	_, ok := PasosReversion["cargaro"]
	assert.False(t, ok)
	assert.Equal(t, EtapaCotizador, PasosReversion["cotizador"])
	assert.Equal(t, EtapaTramite, PasosReversion["tramite"])
	assert.Equal(t, EtapaConfirmacion, PasosReversion["confirmacion"])
}

func TestCotizadorMarshalJSON_FlagsDerivados(t *testing.T) {
	cot := Cotizador{Etapa: EtapaConfirmacion}

	raw, err := json.Marshal(cot)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.Equal(t, "0", out["cotizador_estado"])
	assert.Equal(t, "0", out["tramite_estado"])
	assert.Equal(t, "1", out["confirmacion_estado"])
	assert.Equal(t, "0", out["cargar_pdf_estado"])

	// The ordinal never leaks to the wire.
	_, expuesta := out["etapa"]
	assert.False(t, expuesta)
}

func TestTipoDocumentoValido(t *testing.T) {
	for _, tipo := range []string{DocumentoCC, DocumentoCE, DocumentoNIT, DocumentoPAS} {
		assert.True(t, TipoDocumentoValido(tipo), tipo)
	}
	assert.False(t, TipoDocumentoValido("TI"))
	assert.False(t, TipoDocumentoValido(""))
}
