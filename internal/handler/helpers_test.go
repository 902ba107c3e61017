package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tramitesbackend/internal/apierror"
	"tramitesbackend/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextoConQuery(t *testing.T, rawQuery string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/tarjetas/list/?"+rawQuery, nil)
	return c, w
}

func TestParseListQuery_Defaults(t *testing.T) {
	c, _ := contextoConQuery(t, "")

	opts, ok := parseListQuery(c)
	require.True(t, ok)
	assert.Equal(t, 1, opts.Page)
	assert.Equal(t, pageSizePorDefecto, opts.PageSize)
	assert.False(t, opts.IncluirEliminados)
	assert.Nil(t, opts.CreatedDesde)
}

func TestParseListQuery_IncluirEliminados(t *testing.T) {
	c, _ := contextoConQuery(t, "include_deleted=1")
	opts, ok := parseListQuery(c)
	require.True(t, ok)
	assert.True(t, opts.IncluirEliminados)

	// Anything that is not exactly "1" leaves deleted rows hidden.
	c, _ = contextoConQuery(t, "include_deleted=true")
	opts, ok = parseListQuery(c)
	require.True(t, ok)
	assert.False(t, opts.IncluirEliminados)
}

func TestParseListQuery_PaginacionInvalidaUsaDefaults(t *testing.T) {
	c, _ := contextoConQuery(t, "page=abc&page_size=-5")

	opts, ok := parseListQuery(c)
	require.True(t, ok)
	assert.Equal(t, 1, opts.Page)
	assert.Equal(t, pageSizePorDefecto, opts.PageSize)
}

func TestParseListQuery_RangoDeFechas(t *testing.T) {
	c, _ := contextoConQuery(t, "start_date=2026-02-01&end_date=2026-02-28")

	opts, ok := parseListQuery(c)
	require.True(t, ok)
	require.NotNil(t, opts.CreatedDesde)
	require.NotNil(t, opts.CreatedHasta)
	assert.Equal(t, 1, opts.CreatedDesde.Day())
	// End bound covers the whole last day: shifted to the next midnight.
	assert.Equal(t, 1, opts.CreatedHasta.Day())
	assert.Equal(t, 3, int(opts.CreatedHasta.Month()))
}

func TestParseListQuery_FechaInicioInvalida(t *testing.T) {
	c, w := contextoConQuery(t, "start_date=01-02-2026")

	_, ok := parseListQuery(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "El formato de la fecha de inicio debe ser YYYY-MM-DD.")
}

func TestParseListQuery_FechaFinInvalida(t *testing.T) {
	c, w := contextoConQuery(t, "fecha_end=2026/02/28")

	_, ok := parseListQuery(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "El formato de la fecha de fin debe ser YYYY-MM-DD.")
}

func TestPaginar_Enlaces(t *testing.T) {
	c, _ := contextoConQuery(t, "page=2&search=soat")

	pagina := paginar(c, 35, 2, 10, []string{})
	assert.EqualValues(t, 35, pagina.Count)
	require.NotNil(t, pagina.Next)
	assert.Contains(t, *pagina.Next, "page=3")
	assert.Contains(t, *pagina.Next, "search=soat")
	require.NotNil(t, pagina.Previous)
	assert.Contains(t, *pagina.Previous, "page=1")
}

func TestPaginar_PrimeraYUltimaPagina(t *testing.T) {
	c, _ := contextoConQuery(t, "")

	pagina := paginar(c, 25, 1, 10, nil)
	assert.Nil(t, pagina.Previous)
	require.NotNil(t, pagina.Next)

	pagina = paginar(c, 25, 3, 10, nil)
	assert.Nil(t, pagina.Next)
	require.NotNil(t, pagina.Previous)
}

func TestBindAndValidate_MensajesPorCampo(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type cuerpo struct {
		Nombre string `json:"nombre" validate:"required"`
		Correo string `json:"correo" validate:"omitempty,email"`
	}

	hacer := func(body string) (*httptest.ResponseRecorder, bool) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		var dst cuerpo
		return w, bindAndValidate(c, &dst)
	}

	w, ok := hacer(`{"correo":"x@example.com"}`)
	assert.False(t, ok)
	assert.Contains(t, w.Body.String(), "El campo nombre es requerido.")

	w, ok = hacer(`{"nombre":"Ana","correo":"no-es-correo"}`)
	assert.False(t, ok)
	assert.Contains(t, w.Body.String(), "El campo correo debe ser un correo válido.")

	_, ok = hacer(`{"nombre":"Ana","correo":"x@example.com"}`)
	assert.True(t, ok)
}

func TestBindAndValidate_MovimientoExigeTarjeta(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hacer := func(body string) (*httptest.ResponseRecorder, bool) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		var dst dto.MovimientoRequest
		return w, bindAndValidate(c, &dst)
	}

	cliente := uuid.New().String()
	tarjeta := uuid.New().String()

	w, ok := hacer(`{"cliente":"` + cliente + `","valor":"100","fecha":"2026-02-10"}`)
	assert.False(t, ok)
	assert.Contains(t, w.Body.String(), "El campo tarjeta es requerido.")

	// La observación es opcional.
	_, ok = hacer(`{"cliente":"` + cliente + `","tarjeta":"` + tarjeta + `","valor":"100","fecha":"2026-02-10"}`)
	assert.True(t, ok)
}

func TestBindAndValidate_CotizadorExigeComision(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	cuerpo := `{"cliente":"` + uuid.New().String() + `","etiqueta":"` + uuid.New().String() +
		`","precio_cliente":"` + uuid.New().String() + `","descripcion":"Traspaso","precio_lay":"90000",` +
		`"placa":"ABC123","clindraje":"125","modelo":"2024","chasis":"9FSKT01258",` +
		`"numero_documento":"1020304050","nombre_completo":"Carlos Gómez","telefono":"3001234567",` +
		`"correo":"carlos@example.com","direccion":"Cra 10 # 20-30"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(cuerpo))
	c.Request.Header.Set("Content-Type", "application/json")

	var dst dto.CrearCotizadorRequest
	ok := bindAndValidate(c, &dst)
	assert.False(t, ok)
	assert.Contains(t, w.Body.String(), "El campo comision es requerido.")
}

func TestRespondError_MapeaEstados(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, apierror.NoEncontrado("No encontrado."))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var cuerpo map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cuerpo))
	assert.Equal(t, "No encontrado.", cuerpo["error"])
}
