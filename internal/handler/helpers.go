package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"tramitesbackend/internal/apierror"
	"tramitesbackend/internal/dto"
	"tramitesbackend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Error messages name fields as the API exposes them.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func mensajeValidacion(fe validator.FieldError) string {
	campo := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es requerido.", campo)
	case "email":
		return fmt.Sprintf("El campo %s debe ser un correo válido.", campo)
	case "oneof":
		return fmt.Sprintf("El campo %s debe ser uno de: %s.", campo, strings.Join(strings.Fields(fe.Param()), ", "))
	case "len":
		return fmt.Sprintf("El campo %s debe tener %s caracteres.", campo, fe.Param())
	case "min":
		return fmt.Sprintf("El campo %s es demasiado corto.", campo)
	default:
		return fmt.Sprintf("El campo %s no es válido.", campo)
	}
}

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var fes validator.ValidationErrors
		if errors.As(err, &fes) && len(fes) > 0 {
			c.JSON(http.StatusBadRequest, apierror.New(mensajeValidacion(fes[0])))
			return false
		}
		c.JSON(http.StatusBadRequest, apierror.New("Solicitud inválida."))
		return false
	}
	return true
}

// respondError maps service errors to HTTP statuses. Unexpected errors are
// delegated to the ErrorHandler middleware, which logs them and answers with
// a generic 500.
func respondError(c *gin.Context, err error) {
	status := apierror.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		return
	}
	var ae *apierror.Error
	msg := err.Error()
	if errors.As(err, &ae) {
		msg = ae.Mensaje
	}
	c.JSON(status, apierror.New(msg))
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido."))
		return uuid.Nil, false
	}
	return id, true
}

const pageSizePorDefecto = 10

// parsePagina returns page and page_size; anything unusable falls back to the
// defaults without complaint.
func parsePagina(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.Query("page_size"))
	if err != nil || pageSize < 1 {
		pageSize = pageSizePorDefecto
	}
	return page, pageSize
}

// parseListQuery reads the shared list parameters: free-text search, the
// deleted-rows toggle, pagination, the created_at range and the domain date
// range. Date filters are inclusive at both ends.
func parseListQuery(c *gin.Context) (repository.ListaOpciones, bool) {
	opts := repository.ListaOpciones{
		Busqueda:          c.Query("search"),
		IncluirEliminados: c.Query("include_deleted") == "1",
	}
	opts.Page, opts.PageSize = parsePagina(c)

	var ok bool
	if opts.CreatedDesde, ok = parseFechaQuery(c, "start_date", "El formato de la fecha de inicio debe ser YYYY-MM-DD.", false); !ok {
		return opts, false
	}
	if opts.CreatedHasta, ok = parseFechaQuery(c, "end_date", "El formato de la fecha de fin debe ser YYYY-MM-DD.", true); !ok {
		return opts, false
	}
	if opts.FechaDesde, ok = parseFechaQuery(c, "fecha_start", "El formato de la fecha de inicio debe ser YYYY-MM-DD.", false); !ok {
		return opts, false
	}
	if opts.FechaHasta, ok = parseFechaQuery(c, "fecha_end", "El formato de la fecha de fin debe ser YYYY-MM-DD.", true); !ok {
		return opts, false
	}
	return opts, true
}

// parseFechaQuery parses a YYYY-MM-DD query parameter. End bounds cover the
// whole named day, so they come back shifted to the next midnight.
func parseFechaQuery(c *gin.Context, nombre, mensaje string, fin bool) (*time.Time, bool) {
	valor := c.Query(nombre)
	if valor == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", valor)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(mensaje))
		return nil, false
	}
	if fin {
		t = t.AddDate(0, 0, 1)
	}
	return &t, true
}

// paginar builds the DRF-style page envelope with absolute next/previous links.
func paginar(c *gin.Context, count int64, page, pageSize int, results any) dto.Pagina {
	pagina := dto.Pagina{Count: count, Results: results}

	enlace := func(destino int) *string {
		u := *c.Request.URL
		q := u.Query()
		q.Set("page", strconv.Itoa(destino))
		u.RawQuery = q.Encode()
		s := u.String()
		return &s
	}
	if int64(page*pageSize) < count {
		pagina.Next = enlace(page + 1)
	}
	if page > 1 {
		pagina.Previous = enlace(page - 1)
	}
	return pagina
}
