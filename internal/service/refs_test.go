package service

import (
	"context"
	"testing"

	"tramitesbackend/internal/apierror"
	"tramitesbackend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindDe(t *testing.T, err error) apierror.Kind {
	t.Helper()
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	return apiErr.Kind
}

func TestValidarCliente_Inexistente(t *testing.T) {
	repo := newStubCrudRepo[model.Cliente]()

	_, err := validarCliente(context.Background(), repo, uuid.New())
	assert.Equal(t, apierror.KindNoEncontrado, kindDe(t, err))
	assert.EqualError(t, err, "El cliente especificado no existe.")
}

func TestValidarCliente_Eliminado(t *testing.T) {
	repo := newStubCrudRepo[model.Cliente]()
	cli := seedCliente(repo, "Pedro")
	marcarEliminado(cli, true)
	repo.items[cli.ID] = *cli

	_, err := validarCliente(context.Background(), repo, cli.ID)
	assert.Equal(t, apierror.KindEstadoInvalido, kindDe(t, err))
	assert.EqualError(t, err, "El cliente especificado está eliminado.")
}

func TestValidarTarjeta_Inexistente(t *testing.T) {
	repo := newStubCrudRepo[model.Tarjeta]()

	_, err := validarTarjeta(context.Background(), repo, uuid.New())
	assert.Equal(t, apierror.KindNoEncontrado, kindDe(t, err))
	assert.EqualError(t, err, "La tarjeta especificada no existe.")
}

func TestValidarEtiqueta_Inexistente(t *testing.T) {
	repo := newStubCrudRepo[model.Etiqueta]()

	_, err := validarEtiqueta(context.Background(), repo, uuid.New())
	assert.Equal(t, apierror.KindNoEncontrado, kindDe(t, err))
	assert.EqualError(t, err, "La etiqueta especificada no existe.")
}

func TestValidarPrecioCliente_Inexistente(t *testing.T) {
	repo := newStubCrudRepo[model.PrecioCliente]()

	_, err := validarPrecioCliente(context.Background(), repo, uuid.New())
	assert.Equal(t, apierror.KindNoEncontrado, kindDe(t, err))
	assert.EqualError(t, err, "El precio especificado no existe.")
}

func TestValidarPrecioCliente_Valido(t *testing.T) {
	repo := newStubCrudRepo[model.PrecioCliente]()
	precio := &model.PrecioCliente{
		ClienteID:   uuid.New(),
		Descripcion: "Tecnomecánica",
		Precio:      decimal.NewFromInt(250000),
	}
	require.NoError(t, repo.Create(context.Background(), precio))

	encontrado, err := validarPrecioCliente(context.Background(), repo, precio.ID)
	require.NoError(t, err)
	assert.Equal(t, precio.ID, encontrado.ID)
}

func TestValidarGasto_Inexistente(t *testing.T) {
	repo := newStubCrudRepo[model.Gasto]()

	_, err := validarGasto(context.Background(), repo, uuid.New())
	assert.Equal(t, apierror.KindNoEncontrado, kindDe(t, err))
	assert.EqualError(t, err, "El gasto especificado no existe.")
}

func TestValidarGasto_Eliminado(t *testing.T) {
	repo := newStubCrudRepo[model.Gasto]()
	g := &model.Gasto{Nombre: "Papelería", Descripcion: "Papelería"}
	require.NoError(t, repo.Create(context.Background(), g))
	marcarEliminado(g, true)
	repo.items[g.ID] = *g

	_, err := validarGasto(context.Background(), repo, g.ID)
	assert.Equal(t, apierror.KindEstadoInvalido, kindDe(t, err))
	assert.EqualError(t, err, "El gasto especificado está eliminado.")
}
