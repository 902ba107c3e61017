package service

import (
	"context"
	"testing"

	"tramitesbackend/internal/dto"
	"tramitesbackend/internal/model"
	"tramitesbackend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildClienteSvc() (*ClienteService, *stubCrudRepo[model.Cliente], *stubHistorialRepo) {
	clientes := newStubCrudRepo[model.Cliente]()
	hist := &stubHistorialRepo{}
	return NewClienteService(clientes, newStubCrudRepo[model.PrecioCliente](), hist), clientes, hist
}

func TestCrearCliente_MedioPorDefecto(t *testing.T) {
	svc, _, hist := buildClienteSvc()
	usuario := uuid.New()

	cli, err := svc.Crear(context.Background(), &usuario, dto.CrearClienteRequest{Nombre: "Transportes Ruiz"})
	require.NoError(t, err)
	assert.Equal(t, model.MedioEmail, cli.MedioComunicacion)
	assert.Equal(t, usuario, *cli.CreatedByID)

	require.Len(t, hist.entradas, 1)
	assert.Equal(t, model.HistorialCreado, hist.entradas[0].Tipo)
	assert.Equal(t, "cliente", hist.entradas[0].Entidad)
}

func TestActualizarCliente_CamposParciales(t *testing.T) {
	svc, clientes, _ := buildClienteSvc()
	cli := seedCliente(clientes, "Transportes Ruiz")

	tel := "3001234567"
	actualizado, err := svc.Actualizar(context.Background(), nil, cli.ID, dto.ActualizarClienteRequest{Telefono: &tel})
	require.NoError(t, err)
	assert.Equal(t, "Transportes Ruiz", actualizado.Nombre)
	assert.Equal(t, "3001234567", *actualizado.Telefono)
}

func TestCrearPrecio_ClienteInexistente(t *testing.T) {
	svc, _, _ := buildClienteSvc()

	_, err := svc.CrearPrecio(context.Background(), nil, uuid.New(), dto.CrearPrecioClienteRequest{
		Descripcion: "Traspaso moto",
		Precio:      decimal.NewFromInt(90000),
	})
	assert.ErrorContains(t, err, "No encontrado.")
}

func TestPrecios_CicloCompleto(t *testing.T) {
	svc, clientes, _ := buildClienteSvc()
	cli := seedCliente(clientes, "Transportes Ruiz")
	ctx := context.Background()

	precio, err := svc.CrearPrecio(ctx, nil, cli.ID, dto.CrearPrecioClienteRequest{
		Descripcion: "Traspaso moto",
		Precio:      decimal.NewFromInt(90000),
		Comision:    decimal.NewFromInt(10000),
	})
	require.NoError(t, err)
	assert.Equal(t, cli.ID, precio.ClienteID)

	nuevo := decimal.NewFromInt(95000)
	precio, err = svc.ActualizarPrecio(ctx, nil, cli.ID, precio.ID, dto.ActualizarPrecioClienteRequest{Precio: &nuevo})
	require.NoError(t, err)
	assert.True(t, precio.Precio.Equal(nuevo))

	require.NoError(t, svc.EliminarPrecio(ctx, nil, cli.ID, precio.ID))

	// Deleted prices drop out of the listing.
	precios, total, err := svc.ListarPrecios(ctx, cli.ID, repository.ListaOpciones{})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
	assert.Empty(t, precios)
}

func TestPrecios_DeOtroClienteNoSonAccesibles(t *testing.T) {
	svc, clientes, _ := buildClienteSvc()
	duenio := seedCliente(clientes, "Transportes Ruiz")
	otro := seedCliente(clientes, "Logística Prado")
	ctx := context.Background()

	precio, err := svc.CrearPrecio(ctx, nil, duenio.ID, dto.CrearPrecioClienteRequest{
		Descripcion: "Traspaso moto",
		Precio:      decimal.NewFromInt(90000),
	})
	require.NoError(t, err)

	nuevo := decimal.NewFromInt(95000)
	_, err = svc.ActualizarPrecio(ctx, nil, otro.ID, precio.ID, dto.ActualizarPrecioClienteRequest{Precio: &nuevo})
	assert.ErrorContains(t, err, "No encontrado.")

	err = svc.EliminarPrecio(ctx, nil, otro.ID, precio.ID)
	assert.ErrorContains(t, err, "No encontrado.")

	// El dueño sigue pudiendo modificarlo.
	_, err = svc.ActualizarPrecio(ctx, nil, duenio.ID, precio.ID, dto.ActualizarPrecioClienteRequest{Precio: &nuevo})
	require.NoError(t, err)
}
