package service

import (
	"context"
	"testing"

	"tramitesbackend/internal/dto"
	"tramitesbackend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMovimientoSvc() (*MovimientoService[model.CargoNoRegistrado, *model.CargoNoRegistrado], *stubCrudRepo[model.Cliente], *stubCrudRepo[model.Tarjeta], *stubHistorialRepo) {
	clientes := newStubCrudRepo[model.Cliente]()
	tarjetas := newStubCrudRepo[model.Tarjeta]()
	hist := &stubHistorialRepo{}
	svc := NewMovimientoService[model.CargoNoRegistrado](newStubCrudRepo[model.CargoNoRegistrado](), clientes, tarjetas, hist)
	return svc, clientes, tarjetas, hist
}

func textoPtr(s string) *string { return &s }

func TestCrearMovimiento_CalculaRecargo(t *testing.T) {
	svc, clientes, tarjetas, hist := buildMovimientoSvc()
	cli := seedCliente(clientes, "Transportes Ruiz")
	tar := seedTarjeta(tarjetas, "4111", model.CuatroPorMilActivo)

	cargo, err := svc.Crear(context.Background(), nil, dto.MovimientoRequest{
		Cliente:     cli.ID,
		Tarjeta:     &tar.ID,
		Observacion: textoPtr("Pago matrícula"),
		Valor:       decimal.NewFromInt(500000),
		Fecha:       "2026-02-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "2000.00", cargo.CuatroPorMil.StringFixed(2))
	assert.Equal(t, "502000.00", cargo.Total.StringFixed(2))

	require.Len(t, hist.entradas, 1)
	assert.Equal(t, model.HistorialCreado, hist.entradas[0].Tipo)
	assert.Equal(t, "cargo_no_registrado", hist.entradas[0].Entidad)
}

func TestCrearMovimiento_TarjetaExentaNoRecarga(t *testing.T) {
	svc, clientes, tarjetas, _ := buildMovimientoSvc()
	cli := seedCliente(clientes, "Transportes Ruiz")
	tar := seedTarjeta(tarjetas, "4111", model.CuatroPorMilExento)

	cargo, err := svc.Crear(context.Background(), nil, dto.MovimientoRequest{
		Cliente: cli.ID,
		Tarjeta: &tar.ID,
		Valor:   decimal.NewFromInt(500000),
		Fecha:   "2026-02-10",
	})
	require.NoError(t, err)
	assert.True(t, cargo.CuatroPorMil.IsZero())
	assert.True(t, cargo.Total.Equal(cargo.Valor))
	assert.Nil(t, cargo.Observacion)
}

func TestCrearMovimiento_ClienteInexistente(t *testing.T) {
	svc, _, tarjetas, _ := buildMovimientoSvc()
	tar := seedTarjeta(tarjetas, "4111", model.CuatroPorMilActivo)

	_, err := svc.Crear(context.Background(), nil, dto.MovimientoRequest{
		Cliente: uuid.New(),
		Tarjeta: &tar.ID,
		Valor:   decimal.NewFromInt(100),
		Fecha:   "2026-02-10",
	})
	assert.ErrorContains(t, err, "El cliente especificado no existe.")
}

func TestCrearMovimiento_TarjetaEliminada(t *testing.T) {
	svc, clientes, tarjetas, _ := buildMovimientoSvc()
	cli := seedCliente(clientes, "Transportes Ruiz")
	tar := seedTarjeta(tarjetas, "4111", model.CuatroPorMilActivo)
	require.NoError(t, tarjetas.SoftDelete(context.Background(), tar.ID))

	_, err := svc.Crear(context.Background(), nil, dto.MovimientoRequest{
		Cliente: cli.ID,
		Tarjeta: &tar.ID,
		Valor:   decimal.NewFromInt(100),
		Fecha:   "2026-02-10",
	})
	assert.ErrorContains(t, err, "La tarjeta especificada está eliminada.")
}

func TestCrearMovimiento_FechaInvalida(t *testing.T) {
	svc, clientes, tarjetas, _ := buildMovimientoSvc()
	cli := seedCliente(clientes, "Transportes Ruiz")
	tar := seedTarjeta(tarjetas, "4111", model.CuatroPorMilActivo)

	_, err := svc.Crear(context.Background(), nil, dto.MovimientoRequest{
		Cliente: cli.ID,
		Tarjeta: &tar.ID,
		Valor:   decimal.NewFromInt(100),
		Fecha:   "10-02-2026",
	})
	assert.ErrorContains(t, err, "El formato del campo fecha debe ser YYYY-MM-DD.")
}

func TestActualizarMovimiento_RecalculaConNuevoValor(t *testing.T) {
	svc, clientes, tarjetas, _ := buildMovimientoSvc()
	cli := seedCliente(clientes, "Transportes Ruiz")
	tar := seedTarjeta(tarjetas, "4111", model.CuatroPorMilActivo)

	cargo, err := svc.Crear(context.Background(), nil, dto.MovimientoRequest{
		Cliente:     cli.ID,
		Tarjeta:     &tar.ID,
		Observacion: textoPtr("Pago matrícula"),
		Valor:       decimal.NewFromInt(500000),
		Fecha:       "2026-02-10",
	})
	require.NoError(t, err)

	nuevo := decimal.NewFromInt(750000)
	actualizado, err := svc.Actualizar(context.Background(), nil, cargo.ID, dto.ActualizarMovimientoRequest{Valor: &nuevo})
	require.NoError(t, err)
	assert.Equal(t, "3000.00", actualizado.CuatroPorMil.StringFixed(2))
	assert.Equal(t, "753000.00", actualizado.Total.StringFixed(2))
}

func TestActualizarMovimiento_CambioDeObservacionNoRecalcula(t *testing.T) {
	svc, clientes, tarjetas, _ := buildMovimientoSvc()
	cli := seedCliente(clientes, "Transportes Ruiz")
	tar := seedTarjeta(tarjetas, "4111", model.CuatroPorMilActivo)

	cargo, err := svc.Crear(context.Background(), nil, dto.MovimientoRequest{
		Cliente:     cli.ID,
		Tarjeta:     &tar.ID,
		Observacion: textoPtr("Pago matrícula"),
		Valor:       decimal.NewFromInt(500000),
		Fecha:       "2026-02-10",
	})
	require.NoError(t, err)

	actualizado, err := svc.Actualizar(context.Background(), nil, cargo.ID, dto.ActualizarMovimientoRequest{Observacion: textoPtr("Pago traspaso")})
	require.NoError(t, err)
	require.NotNil(t, actualizado.Observacion)
	assert.Equal(t, "Pago traspaso", *actualizado.Observacion)
	assert.True(t, actualizado.CuatroPorMil.Equal(cargo.CuatroPorMil))
}

func TestActualizarMovimiento_Eliminado(t *testing.T) {
	svc, clientes, tarjetas, _ := buildMovimientoSvc()
	cli := seedCliente(clientes, "Transportes Ruiz")
	tar := seedTarjeta(tarjetas, "4111", model.CuatroPorMilActivo)

	cargo, err := svc.Crear(context.Background(), nil, dto.MovimientoRequest{
		Cliente: cli.ID,
		Tarjeta: &tar.ID,
		Valor:   decimal.NewFromInt(100),
		Fecha:   "2026-02-10",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Eliminar(context.Background(), nil, cargo.ID))

	_, err = svc.Actualizar(context.Background(), nil, cargo.ID, dto.ActualizarMovimientoRequest{Observacion: textoPtr("y")})
	assert.ErrorContains(t, err, "El registro está eliminado.")
}
