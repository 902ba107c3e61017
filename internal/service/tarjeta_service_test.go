package service

import (
	"context"
	"testing"

	"tramitesbackend/internal/dto"
	"tramitesbackend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCrearTarjeta_RecargoExentoPorDefecto(t *testing.T) {
	repo := newStubCrudRepo[model.Tarjeta]()
	svc := NewTarjetaService(repo, &stubHistorialRepo{})

	tar, err := svc.Crear(context.Background(), nil, dto.CrearTarjetaRequest{
		Numero:  "4111222233334444",
		Titular: "María Pérez",
	})
	require.NoError(t, err)
	assert.Equal(t, model.CuatroPorMilExento, tar.CuatroPorMil)
}

func TestCrearTarjeta_NumeroDuplicado(t *testing.T) {
	repo := newStubCrudRepo[model.Tarjeta]()
	repo.falloCreate = gorm.ErrDuplicatedKey
	svc := NewTarjetaService(repo, &stubHistorialRepo{})

	_, err := svc.Crear(context.Background(), nil, dto.CrearTarjetaRequest{
		Numero:  "4111222233334444",
		Titular: "María Pérez",
	})
	assert.ErrorContains(t, err, "Ya existe una tarjeta con ese número.")
}

func TestActualizarTarjeta_CambiaRecargo(t *testing.T) {
	repo := newStubCrudRepo[model.Tarjeta]()
	svc := NewTarjetaService(repo, &stubHistorialRepo{})
	tar := seedTarjeta(repo, "4111", model.CuatroPorMilExento)

	activo := model.CuatroPorMilActivo
	actualizado, err := svc.Actualizar(context.Background(), nil, tar.ID, dto.ActualizarTarjetaRequest{CuatroPorMil: &activo})
	require.NoError(t, err)
	assert.Equal(t, model.CuatroPorMilActivo, actualizado.CuatroPorMil)
}
