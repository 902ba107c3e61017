package service

import (
	"context"
	"errors"

	"tramitesbackend/internal/apierror"
	"tramitesbackend/internal/model"
	"tramitesbackend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Referenced records must exist (404 when they do not) and not be
// soft-deleted; the error messages keep the wording clients already depend on.

func validarCliente(ctx context.Context, repo repository.CrudRepository[model.Cliente], id uuid.UUID) (*model.Cliente, error) {
	cli, err := repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NoEncontrado("El cliente especificado no existe.")
	}
	if err != nil {
		return nil, apierror.Almacenamiento(err)
	}
	if cli.EstaEliminado() {
		return nil, apierror.EstadoInvalido("El cliente especificado está eliminado.")
	}
	return cli, nil
}

func validarTarjeta(ctx context.Context, repo repository.CrudRepository[model.Tarjeta], id uuid.UUID) (*model.Tarjeta, error) {
	tar, err := repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NoEncontrado("La tarjeta especificada no existe.")
	}
	if err != nil {
		return nil, apierror.Almacenamiento(err)
	}
	if tar.EstaEliminado() {
		return nil, apierror.EstadoInvalido("La tarjeta especificada está eliminada.")
	}
	return tar, nil
}

func validarEtiqueta(ctx context.Context, repo repository.CrudRepository[model.Etiqueta], id uuid.UUID) (*model.Etiqueta, error) {
	et, err := repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NoEncontrado("La etiqueta especificada no existe.")
	}
	if err != nil {
		return nil, apierror.Almacenamiento(err)
	}
	if et.EstaEliminado() {
		return nil, apierror.EstadoInvalido("La etiqueta especificada está eliminada.")
	}
	return et, nil
}

func validarPrecioCliente(ctx context.Context, repo repository.CrudRepository[model.PrecioCliente], id uuid.UUID) (*model.PrecioCliente, error) {
	pre, err := repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NoEncontrado("El precio especificado no existe.")
	}
	if err != nil {
		return nil, apierror.Almacenamiento(err)
	}
	if pre.EstaEliminado() {
		return nil, apierror.EstadoInvalido("El precio especificado está eliminado.")
	}
	return pre, nil
}

func validarGasto(ctx context.Context, repo repository.CrudRepository[model.Gasto], id uuid.UUID) (*model.Gasto, error) {
	g, err := repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NoEncontrado("El gasto especificado no existe.")
	}
	if err != nil {
		return nil, apierror.Almacenamiento(err)
	}
	if g.EstaEliminado() {
		return nil, apierror.EstadoInvalido("El gasto especificado está eliminado.")
	}
	return g, nil
}
