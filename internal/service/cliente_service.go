package service

import (
	"context"

	"tramitesbackend/internal/apierror"
	"tramitesbackend/internal/dto"
	"tramitesbackend/internal/model"
	"tramitesbackend/internal/repository"

	"github.com/google/uuid"
)

// ClienteService adds the client-specific rules on top of the shared CRUD:
// the communication-channel default and the per-client price list.
type ClienteService struct {
	*CrudService[model.Cliente]
	precios *CrudService[model.PrecioCliente]
}

func NewClienteService(repo repository.CrudRepository[model.Cliente], precios repository.CrudRepository[model.PrecioCliente], historial repository.HistorialRepository) *ClienteService {
	return &ClienteService{
		CrudService: NewCrudService(repo, historial),
		precios:     NewCrudService(precios, historial),
	}
}

func (s *ClienteService) Crear(ctx context.Context, usuarioID *uuid.UUID, req dto.CrearClienteRequest) (*model.Cliente, error) {
	cli := model.Cliente{
		Nombre:            req.Nombre,
		Color:             req.Color,
		Telefono:          req.Telefono,
		Direccion:         req.Direccion,
		MedioComunicacion: req.MedioComunicacion,
		UsuarioID:         req.Usuario,
		CreatedByID:       usuarioID,
	}
	if cli.MedioComunicacion == "" {
		cli.MedioComunicacion = model.MedioEmail
	}
	if err := s.guardarNuevo(ctx, usuarioID, &cli); err != nil {
		return nil, err
	}
	return s.Obtener(ctx, cli.ID)
}

func (s *ClienteService) Actualizar(ctx context.Context, usuarioID *uuid.UUID, id uuid.UUID, req dto.ActualizarClienteRequest) (*model.Cliente, error) {
	cli, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Nombre != nil {
		cli.Nombre = *req.Nombre
	}
	if req.Color != nil {
		cli.Color = *req.Color
	}
	if req.Telefono != nil {
		cli.Telefono = req.Telefono
	}
	if req.Direccion != nil {
		cli.Direccion = req.Direccion
	}
	if req.MedioComunicacion != nil {
		cli.MedioComunicacion = *req.MedioComunicacion
	}
	if req.Usuario != nil {
		cli.UsuarioID = req.Usuario
	}
	if err := s.guardarCambios(ctx, usuarioID, cli); err != nil {
		return nil, err
	}
	return s.Obtener(ctx, cli.ID)
}

// ─── Precios del cliente ─────────────────────────────────────────────────────

func (s *ClienteService) ListarPrecios(ctx context.Context, clienteID uuid.UUID, opts repository.ListaOpciones) ([]model.PrecioCliente, int64, error) {
	if _, err := s.Obtener(ctx, clienteID); err != nil {
		return nil, 0, err
	}
	if opts.Filtros == nil {
		opts.Filtros = map[string]any{}
	}
	opts.Filtros["cliente_id"] = clienteID
	return s.precios.Listar(ctx, opts)
}

func (s *ClienteService) CrearPrecio(ctx context.Context, usuarioID *uuid.UUID, clienteID uuid.UUID, req dto.CrearPrecioClienteRequest) (*model.PrecioCliente, error) {
	if _, err := s.Obtener(ctx, clienteID); err != nil {
		return nil, err
	}
	precio := model.PrecioCliente{
		ClienteID:   clienteID,
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
		Comision:    req.Comision,
	}
	if err := s.precios.guardarNuevo(ctx, usuarioID, &precio); err != nil {
		return nil, err
	}
	return &precio, nil
}

// precioDelCliente resolves a price and enforces that it belongs to the
// client addressed by the route.
func (s *ClienteService) precioDelCliente(ctx context.Context, clienteID, precioID uuid.UUID) (*model.PrecioCliente, error) {
	precio, err := s.precios.Obtener(ctx, precioID)
	if err != nil {
		return nil, err
	}
	if precio.ClienteID != clienteID {
		return nil, apierror.NoEncontrado("No encontrado.")
	}
	return precio, nil
}

func (s *ClienteService) ActualizarPrecio(ctx context.Context, usuarioID *uuid.UUID, clienteID, precioID uuid.UUID, req dto.ActualizarPrecioClienteRequest) (*model.PrecioCliente, error) {
	precio, err := s.precioDelCliente(ctx, clienteID, precioID)
	if err != nil {
		return nil, err
	}
	if req.Descripcion != nil {
		precio.Descripcion = *req.Descripcion
	}
	if req.Precio != nil {
		precio.Precio = *req.Precio
	}
	if req.Comision != nil {
		precio.Comision = *req.Comision
	}
	if err := s.precios.guardarCambios(ctx, usuarioID, precio); err != nil {
		return nil, err
	}
	return precio, nil
}

// EliminarPrecio soft-deletes a price entry. Price entries have no restore
// operation; a deleted price stays deleted.
func (s *ClienteService) EliminarPrecio(ctx context.Context, usuarioID *uuid.UUID, clienteID, precioID uuid.UUID) error {
	if _, err := s.precioDelCliente(ctx, clienteID, precioID); err != nil {
		return err
	}
	return s.precios.Eliminar(ctx, usuarioID, precioID)
}
