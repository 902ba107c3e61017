package service

import (
	"context"

	"tramitesbackend/internal/apierror"
	"tramitesbackend/internal/dto"
	"tramitesbackend/internal/model"
	"tramitesbackend/internal/repository"

	"github.com/google/uuid"
)

// GeneradorPDF renders a quote plus its payments as a PDF document.
type GeneradorPDF interface {
	GenerarCotizacion(cot *model.Cotizador, pagos []model.CotizadorPago) ([]byte, error)
}

// Mailer delivers a quote PDF to an email address.
type Mailer interface {
	EnviarCotizacion(ctx context.Context, destino string, cot *model.Cotizador, pdf []byte) error
}

// CotizadorService drives the four-stage quote workflow. Stage changes go
// through Avanzar/Revertir only; the regular update never touches the stage.
type CotizadorService struct {
	*CrudService[model.Cotizador]
	pagos     *CrudService[model.CotizadorPago]
	clientes  repository.CrudRepository[model.Cliente]
	etiquetas repository.CrudRepository[model.Etiqueta]
	precios   repository.CrudRepository[model.PrecioCliente]
	pdf       GeneradorPDF
	mailer    Mailer
}

func NewCotizadorService(
	repo repository.CrudRepository[model.Cotizador],
	pagos repository.CrudRepository[model.CotizadorPago],
	clientes repository.CrudRepository[model.Cliente],
	etiquetas repository.CrudRepository[model.Etiqueta],
	precios repository.CrudRepository[model.PrecioCliente],
	historial repository.HistorialRepository,
	pdf GeneradorPDF,
	mailer Mailer,
) *CotizadorService {
	return &CotizadorService{
		CrudService: NewCrudService(repo, historial),
		pagos:       NewCrudService(pagos, historial),
		clientes:    clientes,
		etiquetas:   etiquetas,
		precios:     precios,
		pdf:         pdf,
		mailer:      mailer,
	}
}

func (s *CotizadorService) Crear(ctx context.Context, usuarioID *uuid.UUID, req dto.CrearCotizadorRequest) (*model.Cotizador, error) {
	if _, err := validarCliente(ctx, s.clientes, req.Cliente); err != nil {
		return nil, err
	}
	if _, err := validarEtiqueta(ctx, s.etiquetas, req.Etiqueta); err != nil {
		return nil, err
	}
	if _, err := validarPrecioCliente(ctx, s.precios, req.PrecioCliente); err != nil {
		return nil, err
	}
	cot := model.Cotizador{
		UsuarioID:       usuarioID,
		ClienteID:       req.Cliente,
		EtiquetaID:      req.Etiqueta,
		PrecioClienteID: req.PrecioCliente,
		Descripcion:     req.Descripcion,
		PrecioLay:       req.PrecioLay,
		Comision:        req.Comision,
		Placa:           req.Placa,
		Clindraje:       req.Clindraje,
		Modelo:          req.Modelo,
		Chasis:          req.Chasis,
		TipoDocumento:   req.TipoDocumento,
		NumeroDocumento: req.NumeroDocumento,
		NombreCompleto:  req.NombreCompleto,
		Telefono:        req.Telefono,
		Correo:          req.Correo,
		Direccion:       req.Direccion,
		Etapa:           model.EtapaCotizador,
	}
	if cot.TipoDocumento == "" {
		cot.TipoDocumento = model.DocumentoCC
	}
	if err := s.guardarNuevo(ctx, usuarioID, &cot); err != nil {
		return nil, err
	}
	return s.Obtener(ctx, cot.ID)
}

func (s *CotizadorService) Actualizar(ctx context.Context, usuarioID *uuid.UUID, id uuid.UUID, req dto.ActualizarCotizadorRequest) (*model.Cotizador, error) {
	cot, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if cot.EstaEliminado() {
		return nil, apierror.EstadoInvalido("El registro está eliminado.")
	}
	if req.Cliente != nil {
		if _, err := validarCliente(ctx, s.clientes, *req.Cliente); err != nil {
			return nil, err
		}
		cot.ClienteID = *req.Cliente
	}
	if req.Etiqueta != nil {
		if _, err := validarEtiqueta(ctx, s.etiquetas, *req.Etiqueta); err != nil {
			return nil, err
		}
		cot.EtiquetaID = *req.Etiqueta
	}
	if req.PrecioCliente != nil {
		if _, err := validarPrecioCliente(ctx, s.precios, *req.PrecioCliente); err != nil {
			return nil, err
		}
		cot.PrecioClienteID = *req.PrecioCliente
	}
	if req.Descripcion != nil {
		cot.Descripcion = *req.Descripcion
	}
	if req.PrecioLay != nil {
		cot.PrecioLay = *req.PrecioLay
	}
	if req.Comision != nil {
		cot.Comision = *req.Comision
	}
	if req.Placa != nil {
		cot.Placa = *req.Placa
	}
	if req.Clindraje != nil {
		cot.Clindraje = *req.Clindraje
	}
	if req.Modelo != nil {
		cot.Modelo = *req.Modelo
	}
	if req.Chasis != nil {
		cot.Chasis = *req.Chasis
	}
	if req.TipoDocumento != nil {
		cot.TipoDocumento = *req.TipoDocumento
	}
	if req.NumeroDocumento != nil {
		cot.NumeroDocumento = *req.NumeroDocumento
	}
	if req.NombreCompleto != nil {
		cot.NombreCompleto = *req.NombreCompleto
	}
	if req.Telefono != nil {
		cot.Telefono = *req.Telefono
	}
	if req.Correo != nil {
		cot.Correo = *req.Correo
	}
	if req.Direccion != nil {
		cot.Direccion = *req.Direccion
	}
	if err := s.guardarCambios(ctx, usuarioID, cot); err != nil {
		return nil, err
	}
	return s.Obtener(ctx, cot.ID)
}

// ─── Transiciones de estado ──────────────────────────────────────────────────

// Avanzar moves the quote one stage forward. The target stage must be the
// immediate successor of the current one.
func (s *CotizadorService) Avanzar(ctx context.Context, usuarioID *uuid.UUID, id uuid.UUID, paso string) (*model.Cotizador, error) {
	cot, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if paso == "" {
		return nil, apierror.Validacion("El campo 'paso' es requerido. Opciones: tramite, confirmacion, cargaro")
	}
	destino, ok := model.PasosAvance[paso]
	if !ok {
		return nil, apierror.Validacion("Paso inválido: %s. Opciones: tramite, confirmacion, cargaro", paso)
	}
	if cot.Etapa == destino {
		return nil, apierror.EstadoInvalido("El cotizador ya está en estado %s.", destino.Nombre())
	}
	if cot.Etapa != destino-1 {
		return nil, apierror.EstadoInvalido("No se puede avanzar a %s. El estado anterior no está activo.", destino.Nombre())
	}
	cot.Etapa = destino
	if err := s.guardarCambios(ctx, usuarioID, cot); err != nil {
		return nil, err
	}
	return s.Obtener(ctx, cot.ID)
}

// Revertir moves the quote one stage back. The target stage must be the
// immediate predecessor of the current one.
func (s *CotizadorService) Revertir(ctx context.Context, usuarioID *uuid.UUID, id uuid.UUID, paso string) (*model.Cotizador, error) {
	cot, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if paso == "" {
		return nil, apierror.Validacion("El campo 'paso' es requerido. Opciones: cotizador, tramite, confirmacion")
	}
	destino, ok := model.PasosReversion[paso]
	if !ok {
		return nil, apierror.Validacion("Paso inválido: %s. Opciones: cotizador, tramite, confirmacion", paso)
	}
	if cot.Etapa != destino+1 {
		return nil, apierror.EstadoInvalido("No se puede revertir a %s. El estado actual no lo permite.", destino.Nombre())
	}
	cot.Etapa = destino
	if err := s.guardarCambios(ctx, usuarioID, cot); err != nil {
		return nil, err
	}
	return s.Obtener(ctx, cot.ID)
}

// ─── Pagos ───────────────────────────────────────────────────────────────────

func (s *CotizadorService) ListarPagos(ctx context.Context, cotizadorID uuid.UUID, opts repository.ListaOpciones) ([]model.CotizadorPago, int64, error) {
	if _, err := s.Obtener(ctx, cotizadorID); err != nil {
		return nil, 0, err
	}
	if opts.Filtros == nil {
		opts.Filtros = map[string]any{}
	}
	opts.Filtros["cotizador_id"] = cotizadorID
	return s.pagos.Listar(ctx, opts)
}

func (s *CotizadorService) CrearPago(ctx context.Context, usuarioID *uuid.UUID, cotizadorID uuid.UUID, req dto.CrearCotizadorPagoRequest) (*model.CotizadorPago, error) {
	if _, err := s.Obtener(ctx, cotizadorID); err != nil {
		return nil, err
	}
	fecha, err := parsearFecha(req.FechaPago, "fecha_pago")
	if err != nil {
		return nil, err
	}
	pago := model.CotizadorPago{
		CotizadorID: cotizadorID,
		PrecioLay:   req.PrecioLay,
		Comision:    req.Comision,
		FechaPago:   fecha,
	}
	if err := s.pagos.guardarNuevo(ctx, usuarioID, &pago); err != nil {
		return nil, err
	}
	return &pago, nil
}

func (s *CotizadorService) ActualizarPago(ctx context.Context, usuarioID *uuid.UUID, pagoID uuid.UUID, req dto.ActualizarCotizadorPagoRequest) (*model.CotizadorPago, error) {
	pago, err := s.pagos.Obtener(ctx, pagoID)
	if err != nil {
		return nil, err
	}
	if req.PrecioLay != nil {
		pago.PrecioLay = *req.PrecioLay
	}
	if req.Comision != nil {
		pago.Comision = *req.Comision
	}
	if req.FechaPago != nil {
		fecha, err := parsearFecha(*req.FechaPago, "fecha_pago")
		if err != nil {
			return nil, err
		}
		pago.FechaPago = fecha
	}
	if err := s.pagos.guardarCambios(ctx, usuarioID, pago); err != nil {
		return nil, err
	}
	return pago, nil
}

func (s *CotizadorService) EliminarPago(ctx context.Context, usuarioID *uuid.UUID, pagoID uuid.UUID) error {
	return s.pagos.Eliminar(ctx, usuarioID, pagoID)
}

// ─── PDF y correo ────────────────────────────────────────────────────────────

func (s *CotizadorService) GenerarPDF(ctx context.Context, id uuid.UUID) (*model.Cotizador, []byte, error) {
	cot, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	pagos, _, err := s.ListarPagos(ctx, id, repository.ListaOpciones{})
	if err != nil {
		return nil, nil, err
	}
	doc, err := s.pdf.GenerarCotizacion(cot, pagos)
	if err != nil {
		return nil, nil, apierror.Inesperado(err)
	}
	return cot, doc, nil
}

// Enviar mails the quote PDF to the quote's own address, or to an explicit
// override when given.
func (s *CotizadorService) Enviar(ctx context.Context, id uuid.UUID, correo string) error {
	cot, doc, err := s.GenerarPDF(ctx, id)
	if err != nil {
		return err
	}
	destino := correo
	if destino == "" {
		destino = cot.Correo
	}
	if destino == "" {
		return apierror.Validacion("El cotizador no tiene un correo registrado.")
	}
	if err := s.mailer.EnviarCotizacion(ctx, destino, cot, doc); err != nil {
		return apierror.Inesperado(err)
	}
	return nil
}
