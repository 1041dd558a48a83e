package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Stevensbe/system-procon-sub001/internal/dto"
	"github.com/Stevensbe/system-procon-sub001/internal/services"
	apperrors "github.com/Stevensbe/system-procon-sub001/pkg/errors"
	"github.com/Stevensbe/system-procon-sub001/pkg/utils"
)

type ProtocoloController struct {
	protocoloService services.ProtocoloServiceInterface
	logger           *zap.Logger
}

func NewProtocoloController(protocoloService services.ProtocoloServiceInterface, logger *zap.Logger) *ProtocoloController {
	return &ProtocoloController{
		protocoloService: protocoloService,
		logger:           logger,
	}
}

func (c *ProtocoloController) Criar(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var d dto.CriarProtocoloDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("formato de dados inválido"), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.protocoloService.Criar(reqCtx, d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Protocolo criado com sucesso", http.StatusCreated)
}

func (c *ProtocoloController) Listar(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	res, total, err := c.protocoloService.Listar(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessListResponse(ctx, res, "Protocolos listados com sucesso", total, filter.Page, filter.Limit)
}

func (c *ProtocoloController) BuscarPorNumero(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.protocoloService.BuscarPorNumero(reqCtx, ctx.Param("numero"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Protocolo encontrado", http.StatusOK)
}

func (c *ProtocoloController) ListarHistorico(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.protocoloService.ListarHistorico(reqCtx, ctx.Param("numero"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Histórico do protocolo", http.StatusOK)
}

func (c *ProtocoloController) Tramitar(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var d dto.TramitarDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("formato de dados inválido"), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.protocoloService.Tramitar(reqCtx, ctx.Param("numero"), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Protocolo tramitado com sucesso", http.StatusOK)
}

func (c *ProtocoloController) Receber(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("ID de tramitação inválido"), c.logger)
	}

	res, err := c.protocoloService.Receber(reqCtx, dto.ReceberDTO{TramitacaoID: id})
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Recebimento registrado", http.StatusOK)
}

func (c *ProtocoloController) Anotar(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var d dto.AnotarDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("formato de dados inválido"), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.protocoloService.Anotar(reqCtx, ctx.Param("numero"), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Anotação registrada", http.StatusOK)
}

func (c *ProtocoloController) Concluir(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var d dto.ConcluirDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("formato de dados inválido"), c.logger)
	}

	res, err := c.protocoloService.Concluir(reqCtx, ctx.Param("numero"), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Protocolo concluído", http.StatusOK)
}

func (c *ProtocoloController) Arquivar(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.protocoloService.Arquivar(reqCtx, ctx.Param("numero"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Protocolo arquivado", http.StatusOK)
}

func (c *ProtocoloController) Cancelar(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var d dto.CancelarDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("formato de dados inválido"), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.protocoloService.Cancelar(reqCtx, ctx.Param("numero"), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Protocolo cancelado", http.StatusOK)
}

func (c *ProtocoloController) VerificarIntegridade(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.protocoloService.VerificarIntegridade(reqCtx, ctx.Param("numero"))
	if err != nil && res == nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err != nil {
		// Cadeia corrompida: o relatório volta no corpo junto do status 500.
		return ctx.JSON(http.StatusInternalServerError, &utils.HttpResponse{
			Status:  false,
			Body:    res,
			Message: err.Error(),
		})
	}
	return utils.SuccessResponse(ctx, res, "Histórico íntegro", http.StatusOK)
}

func (c *ProtocoloController) ListarPendentesPorSetor(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	setorID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("ID de setor inválido"), c.logger)
	}
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	res, total, err := c.protocoloService.ListarPendentesPorSetor(reqCtx, setorID, uint64(filter.Limit), uint64(filter.Offset))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessListResponse(ctx, res, "Pendências do setor", total, filter.Page, filter.Limit)
}

func (c *ProtocoloController) ListarVencidos(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	res, total, err := c.protocoloService.ListarVencidos(reqCtx, uint64(filter.Limit), uint64(filter.Offset))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessListResponse(ctx, res, "Protocolos com prazo vencido", total, filter.Page, filter.Limit)
}
