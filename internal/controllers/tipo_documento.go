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

type TipoDocumentoController struct {
	tipoDocService services.TipoDocumentoServiceInterface
	logger         *zap.Logger
}

func NewTipoDocumentoController(tipoDocService services.TipoDocumentoServiceInterface, logger *zap.Logger) *TipoDocumentoController {
	return &TipoDocumentoController{
		tipoDocService: tipoDocService,
		logger:         logger,
	}
}

func (c *TipoDocumentoController) Listar(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	somenteAtivos := ctx.QueryParam("somente_ativos") == "true"

	res, err := c.tipoDocService.Listar(reqCtx, somenteAtivos)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Tipos de documento listados com sucesso", http.StatusOK)
}

func (c *TipoDocumentoController) BuscarPorID(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("ID de tipo de documento inválido"), c.logger)
	}

	res, err := c.tipoDocService.BuscarPorID(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Tipo de documento encontrado", http.StatusOK)
}

func (c *TipoDocumentoController) Criar(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var d dto.CriarTipoDocumentoDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("formato de dados inválido"), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.tipoDocService.Criar(reqCtx, d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Tipo de documento criado com sucesso", http.StatusCreated)
}

func (c *TipoDocumentoController) Atualizar(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("ID de tipo de documento inválido"), c.logger)
	}

	var d dto.AtualizarTipoDocumentoDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("formato de dados inválido"), c.logger)
	}

	if err := c.tipoDocService.Atualizar(reqCtx, id, d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Tipo de documento atualizado com sucesso", http.StatusOK)
}
