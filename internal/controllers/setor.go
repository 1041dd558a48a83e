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

type SetorController struct {
	setorService services.SetorServiceInterface
	logger       *zap.Logger
}

func NewSetorController(setorService services.SetorServiceInterface, logger *zap.Logger) *SetorController {
	return &SetorController{
		setorService: setorService,
		logger:       logger,
	}
}

func (c *SetorController) Listar(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.setorService.Listar(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Setores listados com sucesso", http.StatusOK)
}

func (c *SetorController) BuscarPorID(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("ID de setor inválido"), c.logger)
	}

	res, err := c.setorService.BuscarPorID(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Setor encontrado", http.StatusOK)
}

func (c *SetorController) Criar(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var d dto.CriarSetorDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("formato de dados inválido"), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.setorService.Criar(reqCtx, d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Setor criado com sucesso", http.StatusCreated)
}

func (c *SetorController) Atualizar(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("ID de setor inválido"), c.logger)
	}

	var d dto.AtualizarSetorDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("formato de dados inválido"), c.logger)
	}

	if err := c.setorService.Atualizar(reqCtx, id, d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Setor atualizado com sucesso", http.StatusOK)
}
