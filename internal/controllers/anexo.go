package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Stevensbe/system-procon-sub001/internal/services"
	apperrors "github.com/Stevensbe/system-procon-sub001/pkg/errors"
	"github.com/Stevensbe/system-procon-sub001/pkg/utils"
)

type AnexoController struct {
	anexoService services.AnexoServiceInterface
	logger       *zap.Logger
}

func NewAnexoController(anexoService services.AnexoServiceInterface, logger *zap.Logger) *AnexoController {
	return &AnexoController{
		anexoService: anexoService,
		logger:       logger,
	}
}

// Anexar recebe um multipart com o campo "arquivo" e a descrição opcional.
func (c *AnexoController) Anexar(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	numero := ctx.Param("numero")

	fileHeader, err := ctx.FormFile("arquivo")
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("o campo 'arquivo' é obrigatório"), c.logger)
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.logger.Error("falha ao abrir o arquivo enviado", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer src.Close()

	res, err := c.anexoService.Anexar(
		reqCtx,
		numero,
		fileHeader.Filename,
		fileHeader.Header.Get(echo.HeaderContentType),
		ctx.FormValue("descricao"),
		fileHeader.Size,
		src,
	)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Anexo gravado com sucesso", http.StatusCreated)
}

func (c *AnexoController) ListarPorProtocolo(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.anexoService.ListarPorProtocolo(reqCtx, ctx.Param("numero"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Anexos do protocolo", http.StatusOK)
}

func (c *AnexoController) Baixar(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("ID de anexo inválido"), c.logger)
	}

	anexo, conteudo, err := c.anexoService.Baixar(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer conteudo.Close()

	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(anexo.NomeArquivo))
	return ctx.Stream(http.StatusOK, anexo.MimeType, conteudo)
}
