package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Stevensbe/system-procon-sub001/internal/dto"
	"github.com/Stevensbe/system-procon-sub001/internal/events"
	apperrors "github.com/Stevensbe/system-procon-sub001/pkg/errors"
	"github.com/Stevensbe/system-procon-sub001/pkg/eventbus"
	"github.com/Stevensbe/system-procon-sub001/pkg/utils"
)

// IntegracaoController expõe os endpoints pelos quais os subsistemas
// entregam seus sinais pós-commit. O sinal é validado e publicado no
// barramento; a protocolização acontece de forma assíncrona, então a
// resposta é sempre 202 quando o sinal é aceito.
type IntegracaoController struct {
	bus    *eventbus.Bus
	logger *zap.Logger
}

func NewIntegracaoController(bus *eventbus.Bus, logger *zap.Logger) *IntegracaoController {
	return &IntegracaoController{
		bus:    bus,
		logger: logger,
	}
}

func (c *IntegracaoController) ReceberAutoInfracao(ctx echo.Context) error {
	var d dto.SinalFiscalizacaoDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("formato de dados inválido"), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	c.bus.Publish(ctx.Request().Context(), events.AutoInfracaoLavradoEvent{Sinal: d})
	return utils.SuccessResponse(ctx, nil, "Sinal de auto de infração aceito", http.StatusAccepted)
}

func (c *IntegracaoController) ReceberMulta(ctx echo.Context) error {
	var d dto.SinalMultaDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("formato de dados inválido"), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	c.bus.Publish(ctx.Request().Context(), events.MultaAplicadaEvent{Sinal: d})
	return utils.SuccessResponse(ctx, nil, "Sinal de multa aceito", http.StatusAccepted)
}

func (c *IntegracaoController) ReceberRecurso(ctx echo.Context) error {
	var d dto.SinalRecursoDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("formato de dados inválido"), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	c.bus.Publish(ctx.Request().Context(), events.RecursoInterpostoEvent{Sinal: d})
	return utils.SuccessResponse(ctx, nil, "Sinal de recurso aceito", http.StatusAccepted)
}
