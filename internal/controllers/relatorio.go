package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Stevensbe/system-procon-sub001/internal/entities"
	"github.com/Stevensbe/system-procon-sub001/internal/services"
	"github.com/Stevensbe/system-procon-sub001/pkg/types"
	"github.com/Stevensbe/system-procon-sub001/pkg/utils"
)

type RelatorioController struct {
	relatorioService services.RelatorioServiceInterface
	logger           *zap.Logger
}

func NewRelatorioController(relatorioService services.RelatorioServiceInterface, logger *zap.Logger) *RelatorioController {
	return &RelatorioController{
		relatorioService: relatorioService,
		logger:           logger,
	}
}

func (c *RelatorioController) GerarRelatorio(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	filter, formato := c.parseFiltros(ctx)
	c.logger.Debug("relatório solicitado",
		zap.Any("filtros", filter.Filter),
		zap.String("formato", formato))

	itens, total, err := c.relatorioService.GerarItens(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if formato == "xlsx" {
		return c.responderXLSX(ctx, itens)
	}
	return utils.SuccessListResponse(ctx, itens, "Relatório gerado com sucesso", total, filter.Page, filter.Limit)
}

func (c *RelatorioController) parseFiltros(ctx echo.Context) (types.Filter, string) {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	formato := strings.ToLower(ctx.QueryParam("formato"))

	if formato == "xlsx" {
		// Exportação traz tudo de uma vez.
		filter.Page = 1
		filter.Offset = 0
		filter.Limit = 100000
	}

	if filter.Filter == nil {
		filter.Filter = make(map[string]interface{})
	}
	if de := ctx.QueryParam("data_de"); de != "" {
		if t, err := time.Parse(time.RFC3339, de); err == nil {
			filter.Filter["criado_de"] = t
		}
	}
	if ate := ctx.QueryParam("data_ate"); ate != "" {
		if t, err := time.Parse(time.RFC3339, ate); err == nil {
			filter.Filter["criado_ate"] = t
		}
	}
	if ctx.QueryParam("vencidos") == "true" {
		filter.Filter["vencidos"] = true
	}
	return filter, formato
}

var cabecalhosRelatorio = []string{
	"Número", "Tipo de Documento", "Origem", "Assunto", "Remetente", "Status",
	"Prioridade", "Setor Atual", "Setor de Origem", "Protocolado em",
	"Prazo de Resposta", "Concluído em", "Faixa de Prazo", "Dias em Aberto",
}

func linhaParaPlanilha(item entities.RelatorioItem) []interface{} {
	const formatoData = "02/01/2006 15:04"
	var concluidoEm string
	if item.ConcluidoEm != nil {
		concluidoEm = item.ConcluidoEm.Format(formatoData)
	}
	return []interface{}{
		item.Numero, item.TipoDocumento, item.Origem, item.Assunto, item.RemetenteNome,
		item.Status, item.Prioridade, item.SetorAtual, item.SetorOrigem,
		item.CriadoEm.Format(formatoData), item.PrazoResposta.Format(formatoData),
		concluidoEm, item.FaixaPrazo, item.DiasEmAberto,
	}
}

func (c *RelatorioController) responderXLSX(ctx echo.Context, itens []entities.RelatorioItem) error {
	f := excelize.NewFile()
	planilha := "Protocolos"
	f.SetSheetName("Sheet1", planilha)
	f.SetSheetRow(planilha, "A1", &cabecalhosRelatorio)
	estilo, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(planilha, "A1", "N1", estilo)

	for i, item := range itens {
		celula, _ := excelize.CoordinatesToCellName(1, i+2)
		linha := linhaParaPlanilha(item)
		f.SetSheetRow(planilha, celula, &linha)
	}
	f.SetColWidth(planilha, "A", "A", 24)
	f.SetColWidth(planilha, "B", "B", 22)
	f.SetColWidth(planilha, "D", "E", 35)
	f.SetColWidth(planilha, "J", "L", 18)

	nomeArquivo := fmt.Sprintf("relatorio_protocolos_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+nomeArquivo)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
