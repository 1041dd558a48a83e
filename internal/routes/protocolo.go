package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Stevensbe/system-procon-sub001/internal/controllers"
)

func runProtocoloRouter(g *echo.Group, ctrl *controllers.ProtocoloController) {
	g.POST("/protocolos", ctrl.Criar)
	g.GET("/protocolos", ctrl.Listar)
	g.GET("/protocolos/vencidos", ctrl.ListarVencidos)
	g.GET("/protocolos/:numero", ctrl.BuscarPorNumero)
	g.GET("/protocolos/:numero/historico", ctrl.ListarHistorico)
	g.GET("/protocolos/:numero/integridade", ctrl.VerificarIntegridade)
	g.POST("/protocolos/:numero/tramitar", ctrl.Tramitar)
	g.POST("/protocolos/:numero/anotar", ctrl.Anotar)
	g.POST("/protocolos/:numero/concluir", ctrl.Concluir)
	g.POST("/protocolos/:numero/arquivar", ctrl.Arquivar)
	g.POST("/protocolos/:numero/cancelar", ctrl.Cancelar)
	g.POST("/tramitacoes/:id/receber", ctrl.Receber)
	g.GET("/setores/:id/pendencias", ctrl.ListarPendentesPorSetor)
}
