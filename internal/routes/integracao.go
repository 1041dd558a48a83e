package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Stevensbe/system-procon-sub001/internal/controllers"
)

func runIntegracaoRouter(g *echo.Group, ctrl *controllers.IntegracaoController) {
	g.POST("/integracoes/fiscalizacao/autos", ctrl.ReceberAutoInfracao)
	g.POST("/integracoes/multas", ctrl.ReceberMulta)
	g.POST("/integracoes/recursos", ctrl.ReceberRecurso)
}
