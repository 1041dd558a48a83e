package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Stevensbe/system-procon-sub001/internal/controllers"
)

func runRelatorioRouter(g *echo.Group, ctrl *controllers.RelatorioController) {
	g.GET("/relatorios/protocolos", ctrl.GerarRelatorio)
}
