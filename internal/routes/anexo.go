package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Stevensbe/system-procon-sub001/internal/controllers"
)

func runAnexoRouter(g *echo.Group, ctrl *controllers.AnexoController) {
	g.POST("/protocolos/:numero/anexos", ctrl.Anexar)
	g.GET("/protocolos/:numero/anexos", ctrl.ListarPorProtocolo)
	g.GET("/anexos/:id/conteudo", ctrl.Baixar)
}
