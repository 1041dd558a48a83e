package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Stevensbe/system-procon-sub001/internal/controllers"
)

// Cadastros de referência: tipos de documento e setores.
func runCadastroRouter(g *echo.Group, tipoDocCtrl *controllers.TipoDocumentoController, setorCtrl *controllers.SetorController) {
	g.GET("/tipos-documento", tipoDocCtrl.Listar)
	g.GET("/tipos-documento/:id", tipoDocCtrl.BuscarPorID)
	g.POST("/tipos-documento", tipoDocCtrl.Criar)
	g.PUT("/tipos-documento/:id", tipoDocCtrl.Atualizar)

	g.GET("/setores", setorCtrl.Listar)
	g.GET("/setores/:id", setorCtrl.BuscarPorID)
	g.POST("/setores", setorCtrl.Criar)
	g.PUT("/setores/:id", setorCtrl.Atualizar)
}
