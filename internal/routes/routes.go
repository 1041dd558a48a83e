package routes

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Stevensbe/system-procon-sub001/internal/controllers"
	"github.com/Stevensbe/system-procon-sub001/internal/repositories"
	"github.com/Stevensbe/system-procon-sub001/internal/services"
	"github.com/Stevensbe/system-procon-sub001/pkg/config"
	"github.com/Stevensbe/system-procon-sub001/pkg/eventbus"
	"github.com/Stevensbe/system-procon-sub001/pkg/filestorage"
	"github.com/Stevensbe/system-procon-sub001/pkg/middleware"
	"github.com/Stevensbe/system-procon-sub001/pkg/notifier"
	"github.com/Stevensbe/system-procon-sub001/pkg/relogio"
	"github.com/Stevensbe/system-procon-sub001/pkg/service"
)

type Loggers struct {
	Main       *zap.Logger
	Protocolo  *zap.Logger
	Integracao *zap.Logger
	Monitor    *zap.Logger
}

// InitRouter monta toda a cadeia repositório → serviço → controller e
// registra as rotas. Devolve o monitor de prazos para o main iniciar como
// worker de fundo.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	bus *eventbus.Bus,
	cfg *config.Config,
	loggers *Loggers,
) (*services.PrazoMonitor, error) {
	api := e.Group("/api/v1")
	authMW := middleware.NewAuthMiddleware(jwtSvc, loggers.Main)
	rel := relogio.NewRelogioReal()

	blobStore, err := filestorage.NewLocalBlobStore(cfg.Upload.DiretorioBase)
	if err != nil {
		return nil, err
	}

	// --- repositórios ---
	txManager := repositories.NewTxManager(dbConn)
	protocoloRepo := repositories.NewProtocoloRepository(dbConn)
	tramitacaoRepo := repositories.NewTramitacaoRepository(dbConn)
	numeradorRepo := repositories.NewNumeradorRepository()
	tipoDocRepo := repositories.NewTipoDocumentoRepository(dbConn)
	setorRepo := repositories.NewSetorRepository(dbConn)
	anexoRepo := repositories.NewAnexoRepository(dbConn)
	notificacaoRepo := repositories.NewNotificacaoPrazoRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- serviços ---
	numeracao := services.NewNumeracaoService(cfg.Numeracao)
	tipoDocService := services.NewTipoDocumentoService(tipoDocRepo, cacheRepo, cfg.Prazo.CacheReferenciaTTL, loggers.Main)
	setorService := services.NewSetorService(setorRepo, cacheRepo, cfg.Prazo.CacheReferenciaTTL, loggers.Main)
	protocoloService := services.NewProtocoloService(
		txManager, protocoloRepo, tramitacaoRepo, numeradorRepo,
		tipoDocService, setorService, numeracao, rel, loggers.Protocolo,
	)
	anexoService := services.NewAnexoService(anexoRepo, protocoloRepo, blobStore, cfg.Upload, rel, loggers.Main)

	notificador := notifier.NewComReenvio(notifier.NewLogNotifier(loggers.Monitor), 3, 2*time.Second, loggers.Monitor)
	prazoMonitor := services.NewPrazoMonitor(
		protocoloRepo, notificacaoRepo, setorService, notificador, rel, cfg.Prazo, loggers.Monitor,
	)
	relatorioService := services.NewRelatorioService(
		protocoloRepo, tipoDocService, setorService, prazoMonitor, rel, loggers.Main,
	)

	integracaoService := services.NewIntegracaoService(protocoloService, tipoDocService, setorService, loggers.Integracao)
	integracaoService.RegistrarListeners(bus)

	// --- controllers ---
	protocoloCtrl := controllers.NewProtocoloController(protocoloService, loggers.Protocolo)
	anexoCtrl := controllers.NewAnexoController(anexoService, loggers.Main)
	relatorioCtrl := controllers.NewRelatorioController(relatorioService, loggers.Main)
	tipoDocCtrl := controllers.NewTipoDocumentoController(tipoDocService, loggers.Main)
	setorCtrl := controllers.NewSetorController(setorService, loggers.Main)
	integracaoCtrl := controllers.NewIntegracaoController(bus, loggers.Integracao)

	// --- rotas ---
	secureGroup := api.Group("", authMW.Auth)

	runProtocoloRouter(secureGroup, protocoloCtrl)
	runAnexoRouter(secureGroup, anexoCtrl)
	runRelatorioRouter(secureGroup, relatorioCtrl)
	runCadastroRouter(secureGroup, tipoDocCtrl, setorCtrl)
	runIntegracaoRouter(secureGroup, integracaoCtrl)

	loggers.Main.Info("rotas registradas")
	return prazoMonitor, nil
}
