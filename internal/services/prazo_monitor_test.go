package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Stevensbe/system-procon-sub001/internal/entities"
	"github.com/Stevensbe/system-procon-sub001/pkg/config"
	"github.com/Stevensbe/system-procon-sub001/pkg/constants"
	"github.com/Stevensbe/system-procon-sub001/pkg/relogio"
)

type fakeNotificacaoRepo struct {
	mu        sync.Mutex
	registros map[string]bool
}

func newFakeNotificacaoRepo() *fakeNotificacaoRepo {
	return &fakeNotificacaoRepo{registros: make(map[string]bool)}
}

func (f *fakeNotificacaoRepo) RegistrarSeAusente(_ context.Context, numero, faixa string, dia time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	chave := numero + "|" + faixa + "|" + dia.Format("2006-01-02")
	if f.registros[chave] {
		return false, nil
	}
	f.registros[chave] = true
	return true, nil
}

type envioRegistrado struct {
	Destinatario string
	Assunto      string
}

type fakeNotifier struct {
	mu     sync.Mutex
	envios []envioRegistrado
	falhar bool
}

func (f *fakeNotifier) Send(_ context.Context, destinatario, assunto, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.falhar {
		return errors.New("smtp indisponível")
	}
	f.envios = append(f.envios, envioRegistrado{Destinatario: destinatario, Assunto: assunto})
	return nil
}

func novoMonitor(t *testing.T) (*PrazoMonitor, *fakeProtocoloRepo, *fakeNotifier, *relogio.RelogioFixo) {
	t.Helper()

	setores := &fakeSetorService{porID: map[int64]*entities.Setor{
		setorJuridico: {ID: setorJuridico, Sigla: "JUR", PodeTramitar: true, EmailContato: "juridico@procon.gov.br"},
	}}
	rel := &relogio.RelogioFixo{Instante: time.Date(2024, 1, 20, 8, 0, 0, 0, time.UTC)}
	protocoloRepo := newFakeProtocoloRepo()
	notificador := &fakeNotifier{}

	monitor := NewPrazoMonitor(
		protocoloRepo,
		newFakeNotificacaoRepo(),
		setores,
		notificador,
		rel,
		config.PrazoConfig{DiasAlerta: 3, DiasUrgente: 1, IntervaloVarredura: time.Minute},
		zap.NewNop(),
	)
	return monitor, protocoloRepo, notificador, rel
}

func protocoloComPrazo(numero string, prazo time.Time) *entities.Protocolo {
	return &entities.Protocolo{
		Numero:        numero,
		Assunto:       "Teste de prazo",
		Status:        constants.StatusEmTramitacao,
		SetorAtualID:  setorJuridico,
		PrazoResposta: prazo,
		Versao:        1,
	}
}

func TestClassificar_Faixas(t *testing.T) {
	monitor, _, _, rel := novoMonitor(t)
	agora := rel.Agora()

	assert.Equal(t, constants.FaixaVencido, monitor.Classificar(agora.Add(-time.Hour), agora))
	assert.Equal(t, constants.FaixaUrgente, monitor.Classificar(agora.Add(12*time.Hour), agora))
	assert.Equal(t, constants.FaixaAlerta, monitor.Classificar(agora.Add(2*24*time.Hour), agora))
	assert.Equal(t, constants.FaixaNormal, monitor.Classificar(agora.Add(10*24*time.Hour), agora))
}

func TestVarrer_NotificaSetorAtual(t *testing.T) {
	monitor, repo, notificador, rel := novoMonitor(t)

	_, err := repo.CriarInTx(context.Background(), nil, protocoloComPrazo("P-001", rel.Agora().Add(-time.Hour)))
	require.NoError(t, err)
	_, err = repo.CriarInTx(context.Background(), nil, protocoloComPrazo("P-002", rel.Agora().Add(30*24*time.Hour)))
	require.NoError(t, err)

	require.NoError(t, monitor.Varrer(context.Background()))
	monitor.AguardarEnvios()

	require.Len(t, notificador.envios, 1)
	assert.Equal(t, "juridico@procon.gov.br", notificador.envios[0].Destinatario)
	assert.Contains(t, notificador.envios[0].Assunto, "P-001")
	assert.Contains(t, notificador.envios[0].Assunto, "VENCIDO")
}

func TestVarrer_UmaNotificacaoPorFaixaPorDia(t *testing.T) {
	monitor, repo, notificador, rel := novoMonitor(t)

	_, err := repo.CriarInTx(context.Background(), nil, protocoloComPrazo("P-001", rel.Agora().Add(-time.Hour)))
	require.NoError(t, err)

	require.NoError(t, monitor.Varrer(context.Background()))
	require.NoError(t, monitor.Varrer(context.Background()))
	monitor.AguardarEnvios()
	assert.Len(t, notificador.envios, 1)

	// No dia seguinte o aviso sai de novo.
	rel.Avancar(24 * time.Hour)
	require.NoError(t, monitor.Varrer(context.Background()))
	monitor.AguardarEnvios()
	assert.Len(t, notificador.envios, 2)
}

func TestVarrer_ProtocoloTerminalNaoNotifica(t *testing.T) {
	monitor, repo, notificador, rel := novoMonitor(t)

	vencido := protocoloComPrazo("P-001", rel.Agora().Add(-time.Hour))
	vencido.Status = constants.StatusArquivado
	_, err := repo.CriarInTx(context.Background(), nil, vencido)
	require.NoError(t, err)

	require.NoError(t, monitor.Varrer(context.Background()))
	monitor.AguardarEnvios()
	assert.Empty(t, notificador.envios)
}

func TestVarrer_FalhaDeEnvioNaoInterrompe(t *testing.T) {
	monitor, repo, notificador, rel := novoMonitor(t)

	_, err := repo.CriarInTx(context.Background(), nil, protocoloComPrazo("P-001", rel.Agora().Add(-time.Hour)))
	require.NoError(t, err)
	notificador.falhar = true

	assert.NoError(t, monitor.Varrer(context.Background()))
	monitor.AguardarEnvios()
	assert.Empty(t, notificador.envios)
}

type notifierBloqueante struct {
	liberar chan struct{}
	mu      sync.Mutex
	total   int
}

func (n *notifierBloqueante) Send(_ context.Context, _, _, _ string) error {
	<-n.liberar
	n.mu.Lock()
	n.total++
	n.mu.Unlock()
	return nil
}

func TestVarrer_NaoBloqueiaNaEntrega(t *testing.T) {
	monitor, repo, _, rel := novoMonitor(t)
	notificador := &notifierBloqueante{liberar: make(chan struct{})}
	monitor.notificador = notificador

	_, err := repo.CriarInTx(context.Background(), nil, protocoloComPrazo("P-001", rel.Agora().Add(-time.Hour)))
	require.NoError(t, err)

	// A varredura retorna com a entrega ainda presa no notificador.
	require.NoError(t, monitor.Varrer(context.Background()))

	close(notificador.liberar)
	monitor.AguardarEnvios()

	notificador.mu.Lock()
	defer notificador.mu.Unlock()
	assert.Equal(t, 1, notificador.total)
}
