package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Stevensbe/system-procon-sub001/internal/dto"
	"github.com/Stevensbe/system-procon-sub001/internal/entities"
	"github.com/Stevensbe/system-procon-sub001/pkg/constants"
	apperrors "github.com/Stevensbe/system-procon-sub001/pkg/errors"
	"github.com/Stevensbe/system-procon-sub001/pkg/types"
)

// Dublês em memória dos repositórios, com a mesma semântica de versão e
// idempotência dos reais.

type fakeTxManager struct{}

func (f *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeProtocoloRepo struct {
	mu        sync.Mutex
	porNumero map[string]*entities.Protocolo
	proximoID int64

	// Quando ligado, a próxima atualização falha como se outro escritor
	// tivesse commitado primeiro.
	conflitarProximaAtualizacao bool
}

func newFakeProtocoloRepo() *fakeProtocoloRepo {
	return &fakeProtocoloRepo{porNumero: make(map[string]*entities.Protocolo)}
}

func (f *fakeProtocoloRepo) CriarInTx(_ context.Context, _ pgx.Tx, p *entities.Protocolo) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.porNumero[p.Numero]; ok {
		return 0, fmt.Errorf("número duplicado: %s", p.Numero)
	}
	f.proximoID++
	p.ID = f.proximoID
	copia := *p
	f.porNumero[p.Numero] = &copia
	return p.ID, nil
}

func (f *fakeProtocoloRepo) BuscarPorNumero(_ context.Context, numero string) (*entities.Protocolo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.porNumero[numero]
	if !ok {
		return nil, apperrors.ErrProtocoloNaoEncontrado
	}
	copia := *p
	return &copia, nil
}

func (f *fakeProtocoloRepo) AtualizarEstadoInTx(_ context.Context, _ pgx.Tx, p *entities.Protocolo, versaoEsperada int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	atual, ok := f.porNumero[p.Numero]
	if !ok {
		return apperrors.ErrProtocoloNaoEncontrado
	}
	if f.conflitarProximaAtualizacao {
		f.conflitarProximaAtualizacao = false
		atual.Versao++
		return apperrors.ErrConflitoConcorrencia
	}
	if atual.Versao != versaoEsperada {
		return apperrors.ErrConflitoConcorrencia
	}
	copia := *p
	copia.Versao = versaoEsperada + 1
	f.porNumero[p.Numero] = &copia
	p.Versao = copia.Versao
	return nil
}

func (f *fakeProtocoloRepo) Listar(_ context.Context, _ types.Filter) ([]entities.Protocolo, uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entities.Protocolo, 0, len(f.porNumero))
	for _, p := range f.porNumero {
		out = append(out, *p)
	}
	return out, uint64(len(out)), nil
}

func (f *fakeProtocoloRepo) ListarPendentesPorSetor(_ context.Context, setorID int64, _, _ uint64) ([]entities.Protocolo, uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entities.Protocolo
	for _, p := range f.porNumero {
		if p.SetorAtualID == setorID && !constants.IsStatusTerminal(p.Status) {
			out = append(out, *p)
		}
	}
	return out, uint64(len(out)), nil
}

func (f *fakeProtocoloRepo) ListarVencidos(_ context.Context, agora time.Time, _, _ uint64) ([]entities.Protocolo, uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entities.Protocolo
	for _, p := range f.porNumero {
		if !constants.IsStatusTerminal(p.Status) && agora.After(p.PrazoResposta) {
			out = append(out, *p)
		}
	}
	return out, uint64(len(out)), nil
}

func (f *fakeProtocoloRepo) ListarNaoTerminais(_ context.Context) ([]entities.Protocolo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entities.Protocolo
	for _, p := range f.porNumero {
		if !constants.IsStatusTerminal(p.Status) {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeTramitacaoRepo struct {
	mu        sync.Mutex
	porNumero map[string][]entities.Tramitacao
	proximoID int64
}

func newFakeTramitacaoRepo() *fakeTramitacaoRepo {
	return &fakeTramitacaoRepo{porNumero: make(map[string][]entities.Tramitacao)}
}

func (f *fakeTramitacaoRepo) CriarInTx(_ context.Context, _ pgx.Tx, t *entities.Tramitacao) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.proximoID++
	t.ID = f.proximoID
	f.porNumero[t.NumeroProtocolo] = append(f.porNumero[t.NumeroProtocolo], *t)
	return t.ID, nil
}

func (f *fakeTramitacaoRepo) ListarPorProtocolo(_ context.Context, numero string) ([]entities.Tramitacao, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	eventos := f.porNumero[numero]
	out := make([]entities.Tramitacao, len(eventos))
	copy(out, eventos)
	return out, nil
}

func (f *fakeTramitacaoRepo) BuscarPorID(_ context.Context, id int64) (*entities.Tramitacao, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, eventos := range f.porNumero {
		for i := range eventos {
			if eventos[i].ID == id {
				copia := eventos[i]
				return &copia, nil
			}
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeTramitacaoRepo) RegistrarRecebimento(_ context.Context, id int64, recebidaEm time.Time, recebidaPor int64) (*entities.Tramitacao, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for numero, eventos := range f.porNumero {
		for i := range eventos {
			if eventos[i].ID != id {
				continue
			}
			if eventos[i].RecebidaEm != nil {
				copia := eventos[i]
				return &copia, false, nil
			}
			f.porNumero[numero][i].RecebidaEm = &recebidaEm
			f.porNumero[numero][i].RecebidaPor = &recebidaPor
			copia := f.porNumero[numero][i]
			return &copia, true, nil
		}
	}
	return nil, false, apperrors.ErrNotFound
}

// adulterar sobrescreve campos de um evento direto no armazenamento, fora do
// caminho normal de escrita.
func (f *fakeTramitacaoRepo) adulterar(numero string, sequencia int, mutar func(*entities.Tramitacao)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	eventos := f.porNumero[numero]
	for i := range eventos {
		if eventos[i].Sequencia == sequencia {
			mutar(&eventos[i])
		}
	}
}

type fakeNumeradorRepo struct {
	mu         sync.Mutex
	contadores map[string]int64
}

func newFakeNumeradorRepo() *fakeNumeradorRepo {
	return &fakeNumeradorRepo{contadores: make(map[string]int64)}
}

func (f *fakeNumeradorRepo) ProximaSequenciaDoDia(_ context.Context, _ pgx.Tx, dia time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	chave := dia.Format("2006-01-02")
	f.contadores[chave]++
	return f.contadores[chave], nil
}

type fakeTipoDocumentoService struct {
	porID map[int64]*entities.TipoDocumento
}

func (f *fakeTipoDocumentoService) BuscarPorID(_ context.Context, id int64) (*entities.TipoDocumento, error) {
	t, ok := f.porID[id]
	if !ok {
		return nil, apperrors.ErrTipoDocumentoNaoEncontrado
	}
	return t, nil
}

func (f *fakeTipoDocumentoService) BuscarPorNome(_ context.Context, nome string) (*entities.TipoDocumento, error) {
	for _, t := range f.porID {
		if t.Nome == nome {
			return t, nil
		}
	}
	return nil, apperrors.ErrTipoDocumentoNaoEncontrado
}

func (f *fakeTipoDocumentoService) Listar(_ context.Context, _ bool) ([]entities.TipoDocumento, error) {
	var out []entities.TipoDocumento
	for _, t := range f.porID {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTipoDocumentoService) Criar(_ context.Context, _ dto.CriarTipoDocumentoDTO) (*entities.TipoDocumento, error) {
	panic("não usado nos testes")
}

func (f *fakeTipoDocumentoService) Atualizar(_ context.Context, _ int64, _ dto.AtualizarTipoDocumentoDTO) error {
	panic("não usado nos testes")
}

type fakeSetorService struct {
	porID map[int64]*entities.Setor
}

func (f *fakeSetorService) BuscarPorID(_ context.Context, id int64) (*entities.Setor, error) {
	s, ok := f.porID[id]
	if !ok {
		return nil, apperrors.ErrSetorNaoEncontrado
	}
	return s, nil
}

func (f *fakeSetorService) BuscarPorSigla(_ context.Context, sigla string) (*entities.Setor, error) {
	for _, s := range f.porID {
		if s.Sigla == sigla {
			return s, nil
		}
	}
	return nil, apperrors.ErrSetorNaoEncontrado
}

func (f *fakeSetorService) Listar(_ context.Context) ([]entities.Setor, error) {
	var out []entities.Setor
	for _, s := range f.porID {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSetorService) Criar(_ context.Context, _ dto.CriarSetorDTO) (*entities.Setor, error) {
	panic("não usado nos testes")
}

func (f *fakeSetorService) Atualizar(_ context.Context, _ int64, _ dto.AtualizarSetorDTO) error {
	panic("não usado nos testes")
}
