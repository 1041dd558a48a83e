package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedTiposDocumento(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Populando a tabela 'tipos_documento'...")

	query := `INSERT INTO tipos_documento (nome, prazo_resposta_dias, exige_assinatura, ativo)
			  VALUES ($1, $2, $3, TRUE)
			  ON CONFLICT (nome) DO UPDATE SET
				  prazo_resposta_dias = EXCLUDED.prazo_resposta_dias,
				  exige_assinatura = EXCLUDED.exige_assinatura;`

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, t := range tiposDocumentoData {
		if _, err := tx.Exec(ctx, query, t.Nome, t.PrazoRespostaDias, t.ExigeAssinatura); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func seedSetores(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Populando a tabela 'setores'...")

	query := `INSERT INTO setores (nome, sigla, pode_protocolar, pode_tramitar, email_contato)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (sigla) DO UPDATE SET
				  nome = EXCLUDED.nome,
				  pode_protocolar = EXCLUDED.pode_protocolar,
				  pode_tramitar = EXCLUDED.pode_tramitar,
				  email_contato = EXCLUDED.email_contato;`

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, s := range setoresData {
		if _, err := tx.Exec(ctx, query, s.Nome, s.Sigla, s.PodeProtocolar, s.PodeTramitar, s.EmailContato); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// SeedCadastros popula os cadastros de referência (tipos de documento e
// setores). Idempotente: rodar de novo apenas atualiza os registros.
func SeedCadastros(db *pgxpool.Pool) {
	ctx := context.Background()

	if err := seedTiposDocumento(ctx, db); err != nil {
		log.Fatalf("❌ Erro ao popular tipos de documento: %v", err)
	}
	if err := seedSetores(ctx, db); err != nil {
		log.Fatalf("❌ Erro ao popular setores: %v", err)
	}
	log.Println("✅ Cadastros de referência populados.")
}
