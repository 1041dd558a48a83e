package main

import (
	"flag"
	"log"

	"github.com/Stevensbe/system-procon-sub001/pkg/config"
	"github.com/Stevensbe/system-procon-sub001/pkg/database/postgresql"
	"github.com/Stevensbe/system-procon-sub001/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 Seeders do sistema de protocolo             ")
	log.Println("======================================================")

	runCadastros := flag.Bool("cadastros", false, "Popular os cadastros de referência (tipos de documento e setores)")
	runAll := flag.Bool("all", false, "Rodar todos os seeders")
	flag.Parse()

	if !*runCadastros && !*runAll {
		log.Println("❌ Nenhum seeder selecionado.")
		log.Println("")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Exemplo: go run ./seeders/cmd/seed -cadastros")
		return
	}

	cfg := config.New()
	dbPool, err := postgresql.ConnectDB(cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("❌ Não foi possível conectar ao banco: %v", err)
	}
	defer dbPool.Close()

	if *runAll || *runCadastros {
		seeders.SeedCadastros(dbPool)
	}

	log.Println("✅ Seeders concluídos.")
}
