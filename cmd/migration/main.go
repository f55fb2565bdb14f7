package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/config"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/infrastructure/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	down := flag.Bool("down", false, "desfaz a última migração em vez de aplicar")
	path := flag.String("path", "migrations", "diretório das migrações")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	dsn := cfg.Database.DSN()

	if *down {
		if err := database.RollbackMigration(dsn, *path); err != nil {
			log.Fatalf("Erro ao desfazer migração: %v", err)
		}
		log.Println("Migração desfeita com sucesso")
		return
	}

	if err := database.RunMigrations(dsn, *path); err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}
	log.Println("Migrações executadas com sucesso")
}
