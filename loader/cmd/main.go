package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"elanbot/loader/internal"
	"elanbot/loader/service"
	"elanbot/model"
	"elanbot/store"
	"elanbot/types"

	"github.com/joho/godotenv"
)

func init() {
	mustLoadEnvVariables()
}

func main() {
	var chunksPath, pdfPath string
	flag.StringVar(&chunksPath, "chunks", "", "path to a JSON file with pre-chunked [{title, content}] records")
	flag.StringVar(&pdfPath, "pdf", "", "path to the ELAN manual PDF to chunk by section headings")
	flag.Parse()

	chunks, err := loadChunks(chunksPath, pdfPath)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	collection := os.Getenv("COLLECTION_NAME")
	if collection == "" {
		collection = "ELAN_docs_pages"
	}

	port, _ := strconv.Atoi(os.Getenv("PG_PORT"))
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", os.Getenv("PG_HOST"), port, os.Getenv("PG_USER"), os.Getenv("PG_PASS"), os.Getenv("PG_DB_NAME"))
	pool, err := store.NewPostgresStore(ctx, connStr, collection)
	if err != nil {
		log.Fatal("error to connect to Postgres database", err)
		return
	}

	if err := service.New(pool, model.NewEmbedder()).Run(ctx, chunks); err != nil {
		pool.Close()
		log.Fatal("ingestion failed: ", err)
	}

	log.Println("Closing database connection pool...")
	if err := pool.Close(); err != nil {
		log.Printf("error closing pool: %v\n", err)
	}
}

func loadChunks(chunksPath, pdfPath string) ([]types.Chunk, error) {
	switch {
	case chunksPath != "" && pdfPath != "":
		return nil, fmt.Errorf("use either -chunks or -pdf, not both")
	case chunksPath != "":
		return internal.ReadChunks(chunksPath)
	case pdfPath != "":
		return internal.NewPDFLoader().ExtractChunks(pdfPath)
	default:
		return nil, fmt.Errorf("usage: loader -chunks chunks.json | loader -pdf manual.pdf")
	}
}

func mustLoadEnvVariables() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}
