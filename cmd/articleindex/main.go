package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"articleindex/index"
	"articleindex/internal/corpus"
	"articleindex/internal/indexing"
	"articleindex/internal/search"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "build":
		runBuild(os.Args[2:])
	case "query":
		runQuery(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(2)
	}
}

func printUsage() {
	fmt.Printf("articleindex - an inverted index for articles\n\n")
	fmt.Printf("Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Printf("Commands:\n")
	fmt.Printf("  build   construct an inverted index from a dataset and save it to disk\n")
	fmt.Printf("  query   find common articles for the words of each query in a query file\n\n")
	fmt.Printf("Examples:\n")
	fmt.Printf("  %s build --dataset articles.txt --index index.json\n", os.Args[0])
	fmt.Printf("  %s query --index index.json --query-file queries.txt\n", os.Args[0])
}

func runBuild(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	dataset := fs.String("dataset", "", "path to the dataset to build the inverted index from")
	indexPath := fs.String("index", "", "path to write the inverted index dump to")
	_ = fs.Parse(args)

	if *dataset == "" || *indexPath == "" {
		fs.Usage()
		os.Exit(2)
	}

	docs, err := corpus.Load(*dataset)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	log.Printf("Loaded %d documents from %s", len(docs), *dataset)

	idx := indexing.BuildIndex(docs)
	log.Printf("Built inverted index with %d distinct terms", idx.Terms())

	if err := idx.Dump(*indexPath); err != nil {
		log.Fatalf("Failed to write index: %v", err)
	}
	log.Printf("Index written to %s", *indexPath)
}

func runQuery(args []string) {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	indexPath := fs.String("index", "", "path to load the inverted index from")
	queryFile := fs.String("query-file", "", "path to a file with one query per line")
	_ = fs.Parse(args)

	if *indexPath == "" || *queryFile == "" {
		fs.Usage()
		os.Exit(2)
	}

	idx, err := index.Load(*indexPath)
	if err != nil {
		log.Fatalf("Failed to load index: %v", err)
	}

	queries, err := os.Open(*queryFile)
	if err != nil {
		log.Fatalf("Failed to open query file: %v", err)
	}
	defer func() {
		if closeErr := queries.Close(); closeErr != nil {
			log.Printf("Warning: failed to close file %s: %v", *queryFile, closeErr)
		}
	}()

	svc, err := search.NewService(idx)
	if err != nil {
		log.Fatalf("Failed to create search service: %v", err)
	}
	if err := svc.Run(context.Background(), queries, os.Stdout); err != nil {
		log.Fatalf("Failed to run queries: %v", err)
	}
}
