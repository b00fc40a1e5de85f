package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"bistroboss/internal/cache"
	"bistroboss/internal/config"
	"bistroboss/internal/db"
	"bistroboss/internal/repository"
	"bistroboss/internal/service"
)

func main() {
	menuSource := flag.String("menu", envOr("SEED_MENU", "menu.json"), "menu documents: file path or http(s) URL")
	reviewSource := flag.String("reviews", envOr("SEED_REVIEWS", "reviews.json"), "review documents: file path or http(s) URL")
	flag.Parse()

	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// Connect to database
	database, err := db.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = database.Client().Disconnect(context.Background()) }()
	log.Println("Connected to database")

	if err := repository.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	sources := []struct {
		collection string
		source     string
	}{
		{repository.MenuCollection, *menuSource},
		{repository.ReviewCollection, *reviewSource},
	}

	for _, s := range sources {
		if s.source == "" {
			continue
		}

		log.Printf("Loading %s from: %s", s.collection, s.source)
		docs, err := loadDocuments(ctx, s.source)
		if err != nil {
			log.Fatalf("Failed to load %s: %v", s.collection, err)
		}

		seeded, updated, err := repository.SeedDocuments(ctx, database, s.collection, docs)
		if err != nil {
			log.Fatalf("Failed to seed %s: %v", s.collection, err)
		}

		log.Printf("Seeded %s", s.collection)
		log.Printf("  - New documents created: %d", seeded)
		log.Printf("  - Existing documents updated: %d", updated)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer func() { _ = cacheClient.Close() }()
	invalidateListCaches(ctx, cacheClient)
	log.Println("Cached menu and review listings cleared")

	log.Printf("Seed completed successfully!")
}

// invalidateListCaches drops the cached listings so the server reloads the seeded collections.
func invalidateListCaches(ctx context.Context, c *cache.Client) {
	_ = c.Delete(ctx, service.MenuCacheKey, service.ReviewCacheKey)
}

// loadDocuments reads a JSON array of documents from a file or an http(s) URL.
func loadDocuments(ctx context.Context, source string) ([]bson.M, error) {
	var body []byte
	var err error
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		body, err = fetch(ctx, source)
	} else {
		body, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}

	var docs []bson.M
	if err := json.Unmarshal(body, &docs); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return docs, nil
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("source returned status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
