package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"saborhub/docstore"
	"saborhub/models"
)

const (
	BatchSize        = 50
	WorkerPoolSize   = 8
	IntervalDuration = 30 * time.Second
)

// StartGeocodingWorker kicks off a background routine that resolves
// coordinates for restaurant documents still carrying the null placeholder,
// using the Geoapify geocoding API. Without GEOAPIFY_API_KEY it stays idle.
func StartGeocodingWorker(docs docstore.Store) {
	log.Printf("Starting geocoding worker (Batch: %d, Concurrency: %d, Interval: %v)", BatchSize, WorkerPoolSize, IntervalDuration)
	ticker := time.NewTicker(IntervalDuration)
	go func() {
		for range ticker.C {
			processPending(docs)
		}
	}()
}

func processPending(docs docstore.Store) {
	apiKey := os.Getenv("GEOAPIFY_API_KEY")
	if apiKey == "" {
		return
	}

	ctx := context.Background()
	pendentes, err := docs.PendingCoordenadas(ctx, BatchSize)
	if err != nil {
		log.Println("Worker query error:", err)
		return
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, WorkerPoolSize)

	for _, doc := range pendentes {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(doc models.RestauranteDoc) {
			defer wg.Done()
			defer func() { <-semaphore }()

			lat, lon, err := fetchCoordinates(doc.Nome, doc.Cidade, doc.Estado, apiKey)
			if err != nil {
				log.Printf("Geocoding failed for %q (%s): %v", doc.Nome, doc.Cidade, err)
				return
			}

			if err := docs.SetCoordenadas(ctx, doc.Nome, doc.Cidade, lat, lon); err != nil {
				log.Printf("Failed to update %q: %v", doc.Nome, err)
			} else {
				log.Printf("Resolved: %s (%v, %v)", doc.Nome, lat, lon)
			}
		}(doc)
	}

	wg.Wait()
}

func fetchCoordinates(nome, cidade, estado, apiKey string) (float64, float64, error) {
	query := fmt.Sprintf("%s, %s, %s", nome, cidade, estado)
	apiURL := fmt.Sprintf("https://api.geoapify.com/v1/geocode/search?text=%s&apiKey=%s", url.QueryEscape(query), apiKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(apiURL)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	var result struct {
		Features []struct {
			Properties struct {
				Lat float64 `json:"lat"`
				Lon float64 `json:"lon"`
			} `json:"properties"`
		} `json:"features"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, 0, err
	}

	if len(result.Features) == 0 {
		return 0, 0, fmt.Errorf("no results found")
	}

	return result.Features[0].Properties.Lat, result.Features[0].Properties.Lon, nil
}
