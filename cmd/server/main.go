package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"saborhub/database"
	"saborhub/docstore"
	"saborhub/handlers"
	"saborhub/worker"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

// main initializes the server, both stores, and the background geocoder.
func main() {
	_ = godotenv.Load()

	db, err := database.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.CreateTables(); err != nil {
		log.Fatal("Failed to create tables:", err)
	}

	var docs docstore.Store
	if uri := os.Getenv("MONGO_URL"); uri != "" {
		m, err := docstore.ConnectMongo(context.Background(), uri)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB:", err)
		}
		defer m.Close(context.Background())
		docs = m
	} else {
		log.Println("MONGO_URL not set, using in-memory document store")
		docs = docstore.NewMemory()
	}

	worker.StartGeocodingWorker(docs)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handlers.HealthHandler(db.Driver))

	mux.HandleFunc("POST /estados", handlers.CriarEstadoHandler(db))
	mux.HandleFunc("GET /estados", handlers.ListarEstadosHandler(db))

	mux.HandleFunc("POST /cidades", handlers.CriarCidadeHandler(db))
	mux.HandleFunc("GET /cidades", handlers.ListarCidadesHandler(db))

	mux.HandleFunc("POST /restaurantes", handlers.CriarRestauranteHandler(db, docs))
	mux.HandleFunc("POST /restaurantes/por-nomes", handlers.CriarRestaurantePorNomesHandler(db, docs))
	mux.HandleFunc("GET /restaurantes", handlers.ListarRestaurantesHandler(db))
	mux.HandleFunc("GET /restaurantes/proximos", handlers.ProximosHandler(docs))
	mux.HandleFunc("GET /restaurantes/{id}", handlers.GetRestauranteHandler(db))
	mux.HandleFunc("PUT /restaurantes/{id}", handlers.AtualizarRestauranteHandler(db))
	mux.HandleFunc("DELETE /restaurantes/{id}", handlers.DeletarRestauranteHandler(db))

	origin := os.Getenv("FRONTEND_ORIGIN")
	if origin == "" {
		origin = "http://localhost:8501"
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{origin, "http://127.0.0.1:8501", "http://localhost:8501"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		AllowCredentials: true,
	})
	handler := c.Handler(mux)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatal("Server failed:", err)
	}
}
