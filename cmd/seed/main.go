package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type bookPayload struct {
	Name      string `json:"name"`
	Year      int    `json:"year"`
	Author    string `json:"author"`
	Summary   string `json:"summary"`
	Publisher string `json:"publisher"`
	PageCount int    `json:"pageCount"`
	ReadPage  int    `json:"readPage"`
	Reading   bool   `json:"reading"`
}

func main() {
	_ = godotenv.Load(".env.local")

	count := flag.Int("count", 100, "number of books to generate")
	out := flag.String("out", "", "write the generated books as a JSON seed file")
	apiURL := flag.String("api", os.Getenv("SEED_API_URL"), "POST the generated books to this API base URL")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	books := generate(rng, *count)

	switch {
	case *out != "":
		if err := writeSeedFile(*out, books); err != nil {
			logger.Error("cannot write seed file", slog.String("path", *out), slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("seed file written", slog.String("path", *out), slog.Int("count", len(books)))
	case *apiURL != "":
		client := &http.Client{Timeout: 5 * time.Second}
		n, err := post(context.Background(), client, *apiURL, books)
		if err != nil {
			logger.Error("seeding stopped", slog.Int("added", n), slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("books posted", slog.String("api", *apiURL), slog.Int("count", n))
	default:
		if err := json.NewEncoder(os.Stdout).Encode(books); err != nil {
			logger.Error("cannot encode books", slog.Any("error", err))
			os.Exit(1)
		}
	}
}

var (
	authors    = []string{"Andrea Hirata", "Pramoedya Ananta Toer", "Tere Liye", "Dee Lestari", "Ahmad Tohari", "Eka Kurniawan"}
	publishers = []string{"Bentang Pustaka", "Gramedia", "Mizan", "Republika", "Dicoding Indonesia"}
	words      = []string{"Senja", "Laut", "Hujan", "Bumi", "Pelangi", "Rindu", "Cahaya", "Langit", "Pulang", "Kopi"}
)

func generate(rng *rand.Rand, count int) []bookPayload {
	books := make([]bookPayload, 0, count)
	for i := 0; i < count; i++ {
		pages := 100 + rng.Intn(800)
		read := rng.Intn(pages + 1)
		if rng.Intn(4) == 0 {
			read = pages
		}
		books = append(books, bookPayload{
			Name:      fmt.Sprintf("%s %s %d", randomWord(rng), randomWord(rng), i+1),
			Year:      1950 + rng.Intn(75),
			Author:    authors[rng.Intn(len(authors))],
			Summary:   fmt.Sprintf("Sebuah kisah tentang %s.", strings.ToLower(randomWord(rng))),
			Publisher: publishers[rng.Intn(len(publishers))],
			PageCount: pages,
			ReadPage:  read,
			Reading:   read > 0 && read < pages,
		})
	}
	return books
}

func randomWord(rng *rand.Rand) string {
	return words[rng.Intn(len(words))]
}

func writeSeedFile(path string, books []bookPayload) error {
	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// post sends each book to POST {baseURL}/books and returns how many were
// accepted before the first failure.
func post(ctx context.Context, client *http.Client, baseURL string, books []bookPayload) (int, error) {
	endpoint := strings.TrimRight(baseURL, "/") + "/books"
	for i, b := range books {
		body, err := json.Marshal(b)
		if err != nil {
			return i, err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return i, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return i, err
		}
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			return i, fmt.Errorf("book %d: status %d: %s", i, resp.StatusCode, strings.TrimSpace(string(msg)))
		}
	}
	return len(books), nil
}
