// The benchmark command load-tests the playground chat endpoint against a
// local mock provider, so the numbers measure the service and not a paid
// upstream.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
	"go.uber.org/zap"

	"github.com/practica/exercises/internal/config"
	"github.com/practica/exercises/internal/llm"
	"github.com/practica/exercises/internal/server"
)

const (
	mockPort = 9091
	appPort  = 8099
)

var (
	unaryResp  = []byte(`{"id":"bench-1","choices":[{"message":{"role":"assistant","content":"Hello"}}],"usage":{"total_tokens":5}}`)
	streamBody = "data: {\"choices\":[{\"delta\":{\"content\":\"Bench\"}}]}\n\ndata: {\"choices\":[{\"delta\":{\"content\":\"mark\"}}]}\n\ndata: [DONE]\n\n"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "duration of the attack")
	rate := flag.Int("rate", 50, "requests per second")
	stream := flag.Bool("stream", false, "use streaming requests")
	flag.Parse()

	go startMockProvider()

	// Point the openai adapter at the mock and run the playground
	// in-process.
	os.Setenv("OPENAI_API_KEY", "bench-key")
	os.Setenv("OPENAI_BASE_URL", fmt.Sprintf("http://localhost:%d/v1", mockPort))
	os.Setenv("DEFAULT_LLM_PROVIDER", "openai")
	os.Setenv("PORT", fmt.Sprintf("%d", appPort))
	os.Setenv("LOG_LEVEL", "error")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	client, err := llm.New(cfg, llm.OpenAI)
	if err != nil {
		log.Fatalf("client: %v", err)
	}

	srv := server.New(cfg, zap.NewNop(), map[llm.ProviderName]llm.Client{llm.OpenAI: client})
	go func() {
		if err := srv.Run(); err != nil {
			log.Fatalf("server: %v", err)
		}
	}()
	waitForReady(fmt.Sprintf("http://localhost:%d/healthz", appPort))

	body := `{"messages":[{"role":"user","content":"Hello"}]}`
	if *stream {
		body = `{"stream":true,"messages":[{"role":"user","content":"Hello"}]}`
	}

	targeter := vegeta.NewStaticTargeter(vegeta.Target{
		Method: http.MethodPost,
		URL:    fmt.Sprintf("http://localhost:%d/v1/chat", appPort),
		Body:   []byte(body),
		Header: http.Header{"Content-Type": []string{"application/json"}},
	})

	mode := "unary"
	if *stream {
		mode = "streaming"
	}
	fmt.Printf("Running %s benchmark: %s at %d req/s\n", mode, *duration, *rate)

	attacker := vegeta.NewAttacker(vegeta.KeepAlive(true))
	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, vegeta.Rate{Freq: *rate, Per: time.Second}, *duration, "playground") {
		metrics.Add(res)
	}
	metrics.Close()

	reporter := vegeta.NewTextReporter(&metrics)
	if err := reporter.Report(os.Stdout); err != nil {
		log.Fatalf("report: %v", err)
	}
}

func startMockProvider() {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Stream bool `json:"stream"`
		}
		// Decode errors mean unary.
		_ = json.NewDecoder(r.Body).Decode(&req)

		if req.Stream {
			w.Header().Set("Content-Type", "text/event-stream")
			_, _ = w.Write([]byte(streamBody))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(unaryResp)
	})

	if err := http.ListenAndServe(fmt.Sprintf(":%d", mockPort), mux); err != nil {
		log.Fatalf("mock provider: %v", err)
	}
}

func waitForReady(url string) {
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	log.Fatal("server never became ready")
}
