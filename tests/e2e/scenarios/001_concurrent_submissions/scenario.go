package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define the generated log and must match the expected report below.
const (
	roundsPerLog = 250 // each round appends one line per client plus the failed logins
)

var (
	clients   = []string{"198.51.100.7", "192.168.1.10", "10.0.0.2", "172.16.0.3"}
	endpoints = []string{"/home", "/about", "/contact", "/login"}
	attacker  = "198.51.100.7"
)

// ### End - fixed configs

type keyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type report struct {
	AnalysisID        string     `json:"analysisId"`
	RequestsByClient  []keyCount `json:"requestsByClient"`
	TopEndpoint       *keyCount  `json:"topEndpoint"`
	SuspiciousClients []keyCount `json:"suspiciousClients"`
}

// main runs the e2e scenario: 001_concurrent_submissions
//
// The same generated access log is submitted many times in parallel to POST /analyses.
// Every submission must be analyzed independently and stored under its own analysis id.
//
// What it tests:
//   - Log submission via POST /analyses with the x-failed-login-threshold header
//   - Unique analysis ids and Location headers under concurrency
//   - Stored reports returned by GET /analyses/{analysisID} match the generated log
//   - Report files are written to the file storage directory
//
// Expected results, per report:
//   - requestsByClient ranks 198.51.100.7 and 192.168.1.10 first with 2 * roundsPerLog requests,
//     then 10.0.0.2 and 172.16.0.3 with roundsPerLog each, ties in first-appearance order
//   - topEndpoint is /login with 3 * roundsPerLog hits
//   - suspiciousClients holds only 198.51.100.7 with roundsPerLog failures
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the analyzer API server
	submissions := 200                 // Number of times the log is submitted
	parallel := 8                      // Number of concurrent submissions
	threshold := roundsPerLog - 1      // Failed logins above this mark a client suspicious
	fileStorageDir := "."              // report.root_dir of the running server, relative to project root

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	storagePath := filepath.Join(projectRoot, fileStorageDir, "analyses")

	fmt.Println("Starting e2e scenario: 001_concurrent_submissions")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("SUBMISSIONS: %d\n", submissions)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("THRESHOLD: %d\n", threshold)
	fmt.Printf("ANALYSES_PATH: %s\n", storagePath)
	fmt.Println()

	body := generateLog()
	fmt.Printf("Generated log with %d lines\n", strings.Count(string(body), "\n"))
	fmt.Println()

	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs []error
	ids := make(map[string]struct{}, submissions)
	var created int64

	for i := 1; i <= submissions; i++ {
		wg.Add(1)
		workerChan <- struct{}{}

		go func(n int) {
			defer wg.Done()
			defer func() { <-workerChan }()

			id, err := submit(baseURL, body, threshold, n)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("submission %d: %w", n, err))
				fmt.Fprintf(os.Stderr, "ERROR: Submission %d failed: %v\n", n, err)
				return
			}
			if _, dup := ids[id]; dup {
				errs = append(errs, fmt.Errorf("submission %d: duplicate analysis id %s", n, id))
				return
			}
			ids[id] = struct{}{}
			atomic.AddInt64(&created, 1)
		}(i)
	}
	wg.Wait()

	if len(errs) > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d submissions failed\n", len(errs))
		os.Exit(1)
	}

	verified := 0
	for id := range ids {
		if err := verify(baseURL, id); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: analysis %s: %v\n", id, err)
			os.Exit(1)
		}
		if _, err := os.Stat(filepath.Join(storagePath, id+".json")); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: analysis %s not in file storage: %v\n", id, err)
			os.Exit(1)
		}
		verified++
	}

	fmt.Println("=== Statistics ===")
	fmt.Printf("Created analyses: %d\n", atomic.LoadInt64(&created))
	fmt.Printf("Verified reports: %d\n", verified)
	fmt.Println("Scenario completed successfully")
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod, run from the project root")
		}
		dir = parent
	}
}

// generateLog writes roundsPerLog rounds. In each round every client requests one page,
// then the attacker fails one login attempt.
func generateLog() []byte {
	var b bytes.Buffer
	for round := 0; round < roundsPerLog; round++ {
		for i, ip := range clients {
			fmt.Fprintf(&b, "%s - - [17/Oct/2026:10:%02d:%02d +0000] \"GET %s HTTP/1.1\" 200 512\n",
				ip, round%60, i, endpoints[i])
		}
		fmt.Fprintf(&b, "%s - - [17/Oct/2026:10:%02d:59 +0000] \"POST /login HTTP/1.1\" 401 128 \"Invalid credentials\"\n",
			attacker, round%60)
		fmt.Fprintf(&b, "%s - - [17/Oct/2026:10:%02d:59 +0000] \"GET /login HTTP/1.1\" 200 64\n",
			clients[1], round%60)
	}
	return b.Bytes()
}

func submit(baseURL string, body []byte, threshold, n int) (string, error) {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/analyses", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("x-failed-login-threshold", fmt.Sprint(threshold))
	req.Header.Set("x-log-source", fmt.Sprintf("e2e-%04d", n))

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var r report
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if want := "/analyses/" + r.AnalysisID; resp.Header.Get("Location") != want {
		return "", fmt.Errorf("location %q, want %q", resp.Header.Get("Location"), want)
	}
	return r.AnalysisID, nil
}

func verify(baseURL, id string) error {
	resp, err := http.Get(baseURL + "/analyses/" + id)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var r report
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	wantRanking := []keyCount{
		{Key: "198.51.100.7", Count: 2 * roundsPerLog},
		{Key: "192.168.1.10", Count: 2 * roundsPerLog},
		{Key: "10.0.0.2", Count: roundsPerLog},
		{Key: "172.16.0.3", Count: roundsPerLog},
	}
	if len(r.RequestsByClient) != len(wantRanking) {
		return fmt.Errorf("ranking has %d clients, want %d", len(r.RequestsByClient), len(wantRanking))
	}
	for i, want := range wantRanking {
		if r.RequestsByClient[i] != want {
			return fmt.Errorf("ranking[%d] = %+v, want %+v", i, r.RequestsByClient[i], want)
		}
	}

	wantTop := keyCount{Key: "/login", Count: 3 * roundsPerLog}
	if r.TopEndpoint == nil || *r.TopEndpoint != wantTop {
		return fmt.Errorf("top endpoint = %+v, want %+v", r.TopEndpoint, wantTop)
	}

	wantSuspicious := keyCount{Key: attacker, Count: roundsPerLog}
	if len(r.SuspiciousClients) != 1 || r.SuspiciousClients[0] != wantSuspicious {
		return fmt.Errorf("suspicious = %+v, want [%+v]", r.SuspiciousClients, wantSuspicious)
	}
	return nil
}
