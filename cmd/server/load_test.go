//go:build load

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	targetRPS      = 5
	loadDuration   = 30 * time.Second
	maxLatencyP99  = 300 * time.Millisecond
	minSuccessRate = 0.999
	// RPS tolerance: allow ±10% deviation from target
	rpsTolerance = 0.1
)

type metrics struct {
	totalRequests   int
	successRequests int
	errorRequests   int
	latencies       []time.Duration
}

func baseURL() string {
	if url := os.Getenv("LOAD_BASE_URL"); url != "" {
		return url
	}
	return "http://localhost:8080"
}

func TestLoad_ReportProgress(t *testing.T) {
	userID, username := setupPlayer(t)

	question := 0
	runLoad(t, "ReportProgress", func() *http.Request {
		question = question%10 + 1
		body, _ := json.Marshal(map[string]any{
			"userId":         userID,
			"username":       username,
			"score":          question * 10,
			"questionNumber": question,
		})
		req, _ := http.NewRequest(http.MethodPost, baseURL()+"/api/scores/update", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return req
	})
}

func TestLoad_GetLeaderboard(t *testing.T) {
	setupPlayer(t)

	runLoad(t, "GetLeaderboard", func() *http.Request {
		req, _ := http.NewRequest(http.MethodGet, baseURL()+"/api/scores/leaderboard?limit=100", nil)
		return req
	})
}

func setupPlayer(t *testing.T) (string, string) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping load test in short mode")
	}

	client := &http.Client{Timeout: 5 * time.Second}
	healthResp, err := client.Get(baseURL() + "/health")
	if err != nil {
		t.Fatalf("Server is not running at %s. Please start the server first.\nError: %v", baseURL(), err)
	}
	healthResp.Body.Close()
	require.Equal(t, http.StatusOK, healthResp.StatusCode, "server health check failed")

	username := fmt.Sprintf("load%d", time.Now().UnixNano()%1_000_000_000)
	body, _ := json.Marshal(map[string]string{"username": username})
	resp, err := client.Post(baseURL()+"/api/auth/register", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Less(t, resp.StatusCode, 300)

	var auth struct {
		User struct {
			UserID string `json:"userId"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&auth))
	return auth.User.UserID, username
}

func runLoad(t *testing.T, name string, newRequest func() *http.Request) {
	t.Helper()

	client := &http.Client{Timeout: 10 * time.Second}
	m := &metrics{}

	ctx, cancel := context.WithTimeout(context.Background(), loadDuration)
	defer cancel()

	ticker := time.NewTicker(time.Second / targetRPS)
	defer ticker.Stop()

	start := time.Now()
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-ticker.C:
			reqStart := time.Now()
			resp, err := client.Do(newRequest())
			m.latencies = append(m.latencies, time.Since(reqStart))
			m.totalRequests++

			if err != nil {
				m.errorRequests++
				if m.errorRequests <= 3 {
					t.Logf("Request error: %v", err)
				}
				continue
			}

			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				m.successRequests++
			} else {
				m.errorRequests++
				if m.errorRequests <= 3 {
					body, _ := io.ReadAll(resp.Body)
					t.Logf("Request failed: status=%d, body=%s", resp.StatusCode, string(body))
				}
			}
			resp.Body.Close()
		}
	}

	elapsed := time.Since(start)
	printMetrics(t, name, m, elapsed)
	validateMetrics(t, m, elapsed)
}

func percentile(sorted []time.Duration, p int) time.Duration {
	return sorted[len(sorted)*p/1000]
}

func printMetrics(t *testing.T, testName string, m *metrics, elapsed time.Duration) {
	if len(m.latencies) == 0 {
		return
	}

	sorted := slices.Clone(m.latencies)
	slices.Sort(sorted)

	var total time.Duration
	for _, lat := range m.latencies {
		total += lat
	}

	t.Logf("\n=== Load Test Results: %s ===", testName)
	t.Logf("Duration: %v", elapsed)
	t.Logf("Total Requests: %d", m.totalRequests)
	t.Logf("Success Requests: %d", m.successRequests)
	t.Logf("Error Requests: %d", m.errorRequests)
	t.Logf("Success Rate: %.4f%%", float64(m.successRequests)/float64(m.totalRequests)*100)
	t.Logf("Actual RPS: %.2f", float64(m.totalRequests)/elapsed.Seconds())
	t.Logf("Average Latency: %v", total/time.Duration(len(m.latencies)))
	t.Logf("P50 Latency: %v", percentile(sorted, 500))
	t.Logf("P95 Latency: %v", percentile(sorted, 950))
	t.Logf("P99 Latency: %v", percentile(sorted, 990))
	t.Logf("P99.9 Latency: %v", percentile(sorted, 999))
}

func validateMetrics(t *testing.T, m *metrics, elapsed time.Duration) {
	if len(m.latencies) == 0 {
		return
	}

	sorted := slices.Clone(m.latencies)
	slices.Sort(sorted)
	p99 := percentile(sorted, 990)

	successRate := float64(m.successRequests) / float64(m.totalRequests)
	actualRPS := float64(m.totalRequests) / elapsed.Seconds()
	minRPS := float64(targetRPS) * (1 - rpsTolerance)
	maxRPS := float64(targetRPS) * (1 + rpsTolerance)

	require.GreaterOrEqual(t, successRate, minSuccessRate,
		"Success rate %.4f%% is below required %.4f%%", successRate*100, minSuccessRate*100)
	require.LessOrEqual(t, p99, maxLatencyP99,
		"P99 latency %v exceeds maximum %v", p99, maxLatencyP99)
	require.GreaterOrEqual(t, actualRPS, minRPS,
		"Actual RPS %.2f is below minimum %.2f (target: %.2f)", actualRPS, minRPS, float64(targetRPS))
	require.LessOrEqual(t, actualRPS, maxRPS,
		"Actual RPS %.2f exceeds maximum %.2f (target: %.2f)", actualRPS, maxRPS, float64(targetRPS))
}
