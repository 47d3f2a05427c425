// Command loadtest fires count queries at a running server and prints
// latency figures.
//
//	loadtest --token <api token> --campaign 4510461 --rate 500 --duration 30s
package main

import (
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"

	"click-logs/internal/core/domain"
)

type testConfig struct {
	BaseURL    string
	Token      string
	Campaign   int64
	AfterDate  string
	BeforeDate string
	Frequency  int
	Duration   time.Duration
}

func main() {
	var cfg testConfig
	flag.StringVar(&cfg.BaseURL, "url", "http://localhost:8080", "server base URL")
	flag.StringVar(&cfg.Token, "token", "", "API token")
	flag.Int64Var(&cfg.Campaign, "campaign", 4510461, "campaign to count")
	flag.StringVar(&cfg.AfterDate, "after", "", "after_date bound ("+domain.BoundLayout+")")
	flag.StringVar(&cfg.BeforeDate, "before", "", "before_date bound ("+domain.BoundLayout+")")
	flag.IntVar(&cfg.Frequency, "rate", 100, "requests per second")
	flag.DurationVar(&cfg.Duration, "duration", 10*time.Second, "attack duration")
	flag.Parse()

	if cfg.Token == "" {
		fmt.Fprintln(os.Stderr, "loadtest: --token is required")
		os.Exit(2)
	}

	target := vegeta.Target{
		Method: http.MethodGet,
		URL:    targetURL(cfg),
		Header: http.Header{"Authorization": {"Token " + cfg.Token}},
	}

	rate := vegeta.Rate{Freq: cfg.Frequency, Per: time.Second}
	targeter := vegeta.NewStaticTargeter(target)
	attacker := vegeta.NewAttacker()

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, cfg.Duration, "campaign-clicks") {
		metrics.Add(res)
	}
	metrics.Close()

	printTestResults(metrics)
	if metrics.Success < 1 {
		os.Exit(1)
	}
}

func targetURL(cfg testConfig) string {
	q := url.Values{}
	if cfg.AfterDate != "" {
		q.Set("after_date", cfg.AfterDate)
	}
	if cfg.BeforeDate != "" {
		q.Set("before_date", cfg.BeforeDate)
	}
	u := cfg.BaseURL + "/clicks/campaign/" + strconv.FormatInt(cfg.Campaign, 10) + "/"
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

func printTestResults(metrics vegeta.Metrics) {
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.2f%%\n", metrics.Success*100)
	fmt.Printf("Status codes: %v\n", metrics.StatusCodes)

	fmt.Printf("Request Latency Stats:\n")
	fmt.Printf("  Average latency: %s\n", metrics.Latencies.Mean)
	fmt.Printf("  99th percentile: %s\n", metrics.Latencies.P99)
	fmt.Printf("  Max latency: %s\n", metrics.Latencies.Max)
	fmt.Printf("  Min latency: %s\n", metrics.Latencies.Min)
}
