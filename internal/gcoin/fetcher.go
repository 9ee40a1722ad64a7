package gcoin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// stepThreshold is the number of tokens sold per price step on the dashboard.
const stepThreshold = 54_000_000

const apology = "⚠️ Sorry, I couldn't get the latest G Coin data. Try again in a moment!"

type Snapshot struct {
	Step            float64
	TokenPrice      float64
	TotalPurchasedG float64
}

// Remaining is the token count left before the next price step.
func (s Snapshot) Remaining() int64 {
	return int64(s.Step*stepThreshold - s.TotalPurchasedG)
}

// Source produces one snapshot attempt. Each fallback tier is a Source.
type Source interface {
	Snapshot(ctx context.Context) (Snapshot, error)
	Name() string
}

// Fetcher tries its sources in order and formats the first snapshot it gets.
// Every tier is attempted exactly once; with all tiers exhausted the caller
// gets a fixed apology, never an error.
type Fetcher struct {
	sources []Source
}

func NewFetcher(dashboardURL, snapshotFile string) *Fetcher {
	return &Fetcher{sources: []Source{
		&liveSource{
			url:        dashboardURL,
			httpClient: &http.Client{Timeout: 10 * time.Second},
		},
		&fileSource{path: snapshotFile},
	}}
}

// NewFetcherWithSources is used by tests to control the fallback chain.
func NewFetcherWithSources(sources ...Source) *Fetcher {
	return &Fetcher{sources: sources}
}

// Report returns the human-readable stat report. It never fails outward.
func (f *Fetcher) Report(ctx context.Context) string {
	for _, src := range f.sources {
		snap, err := src.Snapshot(ctx)
		if err != nil {
			log.Printf("[gcoin] %s source failed: %v", src.Name(), err)
			continue
		}
		return formatReport(snap)
	}
	return apology
}

func formatReport(s Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🪙 G Coin is currently priced at $**%s**\n", strconv.FormatFloat(s.TokenPrice, 'f', -1, 64))
	fmt.Fprintf(&b, "📊 Step: %s\n", strconv.FormatFloat(s.Step, 'f', -1, 64))
	fmt.Fprintf(&b, "🧴 Tokens remaining till next price bump: %s\n", humanize.Comma(s.Remaining()))
	b.WriteString("🚀 Time to stock up before the next jump!")
	return b.String()
}

// Apology exposes the terminal fallback string for handler tests.
func Apology() string { return apology }

// ---- Dashboard document parsing ----

// The dashboard returns {series:[{fields:[{name,values:[...]}]}]}. The three
// consumed fields are located by name; each contributes its first value.
type dashboardDoc struct {
	Series []struct {
		Fields []dashboardField `json:"fields"`
	} `json:"series"`
}

type dashboardField struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

func parseDashboard(b []byte) (Snapshot, error) {
	var doc dashboardDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return Snapshot{}, err
	}
	if len(doc.Series) == 0 {
		return Snapshot{}, fmt.Errorf("no series in dashboard document")
	}
	fields := doc.Series[0].Fields
	step, ok1 := firstValue(fields, "step")
	price, ok2 := firstValue(fields, "tokenPrice")
	purchased, ok3 := firstValue(fields, "totalPurchasedG")
	if !ok1 || !ok2 || !ok3 {
		return Snapshot{}, fmt.Errorf("missing G Coin fields")
	}
	return Snapshot{Step: step, TokenPrice: price, TotalPurchasedG: purchased}, nil
}

func firstValue(fields []dashboardField, name string) (float64, bool) {
	for _, f := range fields {
		if f.Name == name && len(f.Values) > 0 {
			return f.Values[0], true
		}
	}
	return 0, false
}

// ---- Sources ----

type liveSource struct {
	url        string
	httpClient *http.Client
}

func (l *liveSource) Name() string { return "live" }

func (l *liveSource) Snapshot(ctx context.Context) (Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return Snapshot{}, err
	}
	resp, err := l.httpClient.Do(req)
	if err != nil {
		return Snapshot{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Snapshot{}, fmt.Errorf("dashboard returned status %d", resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return Snapshot{}, err
	}
	return parseDashboard(b)
}

type fileSource struct {
	path string
}

func (f *fileSource) Name() string { return "snapshot" }

func (f *fileSource) Snapshot(ctx context.Context) (Snapshot, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		return Snapshot{}, err
	}
	return parseDashboard(b)
}
