package tool

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/hupe1980/chatmesh/logging"
)

// DefaultSearchURL is the public DuckDuckGo HTML results endpoint. No API
// key is required.
const DefaultSearchURL = "https://duckduckgo.com/html/"

var (
	resultTitleRe = regexp.MustCompile(`class="result__a"[^>]*>(.*?)</a>`)
	resultLinkRe  = regexp.MustCompile(`class="result__a"\s+href="([^"]+)"`)
	markupRe      = regexp.MustCompile(`<[^>]*>`)
)

// SearchOptions configures the lookup tool.
type SearchOptions struct {
	// BaseURL is the search engine's HTML results endpoint; overridable for
	// tests.
	BaseURL string

	// TopK caps the number of extracted results.
	TopK int

	// HTTPClient issues the outbound GET; its timeout bounds the call.
	HTTPClient *http.Client

	// Logger defaults to a NoOpLogger if nil.
	Logger logging.Logger
}

// SearchTool issues an outbound GET to a search engine's HTML result page
// and extracts result titles and links by pattern matching. Every failure
// (network, status, no matches) is reported as a descriptive reply string;
// the tool never propagates an error to the caller.
type SearchTool struct {
	opts SearchOptions
}

// NewSearchTool creates a SearchTool with a bounded default timeout.
func NewSearchTool(optFns ...func(o *SearchOptions)) *SearchTool {
	opts := SearchOptions{
		BaseURL:    DefaultSearchURL,
		TopK:       3,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Logger:     logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	opts.Logger = logging.OrNoOp(opts.Logger)
	return &SearchTool{opts: opts}
}

// Search fetches the result page for the URL-escaped query and returns one
// "title - link" line per result, up to TopK.
func (t *SearchTool) Search(query string) string {
	endpoint := fmt.Sprintf("%s?q=%s", t.opts.BaseURL, url.QueryEscape(query))

	resp, err := t.opts.HTTPClient.Get(endpoint)
	if err != nil {
		t.opts.Logger.Warn("search request failed", "error", err.Error())
		return fmt.Sprintf("Search error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Sprintf("Search error: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Sprintf("Search error: %v", err)
	}

	titles := resultTitleRe.FindAllStringSubmatch(string(body), -1)
	links := resultLinkRe.FindAllStringSubmatch(string(body), -1)

	var lines []string
	for i, m := range titles {
		if i >= t.opts.TopK {
			break
		}
		title := markupRe.ReplaceAllString(m[1], "")
		link := ""
		if i < len(links) {
			link = links[i][1]
		}
		lines = append(lines, fmt.Sprintf("%s - %s", title, link))
	}
	if len(lines) == 0 {
		return "No results found."
	}
	return strings.Join(lines, "\n")
}
