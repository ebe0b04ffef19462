// Package fetch retrieves raw feed items through third-party proxies.
//
// Sources are fetched through a feed-to-JSON transform service first; when
// that fails in any way the client falls back to a raw CORS proxy and
// parses the feed body locally. A source whose both tiers fail simply
// contributes zero items.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
	log "github.com/sirupsen/logrus"
)

// ItemCap bounds how many items one source may contribute.
const ItemCap = 20

// RawItem is a feed entry before normalization. PubDate keeps whatever
// timestamp string the upstream produced.
type RawItem struct {
	Title       string
	Description string
	Link        string
	GUID        string
	PubDate     string
}

// Doer is the HTTP capability the client depends on, satisfied by
// *http.Client.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client fetches one source at a time; FetchAll fans out over it.
type Client struct {
	http         Doer
	transformURL string
	proxyURL     string
	parser       *gofeed.Parser
}

func NewClient(httpClient Doer, transformURL, proxyURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	return &Client{
		http:         httpClient,
		transformURL: transformURL,
		proxyURL:     proxyURL,
		parser:       gofeed.NewParser(),
	}
}

// transformResponse is the shape of the feed-to-JSON service's reply.
type transformResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Items   []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Link        string `json:"link"`
		GUID        string `json:"guid"`
		PubDate     string `json:"pubDate"`
	} `json:"items"`
}

// proxyResponse is the raw-content proxy's envelope.
type proxyResponse struct {
	Contents string `json:"contents"`
}

// Fetch returns the raw items for one source URL, trying the transform
// service first and the raw proxy second. Both tiers failing is the only
// error condition.
func (c *Client) Fetch(ctx context.Context, sourceURL string) ([]RawItem, error) {
	items, terr := c.fetchTransform(ctx, sourceURL)
	if terr == nil {
		return items, nil
	}
	log.WithField("source", sourceURL).WithError(terr).Debug("transform tier failed, trying raw proxy")

	items, perr := c.fetchProxy(ctx, sourceURL)
	if perr != nil {
		return nil, fmt.Errorf("fetching %s: transform: %v; proxy: %w", sourceURL, terr, perr)
	}
	return items, nil
}

func (c *Client) fetchTransform(ctx context.Context, sourceURL string) ([]RawItem, error) {
	endpoint := fmt.Sprintf("%s?rss_url=%s&count=%d", c.transformURL, url.QueryEscape(sourceURL), ItemCap)
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var resp transformResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding transform response: %w", err)
	}
	if resp.Status != "ok" {
		return nil, fmt.Errorf("transform status %q: %s", resp.Status, resp.Message)
	}

	items := make([]RawItem, 0, len(resp.Items))
	for _, it := range resp.Items {
		if len(items) >= ItemCap {
			break
		}
		items = append(items, RawItem{
			Title:       it.Title,
			Description: it.Description,
			Link:        it.Link,
			GUID:        it.GUID,
			PubDate:     it.PubDate,
		})
	}
	return items, nil
}

func (c *Client) fetchProxy(ctx context.Context, sourceURL string) ([]RawItem, error) {
	endpoint := fmt.Sprintf("%s?url=%s", c.proxyURL, url.QueryEscape(sourceURL))
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var resp proxyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding proxy response: %w", err)
	}
	if resp.Contents == "" {
		return nil, fmt.Errorf("proxy returned empty contents")
	}
	return c.parseFeed(resp.Contents)
}

// parseFeed handles both RSS 2.0 and Atom bodies; gofeed detects the
// dialect. Missing fields get the documented safe fallbacks.
func (c *Client) parseFeed(raw string) ([]RawItem, error) {
	feed, err := c.parser.ParseString(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing feed body: %w", err)
	}

	items := make([]RawItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		if len(items) >= ItemCap {
			break
		}

		title := it.Title
		if title == "" {
			title = "Untitled"
		}
		desc := it.Description
		if desc == "" {
			desc = it.Content
		}
		pubDate := it.Published
		if pubDate == "" {
			pubDate = it.Updated
		}
		if pubDate == "" {
			pubDate = time.Now().Format(time.RFC1123Z)
		}

		items = append(items, RawItem{
			Title:       title,
			Description: desc,
			Link:        it.Link,
			GUID:        it.GUID,
			PubDate:     pubDate,
		})
	}
	return items, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Result collects the all-settled outcome of a fan-out fetch.
type Result struct {
	Items  []RawItem
	Errors []error
}

// FetchAll fetches every source concurrently and waits for all of them to
// settle. Order of Items follows source order so downstream dedupe is
// deterministic; a failed source contributes nothing.
func FetchAll(ctx context.Context, client *Client, sourceURLs []string) Result {
	var wg sync.WaitGroup
	perSource := make([][]RawItem, len(sourceURLs))
	perErr := make([]error, len(sourceURLs))

	for i, src := range sourceURLs {
		wg.Add(1)
		go func(i int, src string) {
			defer wg.Done()
			items, err := client.Fetch(ctx, src)
			if err != nil {
				perErr[i] = err
				return
			}
			perSource[i] = items
		}(i, src)
	}
	wg.Wait()

	var result Result
	for i := range sourceURLs {
		if perErr[i] != nil {
			log.WithField("source", sourceURLs[i]).WithError(perErr[i]).Warn("source failed, skipping")
			result.Errors = append(result.Errors, perErr[i])
			continue
		}
		result.Items = append(result.Items, perSource[i]...)
	}
	return result
}
