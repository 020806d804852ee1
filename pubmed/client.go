// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package pubmed

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/poiesic/litstore/core"
)

const (
	// DefaultBaseURL is the NCBI E-utilities endpoint.
	DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

	// DefaultTool identifies this client to NCBI.
	DefaultTool = "litstore"
)

// Client queries the PubMed database through the NCBI E-utilities API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	email      string
	tool       string
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the E-utilities endpoint. Used by tests to point the
// client at a local server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTool sets the tool name sent with every request.
func WithTool(tool string) Option {
	return func(c *Client) {
		c.tool = tool
	}
}

// NewClient creates a new PubMed client. The email identifies the caller to
// NCBI as required by its usage policy and must not be empty.
func NewClient(email string, opts ...Option) (*Client, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}

	c := &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    DefaultBaseURL,
		email:      email,
		tool:       DefaultTool,
		logger:     slog.Default().With("component", "pubmed"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Search returns up to max PMIDs matching the search term.
// A term matching nothing returns an empty slice and no error.
func (c *Client) Search(ctx context.Context, term string, max int) ([]string, error) {
	if term == "" {
		return nil, ErrEmptyTerm
	}

	params := c.commonParams()
	params.Set("term", term)
	params.Set("retmax", strconv.Itoa(max))
	params.Set("retmode", "json")

	body, err := c.get(ctx, "esearch.fcgi", params)
	if err != nil {
		return nil, fmt.Errorf("pubmed search: %w", err)
	}

	var resp esearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("pubmed search: decoding response: %w", err)
	}

	c.logger.Debug("search complete", "term", term, "ids", len(resp.Result.IDList))
	return resp.Result.IDList, nil
}

// Fetch retrieves full records for the given PMIDs in a single batched call
// and normalizes each into a core.PaperRecord. Records missing a title or
// abstract body are dropped; the returned slice preserves the source order
// of the remaining records.
func (c *Client) Fetch(ctx context.Context, pmids []string) ([]core.PaperRecord, error) {
	if len(pmids) == 0 {
		return nil, nil
	}

	params := c.commonParams()
	params.Set("id", strings.Join(pmids, ","))
	params.Set("rettype", "medline")
	params.Set("retmode", "xml")

	body, err := c.postForm(ctx, "efetch.fcgi", params)
	if err != nil {
		return nil, fmt.Errorf("pubmed fetch: %w", err)
	}

	var set articleSet
	if err := xml.Unmarshal(body, &set); err != nil {
		return nil, fmt.Errorf("pubmed fetch: decoding response: %w", err)
	}

	records := make([]core.PaperRecord, 0, len(set.Articles))
	dropped := 0
	for _, raw := range set.Articles {
		record := normalizeArticle(raw)
		if record.PMID == "" || !record.HasRequiredFields() {
			dropped++
			continue
		}
		records = append(records, record)
	}

	if dropped > 0 {
		c.logger.Debug("dropped records missing required fields", "dropped", dropped)
	}
	return records, nil
}

// FetchAbstracts searches for up to max records matching term and retrieves
// their normalized records. Zero search results is a valid outcome and
// returns an empty slice.
func (c *Client) FetchAbstracts(ctx context.Context, term string, max int) ([]core.PaperRecord, error) {
	pmids, err := c.Search(ctx, term, max)
	if err != nil {
		return nil, err
	}

	c.logger.Info("found matching ids", "term", term, "count", len(pmids))
	if len(pmids) == 0 {
		return nil, nil
	}

	records, err := c.Fetch(ctx, pmids)
	if err != nil {
		return nil, err
	}

	c.logger.Info("processed records with abstracts", "count", len(records))
	return records, nil
}

// normalizeArticle flattens a raw efetch record into a PaperRecord.
// Multi-section abstracts are joined with a single space. The publication
// date is formed from the first structured ArticleDate when present.
func normalizeArticle(raw pubmedArticle) core.PaperRecord {
	citation := raw.MedlineCitation

	abstract := strings.Join(citation.Article.Abstract.Sections, " ")
	abstract = strings.TrimSpace(abstract)

	pubDate := ""
	if len(citation.Article.ArticleDates) > 0 {
		d := citation.Article.ArticleDates[0]
		pubDate = fmt.Sprintf("%s-%s-%s", d.Year, d.Month, d.Day)
	}

	return core.PaperRecord{
		PMID:            strings.TrimSpace(citation.PMID),
		Title:           strings.TrimSpace(citation.Article.ArticleTitle),
		Abstract:        abstract,
		PublicationDate: pubDate,
	}
}

func (c *Client) commonParams() url.Values {
	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("email", c.email)
	params.Set("tool", c.tool)
	return params
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/"+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) postForm(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	// POST keeps long PMID lists out of the query string.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/"+endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
