// Copyright 2025 The sceldict Authors
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

// Package fetch retrieves cell dictionary files and their published
// version information from the Sogou dictionary site.
//
// The detail page for a dictionary lists word count, update time and a
// running version number. The page HTML is flattened to plain text before
// extraction so markup changes around the fields do not break the
// patterns. There is deliberately no retry or backoff here.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/k3a/html2text"
)

// Default URLs for the "network popular words" cell dictionary.
const (
	DefaultDetailURL   = "https://pinyin.sogou.com/dict/detail/index/4"
	DefaultDownloadURL = "https://pinyin.sogou.com/d/dict/download_cell.php?id=4&name=%E7%BD%91%E7%BB%9C%E6%B5%81%E8%A1%8C%E6%96%B0%E8%AF%8D&f=detail"
)

var (
	wordCountRe  = regexp.MustCompile(`词\s*条：(\d+)个`)
	updateTimeRe = regexp.MustCompile(`更\s*新：([\d-]+\s+[\d:]+)`)
	versionRe    = regexp.MustCompile(`版\s*本：第(\d+)个版本`)
)

// VersionInfo is the published state of a cell dictionary.
type VersionInfo struct {
	// Version is the running version number. Zero means unknown.
	Version int `json:"version"`

	// UpdateTime is the published update timestamp, verbatim.
	UpdateTime string `json:"update_time"`

	// WordCount is the published word count.
	WordCount int `json:"word_count"`

	// Name is the dictionary name, when present on the page.
	Name string `json:"name,omitempty"`

	// DownloadCount is the published download count, when present.
	DownloadCount int `json:"download_count,omitempty"`
}

// Options are options for a Client.
type Options struct {
	// DetailURL is the dictionary detail page URL.
	DetailURL string

	// DownloadURL is the cell file download URL.
	DownloadURL string

	// HTTPClient is the client used for requests.
	HTTPClient *http.Client
}

// DefaultOptions is the default options for a Client.
var DefaultOptions = &Options{
	DetailURL:   DefaultDetailURL,
	DownloadURL: DefaultDownloadURL,
	HTTPClient: &http.Client{
		Timeout: 30 * time.Second,
	},
}

// Client fetches dictionary files and version information.
type Client struct {
	detailURL   string
	downloadURL string
	httpClient  *http.Client
}

// NewClient returns a new Client.
func NewClient(options *Options) *Client {
	if options == nil {
		options = DefaultOptions
	}
	c := &Client{
		detailURL:   options.DetailURL,
		downloadURL: options.DownloadURL,
		httpClient:  options.HTTPClient,
	}
	if c.detailURL == "" {
		c.detailURL = DefaultOptions.DetailURL
	}
	if c.downloadURL == "" {
		c.downloadURL = DefaultOptions.DownloadURL
	}
	if c.httpClient == nil {
		c.httpClient = DefaultOptions.HTTPClient
	}
	return c
}

// LatestVersion fetches the detail page and extracts the published
// version information. Fields that cannot be extracted are left zero.
func (c *Client) LatestVersion(ctx context.Context) (*VersionInfo, error) {
	body, err := c.get(ctx, c.detailURL)
	if err != nil {
		return nil, err
	}

	text := html2text.HTML2Text(string(body))

	info := &VersionInfo{}
	if m := versionRe.FindStringSubmatch(text); m != nil {
		info.Version, _ = strconv.Atoi(m[1])
	}
	if m := updateTimeRe.FindStringSubmatch(text); m != nil {
		info.UpdateTime = m[1]
	}
	if m := wordCountRe.FindStringSubmatch(text); m != nil {
		info.WordCount, _ = strconv.Atoi(m[1])
	}

	return info, nil
}

// Download fetches the cell dictionary file and returns the raw buffer.
func (c *Client) Download(ctx context.Context) ([]byte, error) {
	return c.get(ctx, c.downloadURL)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %q: %w", url, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %q: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %q: unexpected status %v", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", url, err)
	}
	return body, nil
}
