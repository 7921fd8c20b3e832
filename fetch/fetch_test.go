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

package fetch_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ASC8384/sceldict/fetch"
)

const detailHTML = `<html><body>
<div class="detail_info">
<dl>
<dd>词 条：24751个</dd>
<dd>大 小：292KB</dd>
<dd>更 新：2025-03-16 20:50:02</dd>
<dd>版 本：第6013个版本</dd>
</dl>
</div>
</body></html>`

func TestClient_LatestVersion(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(detailHTML))
	}))
	defer srv.Close()

	c := fetch.NewClient(&fetch.Options{DetailURL: srv.URL})
	got, err := c.LatestVersion(context.Background())
	if err != nil {
		t.Fatalf("LatestVersion: %v", err)
	}

	expected := &fetch.VersionInfo{
		Version:    6013,
		UpdateTime: "2025-03-16 20:50:02",
		WordCount:  24751,
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("LatestVersion (-want +got):\n%s", diff)
	}
}

func TestClient_LatestVersion_unrecognizedPage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body>nothing here</body></html>"))
	}))
	defer srv.Close()

	c := fetch.NewClient(&fetch.Options{DetailURL: srv.URL})
	got, err := c.LatestVersion(context.Background())
	if err != nil {
		t.Fatalf("LatestVersion: %v", err)
	}

	// Unextractable fields are left zero rather than failing.
	if diff := cmp.Diff(&fetch.VersionInfo{}, got); diff != "" {
		t.Errorf("LatestVersion (-want +got):\n%s", diff)
	}
}

func TestClient_LatestVersion_serverError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := fetch.NewClient(&fetch.Options{DetailURL: srv.URL})
	if _, err := c.LatestVersion(context.Background()); err == nil {
		t.Error("LatestVersion: got nil error, want error")
	}
}

func TestClient_Download(t *testing.T) {
	t.Parallel()

	payload := []byte{0x40, 0x15, 0x00, 0x00, 0x44, 0x43, 0x53, 0x01, 0xaa}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	c := fetch.NewClient(&fetch.Options{DownloadURL: srv.URL})
	got, err := c.Download(context.Background())
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if !bytes.Equal(payload, got) {
		t.Errorf("Download: got %x, want %x", got, payload)
	}
}

func TestVersionInfo_state(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "version_info.json")

	// A missing state file loads as the zero record.
	got, err := fetch.LoadVersionInfo(path)
	if err != nil {
		t.Fatalf("LoadVersionInfo: %v", err)
	}
	if diff := cmp.Diff(&fetch.VersionInfo{}, got); diff != "" {
		t.Errorf("LoadVersionInfo (-want +got):\n%s", diff)
	}

	info := &fetch.VersionInfo{
		Version:    6013,
		UpdateTime: "2025-03-16 20:50:02",
		WordCount:  24751,
	}
	if err := fetch.SaveVersionInfo(path, info); err != nil {
		t.Fatalf("SaveVersionInfo: %v", err)
	}

	got, err = fetch.LoadVersionInfo(path)
	if err != nil {
		t.Fatalf("LoadVersionInfo: %v", err)
	}
	if diff := cmp.Diff(info, got); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}
