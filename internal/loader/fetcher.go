package loader

import (
	"context"
	"io"
	"mime"
	"net/http"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/zhubert/inkwell/internal/errors"
	"github.com/zhubert/inkwell/internal/scratch"
)

// Fetcher retrieves the initial document text.
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context) (string, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context) (string, error) {
	return f(ctx)
}

// StaticFetcher returns a Fetcher that always yields text.
func StaticFetcher(text string) Fetcher {
	return FetcherFunc(func(context.Context) (string, error) {
		return text, nil
	})
}

// HTTPFetcher GETs the document from URL. No timeout is applied beyond
// whatever the context or Client carries.
type HTTPFetcher struct {
	URL    string
	Client *http.Client
}

// Fetch performs the GET. Non-2xx statuses, non-text content types and
// bodies that are not valid UTF-8 are errors.
func (f *HTTPFetcher) Fetch(ctx context.Context) (string, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return "", errors.FetchFailed(f.URL, err)
	}
	req.Header.Set("Accept", "text/plain, text/*;q=0.9")

	resp, err := client.Do(req)
	if err != nil {
		return "", errors.FetchFailed(f.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.FetchStatus(f.URL, resp.StatusCode)
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || !strings.HasPrefix(mediaType, "text/") {
			return "", errors.FetchNotText(f.URL, ct)
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.FetchFailed(f.URL, err)
	}
	if !utf8.Valid(data) {
		return "", errors.FetchNotText(f.URL, "invalid UTF-8")
	}
	return string(data), nil
}

// FileFetcher reads the document from a local file.
type FileFetcher struct {
	Path string
}

// Fetch reads the file. Files that are not valid UTF-8 are errors.
func (f *FileFetcher) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.ReadFailed(f.Path, err)
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", errors.ReadFailed(f.Path, err)
	}
	if !utf8.Valid(data) {
		return "", errors.FetchNotText(f.Path, "invalid UTF-8")
	}
	return string(data), nil
}

// FetcherFor picks a Fetcher for source: http(s) URLs are fetched over HTTP,
// an empty source yields the embedded introduction, anything else is read as
// a file path.
func FetcherFor(source string) Fetcher {
	switch {
	case source == "":
		return StaticFetcher(scratch.Intro())
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return &HTTPFetcher{URL: source}
	default:
		return &FileFetcher{Path: source}
	}
}
