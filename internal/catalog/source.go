package catalog

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultFetchTimeout = 15 * time.Second

// Loader reads a catalog from a local file or an http(s) URL.
type Loader struct {
	HTTP *resty.Client
}

func NewLoader() *Loader {
	return &Loader{
		HTTP: resty.New().
			SetHeader("Accept", "application/json").
			SetTimeout(defaultFetchTimeout),
	}
}

// Load reads source once. Every failure wraps ErrLoad.
func (l *Loader) Load(ctx context.Context, source string) (*Catalog, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, fmt.Errorf("%w: no catalog source configured", ErrLoad)
	}
	var (
		body []byte
		err  error
	)
	if isURL(source) {
		body, err = l.fetch(ctx, source)
	} else {
		body, err = os.ReadFile(source)
		if err != nil {
			err = fmt.Errorf("read catalog file: %w", err)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	c, err := Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, source, err)
	}
	return c, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	client := l.HTTP
	if client == nil {
		client = resty.New().SetTimeout(defaultFetchTimeout)
	}
	resp, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: status %d", resp.StatusCode())
	}
	return resp.Body(), nil
}

func isURL(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
