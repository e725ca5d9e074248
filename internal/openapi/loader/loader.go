package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	pkgopenapi "github.com/goliatone/go-clientruntime/pkg/openapi"
)

// DefaultMaxDocumentBytes bounds documents when no limit is configured.
const DefaultMaxDocumentBytes int64 = 32 << 20

// Loader implements pkgopenapi.Loader over file, fs.FS and HTTP sources.
type Loader struct {
	fs       fs.FS
	http     *http.Client
	timeout  time.Duration
	maxBytes int64
	logger   zerolog.Logger
}

var _ pkgopenapi.Loader = (*Loader)(nil)

// New constructs a Loader from resolved options.
func New(options pkgopenapi.LoaderOptions, logger zerolog.Logger) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	maxBytes := options.MaxDocumentBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxDocumentBytes
	}

	return &Loader{
		fs:       options.FileSystem,
		http:     httpClient,
		timeout:  timeout,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Load fetches a document from src and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src pkgopenapi.Source) (pkgopenapi.Document, error) {
	if src == nil {
		return pkgopenapi.Document{}, errors.New("openapi loader: source is nil")
	}

	location := src.Location()
	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case pkgopenapi.SourceKindFile:
		data, err = readFile(ctx, location, l.maxBytes)
	case pkgopenapi.SourceKindFS:
		data, err = readFS(ctx, l.fs, location, l.maxBytes)
	case pkgopenapi.SourceKindURL:
		data, err = readHTTP(ctx, l.http, location, l.timeout, l.maxBytes)
	default:
		err = fmt.Errorf("unsupported source kind %q", src.Kind())
	}
	if err != nil {
		l.logger.Debug().Str("source", location).Err(err).Msg("load openapi document failed")
		return pkgopenapi.Document{}, &LoadError{Kind: src.Kind(), Location: location, Err: err}
	}

	l.logger.Debug().
		Str("source", src.Location()).
		Str("kind", string(src.Kind())).
		Int("bytes", len(data)).
		Msg("loaded openapi document")
	return pkgopenapi.NewDocument(src, data)
}
