package images

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://api.unsplash.com"
	perPage        = 8
)

// Source values reported alongside results.
const (
	SourceUnsplash = "unsplash"
	SourceDefault  = "default"
)

// Image is one search hit in the shape the editor widget expects.
type Image struct {
	ID      string `json:"id"`
	Thumb   string `json:"thumb"`
	Regular string `json:"regular"`
	Alt     string `json:"alt"`
	Credit  string `json:"credit"`
}

// Result is a search answer and where it came from.
type Result struct {
	Results []Image `json:"results"`
	Source  string  `json:"source"`
}

// Cache stores search results between requests.
type Cache interface {
	Get(ctx context.Context, query string) ([]Image, bool)
	Set(ctx context.Context, query string, imgs []Image)
}

// Searcher proxies Unsplash photo search. Without an access key, or when
// Unsplash fails, it answers with a fixed set of wine photos.
type Searcher struct {
	accessKey string
	baseURL   string
	client    *http.Client
	cache     Cache
	log       *zap.Logger
}

// Config for NewSearcher. Only AccessKey matters in production.
type Config struct {
	AccessKey  string
	BaseURL    string
	HTTPClient *http.Client
	Cache      Cache
	Logger     *zap.Logger
}

func NewSearcher(cfg Config) *Searcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Searcher{
		accessKey: cfg.AccessKey,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		client:    cfg.HTTPClient,
		cache:     cfg.Cache,
		log:       cfg.Logger,
	}
}

// ErrEmptyQuery is returned for a blank search term.
var ErrEmptyQuery = errors.New("검색어를 입력해주세요.")

// Search never fails on upstream problems; only a blank query is an error.
func (s *Searcher) Search(ctx context.Context, query string) (Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{}, ErrEmptyQuery
	}
	if s.accessKey == "" {
		return Result{Results: DefaultImages(), Source: SourceDefault}, nil
	}
	if s.cache != nil {
		if imgs, ok := s.cache.Get(ctx, query); ok {
			return Result{Results: imgs, Source: SourceUnsplash}, nil
		}
	}

	imgs, err := s.searchUnsplash(ctx, query)
	if err != nil {
		s.log.Warn("unsplash search failed, using default images", zap.String("query", query), zap.Error(err))
		return Result{Results: DefaultImages(), Source: SourceDefault}, nil
	}
	if s.cache != nil {
		s.cache.Set(ctx, query, imgs)
	}
	return Result{Results: imgs, Source: SourceUnsplash}, nil
}

type unsplashResp struct {
	Results []struct {
		ID   string `json:"id"`
		URLs struct {
			Small   string `json:"small"`
			Regular string `json:"regular"`
		} `json:"urls"`
		AltDescription *string `json:"alt_description"`
		User           struct {
			Name string `json:"name"`
		} `json:"user"`
	} `json:"results"`
}

func (s *Searcher) searchUnsplash(ctx context.Context, query string) ([]Image, error) {
	q := url.Values{}
	q.Set("query", query+" wine")
	q.Set("per_page", fmt.Sprint(perPage))
	q.Set("orientation", "landscape")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/search/photos?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Client-ID "+s.accessKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("unsplash status %d: %s", resp.StatusCode, string(body))
	}

	var data unsplashResp
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode unsplash response: %w", err)
	}

	imgs := make([]Image, 0, len(data.Results))
	for _, r := range data.Results {
		alt := query
		if r.AltDescription != nil && *r.AltDescription != "" {
			alt = *r.AltDescription
		}
		imgs = append(imgs, Image{
			ID:      r.ID,
			Thumb:   r.URLs.Small,
			Regular: r.URLs.Regular,
			Alt:     alt,
			Credit:  r.User.Name,
		})
	}
	return imgs, nil
}

var defaultImages = []Image{
	{ID: "1", Thumb: "https://images.unsplash.com/photo-1510812431401-41d2bd2722f3?w=400", Regular: "https://images.unsplash.com/photo-1510812431401-41d2bd2722f3?w=800", Alt: "레드 와인", Credit: "Unsplash"},
	{ID: "2", Thumb: "https://images.unsplash.com/photo-1474722883778-792e7990302f?w=400", Regular: "https://images.unsplash.com/photo-1474722883778-792e7990302f?w=800", Alt: "와인 셀러", Credit: "Unsplash"},
	{ID: "3", Thumb: "https://images.unsplash.com/photo-1506377247377-2a5b3b417ebb?w=400", Regular: "https://images.unsplash.com/photo-1506377247377-2a5b3b417ebb?w=800", Alt: "포도밭", Credit: "Unsplash"},
	{ID: "4", Thumb: "https://images.unsplash.com/photo-1567529692333-de9fd6772897?w=400", Regular: "https://images.unsplash.com/photo-1567529692333-de9fd6772897?w=800", Alt: "와인 따르기", Credit: "Unsplash"},
	{ID: "5", Thumb: "https://images.unsplash.com/photo-1553361371-9b22f78e8b1d?w=400", Regular: "https://images.unsplash.com/photo-1553361371-9b22f78e8b1d?w=800", Alt: "화이트 와인", Credit: "Unsplash"},
	{ID: "6", Thumb: "https://images.unsplash.com/photo-1528823872057-9c018a7a7553?w=400", Regular: "https://images.unsplash.com/photo-1528823872057-9c018a7a7553?w=800", Alt: "와인과 치즈", Credit: "Unsplash"},
}

// DefaultImages returns a copy of the static fallback set.
func DefaultImages() []Image {
	out := make([]Image, len(defaultImages))
	copy(out, defaultImages)
	return out
}
