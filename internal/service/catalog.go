package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"time"

	"quiz-session/internal/adapter/quizservice"
	"quiz-session/internal/cache"
	"quiz-session/internal/domain"
	"quiz-session/internal/dto"
	"quiz-session/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const historyEmptyMessage = "No history found."

// CatalogService fronts the remote quiz-generation/history service and
// feeds fetched payloads into the session orchestrator.
type CatalogService interface {
	// Generate trims and validates the URL list, requests a quiz from
	// the remote service and renders it into the container.
	Generate(ctx context.Context, urls []string, containerID string) (*dto.SessionView, error)

	// History returns the rendered history table.
	History(ctx context.Context) (*dto.HistoryTableView, error)

	// QuizDetail fetches a stored quiz by ID (read-through cache) and
	// renders it into the container via the same orchestrator contract
	// as Generate.
	QuizDetail(ctx context.Context, quizID int64, containerID string) (*dto.SessionView, error)
}

// catalogService implements CatalogService. Each container carries a
// monotonically increasing request token; a fetch that resolves after a
// newer request was issued for the same container is discarded instead
// of rendering stale data over fresher data.
type catalogService struct {
	client   quizservice.Client
	sessions SessionService
	cache    domain.Cache // may be nil; detail fetches then go straight upstream
	quizTTL  time.Duration
	sfGroup  singleflight.Group

	mu     sync.Mutex
	tokens map[string]uint64
}

// NewCatalogService creates a new instance of catalogService.
func NewCatalogService(client quizservice.Client, sessions SessionService, cacheAdapter domain.Cache, quizTTL time.Duration) CatalogService {
	return &catalogService{
		client:   client,
		sessions: sessions,
		cache:    cacheAdapter,
		quizTTL:  quizTTL,
		tokens:   make(map[string]uint64),
	}
}

// NormalizeURLs splits raw entries on newlines, trims whitespace and
// drops blank lines. The result preserves input order.
func NormalizeURLs(raw []string) []string {
	var urls []string
	for _, entry := range raw {
		for _, line := range strings.Split(entry, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				urls = append(urls, trimmed)
			}
		}
	}
	return urls
}

// Generate implements CatalogService
func (s *catalogService) Generate(ctx context.Context, rawURLs []string, containerID string) (*dto.SessionView, error) {
	urls := NormalizeURLs(rawURLs)
	if len(urls) == 0 {
		// No network call is issued for an empty list.
		return nil, domain.NewInvalidInputError("Please enter at least one valid URL")
	}
	if containerID == "" {
		return nil, domain.NewInvalidInputError("container ID is required")
	}

	token := s.issueToken(containerID)

	logger.Get().Info("Requesting quiz generation",
		zap.Strings("urls", urls),
		zap.String("container_id", containerID),
	)

	payload, err := s.client.GenerateQuiz(ctx, urls)
	if err != nil {
		return nil, err
	}

	if !s.isLatest(containerID, token) {
		logger.Get().Warn("Discarding stale generation response",
			zap.String("container_id", containerID),
			zap.Uint64("token", token),
		)
		return nil, domain.NewStaleRequestError(containerID)
	}

	return s.sessions.RenderSession(payload, containerID)
}

// History implements CatalogService
func (s *catalogService) History(ctx context.Context) (*dto.HistoryTableView, error) {
	entries, err := s.client.GetHistory(ctx)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return &dto.HistoryTableView{
			Rows:         []dto.HistoryRow{},
			Empty:        true,
			EmptyMessage: historyEmptyMessage,
		}, nil
	}

	rows := make([]dto.HistoryRow, len(entries))
	for i, e := range entries {
		rows[i] = dto.HistoryRow{
			ID:        e.ID,
			URL:       e.URL,
			Title:     e.Title,
			Summary:   e.Summary,
			CreatedAt: e.CreatedAt,
		}
	}
	return &dto.HistoryTableView{Rows: rows}, nil
}

// QuizDetail implements CatalogService
func (s *catalogService) QuizDetail(ctx context.Context, quizID int64, containerID string) (*dto.SessionView, error) {
	if containerID == "" {
		return nil, domain.NewInvalidInputError("container ID is required")
	}

	token := s.issueToken(containerID)

	payload, err := s.fetchQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	if !s.isLatest(containerID, token) {
		logger.Get().Warn("Discarding stale detail response",
			zap.String("container_id", containerID),
			zap.Int64("quiz_id", quizID),
		)
		return nil, domain.NewStaleRequestError(containerID)
	}

	return s.sessions.RenderSession(payload, containerID)
}

// fetchQuiz reads the payload through the cache. Concurrent misses for
// the same quiz ID are collapsed into a single upstream call.
func (s *catalogService) fetchQuiz(ctx context.Context, quizID int64) (*domain.QuizPayload, error) {
	if s.cache == nil {
		return s.client.GetQuiz(ctx, quizID)
	}

	cacheKey := cache.GenerateCacheKey("catalog", "quiz", strconv.FormatInt(quizID, 10))

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		var payload domain.QuizPayload
		if err := json.Unmarshal([]byte(cached), &payload); err == nil {
			logger.Get().Debug("Quiz payload cache hit", zap.Int64("quiz_id", quizID))
			return &payload, nil
		}
		// Corrupt entry: drop it and fall through to the fetch.
		_ = s.cache.Delete(ctx, cacheKey)
	} else if err != domain.ErrCacheMiss {
		logger.Get().Warn("Quiz payload cache read failed", zap.Error(err), zap.Int64("quiz_id", quizID))
	}

	// The flight may be shared by several callers; run it on a context
	// detached from the first caller so that caller's cancellation does
	// not fail the followers.
	flightCtx := context.WithoutCancel(ctx)
	result, err, _ := s.sfGroup.Do(cacheKey, func() (interface{}, error) {
		payload, fetchErr := s.client.GetQuiz(flightCtx, quizID)
		if fetchErr != nil {
			return nil, fetchErr
		}
		if encoded, encErr := json.Marshal(payload); encErr == nil {
			if setErr := s.cache.Set(flightCtx, cacheKey, string(encoded), s.quizTTL); setErr != nil {
				logger.Get().Warn("Failed to cache quiz payload", zap.Error(setErr), zap.Int64("quiz_id", quizID))
			}
		}
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.QuizPayload), nil
}

// issueToken registers a new fetch for the container and returns its token.
func (s *catalogService) issueToken(containerID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[containerID]++
	return s.tokens[containerID]
}

// isLatest reports whether token still identifies the newest fetch
// issued for the container.
func (s *catalogService) isLatest(containerID string, token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[containerID] == token
}
