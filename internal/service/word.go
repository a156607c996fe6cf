package service

import (
	"context"
	"fmt"
	"sync"

	"vocabtrainer/internal/domain"
	"vocabtrainer/internal/repository"

	"go.uber.org/zap"
)

// WordService owns the in-memory word list and keeps storage in sync with it.
// Every mutation writes the full list; the in-memory copy changes only after
// the write succeeds. Mutations are refused until storage has been read
// successfully, so a failed load never gets overwritten.
type WordService struct {
	repo     repository.WordRepository
	selector *Selector
	logger   *zap.Logger

	mu     sync.Mutex
	words  []domain.WordPair
	loaded bool
}

// NewWordService creates a new word service with an empty collection
func NewWordService(repo repository.WordRepository, selector *Selector, logger *zap.Logger) *WordService {
	if selector == nil {
		selector = NewSelector(nil)
	}
	return &WordService{
		repo:     repo,
		selector: selector,
		logger:   logger,
		words:    []domain.WordPair{},
	}
}

// Init loads stored words and bootstraps from seed when storage is empty.
// Errors leave the collection empty; the caller decides how to report them.
func (s *WordService) Init(ctx context.Context, seed repository.SeedSource) error {
	words, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if len(words) > 0 {
		s.logger.Info("Word list loaded from storage", zap.Int("words", len(words)))
		return nil
	}

	if seed == nil {
		return fmt.Errorf("%w: storage is empty and no seed source is configured", domain.ErrBootstrap)
	}

	s.logger.Info("Storage is empty, bootstrapping from seed")

	records, err := seed.FetchSeed(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrBootstrap, err)
	}

	words, err = s.Bootstrap(ctx, records)
	if err != nil {
		return err
	}

	s.logger.Info("Word list bootstrapped", zap.Int("words", len(words)))
	return nil
}

// Load reads and normalizes the stored word list, replacing the in-memory
// collection. Absent storage yields an empty list.
func (s *WordService) Load(ctx context.Context) ([]domain.WordPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return nil, err
	}
	return cloneWords(s.words), nil
}

func (s *WordService) loadLocked(ctx context.Context) error {
	data, err := s.repo.LoadWords(ctx)
	if err != nil {
		return fmt.Errorf("load words: %w", err)
	}

	words, dropped, err := domain.DecodeWords(data)
	if err != nil {
		return err
	}
	if dropped > 0 {
		s.logger.Warn("Skipped unreadable stored words", zap.Int("dropped", dropped))
	}

	s.words = words
	s.loaded = true
	return nil
}

// ensureLoadedLocked retries the load if the last one failed.
// Caller must hold s.mu.
func (s *WordService) ensureLoadedLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	if err := s.loadLocked(ctx); err != nil {
		s.logger.Warn("Stored words still unreadable, refusing write", zap.Error(err))
		return fmt.Errorf("%w: %w", domain.ErrNotLoaded, err)
	}
	s.logger.Info("Word list loaded on retry", zap.Int("words", len(s.words)))
	return nil
}

// Bootstrap replaces the collection with seed records at zero mastery and
// persists it. Seed records with a blank term are skipped.
func (s *WordService) Bootstrap(ctx context.Context, records []domain.Record) ([]domain.WordPair, error) {
	words := make([]domain.WordPair, 0, len(records))
	for _, rec := range records {
		w, err := domain.NewWordPair(rec.Front, rec.Back)
		if err != nil {
			continue
		}
		words = append(words, w)
	}

	if skipped := len(records) - len(words); skipped > 0 {
		s.logger.Warn("Skipped invalid seed records", zap.Int("skipped", skipped))
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: seed contains no usable word pairs", domain.ErrBootstrap)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persistLocked(ctx, words); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBootstrap, err)
	}
	s.words = words
	s.loaded = true

	return cloneWords(words), nil
}

// Append validates and adds a single word pair with zero mastery
func (s *WordService) Append(ctx context.Context, front, back string) (domain.WordPair, error) {
	w, err := domain.NewWordPair(front, back)
	if err != nil {
		return domain.WordPair{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return domain.WordPair{}, err
	}

	next := append(cloneWords(s.words), w)
	if err := s.persistLocked(ctx, next); err != nil {
		return domain.WordPair{}, err
	}
	s.words = next

	s.logger.Info("Word pair added",
		zap.String("front", w.Front),
		zap.String("back", w.Back),
	)
	return w, nil
}

// AppendBatch adds every valid record and persists once.
// Returns the number of records added.
func (s *WordService) AppendBatch(ctx context.Context, records []domain.Record) (int, error) {
	added := make([]domain.WordPair, 0, len(records))
	for _, rec := range records {
		w, err := domain.NewWordPair(rec.Front, rec.Back)
		if err != nil {
			continue
		}
		added = append(added, w)
	}
	if len(added) == 0 {
		return 0, domain.ErrNoValidData
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return 0, err
	}

	next := append(cloneWords(s.words), added...)
	if err := s.persistLocked(ctx, next); err != nil {
		return 0, err
	}
	s.words = next

	s.logger.Info("Word pairs imported", zap.Int("added", len(added)))
	return len(added), nil
}

// Import parses bulk text and appends the valid lines as one batch.
// The result is returned even on error so callers can report rejections.
func (s *WordService) Import(ctx context.Context, raw string) (ImportResult, error) {
	result, err := ParseBulk(raw)
	if err != nil {
		return result, err
	}

	if _, err := s.AppendBatch(ctx, result.Records); err != nil {
		return result, err
	}
	return result, nil
}

// NextQuestion draws a new question from the current collection
func (s *WordService) NextQuestion() (*domain.QuizSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := s.selector.Select(s.words)
	if err != nil {
		return nil, err
	}
	return domain.NewQuizSession(q), nil
}

// Submit grades the answer for a session exactly once, updates mastery and
// persists the full collection whatever the outcome.
func (s *WordService) Submit(ctx context.Context, session *domain.QuizSession, answer string) (domain.GradeResult, error) {
	if session == nil {
		return domain.GradeResult{}, domain.ErrNoActiveQuestion
	}

	// session state is only read and written under s.mu
	s.mu.Lock()
	defer s.mu.Unlock()

	if session.State == domain.QuizGraded {
		return domain.GradeResult{}, domain.ErrAlreadyGraded
	}
	if err := s.ensureLoadedLocked(ctx); err != nil {
		return domain.GradeResult{}, err
	}

	q := session.Question
	if q.Index < 0 || q.Index >= len(s.words) ||
		s.words[q.Index].Front != q.Word.Front || s.words[q.Index].Back != q.Word.Back {
		return domain.GradeResult{}, domain.ErrStaleQuestion
	}

	correct, expected := Grade(s.words[q.Index], q.Direction, answer)

	next := cloneWords(s.words)
	next[q.Index].Apply(correct)

	if err := s.persistLocked(ctx, next); err != nil {
		return domain.GradeResult{}, err
	}
	s.words = next
	session.State = domain.QuizGraded

	s.logger.Info("Answer graded",
		zap.String("front", q.Word.Front),
		zap.String("direction", q.Direction.String()),
		zap.Bool("correct", correct),
		zap.Int("mastery_count", next[q.Index].MasteryCount),
	)

	return domain.GradeResult{
		Correct:  correct,
		Expected: expected,
		Word:     next[q.Index],
	}, nil
}

// Words returns a copy of the collection in insertion order
func (s *WordService) Words() []domain.WordPair {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneWords(s.words)
}

// List returns the words for the list view, most mastered first
func (s *WordService) List() []domain.ListEntry {
	return BuildList(s.Words())
}

// persistLocked writes words to storage. Caller must hold s.mu.
func (s *WordService) persistLocked(ctx context.Context, words []domain.WordPair) error {
	data, err := domain.EncodeWords(words)
	if err != nil {
		return err
	}

	if err := s.repo.SaveWords(ctx, data); err != nil {
		s.logger.Error("Failed to persist word list",
			zap.Error(err),
			zap.Int("words", len(words)),
		)
		return fmt.Errorf("persist words: %w", err)
	}
	return nil
}

func cloneWords(words []domain.WordPair) []domain.WordPair {
	out := make([]domain.WordPair, len(words))
	copy(out, words)
	return out
}
