package speech

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	"github.com/ytget/memegen/internal/model"
)

const (
	// DefaultQueueSize is the number of utterances that may wait for playback
	DefaultQueueSize = 16

	// DefaultCacheTTL is how long synthesized audio is reused
	DefaultCacheTTL = 10 * time.Minute

	// DefaultParallelSynthesis bounds concurrent engine invocations per batch
	DefaultParallelSynthesis = 2
)

// Config configures the speech service
type Config struct {
	QueueSize         int
	CacheTTL          time.Duration
	ParallelSynthesis int
}

// clip is synthesized audio for one utterance
type clip struct {
	pcm    []byte
	format AudioFormat
}

// Service queues utterances and speaks them in submission order. Queued
// utterances are synthesized concurrently in batches, then played one after
// another.
type Service struct {
	engine Engine
	player Player
	audio  *cache.Cache

	queue       chan *model.Utterance
	parallelism int

	mu              sync.RWMutex
	voices          []model.Voice
	onVoicesChanged func()

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started atomic.Bool
	closed  atomic.Bool
}

// NewService creates a service. Call Start to begin playback.
func NewService(engine Engine, player Player, cfg Config) *Service {
	if engine == nil {
		engine = NoopEngine{}
	}
	if player == nil {
		player = DiscardPlayer{}
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.ParallelSynthesis <= 0 {
		cfg.ParallelSynthesis = DefaultParallelSynthesis
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		engine:      engine,
		player:      player,
		audio:       cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		queue:       make(chan *model.Utterance, cfg.QueueSize),
		parallelism: cfg.ParallelSynthesis,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start launches the playback worker. Repeated calls are ignored.
func (s *Service) Start() {
	if s.closed.Load() || !s.started.CompareAndSwap(false, true) {
		return
	}
	s.wg.Add(1)
	go s.run()
}

// Close stops playback and waits for the worker to exit
func (s *Service) Close() error {
	s.mu.Lock()
	if !s.closed.CompareAndSwap(false, true) {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
	return s.player.Close()
}

// SetVoicesChangedCallback registers fn to run after every voice refresh.
// fn runs on a background goroutine.
func (s *Service) SetVoicesChangedCallback(fn func()) {
	s.mu.Lock()
	s.onVoicesChanged = fn
	s.mu.Unlock()
}

// Voices returns the most recently reported voice list
func (s *Service) Voices() []model.Voice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Voice, len(s.voices))
	copy(out, s.voices)
	return out
}

// RefreshVoices asks the engine for its voices in the background and fires
// the voices-changed callback once they arrive. It may be called any number
// of times. Calls after Close are ignored.
func (s *Service) RefreshVoices() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed.Load() {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		voices, err := s.engine.Voices(s.ctx)
		if err != nil {
			if s.ctx.Err() == nil {
				log.Warn("Failed to list voices", "engine", s.engine.Name(), "err", err)
			}
			return
		}

		s.mu.Lock()
		s.voices = voices
		callback := s.onVoicesChanged
		s.mu.Unlock()

		log.Debug("Voices refreshed", "engine", s.engine.Name(), "count", len(voices))
		if s.ctx.Err() != nil {
			return
		}
		if callback != nil {
			callback()
		}
	}()
}

// Speak enqueues an utterance for playback. An utterance with blank text is
// accepted and plays as silence, keeping its place in the queue.
func (s *Service) Speak(u *model.Utterance) error {
	if s.closed.Load() {
		return ErrServiceClosed
	}
	if u == nil {
		return ErrEmptyText
	}

	select {
	case s.queue <- u:
		log.Debug("Utterance queued", "id", u.ID, "voice", u.VoiceID())
		return nil
	default:
		return ErrQueueFull
	}
}

func (s *Service) run() {
	defer s.wg.Done()

	for {
		select {
		case <-s.ctx.Done():
			return
		case u := <-s.queue:
			batch := []*model.Utterance{u}
		drain:
			for {
				select {
				case next := <-s.queue:
					batch = append(batch, next)
				default:
					break drain
				}
			}
			s.speakBatch(batch)
		}
	}
}

// speakBatch synthesizes the batch concurrently and plays it in order.
// A failed utterance is logged and skipped.
func (s *Service) speakBatch(batch []*model.Utterance) {
	clips := make([]*clip, len(batch))

	g, ctx := errgroup.WithContext(s.ctx)
	g.SetLimit(s.parallelism)
	for i, u := range batch {
		if isSilent(u) {
			continue
		}
		g.Go(func() error {
			c, err := s.synthesize(ctx, u)
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					log.Warn("Synthesis failed", "id", u.ID, "engine", s.engine.Name(), "err", err)
				}
				return nil
			}
			clips[i] = c
			return nil
		})
	}
	_ = g.Wait()

	for i, c := range clips {
		if c == nil {
			continue
		}
		if err := s.player.Play(s.ctx, c.pcm, c.format, batch[i].Volume); err != nil {
			if s.ctx.Err() != nil {
				return
			}
			log.Warn("Playback failed", "id", batch[i].ID, "err", err)
		}
	}
}

func isSilent(u *model.Utterance) bool {
	return strings.TrimSpace(u.Text) == ""
}

func (s *Service) synthesize(ctx context.Context, u *model.Utterance) (*clip, error) {
	key := u.CacheKey()
	if cached, ok := s.audio.Get(key); ok {
		return cached.(*clip), nil
	}

	pcm, format, err := s.engine.Synthesize(ctx, u.Text, u.VoiceID())
	if err != nil {
		return nil, err
	}

	c := &clip{pcm: pcm, format: format}
	s.audio.Set(key, c, cache.DefaultExpiration)
	return c, nil
}
