package catalog

import (
	"context"
	"sync"
	"time"
)

const DefaultInterval = 5 * time.Second

// Advance devolve o índice seguinte num anel de length itens.
func Advance(index, length int) int {
	if length <= 1 {
		return index
	}
	return (index + 1) % length
}

// Retreat devolve o índice anterior num anel de length itens.
func Retreat(index, length int) int {
	if length <= 1 {
		return index
	}
	return (index - 1 + length) % length
}

// Tick é emitido por Run a cada avanço automático.
type Tick struct {
	Key   string `json:"key"`
	Index int    `json:"index"`
	Image string `json:"image"`
}

type CarouselOption func(*Carousel)

func WithInterval(d time.Duration) CarouselOption {
	return func(c *Carousel) {
		if d > 0 {
			c.interval = d
		}
	}
}

// Carousel guarda o índice atual sobre uma lista de imagens identificada por key.
// Seguro para uso concorrente; Run não pode rodar duas vezes ao mesmo tempo.
type Carousel struct {
	mu       sync.Mutex
	key      string
	images   []string
	index    int
	interval time.Duration
	running  bool
	resized  chan struct{}
}

func NewCarousel(key string, images []string, opts ...CarouselOption) *Carousel {
	c := &Carousel{
		key:      key,
		images:   append([]string(nil), images...),
		interval: DefaultInterval,
		resized:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Carousel) Key() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.key
}

func (c *Carousel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.images)
}

func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

func (c *Carousel) Interval() time.Duration {
	return c.interval
}

func (c *Carousel) Images() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.images...)
}

// Current devolve a imagem do índice atual; ok é false quando a lista está vazia.
func (c *Carousel) Current() (image string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.images) == 0 {
		return "", false
	}
	return c.images[c.index], true
}

// Navigable indica se os controles manuais e o avanço automático se aplicam.
func (c *Carousel) Navigable() bool {
	return c.Len() > 1
}

func (c *Carousel) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = Advance(c.index, len(c.images))
	return c.index
}

func (c *Carousel) Prev() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = Retreat(c.index, len(c.images))
	return c.index
}

// GoTo seleciona o índice i, limitado à faixa válida.
func (c *Carousel) GoTo(i int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch n := len(c.images); {
	case n == 0 || i < 0:
		c.index = 0
	case i >= n:
		c.index = n - 1
	default:
		c.index = i
	}
	return c.index
}

// Reset troca a chave e a lista de imagens e volta ao índice 0.
// Um timer ativo é recriado quando o tamanho muda.
func (c *Carousel) Reset(key string, images []string) {
	c.mu.Lock()
	oldLen := len(c.images)
	c.key = key
	c.images = append([]string(nil), images...)
	c.index = 0
	newLen := len(c.images)
	c.mu.Unlock()

	if oldLen != newLen {
		select {
		case c.resized <- struct{}{}:
		default:
		}
	}
}

// Running indica se há timer de avanço automático ativo.
func (c *Carousel) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Run avança o carrossel até ctx terminar, chamando onTick a cada passo.
// Com uma imagem ou nenhuma não existe timer.
func (c *Carousel) Run(ctx context.Context, onTick func(Tick)) {
	for {
		ticker := c.startTimer()
		var tick <-chan time.Time
		if ticker != nil {
			tick = ticker.C
		}

		restart := false
		for !restart {
			select {
			case <-ctx.Done():
				c.stopTimer(ticker)
				return
			case <-c.resized:
				restart = true
			case <-tick:
				t, moved := c.step()
				if moved && onTick != nil {
					onTick(t)
				}
			}
		}
		c.stopTimer(ticker)
	}
}

func (c *Carousel) startTimer() *time.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.images) <= 1 {
		c.running = false
		return nil
	}
	c.running = true
	return time.NewTicker(c.interval)
}

func (c *Carousel) stopTimer(t *time.Ticker) {
	if t != nil {
		t.Stop()
	}
	c.mu.Lock()
	c.running = false
	c.mu.Unlock()
}

func (c *Carousel) step() (Tick, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.images) <= 1 {
		return Tick{}, false
	}
	c.index = Advance(c.index, len(c.images))
	return Tick{Key: c.key, Index: c.index, Image: c.images[c.index]}, true
}
