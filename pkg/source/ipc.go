package source

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Wire structures for the msgpack IPC protocol: requests carry an id, a
// prefix and a limit; responses echo the id with rank-ordered suggestions.
type completionRequest struct {
	ID     string `msgpack:"id"`
	Prefix string `msgpack:"p"`
	Limit  int    `msgpack:"l,omitempty"`
}

type wireSuggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

type completionResponse struct {
	ID          string           `msgpack:"id"`
	Suggestions []wireSuggestion `msgpack:"s"`
	Count       int              `msgpack:"c"`
	TimeTaken   int64            `msgpack:"t"`
	Error       string           `msgpack:"e,omitempty"`
}

// Client speaks the msgpack completion protocol to an external completion
// server over a stream pair, typically the stdin/stdout of a spawned server
// process. Requests are id-correlated, so responses may arrive out of order
// relative to requests; each response is routed to the deliver callback
// registered for its id.
type Client struct {
	enc     *msgpack.Encoder
	dec     *msgpack.Decoder
	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[string]func([]Suggestion)
	seq     uint64
}

// NewClient wraps a stream pair and starts the response reader. The reader
// stops on the first decode error or EOF, flushing every pending request
// with an empty result.
func NewClient(r io.Reader, w io.Writer) *Client {
	c := &Client{
		enc:     msgpack.NewEncoder(w),
		dec:     msgpack.NewDecoder(r),
		pending: make(map[string]func([]Suggestion)),
	}
	go c.readLoop()
	return c
}

// Source returns a controller-compatible fetch function that queries the
// server with the given result limit.
func (c *Client) Source(limit int) Func {
	return func(term string, deliver func([]Suggestion)) {
		c.request(term, limit, deliver)
	}
}

func (c *Client) request(term string, limit int, deliver func([]Suggestion)) {
	c.mu.Lock()
	c.seq++
	id := fmt.Sprintf("req_%d", c.seq)
	c.pending[id] = deliver
	c.mu.Unlock()

	c.writeMu.Lock()
	err := c.enc.Encode(completionRequest{ID: id, Prefix: term, Limit: limit})
	c.writeMu.Unlock()
	if err != nil {
		log.Errorf("encoding completion request: %v", err)
		c.settle(id, nil)
	}
}

func (c *Client) readLoop() {
	for {
		var resp completionResponse
		if err := c.dec.Decode(&resp); err != nil {
			if err != io.EOF {
				log.Errorf("decoding completion response: %v", err)
			}
			c.failAll()
			return
		}
		if resp.Error != "" {
			log.Warnf("completion server error for %s: %s", resp.ID, resp.Error)
			c.settle(resp.ID, nil)
			continue
		}
		suggestions := make([]Suggestion, 0, len(resp.Suggestions))
		for _, s := range resp.Suggestions {
			suggestions = append(suggestions, Suggestion{
				Word:      s.Word,
				Frequency: int(s.Rank),
			})
		}
		c.settle(resp.ID, suggestions)
	}
}

// settle routes a response to its registered deliver callback. Unknown ids
// (already settled, or never ours) are dropped.
func (c *Client) settle(id string, suggestions []Suggestion) {
	c.mu.Lock()
	deliver, ok := c.pending[id]
	delete(c.pending, id)
	c.mu.Unlock()
	if ok {
		deliver(suggestions)
	}
}

func (c *Client) failAll() {
	c.mu.Lock()
	pending := c.pending
	c.pending = make(map[string]func([]Suggestion))
	c.mu.Unlock()
	for _, deliver := range pending {
		deliver(nil)
	}
}
