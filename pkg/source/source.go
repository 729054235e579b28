// Package source ships reference suggestion sources for typeahead
// controllers: a patricia-trie word completer, a fuzzy-matched static list,
// an LRU result cache and a msgpack IPC client. The controller itself treats
// the source as an opaque callback; these are the collaborators the demo
// binary wires in.
package source

// Suggestion is one candidate word with its ranking weight.
type Suggestion struct {
	Word      string
	Frequency int
}

// Func matches the controller's GetSuggestions contract for word
// suggestions.
type Func func(term string, deliver func([]Suggestion))

// Completer is a synchronous completion engine: prefix in, ranked
// suggestions out.
type Completer interface {
	Complete(prefix string, limit int) []Suggestion
}

// Async bridges a synchronous completer to the controller's callback
// contract. Each query runs on its own goroutine, so completions arrive
// asynchronously the way a remote source's would; the controller's
// staleness guard handles late deliveries.
func Async(c Completer, limit int) Func {
	return func(term string, deliver func([]Suggestion)) {
		go func() {
			deliver(c.Complete(term, limit))
		}()
	}
}

// Sync adapts a completer without the goroutine hop, delivering before the
// call returns. Useful in tests and line-mode tooling.
func Sync(c Completer, limit int) Func {
	return func(term string, deliver func([]Suggestion)) {
		deliver(c.Complete(term, limit))
	}
}
