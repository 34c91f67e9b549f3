// Package view holds the text screens that consume the breed store.
package view

import (
	"fmt"
	"io"
	"sync"

	"mockydog/breeds/internal/domain"
	"mockydog/breeds/internal/observable"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const LoadingText = "Loading dog breeds..."

// Home lists every breed as a card, or a loading line while the list is empty.
type Home struct {
	mu     sync.Mutex
	breeds []domain.Breed
	cancel func()
}

// NewHome subscribes to source and keeps the latest collection it publishes.
func NewHome(source observable.ReadOnly[[]domain.Breed]) *Home {
	h := &Home{}
	h.cancel = source.Subscribe(h.update)
	return h
}

func (h *Home) update(breeds []domain.Breed) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.breeds = breeds
}

// Breeds returns the snapshot the next Render will draw.
func (h *Home) Breeds() []domain.Breed {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.breeds
}

// Close stops listening to the store.
func (h *Home) Close() {
	h.cancel()
}

func (h *Home) Render(w io.Writer) error {
	breeds := h.Breeds()

	if len(breeds) == 0 {
		_, err := fmt.Fprintln(w, LoadingText)
		return err
	}

	for _, b := range breeds {
		if _, err := fmt.Fprintln(w, Card(b)); err != nil {
			return err
		}
	}
	return nil
}

// Card renders one breed as a titled two-column table.
func Card(b domain.Breed) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle(b.Name)
	t.Style().Title.Align = text.AlignCenter
	t.AppendRows([]table.Row{
		{"Origin", b.Origin},
		{"Size", b.Size},
		{"Coat", b.Coat},
		{"Temperament", b.TemperamentText()},
		{"Life Expectancy", b.LifeExpectancy},
		{"Description", b.Description},
	})
	return t.Render()
}
