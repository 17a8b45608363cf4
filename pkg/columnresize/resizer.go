// Package columnresize mantém o estado de redimensionamento de colunas de uma
// tabela, independente de quem a renderiza.
package columnresize

import (
	"math"
	"sync"
)

// DefaultMinWidth é a largura mínima aplicada quando a coluna não define uma
const DefaultMinWidth = 50.0

type Column struct {
	ID       string
	Width    float64
	MinWidth float64
}

type session struct {
	columnID   string
	startX     float64
	startWidth float64
}

// Resizer acompanha no máximo uma coluna sendo redimensionada por vez
type Resizer struct {
	mu         sync.Mutex
	order      []string
	columns    map[string]*Column
	totalWidth float64
	active     *session
}

func New(columns []Column) *Resizer {
	r := &Resizer{
		columns: make(map[string]*Column, len(columns)),
	}

	for _, c := range columns {
		if _, exists := r.columns[c.ID]; exists {
			continue
		}

		col := c
		if col.MinWidth <= 0 {
			col.MinWidth = DefaultMinWidth
		}
		col.Width = math.Max(col.Width, col.MinWidth)

		r.columns[col.ID] = &col
		r.order = append(r.order, col.ID)
		r.totalWidth += col.Width
	}

	return r
}

// StartResize inicia uma sessão para a coluna. Retorna false se já houver uma
// sessão ativa ou se a coluna não existir.
func (r *Resizer) StartResize(columnID string, startX float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active != nil {
		return false
	}

	col, ok := r.columns[columnID]
	if !ok {
		return false
	}

	r.active = &session{
		columnID:   columnID,
		startX:     startX,
		startWidth: col.Width,
	}

	return true
}

// HandleResize recalcula a largura da coluna ativa. Sem sessão ativa não faz nada.
func (r *Resizer) HandleResize(currentX float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active == nil {
		return
	}

	col := r.columns[r.active.columnID]
	newWidth := math.Max(r.active.startWidth+(currentX-r.active.startX), col.MinWidth)

	r.totalWidth += newWidth - col.Width
	col.Width = newWidth
}

func (r *Resizer) EndResize() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.active = nil
}

// Resizing retorna a coluna em redimensionamento, se houver
func (r *Resizer) Resizing() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active == nil {
		return "", false
	}
	return r.active.columnID, true
}

func (r *Resizer) Width(columnID string) (float64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	col, ok := r.columns[columnID]
	if !ok {
		return 0, false
	}
	return col.Width, true
}

func (r *Resizer) TotalWidth() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.totalWidth
}

// Columns devolve uma cópia das colunas na ordem original
func (r *Resizer) Columns() []Column {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Column, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.columns[id])
	}
	return out
}
