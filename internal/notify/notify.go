package notify

import (
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/buff-dashboard-api/pkg/utils"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

const DefaultCapacity = 50

// Notifier recebe as notificações transitórias exibidas ao usuário
type Notifier interface {
	Success(message string)
	Error(message string)
}

type Notification struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Inbox guarda as notificações até serem lidas. Quando cheia descarta a mais antiga.
type Inbox struct {
	mu       sync.Mutex
	items    []Notification
	capacity int
	now      func() time.Time
}

func NewInbox(capacity int) *Inbox {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Inbox{
		capacity: capacity,
		now:      time.Now,
	}
}

func (i *Inbox) Success(message string) {
	i.push(KindSuccess, message)
}

func (i *Inbox) Error(message string) {
	i.push(KindError, message)
}

func (i *Inbox) push(kind Kind, message string) {
	id, err := utils.GenerateID(utils.DefaultIDSize)
	if err != nil {
		logrus.WithError(err).Warn("notify: erro ao gerar id da notificação")
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if len(i.items) >= i.capacity {
		i.items = i.items[1:]
	}

	i.items = append(i.items, Notification{
		ID:        id,
		Kind:      kind,
		Message:   message,
		CreatedAt: i.now(),
	})

	logrus.WithFields(logrus.Fields{
		"kind":    kind,
		"message": message,
	}).Debug("notify: notificação registrada")
}

// Drain devolve as notificações pendentes em ordem de chegada e esvazia a caixa
func (i *Inbox) Drain() []Notification {
	i.mu.Lock()
	defer i.mu.Unlock()

	out := i.items
	i.items = nil
	if out == nil {
		out = []Notification{}
	}
	return out
}

func (i *Inbox) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.items)
}

type discard struct{}

func (discard) Success(string) {}
func (discard) Error(string)   {}

// Discard ignora toda notificação
var Discard Notifier = discard{}

// FallbackMessage é usada quando o erro não traz texto algum
const FallbackMessage = "Something went wrong"

// ErrorMessage converte um erro no texto exibido ao usuário
func ErrorMessage(err error) string {
	if err == nil || strings.TrimSpace(err.Error()) == "" {
		return FallbackMessage
	}
	return err.Error()
}
