// Package livefeed distribui as mensagens do canal de push para os monitores abertos
package livefeed

import (
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/log"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/metrics"
)

// AllCompanies é a sala que recebe mensagens de qualquer empresa
const AllCompanies = ""

type MessageKind string

const (
	KindVote     MessageKind = "vote"
	KindSnapshot MessageKind = "snapshot"
)

type Message struct {
	Kind       MessageKind
	CompanyID  string
	Vote       *domain.Vote
	Snapshot   *domain.AnalyticsSnapshot
	ReceivedAt time.Time
}

type Subscription interface {
	C() <-chan Message
	CompanyID() string
	Close()
}

// Hub é o lado consumidor do broker
type Hub interface {
	Subscribe(companyID string) (Subscription, error)
}

// RoomHook é chamado quando uma sala ganha o primeiro ou perde o último assinante
type RoomHook func(companyID string)

type Option func(*Broker)

func WithBufferSize(size int) Option {
	return func(b *Broker) {
		if size > 0 {
			b.bufferSize = size
		}
	}
}

func WithRoomHooks(onJoin, onLeave RoomHook) Option {
	return func(b *Broker) {
		b.onJoin = onJoin
		b.onLeave = onLeave
	}
}

type Broker struct {
	mu         sync.Mutex
	rooms      map[string]map[*subscription]struct{}
	bufferSize int
	onJoin     RoomHook
	onLeave    RoomHook
	closed     bool
}

func NewBroker(opts ...Option) *Broker {
	b := &Broker{
		rooms:      make(map[string]map[*subscription]struct{}),
		bufferSize: 64,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Broker) Subscribe(companyID string) (Subscription, error) {
	sub := &subscription{
		broker:    b,
		companyID: companyID,
		ch:        make(chan Message, b.bufferSize),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(sub.ch)
		return sub, nil
	}
	room, ok := b.rooms[companyID]
	if !ok {
		room = make(map[*subscription]struct{})
		b.rooms[companyID] = room
	}
	room[sub] = struct{}{}
	first := len(room) == 1
	onJoin := b.onJoin
	b.mu.Unlock()

	if first && onJoin != nil {
		onJoin(companyID)
	}

	log.L.WithField("company_id", companyID).Debug("livefeed: assinatura criada")
	return sub, nil
}

// Publish entrega a mensagem para a sala da empresa e para a sala geral.
// Assinantes com buffer cheio perdem a mensagem; o polling do monitor cobre a lacuna.
func (b *Broker) Publish(msg Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	deliver := func(room map[*subscription]struct{}) {
		for sub := range room {
			select {
			case sub.ch <- msg:
			default:
				metrics.PushMessagesDropped.Inc()
				log.L.WithField("company_id", sub.companyID).Warn("livefeed: assinante lento, mensagem descartada")
			}
		}
	}

	deliver(b.rooms[msg.CompanyID])
	if msg.CompanyID != AllCompanies {
		deliver(b.rooms[AllCompanies])
	}
}

// Rooms lista as salas com pelo menos um assinante
func (b *Broker) Rooms() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	rooms := make([]string, 0, len(b.rooms))
	for id := range b.rooms {
		rooms = append(rooms, id)
	}
	sort.Strings(rooms)
	return rooms
}

func (b *Broker) Subscribers(companyID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.rooms[companyID])
}

// Close encerra todas as assinaturas; os canais são fechados
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, room := range b.rooms {
		for sub := range room {
			sub.closeChannel()
		}
		delete(b.rooms, id)
	}
}

func (b *Broker) unsubscribe(sub *subscription) {
	b.mu.Lock()
	room, ok := b.rooms[sub.companyID]
	if !ok {
		b.mu.Unlock()
		return
	}
	if _, ok := room[sub]; !ok {
		b.mu.Unlock()
		return
	}
	delete(room, sub)
	last := len(room) == 0
	if last {
		delete(b.rooms, sub.companyID)
	}
	sub.closeChannel()
	onLeave := b.onLeave
	b.mu.Unlock()

	if last && onLeave != nil {
		onLeave(sub.companyID)
	}

	log.L.WithField("company_id", sub.companyID).Debug("livefeed: assinatura encerrada")
}

type subscription struct {
	broker    *Broker
	companyID string
	ch        chan Message
	once      sync.Once
	chOnce    sync.Once
}

func (s *subscription) C() <-chan Message {
	return s.ch
}

func (s *subscription) CompanyID() string {
	return s.companyID
}

// Close pode ser chamado mais de uma vez; apenas a primeira tem efeito
func (s *subscription) Close() {
	s.once.Do(func() {
		s.broker.unsubscribe(s)
	})
}

func (s *subscription) closeChannel() {
	s.chOnce.Do(func() {
		close(s.ch)
	})
}
