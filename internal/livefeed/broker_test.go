package livefeed

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
)

type roomRecorder struct {
	mu     sync.Mutex
	joins  []string
	leaves []string
}

func (r *roomRecorder) join(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.joins = append(r.joins, id)
}

func (r *roomRecorder) leave(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leaves = append(r.leaves, id)
}

func TestBroker_PublishRouting(t *testing.T) {
	b := NewBroker()

	company, err := b.Subscribe("1")
	require.NoError(t, err)
	other, err := b.Subscribe("2")
	require.NoError(t, err)
	all, err := b.Subscribe(AllCompanies)
	require.NoError(t, err)

	b.Publish(Message{Kind: KindVote, CompanyID: "1", Vote: &domain.Vote{ID: "10"}})

	assert.Len(t, company.C(), 1)
	assert.Len(t, other.C(), 0)
	assert.Len(t, all.C(), 1)
}

func TestBroker_RoomHooksFollowRefcount(t *testing.T) {
	rec := &roomRecorder{}
	b := NewBroker(WithRoomHooks(rec.join, rec.leave))

	first, _ := b.Subscribe("1")
	second, _ := b.Subscribe("1")

	first.Close()
	first.Close()
	assert.Empty(t, rec.leaves)
	assert.Equal(t, 1, b.Subscribers("1"))

	second.Close()

	assert.Equal(t, []string{"1"}, rec.joins)
	assert.Equal(t, []string{"1"}, rec.leaves)
	assert.Empty(t, b.Rooms())

	_, ok := <-first.C()
	assert.False(t, ok)
}

func TestBroker_SlowSubscriberDropsMessages(t *testing.T) {
	b := NewBroker(WithBufferSize(1))
	sub, _ := b.Subscribe("1")

	b.Publish(Message{Kind: KindVote, CompanyID: "1"})
	b.Publish(Message{Kind: KindVote, CompanyID: "1"})

	assert.Len(t, sub.C(), 1)
}

func TestBroker_CloseClosesSubscriptions(t *testing.T) {
	b := NewBroker()
	sub, _ := b.Subscribe("1")

	b.Close()
	b.Publish(Message{Kind: KindVote, CompanyID: "1"})

	_, ok := <-sub.C()
	assert.False(t, ok)
	sub.Close()
}
