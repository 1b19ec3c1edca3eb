package generate_booking_slots

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-DefenceBookingService/internal/infra/storage/defence_session"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/logger"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/types"
)

type fakeSessions struct {
	sessions map[int64]*domain.DefenceSession
	err      error
	calls    int
}

func (f *fakeSessions) GetByID(_ context.Context, id int64) (*domain.DefenceSession, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.sessions[id]
	if !ok {
		return nil, sessionRepo.ErrDefenceSessionNotFound
	}
	copied := *s
	return &copied, nil
}

type fakeSlots struct {
	mu     sync.Mutex
	slots  map[int64][]*domain.BookingSlot
	nextID int64
	calls  int
}

func newFakeSlots() *fakeSlots {
	return &fakeSlots{slots: make(map[int64][]*domain.BookingSlot)}
}

func (f *fakeSlots) ExistsByDefenceSessionID(_ context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return len(f.slots[id]) > 0, nil
}

func (f *fakeSlots) CreateBatch(_ context.Context, slots []*domain.BookingSlot) ([]*domain.BookingSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	for _, s := range slots {
		f.nextID++
		s.ID = f.nextID
		f.slots[s.DefenceSessionID] = append(f.slots[s.DefenceSessionID], s)
	}
	return slots, nil
}

// serialTx сериализует транзакции так же, как блокировка строки сессии
type serialTx struct {
	mu    sync.Mutex
	calls int
}

func (tx *serialTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	tx.calls++
	return fn(ctx)
}

type fakePublisher struct {
	mu        sync.Mutex
	published []int64
	err       error
}

func (p *fakePublisher) PublishBookingSlotsGenerated(id int64, _ []*domain.BookingSlot) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, id)
	return p.err
}

type fakeMetrics struct {
	mu        sync.Mutex
	generated int
}

func (m *fakeMetrics) AddBookingSlotsGenerated(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generated += count
}

type fixture struct {
	sessions  *fakeSessions
	slots     *fakeSlots
	tx        *serialTx
	publisher *fakePublisher
	metrics   *fakeMetrics
	uc        *UseCase
}

func newFixture(resolution time.Duration) *fixture {
	f := &fixture{
		sessions: &fakeSessions{sessions: map[int64]*domain.DefenceSession{
			1: {
				ID:        1,
				Date:      time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
				StartTime: types.MustTimeOfDay(13, 0, 0, 0),
				EndTime:   types.MustTimeOfDay(13, 30, 0, 0),
			},
			2: {
				ID:        2,
				Date:      time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
				StartTime: types.MustTimeOfDay(0, 0, 0, 0),
				EndTime:   types.MustTimeOfDay(0, 1, 0, 0),
			},
		}},
		slots:     newFakeSlots(),
		tx:        &serialTx{},
		publisher: &fakePublisher{},
		metrics:   &fakeMetrics{},
	}
	f.uc = NewUseCase(f.sessions, f.slots, f.tx, f.publisher, f.metrics, resolution, logger.NewNop())
	return f
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(time.Second)

	resp, err := f.uc.Execute(context.Background(), &Request{DefenceSessionID: 1, BookingSlotsCount: 3})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)

	want := [][2]string{{"13:00:00", "13:10:00"}, {"13:10:00", "13:20:00"}, {"13:20:00", "13:30:00"}}
	for i, slot := range resp.Slots {
		assert.Equal(t, want[i][0], slot.StartTime.String())
		assert.Equal(t, want[i][1], slot.EndTime.String())
		assert.False(t, slot.IsBooked)
		assert.Nil(t, slot.UserID)
		assert.Equal(t, int64(1), slot.DefenceSessionID)
	}

	assert.Equal(t, []int64{1}, f.publisher.published)
	assert.Equal(t, 3, f.metrics.generated)
}

func TestExecute_TruncatesRemainder(t *testing.T) {
	f := newFixture(time.Second)

	resp, err := f.uc.Execute(context.Background(), &Request{DefenceSessionID: 2, BookingSlotsCount: 7})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 7)

	assert.Equal(t, "00:00:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "00:00:08", resp.Slots[0].EndTime.String())
	assert.Equal(t, "00:00:56", resp.Slots[6].EndTime.String())
}

func TestExecute_InvalidCount_NoPersistenceCalls(t *testing.T) {
	for _, count := range []int{0, -1, domain.MaxBookingSlotsCount + 1} {
		f := newFixture(time.Second)

		_, err := f.uc.Execute(context.Background(), &Request{DefenceSessionID: 1, BookingSlotsCount: count})
		assert.ErrorIs(t, err, ErrInvalidSlotsCount)

		assert.Zero(t, f.tx.calls)
		assert.Zero(t, f.sessions.calls)
		assert.Zero(t, f.slots.calls)
	}
}

func TestExecute_SessionNotFound(t *testing.T) {
	f := newFixture(time.Second)

	_, err := f.uc.Execute(context.Background(), &Request{DefenceSessionID: 404, BookingSlotsCount: 3})
	assert.ErrorIs(t, err, ErrDefenceSessionNotFound)
	assert.Zero(t, f.slots.calls)
	assert.Empty(t, f.publisher.published)
}

func TestExecute_SessionRepositoryError(t *testing.T) {
	f := newFixture(time.Second)
	f.sessions.err = errors.New("connection reset")

	_, err := f.uc.Execute(context.Background(), &Request{DefenceSessionID: 1, BookingSlotsCount: 3})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_SecondCallConflicts(t *testing.T) {
	f := newFixture(time.Second)

	_, err := f.uc.Execute(context.Background(), &Request{DefenceSessionID: 1, BookingSlotsCount: 3})
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), &Request{DefenceSessionID: 1, BookingSlotsCount: 5})
	assert.ErrorIs(t, err, ErrBookingSlotsAlreadyExist)
	assert.Len(t, f.slots.slots[1], 3)
}

func TestExecute_ConcurrentCallsCreateOnce(t *testing.T) {
	f := newFixture(time.Second)

	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Execute(context.Background(), &Request{DefenceSessionID: 1, BookingSlotsCount: 3})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrBookingSlotsAlreadyExist)
	}

	assert.Equal(t, 1, succeeded)
	assert.Len(t, f.slots.slots[1], 3)
}

func TestExecute_SlotTooShort(t *testing.T) {
	f := newFixture(time.Second)

	_, err := f.uc.Execute(context.Background(), &Request{DefenceSessionID: 2, BookingSlotsCount: 61})
	assert.ErrorIs(t, err, ErrSlotTooShort)
	assert.Empty(t, f.slots.slots[2])
}

func TestExecute_ResolutionFlooredToMicrosecond(t *testing.T) {
	f := newFixture(0)

	resp, err := f.uc.Execute(context.Background(), &Request{DefenceSessionID: 1, BookingSlotsCount: 7})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 7)

	want := (30 * time.Minute / 7).Truncate(time.Microsecond)
	for _, slot := range resp.Slots {
		assert.Equal(t, want, slot.EndTime.Sub(slot.StartTime))
		assert.Zero(t, slot.StartTime.Offset()%time.Microsecond)
	}
}

func TestExecute_MaxCountAccepted(t *testing.T) {
	f := newFixture(0)

	resp, err := f.uc.Execute(context.Background(), &Request{DefenceSessionID: 1, BookingSlotsCount: domain.MaxBookingSlotsCount})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, domain.MaxBookingSlotsCount)
}

func TestExecute_PublishErrorIgnored(t *testing.T) {
	f := newFixture(time.Second)
	f.publisher.err = errors.New("nats down")

	resp, err := f.uc.Execute(context.Background(), &Request{DefenceSessionID: 1, BookingSlotsCount: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 2)
}
