package setting

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/setting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSaver struct {
	mu    sync.Mutex
	saved []setting.SaveSectionRequest
}

func (r *recordingSaver) save(_ context.Context, req setting.SaveSectionRequest) setting.SaveConfigResponse {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, req)
	return setting.SaveConfigResponse{Success: true, Message: "Settings saved"}
}

func (r *recordingSaver) snapshot() []setting.SaveSectionRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]setting.SaveSectionRequest(nil), r.saved...)
}

func workingHoursEdit(daily int64) setting.SaveSectionRequest {
	return setting.SaveSectionRequest{
		Section: setting.SectionWorkingHours,
		WorkingHours: &setting.WorkingHoursConfig{
			DailyHours:          decimal.NewFromInt(daily),
			WorkingDaysPerMonth: decimal.NewFromInt(22),
			WorkingDaysPerWeek:  decimal.NewFromInt(5),
		},
	}
}

func leaveEdit(vacation int64) setting.SaveSectionRequest {
	return setting.SaveSectionRequest{
		Section: setting.SectionLeave,
		Leave: &setting.LeaveConfig{
			VacationDays: decimal.NewFromInt(vacation),
		},
	}
}

func TestSaveQueue_CoalescesEditsToSameSection(t *testing.T) {
	t.Parallel()
	saver := &recordingSaver{}
	q := NewSaveQueue(time.Hour, saver.save)

	q.Enqueue(workingHoursEdit(8))
	q.Enqueue(workingHoursEdit(7))
	q.Enqueue(workingHoursEdit(6))

	results := q.Flush(context.Background())

	require.Len(t, results, 1)
	saved := saver.snapshot()
	require.Len(t, saved, 1, "three rapid edits must coalesce into one save")
	assert.True(t, saved[0].WorkingHours.DailyHours.Equal(decimal.NewFromInt(6)),
		"the last edit wins")
}

func TestSaveQueue_DistinctSectionsFlushInFirstEditOrder(t *testing.T) {
	t.Parallel()
	saver := &recordingSaver{}
	q := NewSaveQueue(time.Hour, saver.save)

	q.Enqueue(leaveEdit(10))
	q.Enqueue(workingHoursEdit(8))
	q.Enqueue(leaveEdit(12)) // replaces pending leave edit, keeps its slot

	q.Flush(context.Background())

	saved := saver.snapshot()
	require.Len(t, saved, 2)
	assert.Equal(t, setting.SectionLeave, saved[0].Section)
	assert.Equal(t, setting.SectionWorkingHours, saved[1].Section)
	assert.True(t, saved[0].Leave.VacationDays.Equal(decimal.NewFromInt(12)))
}

func TestSaveQueue_FlushClearsPending(t *testing.T) {
	t.Parallel()
	saver := &recordingSaver{}
	q := NewSaveQueue(time.Hour, saver.save)

	q.Enqueue(workingHoursEdit(8))
	q.Flush(context.Background())
	results := q.Flush(context.Background())

	assert.Empty(t, results, "second flush has nothing to save")
	assert.Len(t, saver.snapshot(), 1)
}

func TestSaveQueue_QuietPeriodTriggersSave(t *testing.T) {
	t.Parallel()
	saver := &recordingSaver{}
	q := NewSaveQueue(20*time.Millisecond, saver.save)

	q.Enqueue(workingHoursEdit(8))

	assert.Eventually(t, func() bool {
		return len(saver.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestSaveQueue_CloseDrainsAndRejectsFurtherEdits(t *testing.T) {
	t.Parallel()
	saver := &recordingSaver{}
	q := NewSaveQueue(time.Hour, saver.save)

	q.Enqueue(workingHoursEdit(8))
	q.Close(context.Background())

	require.Len(t, saver.snapshot(), 1, "pending edit must be saved on close")

	q.Enqueue(workingHoursEdit(7))
	q.Flush(context.Background())
	assert.Len(t, saver.snapshot(), 1, "edits after close are dropped")
}
