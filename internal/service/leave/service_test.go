package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/attendance"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/leave"
	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/clock"
	"github.com/sunshine-dental/clinic-backend-go/internal/repository/inmemory"
)

type serviceFixture struct {
	svc            leave.LeaveService
	leaveRepo      *inmemory.LeaveRequestRepository
	attendanceRepo *inmemory.AttendanceRepository
	scheduleRepo   *inmemory.ScheduleEntryRepository
}

func newServiceFixture() serviceFixture {
	leaveRepo := inmemory.NewLeaveRequestRepository()
	attendanceRepo := inmemory.NewAttendanceRepository()
	scheduleRepo := inmemory.NewScheduleEntryRepository()
	engine := NewCascadeEngine(attendanceRepo, scheduleRepo, time.Sunday)
	clk := clock.Fixed{Instant: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	return serviceFixture{
		svc:            NewLeaveService(leaveRepo, engine, clk, time.UTC),
		leaveRepo:      leaveRepo,
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
	}
}

func createRequest() leave.CreateLeaveRequestRequest {
	return leave.CreateLeaveRequestRequest{
		StaffID:   "doc-1",
		ClinicID:  "clinic-1",
		StartDate: "2024-03-04",
		EndDate:   "2024-03-05",
		LeaveType: "ANNUAL",
		Reason:    "family matter",
	}
}

func TestCreateLeaveRequest_StartsPending(t *testing.T) {
	t.Parallel()
	f := newServiceFixture()

	resp, err := f.svc.CreateLeaveRequest(context.Background(), createRequest())

	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveStatusPending), resp.Status)
	assert.Equal(t, "2024-03-04", resp.StartDate)
	assert.Equal(t, "2024-03-05", resp.EndDate)
	assert.NotEmpty(t, resp.ID)
}

func TestCreateLeaveRequest_EndBeforeStartRejected(t *testing.T) {
	t.Parallel()
	f := newServiceFixture()

	req := createRequest()
	req.StartDate = "2024-03-05"
	req.EndDate = "2024-03-04"

	_, err := f.svc.CreateLeaveRequest(context.Background(), req)
	require.Error(t, err)
}

func TestProcessLeaveRequest_ApprovalRunsCascade(t *testing.T) {
	t.Parallel()
	f := newServiceFixture()

	created, err := f.svc.CreateLeaveRequest(context.Background(), createRequest())
	require.NoError(t, err)

	resp, err := f.svc.ProcessLeaveRequest(context.Background(), leave.ProcessLeaveRequestRequest{
		RequestID:  created.ID,
		ApproverID: "admin-1",
		Action:     leave.LeaveActionApprove,
	})

	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveStatusApproved), resp.Status)
	require.NotNil(t, resp.ApprovedBy)
	assert.Equal(t, "admin-1", *resp.ApprovedBy)

	for _, day := range []time.Time{
		time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	} {
		records, err := f.attendanceRepo.ListByStaffAndDate(context.Background(), "doc-1", "clinic-1", day)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, attendance.StatusApprovedAbsence, records[0].Status)
	}
}

func TestProcessLeaveRequest_RejectionTouchesNothing(t *testing.T) {
	t.Parallel()
	f := newServiceFixture()

	created, err := f.svc.CreateLeaveRequest(context.Background(), createRequest())
	require.NoError(t, err)

	resp, err := f.svc.ProcessLeaveRequest(context.Background(), leave.ProcessLeaveRequestRequest{
		RequestID:  created.ID,
		ApproverID: "admin-1",
		Action:     leave.LeaveActionReject,
	})

	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveStatusRejected), resp.Status)

	records, err := f.attendanceRepo.ListByStaffAndDate(context.Background(), "doc-1", "clinic-1", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestProcessLeaveRequest_Terminal(t *testing.T) {
	t.Parallel()
	f := newServiceFixture()

	created, err := f.svc.CreateLeaveRequest(context.Background(), createRequest())
	require.NoError(t, err)

	req := leave.ProcessLeaveRequestRequest{
		RequestID:  created.ID,
		ApproverID: "admin-1",
		Action:     leave.LeaveActionApprove,
	}
	_, err = f.svc.ProcessLeaveRequest(context.Background(), req)
	require.NoError(t, err)

	_, err = f.svc.ProcessLeaveRequest(context.Background(), req)
	require.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestProcessLeaveRequest_UnknownID(t *testing.T) {
	t.Parallel()
	f := newServiceFixture()

	_, err := f.svc.ProcessLeaveRequest(context.Background(), leave.ProcessLeaveRequestRequest{
		RequestID:  "missing",
		ApproverID: "admin-1",
		Action:     leave.LeaveActionApprove,
	})
	require.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestCancelLeaveRequest_PendingIsCancelled(t *testing.T) {
	t.Parallel()
	f := newServiceFixture()

	created, err := f.svc.CreateLeaveRequest(context.Background(), createRequest())
	require.NoError(t, err)

	resp, err := f.svc.CancelLeaveRequest(context.Background(), created.ID, "doc-1")

	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveStatusCancelled), resp.Status)
}

func TestCancelLeaveRequest_ApprovedRevertsCascade(t *testing.T) {
	t.Parallel()
	f := newServiceFixture()

	created, err := f.svc.CreateLeaveRequest(context.Background(), createRequest())
	require.NoError(t, err)
	_, err = f.svc.ProcessLeaveRequest(context.Background(), leave.ProcessLeaveRequestRequest{
		RequestID:  created.ID,
		ApproverID: "admin-1",
		Action:     leave.LeaveActionApprove,
	})
	require.NoError(t, err)

	resp, err := f.svc.CancelLeaveRequest(context.Background(), created.ID, "doc-1")

	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveStatusCancelled), resp.Status)

	records, err := f.attendanceRepo.ListByStaffAndDate(context.Background(), "doc-1", "clinic-1", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusAbsent, records[0].Status)
}

func TestCancelLeaveRequest_OnlyOwnRequests(t *testing.T) {
	t.Parallel()
	f := newServiceFixture()

	created, err := f.svc.CreateLeaveRequest(context.Background(), createRequest())
	require.NoError(t, err)

	_, err = f.svc.CancelLeaveRequest(context.Background(), created.ID, "doc-2")
	require.ErrorIs(t, err, leave.ErrUnauthorizedAccess)
}

func TestCancelLeaveRequest_RejectedCannotBeCancelled(t *testing.T) {
	t.Parallel()
	f := newServiceFixture()

	created, err := f.svc.CreateLeaveRequest(context.Background(), createRequest())
	require.NoError(t, err)
	_, err = f.svc.ProcessLeaveRequest(context.Background(), leave.ProcessLeaveRequestRequest{
		RequestID:  created.ID,
		ApproverID: "admin-1",
		Action:     leave.LeaveActionReject,
	})
	require.NoError(t, err)

	_, err = f.svc.CancelLeaveRequest(context.Background(), created.ID, "doc-1")
	require.ErrorIs(t, err, leave.ErrCannotCancel)
}

func TestListLeaveRequests_FiltersByStatus(t *testing.T) {
	t.Parallel()
	f := newServiceFixture()

	first, err := f.svc.CreateLeaveRequest(context.Background(), createRequest())
	require.NoError(t, err)
	_, err = f.svc.CreateLeaveRequest(context.Background(), createRequest())
	require.NoError(t, err)
	_, err = f.svc.ProcessLeaveRequest(context.Background(), leave.ProcessLeaveRequestRequest{
		RequestID:  first.ID,
		ApproverID: "admin-1",
		Action:     leave.LeaveActionApprove,
	})
	require.NoError(t, err)

	pending := leave.LeaveStatusPending
	resp, err := f.svc.ListLeaveRequests(context.Background(), "clinic-1", leave.LeaveRequestFilter{Status: &pending})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.TotalCount)
	require.Len(t, resp.Requests, 1)
	assert.Equal(t, string(leave.LeaveStatusPending), resp.Requests[0].Status)
}
