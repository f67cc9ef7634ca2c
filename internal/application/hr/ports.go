package hr

// Metrics contador de solicitudes de ausencia. Ver infrastructure/metrics.
type Metrics interface {
	LeaveRequested(leaveType string)
}

type nopMetrics struct{}

func (nopMetrics) LeaveRequested(string) {}
