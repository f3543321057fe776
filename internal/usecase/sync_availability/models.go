package sync_availability

// CenterFailure результат неудачной синхронизации одного центра
type CenterFailure struct {
	CenterID string
	Reason   string
}

// Response модель результата синхронизации календаря
// Сбой одного центра не прерывает синхронизацию остальных,
// поэтому ответ несёт и число успехов, и список отказов
type Response struct {
	Message       string
	SyncedCenters int
	FailedCenters []CenterFailure
}
