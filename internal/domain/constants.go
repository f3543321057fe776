package domain

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Значения по умолчанию для календаря доступности
const (
	DefaultNoOfDays           = 30 // Размер скользящего окна календаря в днях
	DefaultSlotDurationMins   = 15
	DefaultNumberOfKiosks     = 1
	AvailabilityViewFromShift = 2 // Доступность отдается начиная с today+2
)

// Сообщения, видимые заявителю
const (
	MsgAppointmentBooked   = "APPOINTMENT_SUCCESSFULLY_BOOKED"
	MsgAppointmentCanceled = "APPOINTMENT_SUCCESSFULLY_CANCELED"
	MsgMasterDataSynced    = "MASTER_DATA_SYNCED_SUCCESSFULLY"
)

// ActiveStatuses статусы бронирований, занимающих место в слоте
var ActiveStatuses = []BookingStatus{
	StatusBooked,
}
