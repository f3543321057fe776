package masterdata

// CenterResponse модель центра регистрации из master-data сервиса
type CenterResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	CenterStartTime    string `json:"center_start_time"` // "09:00"
	CenterEndTime      string `json:"center_end_time"`   // "17:00"
	LunchStartTime     string `json:"lunch_start_time,omitempty"`
	LunchEndTime       string `json:"lunch_end_time,omitempty"`
	PerKioskProcessing int    `json:"per_kiosk_process_time"` // Минуты на один слот
	NumberOfKiosks     int    `json:"number_of_kiosks"`
}

// CentersListResponse модель списка центров
type CentersListResponse struct {
	Centers []CenterResponse `json:"registration_centers"`
}

// HolidaysResponse модель списка праздничных дней центра
type HolidaysResponse struct {
	CenterID string   `json:"center_id"`
	Holidays []string `json:"holidays"` // Даты в формате YYYY-MM-DD
}
