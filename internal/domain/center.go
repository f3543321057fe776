package domain

import (
	"time"

	"github.com/civicreg/booking-service/pkg/types"
)

// RegistrationCenter центр регистрации с правилами рабочего времени
// Read-only вход для Calendar Builder'а, приходит из master-data сервиса
// Все времена наивные локальные (часовой пояс центра подразумевается)
type RegistrationCenter struct {
	ID                 string
	Name               string
	CenterStartTime    types.TimeString
	CenterEndTime      types.TimeString
	LunchStartTime     types.TimeString
	LunchEndTime       types.TimeString
	PerKioskProcessing int // Длительность одного слота в минутах
	NumberOfKiosks     int // Вместимость каждого слота
}

// HasLunchBreak возвращает true, если у центра задан обеденный перерыв
func (c *RegistrationCenter) HasLunchBreak() bool {
	return !c.LunchStartTime.IsZero() && !c.LunchEndTime.IsZero() &&
		c.LunchStartTime != c.LunchEndTime
}

// IsHoliday проверяет, попадает ли дата в список праздничных дней
func IsHoliday(date time.Time, holidays []time.Time) bool {
	for _, h := range holidays {
		if IsSameDay(date, h) {
			return true
		}
	}
	return false
}
