// Package catalog справочные данные студии: услуги, мастера, категории, расписание
// и демо-записи. Каталог неизменяем после загрузки, все методы - чистые выборки
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// Catalog неизменяемый справочник
type Catalog struct {
	studio     domain.Studio
	schedule   domain.ScheduleConfig
	categories []domain.Category
	services   []domain.Service
	masters    []domain.Master
	seeds      []domain.SeedReservation

	servicesByID map[string]int
	mastersByID  map[string]int
}

// ServiceByID возвращает копию услуги или nil, если услуга не найдена
func (c *Catalog) ServiceByID(id string) *domain.Service {
	i, ok := c.servicesByID[id]
	if !ok {
		return nil
	}
	s := c.services[i]
	return &s
}

// ServicesByCategory возвращает услуги категории; "all" - все услуги
func (c *Catalog) ServicesByCategory(categoryID string) []domain.Service {
	result := make([]domain.Service, 0, len(c.services))
	for _, s := range c.services {
		if categoryID == domain.CategoryAll || s.Category == categoryID {
			result = append(result, s)
		}
	}
	return result
}

// MasterByID возвращает копию мастера или nil, если мастер не найден
func (c *Catalog) MasterByID(id string) *domain.Master {
	i, ok := c.mastersByID[id]
	if !ok {
		return nil
	}
	return c.masters[i].Clone()
}

// MastersByCategory возвращает мастеров со специализацией; "all" - всех мастеров
func (c *Catalog) MastersByCategory(categoryID string) []domain.Master {
	result := make([]domain.Master, 0, len(c.masters))
	for i := range c.masters {
		if categoryID == domain.CategoryAll || c.masters[i].HasSpecialization(categoryID) {
			result = append(result, *c.masters[i].Clone())
		}
	}
	return result
}

// MastersForService возвращает мастеров, которые могут выполнить услугу
func (c *Catalog) MastersForService(serviceID string) []domain.Master {
	service := c.ServiceByID(serviceID)
	if service == nil {
		return []domain.Master{}
	}
	return c.MastersByCategory(service.Category)
}

// IsMasterEligible проверяет, что мастер работает в категории услуги
func (c *Catalog) IsMasterEligible(masterID, serviceID string) bool {
	master := c.MasterByID(masterID)
	return master != nil && master.CanPerform(c.ServiceByID(serviceID))
}

func (c *Catalog) Categories() []domain.Category {
	return append([]domain.Category(nil), c.categories...)
}

func (c *Catalog) Schedule() domain.ScheduleConfig {
	s := c.schedule
	s.WorkDays = append([]int(nil), c.schedule.WorkDays...)
	return s
}

// Seeds демо-записи с уже вычисленными датами
func (c *Catalog) Seeds() []domain.SeedReservation {
	return append([]domain.SeedReservation(nil), c.seeds...)
}

func (c *Catalog) Studio() domain.Studio {
	return c.studio
}

// FormatPrice форматирует цену с разделителем разрядов и валютой: "1 500 ₽"
func (c *Catalog) FormatPrice(price int) string {
	return groupThousands(price) + " " + c.studio.Currency
}

// FormatDuration форматирует длительность: "45 мин", "1 ч", "1 ч 30 мин"
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d мин", minutes)
	}
	hours, mins := minutes/60, minutes%60
	if mins == 0 {
		return fmt.Sprintf("%d ч", hours)
	}
	return fmt.Sprintf("%d ч %d мин", hours, mins)
}

// groupThousands разделяет разряды неразрывным пробелом, как ru-RU локаль
func groupThousands(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.Itoa(n)

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteRune('\u00a0')
		}
		b.WriteRune(r)
	}
	return sign + b.String()
}
