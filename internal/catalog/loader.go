package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// seedFile демо-запись в файле: либо абсолютная дата, либо смещение в днях от сегодня
type seedFile struct {
	MasterID  string `yaml:"masterId"`
	Date      string `yaml:"date"`
	DaysAhead *int   `yaml:"daysAhead"`
	Time      string `yaml:"time"`
}

type catalogFile struct {
	Studio     domain.Studio         `yaml:"studio"`
	Schedule   domain.ScheduleConfig `yaml:"schedule"`
	Categories []domain.Category     `yaml:"categories"`
	Services   []domain.Service      `yaml:"services"`
	Masters    []domain.Master       `yaml:"masters"`
	Seeds      []seedFile            `yaml:"seeds"`
}

// Load читает каталог из файла; пустой путь - встроенный каталог студии.
// today используется для дат демо-записей, заданных через daysAhead
func Load(path string, today time.Time) (*Catalog, error) {
	data := defaultCatalog
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadCatalog, path, err)
		}
		data = raw
	}
	return Parse(data, today)
}

// Default встроенный каталог
func Default(today time.Time) (*Catalog, error) {
	return Parse(defaultCatalog, today)
}

// Parse разбирает YAML каталога, применяет дефолты расписания и валидирует данные
func Parse(data []byte, today time.Time) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadCatalog, err)
	}

	applyScheduleDefaults(&file.Schedule)

	c := &Catalog{
		studio:       file.Studio,
		schedule:     file.Schedule,
		categories:   file.Categories,
		services:     file.Services,
		masters:      file.Masters,
		servicesByID: make(map[string]int, len(file.Services)),
		mastersByID:  make(map[string]int, len(file.Masters)),
	}

	if err := c.index(); err != nil {
		return nil, err
	}

	loc, err := c.schedule.Location()
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidCatalog, c.schedule.Timezone, err)
	}

	seeds, err := c.resolveSeeds(file.Seeds, today.In(loc))
	if err != nil {
		return nil, err
	}
	c.seeds = seeds

	return c, nil
}

// New собирает каталог из готовых структур (используется в тестах и при сборке из БД)
func New(studio domain.Studio, schedule domain.ScheduleConfig, categories []domain.Category,
	services []domain.Service, masters []domain.Master, seeds []domain.SeedReservation) (*Catalog, error) {
	applyScheduleDefaults(&schedule)

	c := &Catalog{
		studio:       studio,
		schedule:     schedule,
		categories:   categories,
		services:     services,
		masters:      masters,
		seeds:        seeds,
		servicesByID: make(map[string]int, len(services)),
		mastersByID:  make(map[string]int, len(masters)),
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	for _, s := range seeds {
		if err := c.validateSeed(s.MasterID, s.Time); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) index() error {
	s := c.schedule
	if s.WorkHoursStart < 0 || s.WorkHoursEnd > 24 || s.WorkHoursStart >= s.WorkHoursEnd {
		return fmt.Errorf("%w: work hours %d-%d", ErrInvalidCatalog, s.WorkHoursStart, s.WorkHoursEnd)
	}
	if s.SlotDuration <= 0 || s.SlotDuration > 60 {
		return fmt.Errorf("%w: slot duration %d", ErrInvalidCatalog, s.SlotDuration)
	}

	for i, svc := range c.services {
		if svc.ID == "" {
			return fmt.Errorf("%w: service #%d has empty id", ErrInvalidCatalog, i)
		}
		if _, dup := c.servicesByID[svc.ID]; dup {
			return fmt.Errorf("%w: duplicate service id %q", ErrInvalidCatalog, svc.ID)
		}
		if svc.Price <= 0 || svc.Duration <= 0 {
			return fmt.Errorf("%w: service %q must have positive price and duration", ErrInvalidCatalog, svc.ID)
		}
		c.servicesByID[svc.ID] = i
	}

	for i, m := range c.masters {
		if m.ID == "" {
			return fmt.Errorf("%w: master #%d has empty id", ErrInvalidCatalog, i)
		}
		if _, dup := c.mastersByID[m.ID]; dup {
			return fmt.Errorf("%w: duplicate master id %q", ErrInvalidCatalog, m.ID)
		}
		c.mastersByID[m.ID] = i
	}

	return nil
}

func (c *Catalog) resolveSeeds(raw []seedFile, today time.Time) ([]domain.SeedReservation, error) {
	seeds := make([]domain.SeedReservation, 0, len(raw))
	for _, s := range raw {
		if err := c.validateSeed(s.MasterID, s.Time); err != nil {
			return nil, err
		}

		date := s.Date
		switch {
		case s.DaysAhead != nil:
			date = today.AddDate(0, 0, *s.DaysAhead).Format(domain.DateFormat)
		case date == "":
			return nil, fmt.Errorf("%w: seed for %q has neither date nor daysAhead", ErrInvalidCatalog, s.MasterID)
		default:
			if _, err := time.Parse(domain.DateFormat, date); err != nil {
				return nil, fmt.Errorf("%w: seed date %q", ErrInvalidCatalog, date)
			}
		}

		seeds = append(seeds, domain.SeedReservation{
			MasterID: s.MasterID,
			Date:     date,
			Time:     s.Time,
		})
	}
	return seeds, nil
}

func (c *Catalog) validateSeed(masterID, t string) error {
	if _, ok := c.mastersByID[masterID]; !ok {
		return fmt.Errorf("%w: seed references unknown master %q", ErrInvalidCatalog, masterID)
	}
	if err := types.TimeString(t).Validate(); err != nil {
		return fmt.Errorf("%w: seed time: %v", ErrInvalidCatalog, err)
	}
	return nil
}

func applyScheduleDefaults(s *domain.ScheduleConfig) {
	if len(s.WorkDays) == 0 {
		s.WorkDays = append([]int(nil), domain.DefaultWorkDays...)
	}
	if s.WorkHoursStart == 0 && s.WorkHoursEnd == 0 {
		s.WorkHoursStart = domain.DefaultWorkHoursStart
		s.WorkHoursEnd = domain.DefaultWorkHoursEnd
	}
	if s.SlotDuration == 0 {
		s.SlotDuration = domain.DefaultSlotDuration
	}
	if s.BookingDaysAhead == 0 {
		s.BookingDaysAhead = domain.DefaultBookingDaysAhead
	}
	if s.Timezone == "" {
		s.Timezone = domain.DefaultTimezone
	}
}
