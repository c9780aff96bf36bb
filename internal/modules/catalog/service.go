package catalog

import (
	"sort"
	"time"
)

// yearsBack bounds the vehicle-year dropdown, current year inclusive.
const yearsBack = 25

type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

// Services returns the fixed set of offered services.
func (s *Service) Services() []ServiceInfo {
	out := make([]ServiceInfo, len(offeredServices))
	copy(out, offeredServices)
	return out
}

// ServiceBySlug looks up one offered service.
func (s *Service) ServiceBySlug(slug string) (ServiceInfo, bool) {
	for _, svc := range offeredServices {
		if svc.Slug == slug {
			return svc, true
		}
	}
	return ServiceInfo{}, false
}

// ValidService reports whether slug is an offered service.
func (s *Service) ValidService(slug string) bool {
	_, ok := s.ServiceBySlug(slug)
	return ok
}

// Makes returns all known vehicle makes, alphabetically sorted.
func (s *Service) Makes() []string {
	makes := make([]string, 0, len(carDatabase))
	for name := range carDatabase {
		makes = append(makes, name)
	}
	sort.Strings(makes)
	return makes
}

// Models returns the models for a make, or nil for an unknown make.
func (s *Service) Models(makeName string) []string {
	models, ok := carDatabase[makeName]
	if !ok {
		return nil
	}
	out := make([]string, len(models))
	copy(out, models)
	return out
}

// Years lists selectable vehicle years, newest first.
func (s *Service) Years() []int {
	current := s.now().Year()
	years := make([]int, 0, yearsBack+1)
	for y := current; y >= current-yearsBack; y-- {
		years = append(years, y)
	}
	return years
}
