package catalog

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestService_Services(t *testing.T) {
	s := NewService()

	services := s.Services()
	assert.Len(t, services, 6)

	for _, svc := range services {
		assert.NotEmpty(t, svc.Slug)
		assert.NotEmpty(t, svc.Name)
		assert.NotEmpty(t, svc.Description)
		assert.Greater(t, svc.PriceMax, svc.PriceMin)
		assert.NotEmpty(t, svc.Duration)
	}
}

func TestService_ValidService(t *testing.T) {
	s := NewService()

	assert.True(t, s.ValidService("oil-change"))
	assert.True(t, s.ValidService("brake-service"))
	assert.False(t, s.ValidService("oil change"))
	assert.False(t, s.ValidService(""))
	assert.False(t, s.ValidService("detailing"))
}

func TestService_ServiceBySlug(t *testing.T) {
	s := NewService()

	svc, ok := s.ServiceBySlug("battery")
	assert.True(t, ok)
	assert.Equal(t, "Battery", svc.Name)

	_, ok = s.ServiceBySlug("nope")
	assert.False(t, ok)
}

func TestService_Makes(t *testing.T) {
	s := NewService()

	makes := s.Makes()
	assert.NotEmpty(t, makes)
	assert.True(t, sort.StringsAreSorted(makes))
	assert.Contains(t, makes, "Toyota")
	assert.Contains(t, makes, "Holden")
}

func TestService_Models(t *testing.T) {
	s := NewService()

	models := s.Models("Toyota")
	assert.NotEmpty(t, models)
	assert.Contains(t, models, "Corolla")

	assert.Nil(t, s.Models("DeLorean"))
}

func TestService_Years(t *testing.T) {
	s := NewService()
	s.now = func() time.Time {
		return time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	}

	years := s.Years()
	assert.Len(t, years, 26)
	assert.Equal(t, 2026, years[0])
	assert.Equal(t, 2001, years[len(years)-1])
}
