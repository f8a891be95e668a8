package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
)

const (
	ForecastDays   = 5
	MinTemperature = -20
	// MaxTemperature не входит в диапазон
	MaxTemperature = 55

	forecastDateLayout = "2006-01-02"
)

// Summaries допустимые описания погоды
var Summaries = []string{
	"Freezing", "Bracing", "Chilly", "Cool", "Mild", "Warm", "Balmy", "Hot", "Sweltering", "Scorching",
}

// ForecastService генерирует демонстрационный прогноз погоды
type ForecastService struct {
	mutex  sync.Mutex
	random *rand.Rand
	now    func() time.Time
}

func NewForecastService() *ForecastService {
	return &ForecastService{
		random: rand.New(rand.NewSource(rand.Int63())),
		now:    time.Now,
	}
}

// Forecast возвращает ForecastDays записей, начиная с завтрашнего дня
func (s *ForecastService) Forecast() []model.WeatherForecast {
	today := s.now()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	forecasts := make([]model.WeatherForecast, ForecastDays)
	for i := range forecasts {
		temperatureC := MinTemperature + s.random.Intn(MaxTemperature-MinTemperature)
		forecasts[i] = model.WeatherForecast{
			Date:         today.AddDate(0, 0, i+1).Format(forecastDateLayout),
			TemperatureC: temperatureC,
			TemperatureF: celsiusToFahrenheit(temperatureC),
			Summary:      Summaries[s.random.Intn(len(Summaries))],
		}
	}

	return forecasts
}

func celsiusToFahrenheit(celsius int) int {
	return 32 + int(float64(celsius)/0.5556)
}
