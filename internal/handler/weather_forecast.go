package handler

import "net/http"

// WeatherForecast отдает демонстрационный прогноз на ближайшие дни
func (h *Handler) WeatherForecast(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.forecaster.Forecast())
}
