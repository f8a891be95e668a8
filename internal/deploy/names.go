// Package deploy вычисляет имена ресурсов хостинга для окружения развертывания
package deploy

import (
	"errors"
	"strings"
)

const project = "shortlink"

var ErrEmptySuffix = errors.New("deployment suffix is required")

// NamesFor возвращает имя плана хостинга и веб-приложения для суффикса окружения
func NamesFor(suffix string) (plan string, app string, err error) {
	suffix = strings.ToLower(strings.TrimSpace(suffix))
	if suffix == "" {
		return "", "", ErrEmptySuffix
	}

	return "plan-" + project + "-" + suffix, "app-" + project + "-" + suffix, nil
}
