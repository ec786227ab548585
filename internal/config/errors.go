package config

import "errors"

var (
	// ErrReadFailed возвращается, когда файл конфигурации не удалось прочитать
	ErrReadFailed = errors.New("config: failed to read config file")

	// ErrInvalidServer возвращается при некорректной секции [server]
	ErrInvalidServer = errors.New("config: invalid server section")

	// ErrInvalidLogs возвращается при некорректной секции [logs]
	ErrInvalidLogs = errors.New("config: invalid logs section")

	// ErrInvalidRateLimit возвращается при некорректной секции [ratelimit]
	ErrInvalidRateLimit = errors.New("config: invalid ratelimit section")

	// ErrInvalidLot возвращается при некорректной секции [lot]
	ErrInvalidLot = errors.New("config: invalid lot section")

	// ErrInvalidPricing возвращается при некорректной секции [pricing]
	ErrInvalidPricing = errors.New("config: invalid pricing section")
)
