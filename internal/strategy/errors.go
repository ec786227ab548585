package strategy

import "errors"

var (
	// ErrInvalidInterval возвращается, когда интервал стоянки некорректен
	// (время выезда раньше времени въезда)
	ErrInvalidInterval = errors.New("strategy: invalid billing interval")
)
