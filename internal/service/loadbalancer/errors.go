package loadbalancer

import "errors"

var (
	// ErrNoCandidates возвращается для пустого списка кандидатов
	ErrNoCandidates = errors.New("loadbalancer: no candidates")

	// ErrInternal возвращается при ошибке чтения загрузки
	ErrInternal = errors.New("loadbalancer: internal error")
)
