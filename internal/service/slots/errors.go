package slots

import "errors"

var (
	// ErrInternal возвращается при ошибках получения данных из хранилища
	// Детали ошибки логируются в месте возникновения и не доходят до клиента
	ErrInternal = errors.New("slots.service: internal error")
)
