package ticket

import "errors"

var (
	// ErrTicketNotFound возвращается, когда талон не найден
	ErrTicketNotFound = errors.New("ticket.repository: ticket not found")

	// ErrTicketExists возвращается при попытке сохранить талон с занятым идентификатором
	ErrTicketExists = errors.New("ticket.repository: ticket already exists")

	// ErrTicketAlreadyClosed возвращается при повторном закрытии талона
	ErrTicketAlreadyClosed = errors.New("ticket.repository: ticket is already closed")

	// ErrSpotTaken возвращается, когда на место уже выписан открытый талон
	ErrSpotTaken = errors.New("ticket.repository: spot already has an open ticket")
)
