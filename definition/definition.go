package definition

import (
	"errors"
	"time"
)

var DefaultPort = "3000"
var DefaultReadTimeout = 10 * time.Second
var DefaultWriteTimeout = 10 * time.Second
var ClientTimeout = 5 * time.Second

var TicketCollection = "tickets"
var TicketTable = "ticket"
var TicketKeyPrefix = "{ticket}"

var UnknownDriver = errors.New("unknown store driver")
