package domain

import "errors"

var (
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrSessionTornDown      = errors.New("session is not running")
	ErrStoreClosed          = errors.New("store closed")
	ErrNoActiveRoom         = errors.New("no active chat room")
	ErrRoomNotFound         = errors.New("chat room not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrWrongRole            = errors.New("operation not available for this role")
)
