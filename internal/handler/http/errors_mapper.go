package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/climate-dashboard/internal/app"
	"github.com/MKhiriev/climate-dashboard/internal/service"
	"github.com/MKhiriev/climate-dashboard/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:  http.StatusBadRequest,
	service.ErrInvalidCredentials:   http.StatusUnauthorized,
	service.ErrAllFieldsRequired:    http.StatusBadRequest,
	service.ErrPasswordsDoNotMatch:  http.StatusBadRequest,
	service.ErrPasswordTooShort:     http.StatusBadRequest,
	service.ErrPasswordTooLong:      http.StatusBadRequest,
	service.ErrNameAndEmailRequired: http.StatusBadRequest,
	service.ErrWrongCurrentPassword: http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrRecordNotFound:     http.StatusNotFound,
	store.ErrUserNotFound:       http.StatusNotFound,

	ErrInvalidRecordForm: http.StatusBadRequest,
	ErrInvalidRecordID:   http.StatusNotFound,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:  app.MsgBothFieldsRequired,
	service.ErrInvalidCredentials:   app.MsgInvalidEmailOrPassword,
	service.ErrAllFieldsRequired:    app.MsgAllFieldsRequired,
	service.ErrPasswordsDoNotMatch:  app.MsgPasswordsDoNotMatch,
	service.ErrPasswordTooShort:     app.MsgPasswordTooShort,
	service.ErrPasswordTooLong:      app.MsgPasswordTooLong,
	service.ErrNameAndEmailRequired: app.MsgNameAndEmailRequired,
	service.ErrWrongCurrentPassword: app.MsgWrongCurrentPassword,

	store.ErrEmailAlreadyExists: app.MsgEmailAlreadyExists,
	store.ErrRecordNotFound:     app.MsgRecordNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the flash text for err and whether err is one the
// user can act on.
func messageFromError(err error) (string, bool) {
	var fieldErr *RecordFieldError
	if errors.As(err, &fieldErr) {
		return fmt.Sprintf(app.MsgInvalidFieldf, fieldErr.Field), true
	}

	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message, true
		}
	}
	return "", false
}
