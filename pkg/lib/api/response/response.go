package response

import (
	"errors"
)

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

var (
	ErrBadRequest     = errors.New("bad request")
	ErrBannerNotFound = errors.New("banner not found")
	ErrServerInternal = errors.New("internal server error")
)

func OK() Response {
	return Response{
		Status: StatusOK,
	}
}

func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}
