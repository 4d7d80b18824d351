package model

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord Битая запись в истории: нет номера, нет времени или номер вне 0-9
var ErrMalformedRecord = errors.New("malformed result record")

// ErrInvalidLimit Лимит выборки журнала вне допустимого диапазона
var ErrInvalidLimit = errors.New("invalid limit")

type MalformedRecordError struct {
	RecordID string
	Reason   string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrMalformedRecord, e.RecordID, e.Reason)
}

func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}
