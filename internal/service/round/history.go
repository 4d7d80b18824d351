package round

import (
	"fmt"
	"sort"
	"time"

	"satta_backend/internal/model"
	servModel "satta_backend/internal/service/round/model"
)

type timedNumber struct {
	number int
	at     time.Time
}

// HistoryNumbers Проверяет записи истории и возвращает номера по возрастанию времени.
// Порядок записей на входе не важен. Первая битая запись возвращается как ошибка
func HistoryNumbers(records []model.ResultRecord) ([]int, error) {
	items := make([]timedNumber, 0, len(records))
	for _, rec := range records {
		switch {
		case rec.ResultNumber == nil:
			return nil, &model.MalformedRecordError{RecordID: rec.ID, Reason: "result_number is missing"}
		case rec.Timestamp == nil:
			return nil, &model.MalformedRecordError{RecordID: rec.ID, Reason: "timestamp is missing"}
		case !servModel.IsValidNumber(*rec.ResultNumber):
			return nil, &model.MalformedRecordError{
				RecordID: rec.ID,
				Reason:   fmt.Sprintf("result_number %d is out of range 0-9", *rec.ResultNumber),
			}
		}
		items = append(items, timedNumber{number: *rec.ResultNumber, at: *rec.Timestamp})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].at.Before(items[j].at)
	})

	numbers := make([]int, len(items))
	for i, it := range items {
		numbers[i] = it.number
	}
	return numbers, nil
}
