package model

import "time"

// Range Большое/малое число
type Range string

const (
	RangeNone  Range = ""
	RangeBig   Range = "BIG"
	RangeSmall Range = "SMALL"
)

type Color string

const (
	ColorRed    Color = "RED"
	ColorGreen  Color = "GREEN"
	ColorViolet Color = "VIOLET"
)

type Group string

const (
	GroupZeroNine Group = "0/9"
	GroupOneFour  Group = "1-4"
	GroupFiveNine Group = "5-9"
)

// NumberType Атрибуты цифры из таблицы классификации
type NumberType struct {
	Range Range
	Color Color
	Group Group
}

// Outcome Результат одного цикла. После создания не изменяется
type Outcome struct {
	ID        string
	Number    int
	Type      Range
	Color     Color
	Group     Group
	Timestamp time.Time
	Weights   [10]float64 // Распределение, из которого был выбран результат
}

// ResultRecord Запись истории в том виде, в котором она лежит в хранилище.
// Поля-указатели могут быть nil, если запись битая
type ResultRecord struct {
	ID           string
	ResultNumber *int
	Timestamp    *time.Time
}
