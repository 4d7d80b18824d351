package model

import "satta_backend/internal/model"

// trapWindow Сколько последних результатов смотрим при поиске ловушки
const trapWindow = 3

// DetectTrap Ищет ловушку в трех последних числах последовательности.
// Меньше трех чисел - ловушки нет
func DetectTrap(numbers []int) (bool, model.TrapPattern) {
	if len(numbers) < trapWindow {
		return false, model.TrapNone
	}

	shape := make([]byte, 0, trapWindow)
	for _, n := range numbers[len(numbers)-trapWindow:] {
		if n >= BigThreshold {
			shape = append(shape, 'B')
		} else {
			shape = append(shape, 'S')
		}
	}

	switch pattern := model.TrapPattern(shape); pattern {
	case model.TrapSSB, model.TrapBBS:
		return true, pattern
	default:
		return false, model.TrapNone
	}
}
