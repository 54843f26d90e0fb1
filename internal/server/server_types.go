package server

import (
	"habitd/pkg/habit"
)

type CreateHabitRequest struct {
	Title    string `json:"title"`
	WeekDays []int  `json:"weekDays"`
}

type HabitListResponse struct {
	Habits []habit.Habit `json:"habits"`
}

type ToggleResponse struct {
	Completed bool `json:"completed"`
}
