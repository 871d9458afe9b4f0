package booking

import "time"

// DayWindow converte uma data de calendário no intervalo de instantes
// daquele dia: de meia-noite até o último instante antes da próxima
// meia-noite, no fuso da própria data. A hora da entrada é ignorada.
func DayWindow(date time.Time) (start, end time.Time) {
	start = time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	end = start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}
