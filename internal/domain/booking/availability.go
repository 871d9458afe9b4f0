package booking

import "time"

// ===============================
// Availability Filter
// ===============================

// AvailableSlots filtra a grade para uma data, removendo horários já
// passados e horários já reservados. Regras:
//
//   - se a data é hoje, slots anteriores a "now" saem;
//   - se a data inteira já passou, nada é oferecido;
//   - um slot sai quando alguma reserva tem exatamente o mesmo instante
//     (a comparação é por igualdade, não por sobreposição — todos os
//     serviços ocupam um único slot da grade);
//   - a ordem da grade é preservada.
//
// Lista vazia é um resultado válido: "sem horários disponíveis".
func AvailableSlots(date time.Time, booked []time.Time, now time.Time) []Slot {
	dayStart, _ := DayWindow(date)
	todayStart, _ := DayWindow(now)

	// Dias inteiramente no passado nunca têm horário.
	if dayStart.Before(todayStart) {
		return []Slot{}
	}
	isToday := dayStart.Equal(todayStart)

	out := make([]Slot, 0, len(catalog))
	for _, s := range catalog {
		at := s.At(date)

		if isToday && at.Before(now) {
			continue
		}
		if hasBookingAt(booked, at) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func hasBookingAt(booked []time.Time, at time.Time) bool {
	for _, b := range booked {
		if b.Equal(at) {
			return true
		}
	}
	return false
}
