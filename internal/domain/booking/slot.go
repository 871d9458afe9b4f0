package booking

import (
	"fmt"
	"time"
)

// ===============================
// Slot Catalog
// ===============================

// Slot é um horário do dia oferecido pela barbearia (ex.: 14:30).
// Valor imutável; dois slots são iguais quando hora e minuto coincidem.
type Slot struct {
	Hour   int
	Minute int
}

func (s Slot) String() string {
	return fmt.Sprintf("%02d:%02d", s.Hour, s.Minute)
}

// At combina o slot com uma data de calendário, produzindo o instante
// exato do atendimento no fuso da data.
func (s Slot) At(date time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		s.Hour, s.Minute, 0, 0,
		date.Location(),
	)
}

// A grade é global e fixa: 08:30 até 19:00, de 30 em 30 minutos.
// Não depende da barbearia nem do serviço.
var catalog = buildCatalog(8, 30, 19, 0, 30*time.Minute)

func buildCatalog(openHour, openMin, closeHour, closeMin int, step time.Duration) []Slot {
	var out []Slot
	cur := time.Date(2000, 1, 1, openHour, openMin, 0, 0, time.UTC)
	end := time.Date(2000, 1, 1, closeHour, closeMin, 0, 0, time.UTC)
	for !cur.After(end) {
		out = append(out, Slot{Hour: cur.Hour(), Minute: cur.Minute()})
		cur = cur.Add(step)
	}
	return out
}

// Catalog devolve a grade completa de horários, em ordem.
// Retorna uma cópia para que chamadores não alterem a grade.
func Catalog() []Slot {
	out := make([]Slot, len(catalog))
	copy(out, catalog)
	return out
}
