package employee

// ScheduleKind is the closed set of work schedules. Rule tables below switch
// exhaustively over it; an unknown kind always falls back to zero expected time.
type ScheduleKind string

const (
	KindIntegral          ScheduleKind = "integral"
	KindParcial           ScheduleKind = "parcial"
	KindTwelveByThirtySix ScheduleKind = "12x36"
	KindNoturna           ScheduleKind = "noturna"
	KindRemota            ScheduleKind = "remota"
	KindIntermitente      ScheduleKind = "intermitente"
	KindEstagiario        ScheduleKind = "estagiario"
)

func AllScheduleKinds() []ScheduleKind {
	return []ScheduleKind{
		KindIntegral,
		KindParcial,
		KindTwelveByThirtySix,
		KindNoturna,
		KindRemota,
		KindIntermitente,
		KindEstagiario,
	}
}

func (k ScheduleKind) Valid() bool {
	switch k {
	case KindIntegral, KindParcial, KindTwelveByThirtySix, KindNoturna, KindRemota, KindIntermitente, KindEstagiario:
		return true
	}
	return false
}

// LunchMandatory reports whether the schedule requires a lunch break to be
// punched before clocking out.
func (k ScheduleKind) LunchMandatory() bool {
	switch k {
	case KindParcial, KindIntermitente, KindEstagiario:
		return false
	case KindIntegral, KindTwelveByThirtySix, KindNoturna, KindRemota:
		return true
	}
	return false
}

// ExpectedMinutes returns the contracted daily minutes, zero when nothing was
// worked that day.
func (k ScheduleKind) ExpectedMinutes(workedToday bool) int {
	if !workedToday {
		return 0
	}
	switch k {
	case KindIntegral:
		return 8 * 60
	case KindParcial:
		return 4 * 60
	case KindTwelveByThirtySix:
		return 12 * 60
	case KindNoturna:
		return 7 * 60
	case KindRemota:
		return 8 * 60
	case KindIntermitente:
		return 0
	case KindEstagiario:
		return 6 * 60
	}
	return 0
}

// Caps returns the legal daily and weekly hour ceilings for the schedule.
func (k ScheduleKind) Caps() (dailyHours, weeklyHours float64) {
	switch k {
	case KindIntegral:
		return 8, 44
	case KindParcial:
		return 6, 30
	case KindTwelveByThirtySix:
		return 12, 36
	case KindNoturna:
		return 7, 44
	case KindRemota:
		return 8, 44
	case KindIntermitente:
		return 12, 44
	case KindEstagiario:
		return 6, 30
	}
	return 8, 44
}
