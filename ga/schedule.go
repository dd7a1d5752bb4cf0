package ga

// RateSchedule raises the mutation rate in steps to keep a converging
// population diverse.
//
//	rate(gen) = min(Initial + Step·⌊gen/Interval⌋, max(Ceiling, Initial))
type RateSchedule struct {
	Initial  int
	Step     int
	Interval int
	Ceiling  int
}

// RateAt returns the mutation percentage for generation gen.
func (s RateSchedule) RateAt(gen int) int {
	if s.Step == 0 || s.Interval < 1 {
		return s.Initial
	}
	rate := s.Initial + s.Step*(gen/s.Interval)
	return min(rate, max(s.Ceiling, s.Initial))
}
