package model

import "fmt"

const warmupSeconds = 300

// DefaultCatalog returns the nine week program with every run incomplete.
// Each call returns a fresh catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		weekDay(1, 1, "Brisk five-minute warmup walk, then alternate 60 seconds of jogging and 90 seconds of walking for a total of 20 minutes.",
			jog(60), walk(90), jog(60), walk(90), jog(60), walk(90), jog(60), walk(90), jog(60), walk(90), jog(60), walk(90), jog(60), walk(90), jog(60), walk(90)),
		weekDay(1, 2, "Brisk five-minute warmup walk, then alternate 60 seconds of jogging and 90 seconds of walking for a total of 20 minutes.",
			jog(60), walk(90), jog(60), walk(90), jog(60), walk(90), jog(60), walk(90), jog(60), walk(90), jog(60), walk(90), jog(60), walk(90), jog(60), walk(90)),
		weekDay(1, 3, "Brisk five-minute warmup walk, then alternate 60 seconds of jogging and 90 seconds of walking for a total of 20 minutes.",
			jog(60), walk(90), jog(60), walk(90), jog(60), walk(90), jog(60), walk(90), jog(60), walk(90), jog(60), walk(90), jog(60), walk(90), jog(60), walk(90)),
		weekDay(2, 1, "Brisk five-minute warmup walk, then alternate 90 seconds of jogging and two minutes of walking for a total of 20 minutes.",
			jog(90), walk(120), jog(90), walk(120), jog(90), walk(120), jog(90), walk(120), jog(90), walk(120), jog(90), walk(60)),
		weekDay(2, 2, "Brisk five-minute warmup walk, then alternate 90 seconds of jogging and two minutes of walking for a total of 20 minutes.",
			jog(90), walk(120), jog(90), walk(120), jog(90), walk(120), jog(90), walk(120), jog(90), walk(120), jog(90), walk(60)),
		weekDay(2, 3, "Brisk five-minute warmup walk, then alternate 90 seconds of jogging and two minutes of walking for a total of 20 minutes.",
			jog(90), walk(120), jog(90), walk(120), jog(90), walk(120), jog(90), walk(120), jog(90), walk(120), jog(90), walk(60)),
		weekDay(3, 1, "Brisk five-minute warmup walk, then two repetitions of: jog 90 seconds, walk 90 seconds, jog 3 minutes, walk 3 minutes.",
			jog(90), walk(90), jog(180), walk(180), jog(90), walk(90), jog(180), walk(180)),
		weekDay(3, 2, "Brisk five-minute warmup walk, then two repetitions of: jog 90 seconds, walk 90 seconds, jog 3 minutes, walk 3 minutes.",
			jog(90), walk(90), jog(180), walk(180), jog(90), walk(90), jog(180), walk(180)),
		weekDay(3, 3, "Brisk five-minute warmup walk, then two repetitions of: jog 90 seconds, walk 90 seconds, jog 3 minutes, walk 3 minutes.",
			jog(90), walk(90), jog(180), walk(180), jog(90), walk(90), jog(180), walk(180)),
		weekDay(4, 1, "Brisk five-minute warmup walk, then: jog 3 minutes, walk 90 seconds, jog 5 minutes, walk 2.5 minutes, jog 3 minutes, walk 90 seconds, jog 5 minutes.",
			jog(180), walk(90), jog(300), walk(150), jog(180), walk(90), jog(300)),
		weekDay(4, 2, "Brisk five-minute warmup walk, then: jog 3 minutes, walk 90 seconds, jog 5 minutes, walk 2.5 minutes, jog 3 minutes, walk 90 seconds, jog 5 minutes.",
			jog(180), walk(90), jog(300), walk(150), jog(180), walk(90), jog(300)),
		weekDay(4, 3, "Brisk five-minute warmup walk, then: jog 3 minutes, walk 90 seconds, jog 5 minutes, walk 2.5 minutes, jog 3 minutes, walk 90 seconds, jog 5 minutes.",
			jog(180), walk(90), jog(300), walk(150), jog(180), walk(90), jog(300)),
		weekDay(5, 1, "Brisk five-minute warmup walk, then: jog 5 minutes, walk 3 minutes, jog 5 minutes, walk 3 minutes, jog 5 minutes.",
			jog(300), walk(180), jog(300), walk(180), jog(300)),
		weekDay(5, 2, "Brisk five-minute warmup walk, then: jog 8 minutes, walk 5 minutes, jog 8 minutes.",
			jog(480), walk(300), jog(480)),
		weekDay(5, 3, "Brisk five-minute warmup walk, then jog 20 minutes with no walking.",
			jog(1200)),
		weekDay(6, 1, "Brisk five-minute warmup walk, then: jog 5 minutes, walk 3 minutes, jog 8 minutes, walk 3 minutes, jog 5 minutes.",
			jog(300), walk(180), jog(480), walk(180), jog(300)),
		weekDay(6, 2, "Brisk five-minute warmup walk, then: jog 10 minutes, walk 3 minutes, jog 10 minutes.",
			jog(600), walk(180), jog(600)),
		weekDay(6, 3, "Brisk five-minute warmup walk, then jog 22 minutes with no walking.",
			jog(1320)),
		weekDay(7, 1, "Brisk five-minute warmup walk, then jog 25 minutes.",
			jog(1500)),
		weekDay(7, 2, "Brisk five-minute warmup walk, then jog 25 minutes.",
			jog(1500)),
		weekDay(7, 3, "Brisk five-minute warmup walk, then jog 25 minutes.",
			jog(1500)),
		weekDay(8, 1, "Brisk five-minute warmup walk, then jog 28 minutes.",
			jog(1680)),
		weekDay(8, 2, "Brisk five-minute warmup walk, then jog 28 minutes.",
			jog(1680)),
		weekDay(8, 3, "Brisk five-minute warmup walk, then jog 28 minutes.",
			jog(1680)),
		weekDay(9, 1, "Brisk five-minute warmup walk, then jog 30 minutes.",
			jog(1800)),
		weekDay(9, 2, "Brisk five-minute warmup walk, then jog 30 minutes.",
			jog(1800)),
		weekDay(9, 3, "Brisk five-minute warmup walk, then jog 30 minutes.",
			jog(1800)),
	}
}

func weekDay(week, day int, description string, intervals ...Interval) Run {
	name := fmt.Sprintf("Week %d Day %d", week, day)
	return MustRun(name, description, append([]Interval{warmup()}, intervals...)...)
}

func warmup() Interval { return NewInterval(warmupSeconds, LabelWarmup) }

func jog(seconds int) Interval { return NewInterval(seconds, LabelJog) }

func walk(seconds int) Interval { return NewInterval(seconds, LabelWalk) }
