package earley

func dumpState(states []*StateSet, col int) {
	tracer().Debugf("--- State %04d ------------------------------------", col)
	n := 1
	states[col].Each(func(item Item) {
		tracer().Debugf("[%2d] %s", n, item)
		n++
	})
}
