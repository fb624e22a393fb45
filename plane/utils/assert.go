package utils

// Assert panics when condition does not hold. It guards states that cannot
// happen unless the package itself is broken.
func Assert(condition bool, message ...string) {
	if !condition {
		if len(message) == 1 {
			panic(message[0])
		}
		panic("failed assertion")
	}
}
