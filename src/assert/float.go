package assert

import "math"

// InDelta checks that expected and actual are within delta of each other and
// fails the test if they are not. NaN is never within delta of anything.
func InDelta(t TestingErrf, expected, actual, delta float64, msgAndArgs ...any) {
	t.Helper()

	if math.Abs(expected-actual) <= delta {
		return
	}

	t.Errorf("expected %v but got %v, difference is more than %v%s",
		expected, actual, delta, fromMsgAndArgs(msgAndArgs...),
	)
}
